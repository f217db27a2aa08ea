package devmap

// Lookup resolves p against the descriptor. The path starts below the family,
// e.g. "jtag.slrs[2].fuse_dna" or "registers.slrs[0].ctl0".
//
// The second result is false when the path names nothing in this
// descriptor: an index past the end of a sequence, a die whose JTAG block is
// absent, or a field outside the family's shape. Lookup never panics.
func (d *Descriptor) Lookup(p Path) (Value, bool) {
	return d.resolve(p.segments)
}

// LookupString parses s with ParsePath and resolves it.
func (d *Descriptor) LookupString(s string) (Value, bool, error) {
	p, err := ParsePath(s)
	if err != nil {
		return Value{}, false, err
	}
	v, ok := d.Lookup(p)
	return v, ok, nil
}

// Lookup resolves a path whose first segment is a family tag, e.g.
// "us.jtag.slrs[0].fuse_rsa". A family missing from the collection is
// not-found.
func (r *Root) Lookup(p Path) (Value, bool) {
	if len(p.segments) == 0 {
		return Value{}, false
	}
	head := p.segments[0]
	if head.HasIndex {
		return Value{}, false
	}
	d, ok := r.descriptors[Family(head.Name)]
	if !ok {
		return Value{}, false
	}
	return d.resolve(p.segments[1:])
}

// LookupString parses s with ParsePath and resolves it.
func (r *Root) LookupString(s string) (Value, bool, error) {
	p, err := ParsePath(s)
	if err != nil {
		return Value{}, false, err
	}
	v, ok := r.Lookup(p)
	return v, ok, nil
}

func (d *Descriptor) resolve(segs []Segment) (Value, bool) {
	if len(segs) == 0 {
		return blockValue(schemas[d.family].names()), true
	}
	head, rest := segs[0], segs[1:]
	if head.HasIndex {
		return Value{}, false
	}
	switch head.Name {
	case "jtag":
		return d.resolveJTAG(rest)
	case "registers":
		return d.resolveRegisters(rest)
	}
	return Value{}, false
}

func (d *Descriptor) resolveJTAG(segs []Segment) (Value, bool) {
	if len(segs) == 0 {
		return blockValue([]string{"device", "slrs"}), true
	}
	head, rest := segs[0], segs[1:]
	switch head.Name {
	case "device":
		if head.HasIndex {
			return Value{}, false
		}
		if len(rest) == 0 {
			return blockValue(DeviceFields()), true
		}
		if len(rest) == 1 && rest[0].Name == "cntl" && !rest[0].HasIndex {
			return intsValue(d.cntl), true
		}
	case "slrs":
		if !head.HasIndex {
			if len(rest) == 0 {
				return listValue(len(d.jtag)), true
			}
			return Value{}, false
		}
		slr, ok := d.JTAGSLR(head.Index)
		if !ok {
			return Value{}, false
		}
		if len(rest) == 0 {
			return blockValue(slr.Fields()), true
		}
		if len(rest) > 1 || rest[0].HasIndex {
			return Value{}, false
		}
		if v, ok := slr.values[rest[0].Name]; ok {
			return intsValue(v), true
		}
	}
	return Value{}, false
}

func (d *Descriptor) resolveRegisters(segs []Segment) (Value, bool) {
	if len(segs) == 0 {
		return blockValue([]string{"slrs"}), true
	}
	head, rest := segs[0], segs[1:]
	if head.Name != "slrs" {
		return Value{}, false
	}
	if !head.HasIndex {
		if len(rest) == 0 {
			return listValue(len(d.regs)), true
		}
		return Value{}, false
	}
	regs, ok := d.RegistersSLR(head.Index)
	if !ok {
		return Value{}, false
	}
	if len(rest) == 0 {
		return blockValue(RegisterFields()), true
	}
	if len(rest) > 1 || rest[0].HasIndex {
		return Value{}, false
	}
	if n, ok := regs.Field(rest[0].Name); ok {
		return intValue(n), true
	}
	return Value{}, false
}
