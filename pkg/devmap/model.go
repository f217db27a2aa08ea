package devmap

// Descriptor is the validated register and JTAG map of one device family. It
// is built by Parse and never changes afterwards; accessors hand out copies,
// so a Descriptor may be shared between goroutines freely.
type Descriptor struct {
	family Family
	cntl   []uint64
	jtag   []*JTAGSLR // nil entry: no JTAG block for that die
	regs   []RegistersSLR
}

// Family returns the family the descriptor was validated against.
func (d *Descriptor) Family() Family {
	return d.family
}

// Cntl returns the per-package JTAG control codes (jtag.device.cntl).
func (d *Descriptor) Cntl() []uint64 {
	return append([]uint64(nil), d.cntl...)
}

// JTAGSLRCount returns the length of jtag.slrs, absent blocks included.
func (d *Descriptor) JTAGSLRCount() int {
	return len(d.jtag)
}

// JTAGSLR returns the per-die JTAG block for die i. The second result is
// false when i is out of range or the block is absent for that die.
func (d *Descriptor) JTAGSLR(i int) (*JTAGSLR, bool) {
	if i < 0 || i >= len(d.jtag) || d.jtag[i] == nil {
		return nil, false
	}
	return d.jtag[i], true
}

// RegistersSLRCount returns the length of registers.slrs.
func (d *Descriptor) RegistersSLRCount() int {
	return len(d.regs)
}

// RegistersSLR returns the configuration register block for die i.
func (d *Descriptor) RegistersSLR(i int) (RegistersSLR, bool) {
	if i < 0 || i >= len(d.regs) {
		return RegistersSLR{}, false
	}
	return d.regs[i], true
}

// JTAGSLR holds the JTAG codes of one die. The field set is fixed by the
// family: see JTAGSLRFields.
type JTAGSLR struct {
	family Family
	values map[string][]uint64
}

// Field returns a copy of the codes stored under name. It reports false for
// names outside the family's field set.
func (s *JTAGSLR) Field(name string) ([]uint64, bool) {
	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return append([]uint64(nil), v...), true
}

// Fields returns the field names of this block in schema order.
func (s *JTAGSLR) Fields() []string {
	return JTAGSLRFields(s.family)
}

// IDCode returns the idcode field, present in every family.
func (s *JTAGSLR) IDCode() []uint64 {
	v, _ := s.Field("idcode")
	return v
}

// FuseDNA returns the fuse_dna field, present in every family.
func (s *JTAGSLR) FuseDNA() []uint64 {
	v, _ := s.Field("fuse_dna")
	return v
}

// RegistersSLR holds the configuration register words of one die.
type RegistersSLR struct {
	Ctl0    uint64
	Stat    uint64
	Cor0    uint64
	IDCode  uint64
	Axss    uint64
	Cor1    uint64
	Wbstar  uint64
	Timer   uint64
	Bootsts uint64
	Ctl1    uint64
	Bspi    uint64
}

// Field returns the register named by its schema name ("ctl0", "bootsts", ...).
func (r RegistersSLR) Field(name string) (uint64, bool) {
	p := (&r).ref(name)
	if p == nil {
		return 0, false
	}
	return *p, true
}

func (r *RegistersSLR) ref(name string) *uint64 {
	switch name {
	case "ctl0":
		return &r.Ctl0
	case "stat":
		return &r.Stat
	case "cor0":
		return &r.Cor0
	case "idcode":
		return &r.IDCode
	case "axss":
		return &r.Axss
	case "cor1":
		return &r.Cor1
	case "wbstar":
		return &r.Wbstar
	case "timer":
		return &r.Timer
	case "bootsts":
		return &r.Bootsts
	case "ctl1":
		return &r.Ctl1
	case "bspi":
		return &r.Bspi
	}
	return nil
}
