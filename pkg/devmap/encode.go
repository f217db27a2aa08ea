package devmap

import "encoding/json"

// Encode converts the descriptor back into the generic shape accepted by
// Parse. Sequences are []any holding uint64 values and absent per-die JTAG
// blocks are nil, so Parse(d.Encode(), d.Family()) reproduces d.
func (d *Descriptor) Encode() map[string]any {
	slrs := make([]any, len(d.jtag))
	for i, s := range d.jtag {
		if s == nil {
			continue
		}
		entry := make(map[string]any, len(s.values))
		for name, v := range s.values {
			entry[name] = encodeInts(v)
		}
		slrs[i] = entry
	}

	regs := make([]any, len(d.regs))
	for i := range d.regs {
		entry := make(map[string]any, len(registerFields))
		for _, name := range registerFields {
			entry[name] = *d.regs[i].ref(name)
		}
		regs[i] = entry
	}

	return map[string]any{
		"jtag": map[string]any{
			"device": map[string]any{"cntl": encodeInts(d.cntl)},
			"slrs":   slrs,
		},
		"registers": map[string]any{"slrs": regs},
	}
}

// MarshalJSON encodes the descriptor in its on-disk shape.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Encode())
}

// Encode converts the collection into a mapping keyed by family tag.
func (r *Root) Encode() map[string]any {
	out := make(map[string]any, len(r.descriptors))
	for f, d := range r.descriptors {
		out[string(f)] = d.Encode()
	}
	return out
}

// MarshalJSON encodes the collection in its on-disk shape.
func (r *Root) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Encode())
}

func encodeInts(v []uint64) []any {
	out := make([]any, len(v))
	for i, n := range v {
		out[i] = n
	}
	return out
}
