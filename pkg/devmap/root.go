package devmap

import (
	"fmt"
	"sort"
)

// Root is the collection of descriptors keyed by family tag. Every family is
// optional; at most one descriptor exists per family.
type Root struct {
	descriptors map[Family]*Descriptor
}

// ParseRoot validates a mapping of family tag to family description.
func ParseRoot(raw any) (*Root, error) {
	m, err := asMapping("<root>", raw)
	if err != nil {
		return nil, err
	}
	var unknown []string
	for key := range m {
		if !Family(key).Valid() {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fieldErr(unknown[0], ErrUnknownField, "allowed families are %v", Families())
	}

	r := &Root{descriptors: make(map[Family]*Descriptor, len(m))}
	for _, f := range familyOrder {
		raw, ok := m[string(f)]
		if !ok {
			continue
		}
		d, err := Parse(raw, f)
		if err != nil {
			return nil, err
		}
		r.descriptors[f] = d
	}
	return r, nil
}

// NewRoot assembles a root collection from already validated descriptors.
func NewRoot(descriptors ...*Descriptor) (*Root, error) {
	r := &Root{descriptors: make(map[Family]*Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if d == nil {
			continue
		}
		if _, dup := r.descriptors[d.family]; dup {
			return nil, fmt.Errorf("devmap: duplicate descriptor for family %s", d.family)
		}
		r.descriptors[d.family] = d
	}
	return r, nil
}

// Descriptor returns the descriptor for f, if the collection has one.
func (r *Root) Descriptor(f Family) (*Descriptor, bool) {
	d, ok := r.descriptors[f]
	return d, ok
}

// Families lists the families present, in the fixed family order.
func (r *Root) Families() []Family {
	var out []Family
	for _, f := range familyOrder {
		if _, ok := r.descriptors[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// ValidateSLRAlignment runs ValidateSLRAlignment on every present family and
// returns the first failure.
func (r *Root) ValidateSLRAlignment() error {
	for _, f := range r.Families() {
		if err := ValidateSLRAlignment(r.descriptors[f]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSLRAlignment checks that jtag.slrs and registers.slrs describe the
// same number of dies. Absent JTAG blocks still count as entries.
func ValidateSLRAlignment(d *Descriptor) error {
	if len(d.jtag) != len(d.regs) {
		return fieldErr(join(string(d.family), "registers.slrs"), ErrSlrCountMismatch,
			"jtag.slrs has %d entries, registers.slrs has %d", len(d.jtag), len(d.regs))
	}
	return nil
}
