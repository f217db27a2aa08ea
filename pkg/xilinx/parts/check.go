package parts

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"
)

// CheckDescriptor verifies that d can drive part p: the descriptor shape
// must match the part family and both slrs sequences must have one entry
// per die.
func CheckDescriptor(p Part, d *devmap.Descriptor) error {
	want, ok := p.DescriptorFamily()
	if !ok {
		return fmt.Errorf("parts: %s (%s) has no descriptor shape", p.Name, p.Family)
	}
	if d.Family() != want {
		return fmt.Errorf("parts: %s needs a %s descriptor, got %s", p.Name, want, d.Family())
	}
	if n := d.JTAGSLRCount(); n != p.SLRs {
		return &devmap.FieldError{
			Path:   string(want) + ".jtag.slrs",
			Err:    devmap.ErrSlrCountMismatch,
			Detail: fmt.Sprintf("%s has %d SLRs, jtag.slrs has %d entries", p.Name, p.SLRs, n),
		}
	}
	if n := d.RegistersSLRCount(); n != p.SLRs {
		return &devmap.FieldError{
			Path:   string(want) + ".registers.slrs",
			Err:    devmap.ErrSlrCountMismatch,
			Detail: fmt.Sprintf("%s has %d SLRs, registers.slrs has %d entries", p.Name, p.SLRs, n),
		}
	}
	return nil
}
