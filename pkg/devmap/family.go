package devmap

import (
	"fmt"
	"strings"
)

// Family identifies one of the supported Xilinx 32-bit device family shapes.
type Family string

const (
	FamilyS7 Family = "s7" // 7-series
	FamilyUS Family = "us" // UltraScale
	FamilyUP Family = "up" // UltraScale+
	FamilyZP Family = "zp" // Zynq UltraScale+
)

var familyOrder = []Family{FamilyS7, FamilyUP, FamilyUS, FamilyZP}

var familyNames = map[Family]string{
	FamilyS7: "7-series",
	FamilyUS: "UltraScale",
	FamilyUP: "UltraScale+",
	FamilyZP: "Zynq UltraScale+",
}

// Families returns every family tag in a fixed order.
func Families() []Family {
	return append([]Family(nil), familyOrder...)
}

// ParseFamily converts a tag such as "us" into a Family. Matching is
// case-insensitive; unknown tags fail with ErrUnknownFamily.
func ParseFamily(tag string) (Family, error) {
	f := Family(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := schemas[f]; !ok {
		return "", fmt.Errorf("devmap: %w %q (supported: s7, up, us, zp)", ErrUnknownFamily, tag)
	}
	return f, nil
}

// Valid reports whether f is one of the four known tags.
func (f Family) Valid() bool {
	_, ok := schemas[f]
	return ok
}

// Name returns the marketing name of the family.
func (f Family) Name() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%s)", string(f))
}

func (f Family) String() string {
	return string(f)
}
