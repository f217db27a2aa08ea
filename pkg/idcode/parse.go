package idcode

import "fmt"

// IDCode is an IEEE 1149.1 device identification register split into its
// fields.
type IDCode struct {
	Raw              uint32
	Version          uint8  // [31:28]
	PartNumber       uint16 // [27:12]
	ManufacturerCode uint16 // [11:1], JEP106 bank and id
	HasIDCode        bool   // bit 0 is always 1 for a real IDCODE
}

// VersionMask clears the revision nibble. Silicon steppings of the same part
// differ only in bits [31:28].
const VersionMask uint32 = 0x0FFFFFFF

// ParseIDCode parses a raw 32-bit IDCODE into its component fields
func ParseIDCode(raw uint32) IDCode {
	return IDCode{
		Raw:              raw,
		Version:          uint8((raw >> 28) & 0xF),
		PartNumber:       uint16((raw >> 12) & 0xFFFF),
		ManufacturerCode: uint16((raw >> 1) & 0x7FF),
		HasIDCode:        (raw & 0x1) == 0x1,
	}
}

// WithoutVersion returns raw with the version nibble cleared.
func WithoutVersion(raw uint32) uint32 {
	return raw & VersionMask
}

// Masked is the IDCODE with the version nibble cleared.
func (id IDCode) Masked() uint32 {
	return WithoutVersion(id.Raw)
}

// IsXilinx reports whether the manufacturer field names Xilinx (AMD).
func (id IDCode) IsXilinx() bool {
	return id.HasIDCode && id.ManufacturerCode == ManufacturerXilinx
}

func (id IDCode) String() string {
	m, _ := LookupManufacturer(id.ManufacturerCode)
	return fmt.Sprintf("0x%08X (%s, part 0x%04X, rev %d)", id.Raw, m.Abbreviation, id.PartNumber, id.Version)
}
