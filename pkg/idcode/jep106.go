package idcode

import "fmt"

// Manufacturer codes as they appear in IDCODE bits [11:1]: continuation
// bank in the upper bits, JEP106 id (parity dropped) in the lower seven.
const (
	ManufacturerXilinx  uint16 = 0x049
	ManufacturerAltera  uint16 = 0x06E
	ManufacturerLattice uint16 = 0x021
)

// Manufacturer is one JEP106 entry.
type Manufacturer struct {
	Code         uint16
	Name         string
	Abbreviation string
}

// manufacturers is a small JEP106 table covering programmable logic vendors
// and the parts usually sharing a scan chain with them.
var manufacturers = map[uint16]Manufacturer{
	0x001: {Code: 0x001, Name: "AMD", Abbreviation: "AMD"},
	0x009: {Code: 0x009, Name: "Intel", Abbreviation: "Intel"},
	0x00E: {Code: 0x00E, Name: "Freescale (Motorola)", Abbreviation: "Freescale"},
	0x015: {Code: 0x015, Name: "NXP (Philips)", Abbreviation: "NXP"},
	0x017: {Code: 0x017, Name: "Texas Instruments", Abbreviation: "TI"},
	0x01F: {Code: 0x01F, Name: "Atmel", Abbreviation: "Atmel"},
	0x020: {Code: 0x020, Name: "STMicroelectronics", Abbreviation: "STM"},
	0x021: {Code: 0x021, Name: "Lattice Semiconductor", Abbreviation: "Lattice"},
	0x029: {Code: 0x029, Name: "Microchip", Abbreviation: "Microchip"},
	0x049: {Code: 0x049, Name: "Xilinx", Abbreviation: "Xilinx"},
	0x06E: {Code: 0x06E, Name: "Altera", Abbreviation: "Altera"},
	0x23B: {Code: 0x23B, Name: "ARM", Abbreviation: "ARM"},
}

// LookupManufacturer returns manufacturer info for a JEP106 code
func LookupManufacturer(code uint16) (Manufacturer, bool) {
	m, ok := manufacturers[code]
	if !ok {
		// Return unknown manufacturer
		return Manufacturer{
			Code:         code,
			Name:         fmt.Sprintf("Unknown (0x%03X)", code),
			Abbreviation: "Unknown",
		}, false
	}
	return m, true
}
