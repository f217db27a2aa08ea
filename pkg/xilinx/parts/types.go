package parts

import "github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"

// Family is the configuration-logic generation of a 32-bit Xilinx part.
type Family string

const (
	S7     Family = "S7"     // 7-series
	US     Family = "US"     // UltraScale
	UP     Family = "UP"     // UltraScale+
	Z7     Family = "Z7"     // Zynq-7000
	ZP     Family = "ZP"     // Zynq UltraScale+
	Versal Family = "Versal" // Versal ACAP
)

// descriptorFamilies maps part families onto descriptor shapes. Z7 and
// Versal have no descriptor shape.
var descriptorFamilies = map[Family]devmap.Family{
	S7: devmap.FamilyS7,
	US: devmap.FamilyUS,
	UP: devmap.FamilyUP,
	ZP: devmap.FamilyZP,
}

// Part describes one device as identified by its IDCODE.
type Part struct {
	IDCode        uint32 // version nibble cleared
	Name          string // "XCVU9P"
	Family        Family
	SLRs          int // super logic regions (dies)
	IRLength      int // total instruction register length over all dies
	ReadbackWords int // configuration frame words per readback, 0 when unknown
}

// DescriptorFamily returns the descriptor shape used for this part.
func (p Part) DescriptorFamily() (devmap.Family, bool) {
	f, ok := descriptorFamilies[p.Family]
	return f, ok
}

// IRLengthPerSLR is the instruction register length of a single die.
func (p Part) IRLengthPerSLR() int {
	if p.SLRs == 0 {
		return p.IRLength
	}
	return p.IRLength / p.SLRs
}
