// Package configreg encodes configuration packets for the 32-bit Xilinx
// configuration logic (7-series through Zynq UltraScale+). It covers the
// register addresses, Type 1 and Type 2 packet headers, and the bit order
// used when shifting packets through CFG_IN.
package configreg

import "fmt"

// Addr is a configuration register address.
type Addr uint16

const (
	Crc     Addr = 0
	Far     Addr = 1
	Fdri    Addr = 2
	Fdro    Addr = 3
	Cmd     Addr = 4
	Ctl0    Addr = 5
	Mask    Addr = 6
	Stat    Addr = 7
	Lout    Addr = 8
	Cor0    Addr = 9
	Mfwr    Addr = 10
	Cbc     Addr = 11
	Idcode  Addr = 12
	Axss    Addr = 13
	Cor1    Addr = 14
	Wbstar  Addr = 16
	Timer   Addr = 17
	RbcrcSw Addr = 19
	Bootsts Addr = 22
	Ctl1    Addr = 24
	Rdri    Addr = 26
	Ssit    Addr = 30
	Bspi    Addr = 31
)

var addrNames = map[Addr]string{
	Crc: "CRC", Far: "FAR", Fdri: "FDRI", Fdro: "FDRO", Cmd: "CMD",
	Ctl0: "CTL0", Mask: "MASK", Stat: "STAT", Lout: "LOUT", Cor0: "COR0",
	Mfwr: "MFWR", Cbc: "CBC", Idcode: "IDCODE", Axss: "AXSS", Cor1: "COR1",
	Wbstar: "WBSTAR", Timer: "TIMER", RbcrcSw: "RBCRC_SW", Bootsts: "BOOTSTS",
	Ctl1: "CTL1", Rdri: "RDRI", Ssit: "SSIT", Bspi: "BSPI",
}

func (a Addr) String() string {
	if name, ok := addrNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Addr(%d)", uint16(a))
}

// registerAddrs maps the keys of a per-die register block to addresses.
var registerAddrs = map[string]Addr{
	"ctl0":    Ctl0,
	"stat":    Stat,
	"cor0":    Cor0,
	"idcode":  Idcode,
	"axss":    Axss,
	"cor1":    Cor1,
	"wbstar":  Wbstar,
	"timer":   Timer,
	"bootsts": Bootsts,
	"ctl1":    Ctl1,
	"bspi":    Bspi,
}

// AddrOf returns the address of a register block field such as "bootsts".
func AddrOf(field string) (Addr, bool) {
	a, ok := registerAddrs[field]
	return a, ok
}

// JTAG instructions of a single 6-bit configuration TAP.
const (
	InstrUser1       uint8 = 0b000010
	InstrUser2       uint8 = 0b000011
	InstrCfgOut      uint8 = 0b000100
	InstrCfgIn       uint8 = 0b000101
	InstrUsercode    uint8 = 0b001000
	InstrIdcode      uint8 = 0b001001
	InstrFuseUser128 uint8 = 0b011001
	InstrUser3       uint8 = 0b100010
	InstrUser4       uint8 = 0b100011
	InstrFuseKey     uint8 = 0b110001
	InstrFuseDNA     uint8 = 0b110010
	InstrFuseUser    uint8 = 0b110011
	InstrFuseCntl    uint8 = 0b110100
	InstrBypass      uint8 = 0b111111
)

// jtagInstrs maps JTAG block keys to the instruction that selects the data
// register holding them. fuse_rsa and fuse_sec are not listed in the
// published BSDL files and have no entry.
var jtagInstrs = map[string]uint8{
	"cntl":          InstrFuseCntl,
	"idcode":        InstrIdcode,
	"usercode":      InstrUsercode,
	"fuse_dna":      InstrFuseDNA,
	"fuse_key":      InstrFuseKey,
	"fuse_user":     InstrFuseUser,
	"fuse_user_128": InstrFuseUser128,
	"user1":         InstrUser1,
	"user2":         InstrUser2,
	"user3":         InstrUser3,
	"user4":         InstrUser4,
}

// JTAGInstr returns the instruction used to read a JTAG block field.
func JTAGInstr(field string) (uint8, bool) {
	ir, ok := jtagInstrs[field]
	return ir, ok
}
