package configreg

import "fmt"

// OpCode is the operation field of a packet header.
type OpCode uint8

const (
	OpNoop  OpCode = 0
	OpRead  OpCode = 1
	OpWrite OpCode = 2
)

// Fixed words of the configuration stream.
const (
	Dummy uint32 = 0xFFFFFFFF
	Sync  uint32 = 0xAA995566
	Noop  uint32 = 0x20000000
)

// Type1 is a Type 1 packet header.
//
//	[31:29] header type (001)
//	[28:27] opcode
//	[26:13] register address
//	[12:11] reserved
//	[10:0]  word count
type Type1 struct {
	Op        OpCode
	Addr      Addr
	WordCount uint16
}

// Raw encodes the header. The word count is truncated to 10 bits.
func (t Type1) Raw() uint32 {
	header := uint32(1) << 29
	opcode := uint32(t.Op&0x3) << 27
	address := uint32(t.Addr&0x3FFF) << 13
	words := uint32(t.WordCount & 0x3FF)
	return header | opcode | address | words
}

// Type2 encodes a Type 2 header. It carries the word count (bits [25:0]) for the
// register addressed by the preceding Type 1 packet.
func Type2(op OpCode, wordCount uint32) uint32 {
	header := uint32(2) << 29
	opcode := uint32(op&0x3) << 27
	return header | opcode | (wordCount & 0x03FFFFFF)
}

// ReadPacket is the stream shifted into CFG_IN to read words 32-bit words
// from addr: sync, a noop, the read header and two trailing noops that
// flush the header through the packet processor.
func ReadPacket(addr Addr, words uint16) []uint32 {
	return []uint32{
		Sync,
		Noop,
		Type1{Op: OpRead, Addr: addr, WordCount: words}.Raw(),
		Noop,
		Noop,
	}
}

// ReadbackPacket starts a configuration memory readback from frame address
// zero. The FDRO length is left open; the caller shifts out as many words
// as the part holds.
func ReadbackPacket() []uint32 {
	return []uint32{
		Sync,
		Noop,
		Type1{Op: OpWrite, Addr: Cmd, WordCount: 1}.Raw(),
		CmdRcfg,
		Type1{Op: OpWrite, Addr: Far, WordCount: 1}.Raw(),
		0x00000000,
		Type1{Op: OpRead, Addr: Fdro, WordCount: 0}.Raw(),
		Type2(OpRead, 0xFFFFFF),
		Noop,
		Noop,
	}
}

// CmdRcfg is the CMD register value that switches the packet processor to
// configuration readback.
const CmdRcfg uint32 = 0x00000004

// RegisterRead is one step of reading a per-die register block.
type RegisterRead struct {
	Field  string
	Addr   Addr
	Packet []uint32
}

// RegisterReads returns one single-word read per field, in the order given.
// Registers are read one packet at a time; batching several read headers
// into one CFG_IN shift returns the first register repeatedly.
func RegisterReads(fields []string) ([]RegisterRead, error) {
	out := make([]RegisterRead, 0, len(fields))
	for _, f := range fields {
		a, ok := AddrOf(f)
		if !ok {
			return nil, fmt.Errorf("configreg: no register address for %q", f)
		}
		out = append(out, RegisterRead{Field: f, Addr: a, Packet: ReadPacket(a, 1)})
	}
	return out, nil
}
