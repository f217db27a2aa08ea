package configreg

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// WireOrder converts packet words into the byte order shifted into the TAP:
// each word big-endian, each byte bit-reversed since TDI takes the LSB first.
func WireOrder(words []uint32) []byte {
	out := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(out[4*i:], w)
	}
	for i, b := range out {
		out[i] = bits.Reverse8(b)
	}
	return out
}

// FromWireOrder is the inverse of WireOrder, used on data shifted out of
// CFG_OUT.
func FromWireOrder(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("configreg: %d bytes is not a whole number of words", len(data))
	}
	out := make([]uint32, len(data)/4)
	var word [4]byte
	for i := range out {
		for j := range word {
			word[j] = bits.Reverse8(data[4*i+j])
		}
		out[i] = binary.BigEndian.Uint32(word[:])
	}
	return out, nil
}
