package devmap

import (
	"fmt"
	"strings"
)

// Kind tells which accessor of a Value is meaningful.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt          // a single register word
	KindInts         // a sequence of JTAG codes
	KindBlock        // a mapping; Fields lists its keys
	KindList         // a sequence of blocks; Len is its length
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindInts:
		return "ints"
	case KindBlock:
		return "block"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is the result of a successful Lookup.
type Value struct {
	kind   Kind
	n      uint64
	ns     []uint64
	fields []string
	length int
}

func intValue(n uint64) Value { return Value{kind: KindInt, n: n} }

func intsValue(ns []uint64) Value {
	return Value{kind: KindInts, ns: append([]uint64(nil), ns...)}
}

func blockValue(fields []string) Value {
	return Value{kind: KindBlock, fields: fields, length: len(fields)}
}

func listValue(length int) Value { return Value{kind: KindList, length: length} }

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns a register word. It is zero unless Kind is KindInt.
func (v Value) Int() uint64 { return v.n }

// Ints returns a copy of a JTAG code sequence.
func (v Value) Ints() []uint64 { return append([]uint64(nil), v.ns...) }

// Fields returns the keys of a block value in schema order.
func (v Value) Fields() []string { return append([]string(nil), v.fields...) }

// Len is the number of elements of a list, codes of a sequence or keys of a
// block. It is 1 for a single integer.
func (v Value) Len() int {
	switch v.kind {
	case KindInt:
		return 1
	case KindInts:
		return len(v.ns)
	}
	return v.length
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("0x%08X", v.n)
	case KindInts:
		parts := make([]string, len(v.ns))
		for i, n := range v.ns {
			parts[i] = fmt.Sprintf("0x%02X", n)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindBlock:
		return "{" + strings.Join(v.fields, ", ") + "}"
	case KindList:
		return fmt.Sprintf("list(%d)", v.length)
	}
	return "<invalid>"
}
