package devmap

// kind is the declared shape of a schema field.
type kind uint8

const (
	kindInt   kind = iota // single non-negative integer
	kindInts              // sequence of non-negative integers
	kindBlock             // nested mapping
	kindList              // sequence of nested mappings
)

func (k kind) String() string {
	switch k {
	case kindInt:
		return "integer"
	case kindInts:
		return "sequence of integers"
	case kindBlock:
		return "mapping"
	case kindList:
		return "sequence of mappings"
	default:
		return "unknown"
	}
}

type field struct {
	name string
	kind kind
	elem *block // kindBlock, kindList

	// nullable lets a kindList entry be null, meaning the block is absent
	// for that position.
	nullable bool
}

// block is the closed field set of one mapping. Every field is mandatory.
type block struct {
	fields []field
}

func (b *block) field(name string) (field, bool) {
	for _, f := range b.fields {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

func (b *block) names() []string {
	out := make([]string, len(b.fields))
	for i, f := range b.fields {
		out[i] = f.name
	}
	return out
}

var (
	// Order matches the register readout order.
	registerFields = []string{
		"ctl0", "stat", "cor0", "idcode", "axss", "cor1",
		"wbstar", "timer", "bootsts", "ctl1", "bspi",
	}

	deviceFields = []string{"cntl"}

	s7SLRFields = []string{
		"idcode", "usercode",
		"fuse_dna", "fuse_key", "fuse_user",
		"user1", "user2", "user3", "user4",
	}

	usSLRFields = []string{
		"idcode", "usercode",
		"fuse_dna", "fuse_key", "fuse_user", "fuse_user_128", "fuse_rsa", "fuse_sec",
		"user1", "user2", "user3", "user4",
	}
)

var (
	registersSLRBlock = fieldsOf(kindInt, registerFields...)
	registersBlock    = &block{fields: []field{
		{name: "slrs", kind: kindList, elem: registersSLRBlock},
	}}
	jtagDeviceBlock = fieldsOf(kindInts, deviceFields...)
)

// schemas holds the complete shape of each family. Only the per-die JTAG
// field set differs between families.
var schemas = map[Family]*block{
	FamilyS7: familySchema(s7SLRFields),
	FamilyUS: familySchema(usSLRFields),
	FamilyUP: familySchema(s7SLRFields),
	FamilyZP: familySchema(s7SLRFields),
}

func familySchema(slrFields []string) *block {
	jtag := &block{fields: []field{
		{name: "device", kind: kindBlock, elem: jtagDeviceBlock},
		{name: "slrs", kind: kindList, elem: fieldsOf(kindInts, slrFields...), nullable: true},
	}}
	return &block{fields: []field{
		{name: "jtag", kind: kindBlock, elem: jtag},
		{name: "registers", kind: kindBlock, elem: registersBlock},
	}}
}

func fieldsOf(k kind, names ...string) *block {
	b := &block{fields: make([]field, len(names))}
	for i, name := range names {
		b.fields[i] = field{name: name, kind: k}
	}
	return b
}

func jtagSLRBlock(f Family) *block {
	jtag, _ := schemas[f].field("jtag")
	slrs, _ := jtag.elem.field("slrs")
	return slrs.elem
}

// JTAGSLRFields returns the per-die JTAG field names allowed for a family, in
// schema order. It returns nil for an unknown family.
func JTAGSLRFields(f Family) []string {
	if !f.Valid() {
		return nil
	}
	return jtagSLRBlock(f).names()
}

// DeviceFields returns the per-package JTAG field names.
func DeviceFields() []string {
	return append([]string(nil), deviceFields...)
}

// RegisterFields returns the configuration register names of a per-SLR
// register block, in read order. The set is identical for every family.
func RegisterFields() []string {
	return append([]string(nil), registerFields...)
}
