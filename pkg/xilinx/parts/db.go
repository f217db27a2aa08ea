package parts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/idcode"
)

// db is the in-memory part database keyed by version-less IDCODE.
var db = make(map[uint32]Part)

// register adds a part to the database
func register(p Part) {
	p.IDCode = idcode.WithoutVersion(p.IDCode)
	if prev, dup := db[p.IDCode]; dup {
		panic(fmt.Sprintf("parts: IDCODE 0x%08X registered for both %s and %s", p.IDCode, prev.Name, p.Name))
	}
	db[p.IDCode] = p
}

// Lookup returns the part for an IDCODE read from the TAP. The version
// nibble is ignored.
func Lookup(id uint32) (Part, bool) {
	p, ok := db[idcode.WithoutVersion(id)]
	return p, ok
}

// LookupName finds a part by its name, e.g. "XC7A35T".
func LookupName(name string) (Part, bool) {
	for _, p := range db {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}

// All returns every known part sorted by name.
func All() []Part {
	out := make([]Part, 0, len(db))
	for _, p := range db {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByFamily returns the parts of one family sorted by name.
func ByFamily(f Family) []Part {
	var out []Part
	for _, p := range All() {
		if p.Family == f {
			out = append(out, p)
		}
	}
	return out
}

// ParseFamily converts "s7", "US", "versal", ... into a Family.
func ParseFamily(s string) (Family, error) {
	for _, f := range Families() {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("parts: unknown family %q", s)
}

// Families lists all part families.
func Families() []Family {
	return []Family{S7, Z7, US, UP, ZP, Versal}
}
