package devmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func rawJTAGSLR(f Family, base uint64) map[string]any {
	m := make(map[string]any)
	for i, name := range JTAGSLRFields(f) {
		m[name] = []any{base + uint64(i), base + uint64(i) + 0x100}
	}
	return m
}

func rawRegistersSLR(base uint64) map[string]any {
	m := make(map[string]any)
	for i, name := range RegisterFields() {
		m[name] = base + uint64(i)
	}
	return m
}

// rawFamily builds a well-formed description with the given number of dies.
func rawFamily(f Family, dies int) map[string]any {
	slrs := make([]any, dies)
	regs := make([]any, dies)
	for i := 0; i < dies; i++ {
		slrs[i] = rawJTAGSLR(f, uint64(0x10*(i+1)))
		regs[i] = rawRegistersSLR(uint64(0x1000 * (i + 1)))
	}
	return map[string]any{
		"jtag": map[string]any{
			"device": map[string]any{"cntl": []any{0x34, 0x01}},
			"slrs":   slrs,
		},
		"registers": map[string]any{"slrs": regs},
	}
}

func mapAt(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		m = m[k].(map[string]any)
	}
	return m
}

func jtagSLRAt(m map[string]any, i int) map[string]any {
	return mapAt(m, "jtag")["slrs"].([]any)[i].(map[string]any)
}

func regsSLRAt(m map[string]any, i int) map[string]any {
	return mapAt(m, "registers")["slrs"].([]any)[i].(map[string]any)
}

func expectFieldError(t *testing.T, err error, sentinel error, path string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v at %s, got nil", sentinel, path)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want %v", err, sentinel)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a *FieldError", err)
	}
	if fe.Path != path {
		t.Fatalf("error path = %q, want %q (%v)", fe.Path, path, err)
	}
}

func TestParseMinimalAllFamilies(t *testing.T) {
	for _, f := range Families() {
		t.Run(string(f), func(t *testing.T) {
			raw := rawFamily(f, 1)
			d, err := Parse(raw, f)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if d.Family() != f {
				t.Fatalf("Family() = %s, want %s", d.Family(), f)
			}

			for _, name := range JTAGSLRFields(f) {
				v, ok := d.Lookup(MustParsePath("jtag.slrs[0]." + name))
				if !ok {
					t.Fatalf("Lookup %s not found", name)
				}
				want := []uint64{}
				for _, n := range jtagSLRAt(raw, 0)[name].([]any) {
					want = append(want, n.(uint64))
				}
				if v.Kind() != KindInts || !reflect.DeepEqual(v.Ints(), want) {
					t.Fatalf("Lookup %s = %v, want %v", name, v, want)
				}
			}

			for _, name := range RegisterFields() {
				v, ok := d.Lookup(MustParsePath("registers.slrs[0]." + name))
				if !ok {
					t.Fatalf("Lookup register %s not found", name)
				}
				if want := regsSLRAt(raw, 0)[name].(uint64); v.Kind() != KindInt || v.Int() != want {
					t.Fatalf("Lookup register %s = %v, want 0x%X", name, v, want)
				}
			}

			v, ok := d.Lookup(MustParsePath("jtag.device.cntl"))
			if !ok || !reflect.DeepEqual(v.Ints(), []uint64{0x34, 0x01}) {
				t.Fatalf("Lookup cntl = %v (%v), want [0x34 0x01]", v, ok)
			}
		})
	}
}

func TestJTAGSLRFieldCounts(t *testing.T) {
	want := map[Family]int{FamilyS7: 9, FamilyUP: 9, FamilyZP: 9, FamilyUS: 12}
	for f, n := range want {
		if got := len(JTAGSLRFields(f)); got != n {
			t.Errorf("len(JTAGSLRFields(%s)) = %d, want %d", f, got, n)
		}
	}
	if got := len(RegisterFields()); got != 11 {
		t.Errorf("len(RegisterFields()) = %d, want 11", got)
	}
	if JTAGSLRFields("v7") != nil {
		t.Errorf("JTAGSLRFields(v7) should be nil")
	}
}

func TestParseMissingField(t *testing.T) {
	type drop struct {
		path   string
		mutate func(raw map[string]any)
	}

	for _, f := range Families() {
		var drops []drop
		for _, key := range []string{"jtag", "registers"} {
			drops = append(drops, drop{key, func(raw map[string]any) { delete(raw, key) }})
		}
		drops = append(drops,
			drop{"jtag.device", func(raw map[string]any) { delete(mapAt(raw, "jtag"), "device") }},
			drop{"jtag.slrs", func(raw map[string]any) { delete(mapAt(raw, "jtag"), "slrs") }},
			drop{"registers.slrs", func(raw map[string]any) { delete(mapAt(raw, "registers"), "slrs") }},
		)
		for _, name := range DeviceFields() {
			drops = append(drops, drop{"jtag.device." + name, func(raw map[string]any) {
				delete(mapAt(raw, "jtag", "device"), name)
			}})
		}
		for _, name := range JTAGSLRFields(f) {
			drops = append(drops, drop{"jtag.slrs[1]." + name, func(raw map[string]any) {
				delete(jtagSLRAt(raw, 1), name)
			}})
		}
		for _, name := range RegisterFields() {
			drops = append(drops, drop{"registers.slrs[1]." + name, func(raw map[string]any) {
				delete(regsSLRAt(raw, 1), name)
			}})
		}

		for _, d := range drops {
			t.Run(string(f)+"/"+d.path, func(t *testing.T) {
				raw := rawFamily(f, 2)
				d.mutate(raw)
				_, err := Parse(raw, f)
				expectFieldError(t, err, ErrSchemaMismatch, string(f)+"."+d.path)
			})
		}
	}
}

func TestParseMissingReportedBeforeUnknown(t *testing.T) {
	raw := rawFamily(FamilyS7, 1)
	slr := jtagSLRAt(raw, 0)
	delete(slr, "user4")
	slr["fuse_rsa"] = []any{1}
	_, err := Parse(raw, FamilyS7)
	expectFieldError(t, err, ErrSchemaMismatch, "s7.jtag.slrs[0].user4")
}

func TestParseUnknownField(t *testing.T) {
	raw := rawFamily(FamilyS7, 1)
	jtagSLRAt(raw, 0)["fuse_rsa"] = []any{0x31}
	_, err := Parse(raw, FamilyS7)
	expectFieldError(t, err, ErrUnknownField, "s7.jtag.slrs[0].fuse_rsa")

	// fuse_rsa belongs to the UltraScale die shape.
	if _, err := Parse(rawFamily(FamilyUS, 1), FamilyUS); err != nil {
		t.Fatalf("US with fuse_rsa failed: %v", err)
	}

	// A US-shaped die is not acceptable for UP.
	_, err = Parse(rawFamily(FamilyUS, 1), FamilyUP)
	expectFieldError(t, err, ErrUnknownField, "up.jtag.slrs[0].fuse_rsa")

	raw = rawFamily(FamilyZP, 1)
	raw["bitstream"] = []any{}
	_, err = Parse(raw, FamilyZP)
	expectFieldError(t, err, ErrUnknownField, "zp.bitstream")

	raw = rawFamily(FamilyUS, 1)
	regsSLRAt(raw, 0)["far"] = 0
	_, err = Parse(raw, FamilyUS)
	expectFieldError(t, err, ErrUnknownField, "us.registers.slrs[0].far")
}

func TestParseTypeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw map[string]any)
		path   string
	}{
		{
			name:   "scalar where sequence required",
			mutate: func(raw map[string]any) { jtagSLRAt(raw, 0)["idcode"] = 9 },
			path:   "s7.jtag.slrs[0].idcode",
		},
		{
			name:   "sequence where scalar required",
			mutate: func(raw map[string]any) { regsSLRAt(raw, 0)["stat"] = []any{1} },
			path:   "s7.registers.slrs[0].stat",
		},
		{
			name:   "string in integer field",
			mutate: func(raw map[string]any) { regsSLRAt(raw, 0)["timer"] = "0x10" },
			path:   "s7.registers.slrs[0].timer",
		},
		{
			name:   "string element in sequence",
			mutate: func(raw map[string]any) { jtagSLRAt(raw, 0)["user2"] = []any{1, "x"} },
			path:   "s7.jtag.slrs[0].user2[1]",
		},
		{
			name:   "negative code",
			mutate: func(raw map[string]any) { mapAt(raw, "jtag", "device")["cntl"] = []any{-1} },
			path:   "s7.jtag.device.cntl[0]",
		},
		{
			name:   "fractional number",
			mutate: func(raw map[string]any) { regsSLRAt(raw, 0)["cor0"] = 1.5 },
			path:   "s7.registers.slrs[0].cor0",
		},
		{
			name:   "boolean",
			mutate: func(raw map[string]any) { regsSLRAt(raw, 0)["ctl1"] = true },
			path:   "s7.registers.slrs[0].ctl1",
		},
		{
			name:   "null leaf",
			mutate: func(raw map[string]any) { regsSLRAt(raw, 0)["axss"] = nil },
			path:   "s7.registers.slrs[0].axss",
		},
		{
			name:   "null sequence",
			mutate: func(raw map[string]any) { jtagSLRAt(raw, 0)["fuse_key"] = nil },
			path:   "s7.jtag.slrs[0].fuse_key",
		},
		{
			name:   "null register block",
			mutate: func(raw map[string]any) { mapAt(raw, "registers")["slrs"].([]any)[0] = nil },
			path:   "s7.registers.slrs[0]",
		},
		{
			name:   "mapping where sequence required",
			mutate: func(raw map[string]any) { mapAt(raw, "jtag")["slrs"] = map[string]any{} },
			path:   "s7.jtag.slrs",
		},
		{
			name:   "sequence where mapping required",
			mutate: func(raw map[string]any) { raw["jtag"] = []any{} },
			path:   "s7.jtag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawFamily(FamilyS7, 1)
			tt.mutate(raw)
			_, err := Parse(raw, FamilyS7)
			expectFieldError(t, err, ErrTypeMismatch, tt.path)
		})
	}
}

func TestParseNonMapping(t *testing.T) {
	_, err := Parse([]any{1, 2}, FamilyUS)
	expectFieldError(t, err, ErrTypeMismatch, "us")

	_, err = Parse(nil, FamilyUS)
	expectFieldError(t, err, ErrTypeMismatch, "us")
}

func TestParseUnknownFamily(t *testing.T) {
	_, err := Parse(rawFamily(FamilyS7, 1), Family("v7"))
	if !errors.Is(err, ErrUnknownFamily) {
		t.Fatalf("error = %v, want ErrUnknownFamily", err)
	}
}

func TestParseDecoderForms(t *testing.T) {
	// yaml.v2 style: interface-keyed maps and int leaves.
	slr := map[any]any{}
	for _, name := range JTAGSLRFields(FamilyS7) {
		slr[name] = []any{int64(1), uint8(2)}
	}
	regs := map[any]any{}
	for _, name := range RegisterFields() {
		regs[name] = 0xFFFFFFFF
	}
	raw := map[any]any{
		"jtag": map[any]any{
			"device": map[any]any{"cntl": []int{3, 4}},
			"slrs":   []any{slr},
		},
		"registers": map[any]any{"slrs": []any{regs}},
	}
	d, err := Parse(raw, FamilyS7)
	if err != nil {
		t.Fatalf("Parse yaml form failed: %v", err)
	}
	if got := d.Cntl(); !reflect.DeepEqual(got, []uint64{3, 4}) {
		t.Fatalf("Cntl() = %v, want [3 4]", got)
	}
	if r, _ := d.RegistersSLR(0); r.Bootsts != 0xFFFFFFFF {
		t.Fatalf("Bootsts = 0x%X, want 0xFFFFFFFF", r.Bootsts)
	}

	// encoding/json style: float64 and json.Number leaves.
	js := rawFamily(FamilyUS, 1)
	regsSLRAt(js, 0)["wbstar"] = float64(0x20)
	regsSLRAt(js, 0)["idcode"] = json.Number("58720403")
	d, err = Parse(js, FamilyUS)
	if err != nil {
		t.Fatalf("Parse json form failed: %v", err)
	}
	r, _ := d.RegistersSLR(0)
	if r.Wbstar != 0x20 || r.IDCode != 58720403 {
		t.Fatalf("registers = %+v", r)
	}

	bad := map[any]any{1: "x"}
	_, err = Parse(bad, FamilyS7)
	expectFieldError(t, err, ErrTypeMismatch, "s7")
}

func TestParseDoesNotAliasInput(t *testing.T) {
	raw := rawFamily(FamilyS7, 1)
	d, err := Parse(raw, FamilyS7)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	jtagSLRAt(raw, 0)["idcode"].([]any)[0] = uint64(0xDEAD)

	slr, _ := d.JTAGSLR(0)
	if slr.IDCode()[0] == 0xDEAD {
		t.Fatalf("descriptor changed after input was mutated")
	}
	slr.IDCode()[0] = 0xBEEF
	if slr.IDCode()[0] == 0xBEEF {
		t.Fatalf("descriptor changed through accessor result")
	}
}

func TestValidateSLRAlignment(t *testing.T) {
	raw := rawFamily(FamilyUS, 3)
	slrs := mapAt(raw, "jtag")["slrs"].([]any)
	mapAt(raw, "jtag")["slrs"] = slrs[:2]

	d, err := Parse(raw, FamilyUS)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	err = ValidateSLRAlignment(d)
	expectFieldError(t, err, ErrSlrCountMismatch, "us.registers.slrs")

	aligned, err := Parse(rawFamily(FamilyUS, 3), FamilyUS)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := ValidateSLRAlignment(aligned); err != nil {
		t.Fatalf("ValidateSLRAlignment failed: %v", err)
	}
}

func TestValidateSLRAlignmentCountsAbsentBlocks(t *testing.T) {
	raw := rawFamily(FamilyS7, 2)
	mapAt(raw, "jtag")["slrs"].([]any)[1] = nil
	d, err := Parse(raw, FamilyS7)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := ValidateSLRAlignment(d); err != nil {
		t.Fatalf("ValidateSLRAlignment failed: %v", err)
	}
}

func TestLookupNotFound(t *testing.T) {
	raw := rawFamily(FamilyS7, 2)
	mapAt(raw, "jtag")["slrs"].([]any)[1] = nil
	d, err := Parse(raw, FamilyS7)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, ok := d.JTAGSLR(1); ok {
		t.Fatalf("JTAGSLR(1) should be absent")
	}

	missing := []string{
		"jtag.slrs[1].fuse_dna", // block absent for die 1
		"jtag.slrs[1]",
		"jtag.slrs[7].idcode", // past the end
		"jtag.slrs[0].fuse_rsa", // not part of the s7 shape
		"registers.slrs[2].ctl0",
		"registers.slrs[0].far",
		"registers.slrs[0].ctl0.extra",
		"jtag.device.cntl.extra",
		"jtag[0]",
		"bitstream",
	}
	for _, p := range missing {
		v, ok, err := d.LookupString(p)
		if err != nil {
			t.Fatalf("LookupString(%q) error: %v", p, err)
		}
		if ok {
			t.Errorf("LookupString(%q) = %v, want not found", p, v)
		}
	}

	if v, ok := d.Lookup(MustParsePath("jtag.slrs[0].fuse_dna")); !ok || v.Len() != 2 {
		t.Fatalf("die 0 fuse_dna = %v (%v)", v, ok)
	}
}

func TestLookupContainers(t *testing.T) {
	d, err := Parse(rawFamily(FamilyUS, 2), FamilyUS)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	tests := []struct {
		path string
		kind Kind
		len  int
	}{
		{"jtag", KindBlock, 2},
		{"jtag.slrs", KindList, 2},
		{"jtag.slrs[1]", KindBlock, 12},
		{"jtag.device", KindBlock, 1},
		{"registers.slrs", KindList, 2},
		{"registers.slrs[0]", KindBlock, 11},
		{"registers.slrs[0].bootsts", KindInt, 1},
	}
	for _, tt := range tests {
		v, ok, err := d.LookupString(tt.path)
		if err != nil || !ok {
			t.Fatalf("LookupString(%q) = %v, %v", tt.path, ok, err)
		}
		if v.Kind() != tt.kind || v.Len() != tt.len {
			t.Errorf("LookupString(%q) = %s len %d, want %s len %d", tt.path, v.Kind(), v.Len(), tt.kind, tt.len)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, f := range Families() {
		t.Run(string(f), func(t *testing.T) {
			raw := rawFamily(f, 3)
			mapAt(raw, "jtag")["slrs"].([]any)[2] = nil
			d, err := Parse(raw, f)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			again, err := Parse(d.Encode(), f)
			if err != nil {
				t.Fatalf("re-Parse failed: %v", err)
			}
			if !reflect.DeepEqual(d, again) {
				t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", again, d)
			}

			data, err := json.Marshal(d)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			dec := json.NewDecoder(bytes.NewReader(data))
			dec.UseNumber()
			var generic any
			if err := dec.Decode(&generic); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			fromJSON, err := Parse(generic, f)
			if err != nil {
				t.Fatalf("Parse of JSON output failed: %v", err)
			}
			if !reflect.DeepEqual(d, fromJSON) {
				t.Fatalf("JSON round trip mismatch")
			}
		})
	}
}

func TestParseFamily(t *testing.T) {
	for _, tag := range []string{"s7", "US", " up ", "zp"} {
		if _, err := ParseFamily(tag); err != nil {
			t.Errorf("ParseFamily(%q) failed: %v", tag, err)
		}
	}
	if _, err := ParseFamily("versal"); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("ParseFamily(versal) error = %v, want ErrUnknownFamily", err)
	}
	if FamilyZP.Name() != "Zynq UltraScale+" {
		t.Errorf("FamilyZP.Name() = %q", FamilyZP.Name())
	}
}
