package parts

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/OpenTraceDevMap/pkg/devmap"
)

func descriptor(t *testing.T, f devmap.Family, jtagDies, regDies int) *devmap.Descriptor {
	t.Helper()
	slr := map[string]any{}
	for _, name := range devmap.JTAGSLRFields(f) {
		slr[name] = []any{1}
	}
	regs := map[string]any{}
	for _, name := range devmap.RegisterFields() {
		regs[name] = 0
	}
	jtag := make([]any, jtagDies)
	for i := range jtag {
		jtag[i] = slr
	}
	rs := make([]any, regDies)
	for i := range rs {
		rs[i] = regs
	}
	d, err := devmap.Parse(map[string]any{
		"jtag": map[string]any{
			"device": map[string]any{"cntl": []any{0x34}},
			"slrs":   jtag,
		},
		"registers": map[string]any{"slrs": rs},
	}, f)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return d
}

func TestLookup(t *testing.T) {
	tests := []struct {
		id       uint32
		name     string
		family   Family
		slrs     int
		irlen    int
		readback int
	}{
		{0x0362D093, "XC7A35T", S7, 1, 6, 548003},
		{0x3362D093, "XC7A35T", S7, 1, 6, 548003}, // other revision
		{0x03822093, "XCKU040", US, 1, 6, 4001190},
		{0x0380F093, "XCKU085", US, 2, 12, 12061380},
		{0x03933093, "XCVU160", US, 3, 18, 18815310},
		{0x14B31093, "XCVU9P", UP, 3, 18, 20035783},
		{0x04B31093, "XCVU9P", UP, 3, 18, 20035783},
		{0x04B51093, "XCVU13P", UP, 4, 24, 28327056},
		{0x24738093, "XCZU9EG", ZP, 1, 12, 6627180},
		{0x03727093, "XC7Z020", Z7, 1, 6, 1011391},
		{0x14D00093, "XCVP1202", Versal, 1, 6, 0},
	}

	for _, tt := range tests {
		p, ok := Lookup(tt.id)
		if !ok {
			t.Errorf("Lookup(0x%08X) not found", tt.id)
			continue
		}
		if p.Name != tt.name || p.Family != tt.family || p.SLRs != tt.slrs || p.IRLength != tt.irlen || p.ReadbackWords != tt.readback {
			t.Errorf("Lookup(0x%08X) = %+v", tt.id, p)
		}
		if p.IDCode&0xF0000000 != 0 {
			t.Errorf("%s: IDCode 0x%08X keeps its version nibble", p.Name, p.IDCode)
		}
	}

	if _, ok := Lookup(0x0BA00477); ok {
		t.Errorf("ARM DAP should not be a known part")
	}
}

func TestIRLengthPerSLR(t *testing.T) {
	p, _ := LookupName("XCVU13P")
	if got := p.IRLengthPerSLR(); got != 6 {
		t.Fatalf("IRLengthPerSLR = %d, want 6", got)
	}
}

func TestDescriptorFamily(t *testing.T) {
	want := map[Family]devmap.Family{
		S7: devmap.FamilyS7,
		US: devmap.FamilyUS,
		UP: devmap.FamilyUP,
		ZP: devmap.FamilyZP,
	}
	for _, f := range Families() {
		p := Part{Family: f}
		got, ok := p.DescriptorFamily()
		w, has := want[f]
		if ok != has || got != w {
			t.Errorf("%s: DescriptorFamily = %q, %v", f, got, ok)
		}
	}
}

func TestAllAndByFamily(t *testing.T) {
	all := All()
	if len(all) < 100 {
		t.Fatalf("All() returned %d parts", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Fatalf("All() not sorted at %s, %s", all[i-1].Name, all[i].Name)
		}
	}

	total := 0
	for _, f := range Families() {
		ps := ByFamily(f)
		if len(ps) == 0 {
			t.Errorf("ByFamily(%s) is empty", f)
		}
		for _, p := range ps {
			if p.Family != f {
				t.Errorf("ByFamily(%s) returned %s of %s", f, p.Name, p.Family)
			}
		}
		total += len(ps)
	}
	if total != len(all) {
		t.Fatalf("families cover %d parts, All has %d", total, len(all))
	}
}

func TestParseFamily(t *testing.T) {
	for in, want := range map[string]Family{"s7": S7, "UP": UP, "versal": Versal, " zp ": ZP} {
		got, err := ParseFamily(in)
		if err != nil || got != want {
			t.Errorf("ParseFamily(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFamily("spartan6"); err == nil {
		t.Errorf("expected error for spartan6")
	}
}

func TestCheckDescriptor(t *testing.T) {
	vu9p, _ := Lookup(0x14B31093)
	a35t, _ := Lookup(0x0362D093)
	z020, _ := Lookup(0x03727093)

	if err := CheckDescriptor(vu9p, descriptor(t, devmap.FamilyUP, 3, 3)); err != nil {
		t.Fatalf("CheckDescriptor(XCVU9P) failed: %v", err)
	}

	err := CheckDescriptor(vu9p, descriptor(t, devmap.FamilyUP, 2, 3))
	if !errors.Is(err, devmap.ErrSlrCountMismatch) {
		t.Fatalf("error = %v, want ErrSlrCountMismatch", err)
	}
	var fe *devmap.FieldError
	if !errors.As(err, &fe) || fe.Path != "up.jtag.slrs" {
		t.Fatalf("error = %v, want path up.jtag.slrs", err)
	}

	err = CheckDescriptor(vu9p, descriptor(t, devmap.FamilyUP, 3, 1))
	if !errors.As(err, &fe) || fe.Path != "up.registers.slrs" {
		t.Fatalf("error = %v, want path up.registers.slrs", err)
	}

	if err := CheckDescriptor(a35t, descriptor(t, devmap.FamilyUS, 1, 1)); err == nil {
		t.Fatalf("expected family mismatch error")
	}
	if err := CheckDescriptor(z020, descriptor(t, devmap.FamilyS7, 1, 1)); err == nil {
		t.Fatalf("expected error for a part without descriptor shape")
	}
}
