package skills

import "testing"

func TestParse_Roundtrip(t *testing.T) {
	cases := []string{
		"basic.directAddition",
		"fiveComplements.4=5-1",
		"tenComplementsSub.9=10-1",
		"advanced.cascadingCarry",
	}
	for _, s := range cases {
		id, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(%q) failed", s)
		}
		if got := id.String(); got != s {
			t.Errorf("roundtrip %q -> %q", s, got)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "basic", "basic.", "noSuchCategory.x", ".key"} {
		if _, ok := Parse(s); ok {
			t.Errorf("Parse(%q) succeeded, want failure", s)
		}
	}
}

func TestMustParse_PanicsOnMalformed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("bogus")
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, ok := ParseCategory(c.String())
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCategory("Basic"); ok {
		t.Error("ParseCategory is case-sensitive, should reject Basic")
	}
}

func TestSet_EnableDisable(t *testing.T) {
	s := NewSet()
	if !s.Empty() {
		t.Error("new set should be empty")
	}
	s.Enable(DirectAddition)
	if !s.Enabled(DirectAddition) {
		t.Error("DirectAddition should be enabled")
	}
	if s.Enabled(DirectSubtraction) {
		t.Error("DirectSubtraction should not be enabled")
	}
	s.Disable(DirectAddition)
	if s.Enabled(DirectAddition) {
		t.Error("DirectAddition should be disabled")
	}
	if !s.Empty() {
		t.Error("set with only disabled entries is empty")
	}
}

func TestSet_IDsCatalogOrder(t *testing.T) {
	s := SetOf("fiveComplements.1=5-4", "basic.heavenBead", "fiveComplements.4=5-1")
	got := s.IDs()
	want := []ID{
		HeavenBead,
		{CategoryFiveComplements, "4=5-1"},
		{CategoryFiveComplements, "1=5-4"},
	}
	if len(got) != len(want) {
		t.Fatalf("IDs() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSet_HasSubtraction(t *testing.T) {
	if SetOf("basic.directAddition", "fiveComplements.4=5-1").HasSubtraction() {
		t.Error("addition-only set reports subtraction")
	}
	if !SetOf("basic.directSubtraction").HasSubtraction() {
		t.Error("directSubtraction not detected")
	}
	if !SetOf("tenComplementsSub.9=10-1").HasSubtraction() {
		t.Error("tenComplementsSub not detected")
	}
	if !SetOf("advanced.cascadingBorrow").HasSubtraction() {
		t.Error("cascadingBorrow not detected")
	}
}

func TestComplementKeys(t *testing.T) {
	if got := FiveComplementKey(4); got != "4=5-1" {
		t.Errorf("FiveComplementKey(4) = %q", got)
	}
	if got := TenComplementKey(9); got != "9=10-1" {
		t.Errorf("TenComplementKey(9) = %q", got)
	}
}

func TestFullSet_CoversCatalog(t *testing.T) {
	s := FullSet()
	for _, id := range Catalog() {
		if !s.Enabled(id) {
			t.Errorf("catalog skill %s not enabled in FullSet", id)
		}
	}
	if got, want := len(s.IDs()), len(Catalog()); got != want {
		t.Errorf("FullSet IDs = %d, want %d", got, want)
	}
}
