package skills

import "sort"

// Named keys for the basic and advanced categories. Complement skills are
// keyed by their literal arithmetic identity ("4=5-1", "9=10-1") instead.
const (
	KeyDirectAddition        = "directAddition"
	KeyDirectSubtraction     = "directSubtraction"
	KeyHeavenBead            = "heavenBead"
	KeyHeavenBeadSubtraction = "heavenBeadSubtraction"
	KeySimpleCombinations    = "simpleCombinations"
	KeySimpleCombinationsSub = "simpleCombinationsSub"
	KeyCascadingCarry        = "cascadingCarry"
	KeyCascadingBorrow       = "cascadingBorrow"
)

// Canonical skill IDs referenced throughout the engine.
var (
	DirectAddition        = ID{CategoryBasic, KeyDirectAddition}
	DirectSubtraction     = ID{CategoryBasic, KeyDirectSubtraction}
	HeavenBead            = ID{CategoryBasic, KeyHeavenBead}
	HeavenBeadSubtraction = ID{CategoryBasic, KeyHeavenBeadSubtraction}
	SimpleCombinations    = ID{CategoryBasic, KeySimpleCombinations}
	SimpleCombinationsSub = ID{CategoryBasic, KeySimpleCombinationsSub}
	CascadingCarry        = ID{CategoryAdvanced, KeyCascadingCarry}
	CascadingBorrow       = ID{CategoryAdvanced, KeyCascadingBorrow}
)

// FiveComplementKey returns the identity key for adding or subtracting n
// (1-4) via the five complement, e.g. FiveComplementKey(4) = "4=5-1".
func FiveComplementKey(n int) string {
	return fiveKeys[n]
}

// TenComplementKey returns the identity key for a carry or borrow of n
// (1-9) via the ten complement, e.g. TenComplementKey(9) = "9=10-1".
func TenComplementKey(n int) string {
	return tenKeys[n]
}

var fiveKeys = map[int]string{
	1: "1=5-4",
	2: "2=5-3",
	3: "3=5-2",
	4: "4=5-1",
}

var tenKeys = map[int]string{
	1: "1=10-9",
	2: "2=10-8",
	3: "3=10-7",
	4: "4=10-6",
	5: "5=10-5",
	6: "6=10-4",
	7: "7=10-3",
	8: "8=10-2",
	9: "9=10-1",
}

// catalog lists every known skill key per category, in curriculum order.
var catalog = map[Category][]string{
	CategoryBasic: {
		KeyDirectAddition,
		KeyDirectSubtraction,
		KeyHeavenBead,
		KeyHeavenBeadSubtraction,
		KeySimpleCombinations,
		KeySimpleCombinationsSub,
	},
	CategoryFiveComplements:    {"4=5-1", "3=5-2", "2=5-3", "1=5-4"},
	CategoryFiveComplementsSub: {"4=5-1", "3=5-2", "2=5-3", "1=5-4"},
	CategoryTenComplements: {
		"9=10-1", "8=10-2", "7=10-3", "6=10-4", "5=10-5",
		"4=10-6", "3=10-7", "2=10-8", "1=10-9",
	},
	CategoryTenComplementsSub: {
		"9=10-1", "8=10-2", "7=10-3", "6=10-4", "5=10-5",
		"4=10-6", "3=10-7", "2=10-8", "1=10-9",
	},
	CategoryAdvanced: {KeyCascadingCarry, KeyCascadingBorrow},
}

// Catalog returns every known skill ID in curriculum order.
func Catalog() []ID {
	var ids []ID
	for _, c := range AllCategories() {
		for _, key := range catalog[c] {
			ids = append(ids, ID{Category: c, Key: key})
		}
	}
	return ids
}

// FullSet returns a Set with every cataloged skill enabled.
func FullSet() Set {
	s := NewSet()
	for _, id := range Catalog() {
		s.Enable(id)
	}
	return s
}

func catalogKeysOrdered(c Category) []string {
	return catalog[c]
}

func inCatalog(c Category, key string) bool {
	for _, k := range catalog[c] {
		if k == key {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
