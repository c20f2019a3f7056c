package skills

import (
	"fmt"
	"strings"
)

// Category represents a soroban technique family. The set of categories is
// closed: every skill belongs to exactly one category, and classification
// code switches exhaustively over them.
type Category int

const (
	CategoryBasic Category = iota
	CategoryFiveComplements
	CategoryFiveComplementsSub
	CategoryTenComplements
	CategoryTenComplementsSub
	CategoryAdvanced
	numCategories
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryBasic,
		CategoryFiveComplements,
		CategoryFiveComplementsSub,
		CategoryTenComplements,
		CategoryTenComplementsSub,
		CategoryAdvanced,
	}
}

// String returns the wire key for a category, as used in dotted skill IDs.
func (c Category) String() string {
	switch c {
	case CategoryBasic:
		return "basic"
	case CategoryFiveComplements:
		return "fiveComplements"
	case CategoryFiveComplementsSub:
		return "fiveComplementsSub"
	case CategoryTenComplements:
		return "tenComplements"
	case CategoryTenComplementsSub:
		return "tenComplementsSub"
	case CategoryAdvanced:
		return "advanced"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryBasic:
		return "Basic Bead Movements"
	case CategoryFiveComplements:
		return "Five Complements (Addition)"
	case CategoryFiveComplementsSub:
		return "Five Complements (Subtraction)"
	case CategoryTenComplements:
		return "Ten Complements (Addition)"
	case CategoryTenComplementsSub:
		return "Ten Complements (Subtraction)"
	case CategoryAdvanced:
		return "Advanced Techniques"
	default:
		return c.String()
	}
}

// ParseCategory maps a category key back to its Category.
// The second return is false for unknown keys.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// ID identifies one discrete arithmetic technique, e.g.
// basic.directAddition or fiveComplements.4=5-1.
type ID struct {
	Category Category
	Key      string
}

// String renders the dotted form of the skill ID.
func (id ID) String() string {
	return id.Category.String() + "." + id.Key
}

// Parse splits a dotted skill ID into its category and key.
// The second return is false if the category is unknown or the key is empty.
func Parse(s string) (ID, bool) {
	cat, key, found := strings.Cut(s, ".")
	if !found || key == "" {
		return ID{}, false
	}
	c, ok := ParseCategory(cat)
	if !ok {
		return ID{}, false
	}
	return ID{Category: c, Key: key}, true
}

// MustParse is Parse that panics on malformed IDs. For use with literals.
func MustParse(s string) ID {
	id, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("skills: malformed skill ID %q", s))
	}
	return id
}
