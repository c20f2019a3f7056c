package skills

// Set maps category → {skill key → enabled}. It represents which techniques
// are currently in play for a given filtering role (practicing, allowed,
// forbidden, target). A nil inner map means no skill in that category is set.
type Set map[Category]map[string]bool

// NewSet returns an empty Set with no categories populated.
func NewSet() Set {
	return make(Set)
}

// Enable marks a skill as set.
func (s Set) Enable(id ID) {
	if s[id.Category] == nil {
		s[id.Category] = make(map[string]bool)
	}
	s[id.Category][id.Key] = true
}

// Disable clears a skill. The category map is kept (a recorded false matters
// for forbidden-set semantics, where only true entries forbid).
func (s Set) Disable(id ID) {
	if s[id.Category] == nil {
		s[id.Category] = make(map[string]bool)
	}
	s[id.Category][id.Key] = false
}

// Enabled reports whether the skill is present and set to true.
func (s Set) Enabled(id ID) bool {
	return s[id.Category][id.Key]
}

// Empty reports whether no skill in the set is enabled.
func (s Set) Empty() bool {
	for _, keys := range s {
		for _, on := range keys {
			if on {
				return false
			}
		}
	}
	return true
}

// IDs returns all enabled skill IDs, in catalog order where cataloged and
// category order otherwise.
func (s Set) IDs() []ID {
	var ids []ID
	for _, c := range AllCategories() {
		keys := s[c]
		if keys == nil {
			continue
		}
		for _, key := range catalogKeysOrdered(c) {
			if keys[key] {
				ids = append(ids, ID{Category: c, Key: key})
			}
		}
		// Keys outside the catalog still count; append deterministically.
		for _, key := range sortedKeys(keys) {
			if keys[key] && !inCatalog(c, key) {
				ids = append(ids, ID{Category: c, Key: key})
			}
		}
	}
	return ids
}

// HasSubtraction reports whether any enabled skill permits subtraction terms.
func (s Set) HasSubtraction() bool {
	for _, c := range []Category{CategoryFiveComplementsSub, CategoryTenComplementsSub} {
		for _, on := range s[c] {
			if on {
				return true
			}
		}
	}
	for key, on := range s[CategoryBasic] {
		if on && isSubtractionKey(key) {
			return true
		}
	}
	for key, on := range s[CategoryAdvanced] {
		if on && key == KeyCascadingBorrow {
			return true
		}
	}
	return false
}

func isSubtractionKey(key string) bool {
	switch key {
	case KeyDirectSubtraction, KeyHeavenBeadSubtraction, KeySimpleCombinationsSub:
		return true
	}
	return false
}

// SetOf builds a Set from a list of dotted IDs. Panics on malformed IDs,
// matching MustParse; intended for config seeds and tests.
func SetOf(dotted ...string) Set {
	s := NewSet()
	for _, d := range dotted {
		s.Enable(MustParse(d))
	}
	return s
}
