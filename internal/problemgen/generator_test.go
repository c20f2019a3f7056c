package problemgen

import (
	"math/rand"
	"testing"

	"github.com/hikaru-dev/soroban/internal/skills"
)

func intPtr(n int) *int { return &n }

func additionOnly() skills.Set {
	return skills.SetOf(
		"basic.directAddition",
		"basic.heavenBead",
		"basic.simpleCombinations",
		"fiveComplements.4=5-1",
		"fiveComplements.3=5-2",
		"fiveComplements.2=5-3",
		"fiveComplements.1=5-4",
	)
}

func TestGenerate_AnswerIsSum(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	c := Constraints{
		NumberRange: Range{Min: 1, Max: 9},
		MinTerms:    3,
		MaxTerms:    5,
	}
	for i := 0; i < 50; i++ {
		p := g.Generate(c, skills.FullSet(), nil, nil)
		if p == nil {
			t.Fatal("generation failed under permissive constraints")
		}
		sum := 0
		for _, term := range p.Terms {
			sum += term
		}
		if p.Answer != sum {
			t.Fatalf("Answer = %d, terms sum to %d", p.Answer, sum)
		}
		if len(p.Terms) < 3 || len(p.Terms) > 5 {
			t.Fatalf("term count %d outside [3, 5]", len(p.Terms))
		}
	}
}

func TestGenerate_PrefixSumsNonNegative(t *testing.T) {
	g := New(rand.New(rand.NewSource(7)))
	c := Constraints{
		NumberRange: Range{Min: 1, Max: 9},
		MinTerms:    4,
		MaxTerms:    8,
	}
	allowed := skills.FullSet() // subtraction in play
	for i := 0; i < 100; i++ {
		p := g.Generate(c, allowed, nil, nil)
		if p == nil {
			continue
		}
		total := 0
		for j, term := range p.Terms {
			total += term
			if total < 0 {
				t.Fatalf("prefix sum %d negative after term %d of %v", total, j, p.Terms)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	c := Constraints{NumberRange: Range{Min: 1, Max: 9}, MinTerms: 3, MaxTerms: 5}
	a := New(rand.New(rand.NewSource(42))).Generate(c, skills.FullSet(), nil, nil)
	b := New(rand.New(rand.NewSource(42))).Generate(c, skills.FullSet(), nil, nil)
	if a == nil || b == nil {
		t.Fatal("generation failed")
	}
	if len(a.Terms) != len(b.Terms) {
		t.Fatalf("same seed, different term counts: %v vs %v", a.Terms, b.Terms)
	}
	for i := range a.Terms {
		if a.Terms[i] != b.Terms[i] {
			t.Fatalf("same seed, different terms: %v vs %v", a.Terms, b.Terms)
		}
	}
}

func TestGenerate_NoSubtractionWithoutSkill(t *testing.T) {
	g := New(rand.New(rand.NewSource(3)))
	c := Constraints{NumberRange: Range{Min: 1, Max: 9}, MinTerms: 3, MaxTerms: 6}
	for i := 0; i < 50; i++ {
		p := g.Generate(c, additionOnly(), nil, nil)
		if p == nil {
			continue
		}
		for _, term := range p.Terms {
			if term < 0 {
				t.Fatalf("negative term %d without any subtraction skill", term)
			}
		}
	}
}

func TestGenerate_InfeasibleReturnsNilWithDiagnostics(t *testing.T) {
	g := New(rand.New(rand.NewSource(5)))
	// Three terms of at least 1 each can never sum below 3.
	c := Constraints{
		NumberRange: Range{Min: 1, Max: 3},
		MinTerms:    3,
		MaxTerms:    3,
		MaxSum:      intPtr(1),
	}
	p, diag := g.GenerateWithDiagnostics(c, additionOnly(), nil, nil)
	if p != nil {
		t.Fatalf("expected nil for infeasible constraints, got %v", p.Terms)
	}
	if diag.Attempts != DefaultMaxAttempts {
		t.Errorf("Attempts = %d, want %d", diag.Attempts, DefaultMaxAttempts)
	}
	if diag.SumFailures != DefaultMaxAttempts {
		t.Errorf("SumFailures = %d, want every attempt", diag.SumFailures)
	}
}

func TestGenerate_TargetFilter(t *testing.T) {
	g := New(rand.New(rand.NewSource(11)))
	c := Constraints{NumberRange: Range{Min: 1, Max: 9}, MinTerms: 3, MaxTerms: 5}
	target := skills.SetOf("fiveComplements.4=5-1")

	p := g.Generate(c, additionOnly(), target, nil)
	if p == nil {
		t.Skip("no five-complement problem found within the attempt budget")
	}
	found := false
	for _, id := range p.SkillsRequired {
		if target.Enabled(id) {
			found = true
		}
	}
	if !found {
		t.Errorf("problem %v does not exercise the target skill", p.Terms)
	}
}

func TestGenerate_ForbiddenFilter(t *testing.T) {
	g := New(rand.New(rand.NewSource(13)))
	c := Constraints{NumberRange: Range{Min: 1, Max: 9}, MinTerms: 3, MaxTerms: 5}
	forbidden := skills.SetOf("basic.heavenBead")

	for i := 0; i < 30; i++ {
		p := g.Generate(c, additionOnly(), nil, forbidden)
		if p == nil {
			continue
		}
		for _, id := range p.SkillsRequired {
			if forbidden.Enabled(id) {
				t.Fatalf("problem %v uses forbidden skill %s", p.Terms, id)
			}
		}
	}
}

func TestGenerate_ComplexityCeiling(t *testing.T) {
	g := New(rand.New(rand.NewSource(17)))
	c := Constraints{
		NumberRange: Range{Min: 1, Max: 9},
		MinTerms:    3,
		MaxTerms:    5,
		Complexity:  &Bounds{Max: intPtr(1)},
	}
	for i := 0; i < 30; i++ {
		p := g.Generate(c, skills.FullSet(), nil, nil)
		if p == nil {
			continue
		}
		for _, step := range p.Trace {
			if step.Cost > 1 {
				t.Fatalf("step cost %d exceeds ceiling in %v", step.Cost, p.Terms)
			}
		}
	}
}

func TestGenerate_PanicsOnMalformedConstraints(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	cases := []Constraints{
		{NumberRange: Range{Min: 1, Max: 9}, MinTerms: 0, MaxTerms: 3},
		{NumberRange: Range{Min: 1, Max: 9}, MinTerms: 4, MaxTerms: 2},
		{NumberRange: Range{Min: 0, Max: 9}, MinTerms: 2, MaxTerms: 3},
		{NumberRange: Range{Min: 5, Max: 2}, MinTerms: 2, MaxTerms: 3},
	}
	for i, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: expected panic", i)
				}
			}()
			g.Generate(c, additionOnly(), nil, nil)
		}()
	}
}

func TestTrace_SkillsDeduplicated(t *testing.T) {
	g := New(rand.New(rand.NewSource(19)))
	p := g.trace([]int{1, 1, 1, 1})
	if len(p.SkillsRequired) != 1 || p.SkillsRequired[0] != skills.DirectAddition {
		t.Errorf("SkillsRequired = %v, want just directAddition", p.SkillsRequired)
	}
	if len(p.Trace) != 4 {
		t.Errorf("Trace length = %d, want 4", len(p.Trace))
	}
}
