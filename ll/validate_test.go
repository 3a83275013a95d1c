package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestValidateScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	if c := Validate(Analysis(makeGrammarA(t))); !c.LL1 || c.Err() != nil {
		t.Errorf("expected grammar A to be LL(1), violations: %v", c.Violations)
	}
	if !IsLL1(makeGrammarC(t)) {
		t.Errorf("expected grammar C to be LL(1)")
	}
	c := Validate(Analysis(makeGrammarB(t)))
	if c.LL1 {
		t.Fatalf("expected grammar B not to be LL(1)")
	}
	if len(c.Violations) != 1 || c.Violations[0].Rule != FirstFirstRule {
		t.Fatalf("expected a single FIRST/FIRST violation, have %v", c.Violations)
	}
	v := c.Violations[0]
	if v.NonTerminal != N("S") || !v.Overlap.Equals(NewSymbolSet(T("a"))) {
		t.Errorf("expected overlap { a } for S, have %v for %s", v.Overlap, v.NonTerminal)
	}
	var cerr *ConformanceError
	if !errors.As(c.Err(), &cerr) {
		t.Errorf("expected a conformance error, got %v", c.Err())
	}
}

func TestValidateFirstFollowRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("FF")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	g, _ := b.Grammar()
	c := Validate(Analysis(g))
	if c.LL1 || len(c.Violations) != 1 || c.Violations[0].Rule != EpsilonRightRule {
		t.Errorf("expected a FIRST/FOLLOW violation, have %v", c.Violations)
	}
}

// testGrammars returns a collection of LL(1) and non-LL(1) grammars.
func testGrammars(t *testing.T) []*Grammar {
	gs := []*Grammar{makeGrammarA(t), makeGrammarB(t), makeGrammarC(t)}
	build := func(name string, f func(b *GrammarBuilder)) {
		b := NewGrammarBuilder(name)
		f(b)
		g, err := b.Grammar()
		if err != nil {
			t.Fatal(err)
		}
		gs = append(gs, g)
	}
	build("left-recursive", func(b *GrammarBuilder) {
		b.LHS("E").N("E").T("+").N("T").End()
		b.LHS("E").N("T").End()
		b.LHS("T").T("id").End()
	})
	build("dangling-else", func(b *GrammarBuilder) {
		b.LHS("S").T("if").N("S").N("X").End()
		b.LHS("S").T("a").End()
		b.LHS("X").T("else").N("S").End()
		b.LHS("X").Epsilon()
	})
	build("first-follow", func(b *GrammarBuilder) {
		b.LHS("S").N("A").T("a").End()
		b.LHS("A").T("a").End()
		b.LHS("A").Epsilon()
	})
	build("duplicate-rules", func(b *GrammarBuilder) {
		b.LHS("S").T("a").End()
		b.LHS("S").T("a").End()
	})
	build("two-epsilons", func(b *GrammarBuilder) {
		b.LHS("S").N("A").T("b").End()
		b.LHS("A").Epsilon()
		b.LHS("A").Epsilon()
	})
	build("unreachable-epsilons", func(b *GrammarBuilder) {
		b.LHS("S").T("a").End()
		b.LHS("X").Epsilon()
		b.LHS("X").Epsilon()
	})
	build("nullable-chain", func(b *GrammarBuilder) {
		b.LHS("S").N("A").N("B").T("c").End()
		b.LHS("A").T("a").End()
		b.LHS("A").Epsilon()
		b.LHS("B").T("b").End()
		b.LHS("B").Epsilon()
	})
	build("nullable-overlap", func(b *GrammarBuilder) {
		b.LHS("S").N("A").N("B").End()
		b.LHS("A").T("x").End()
		b.LHS("A").Epsilon()
		b.LHS("B").T("x").End()
		b.LHS("B").Epsilon()
	})
	build("common-prefix", func(b *GrammarBuilder) {
		b.LHS("S").T("a").T("b").End()
		b.LHS("S").T("a").T("c").End()
	})
	return gs
}

// The validator accepts a grammar if and only if the table builder succeeds.
func TestValidatorTableEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	expectLL1 := map[string]bool{
		"A": true, "B": false, "C": true,
		"left-recursive": false, "dangling-else": false, "first-follow": false,
		"duplicate-rules": false, "two-epsilons": false, "unreachable-epsilons": true,
		"nullable-chain": true, "nullable-overlap": false, "common-prefix": false,
	}
	for _, g := range testGrammars(t) {
		ga := Analysis(g)
		c := Validate(ga)
		_, err := BuildTable(ga)
		if c.LL1 != (err == nil) {
			t.Errorf("%s: validator says LL(1)=%v, table builder error=%v", g.Name, c.LL1, err)
		}
		if c.LL1 != expectLL1[g.Name] {
			t.Errorf("%s: expected LL(1)=%v, is %v", g.Name, expectLL1[g.Name], c.LL1)
		}
	}
}
