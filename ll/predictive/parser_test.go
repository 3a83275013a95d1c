package predictive

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S ➞ A a B,  A ➞ b A | ε,  B ➞ c B | ε
func makeGrammarA(t *testing.T) *ll.Grammar {
	b := ll.NewGrammarBuilder("A")
	b.LHS("S").N("A").T("a").N("B").End()
	b.LHS("A").T("b").N("A").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("c").N("B").End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// E ➞ T S,  S ➞ y T S | ε,  T ➞ F B,  B ➞ x F B | ε,  F ➞ i | n E m
func makeGrammarC(t *testing.T) *ll.Grammar {
	b := ll.NewGrammarBuilder("C")
	b.LHS("E").N("T").N("S").End()
	b.LHS("S").T("y").N("T").N("S").End()
	b.LHS("S").Epsilon()
	b.LHS("T").N("F").N("B").End()
	b.LHS("B").T("x").N("F").N("B").End()
	b.LHS("B").Epsilon()
	b.LHS("F").T("i").End()
	b.LHS("F").T("n").N("E").T("m").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// S ➞ a b
func makeGrammarAB(t *testing.T) *ll.Grammar {
	b := ll.NewGrammarBuilder("AB")
	b.LHS("S").T("a").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func makeParser(t *testing.T, g *ll.Grammar, opts ...Option) *Parser {
	ga := ll.Analysis(g)
	table, err := ll.BuildTable(ga)
	if err != nil {
		t.Fatal(err)
	}
	return NewParser(ga, table, opts...)
}

// input splits a string into terminals, at whitespace if there is any,
// otherwise one per character.
func input(s string) []ll.Symbol {
	var fields []string
	if strings.ContainsAny(s, " \t") {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, "")
	}
	syms := make([]ll.Symbol, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		syms = append(syms, ll.T(f))
	}
	return syms
}

func TestParseSentences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	pA := makeParser(t, makeGrammarA(t))
	pC := makeParser(t, makeGrammarC(t))
	for _, test := range []struct {
		p     *Parser
		input string
	}{
		{pA, "a"},
		{pA, "bacc"},
		{pA, "ba"},
		{pA, "bbbac"},
		{pA, "a $"},
		{pC, "ixiyi"},
		{pC, "n i m y i"},
		{pC, "i"},
	} {
		result, err := test.p.Parse(input(test.input))
		if err != nil {
			t.Errorf("expected %q to be accepted, got %v", test.input, err)
			continue
		}
		if !result.Accepted || result.Recovered() != 0 {
			t.Errorf("expected %q to be accepted without errors, have %v", test.input, result.Errors)
		}
		if result.Steps == 0 {
			t.Errorf("expected %q to take parser steps", test.input)
		}
	}
}

func TestLeftmostDerivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	p := makeParser(t, makeGrammarA(t))
	result, err := p.Parse(input("ba"))
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{0, 1, 2, 4} // S ➞ A a B, A ➞ b A, A ➞ ε, B ➞ ε
	if len(result.Derivation) != len(expected) {
		t.Fatalf("expected derivation %v, have %v", expected, result.Derivation)
	}
	for i, r := range result.Derivation {
		if r.Serial != expected[i] {
			t.Errorf("expected derivation %v, have %v", expected, result.Derivation)
			break
		}
	}
}

func TestRecoverSkipInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	p := makeParser(t, makeGrammarA(t))
	result, err := p.Parse(input("bbxacc"))
	if err != nil {
		t.Fatalf("expected bbxacc to be accepted after recovery, got %v", err)
	}
	if result.Recovered() != 1 {
		t.Fatalf("expected 1 recovered error, have %v", result.Errors)
	}
	e := result.Errors[0]
	if e.Kind != NoProduction || e.Pos != 2 || e.Expected != ll.N("A") || e.Found != ll.T("x") {
		t.Errorf("expected missing production for (A,x) at 2, have %v", e)
	}
	if e.Strategy != SkipInput || e.Resumed != 3 {
		t.Errorf("expected skip-input to resume at 3, have %v", e)
	}
}

func TestRecoverPopStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	p := makeParser(t, makeGrammarA(t))
	result, err := p.Parse(input("bcc"))
	if err != nil {
		t.Fatalf("expected bcc to be accepted after recovery, got %v", err)
	}
	if result.Recovered() != 1 {
		t.Fatalf("expected 1 recovered error, have %v", result.Errors)
	}
	if e := result.Errors[0]; e.Strategy != PopStack || e.Resumed != 1 {
		t.Errorf("expected pop-stack to resume at 1, have %v", e)
	}
}

func TestRecoverFollowSync(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	p := makeParser(t, makeGrammarA(t), Strategies(FollowSync))
	result, err := p.Parse(input("bxa"))
	if err != nil {
		t.Fatalf("expected bxa to be accepted after recovery, got %v", err)
	}
	if result.Recovered() != 1 {
		t.Fatalf("expected 1 recovered error, have %v", result.Errors)
	}
	if e := result.Errors[0]; e.Strategy != FollowSync || e.Resumed != 2 {
		t.Errorf("expected follow-sync to resume at 2, have %v", e)
	}
}

func TestUnrecoverable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	p := makeParser(t, makeGrammarAB(t))
	_, err := p.Parse(input("ac"))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != Unrecoverable {
		t.Fatalf("expected unrecoverable error, got %v", err)
	}
	if perr.Pos != 1 || perr.Symbol != ll.T("b") || perr.Found != ll.T("c") {
		t.Errorf("expected error at 1 (expected b, found c), have %v", perr)
	}
	//
	p = makeParser(t, makeGrammarA(t), Strategies())
	if _, err = p.Parse(input("bbxacc")); !errors.As(err, &perr) || perr.Kind != Unrecoverable {
		t.Errorf("expected unrecoverable error without strategies, got %v", err)
	}
}

func TestTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	p := makeParser(t, makeGrammarA(t))
	_, err := p.Parse([]ll.Symbol{ll.T("a"), ll.EOF, ll.T("c")})
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != TrailingInput {
		t.Fatalf("expected trailing input error, got %v", err)
	}
	if perr.Pos != 2 || perr.Found != ll.T("c") {
		t.Errorf("expected remaining input at 2, have %v", perr)
	}
}

func TestErrorBudget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	in := "a" + strings.Repeat(" x c", 12)
	p := makeParser(t, makeGrammarA(t))
	_, err := p.Parse(input(in))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != TooManyErrors {
		t.Fatalf("expected parse to give up, got %v", err)
	}
	if len(perr.Recovered) != DefaultMaxErrors {
		t.Errorf("expected %d recovered errors before giving up, have %d",
			DefaultMaxErrors, len(perr.Recovered))
	}
	p = makeParser(t, makeGrammarA(t), MaxErrors(20))
	result, err := p.Parse(input(in))
	if err != nil {
		t.Fatalf("expected input to be accepted with larger budget, got %v", err)
	}
	if result.Recovered() != 12 {
		t.Errorf("expected 12 recovered errors, have %d", result.Recovered())
	}
}

// The parser terminates on every input and never reports an internal error.
func TestExhaustiveInputs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	for _, test := range []struct {
		g        *ll.Grammar
		alphabet []string
	}{
		{makeGrammarA(t), []string{"a", "b", "c", "x"}},
		{makeGrammarC(t), []string{"i", "n", "m", "y", "?"}},
	} {
		p := makeParser(t, test.g)
		for _, in := range words(test.alphabet, 5) {
			result, err := p.Parse(in)
			if err != nil {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("%s: unexpected error type for %v: %v", test.g.Name, in, err)
				}
				if perr.Kind == InvalidStackSymbol || perr.Kind == UnexpectedEnd {
					t.Errorf("%s: unexpected error for %v: %v", test.g.Name, in, err)
				}
				continue
			}
			if result.Recovered() == 0 {
				for _, a := range in {
					if a.Name == "x" || a.Name == "?" {
						t.Errorf("%s: accepted %v without errors", test.g.Name, in)
					}
				}
			}
		}
	}
}

// words enumerates all words over alphabet up to length n.
func words(alphabet []string, n int) [][]ll.Symbol {
	all := [][]ll.Symbol{{}}
	level := [][]ll.Symbol{{}}
	for k := 0; k < n; k++ {
		var next [][]ll.Symbol
		for _, w := range level {
			for _, a := range alphabet {
				v := append(append([]ll.Symbol(nil), w...), ll.T(a))
				next = append(next, v)
			}
		}
		all = append(all, next...)
		level = next
	}
	return all
}
