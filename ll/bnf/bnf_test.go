package bnf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprGrammar = `
# arithmetic expressions
%start E
E  -> T E'
E' -> + T E' | ε
T  -> F T'
T' -> '*' F T'
   | eps
F  -> ( E ) | id
`

func TestParseText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g, err := Parse("expr", exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 8 {
		t.Errorf("expected 8 rules, have %d", g.Size())
	}
	if g.Start() != ll.N("E") {
		t.Errorf("expected start symbol E, is %v", g.Start())
	}
	for _, name := range []string{"+", "*", "(", ")", "id"} {
		if !g.IsTerminal(ll.T(name)) {
			t.Errorf("expected %q to be a terminal", name)
		}
	}
	for _, name := range []string{"E", "E'", "T", "T'", "F"} {
		if !g.IsNonTerminal(ll.N(name)) {
			t.Errorf("expected %q to be a non-terminal", name)
		}
	}
	if r := g.Rule(5); r.LHS != ll.N("T'") || !r.IsEpsilon() {
		t.Errorf("expected rule 5 to be T' ➞ ε, is %v", r)
	}
	if !ll.IsLL1(g) {
		t.Errorf("expected expression grammar to be LL(1)")
	}
}

func TestArrowsAndQuotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g, err := Parse("arrows", "S → 'A' B\nB ::= \"|\" |\n")
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 {
		t.Fatalf("expected 3 rules, have %d", g.Size())
	}
	if rhs := g.Rule(0).RHS(); len(rhs) != 2 || rhs[0] != ll.T("A") || rhs[1] != ll.N("B") {
		t.Errorf("expected S ➞ A B with terminal A, have %v", g.Rule(0))
	}
	if rhs := g.Rule(1).RHS(); len(rhs) != 1 || rhs[0] != ll.T("|") {
		t.Errorf("expected B ➞ |, have %v", g.Rule(1))
	}
	if !g.Rule(2).IsEpsilon() {
		t.Errorf("expected empty alternative to be an ε-rule, is %v", g.Rule(2))
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	for _, test := range []struct {
		text string
		line int
	}{
		{"S -> a\nb -> c", 2},
		{"S a b", 1},
		{"| a", 1},
		{"S -> a\n\n%start", 3},
		{"S -> 'a", 1},
		{"S -> a -> b", 1},
	} {
		_, err := Parse("bad", test.text)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: expected syntax error, got %v", test.text, err)
			continue
		}
		if serr.Line != test.line {
			t.Errorf("%q: expected error in line %d, is in line %d", test.text, test.line, serr.Line)
		}
	}
	_, err := Parse("empty", "# nothing here\n")
	var gerr *ll.GrammarError
	if !errors.As(err, &gerr) {
		t.Errorf("expected grammar error for empty grammar, got %v", err)
	}
}

const yamlGrammar = `name: A
rules:
  - S -> A a B
  - A -> b A | ε
  - B -> c B
  - "| ε"
`

const yamlBlock = `name: C
start: E
rules: |
  E -> T S
  S -> y T S | ε
  T -> F B
  B -> x F B | ε
  F -> i | n E m
`

func TestParseYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g, err := ParseYAML([]byte(yamlGrammar))
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "A" || g.Size() != 5 || g.Start() != ll.N("S") {
		t.Errorf("unexpected grammar %s with %d rules, start %v", g.Name, g.Size(), g.Start())
	}
	g, err = ParseYAML([]byte(yamlBlock))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 8 || g.Start() != ll.N("E") {
		t.Errorf("unexpected grammar with %d rules, start %v", g.Size(), g.Start())
	}
	_, err = ParseYAML([]byte("name: X\nrules:\n  - S -> a\n  - s -> b\n"))
	var serr *SyntaxError
	if !errors.As(err, &serr) || serr.Line != 4 {
		t.Errorf("expected syntax error in line 4, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	dir := t.TempDir()
	txt := filepath.Join(dir, "expr.bnf")
	yml := filepath.Join(dir, "a.yaml")
	if err := os.WriteFile(txt, []byte(exprGrammar), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yml, []byte(yamlGrammar), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := ReadFile(txt)
	if err != nil || g.Name != "expr" {
		t.Errorf("expected grammar expr from text file, got %v, %v", g, err)
	}
	g, err = ReadFile(yml)
	if err != nil || g.Name != "A" {
		t.Errorf("expected grammar A from YAML file, got %v, %v", g, err)
	}
	if _, err = ReadFile(filepath.Join(dir, "missing.bnf")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
