package ll

import (
	"bytes"
	"fmt"
	"sort"
)

// === Productions ===========================================================

// Production is a grammar rule A ➞ X1 … Xn. Productions are immutable once
// added to a grammar. The right hand side is never empty: a rule deriving
// the empty word has ε as its single RHS symbol.
type Production struct {
	Serial int    // ordinal number of this rule within its grammar
	LHS    Symbol // left hand side, always a non-terminal
	rhs    []Symbol
}

// RHS returns a copy of the right hand side of a production.
func (r *Production) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// IsEpsilon is a predicate: is r of the form A ➞ ε ?
func (r *Production) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsEpsilon()
}

// Equals compares two productions structurally, ignoring their serials.
func (r *Production) Equals(other *Production) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.LHS != other.LHS || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, A := range r.rhs {
		if other.rhs[i] != A {
			return false
		}
	}
	return true
}

func (r *Production) String() string {
	var b bytes.Buffer
	b.WriteString(r.LHS.Name)
	b.WriteString(" ➞")
	for _, A := range r.rhs {
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	return b.String()
}

// === Grammars ==============================================================

// Grammar is a context-free grammar, consisting of an ordered list of
// productions, the terminal and non-terminal vocabularies and a start symbol.
// Grammars are created by a GrammarBuilder and are read-only afterwards.
type Grammar struct {
	Name         string
	rules        []*Production
	terminals    map[string]Symbol
	nonterminals map[string]Symbol
	start        Symbol
}

// Start returns the start symbol of g.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of productions of g.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns production no. serial, or nil.
func (g *Grammar) Rule(serial int) *Production {
	if serial < 0 || serial >= len(g.rules) {
		return nil
	}
	return g.rules[serial]
}

// Productions returns the productions of g in the order they were added.
func (g *Grammar) Productions() []*Production {
	return append([]*Production(nil), g.rules...)
}

// RulesFor returns all productions with left hand side A, in grammar order.
func (g *Grammar) RulesFor(A Symbol) []*Production {
	var R []*Production
	for _, r := range g.rules {
		if r.LHS == A {
			R = append(R, r)
		}
	}
	return R
}

// Terminals returns the terminal vocabulary of g, sorted by name.
func (g *Grammar) Terminals() []Symbol {
	return sortedSymbols(g.terminals)
}

// NonTerminals returns the non-terminal vocabulary of g, sorted by name.
func (g *Grammar) NonTerminals() []Symbol {
	return sortedSymbols(g.nonterminals)
}

// IsTerminal is a predicate: is A part of g's terminal vocabulary?
func (g *Grammar) IsTerminal(A Symbol) bool {
	T, ok := g.terminals[A.Name]
	return ok && T == A
}

// IsNonTerminal is a predicate: is A part of g's non-terminal vocabulary?
func (g *Grammar) IsNonTerminal(A Symbol) bool {
	N, ok := g.nonterminals[A.Name]
	return ok && N == A
}

// SymbolByName finds a symbol of g by name. The reserved names "ε" and "$"
// resolve to Epsilon and EOF.
func (g *Grammar) SymbolByName(name string) (Symbol, bool) {
	if A, ok := g.terminals[name]; ok {
		return A, true
	}
	if A, ok := g.nonterminals[name]; ok {
		return A, true
	}
	switch name {
	case Epsilon.Name:
		return Epsilon, true
	case EOF.Name:
		return EOF, true
	}
	return Symbol{}, false
}

// Dump is a debugging helper, tracing the rules of g at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

func sortedSymbols(m map[string]Symbol) []Symbol {
	syms := make([]Symbol, 0, len(m))
	for _, A := range m {
		syms = append(syms, A)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Name < syms[j].Name
	})
	return syms
}

// === Grammar errors ========================================================

// GrammarError is returned by a GrammarBuilder if the collected rules do not
// form a valid grammar.
type GrammarError struct {
	Grammar string
	Symbol  string
	Msg     string
}

func (e *GrammarError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("grammar %s: %s", e.Grammar, e.Msg)
	}
	return fmt.Sprintf("grammar %s: symbol %q: %s", e.Grammar, e.Symbol, e.Msg)
}

// === Grammar builder =======================================================

// GrammarBuilder collects rules and creates a grammar from them. Use as
//
//     b := NewGrammarBuilder("G")
//     b.LHS("S").N("A").T("a").End()  // S -> A a
//     b.LHS("A").Epsilon()            // A -> ε
//     g, err := b.Grammar()
//
type GrammarBuilder struct {
	name   string
	start  string
	rules  []*RuleBuilder
	errors []error
}

// NewGrammarBuilder creates a builder for a grammar named gname.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// Start sets the start symbol of the grammar. If not called, the left hand side
// of the first rule is the start symbol.
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// LHS starts a new rule with non-terminal name as its left hand side.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	rb := &RuleBuilder{gb: gb, lhs: N(name)}
	return rb
}

// RuleBuilder collects the right hand side of a single rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	lhs  Symbol
	rhs  []Symbol
	done bool
}

// N appends a non-terminal to the RHS of the rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, N(name))
	return rb
}

// T appends a terminal to the RHS of the rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(name))
	return rb
}

// Symbol appends an already classified symbol to the RHS of the rule.
// Epsilon is ignored; an empty RHS results in an ε-production.
func (rb *RuleBuilder) Symbol(A Symbol) *RuleBuilder {
	if !A.IsEpsilon() {
		rb.rhs = append(rb.rhs, A)
	}
	return rb
}

// End closes the rule and adds it to the grammar. A rule without RHS symbols
// is an ε-production.
func (rb *RuleBuilder) End() *RuleBuilder {
	if !rb.done {
		rb.done = true
		rb.gb.rules = append(rb.gb.rules, rb)
	}
	return rb
}

// Epsilon closes the rule as an ε-production: A ➞ ε. Symbols appended
// earlier are discarded.
func (rb *RuleBuilder) Epsilon() *RuleBuilder {
	rb.rhs = nil
	return rb.End()
}

// Grammar creates the grammar from the rules collected so far.
// It returns a *GrammarError if
//
// - there are no rules,
//
// - a name is used for a terminal as well as for a non-terminal,
//
// - a reserved name (ε, $) is used as a terminal or non-terminal,
//
// - the start symbol is not a non-terminal.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.rules) == 0 {
		return nil, &GrammarError{Grammar: gb.name, Msg: "grammar has no rules"}
	}
	g := &Grammar{
		Name:         gb.name,
		terminals:    make(map[string]Symbol),
		nonterminals: make(map[string]Symbol),
	}
	for _, rb := range gb.rules {
		if err := g.classify(rb.lhs); err != nil {
			return nil, err
		}
		for _, A := range rb.rhs {
			if err := g.classify(A); err != nil {
				return nil, err
			}
		}
		rhs := append([]Symbol(nil), rb.rhs...)
		if len(rhs) == 0 {
			rhs = []Symbol{Epsilon}
		}
		g.rules = append(g.rules, &Production{
			Serial: len(g.rules),
			LHS:    rb.lhs,
			rhs:    rhs,
		})
	}
	startname := gb.start
	if startname == "" {
		startname = gb.rules[0].lhs.Name
	}
	S, ok := g.nonterminals[startname]
	if !ok {
		return nil, &GrammarError{Grammar: gb.name, Symbol: startname,
			Msg: "start symbol must be a non-terminal"}
	}
	g.start = S
	tracer().Debugf("created grammar %s with %d rules", g.Name, len(g.rules))
	return g, nil
}

func (g *Grammar) classify(A Symbol) error {
	if A.Name == Epsilon.Name || A.Name == EOF.Name || A.Name == "" {
		return &GrammarError{Grammar: g.Name, Symbol: A.Name, Msg: "reserved or empty symbol name"}
	}
	switch A.Kind {
	case Terminal:
		if _, clash := g.nonterminals[A.Name]; clash {
			return &GrammarError{Grammar: g.Name, Symbol: A.Name,
				Msg: "used as terminal and as non-terminal"}
		}
		g.terminals[A.Name] = A
	case NonTerminal:
		if _, clash := g.terminals[A.Name]; clash {
			return &GrammarError{Grammar: g.Name, Symbol: A.Name,
				Msg: "used as terminal and as non-terminal"}
		}
		g.nonterminals[A.Name] = A
	default:
		return &GrammarError{Grammar: g.Name, Symbol: A.Name, Msg: "cannot add marker symbol to grammar"}
	}
	return nil
}
