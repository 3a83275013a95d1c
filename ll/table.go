package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/llkit/ll/sparse"
)

// ParsingTable is a predictive parsing table for an LL(1) grammar. It maps
// pairs (non-terminal, lookahead) to the production to expand. Lookaheads
// are terminals or $. Tables are created by BuildTable and are immutable.
//
// The table is stored as a sparse matrix of production serials. Rows are
// the non-terminals, columns are the terminals plus $, both sorted by name.
type ParsingTable struct {
	g            *Grammar
	matrix       *sparse.IntMatrix
	nonterminals []Symbol       // row vocabulary, sorted
	terminals    []Symbol       // column vocabulary incl. $, sorted
	rows         map[Symbol]int // non-terminal -> row
	cols         map[Symbol]int // lookahead -> column
}

// Cell is an entry of a parsing table.
type Cell struct {
	NonTerminal Symbol
	Lookahead   Symbol
	Production  *Production
}

// Conflict is a table cell claimed by two different productions.
type Conflict struct {
	NonTerminal Symbol
	Lookahead   Symbol
	Existing    *Production // production already in the cell
	Rejected    *Production // production trying to enter the cell
}

func (c Conflict) String() string {
	return fmt.Sprintf("M[%s,%s] = { %v | %v }", c.NonTerminal, c.Lookahead, c.Existing, c.Rejected)
}

// TableConflictError is returned by BuildTable for grammars which are not LL(1).
type TableConflictError struct {
	Grammar   string
	Conflicts []Conflict
}

func (e *TableConflictError) Error() string {
	cs := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		cs[i] = c.String()
	}
	return fmt.Sprintf("grammar %s is not LL(1): parsing table has conflicts: %s",
		e.Grammar, strings.Join(cs, ", "))
}

func newTable(g *Grammar) *ParsingTable {
	t := &ParsingTable{
		g:            g,
		nonterminals: g.NonTerminals(),
		terminals:    NewSymbolSet(append(g.Terminals(), EOF)...).Symbols(),
		rows:         make(map[Symbol]int),
		cols:         make(map[Symbol]int),
	}
	for i, A := range t.nonterminals {
		t.rows[A] = i
	}
	for j, a := range t.terminals {
		t.cols[a] = j
	}
	t.matrix = sparse.NewIntMatrix(len(t.nonterminals), len(t.terminals), sparse.DefaultNullValue)
	return t
}

// BuildTable constructs the LL(1) parsing table for an analysed grammar.
//
// For every production A ➞ α, α is entered at M[A,a] for every terminal
// a ∈ FIRST(α). If ε ∈ FIRST(α), α is entered at M[A,b] for every b ∈ FOLLOW(A),
// including $. A cell which already holds a different production is a
// conflict. Conflicts are collected for the whole table; if there are any,
// BuildTable returns a *TableConflictError and no table.
func BuildTable(ga *LLAnalysis) (*ParsingTable, error) {
	g := ga.Grammar()
	tracer().Debugf("=== build LL(1) table for %s ===============================", g.Name)
	t := newTable(g)
	var conflicts []Conflict
	for _, r := range g.rules {
		F := ga.FirstOf(r.rhs)
		for _, a := range F.Symbols() {
			if a.IsEpsilon() {
				continue
			}
			if c, ok := t.place(r, a); !ok {
				conflicts = append(conflicts, c)
			}
		}
		if F.Contains(Epsilon) {
			for _, b := range ga.Follow(r.LHS).Symbols() {
				if c, ok := t.place(r, b); !ok {
					conflicts = append(conflicts, c)
				}
			}
		}
	}
	if len(conflicts) > 0 {
		tracer().Infof("parsing table for %s has %d conflicts", g.Name, len(conflicts))
		return nil, &TableConflictError{Grammar: g.Name, Conflicts: conflicts}
	}
	tracer().Infof("LL(1) table for %s with %d entries", g.Name, t.matrix.ValueCount())
	return t, nil
}

// place enters production r at M[r.LHS,a]. It returns false and a description
// of the conflict if the cell is occupied by a different production.
func (t *ParsingTable) place(r *Production, a Symbol) (Conflict, bool) {
	i, j := t.rows[r.LHS], t.cols[a]
	if t.matrix.Value(i, j) == int32(r.Serial) { // reached twice by the same production
		return Conflict{}, true
	}
	old := t.matrix.Add(i, j, int32(r.Serial))
	if old == t.matrix.NullValue() {
		tracer().Debugf("M[%s,%s] = %v", r.LHS, a, r)
		return Conflict{}, true
	}
	existing := t.g.Rule(int(old))
	tracer().Debugf("conflict at M[%s,%s]: %v vs %v", r.LHS, a, existing, r)
	return Conflict{NonTerminal: r.LHS, Lookahead: a, Existing: existing, Rejected: r}, false
}

// Grammar returns the grammar this table has been built for.
func (t *ParsingTable) Grammar() *Grammar {
	return t.g
}

// Lookup returns the production at M[A,a].
func (t *ParsingTable) Lookup(A Symbol, a Symbol) (*Production, bool) {
	i, ok := t.rows[A]
	if !ok {
		return nil, false
	}
	j, ok := t.cols[a]
	if !ok {
		return nil, false
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Rule(int(v)), true
}

// Terminals returns the column vocabulary (terminals and $), sorted by name.
func (t *ParsingTable) Terminals() []Symbol {
	return append([]Symbol(nil), t.terminals...)
}

// NonTerminals returns the row vocabulary, sorted by name.
func (t *ParsingTable) NonTerminals() []Symbol {
	return append([]Symbol(nil), t.nonterminals...)
}

// Size returns the number of cells set.
func (t *ParsingTable) Size() int {
	return t.matrix.ValueCount()
}

// Cells returns all entries of the table in row-major order.
func (t *ParsingTable) Cells() []Cell {
	cells := make([]Cell, 0, t.matrix.ValueCount())
	t.matrix.Each(func(i, j int, a, _ int32) {
		cells = append(cells, Cell{
			NonTerminal: t.nonterminals[i],
			Lookahead:   t.terminals[j],
			Production:  t.g.Rule(int(a)),
		})
	})
	return cells
}

type cellDigest struct {
	NonTerminal string
	Lookahead   string
	Rule        int
	RHS         []string
}

type tableDigest struct {
	Grammar string
	Start   string
	Cells   []cellDigest
}

// Fingerprint returns a hash over the contents of the table. Tables built
// from the same grammar always have the same fingerprint.
func (t *ParsingTable) Fingerprint() string {
	d := tableDigest{Grammar: t.g.Name, Start: t.g.start.Name}
	for _, c := range t.Cells() {
		rhs := make([]string, len(c.Production.rhs))
		for k, X := range c.Production.rhs {
			rhs[k] = X.Name
		}
		d.Cells = append(d.Cells, cellDigest{
			NonTerminal: c.NonTerminal.Name,
			Lookahead:   c.Lookahead.Name,
			Rule:        c.Production.Serial,
			RHS:         rhs,
		})
	}
	hash, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot hash parsing table: %v", err)
		return ""
	}
	return hash
}

// Dump is a debugging helper, tracing the table entries at debug level.
func (t *ParsingTable) Dump() {
	tracer().Debugf("--- LL(1) table for %s ---------------------------", t.g.Name)
	for _, c := range t.Cells() {
		tracer().Debugf("M[%s,%s] = %v", c.NonTerminal, c.Lookahead, c.Production)
	}
	tracer().Debugf("-------------------------------------------------------")
}
