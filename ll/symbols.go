package ll

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolKind classifies grammar symbols.
type SymbolKind int8

// Symbol kinds. A symbol's kind is fixed when it enters a grammar.
const (
	NonTerminal SymbolKind = iota
	Terminal
	EpsilonKind // the empty word
	EndMarker   // end of input, bottom of stack
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Terminal:
		return "terminal"
	case EpsilonKind:
		return "epsilon"
	case EndMarker:
		return "end-marker"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Symbol is a grammar symbol. Symbols are values and may be compared with ==
// and used as map keys.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Reserved symbols. Neither of them is ever part of a grammar's vocabularies.
var (
	Epsilon = Symbol{Name: "ε", Kind: EpsilonKind}
	EOF     = Symbol{Name: "$", Kind: EndMarker}
)

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminal}
}

// IsTerminal is a predicate. The end marker does not count as a terminal.
func (A Symbol) IsTerminal() bool {
	return A.Kind == Terminal
}

// IsNonTerminal is a predicate.
func (A Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminal
}

// IsEpsilon is a predicate.
func (A Symbol) IsEpsilon() bool {
	return A.Kind == EpsilonKind
}

// IsEOF is a predicate for the end marker.
func (A Symbol) IsEOF() bool {
	return A.Kind == EndMarker
}

func (A Symbol) String() string {
	return A.Name
}

// symbolComparator orders symbols by name, then by kind.
func symbolComparator(a, b interface{}) int {
	s1 := a.(Symbol)
	s2 := b.(Symbol)
	if c := utils.StringComparator(s1.Name, s2.Name); c != 0 {
		return c
	}
	return utils.IntComparator(int(s1.Kind), int(s2.Kind))
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is an ordered set of symbols. FIRST and FOLLOW sets are
// represented as symbol sets. Iteration order is always sorted by name,
// which makes dumps and rendered tables deterministic.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add inserts a symbol and reports whether it has not been present before.
func (S *SymbolSet) Add(A Symbol) bool {
	if S.set.Contains(A) {
		return false
	}
	S.set.Add(A)
	return true
}

// Contains is a predicate.
func (S *SymbolSet) Contains(A Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(A)
}

// Remove deletes a symbol from the set.
func (S *SymbolSet) Remove(A Symbol) {
	S.set.Remove(A)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is a predicate.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Symbols returns the members of S in sorted order.
func (S *SymbolSet) Symbols() []Symbol {
	if S == nil {
		return nil
	}
	syms := make([]Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}

// Union adds all members of other to S. It reports whether S has changed.
func (S *SymbolSet) Union(other *SymbolSet) bool {
	changed := false
	for _, A := range other.Symbols() {
		if S.Add(A) {
			changed = true
		}
	}
	return changed
}

// Copy returns an independent copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Symbols()...)
}

// Without returns a copy of S with A removed.
func (S *SymbolSet) Without(A Symbol) *SymbolSet {
	C := S.Copy()
	C.set.Remove(A)
	return C
}

// Intersection returns a new set with all symbols present in both S and other.
func (S *SymbolSet) Intersection(other *SymbolSet) *SymbolSet {
	I := NewSymbolSet()
	for _, A := range S.Symbols() {
		if other.Contains(A) {
			I.set.Add(A)
		}
	}
	return I
}

// Intersects is a predicate: do S and other share at least one symbol?
func (S *SymbolSet) Intersects(other *SymbolSet) bool {
	for _, A := range S.Symbols() {
		if other.Contains(A) {
			return true
		}
	}
	return false
}

// Equals is a predicate: do S and other have the same members?
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, A := range S.Symbols() {
		if !other.Contains(A) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for _, A := range S.Symbols() {
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	b.WriteString(" }")
	return b.String()
}
