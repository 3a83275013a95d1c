package ll

import (
	"fmt"
	"strings"
)

// LL(1) conditions checked for each pair of productions of a non-terminal.
const (
	FirstFirstRule   = 1 // FIRST sets overlap
	EpsilonLeftRule  = 2 // ε ∈ FIRST(P1), FIRST(P2) ∩ FOLLOW(A) ≠ ∅
	EpsilonRightRule = 3 // ε ∈ FIRST(P2), FIRST(P1) ∩ FOLLOW(A) ≠ ∅
)

// Violation describes a pair of productions which hinders a grammar from
// being LL(1).
type Violation struct {
	NonTerminal Symbol
	P1, P2      *Production
	Rule        int        // one of FirstFirstRule, EpsilonLeftRule, EpsilonRightRule
	Overlap     *SymbolSet // lookaheads both productions claim
}

func (v Violation) String() string {
	switch v.Rule {
	case FirstFirstRule:
		return fmt.Sprintf("FIRST(%v) and FIRST(%v) overlap in %v", v.P1, v.P2, v.Overlap)
	case EpsilonLeftRule:
		return fmt.Sprintf("%v derives ε, FIRST(%v) overlaps FOLLOW(%s) in %v",
			v.P1, v.P2, v.NonTerminal, v.Overlap)
	}
	return fmt.Sprintf("%v derives ε, FIRST(%v) overlaps FOLLOW(%s) in %v",
		v.P2, v.P1, v.NonTerminal, v.Overlap)
}

// Conformance is the result of an LL(1) check.
type Conformance struct {
	Grammar    string
	LL1        bool
	Violations []Violation
}

// Err returns a *ConformanceError if the grammar is not LL(1), nil otherwise.
func (c *Conformance) Err() error {
	if c.LL1 {
		return nil
	}
	return &ConformanceError{Grammar: c.Grammar, Violations: c.Violations}
}

// ConformanceError reports a grammar not being LL(1).
type ConformanceError struct {
	Grammar    string
	Violations []Violation
}

func (e *ConformanceError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("grammar %s is not LL(1): %s", e.Grammar, strings.Join(msgs, "; "))
}

// Validate checks if a grammar is LL(1), using FIRST and FOLLOW sets only.
// For every non-terminal A and every pair of its productions P1 and P2:
//
// 1. FIRST(P1) and FIRST(P2) must not share a terminal, and must not both
// contain ε unless FOLLOW(A) is empty;
//
// 2. if ε ∈ FIRST(P1), FIRST(P2) and FOLLOW(A) must be disjoint;
//
// 3. if ε ∈ FIRST(P2), FIRST(P1) and FOLLOW(A) must be disjoint.
//
// All violations are collected. The outcome always agrees with BuildTable:
// a grammar passes if and only if its parsing table has no conflicts.
func Validate(ga *LLAnalysis) *Conformance {
	g := ga.Grammar()
	c := &Conformance{Grammar: g.Name, LL1: true}
	for _, A := range nonTerminalsInRuleOrder(g) {
		follow := ga.Follow(A)
		R := g.RulesFor(A)
		for i := 0; i < len(R); i++ {
			fi := ga.FirstOf(R[i].rhs)
			ti := fi.Without(Epsilon)
			for j := i + 1; j < len(R); j++ {
				fj := ga.FirstOf(R[j].rhs)
				tj := fj.Without(Epsilon)
				nullable := fi.Contains(Epsilon) && fj.Contains(Epsilon)
				if ti.Intersects(tj) || nullable && !follow.Empty() {
					overlap := ti.Intersection(tj)
					if nullable {
						overlap.Union(follow)
					}
					c.violate(A, R[i], R[j], FirstFirstRule, overlap)
				}
				if fi.Contains(Epsilon) && tj.Intersects(follow) {
					c.violate(A, R[i], R[j], EpsilonLeftRule, tj.Intersection(follow))
				}
				if fj.Contains(Epsilon) && ti.Intersects(follow) {
					c.violate(A, R[i], R[j], EpsilonRightRule, ti.Intersection(follow))
				}
			}
		}
	}
	return c
}

func (c *Conformance) violate(A Symbol, p1, p2 *Production, rule int, overlap *SymbolSet) {
	tracer().Debugf("LL(1) violation for %s, rule %d: %v / %v", A, rule, p1, p2)
	c.LL1 = false
	c.Violations = append(c.Violations, Violation{
		NonTerminal: A,
		P1:          p1,
		P2:          p2,
		Rule:        rule,
		Overlap:     overlap,
	})
}

// IsLL1 analyses g and checks the LL(1) conditions.
func IsLL1(g *Grammar) bool {
	return Validate(Analysis(g)).LL1
}

// nonTerminalsInRuleOrder lists left hand sides in order of first appearance.
func nonTerminalsInRuleOrder(g *Grammar) []Symbol {
	seen := make(map[Symbol]bool)
	var nts []Symbol
	for _, r := range g.rules {
		if !seen[r.LHS] {
			seen[r.LHS] = true
			nts = append(nts, r.LHS)
		}
	}
	return nts
}
