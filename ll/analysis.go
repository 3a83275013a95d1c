package ll

// === FIRST and FOLLOW sets =================================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 5.5 (FIRST and FOLLOW sets) and 5.3 (LL(1) parsing).

// FirstSets maps every terminal and non-terminal of a grammar to its FIRST set.
// FIRST sets contain terminals and possibly ε.
type FirstSets map[Symbol]*SymbolSet

// FollowSets maps every non-terminal of a grammar to its FOLLOW set.
// FOLLOW sets contain terminals and possibly $.
type FollowSets map[Symbol]*SymbolSet

// Of returns the set for symbol A. Symbols unknown to the table get an empty set.
func (F FirstSets) Of(A Symbol) *SymbolSet {
	if S, ok := F[A]; ok {
		return S
	}
	return NewSymbolSet()
}

// Of returns the set for non-terminal A.
func (F FollowSets) Of(A Symbol) *SymbolSet {
	if S, ok := F[A]; ok {
		return S
	}
	return NewSymbolSet()
}

// update is a pending insertion of symbol Sym into the set of symbol A.
// Updates are collected during a pass and applied at its end.
type update struct {
	A   Symbol
	Sym Symbol
}

// apply inserts all pending updates and reports whether any set has grown.
func apply(sets map[Symbol]*SymbolSet, updates []update) bool {
	changed := false
	for _, u := range updates {
		S, ok := sets[u.A]
		if !ok {
			continue
		}
		if S.Add(u.Sym) {
			changed = true
		}
	}
	return changed
}

// ComputeFirstSets computes FIRST(X) for every symbol X of g.
// FIRST(t) = { t } for terminals. FIRST sets of non-terminals start out
// empty and are enlarged by passes over all productions until a complete
// pass does not change anything.
func ComputeFirstSets(g *Grammar) FirstSets {
	first := make(FirstSets)
	for _, A := range g.Terminals() {
		first[A] = NewSymbolSet(A)
	}
	for _, A := range g.NonTerminals() {
		first[A] = NewSymbolSet()
	}
	passes := 0
	for {
		passes++
		if !apply(first, firstPass(g, first)) {
			break
		}
	}
	tracer().Debugf("FIRST sets of %s closed after %d passes", g.Name, passes)
	return first
}

// firstPass computes all insertions into FIRST sets a single pass over the
// productions would perform, without modifying first.
func firstPass(g *Grammar, first FirstSets) []update {
	var updates []update
	for _, r := range g.rules {
		current := first[r.LHS]
		for _, a := range FirstOfSequence(first, r.rhs).Symbols() {
			if !current.Contains(a) {
				updates = append(updates, update{A: r.LHS, Sym: a})
			}
		}
	}
	return updates
}

// FirstOfSequence computes FIRST(X1 … Xn) for an arbitrary sequence of symbols.
// Symbols are scanned from left to right; each contributes its FIRST set
// without ε, and the scan stops at the first symbol not deriving ε. If every
// symbol derives ε (which is trivially true for the empty sequence), ε is
// part of the result. ε within the sequence is transparent and the end marker
// contributes itself.
func FirstOfSequence(first FirstSets, seq []Symbol) *SymbolSet {
	result := NewSymbolSet()
	for _, X := range seq {
		switch X.Kind {
		case EpsilonKind:
			continue
		case Terminal, EndMarker:
			result.Add(X)
			return result
		}
		F := first.Of(X)
		for _, a := range F.Symbols() {
			if !a.IsEpsilon() {
				result.Add(a)
			}
		}
		if !F.Contains(Epsilon) {
			return result
		}
	}
	result.Add(Epsilon)
	return result
}

// ComputeFollowSets computes FOLLOW(A) for every non-terminal A of g, given the
// FIRST sets of g. $ is in FOLLOW(S) for the start symbol S.
// For every occurrence of a non-terminal B in a rule A ➞ α B β, FIRST(β)\{ε}
// is added to FOLLOW(B); if β derives ε, FOLLOW(A) is added to FOLLOW(B) as
// well.
func ComputeFollowSets(g *Grammar, first FirstSets) FollowSets {
	follow := make(FollowSets)
	for _, A := range g.NonTerminals() {
		follow[A] = NewSymbolSet()
	}
	if S, ok := follow[g.start]; ok {
		S.Add(EOF)
	}
	passes := 0
	for {
		passes++
		if !apply(follow, followPass(g, first, follow)) {
			break
		}
	}
	tracer().Debugf("FOLLOW sets of %s closed after %d passes", g.Name, passes)
	return follow
}

// followPass collects the insertions into FOLLOW sets of a single pass over
// the productions. All updates are computed from the sets as they have been
// at the start of the pass.
func followPass(g *Grammar, first FirstSets, follow FollowSets) []update {
	var updates []update
	for _, r := range g.rules {
		for i, B := range r.rhs {
			if !B.IsNonTerminal() {
				continue
			}
			current := follow.Of(B)
			rest := FirstOfSequence(first, r.rhs[i+1:])
			for _, a := range rest.Symbols() {
				if !a.IsEpsilon() && !current.Contains(a) {
					updates = append(updates, update{A: B, Sym: a})
				}
			}
			if rest.Contains(Epsilon) { // β ⇒* ε, including β being empty
				for _, a := range follow.Of(r.LHS).Symbols() {
					if !current.Contains(a) {
						updates = append(updates, update{A: B, Sym: a})
					}
				}
			}
		}
	}
	return updates
}

// === Grammar analysis ======================================================

// LLAnalysis is an object for grammar analysis. It holds the FIRST and FOLLOW
// sets of a grammar. Create one with Analysis(g).
type LLAnalysis struct {
	g      *Grammar
	first  FirstSets
	follow FollowSets
}

// Analysis computes FIRST and FOLLOW sets for a grammar.
func Analysis(g *Grammar) *LLAnalysis {
	ga := &LLAnalysis{g: g}
	ga.first = ComputeFirstSets(g)
	ga.follow = ComputeFollowSets(g, ga.first)
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A). Clients must not modify the set returned.
func (ga *LLAnalysis) First(A Symbol) *SymbolSet {
	if A.IsTerminal() || A.IsEOF() {
		if _, ok := ga.first[A]; !ok {
			return NewSymbolSet(A)
		}
	}
	return ga.first.Of(A)
}

// Follow returns FOLLOW(A) for a non-terminal A, or an empty set for any
// other symbol. Clients must not modify the set returned.
func (ga *LLAnalysis) Follow(A Symbol) *SymbolSet {
	return ga.follow.Of(A)
}

// FirstOf returns FIRST(X1 … Xn) for a sequence of symbols.
func (ga *LLAnalysis) FirstOf(seq []Symbol) *SymbolSet {
	return FirstOfSequence(ga.first, seq)
}

// Nullable is a predicate: does A derive the empty word?
func (ga *LLAnalysis) Nullable(A Symbol) bool {
	return A.IsEpsilon() || ga.first.Of(A).Contains(Epsilon)
}

// FirstSets returns the FIRST table, for presentation purposes.
func (ga *LLAnalysis) FirstSets() FirstSets {
	return ga.first
}

// FollowSets returns the FOLLOW table, for presentation purposes.
func (ga *LLAnalysis) FollowSets() FollowSets {
	return ga.follow
}

// Dump is a debugging helper, tracing FIRST and FOLLOW sets at debug level.
func (ga *LLAnalysis) Dump() {
	for _, A := range ga.g.NonTerminals() {
		tracer().Debugf("FIRST(%s) = %v", A, ga.first.Of(A))
	}
	for _, A := range ga.g.NonTerminals() {
		tracer().Debugf("FOLLOW(%s) = %v", A, ga.follow.Of(A))
	}
}
