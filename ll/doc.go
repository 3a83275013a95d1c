/*
Package ll implements the static part of LL(1) parsing: a grammar model,
FIRST and FOLLOW analysis, a check for LL(1)-conformance and the construction
of predictive parsing tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. The class of a
symbol is determined by the builder method used to add it and never changes
afterwards. Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").N("B").End()  // S  ->  A a B
    b.LHS("A").T("b").N("A").End()         // A  ->  b A
    b.LHS("A").Epsilon()                   // A  ->  ε
    b.LHS("B").T("c").N("B").End()         // B  ->  c B
    b.LHS("B").Epsilon()                   // B  ->  ε
    g, err := b.Grammar()

The start symbol is the left hand side of the first rule, unless set
explicitly with b.Start(…).

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LLAnalysis object, which computes FIRST and
FOLLOW sets for all the symbols of the grammar.

    ga := ll.Analysis(g)
    for _, A := range g.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
    }

    // Output:
    FIRST(A) = { b ε }
    FIRST(B) = { c ε }
    FIRST(S) = { a b }

Both sets are computed as fixed points. Updates found during one pass over
the productions are buffered and applied at the end of the pass, so the
result does not depend on the order of the productions.

LL(1) Conformance and Parsing Tables

Validate checks the pairwise FIRST/FOLLOW conditions for every non-terminal,
BuildTable constructs the predictive parsing table. Both are independent
consumers of the analysis and always agree: a grammar passes validation if
and only if its table can be built without conflicts.

    if c := ll.Validate(ga); !c.LL1 {
        return c.Err()
    }
    table, err := ll.BuildTable(ga)

The table is then handed to a parser driver, see package predictive.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llkit.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llkit.ll")
}
