package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/llkit/ll/predictive"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func renderError(err error) {
	pterm.Error.Println(err.Error())
}

// renderGrammar prints the rules of a grammar as a tree, grouped by
// left hand side.
func renderGrammar(g *ll.Grammar) {
	list := pterm.LeveledList{{Level: 0, Text: fmt.Sprintf("%s (start %s)", g.Name, g.Start())}}
	var lhs ll.Symbol
	for _, r := range g.Productions() {
		if r.LHS != lhs {
			lhs = r.LHS
			list = append(list, pterm.LeveledListItem{Level: 1, Text: lhs.Name})
		}
		list = append(list, pterm.LeveledListItem{
			Level: 2,
			Text:  fmt.Sprintf("%2d: %s", r.Serial, rhsString(r)),
		})
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(list)).Render()
}

// renderSets prints FIRST and FOLLOW sets for all non-terminals.
func renderSets(ga *ll.LLAnalysis) {
	data := [][]string{{"non-terminal", "nullable", "FIRST", "FOLLOW"}}
	for _, A := range ga.Grammar().NonTerminals() {
		nullable := ""
		if ga.Nullable(A) {
			nullable = "yes"
		}
		data = append(data, []string{A.Name, nullable, ga.First(A).String(), ga.Follow(A).String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderConformance(c *ll.Conformance) {
	if c.LL1 {
		pterm.Success.Println(fmt.Sprintf("grammar %s is LL(1)", c.Grammar))
		return
	}
	pterm.Error.Println(fmt.Sprintf("grammar %s is not LL(1)", c.Grammar))
	for _, v := range c.Violations {
		pterm.Error.Println(v.String())
	}
}

// renderTable prints the parsing table with one row per non-terminal and
// one column per lookahead.
func renderTable(t *ll.ParsingTable) {
	header := []string{""}
	for _, a := range t.Terminals() {
		header = append(header, a.Name)
	}
	data := [][]string{header}
	for _, A := range t.NonTerminals() {
		row := []string{A.Name}
		for _, a := range t.Terminals() {
			cell := ""
			if r, ok := t.Lookup(A, a); ok {
				cell = A.Name + " ➞ " + rhsString(r)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println(fmt.Sprintf("%d entries, fingerprint %s", t.Size(), t.Fingerprint()))
}

func renderResult(input string, syms []ll.Symbol, spans []llkit.Span, result *predictive.Result, err error) {
	if err != nil {
		var perr *predictive.ParseError
		if errors.As(err, &perr) {
			for _, e := range perr.Recovered {
				renderSyntaxError(input, spans, e)
			}
			pterm.Error.Println(describe(input, spans, perr.Pos, err.Error()))
			return
		}
		renderError(err)
		return
	}
	for _, e := range result.Errors {
		renderSyntaxError(input, spans, e)
	}
	if result.Recovered() > 0 {
		pterm.Warning.Println(fmt.Sprintf("accepted %d symbols after recovering from %d errors",
			len(syms), result.Recovered()))
		return
	}
	pterm.Success.Println(fmt.Sprintf("accepted %d symbols in %d steps", len(syms), result.Steps))
}

// renderDerivation prints a leftmost derivation as a parse tree.
func renderDerivation(start ll.Symbol, derivation []*ll.Production) {
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(derivationTree(start, derivation))).Render()
}

// derivationTree re-assembles the parse tree from the productions of a
// leftmost derivation. Non-terminals without a matching production are
// marked with '?'.
func derivationTree(start ll.Symbol, derivation []*ll.Production) pterm.LeveledList {
	var list pterm.LeveledList
	i := 0
	var walk func(A ll.Symbol, level int)
	walk = func(A ll.Symbol, level int) {
		if i >= len(derivation) || derivation[i].LHS != A {
			list = append(list, pterm.LeveledListItem{Level: level, Text: A.Name + " ?"})
			return
		}
		r := derivation[i]
		i++
		list = append(list, pterm.LeveledListItem{Level: level, Text: A.Name})
		for _, X := range r.RHS() {
			if X.IsNonTerminal() {
				walk(X, level+1)
				continue
			}
			list = append(list, pterm.LeveledListItem{Level: level + 1, Text: X.Name})
		}
	}
	walk(start, 0)
	return list
}

func renderSyntaxError(input string, spans []llkit.Span, e predictive.SyntaxError) {
	pterm.Warning.Println(describe(input, spans, e.Pos, e.String()))
}

// describe adds the offending input text to a message, if the input has been
// scanned with position information.
func describe(input string, spans []llkit.Span, pos int, msg string) string {
	span := llkit.SpanAt(spans, pos)
	if len(spans) == 0 || int(span.To()) > len(input) {
		return msg
	}
	if span.Len() == 0 {
		return fmt.Sprintf("%s\n    %s\n    %s^ end of input", msg, input, strings.Repeat(" ", int(span.From())))
	}
	return fmt.Sprintf("%s\n    %s\n    %s%s", msg, input,
		strings.Repeat(" ", int(span.From())), strings.Repeat("^", int(span.Len())))
}

func rhsString(r *ll.Production) string {
	var names []string
	for _, X := range r.RHS() {
		names = append(names, X.Name)
	}
	return strings.Join(names, " ")
}
