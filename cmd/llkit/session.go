package main

import (
	"fmt"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/llkit/ll/bnf"
	"github.com/npillmayer/llkit/ll/predictive"
	"github.com/npillmayer/llkit/ll/scanner"
)

// session bundles everything needed to parse input for a grammar.
type session struct {
	ga      *ll.LLAnalysis
	table   *ll.ParsingTable
	scanner *scanner.Scanner
	parser  *predictive.Parser
	tree    bool // display parse trees
}

func loadGrammar(path string) (*ll.LLAnalysis, error) {
	g, err := bnf.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tracer().Infof("read grammar %s with %d rules", g.Name, g.Size())
	g.Dump()
	ga := ll.Analysis(g)
	ga.Dump()
	return ga, nil
}

// newSession loads a grammar and prepares a parser for it. If the grammar is
// not LL(1), the violations are displayed and an error is returned.
func newSession(path string) (*session, error) {
	ga, err := loadGrammar(path)
	if err != nil {
		return nil, err
	}
	table, err := ll.BuildTable(ga)
	if err != nil {
		renderConformance(ll.Validate(ga))
		return nil, err
	}
	table.Dump()
	s := &session{ga: ga, table: table}
	if !conf.Split {
		if s.scanner, err = scanner.ForGrammar(ga.Grammar()); err != nil {
			return nil, fmt.Errorf("cannot create scanner: %w", err)
		}
	}
	s.parser = predictive.NewParser(ga, table, predictive.MaxErrors(conf.MaxErrors))
	return s, nil
}

func (s *session) tokenize(input string) ([]ll.Symbol, []llkit.Span, error) {
	if s.scanner == nil {
		return scanner.Split(s.ga.Grammar(), input), nil, nil
	}
	return s.scanner.Symbols(input)
}

// parse tokenizes and parses a single input and displays the outcome.
func (s *session) parse(input string) (*predictive.Result, error) {
	syms, spans, err := s.tokenize(input)
	if err != nil {
		renderError(err)
		return nil, err
	}
	tracer().Debugf("input symbols: %v", syms)
	result, err := s.parser.Parse(syms)
	renderResult(input, syms, spans, result, err)
	if err == nil && s.tree && result.Recovered() == 0 {
		renderDerivation(s.ga.Grammar().Start(), result.Derivation)
	}
	return result, err
}
