/*
Package predictive provides a table-driven LL(1) parser. Clients have to use
the tools of package ll to prepare the parsing table. The predictive parser
utilizes this table to create a left derivation for a given input sequence
of terminals.

The parser keeps a stack of grammar symbols, initialized to [$ S] with the
start symbol S on top. In each step the top of the stack is popped: a terminal
has to match the current input symbol, a non-terminal is expanded by the
production found in the parsing table for the current lookahead. Input is
accepted when the end marker $ has been matched.

Error Recovery

On a mismatch the parser tries to resynchronize stack and input, with the
following strategies, in order:

■ SkipInput: skip input symbols until the top of stack fits the input.

■ PopStack: pop symbols off the stack until the top of stack fits the input.

■ FollowSync: if the top of stack is a non-terminal A, skip the input up to
the next symbol in FOLLOW(A) and pop A.

Every strategy works on a copy of the parser state and is committed only if
stack and input are aligned afterwards. Every error counts against an error
budget (default 10); exceeding it aborts the parse.
Recovery is a heuristic: an input accepted after recovering from errors is
not necessarily a sentence of the grammar. Clients should check
Result.Recovered().

Usage

	ga := ll.Analysis(g)
	table, err := ll.BuildTable(ga)
	if err != nil { ... }  // grammar is not LL(1)
	p := predictive.NewParser(ga, table)
	result, err := p.Parse(input)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"bytes"
	"errors"

	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llkit.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llkit.ll")
}

// DefaultMaxErrors is the default error budget for a single parse.
const DefaultMaxErrors = 10

// Parser is an LL(1)-parser type. Create and initialize one with predictive.NewParser(...).
// A parser may be used for more than one parse, but not concurrently.
type Parser struct {
	ga         *ll.LLAnalysis
	table      *ll.ParsingTable
	maxErrors  int
	strategies []Strategy
	stack      stack       // parser stack, TOS at the end
	input      []ll.Symbol // input terminated by $
	pos        int         // input cursor
	errcnt     int
	errors     []SyntaxError
	derivation []*ll.Production
}

// Option configures a parser.
type Option func(p *Parser)

// MaxErrors sets the error budget of a parser.
func MaxErrors(n int) Option {
	return func(p *Parser) {
		p.maxErrors = n
	}
}

// Strategies sets the recovery strategies and their order. With no
// strategies, every syntax error is fatal.
func Strategies(s ...Strategy) Option {
	return func(p *Parser) {
		p.strategies = append([]Strategy(nil), s...)
	}
}

// NewParser creates a predictive parser for an analysed grammar and its
// parsing table.
func NewParser(ga *ll.LLAnalysis, table *ll.ParsingTable, opts ...Option) *Parser {
	p := &Parser{
		ga:         ga,
		table:      table,
		maxErrors:  DefaultMaxErrors,
		strategies: []Strategy{SkipInput, PopStack, FollowSync},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the outcome of a successful parse.
type Result struct {
	Accepted   bool
	Errors     []SyntaxError    // errors the parser recovered from
	Steps      int              // number of parser steps
	Derivation []*ll.Production // productions of the leftmost derivation, in order
}

// Recovered returns the number of syntax errors the parser recovered from.
func (r *Result) Recovered() int {
	return len(r.Errors)
}

// Parse runs the parser on a sequence of input terminals. If the input is not
// terminated by $, the end marker is appended. A symbol named "$" is always
// treated as end marker.
//
// Parse returns a result if the input has been accepted, possibly after
// recovering from syntax errors, or a *ParseError.
func (p *Parser) Parse(input []ll.Symbol) (*Result, error) {
	if p.ga == nil || p.table == nil {
		return nil, errors.New("LL(1)-parser not initialized")
	}
	p.input = terminate(input)
	p.stack = stack{ll.EOF, p.ga.Grammar().Start()}
	p.pos, p.errcnt, p.errors, p.derivation = 0, 0, nil, nil
	steps := 0
	for len(p.stack) > 0 {
		if p.pos >= len(p.input) {
			return nil, p.fail(UnexpectedEnd, p.stack.top(), ll.EOF)
		}
		a := p.input[p.pos]
		p.traceState()
		X := p.stack.pop()
		steps++
		switch {
		case X.IsTerminal() || X.IsEOF():
			if X == a {
				tracer().Debugf("match %s", a)
				p.pos++
				continue
			}
			p.stack.push(X)
			if err := p.recover(TerminalMismatch, X, a); err != nil {
				return nil, err
			}
		case X.IsNonTerminal():
			if r, ok := p.table.Lookup(X, a); ok {
				tracer().Debugf("expand %v", r)
				p.expand(r)
				continue
			}
			p.stack.push(X)
			if err := p.recover(NoProduction, X, a); err != nil {
				return nil, err
			}
		default:
			return nil, p.fail(InvalidStackSymbol, X, a)
		}
	}
	if p.pos < len(p.input) {
		return nil, p.fail(TrailingInput, ll.Symbol{}, p.input[p.pos])
	}
	tracer().Infof("input accepted after %d steps, %d errors", steps, len(p.errors))
	return &Result{
		Accepted:   true,
		Errors:     p.errors,
		Steps:      steps,
		Derivation: p.derivation,
	}, nil
}

// expand pushes the RHS of r in reverse order, skipping ε.
func (p *Parser) expand(r *ll.Production) {
	p.derivation = append(p.derivation, r)
	rhs := r.RHS()
	for i := len(rhs) - 1; i >= 0; i-- {
		if !rhs[i].IsEpsilon() {
			p.stack.push(rhs[i])
		}
	}
}

func (p *Parser) fail(kind ErrorKind, X, a ll.Symbol) error {
	err := &ParseError{Kind: kind, Pos: p.pos, Symbol: X, Found: a, Recovered: p.errors}
	tracer().Errorf(err.Error())
	return err
}

func (p *Parser) traceState() {
	if tracer().GetTraceLevel() < tracing.LevelDebug {
		return
	}
	tracer().Debugf("stack = %v", p.stack)
	tracer().Debugf("input = %v", symbolString(p.input[p.pos:]))
}

// terminate copies the input and makes sure it ends with the end marker.
func terminate(input []ll.Symbol) []ll.Symbol {
	in := make([]ll.Symbol, 0, len(input)+1)
	for _, a := range input {
		if a.Name == ll.EOF.Name {
			a = ll.EOF
		}
		in = append(in, a)
	}
	if len(in) == 0 || in[len(in)-1] != ll.EOF {
		in = append(in, ll.EOF)
	}
	return in
}

// --- Parser stack ----------------------------------------------------------

// stack holds grammar symbols, bottom at index 0.
type stack []ll.Symbol

func (s *stack) push(A ll.Symbol) {
	*s = append(*s, A)
}

func (s *stack) pop() ll.Symbol {
	A := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return A
}

func (s stack) top() ll.Symbol {
	if len(s) == 0 {
		return ll.Symbol{}
	}
	return s[len(s)-1]
}

func (s stack) copy() stack {
	return append(stack(nil), s...)
}

func (s stack) String() string {
	return symbolString(s)
}

func symbolString(syms []ll.Symbol) string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, A := range syms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}
