/*
Package scanner converts input text into sequences of terminals of an LL(1)
grammar, to be fed into a predictive parser.

ForGrammar creates a lexmachine-based scanner, recognizing the grammar's
terminals as literal strings. Matching is longest-match, whitespace is skipped,
and "$" is recognized as the end marker. Every other rune of the input becomes
a terminal of its own which is unknown to the grammar; the parser will report
it as a syntax error.

	sc, err := scanner.ForGrammar(g)
	if err != nil { ... }
	input, spans, err := sc.Symbols("n i m y i")

For quick experiments Split tokenizes without a lexer: at whitespace, if the
input contains any, otherwise one terminal per rune.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'llkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llkit.scanner")
}

// Scanner is a lexmachine scanner for the terminals of a grammar.
type Scanner struct {
	g       *ll.Grammar
	lexer   *lexmachine.Lexer
	symbols []ll.Symbol // token IDs are indices into symbols
}

// ForGrammar creates a scanner for the terminals of grammar g.
//
// ForGrammar will return an error if compiling the DFA failed.
func ForGrammar(g *ll.Grammar) (*Scanner, error) {
	sc := &Scanner{g: g, lexer: lexmachine.NewLexer()}
	sc.lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	sc.add(ll.EOF)
	for _, a := range g.Terminals() {
		sc.add(a)
	}
	if err := sc.lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return sc, nil
}

func (sc *Scanner) add(a ll.Symbol) {
	id := len(sc.symbols)
	sc.symbols = append(sc.symbols, a)
	sc.lexer.Add([]byte(literal(a.Name)), makeToken(id))
}

// Grammar returns the grammar this scanner recognizes terminals for.
func (sc *Scanner) Grammar() *ll.Grammar {
	return sc.g
}

// Symbols scans an input string. It returns the terminals together with
// their byte positions within the input.
// The end marker is not appended.
func (sc *Scanner) Symbols(input string) ([]ll.Symbol, []llkit.Span, error) {
	s, err := sc.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, nil, err
	}
	var syms []ll.Symbol
	var spans []llkit.Span
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				tracer().Errorf("scanner error: %v", err)
				return syms, spans, err
			}
			if ui.StartTC >= len(input) {
				break
			}
			r, size := utf8.DecodeRuneInString(input[ui.StartTC:])
			tracer().Debugf("unknown input %q at %d", r, ui.StartTC)
			syms = append(syms, ll.T(string(r)))
			spans = append(spans, llkit.Span{uint64(ui.StartTC), uint64(ui.StartTC + size)})
			s.TC = ui.StartTC + size
		} else {
			token := tok.(*lexmachine.Token)
			syms = append(syms, sc.symbols[token.Type])
			spans = append(spans, llkit.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))})
		}
		tok, err, eof = s.Next()
	}
	tracer().Debugf("scanned %d symbols", len(syms))
	return syms, spans, nil
}

// Split tokenizes input without a lexer: at whitespace, if the input
// contains any, otherwise one terminal per rune. Names are resolved against
// grammar g; "$" denotes the end marker, all other names become terminals.
func Split(g *ll.Grammar, input string) []ll.Symbol {
	var fields []string
	if strings.IndexFunc(input, unicode.IsSpace) >= 0 {
		fields = strings.Fields(input)
	} else {
		for _, r := range input {
			fields = append(fields, string(r))
		}
	}
	syms := make([]ll.Symbol, 0, len(fields))
	for _, f := range fields {
		if A, ok := g.SymbolByName(f); ok && (A.IsTerminal() || A.IsEOF()) {
			syms = append(syms, A)
			continue
		}
		syms = append(syms, ll.T(f))
	}
	return syms
}

// literal converts a terminal name to a lexmachine pattern matching it
// literally.
func literal(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < utf8.RuneSelf && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
