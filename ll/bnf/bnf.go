/*
Package bnf reads grammars for package ll from text.

The text format is line oriented. Every line holds a rule or a directive:

	# arithmetic expressions
	%start E
	E  -> T E'
	E' -> + T E' | ε
	T  -> F T'
	T' -> * F T' | ε
	F  -> ( E ) | id

Arrows may be written as "->", "→" or "::=" and have to be separated from
the symbols by whitespace. A line starting with "|" continues the alternatives
of the previous rule. Names starting with an upper case letter are
non-terminals, all other names are terminals. Quoted names ('x' or "x") are
always terminals. ε, eps and epsilon denote the empty word, as does an empty
alternative. The left hand side of the first rule is the start symbol, unless
a %start directive names one. "#" starts a comment.

Grammars may as well be given as YAML documents:

	name: expressions
	start: E
	rules:
	  - E -> T S
	  - S -> + T S | ε
	  ...

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'llkit.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llkit.ll")
}

// SyntaxError is returned for malformed grammar text.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// --- Lexer -----------------------------------------------------------------

const (
	tokNL int = iota
	tokArrow
	tokBar
	tokStart
	tokQuoted
	tokName
)

var (
	lexer    *lexmachine.Lexer
	lexerErr error
	lexOnce  sync.Once
)

func initLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		lexer, lexerErr = compileLexer()
	})
	return lexer, lexerErr
}

func compileLexer() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`#[^\n]*`), skip)
	lx.Add([]byte(`( |\t|\r)+`), skip)
	lx.Add([]byte(`\n`), makeToken(tokNL))
	lx.Add([]byte(`\-\>`), makeToken(tokArrow))
	lx.Add([]byte(`→`), makeToken(tokArrow))
	lx.Add([]byte(`\:\:\=`), makeToken(tokArrow))
	lx.Add([]byte(`\|`), makeToken(tokBar))
	lx.Add([]byte(`\%start`), makeToken(tokStart))
	lx.Add([]byte(`'[^'\n]*'`), makeToken(tokQuoted))
	lx.Add([]byte(`"[^"\n]*"`), makeToken(tokQuoted))
	lx.Add([]byte(`[^ \t\r\n\|'"#][^ \t\r\n\|"#]*`), makeToken(tokName))
	if err := lx.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return lx, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

type token struct {
	kind   int
	lexeme string
	line   int
}

// lines tokenizes text and groups the tokens by line. Empty lines are dropped.
func lines(text string) ([][]token, error) {
	lx, err := initLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	var all [][]token
	var line []token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, &SyntaxError{Line: ui.StartLine, Msg: fmt.Sprintf("unexpected input %q", ui.Text)}
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		if t.Type == tokNL {
			if len(line) > 0 {
				all = append(all, line)
				line = nil
			}
			continue
		}
		line = append(line, token{kind: t.Type, lexeme: string(t.Lexeme), line: t.StartLine})
	}
	if len(line) > 0 {
		all = append(all, line)
	}
	return all, nil
}

// --- Parser ----------------------------------------------------------------

// Parse reads a grammar in text format and creates a grammar named name.
func Parse(name string, text string) (*ll.Grammar, error) {
	r := &reader{b: ll.NewGrammarBuilder(name)}
	if err := r.read(text, 0); err != nil {
		return nil, err
	}
	return r.b.Grammar()
}

// reader adds rules to a grammar builder. It remembers the most recent
// left hand side for continuation lines.
type reader struct {
	b   *ll.GrammarBuilder
	lhs string
}

// read adds the rules of text to the grammar builder. Line numbers are
// counted from offset.
func (r *reader) read(text string, offset int) error {
	lns, err := lines(text)
	if err != nil {
		if serr, ok := err.(*SyntaxError); ok {
			serr.Line += offset
		}
		return err
	}
	b := r.b
	for _, toks := range lns {
		lineno := toks[0].line + offset
		switch toks[0].kind {
		case tokStart:
			if len(toks) != 2 || toks[1].kind != tokName || !isNonTerminal(toks[1].lexeme) {
				return &SyntaxError{Line: lineno, Msg: "%start expects a single non-terminal"}
			}
			b.Start(toks[1].lexeme)
		case tokBar:
			if r.lhs == "" {
				return &SyntaxError{Line: lineno, Msg: "continuation line without a rule"}
			}
			if err := alternatives(b, r.lhs, toks[1:], lineno); err != nil {
				return err
			}
		case tokName:
			if len(toks) < 2 || toks[1].kind != tokArrow {
				return &SyntaxError{Line: lineno, Msg: "expected rule of the form A -> ..."}
			}
			if !isNonTerminal(toks[0].lexeme) || isEpsilon(toks[0].lexeme) {
				return &SyntaxError{Line: lineno,
					Msg: fmt.Sprintf("left hand side %q is not a non-terminal", toks[0].lexeme)}
			}
			r.lhs = toks[0].lexeme
			if err := alternatives(b, r.lhs, toks[2:], lineno); err != nil {
				return err
			}
		default:
			return &SyntaxError{Line: lineno, Msg: fmt.Sprintf("unexpected %q", toks[0].lexeme)}
		}
	}
	return nil
}

// alternatives adds one rule per |-separated alternative in toks.
func alternatives(b *ll.GrammarBuilder, lhs string, toks []token, lineno int) error {
	rb := b.LHS(lhs)
	for _, t := range toks {
		switch t.kind {
		case tokBar:
			rb.End()
			rb = b.LHS(lhs)
		case tokQuoted:
			name := t.lexeme[1 : len(t.lexeme)-1]
			if name == "" {
				return &SyntaxError{Line: lineno, Msg: "empty terminal name"}
			}
			rb.T(name)
		case tokName:
			switch {
			case isEpsilon(t.lexeme):
				rb.Symbol(ll.Epsilon)
			case isNonTerminal(t.lexeme):
				rb.N(t.lexeme)
			default:
				rb.T(t.lexeme)
			}
		default:
			return &SyntaxError{Line: lineno, Msg: fmt.Sprintf("unexpected %q in right hand side", t.lexeme)}
		}
	}
	rb.End()
	return nil
}

func isNonTerminal(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func isEpsilon(name string) bool {
	switch name {
	case "ε", "eps", "epsilon":
		return true
	}
	return false
}

// ReadFile reads a grammar from a file. Files with extension .yaml or .yml are
// read as YAML documents, all others in text format. For text files, the
// grammar is named after the file.
func ReadFile(path string) (*ll.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var g *ll.Grammar
	switch ext {
	case ".yaml", ".yml":
		g, err = ParseYAML(data)
	default:
		g, err = Parse(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
