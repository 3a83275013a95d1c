package predictive

import (
	"fmt"

	"github.com/npillmayer/llkit/ll"
)

// ErrorKind categorizes parse errors.
type ErrorKind int

// Kinds of errors. TerminalMismatch and NoProduction are subject to error
// recovery, all others end a parse.
const (
	TerminalMismatch   ErrorKind = iota // terminal on the stack differs from the input
	NoProduction                        // empty table cell for (non-terminal, lookahead)
	UnexpectedEnd                       // input exhausted, stack not empty
	TrailingInput                       // stack empty, input remaining
	Unrecoverable                       // no recovery strategy could resynchronize
	TooManyErrors                       // error budget exceeded
	InvalidStackSymbol                  // internal error: malformed stack
)

func (k ErrorKind) String() string {
	switch k {
	case TerminalMismatch:
		return "terminal mismatch"
	case NoProduction:
		return "no production"
	case UnexpectedEnd:
		return "unexpected end of input"
	case TrailingInput:
		return "input not fully processed"
	case Unrecoverable:
		return "unrecoverable syntax error"
	case TooManyErrors:
		return "too many errors"
	case InvalidStackSymbol:
		return "invalid symbol on stack"
	}
	return fmt.Sprintf("error(%d)", int(k))
}

// SyntaxError is a syntax error the parser recovered from.
type SyntaxError struct {
	Kind     ErrorKind // TerminalMismatch or NoProduction
	Pos      int       // index of the offending input symbol
	Expected ll.Symbol // top of stack at the time of the error
	Found    ll.Symbol // input symbol at Pos
	Strategy Strategy  // strategy which resynchronized the parser
	Resumed  int       // input position the parse resumed at
}

func (e SyntaxError) String() string {
	if e.Kind == TerminalMismatch {
		return fmt.Sprintf("@%d: expected %s, found %s (recovered by %v at %d)",
			e.Pos, e.Expected, e.Found, e.Strategy, e.Resumed)
	}
	return fmt.Sprintf("@%d: no production for (%s, %s) (recovered by %v at %d)",
		e.Pos, e.Expected, e.Found, e.Strategy, e.Resumed)
}

// ParseError is returned for a failed parse.
type ParseError struct {
	Kind      ErrorKind
	Pos       int           // input position where the parse stopped
	Symbol    ll.Symbol     // top of stack, if any
	Found     ll.Symbol     // input symbol at Pos, if any
	Recovered []SyntaxError // errors recovered from before the parse failed
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEnd:
		return fmt.Sprintf("unexpected end of input at %d, expected %s", e.Pos, e.Symbol)
	case TrailingInput:
		return fmt.Sprintf("input not fully processed, remaining input starts at %d with %s", e.Pos, e.Found)
	case Unrecoverable:
		return fmt.Sprintf("unrecoverable syntax error at %d: expected %s, found %s", e.Pos, e.Symbol, e.Found)
	case TooManyErrors:
		return fmt.Sprintf("too many errors (%d), giving up at %d", len(e.Recovered)+1, e.Pos)
	case InvalidStackSymbol:
		return fmt.Sprintf("internal error: invalid symbol on stack: %q", e.Symbol.Name)
	}
	return fmt.Sprintf("%v at %d", e.Kind, e.Pos)
}
