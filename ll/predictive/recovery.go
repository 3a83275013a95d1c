package predictive

import (
	"fmt"

	"github.com/npillmayer/llkit/ll"
)

// Strategy is an error recovery strategy.
type Strategy int

// Recovery strategies, see package documentation.
const (
	SkipInput Strategy = iota
	PopStack
	FollowSync
)

func (s Strategy) String() string {
	switch s {
	case SkipInput:
		return "skip-input"
	case PopStack:
		return "pop-stack"
	case FollowSync:
		return "follow-sync"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// recover is called with the offending stack symbol re-pushed. It tries the
// configured strategies in order and commits the first one leaving stack and
// input aligned.
func (p *Parser) recover(kind ErrorKind, X, a ll.Symbol) error {
	p.errcnt++
	if p.errcnt > p.maxErrors {
		return p.fail(TooManyErrors, X, a)
	}
	tracer().Infof("syntax error at %d: %v, stack top = %s, input = %s", p.pos, kind, X, a)
	for _, strategy := range p.strategies {
		st, pos, ok := p.attempt(strategy, p.stack.copy(), p.pos)
		if !ok {
			tracer().Debugf("%v did not succeed", strategy)
			continue
		}
		if !p.aligned(st, pos) {
			tracer().Debugf("%v did not align stack and input, rolling back", strategy)
			continue
		}
		tracer().Infof("recovered by %v, resuming at %d with stack %v", strategy, pos, st)
		p.errors = append(p.errors, SyntaxError{
			Kind:     kind,
			Pos:      p.pos,
			Expected: X,
			Found:    a,
			Strategy: strategy,
			Resumed:  pos,
		})
		p.stack, p.pos = st, pos
		return nil
	}
	return p.fail(Unrecoverable, X, a)
}

func (p *Parser) attempt(strategy Strategy, st stack, pos int) (stack, int, bool) {
	switch strategy {
	case SkipInput:
		return p.skipInput(st, pos)
	case PopStack:
		return p.popStack(st, pos)
	case FollowSync:
		return p.followSync(st, pos)
	}
	return st, pos, false
}

// aligned is true if the top of stack st may continue with input at pos:
// a terminal matching the input, or a non-terminal with a table entry for it.
func (p *Parser) aligned(st stack, pos int) bool {
	if len(st) == 0 || pos >= len(p.input) {
		return false
	}
	X, a := st.top(), p.input[pos]
	switch {
	case X.IsTerminal() || X.IsEOF():
		return X == a
	case X.IsNonTerminal():
		_, ok := p.table.Lookup(X, a)
		return ok
	}
	return false
}

// skipInput advances the input, starting behind the offending symbol, until
// the top of stack is aligned with it.
func (p *Parser) skipInput(st stack, pos int) (stack, int, bool) {
	for k := pos + 1; k < len(p.input); k++ {
		if p.aligned(st, k) {
			return st, k, true
		}
	}
	return st, pos, false
}

// popStack pops stack symbols until the top of stack is aligned with the input.
// An empty stack is a failure.
func (p *Parser) popStack(st stack, pos int) (stack, int, bool) {
	for len(st) > 0 {
		st.pop()
		if p.aligned(st, pos) {
			return st, pos, true
		}
	}
	return st, pos, false
}

// followSync skips input up to the first symbol in FOLLOW(A) for a
// non-terminal A on top of the stack, and pops A. Terminals on top of the
// stack have no synchronization set.
func (p *Parser) followSync(st stack, pos int) (stack, int, bool) {
	A := st.top()
	if len(st) == 0 || !A.IsNonTerminal() {
		return st, pos, false
	}
	sync := p.ga.Follow(A)
	for k := pos; k < len(p.input); k++ {
		if sync.Contains(p.input[k]) {
			st.pop()
			return st, k, true
		}
	}
	return st, pos, false
}
