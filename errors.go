package rxparse

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by the drain helpers when a parser produced
// no results at all.  Combinators themselves never return it: inside
// the algebra a failed attempt is just an empty result stream.
var ErrNoMatch = errors.New("no match")

// ContractError is the panic value used when a combinator is built
// with invalid arguments (a nil child parser, a negative bound).
// These are programming errors, so they are reported right away when
// the parser tree is constructed instead of at parse time.
type ContractError struct {
	Operator string
	Message  string
}

// Error returns the human readable representation of a contract error
func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operator, e.Message)
}

func contractViolation(operator, format string, args ...any) {
	panic(&ContractError{Operator: operator, Message: fmt.Sprintf(format, args...)})
}

// requireParsers panics if any of the parsers is nil
func requireParsers[S, T any](operator string, parsers []Parser[S, T]) {
	for i, p := range parsers {
		if isNil(p) {
			contractViolation(operator, "parser #%d is nil", i)
		}
	}
}

func requireParser[S, T any](operator, name string, p Parser[S, T]) {
	if isNil(p) {
		contractViolation(operator, "%s parser is nil", name)
	}
}

func isNil[S, T any](p Parser[S, T]) bool {
	if p == nil {
		return true
	}
	if f, ok := p.(Func[S, T]); ok {
		return f == nil
	}
	return false
}
