package quadratic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArguments   = errors.New("not correct arguments for quadratic equation")
	ErrNotEnoughArguments = errors.New("not enough arguments for quadratic equation")
)

// maxArgDisplay caps how much of each raw token is echoed back in a rejection
const maxArgDisplay = 20

// ArgumentError reports a coefficient group that could not become an equation.
// Its message is the rejection line printed by the solver, minus the newline.
type ArgumentError struct {
	Args []string
	Err  error
}

func (e *ArgumentError) Error() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, a := range e.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%.*s", maxArgDisplay, a)
	}
	sb.WriteString(") => ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
