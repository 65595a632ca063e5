package parse

import (
	"errors"
	"fmt"
)

var (
	ErrIndent = errors.New("indent error")
	ErrDone   = errors.New("builder already finished")
)

// IndentError reports a line whose depth the grammar does not allow.
type IndentError struct {
	Token string
	Depth int
	Line  int
	First bool
}

func (e *IndentError) Error() string {
	var msg string
	if e.First {
		msg = fmt.Sprintf("invalid indentation depth near `%s` (%d indents)", e.Token, e.Depth)
	} else {
		msg = fmt.Sprintf("unexpected indent near `%s`, was the indentation too deep (%d)?", e.Token, e.Depth)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *IndentError) Unwrap() error {
	return ErrIndent
}
