package ir

import "errors"

var (
	ErrUnrepresentable  = errors.New("unrepresentable value")
	ErrNotBranch        = errors.New("not a branch")
	ErrNothingToPromote = errors.New("no entry to promote")
	ErrPath             = errors.New("path error")
)
