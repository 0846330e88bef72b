package tasklist

import "errors"

var (
	ErrValidation  = errors.New("task text required")
	ErrNoSelection = errors.New("no task selected")
)
