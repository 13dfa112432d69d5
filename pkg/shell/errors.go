package shell

import "errors"

var (
	ErrExit             = errors.New("shell: exit requested")
	ErrUnknownCommand   = errors.New("command not found")
	ErrDuplicateCommand = errors.New("shell: command already registered")
	ErrMissingOperand   = errors.New("missing operand")
	ErrTooManyArgs      = errors.New("too many arguments")
)
