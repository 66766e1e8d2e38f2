package core

import (
	"errors"
)

var (
	ErrWindowClosed = errors.New("window closed")
	ErrUnknown      = errors.New("unknown")
)
