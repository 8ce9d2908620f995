package app

import "errors"

// ErrUnsupportedMethod is returned when building a command for an unknown method
var ErrUnsupportedMethod = errors.New("unsupported method")
