package extension

import "errors"

// ErrNilCommand is returned when a nil command is processed
var ErrNilCommand = errors.New("command is nil")
