package loopback

import "errors"

// ErrResourceNotFound is reported when no resource exists under the command uri
var ErrResourceNotFound = errors.New("resource not found")

// ErrMethodNotSupported is reported for methods the loopback does not handle
var ErrMethodNotSupported = errors.New("method not supported")
