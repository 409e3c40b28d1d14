package interfaces

import "errors"

// ErrNotFound is the shared sentinel wrapped by all repository backends
// when a requested record does not exist.
var ErrNotFound = errors.New("record not found")
