package spacegroup

import "errors"

// ErrNotFound is returned by the Get* lookups when no catalog entry
// matches the requested name, number, or operation set.
var ErrNotFound = errors.New("spacegroup: space group not found")
