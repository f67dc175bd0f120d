package repositories

import "errors"

// ErrNotFound is returned by GetByID/Update when no row matches the id.
// Deletes are idempotent and never return it.
var ErrNotFound = errors.New("record not found")
