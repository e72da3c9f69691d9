package content

import "errors"

var (
	// ErrNotFound means the slug/id had no matching row.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a unique value (slug, email) is already taken.
	ErrConflict = errors.New("conflict")
	// ErrValidation means the input was rejected before touching the database.
	ErrValidation = errors.New("validation")
)
