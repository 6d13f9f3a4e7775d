package repository

import "errors"

// ErrNotFound is returned when a lookup for a single document finds no rows.
// The service layer translates it into `app_errors.ErrNotFound` so callers never
// see `sql.ErrNoRows`.
var ErrNotFound = errors.New("repository: not found")
