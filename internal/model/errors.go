package model

import "errors"

// ErrValidation is returned when a candidate bookmark violates one of the
// bookmark invariants (missing field, URL without the https:// prefix, or a
// malformed URL). Callers only need errors.Is; the wrapped detail names the
// violated rules for logging.
var ErrValidation = errors.New("validation failed")
