package validators

import "errors"

// ErrNotValidatable is returned when a value cannot be validated at all,
// e.g. when something other than a form struct is passed in. This signals a
// programming error rather than bad user input.
var ErrNotValidatable = errors.New("value cannot be validated")
