package manifest

import "errors"

// ErrMalformed indicates that the manifest text is missing a required section
// sentinel or that a required role cannot be resolved against the document.
// It is fatal and is always reported before any write happens.
var ErrMalformed = errors.New("malformed manifest")
