package indices

import "errors"

// Sentinel errors for the validation failures of Calculate. The
// returned errors wrap these, so callers can branch with errors.Is
// while still getting a remediation message.
var (
	ErrMissingIndex      = errors.New("no remote sensing index was provided")
	ErrUnknownIndex      = errors.New("not a valid remote sensing index option")
	ErrMissingCollection = errors.New("no collection was provided")
	ErrUnknownCollection = errors.New("not a valid collection option")
	ErrMissingBand       = errors.New("required spectral band is missing")
)
