package fsrs

import "errors"

// Sentinel errors for the fsrs package.
// Use errors.Is to check: errors.Is(err, fsrs.ErrInvalidRating)
var (
	ErrInvalidRating     = errors.New("fsrs: invalid rating")
	ErrInvalidState      = errors.New("fsrs: invalid state")
	ErrInvalidParameters = errors.New("fsrs: parameters out of bounds")
	ErrInvalidConfig     = errors.New("fsrs: invalid config")
	ErrCardIDMismatch    = errors.New("fsrs: card ID mismatch in review log")
	ErrNoReviewLogs      = errors.New("fsrs: no review logs to replay")
)
