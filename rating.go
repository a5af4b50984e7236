package fsrs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Rating is the learner's grade for one recall attempt.
type Rating int

const (
	Again Rating = iota + 1 // Forgot.
	Hard                    // Recalled with serious effort.
	Good                    // Recalled after a hesitation.
	Easy                    // Recalled at once.
)

// Ratings lists every rating from worst to best. Strategies index their
// per-rating branches in this order.
var Ratings = [...]Rating{Again, Hard, Good, Easy}

var ratingEnum = newEnum[Rating]("Rating", ErrInvalidRating, "", "Again", "Hard", "Good", "Easy")

var (
	_ fmt.Stringer             = Rating(0)
	_ json.Marshaler           = Rating(0)
	_ json.Unmarshaler         = (*Rating)(nil)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// IsValid reports whether r is one of Again, Hard, Good or Easy.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

// mustBeValid panics for values outside Again..Easy. Strategies have no
// error return; Scheduler.ReviewCard is the checked entry point.
func (r Rating) mustBeValid() {
	if !r.IsValid() {
		panic(fmt.Errorf("%w: %s", ErrInvalidRating, r))
	}
}

// index maps a valid rating onto its position in Ratings.
func (r Rating) index() int {
	return int(r - Again)
}

func (r Rating) String() string { return ratingEnum.format(r) }

func (r Rating) MarshalText() ([]byte, error) { return ratingEnum.marshalText(r) }

func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ratingEnum.unmarshalText(text)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON encodes the rating by name, e.g. "Good".
func (r Rating) MarshalJSON() ([]byte, error) { return ratingEnum.marshalJSON(r) }

func (r *Rating) UnmarshalJSON(data []byte) error {
	v, err := ratingEnum.unmarshalJSON(data)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
