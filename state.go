package fsrs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// State is where a card sits in the review lifecycle.
//
//	New ──► Learning ──► Review ◄──► Relearning
//	 └────────────────────┘
type State int

const (
	New        State = iota // Never reviewed; the zero Card is New.
	Learning                // Short same-day steps after the first review.
	Review                  // Scheduled in whole days.
	Relearning              // Short steps after a lapse in Review.
)

var stateEnum = newEnum[State]("State", ErrInvalidState, "New", "Learning", "Review", "Relearning")

var (
	_ fmt.Stringer             = State(0)
	_ json.Marshaler           = State(0)
	_ json.Unmarshaler         = (*State)(nil)
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

// IsValid reports whether s is a known lifecycle state.
func (s State) IsValid() bool {
	return s >= New && s <= Relearning
}

func (s State) String() string { return stateEnum.format(s) }

func (s State) MarshalText() ([]byte, error) { return stateEnum.marshalText(s) }

func (s *State) UnmarshalText(text []byte) error {
	v, err := stateEnum.unmarshalText(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON encodes the state by name, e.g. "Relearning".
func (s State) MarshalJSON() ([]byte, error) { return stateEnum.marshalJSON(s) }

func (s *State) UnmarshalJSON(data []byte) error {
	v, err := stateEnum.unmarshalJSON(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
