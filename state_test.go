package fsrs

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStates = []State{New, Learning, Review, Relearning}

func TestStateValues(t *testing.T) {
	assert.Equal(t, State(0), New)
	assert.Equal(t, State(1), Learning)
	assert.Equal(t, State(2), Review)
	assert.Equal(t, State(3), Relearning)

	var c Card
	assert.Equal(t, New, c.State, "zero Card must be New")
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{New, "New"},
		{Learning, "Learning"},
		{Review, "Review"},
		{Relearning, "Relearning"},
		{State(-1), "State(-1)"},
		{State(4), "State(4)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestStateMarshalJSON(t *testing.T) {
	for _, s := range allStates {
		got, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, `"`+s.String()+`"`, string(got))
	}
}

func TestStateMarshalJSONInvalid(t *testing.T) {
	_, err := State(7).MarshalText()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))

	_, err = json.Marshal(State(-1))
	assert.Error(t, err)
}

func TestStateUnmarshalJSONInvalid(t *testing.T) {
	for _, input := range []string{`"Unknown"`, `""`, `42`, `null`} {
		var s State
		assert.Error(t, json.Unmarshal([]byte(input), &s), input)
	}
}

func TestStateJSONRoundTrip(t *testing.T) {
	for _, s := range allStates {
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var got State
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, s, got)
	}
}
