package fsrs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-4

var t0 = time.Date(2022, 11, 29, 12, 30, 0, 0, time.UTC)

// testRatings is the regression sequence shared by the strategy tests.
var testRatings = []Rating{
	Good, Good, Good, Good, Good, Good,
	Again, Again,
	Good, Good, Good, Good, Good,
}

// altWeights is a trained weight vector used by the state and memo fixtures.
var altWeights = []float64{
	0.4197, 1.1869, 3.0412, 15.2441, 7.1434, 0.6477, 1.0007, 0.0674, 1.6597, 0.1712, 1.1178,
	2.0225, 0.0904, 0.3025, 2.1214, 0.2498, 2.9466, 0.4891, 0.6468,
}

func mustModel(t testing.TB, cfg Config) *Model {
	t.Helper()
	m, err := NewModel(cfg)
	require.NoError(t, err)
	return m
}

func defaultModel(t testing.TB) *Model {
	t.Helper()
	return mustModel(t, Config{})
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	assert.InDelta(t, want, got, epsilon, name)
}

// reviewCard returns a card in Review, last reviewed at t0.
func reviewCard(stability, difficulty float64) Card {
	return Card{
		CardID:        1,
		State:         Review,
		Stability:     stability,
		Difficulty:    difficulty,
		Due:           addDays(t0, 5),
		LastReview:    t0,
		ScheduledDays: 5,
		Reps:          4,
	}
}

// learningCard returns a card in the given short-step state, last reviewed at t0.
func learningCard(state State, stability, difficulty float64) Card {
	return Card{
		CardID:     1,
		State:      state,
		Stability:  stability,
		Difficulty: difficulty,
		Due:        t0.Add(10 * time.Minute),
		LastReview: t0,
		Reps:       1,
	}
}
