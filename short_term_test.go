package fsrs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func shortTermWith(m MemoryModel) scheduleFunc {
	return func(card Card, r Rating, now time.Time) Outcome {
		return NewShortTerm(m, card, now).Schedule(r)
	}
}

func TestShortTermIntervals(t *testing.T) {
	_, intervals, _ := replay(shortTermWith(defaultModel(t)), testRatings)
	assert.Equal(t, stepIntervals, intervals)
}

func TestShortTermStates(t *testing.T) {
	_, _, logs := replay(shortTermWith(mustModel(t, Config{Weights: altWeights})), testRatings)
	assert.Equal(t, stepStates, logStates(logs))
}

func TestShortTermMemoState(t *testing.T) {
	testMemoState(t, shortTermWith(mustModel(t, Config{Weights: altWeights})))
}

func TestShortTermRetrievabilityAtDue(t *testing.T) {
	testRetrievabilityAtDue(t, func(m *Model) scheduleFunc { return shortTermWith(m) })
}

func TestShortTermDayCounters(t *testing.T) {
	m := defaultModel(t)
	card := reviewCard(10, 5)
	card.ElapsedDays = 4
	card.ScheduledDays = 15

	for _, r := range Ratings {
		c := NewShortTerm(m, card, addDays(t0, 10)).NextCard(r)
		assert.Equal(t, c.IntervalDays(), c.ScheduledDays, r.String())
		assert.Equal(t, card.ElapsedDays, c.ElapsedDays, r.String())
	}

	again := NewShortTerm(m, card, addDays(t0, 10)).NextCard(Again)
	assert.Zero(t, again.ScheduledDays, "a relearning step is same-day")
}

func TestShortTermLog(t *testing.T) {
	m := defaultModel(t)
	card := reviewCard(10, 5)
	card.ScheduledDays = 99

	log := NewShortTerm(m, card, addDays(t0, 7)).ReviewLog(Good)
	assert.Equal(t, Review, log.State)
	assert.Equal(t, int64(7), log.ElapsedDays)
	assert.Equal(t, int64(5), log.ScheduledDays, "read from the card's due date")
}

func TestShortTermIgnoresElapsedDays(t *testing.T) {
	m := mustModel(t, Config{EnableFuzz: true, Seed: 11})
	for _, elapsed := range []int64{3, 10, 40} {
		c := NewShortTerm(m, reviewCard(10, 5), addDays(t0, elapsed)).NextCard(Good)
		want := int64(m.NextInterval(c.Stability, 0))
		assert.Equal(t, want, c.IntervalDays(), "elapsed=%d", elapsed)
	}
}

func TestShortTermTransitions(t *testing.T) {
	m := defaultModel(t)
	tests := []struct {
		card  Card
		r     Rating
		state State
	}{
		{NewCard(1), Again, Learning},
		{NewCard(1), Easy, Review},
		{learningCard(Learning, 3, 5), Hard, Learning},
		{learningCard(Learning, 3, 5), Good, Review},
		{learningCard(Relearning, 3, 5), Again, Relearning},
		{reviewCard(10, 5), Again, Relearning},
		{reviewCard(10, 5), Hard, Review},
	}
	for _, tt := range tests {
		now := t0.Add(time.Hour)
		c := NewShortTerm(m, tt.card, now).NextCard(tt.r)
		assert.Equal(t, tt.state, c.State, "%s %s", tt.card.State, tt.r)
		assert.Equal(t, now, c.LastReview)
		assert.Equal(t, tt.card.Reps+1, c.Reps)
		assert.Equal(t, tt.r, c.Rating)
	}
}

func TestShortTermLapses(t *testing.T) {
	m := defaultModel(t)
	c := NewShortTerm(m, reviewCard(10, 5), addDays(t0, 10)).NextCard(Again)
	assert.Equal(t, 1, c.Lapses)
	assert.Equal(t, addDays(t0, 10).Add(relearningDelay), c.Due)
}
