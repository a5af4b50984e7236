package fsrs

import (
	"math"
	"time"
)

// ShortTerm follows the same state machine as Basic but never corrects
// intervals for elapsed days, which suits reviews that recur many times a
// day. ElapsedDays is left as the caller passed it; ScheduledDays always
// matches the new due date, so it equals Card.IntervalDays.
//
// In Review it updates only the stability of the rating given, so there is
// no cross-rating interval clamp there.
type ShortTerm struct {
	ctx reviewContext
}

// NewShortTerm prepares the review of card at now. Ratings passed to its
// methods must be valid; an invalid Rating panics with ErrInvalidRating.
func NewShortTerm(m MemoryModel, card Card, now time.Time) *ShortTerm {
	return &ShortTerm{ctx: newReviewContext(m, card, now)}
}

// Schedule returns the next card together with its review log.
func (s *ShortTerm) Schedule(r Rating) Outcome {
	return Outcome{
		Card: s.NextCard(r),
		Log:  s.ReviewLog(r),
	}
}

// ReviewLog returns the log entry for reviewing the card with rating r.
func (s *ShortTerm) ReviewLog(r Rating) ReviewLog {
	r.mustBeValid()
	log := s.ctx.reviewLog(r)
	log.ScheduledDays = s.ctx.last.IntervalDays()
	return log
}

// NextCard returns the card after it has been reviewed with rating r.
func (s *ShortTerm) NextCard(r Rating) Card {
	r.mustBeValid()
	c := s.ctx.last
	c.LastReview = s.ctx.now
	c.Reps++
	c.Rating = r

	switch s.ctx.last.State {
	case New:
		return s.reviewNew(c, r)
	case Learning, Relearning:
		return s.reviewLearning(c, r)
	default:
		return s.reviewReview(c, r)
	}
}

func (s *ShortTerm) reviewNew(c Card, r Rating) Card {
	m := s.ctx.model
	c.Difficulty = m.InitDifficulty(r)
	c.Stability = m.InitStability(r)

	if r == Easy {
		return s.inDays(c, m.NextInterval(c.Stability, 0), Review)
	}
	return s.after(c, newCardSteps[r], Learning)
}

func (s *ShortTerm) reviewLearning(c Card, r Rating) Card {
	m := s.ctx.model
	last := s.ctx.last
	c.Difficulty = m.NextDifficulty(last.Difficulty, r)
	c.Stability = m.ShortTermStability(last.Stability, r)

	switch r {
	case Again, Hard:
		return s.after(c, learningSteps[r], last.State)
	case Good:
		return s.inDays(c, m.NextInterval(c.Stability, 0), Review)
	default:
		good := m.NextInterval(m.ShortTermStability(last.Stability, Good), 0)
		easy := math.Max(m.NextInterval(c.Stability, 0), good+1)
		return s.inDays(c, easy, Review)
	}
}

func (s *ShortTerm) reviewReview(c Card, r Rating) Card {
	m := s.ctx.model
	last := s.ctx.last
	retrievability := s.ctx.retrievability()
	c.Difficulty = m.NextDifficulty(last.Difficulty, r)
	c.Stability = m.NextStability(last.Difficulty, last.Stability, retrievability, r)

	if r == Again {
		c.Lapses++
		return s.after(c, relearningDelay, Relearning)
	}
	return s.inDays(c, m.NextInterval(c.Stability, 0), Review)
}

func (s *ShortTerm) inDays(c Card, days float64, state State) Card {
	c.ScheduledDays = int64(days)
	c.Due = addDays(s.ctx.now, int64(days))
	c.State = state
	return c
}

func (s *ShortTerm) after(c Card, d time.Duration, state State) Card {
	c.ScheduledDays = 0
	c.Due = s.ctx.now.Add(d)
	c.State = state
	return c
}
