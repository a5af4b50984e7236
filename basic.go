package fsrs

import (
	"math"
	"time"
)

// Same-day delays for cards that are not yet in Review.
var (
	newCardSteps  = [...]time.Duration{Again: time.Minute, Hard: 5 * time.Minute, Good: 10 * time.Minute}
	learningSteps = [...]time.Duration{Again: 5 * time.Minute, Hard: 10 * time.Minute}
)

// relearningDelay is the step a lapsed card waits before it is shown again.
const relearningDelay = 5 * time.Minute

// Basic schedules one review event with short learning steps. It computes
// only the outcome of the rating asked for.
type Basic struct {
	ctx reviewContext
}

// NewBasic prepares the review of card at now. Ratings passed to its methods
// must be valid; an invalid Rating panics with ErrInvalidRating.
func NewBasic(m MemoryModel, card Card, now time.Time) *Basic {
	return &Basic{ctx: newReviewContext(m, card, now)}
}

// Schedule returns the next card together with its review log.
func (b *Basic) Schedule(r Rating) Outcome {
	return Outcome{
		Card: b.NextCard(r),
		Log:  b.ReviewLog(r),
	}
}

// ReviewLog returns the log entry for reviewing the card with rating r.
func (b *Basic) ReviewLog(r Rating) ReviewLog {
	r.mustBeValid()
	return b.ctx.reviewLog(r)
}

// NextCard returns the card after it has been reviewed with rating r.
func (b *Basic) NextCard(r Rating) Card {
	r.mustBeValid()
	var c Card
	switch b.ctx.last.State {
	case New:
		c = b.reviewNew(r)
	case Learning, Relearning:
		c = b.reviewLearning(r)
	default:
		c = b.reviewReview(r)
	}
	c.Rating = r
	return c
}

func (b *Basic) reviewNew(r Rating) Card {
	m := b.ctx.model

	c := b.ctx.current
	c.Difficulty = m.InitDifficulty(r)
	c.Stability = m.InitStability(r)

	if r == Easy {
		days := m.NextInterval(c.Stability, c.ElapsedDays)
		return b.ctx.inDays(c, int64(days), Review)
	}
	return b.ctx.after(c, newCardSteps[r], Learning)
}

func (b *Basic) reviewLearning(r Rating) Card {
	m := b.ctx.model
	last := b.ctx.last

	c := b.ctx.current
	c.Difficulty = m.NextDifficulty(last.Difficulty, r)
	c.Stability = m.ShortTermStability(last.Stability, r)

	switch r {
	case Again, Hard:
		return b.ctx.after(c, learningSteps[r], last.State)
	case Good:
		days := m.NextInterval(c.Stability, c.ElapsedDays)
		return b.ctx.inDays(c, int64(days), Review)
	default:
		goodStability := m.ShortTermStability(last.Stability, Good)
		good := m.NextInterval(goodStability, c.ElapsedDays)
		easy := math.Max(m.NextInterval(c.Stability, c.ElapsedDays), good+1)
		return b.ctx.inDays(c, int64(easy), Review)
	}
}

func (b *Basic) reviewReview(r Rating) Card {
	m := b.ctx.model
	last := b.ctx.last
	elapsed := b.ctx.current.ElapsedDays
	retrievability := b.ctx.retrievability()

	cards := newBranches(b.ctx.current)
	cards.update(func(rating Rating, c *Card) {
		c.Difficulty = m.NextDifficulty(last.Difficulty, rating)
		c.Stability = m.NextStability(last.Difficulty, last.Stability, retrievability, rating)
	})

	hard, good, easy := orderRecallIntervals(
		m.NextInterval(cards.get(Hard).Stability, elapsed),
		m.NextInterval(cards.get(Good).Stability, elapsed),
		m.NextInterval(cards.get(Easy).Stability, elapsed),
	)

	c := cards.get(r)
	switch r {
	case Again:
		c.Lapses++
		return b.ctx.after(c, relearningDelay, Relearning)
	case Hard:
		return b.ctx.inDays(c, hard, Review)
	case Good:
		return b.ctx.inDays(c, good, Review)
	default:
		return b.ctx.inDays(c, easy, Review)
	}
}
