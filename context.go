package fsrs

import "time"

// reviewContext is the working state of a single review event.
// last is the card as the caller passed it and is never written; current is
// last advanced to the review time and is the template every outcome copies.
type reviewContext struct {
	model   MemoryModel
	now     time.Time
	last    Card
	current Card
}

func newReviewContext(m MemoryModel, card Card, now time.Time) reviewContext {
	current := card
	current.ElapsedDays = card.elapsedDaysAt(now)
	current.LastReview = now
	current.Reps++
	return reviewContext{
		model:   m,
		now:     now,
		last:    card,
		current: current,
	}
}

// retrievability is the recall probability of the reviewed card at the
// moment of review.
func (ctx *reviewContext) retrievability() float64 {
	return ctx.model.Retrievability(ctx.last, ctx.now)
}

// reviewLog records the review of the card with rating r.
func (ctx *reviewContext) reviewLog(r Rating) ReviewLog {
	return ReviewLog{
		CardID:        ctx.current.CardID,
		Rating:        r,
		State:         ctx.current.State,
		ElapsedDays:   ctx.current.ElapsedDays,
		ScheduledDays: ctx.current.ScheduledDays,
		Review:        ctx.now,
	}
}

// inDays schedules c a whole number of days after the review.
func (ctx *reviewContext) inDays(c Card, days int64, s State) Card {
	c.ScheduledDays = days
	c.Due = addDays(ctx.now, days)
	c.State = s
	return c
}

// after schedules c for a same-day step.
func (ctx *reviewContext) after(c Card, d time.Duration, s State) Card {
	c.ScheduledDays = 0
	c.Due = ctx.now.Add(d)
	c.State = s
	return c
}
