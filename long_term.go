package fsrs

import "time"

// LongTerm schedules without learning steps: every rating lands the card in
// Review after at least one day. The first query computes the outcomes of
// all four ratings in one pass, because their intervals are ordered against
// each other, and later queries are served from that cache.
//
// A LongTerm is not safe for concurrent use.
type LongTerm struct {
	ctx      reviewContext
	outcomes [len(Ratings)]Outcome
	filled   bool
}

// NewLongTerm prepares the review of card at now. Ratings passed to its
// methods must be valid; an invalid Rating panics with ErrInvalidRating.
func NewLongTerm(m MemoryModel, card Card, now time.Time) *LongTerm {
	return &LongTerm{ctx: newReviewContext(m, card, now)}
}

// Review returns the outcome of rating r for this review event.
func (l *LongTerm) Review(r Rating) Outcome {
	r.mustBeValid()
	if !l.filled {
		l.outcomes = l.computeOutcomes()
		l.filled = true
	}
	return l.outcomes[r.index()]
}

// Schedule is Review; it lets LongTerm stand in for the other strategies.
func (l *LongTerm) Schedule(r Rating) Outcome {
	return l.Review(r)
}

// NextCard returns the card after it has been reviewed with rating r.
func (l *LongTerm) NextCard(r Rating) Card {
	return l.Review(r).Card
}

// Preview returns the outcomes of all four ratings.
func (l *LongTerm) Preview() Preview {
	p := make(Preview, len(Ratings))
	for _, r := range Ratings {
		p[r] = l.Review(r)
	}
	return p
}

// computeOutcomes builds all four outcomes: per-rating memory state, raw
// intervals, one shared ordering pass, then the logs.
func (l *LongTerm) computeOutcomes() [len(Ratings)]Outcome {
	ctx := &l.ctx
	m := ctx.model
	last := ctx.last
	isNew := last.State == New

	cards := newBranches(ctx.current)
	elapsed := ctx.current.ElapsedDays
	if isNew {
		elapsed = 0
		cards.update(func(r Rating, c *Card) {
			c.Difficulty = m.InitDifficulty(r)
			c.Stability = m.InitStability(r)
		})
	} else {
		retrievability := ctx.retrievability()
		cards.update(func(r Rating, c *Card) {
			c.Difficulty = m.NextDifficulty(last.Difficulty, r)
			if r == Again {
				c.Stability = m.NextForgetStability(last.Difficulty, last.Stability, retrievability)
				c.Lapses++
				return
			}
			c.Stability = m.NextRecallStability(last.Difficulty, last.Stability, retrievability, r)
		})
	}

	var raw [len(Ratings)]float64
	for i := range cards {
		raw[i] = m.NextInterval(cards[i].Stability, elapsed)
	}
	days := orderAllIntervals(raw)

	var out [len(Ratings)]Outcome
	for i, r := range Ratings {
		c := ctx.inDays(cards[i], days[i], Review)
		c.Rating = r

		log := ctx.reviewLog(r)
		if isNew {
			log.ElapsedDays = 0
			log.ScheduledDays = 0
		}
		out[i] = Outcome{Card: c, Log: log}
	}
	return out
}
