package fsrs

import "time"

const day = 24 * time.Hour

// Card is a flashcard together with its memory state and schedule.
//
// Card is a plain value: strategies copy it and return a new Card, so the
// caller's copy is never changed.
type Card struct {
	CardID        int64     `json:"card_id"`
	State         State     `json:"state"`
	Stability     float64   `json:"stability"`  // 0 while New.
	Difficulty    float64   `json:"difficulty"` // 0 while New, else [1, 10].
	Due           time.Time `json:"due"`
	LastReview    time.Time `json:"last_review"`    // zero while New.
	ElapsedDays   int64     `json:"elapsed_days"`   // whole days since the previous review.
	ScheduledDays int64     `json:"scheduled_days"` // whole days until Due.
	Reps          int       `json:"reps"`
	Lapses        int       `json:"lapses"`
	Rating        Rating    `json:"rating,omitempty"` // last applied rating, 0 while New.
}

// NewCard creates a New card with the given ID, due immediately.
func NewCard(id int64) Card {
	return Card{
		CardID: id,
		State:  New,
		Due:    time.Now(),
	}
}

// IntervalDays returns the whole number of days between the last review and
// the due date. It is 0 for New cards and for same-day steps.
func (c Card) IntervalDays() int64 {
	if c.State == New {
		return 0
	}
	return daysBetween(c.LastReview, c.Due)
}

// elapsedDaysAt returns the whole days between the last review and now.
func (c Card) elapsedDaysAt(now time.Time) int64 {
	if c.State == New {
		return 0
	}
	return daysBetween(c.LastReview, now)
}

// daysBetween truncates to whole days and never goes negative.
func daysBetween(from, to time.Time) int64 {
	d := int64(to.Sub(from) / day)
	return max(d, 0)
}

// addDays returns t shifted by a whole number of days.
func addDays(t time.Time, days int64) time.Time {
	return t.Add(time.Duration(days) * day)
}
