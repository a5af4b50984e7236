package fsrs

import "time"

// ReviewLog records a single committed review of a card.
//
// State, ElapsedDays and ScheduledDays describe the card as it was when the
// review happened, so a log pairs what was planned with what was observed.
type ReviewLog struct {
	CardID        int64     `json:"card_id"`
	Rating        Rating    `json:"rating"`
	State         State     `json:"state"`
	ElapsedDays   int64     `json:"elapsed_days"`
	ScheduledDays int64     `json:"scheduled_days"`
	Review        time.Time `json:"review"`
}
