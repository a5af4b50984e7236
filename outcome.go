package fsrs

// Outcome is the result of applying one rating to one review event.
type Outcome struct {
	Card Card      `json:"card"`
	Log  ReviewLog `json:"log"`
}

// Preview holds the outcome of every rating for the same review event.
type Preview map[Rating]Outcome
