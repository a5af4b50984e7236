package fsrs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// strategy is one review event under a scheduling mode.
type strategy interface {
	Schedule(r Rating) Outcome
}

var (
	_ strategy = (*Basic)(nil)
	_ strategy = (*ShortTerm)(nil)
	_ strategy = (*LongTerm)(nil)
)

// Scheduler reviews cards with a fixed model and mode. It holds no
// per-card state and is safe for concurrent use.
type Scheduler struct {
	model  *Model
	mode   Mode
	logger *slog.Logger
}

// NewScheduler creates a Scheduler from cfg. A nil logger discards output.
func NewScheduler(cfg Config, logger *slog.Logger) (*Scheduler, error) {
	if !cfg.Mode.isValid() {
		return nil, fmt.Errorf("%w: mode %d", ErrInvalidConfig, int(cfg.Mode))
	}
	model, err := NewModel(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		model:  model,
		mode:   cfg.Mode,
		logger: logger,
	}, nil
}

// Model returns the memory model the scheduler applies.
func (s *Scheduler) Model() *Model { return s.model }

// Mode returns the scheduling mode.
func (s *Scheduler) Mode() Mode { return s.mode }

func (s *Scheduler) newStrategy(card Card, now time.Time) strategy {
	switch s.mode {
	case ModeShortTerm:
		return NewShortTerm(s.model, card, now)
	case ModeLongTerm:
		return NewLongTerm(s.model, card, now)
	default:
		return NewBasic(s.model, card, now)
	}
}

// ReviewCard applies rating to card at now. It returns the updated card and
// a review log; the input card is not mutated.
func (s *Scheduler) ReviewCard(card Card, rating Rating, now time.Time) (Card, ReviewLog, error) {
	if !rating.IsValid() {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}
	if !card.State.IsValid() {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: card %d has state %d", ErrInvalidState, card.CardID, int(card.State))
	}

	out := s.newStrategy(card, now).Schedule(rating)
	s.logger.Debug("card reviewed",
		"card_id", card.CardID,
		"rating", rating,
		"from", card.State,
		"to", out.Card.State,
		"scheduled_days", out.Card.IntervalDays(),
		"due", out.Card.Due,
	)
	return out.Card, out.Log, nil
}

// PreviewCard returns the outcome of every rating for a review of card at now.
func (s *Scheduler) PreviewCard(card Card, now time.Time) (Preview, error) {
	if !card.State.IsValid() {
		return nil, fmt.Errorf("%w: card %d has state %d", ErrInvalidState, card.CardID, int(card.State))
	}
	if s.mode == ModeLongTerm {
		return NewLongTerm(s.model, card, now).Preview(), nil
	}
	p := make(Preview, len(Ratings))
	for _, r := range Ratings {
		p[r] = s.newStrategy(card, now).Schedule(r)
	}
	return p, nil
}

// RescheduleCard replays the given review logs, in order, to rebuild the
// card's scheduling state. Returns ErrCardIDMismatch if any log's CardID
// does not match the card's CardID.
func (s *Scheduler) RescheduleCard(card Card, logs []ReviewLog) (Card, error) {
	c := card
	for _, log := range logs {
		if log.CardID != c.CardID {
			return Card{}, fmt.Errorf("%w: card %d, log %d", ErrCardIDMismatch, c.CardID, log.CardID)
		}
		next, _, err := s.ReviewCard(c, log.Rating, log.Review)
		if err != nil {
			return Card{}, fmt.Errorf("replaying card %d at %s: %w", c.CardID, log.Review.Format(time.RFC3339), err)
		}
		c = next
	}
	s.logger.Debug("card rescheduled", "card_id", c.CardID, "reviews", len(logs), "state", c.State)
	return c, nil
}

// RescheduleAll groups logs by card, orders each group by review time, and
// replays it from a New card. It returns the rebuilt cards keyed by ID.
func (s *Scheduler) RescheduleAll(logs []ReviewLog) (map[int64]Card, error) {
	if len(logs) == 0 {
		return nil, ErrNoReviewLogs
	}

	groups := groupLogs(logs)
	cards := make(map[int64]Card, len(groups))
	for id, group := range groups {
		c, err := s.RescheduleCard(NewCard(id), group)
		if err != nil {
			return nil, err
		}
		cards[id] = c
	}
	return cards, nil
}

// groupLogs groups logs by card ID; each group is sorted by review time,
// keeping the input order of equal timestamps.
func groupLogs(logs []ReviewLog) map[int64][]ReviewLog {
	groups := make(map[int64][]ReviewLog)
	for _, log := range logs {
		groups[log.CardID] = append(groups[log.CardID], log)
	}
	for _, group := range groups {
		slices.SortStableFunc(group, func(a, b ReviewLog) int {
			return a.Review.Compare(b.Review)
		})
	}
	return groups
}

// Retrievability returns the probability of recall for the card at the given time.
// Returns 0 if the card has never been reviewed.
func (s *Scheduler) Retrievability(card Card, now time.Time) float64 {
	return s.model.Retrievability(card, now)
}

// MarshalJSON implements json.Marshaler. The scheduler serializes as its Config.
func (s *Scheduler) MarshalJSON() ([]byte, error) {
	cfg := s.model.config()
	cfg.Mode = s.mode
	return json.Marshal(cfg)
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the model from the serialized config and keeps any logger
// already set on s.
func (s *Scheduler) UnmarshalJSON(data []byte) error {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	rebuilt, err := NewScheduler(cfg, s.logger)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}
