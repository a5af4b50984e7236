// Package fsrs schedules flashcard reviews with the FSRS-4.5 memory model.
//
// A Model holds the memory formulas (stability, difficulty, retrievability)
// and turns stability into an interval in days. Three strategies apply one
// review event to a Card on top of a Model:
//
//   - Basic uses short learning steps for new and lapsed cards.
//   - ShortTerm is Basic without elapsed-day correction, for cards reviewed
//     many times a day.
//   - LongTerm has no learning steps. It computes the outcomes of all four
//     ratings together so their intervals stay strictly ordered.
//
// Most callers use a Scheduler, which picks the strategy from its Config:
//
//	s, err := fsrs.NewScheduler(fsrs.Config{Mode: fsrs.ModeLongTerm}, slog.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	card := fsrs.NewCard(1)
//	card, entry, err := s.ReviewCard(card, fsrs.Good, time.Now())
//
// Cards are values: every operation returns a new Card and never changes the
// one passed in. A Scheduler and a Model may be shared between goroutines.
package fsrs
