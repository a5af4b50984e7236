package fsrs

import (
	"math"
	"time"
)

const (
	// decay is the exponent of the power forgetting curve.
	decay = -0.5
	// factor makes R(S, S) equal 0.9: 0.9^(1/decay) - 1 = 19/81.
	factor = 19.0 / 81.0
)

// MemoryModel is the set of memory formulas the scheduling strategies
// consume. Implementations must be pure: the same inputs always produce the
// same outputs, and calls may happen concurrently.
type MemoryModel interface {
	InitDifficulty(r Rating) float64
	InitStability(r Rating) float64
	NextDifficulty(d float64, r Rating) float64
	ShortTermStability(s float64, r Rating) float64
	NextStability(d, s, retrievability float64, r Rating) float64
	NextForgetStability(d, s, retrievability float64) float64
	NextRecallStability(d, s, retrievability float64, r Rating) float64
	Retrievability(card Card, now time.Time) float64
	NextInterval(stability float64, elapsedDays int64) float64
}

var _ MemoryModel = (*Model)(nil)

// Model implements MemoryModel with the FSRS-4.5 formulas.
// It is immutable once built; use NewModel to construct one.
type Model struct {
	w                Weights
	requestRetention float64
	maximumInterval  int
	enableFuzz       bool
	seed             int64
}

// Weights returns the model's weight vector.
func (m *Model) Weights() Weights { return m.w }

// ForgettingCurve computes R(t, S) = (1 + FACTOR * t / S) ^ DECAY.
func (m *Model) ForgettingCurve(elapsedDays, stability float64) float64 {
	return math.Pow(1+factor*elapsedDays/stability, decay)
}

// Retrievability returns the probability of recalling card at now.
// New cards have no memory yet and report 0.
func (m *Model) Retrievability(card Card, now time.Time) float64 {
	if card.State == New {
		return 0
	}
	return m.ForgettingCurve(float64(card.elapsedDaysAt(now)), card.Stability)
}

// InitStability returns S₀(G) = max(w[G-1], 0.1).
func (m *Model) InitStability(r Rating) float64 {
	return math.Max(m.w[r-1], 0.1)
}

// InitDifficulty returns D₀(G) = w[4] - e^(w[5] * (G - 1)) + 1, clamped to [1, 10].
func (m *Model) InitDifficulty(r Rating) float64 {
	return clampD(m.w[4] - math.Exp(m.w[5]*float64(r-1)) + 1)
}

// NextDifficulty computes the difficulty after a review.
// D' = D - w[6] * (G - 3)
// D'' = w[7] * D₀(Easy) + (1 - w[7]) * D'  (mean reversion)
func (m *Model) NextDifficulty(d float64, r Rating) float64 {
	next := d - m.w[6]*(float64(r)-3)
	return clampD(m.meanReversion(m.InitDifficulty(Easy), next))
}

func (m *Model) meanReversion(init, current float64) float64 {
	return m.w[7]*init + (1-m.w[7])*current
}

// ShortTermStability computes the stability after a same-step review.
// S' = S * e^(w[17] * (G - 3 + w[18]))
func (m *Model) ShortTermStability(s float64, r Rating) float64 {
	return s * math.Exp(m.w[17]*(float64(r)-3+m.w[18]))
}

// NextStability dispatches to NextForgetStability or NextRecallStability.
func (m *Model) NextStability(d, s, retrievability float64, r Rating) float64 {
	if r == Again {
		return m.NextForgetStability(d, s, retrievability)
	}
	return m.NextRecallStability(d, s, retrievability, r)
}

// NextRecallStability computes stability after a successful recall (Hard/Good/Easy).
// S'_r = S * (1 + e^w[8] * (11-D) * S^(-w[9]) * (e^((1-R)*w[10]) - 1) * modifier)
func (m *Model) NextRecallStability(d, s, retrievability float64, r Rating) float64 {
	modifier := 1.0
	switch r {
	case Hard:
		modifier = m.w[15]
	case Easy:
		modifier = m.w[16]
	}
	return s * (1 + math.Exp(m.w[8])*
		(11-d)*
		math.Pow(s, -m.w[9])*
		math.Expm1((1-retrievability)*m.w[10])*
		modifier)
}

// NextForgetStability computes stability after a lapse (Again).
// S'_f = w[11] * D^(-w[12]) * ((S+1)^w[13] - 1) * e^((1-R)*w[14])
func (m *Model) NextForgetStability(d, s, retrievability float64) float64 {
	return m.w[11] *
		math.Pow(d, -m.w[12]) *
		(math.Pow(s+1, m.w[13]) - 1) *
		math.Exp((1-retrievability)*m.w[14])
}

// NextInterval returns the interval in days that brings recall probability
// down to the requested retention:
// I = round(S / FACTOR * (retention^(1/DECAY) - 1)), clamped to
// [1, maximumInterval], then fuzzed when fuzzing is enabled.
func (m *Model) NextInterval(stability float64, elapsedDays int64) float64 {
	ivl := math.Round(stability / factor * (math.Pow(m.requestRetention, 1/decay) - 1))
	ivl = math.Min(math.Max(ivl, 1), float64(m.maximumInterval))
	if !m.enableFuzz {
		return ivl
	}
	return applyFuzz(ivl, elapsedDays, m.maximumInterval, fuzzFactor(m.seed, stability, elapsedDays))
}

// clampD clamps difficulty to [1, 10].
func clampD(d float64) float64 {
	return math.Min(math.Max(d, 1), 10)
}
