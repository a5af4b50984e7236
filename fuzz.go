package fsrs

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
)

type fuzzEntry struct {
	start, end float64
	factor     float64
}

var fuzzRanges = []fuzzEntry{
	{2.5, 7.0, 0.15},
	{7.0, 20.0, 0.10},
	{20.0, math.Inf(1), 0.05},
}

// fuzzDelta computes the fuzz range delta for a given interval.
// delta = 1.0 + Σ(factor * max(min(interval, end) - start, 0))
func fuzzDelta(interval float64) float64 {
	delta := 1.0
	for _, r := range fuzzRanges {
		delta += r.factor * math.Max(math.Min(interval, r.end)-r.start, 0)
	}
	return delta
}

// fuzzRange returns the inclusive bounds an interval may be fuzzed into.
// A card reviewed late is never scheduled sooner than one day after the
// time that already elapsed.
func fuzzRange(interval float64, elapsedDays int64, maxIvl int) (lo, hi int) {
	delta := fuzzDelta(interval)
	ivl := math.Min(interval, float64(maxIvl))

	minIvl := math.Max(2, math.Round(ivl-delta))
	maxFuzzIvl := math.Min(math.Round(ivl+delta), float64(maxIvl))
	if ivl > float64(elapsedDays) {
		minIvl = math.Max(minIvl, float64(elapsedDays)+1)
	}
	minIvl = math.Min(minIvl, maxFuzzIvl)
	return int(minIvl), int(maxFuzzIvl)
}

// applyFuzz spreads an interval over its fuzz range to prevent review
// clustering. u must be in [0, 1). Intervals under 2.5 days are unchanged.
func applyFuzz(interval float64, elapsedDays int64, maxIvl int, u float64) float64 {
	if interval < 2.5 {
		return interval
	}
	lo, hi := fuzzRange(interval, elapsedDays, maxIvl)
	return math.Floor(u*float64(hi-lo+1) + float64(lo))
}

// fuzzFactor derives a uniform value in [0, 1) from the inputs of a single
// interval computation, so fuzzing stays a pure function of its inputs.
func fuzzFactor(seed int64, stability float64, elapsedDays int64) float64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(stability))
	binary.LittleEndian.PutUint64(buf[16:], uint64(elapsedDays))

	h := fnv.New64a()
	h.Write(buf[:])
	sum := h.Sum64()
	return rand.New(rand.NewPCG(sum, uint64(seed))).Float64()
}
