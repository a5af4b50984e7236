package fsrs

import (
	"fmt"
	"math"
)

// NumWeights is the number of FSRS weights the model consumes.
const NumWeights = 19

// legacyNumWeights is the weight count of models trained without the
// short-term stability terms w[17] and w[18].
const legacyNumWeights = 17

// Weights is a full FSRS weight vector.
type Weights [NumWeights]float64

// DefaultWeights are the FSRS-4.5 default weights.
var DefaultWeights = Weights{
	0.4072, 1.1829, 3.1262, 15.4722, // w[0..3]  initial stability S₀(G)
	7.2102, 0.5316, 1.0651, 0.0234, // w[4..7]  difficulty params
	1.616, 0.1544, 1.0824, 1.9813, // w[8..11] recall stability params
	0.0953, 0.2975, 2.2042, 0.2407, // w[12..15] forget stability, hard penalty
	2.9466, 0.5034, 0.6567, // w[16..18] easy bonus, short-term params
}

// LowerBounds defines the minimum allowed value for each weight.
var LowerBounds = Weights{
	0.01, 0.01, 0.01, 0.01,
	1.0, 0.001, 0.001, 0.001,
	0.0, 0.0, 0.001, 0.001,
	0.001, 0.001, 0.0, 0.0,
	1.0, 0.0, 0.0,
}

// UpperBounds defines the maximum allowed value for each weight.
var UpperBounds = Weights{
	100.0, 100.0, 100.0, 100.0,
	10.0, 4.0, 4.0, 0.75,
	4.5, 0.8, 3.5, 5.0,
	0.25, 0.9, 4.0, 1.0,
	6.0, 2.0, 2.0,
}

// ValidateWeights checks that every weight is finite and within
// [LowerBounds, UpperBounds].
func ValidateWeights(w Weights) error {
	for i := range NumWeights {
		if math.IsNaN(w[i]) || math.IsInf(w[i], 0) {
			return fmt.Errorf("%w: w[%d] = %f is not finite", ErrInvalidParameters, i, w[i])
		}
		if w[i] < LowerBounds[i] || w[i] > UpperBounds[i] {
			return fmt.Errorf("%w: w[%d] = %f, bounds [%f, %f]",
				ErrInvalidParameters, i, w[i], LowerBounds[i], UpperBounds[i])
		}
	}
	return nil
}

// weightsFrom expands a configured weight slice into a full vector.
// nil selects DefaultWeights; 17 weights borrow w[17] and w[18] from the
// defaults.
func weightsFrom(ws []float64) (Weights, error) {
	switch len(ws) {
	case 0:
		if ws == nil {
			return DefaultWeights, nil
		}
	case legacyNumWeights:
		w := DefaultWeights
		copy(w[:], ws)
		return w, nil
	case NumWeights:
		var w Weights
		copy(w[:], ws)
		return w, nil
	}
	return Weights{}, fmt.Errorf("%w: got %d weights, want %d or %d",
		ErrInvalidParameters, len(ws), legacyNumWeights, NumWeights)
}
