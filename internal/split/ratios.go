package split

import (
	"fmt"
	"math"
)

// Ratios are relative target proportions for the three subsets.
type Ratios struct {
	Train float64 `json:"train" yaml:"train"`
	Dev   float64 `json:"dev" yaml:"dev"`
	Test  float64 `json:"test" yaml:"test"`
}

// DefaultRatios is the 80/10/10 split.
var DefaultRatios = Ratios{Train: 0.8, Dev: 0.1, Test: 0.1}

// NormalizeRatios divides each ratio by their sum so the result sums to 1.
func NormalizeRatios(r Ratios) (Ratios, error) {
	for _, v := range []float64{r.Train, r.Dev, r.Test} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Ratios{}, fmt.Errorf("%w: got train=%g dev=%g test=%g", ErrInvalidRatios, r.Train, r.Dev, r.Test)
		}
	}
	s := r.Train + r.Dev + r.Test
	if s <= 0 {
		return Ratios{}, fmt.Errorf("%w: got train=%g dev=%g test=%g", ErrInvalidRatios, r.Train, r.Dev, r.Test)
	}
	return Ratios{Train: r.Train / s, Dev: r.Dev / s, Test: r.Test / s}, nil
}

func (r Ratios) String() string {
	return fmt.Sprintf("train=%.3f, dev=%.3f, test=%.3f", r.Train, r.Dev, r.Test)
}
