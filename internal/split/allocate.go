package split

import "math"

// minFillSize is the smallest bucket for which every subset is topped up
// to at least one record.
const minFillSize = 3

// Allocation is the number of records a bucket contributes to each subset.
type Allocation struct {
	Train int `json:"train"`
	Dev   int `json:"dev"`
	Test  int `json:"test"`
}

// Total returns Train+Dev+Test.
func (a Allocation) Total() int { return a.Train + a.Dev + a.Test }

// Allocate computes per-subset counts for a bucket of n records under
// normalized ratios r. Train and dev are floored and test takes the
// remainder. For n >= 3 each subset with a positive ratio is topped up to
// one record where possible, borrowing from the larger of train/dev (train
// on ties) when test would be empty. Counts that go negative or lose the
// total fall back to round-half-even proportions.
func Allocate(n int, r Ratios) Allocation {
	a := Allocation{
		Train: int(math.Floor(float64(n) * r.Train)),
		Dev:   int(math.Floor(float64(n) * r.Dev)),
	}
	a.Test = n - a.Train - a.Dev

	if n >= minFillSize {
		if a.Train == 0 && r.Train > 0 {
			a.Train = 1
		}
		if a.Dev == 0 && r.Dev > 0 && n-a.Train >= 2 {
			a.Dev = 1
		}
		a.Test = n - a.Train - a.Dev
		if a.Test == 0 && r.Test > 0 {
			switch {
			case a.Train >= a.Dev && a.Train > 1:
				a.Train--
				a.Test++
			case a.Dev > 1:
				a.Dev--
				a.Test++
			}
		}
	}

	if a.Train < 0 || a.Dev < 0 || a.Test < 0 || a.Total() != n {
		a = fallback(n, r)
	}
	return a
}

func fallback(n int, r Ratios) Allocation {
	a := Allocation{
		Train: int(math.RoundToEven(float64(n) * r.Train)),
		Dev:   int(math.RoundToEven(float64(n) * r.Dev)),
	}
	a.Test = n - a.Train - a.Dev
	if a.Test < 0 {
		a.Test = 0
		a.Dev = n - a.Train
	}
	return a
}
