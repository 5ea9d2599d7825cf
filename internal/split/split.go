// Package split partitions labeled records into train/dev/test subsets
// while preserving per-label proportions.
//
// Count arithmetic (Allocate) is pure and separate from the randomness
// (Stratify), which consumes an explicitly passed generator so that a
// seed fully determines the output.
package split

import (
	"math/rand/v2"

	"dsprep/internal/curate"
	"dsprep/internal/logging"
)

// Subset names, also used as output file stems.
const (
	Train = "train"
	Dev   = "dev"
	Test  = "test"
)

// Subsets lists the subset names in output order.
var Subsets = []string{Train, Dev, Test}

// Result holds the three disjoint subsets.
type Result struct {
	Train []curate.Record
	Dev   []curate.Record
	Test  []curate.Record
}

// Datasets returns the subsets as named datasets in train, dev, test order.
func (r *Result) Datasets() []*curate.Dataset {
	return []*curate.Dataset{
		{Name: Train, Records: r.Train},
		{Name: Dev, Records: r.Dev},
		{Name: Test, Records: r.Test},
	}
}

// Bucket is the set of records sharing one label value.
type Bucket struct {
	Label   string
	Records []curate.Record
}

// NewRand returns the generator a split run owns. The same seed always
// yields the same sequence.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// GroupByLabel buckets records by the string form of labelField, in
// first-seen label order. A record without the field fails the whole
// grouping.
func GroupByLabel(records []curate.Record, labelField string) ([]Bucket, error) {
	index := make(map[string]int)
	var buckets []Bucket
	for _, rec := range records {
		label, ok := rec.Label(labelField)
		if !ok {
			return nil, &MissingFieldError{Field: labelField, RecordID: rec.ID, Raw: string(rec.Raw())}
		}
		i, seen := index[label]
		if !seen {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, Bucket{Label: label})
		}
		buckets[i].Records = append(buckets[i].Records, rec)
	}
	return buckets, nil
}

// Stratify splits records per label according to normalized ratios r.
// Each bucket is shuffled, sliced by Allocate, and appended to the
// subsets; the subsets are then shuffled to interleave labels. The input
// slice is not reordered.
func Stratify(records []curate.Record, labelField string, r Ratios, rng *rand.Rand) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	buckets, err := GroupByLabel(records, labelField)
	if err != nil {
		return nil, err
	}

	log := logging.New("split")
	res := &Result{}
	for _, b := range buckets {
		items := shuffled(b.Records, rng)
		a := Allocate(len(items), r)
		log.Debug("bucket allocated",
			"label", b.Label, "size", len(items),
			"train", a.Train, "dev", a.Dev, "test", a.Test)

		res.Train = append(res.Train, items[:a.Train]...)
		res.Dev = append(res.Dev, items[a.Train:a.Train+a.Dev]...)
		res.Test = append(res.Test, items[a.Train+a.Dev:]...)
	}

	shuffle(res.Train, rng)
	shuffle(res.Dev, rng)
	shuffle(res.Test, rng)
	return res, nil
}

func shuffled(in []curate.Record, rng *rand.Rand) []curate.Record {
	out := make([]curate.Record, len(in))
	copy(out, in)
	shuffle(out, rng)
	return out
}

func shuffle(s []curate.Record, rng *rand.Rand) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
