package aa_composition

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BucketSummary describes the spread of one hydropathy bucket
type BucketSummary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summarize computes descriptive statistics for a set of scores.
// An empty set yields the zero summary; a single value has StdDev 0.
func Summarize(values []float64) BucketSummary {
	if len(values) == 0 {
		return BucketSummary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := BucketSummary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// Gravy is the grand average of hydropathy over every residue occurrence.
func Gravy(b Buckets) float64 {
	all := b.All()
	if len(all) == 0 {
		return 0
	}
	return stat.Mean(all, nil)
}

// Percent gives the share of the filtered sequence taken by code, 0-100.
func Percent(c Composition, code rune) float64 {
	if c.Len() == 0 {
		return 0
	}
	return float64(c.Frequencies[code]) / float64(c.Len()) * 100
}
