package aa_composition

import (
	"fmt"
)

// Buckets holds one hydropathy score per residue occurrence, split by sign.
type Buckets struct {
	Hydrophobic []float64 // score >= 0
	Hydrophilic []float64 // score < 0
}

// Len is the combined size of both buckets.
func (b Buckets) Len() int {
	return len(b.Hydrophobic) + len(b.Hydrophilic)
}

// All returns every score, hydrophobic first.
func (b Buckets) All() []float64 {
	all := make([]float64, 0, b.Len())
	all = append(all, b.Hydrophobic...)
	return append(all, b.Hydrophilic...)
}

// Partition scores each residue of a filtered sequence and sorts the scores
// into buckets, keeping occurrence order. A score of exactly zero counts as
// hydrophobic.
//
// Partition panics if a residue has no hydropathy score. Classify never
// produces such a residue, so this only fires on a broken table.
func Partition(filtered []rune) Buckets {
	return partitionWith(filtered, hydropathy)
}

func partitionWith(filtered []rune, table map[rune]float64) Buckets {
	b := Buckets{
		Hydrophobic: []float64{},
		Hydrophilic: []float64{},
	}
	for _, aa := range filtered {
		score, ok := table[aa]
		if !ok {
			panic(fmt.Sprintf("aa_composition: no hydropathy score for residue %q", aa))
		}
		if score >= 0 {
			b.Hydrophobic = append(b.Hydrophobic, score)
		} else {
			b.Hydrophilic = append(b.Hydrophilic, score)
		}
	}
	return b
}
