package seq_generator

import (
	"math/rand"
)

// 20 standard amino acids
var aminoAcids = []rune("ACDEFGHIKLMNPQRSTVWY")

// GenerateProtein returns a random protein of the given length starting with Met.
// Residues after the first are drawn uniformly from the standard 20.
func GenerateProtein(length int, rng *rand.Rand) string {
	if length <= 0 {
		return ""
	}
	seq := make([]rune, length)
	seq[0] = 'M'
	for i := 1; i < length; i++ {
		seq[i] = aminoAcids[rng.Intn(len(aminoAcids))]
	}
	return string(seq)
}
