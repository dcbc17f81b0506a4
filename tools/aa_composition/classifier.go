package aa_composition

import (
	"strings"
)

// Composition is the filtered residue list of one sequence and its counts.
type Composition struct {
	Filtered    []rune       // valid residues, in input order
	Frequencies map[rune]int // only codes with count >= 1
}

// Classify strips surrounding whitespace from raw and keeps every character
// found in the Residue Catalog, in order. Case is not folded: a lowercase
// letter is dropped like any other unknown character. Callers wanting
// case-insensitive input must call Normalize first.
func Classify(raw string) Composition {
	comp := Composition{
		Filtered:    []rune{},
		Frequencies: make(map[rune]int),
	}
	for _, ch := range strings.TrimSpace(raw) {
		if !IsResidue(ch) {
			continue
		}
		comp.Filtered = append(comp.Filtered, ch)
		comp.Frequencies[ch]++
	}
	return comp
}

// Normalize upper-cases raw so lowercase residues survive Classify.
func Normalize(raw string) string {
	return strings.ToUpper(raw)
}

// Len is the number of retained residues.
func (c Composition) Len() int {
	return len(c.Filtered)
}

// Codes lists the distinct residues in order of first appearance
func (c Composition) Codes() []rune {
	seen := make(map[rune]bool, len(c.Frequencies))
	codes := make([]rune, 0, len(c.Frequencies))
	for _, aa := range c.Filtered {
		if seen[aa] {
			continue
		}
		seen[aa] = true
		codes = append(codes, aa)
	}
	return codes
}
