package aa_composition

import (
	"fmt"
	"io"
	"strings"
)

// PrintReport writes the composition and hydropathy summary to w.
func PrintReport(w io.Writer, c Composition, b Buckets) {
	fmt.Fprintln(w, "Amino acid composition report")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Amino acids: %d\n", c.Len())

	if c.Len() == 0 {
		fmt.Fprintln(w, "No valid residues found")
		return
	}

	fmt.Fprintln(w, "\nResidue counts (first appearance order):")
	for _, aa := range c.Codes() {
		name, _ := ResidueName(aa)
		fmt.Fprintf(w, "  %c %s %5d (%.2f%%)\n", aa, name, c.Frequencies[aa], Percent(c, aa))
	}

	fmt.Fprintln(w, "\nHydropathy (Kyte-Doolittle):")
	printBucket(w, HydrophobicLabel, Summarize(b.Hydrophobic))
	printBucket(w, HydrophilicLabel, Summarize(b.Hydrophilic))
	fmt.Fprintf(w, "  GRAVY: %.3f\n", Gravy(b))
}

func printBucket(w io.Writer, name string, s BucketSummary) {
	if s.Count == 0 {
		fmt.Fprintf(w, "  %s: none\n", name)
		return
	}
	fmt.Fprintf(w, "  %s: %d residues, mean %.2f, median %.2f, range [%.2f, %.2f], sd %.2f\n",
		name, s.Count, s.Mean, s.Median, s.Min, s.Max, s.StdDev)
}
