package aa_composition

// Residue Catalog: the 20 standard one-letter codes and their three-letter names.
// Lowercase letters are not keys; see Normalize.
var residueNames = map[rune]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu", 'F': "Phe",
	'G': "Gly", 'H': "His", 'I': "Ile", 'K': "Lys", 'L': "Leu",
	'M': "Met", 'N': "Asn", 'P': "Pro", 'Q': "Gln", 'R': "Arg",
	'S': "Ser", 'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
}

// Kyte-Doolittle hydropathy scale, keyed like residueNames
var hydropathy = map[rune]float64{
	'A': 1.8, 'C': 2.5, 'D': -3.5, 'E': -3.5, 'F': 2.8,
	'G': -0.4, 'H': -3.2, 'I': 4.5, 'K': -3.9, 'L': 3.8,
	'M': 1.9, 'N': -3.5, 'P': -1.6, 'Q': -3.5, 'R': -4.5,
	'S': -0.8, 'T': -0.7, 'V': 4.2, 'W': -0.9, 'Y': -1.3,
}

// IsResidue reports whether code is one of the 20 standard amino acid codes.
func IsResidue(code rune) bool {
	_, ok := residueNames[code]
	return ok
}

// ResidueName returns the three-letter name of a one-letter code.
func ResidueName(code rune) (string, bool) {
	name, ok := residueNames[code]
	return name, ok
}

// Hydropathy returns the Kyte-Doolittle score of a one-letter code.
func Hydropathy(code rune) (float64, bool) {
	score, ok := hydropathy[code]
	return score, ok
}

// StandardResidues returns the 20 codes in alphabetical order.
func StandardResidues() []rune {
	return []rune("ACDEFGHIKLMNPQRSTVWY")
}
