package codon_table

import "math/rand"

// RNA nucleotide options, in biological convention order (not ASCII order).
// Enumeration order everywhere in this package follows this slice.
var rnaBases = []byte{'A', 'U', 'G', 'C'}

// CodonLength is fixed by biology: three bases per codon.
const CodonLength = 3

// EnumerateCodons returns all 64 possible RNA codons in product order over
// rnaBases, first base varying slowest. The order is deterministic:
// index 0 is "AAA" and index 63 is "CCC".
func EnumerateCodons() []string {
	var codons []string

	// Recursive product, one base position at a time
	var build func(prefix string, depth int)
	build = func(prefix string, depth int) {
		if depth == 0 {
			codons = append(codons, prefix)
			return
		}
		for _, base := range rnaBases {
			build(prefix+string(base), depth-1)
		}
	}
	build("", CodonLength)
	return codons
}

// GroupByFirstBase partitions codons by their first base, preserving the
// input order within each group. With the full codon set every group holds
// exactly 16 members.
func GroupByFirstBase(codons []string) map[byte][]string {
	groups := make(map[byte][]string)
	for _, codon := range codons {
		groups[codon[0]] = append(groups[codon[0]], codon)
	}
	return groups
}

// CodonMatrix builds the 4x16 matrix behind the full codon table figure.
// Rows follow the first base, columns follow the second+third base pair,
// and each cell holds the codon's enumeration index. The returned labels
// name the 16 columns ("AA", "AU", ...).
func CodonMatrix() ([][]float64, []string) {
	codons := EnumerateCodons()
	index := make(map[string]int, len(codons))
	for i, codon := range codons {
		index[codon] = i
	}

	labels := make([]string, 0, 16)
	matrix := make([][]float64, len(rnaBases))
	for i, first := range rnaBases {
		row := make([]float64, 0, 16)
		for _, second := range rnaBases {
			for _, third := range rnaBases {
				codon := string([]byte{first, second, third})
				row = append(row, float64(index[codon]))
				if i == 0 {
					labels = append(labels, string([]byte{second, third}))
				}
			}
		}
		matrix[i] = row
	}
	return matrix, labels
}

// HistoricalMatrix fills a 4x4 matrix with uniform random values. It stands
// in for the simple base-pairing model of the early genetic code figures and
// carries no meaning beyond illustration.
func HistoricalMatrix(rng *rand.Rand) [][]float64 {
	matrix := make([][]float64, len(rnaBases))
	for i := range matrix {
		row := make([]float64, len(rnaBases))
		for j := range row {
			row[j] = rng.Float64()
		}
		matrix[i] = row
	}
	return matrix
}

// BaseLabels returns the four base symbols as strings, in enumeration order.
func BaseLabels() []string {
	labels := make([]string, len(rnaBases))
	for i, base := range rnaBases {
		labels[i] = string(base)
	}
	return labels
}
