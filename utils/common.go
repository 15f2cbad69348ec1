// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import "strings"

// WrapFasta wraps a sequence every `width` characters for FASTA formatting.
func WrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

// GCFraction returns the fraction of G and C bases in a sequence.
// Case-insensitive. Returns 0 for an empty sequence.
func GCFraction(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}

// IsDNA reports whether every base of seq is one of A, T, G or C.
func IsDNA(seq string) bool {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T', 'G', 'C':
		default:
			return false
		}
	}
	return true
}
