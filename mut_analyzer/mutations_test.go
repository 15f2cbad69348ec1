package mut_analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gene_lab_go/utils"
)

func TestGenerateSequence_LengthAndAlphabet(t *testing.T) {
	a := NewAnalyzer(200, 0.5, 42)

	seq := a.GenerateSequence()
	require.Len(t, seq, 200)
	assert.True(t, common.IsDNA(seq), "sequence contains bases outside the alphabet")
}

func TestGenerateSequence_DeterministicWithSeed(t *testing.T) {
	a1 := NewAnalyzer(500, 0.5, 1234)
	a2 := NewAnalyzer(500, 0.5, 1234)

	assert.Equal(t, a1.GenerateSequence(), a2.GenerateSequence())
}

func TestGenerateSequence_GCBiasExtremes(t *testing.T) {
	allGC := NewAnalyzer(300, 1.0, 7).GenerateSequence()
	for i := 0; i < len(allGC); i++ {
		require.Contains(t, "GC", string(allGC[i]))
	}

	allAT := NewAnalyzer(300, 0.0, 7).GenerateSequence()
	for i := 0; i < len(allAT); i++ {
		require.Contains(t, "AT", string(allAT[i]))
	}
}

func TestApplyPointMutation_AllKinds(t *testing.T) {
	a := NewAnalyzer(50, 0.5, 99)
	seen := make(map[MutationKind]int)

	for i := 0; i < 300; i++ {
		seq := a.GenerateSequence()
		mutated, kind, pos := a.ApplyPointMutation(seq)
		seen[kind]++

		require.GreaterOrEqual(t, pos, 0)
		require.Less(t, pos, len(seq))

		switch kind {
		case Substitution:
			require.Len(t, mutated, len(seq))
			assert.NotEqual(t, seq[pos], mutated[pos], "substitution reused the original base")
			assert.Equal(t, seq[:pos], mutated[:pos])
			assert.Equal(t, seq[pos+1:], mutated[pos+1:])
		case Insertion:
			require.Len(t, mutated, len(seq)+1)
			assert.Equal(t, seq[:pos], mutated[:pos])
			assert.Equal(t, seq[pos:], mutated[pos+1:])
		case Deletion:
			require.Len(t, mutated, len(seq)-1)
			assert.Equal(t, seq[:pos], mutated[:pos])
			assert.Equal(t, seq[pos+1:], mutated[pos:])
		default:
			t.Fatalf("unknown mutation kind %q", kind)
		}
	}

	assert.Len(t, seen, 3, "expected all three mutation kinds over 300 draws")
}

func TestSpliceSignatures_Contract(t *testing.T) {
	a := NewAnalyzer(1000, 0.5, 11)

	records := a.SpliceSignatures(50)
	require.Len(t, records, 50)

	for _, rec := range records {
		require.Len(t, rec.Sequence, 1000, "splice must preserve length")
		require.True(t, common.IsDNA(rec.Sequence))
		require.Contains(t, SignatureGenes(), rec.Gene)
		require.Contains(t, SignaturesFor(rec.Gene), rec.Signature)

		require.GreaterOrEqual(t, rec.Offset, 0)
		require.LessOrEqual(t, rec.Offset, len(rec.Sequence)-len(rec.Signature))

		got := rec.Sequence[rec.Offset : rec.Offset+len(rec.Signature)]
		assert.Equal(t, rec.Signature, got, "signature not found at recorded offset")
	}
}

func TestSpliceSignatures_ShortSequence(t *testing.T) {
	// 20-base sequences still carry the full 6-base signature at the
	// recorded offset, e.g. a splice at offset 5 occupies bases 5-10.
	a := NewAnalyzer(20, 0.5, 3)

	for _, rec := range a.SpliceSignatures(25) {
		require.Len(t, rec.Sequence, 20)
		assert.Equal(t, rec.Signature, rec.Sequence[rec.Offset:rec.Offset+6])
	}
}

func TestSpliceSignatures_DeterministicWithSeed(t *testing.T) {
	r1 := NewAnalyzer(100, 0.5, 77).SpliceSignatures(10)
	r2 := NewAnalyzer(100, 0.5, 77).SpliceSignatures(10)

	assert.Equal(t, r1, r2)
}

func TestTallyWindows_CountsAndWidth(t *testing.T) {
	records := []MutationRecord{
		{Sequence: "AAATGCTAGGG", Offset: 2, Signature: "ATGCTA"},
		{Sequence: "TTATGCTACCC", Offset: 2, Signature: "ATGCTA"},
		{Sequence: "GCGCTGTTTTT", Offset: 0, Signature: "GCGCTG"},
	}

	tally := TallyWindows(records)

	assert.Equal(t, 2, tally["ATGCTA"])
	assert.Equal(t, 1, tally["GCGCTG"])

	total := 0
	for pattern, count := range tally {
		assert.Len(t, pattern, PatternWindow)
		total += count
	}
	assert.Equal(t, len(records), total)
}

func TestTallyWindows_TruncatesAtSequenceEnd(t *testing.T) {
	// A window that would run past the end is clipped, not an error.
	records := []MutationRecord{{Sequence: "ATGCA", Offset: 2, Signature: "GCA"}}

	tally := TallyWindows(records)
	assert.Equal(t, map[string]int{"GCA": 1}, tally)
}

func TestSignatureCatalog_Shape(t *testing.T) {
	genes := SignatureGenes()
	require.Equal(t, []string{"BRCA1", "RAS", "p53"}, genes)

	for _, gene := range genes {
		for _, sig := range SignaturesFor(gene) {
			require.Len(t, sig, 6)
			require.True(t, strings.IndexFunc(sig, func(r rune) bool {
				return !strings.ContainsRune("ATGC", r)
			}) == -1, "signature %s contains non-DNA base", sig)
		}
	}
}
