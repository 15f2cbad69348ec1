package mut_analyzer

import (
	"math/rand"
	"sort"
	"time"
)

// Standard DNA nucleotide options
var dnaBases = []byte{'A', 'T', 'G', 'C'}

// Toy stand-ins for cancer-associated mutation motifs, keyed by gene.
// Demonstration catalog, not real clinical variants.
var signatureCatalog = map[string][]string{
	"p53":   {"ATGCTA", "GCTATG"}, // tumor suppressor
	"BRCA1": {"TACGTC", "GCGCTA"}, // breast cancer gene
	"RAS":   {"ATGGCG", "GCGCTG"}, // oncogene
}

// PatternWindow is the number of bases tallied at each splice offset.
// The width stays fixed even if a catalog signature is shorter, so such
// a signature would pick up flanking bases in its tally key.
const PatternWindow = 6

// MutationKind identifies the type of a point mutation.
type MutationKind string

const (
	Substitution MutationKind = "substitution"
	Insertion    MutationKind = "insertion"
	Deletion     MutationKind = "deletion"
)

// MutationRecord describes one spliced sequence. Fields are fixed at
// creation and never updated.
type MutationRecord struct {
	Sequence  string // final sequence, signature already spliced in
	Gene      string // catalog label
	Offset    int    // where the signature was written
	Signature string // the spliced motif
}

// Analyzer generates sequences and mutations from its own seeded RNG,
// so runs are reproducible when a seed is given.
type Analyzer struct {
	SeqLength int
	GCBias    float64
	rng       *rand.Rand
}

// NewAnalyzer returns an Analyzer producing sequences of seqLength bases.
// A seed of 0 selects a time-based seed.
func NewAnalyzer(seqLength int, gcBias float64, seed int64) *Analyzer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Analyzer{
		SeqLength: seqLength,
		GCBias:    gcBias,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// GenerateSequence draws a random DNA sequence of the configured length.
// A GC bias of 0.5 gives every base equal weight.
func (a *Analyzer) GenerateSequence() string {
	cWeight := a.GCBias / 2
	aWeight := (1 - a.GCBias) / 2
	tWeight := aWeight // AT bias

	seq := make([]byte, a.SeqLength)
	for i := range seq {
		r := a.rng.Float64()
		switch {
		case r < aWeight:
			seq[i] = 'A'
		case r < aWeight+tWeight:
			seq[i] = 'T'
		case r < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return string(seq)
}

// randBase picks a base, rejecting `exclude`. Pass 0 to allow all four.
func (a *Analyzer) randBase(exclude byte) byte {
	for {
		b := dnaBases[a.rng.Intn(len(dnaBases))]
		if b != exclude {
			return b
		}
	}
}

// ApplyPointMutation applies one random point mutation to seq and returns
// the mutated sequence, the mutation kind, and the affected position.
// The kind is drawn uniformly from substitution, insertion and deletion;
// the position is drawn uniformly from [0, len(seq)-1]. A substitution
// never reuses the original base.
func (a *Analyzer) ApplyPointMutation(seq string) (string, MutationKind, int) {
	kinds := []MutationKind{Substitution, Insertion, Deletion}
	kind := kinds[a.rng.Intn(len(kinds))]
	pos := a.rng.Intn(len(seq))

	mutated := []byte(seq)
	switch kind {
	case Substitution:
		mutated[pos] = a.randBase(seq[pos])
	case Insertion:
		tail := append([]byte{a.randBase(0)}, mutated[pos:]...)
		mutated = append(mutated[:pos], tail...)
	case Deletion:
		mutated = append(mutated[:pos], mutated[pos+1:]...)
	}
	return string(mutated), kind, pos
}

// SpliceSignatures generates `count` base sequences and overwrites a random
// span of each with a catalog signature. The offset is drawn from
// [0, len(base)-len(signature)] inclusive, so the signature always fits.
func (a *Analyzer) SpliceSignatures(count int) []MutationRecord {
	// Stable gene order keeps picks reproducible for a given seed
	genes := make([]string, 0, len(signatureCatalog))
	for gene := range signatureCatalog {
		genes = append(genes, gene)
	}
	sort.Strings(genes)

	records := make([]MutationRecord, 0, count)
	for i := 0; i < count; i++ {
		base := a.GenerateSequence()

		gene := genes[a.rng.Intn(len(genes))]
		sigs := signatureCatalog[gene]
		sig := sigs[a.rng.Intn(len(sigs))]

		offset := a.rng.Intn(len(base) - len(sig) + 1)
		spliced := base[:offset] + sig + base[offset+len(sig):]

		records = append(records, MutationRecord{
			Sequence:  spliced,
			Gene:      gene,
			Offset:    offset,
			Signature: sig,
		})
	}
	return records
}

// TallyWindows counts the PatternWindow-base window found at each record's
// splice offset in the final sequence. A window running past the end of a
// sequence is truncated.
func TallyWindows(records []MutationRecord) map[string]int {
	tally := make(map[string]int)
	for _, rec := range records {
		end := rec.Offset + PatternWindow
		if end > len(rec.Sequence) {
			end = len(rec.Sequence)
		}
		tally[rec.Sequence[rec.Offset:end]]++
	}
	return tally
}

// SignatureGenes returns the catalog's gene labels in sorted order.
func SignatureGenes() []string {
	genes := make([]string, 0, len(signatureCatalog))
	for gene := range signatureCatalog {
		genes = append(genes, gene)
	}
	sort.Strings(genes)
	return genes
}

// SignaturesFor returns the catalog motifs for a gene label.
func SignaturesFor(gene string) []string {
	return signatureCatalog[gene]
}
