package mut_analyzer

import (
	"compress/gzip"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"gene_lab_go/utils"
)

// Run executes the mut_analyzer command.
// It generates a batch of random DNA sequences, splices a known mutation
// signature into each, and reports the most common patterns found at the
// splice sites. Optionally writes the spliced sequences to a FASTA file.
func Run(args []string) {

	fs := flag.NewFlagSet("mut_analyzer", flag.ExitOnError)

	length := fs.Int("length", 1000, "Length of each generated base sequence")
	count := fs.Int("count", 100, "Number of spliced sequences to generate")
	gc := fs.Float64("gc_bias", 0.5, "GC bias (0.0-1.0)")
	seed := fs.Int64("seed", 0, "Seed for RNG (0 = time-based)")
	show := fs.Int("show", 3, "Number of example records to print")
	top := fs.Int("top", 5, "Number of top patterns to report")
	outFile := fs.String("out_file", "", "Output FASTA file for spliced sequences")
	gzipOption := fs.Bool("gzip", false, "Compress output using gzip (.gz)")

	fs.Parse(args)

	if *gc < 0.0 || *gc > 1.0 {
		fmt.Println("GC bias must be between 0.0 and 1.0")
		os.Exit(1)
	}
	if *length < 1 {
		fmt.Println("Error: -length must be a positive integer")
		os.Exit(1)
	}
	if *count < 1 {
		fmt.Println("Error: -count must be a positive integer")
		os.Exit(1)
	}
	if *outFile == "" && *gzipOption {
		fmt.Fprintln(os.Stderr, "Cannot gzip to stdout. Specify -out_file.")
		os.Exit(1)
	}

	analyzer := NewAnalyzer(*length, *gc, *seed)

	fmt.Println("Generating cancer-prone genetic sequences...")
	records := analyzer.SpliceSignatures(*count)

	// Example records
	n := *show
	if n > len(records) {
		n = len(records)
	}
	for i := 0; i < n; i++ {
		rec := records[i]
		preview := rec.Sequence
		if len(preview) > 50 {
			preview = preview[:50] + "..."
		}
		fmt.Printf("\nSequence %d:\n", i+1)
		fmt.Printf("\tGene:\t\t%s\n", rec.Gene)
		fmt.Printf("\tOffset:\t\t%d\n", rec.Offset)
		fmt.Printf("\tSignature:\t%s\n", rec.Signature)
		fmt.Printf("\tFirst 50 bases:\t%s\n", preview)
	}

	// Pattern tally
	type patternData struct {
		Pattern string
		Count   int
	}

	tally := TallyWindows(records)
	result := make([]patternData, 0, len(tally))
	for pattern, c := range tally {
		result = append(result, patternData{pattern, c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Pattern < result[j].Pattern
	})
	if *top < len(result) {
		result = result[:*top]
	}

	fmt.Println("\nCommon mutation patterns found:")
	fmt.Println("Pattern\tCount")
	for _, item := range result {
		fmt.Printf("%s\t%d\n", item.Pattern, item.Count)
	}

	// Batch GC summary
	gcValues := make([]float64, len(records))
	for i, rec := range records {
		gcValues[i] = common.GCFraction(rec.Sequence) * 100
	}
	fmt.Printf("\nBatch GC content: mean %.2f%%, stddev %.2f%%\n",
		stat.Mean(gcValues, nil), stat.StdDev(gcValues, nil))

	// Output the batch as FASTA if requested
	if *outFile == "" {
		return
	}

	var fastaOut strings.Builder
	for i, rec := range records {
		header := fmt.Sprintf(">mut_%d gene=%s offset=%d signature=%s", i+1, rec.Gene, rec.Offset, rec.Signature)
		fastaOut.WriteString(header + "\n")
		fastaOut.WriteString(common.WrapFasta(rec.Sequence, 60))
	}

	outputPath := *outFile
	if *gzipOption {
		outputPath += ".gz"
		file, err := os.Create(outputPath)
		if err != nil {
			fmt.Println("Error creating gzip file:", err)
			os.Exit(1)
		}
		defer file.Close()

		writer := gzip.NewWriter(file)
		defer writer.Close()

		_, err = writer.Write([]byte(fastaOut.String()))
		if err != nil {
			fmt.Println("Error writing compressed data:", err)
			os.Exit(1)
		}

		fmt.Printf("Wrote %d compressed sequences to %s\n", len(records), outputPath)
	} else {
		err := os.WriteFile(outputPath, []byte(fastaOut.String()), 0644)
		if err != nil {
			fmt.Println("Error writing to file:", err)
			os.Exit(1)
		}

		fmt.Printf("Wrote %d sequences to %s\n", len(records), outputPath)
	}
}
