package seq_generator

import (
	"compress/gzip"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// For repeated -seq arguments
type SequenceRequest struct {
	ID     string
	Length int
}

type MultiSeqFlag []SequenceRequest

func (m *MultiSeqFlag) String() string { return fmt.Sprint(*m) }
func (m *MultiSeqFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return fmt.Errorf("expected format: name,length")
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil || length <= 0 {
		return fmt.Errorf("invalid length %q", parts[1])
	}
	*m = append(*m, SequenceRequest{ID: parts[0], Length: length})
	return nil
}

// BuildFasta generates every requested protein and formats them as FASTA.
func BuildFasta(reqs []SequenceRequest, rng *rand.Rand) string {
	var fastaOut strings.Builder
	for _, req := range reqs {
		seq := GenerateProtein(req.Length, rng)
		fastaOut.WriteString(fmt.Sprintf(">%s\n%s", req.ID, WrapFasta(seq, 60)))
	}
	return fastaOut.String()
}

func Run(args []string) {
	fs := flag.NewFlagSet("prot_gen", flag.ExitOnError)

	name := fs.String("name", "random_protein", "Sequence name")
	length := fs.Int("length", 1368, "Sequence length")
	seed := fs.Int64("seed", 0, "Random seed (0 uses the clock)")
	outFile := fs.String("out_file", "", "Output FASTA file")
	gzipOut := fs.Bool("gzip", false, "Compress output with gzip")

	var multiSeq MultiSeqFlag
	fs.Var(&multiSeq, "seq", "Use format name,length (repeatable)")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Debug("seeded generator", "seed", *seed)

	reqs := []SequenceRequest(multiSeq)
	if len(reqs) == 0 {
		if *length <= 0 {
			log.Fatal("-length must be positive", "length", *length)
		}
		reqs = []SequenceRequest{{ID: *name, Length: *length}}
	}
	output := BuildFasta(reqs, rng)

	if *outFile == "" {
		if *gzipOut {
			log.Fatal("cannot gzip to stdout, specify -out_file")
		}
		fmt.Print(output)
		return
	}

	path, err := writeOutput(*outFile, output, *gzipOut)
	if err != nil {
		log.Fatal("failed to write sequence", "err", err)
	}
	log.Info("wrote sequence", "file", path, "records", len(reqs))
}

func writeOutput(path, output string, compress bool) (string, error) {
	if !compress {
		return path, os.WriteFile(path, []byte(output), 0644)
	}

	path += ".gz"
	file, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	if _, err := gz.Write([]byte(output)); err != nil {
		return path, fmt.Errorf("writing compressed data: %w", err)
	}
	return path, gz.Close()
}
