package aa_composition

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/vg"

	common "aa_profiler_go/utils"
)

const (
	frequencyPlotFile  = "aminoacid.png"
	hydropathyPlotFile = "hydrophobicity.png"
	frequencyCSVFile   = "aminoacid_counts.csv"
)

// Options controls one aa_composition run.
type Options struct {
	InFile    string
	FASTA     bool
	Uppercase bool
	Label     string
	OutDir    string
	CSVOut    bool
	NoPlots   bool
}

// Result is everything derived from one input sequence.
type Result struct {
	Composition Composition
	Buckets     Buckets
}

// Analyze runs the classifier and partitioner over raw sequence text.
func Analyze(raw string, uppercase bool) Result {
	if uppercase {
		raw = Normalize(raw)
	}
	comp := Classify(raw)
	return Result{
		Composition: comp,
		Buckets:     Partition(comp.Filtered),
	}
}

func Run(args []string) {
	fs := flag.NewFlagSet("aa_composition", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Protein sequence file (plain text or FASTA, optionally gzipped)")
	fasta := fs.Bool("fasta", false, "Parse in_file as FASTA and analyze the first record")
	uppercase := fs.Bool("uppercase", false, "Upper-case input before filtering (lowercase residues are dropped otherwise)")
	label := fs.String("label", "Protein", "Protein name used in plot titles")
	outDir := fs.String("out_dir", ".", "Directory for PNG and CSV output")
	csvOut := fs.Bool("csv_out", false, "Write residue counts to CSV")
	noPlots := fs.Bool("no_plots", false, "Skip PNG export")
	logLevel := fs.String("log_level", "info", "Log level: debug, info, warn, error")

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

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "aa_composition"})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", *logLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if *inFile == "" {
		logger.Error("-in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	opts := Options{
		InFile:    *inFile,
		FASTA:     *fasta,
		Uppercase: *uppercase,
		Label:     *label,
		OutDir:    *outDir,
		CSVOut:    *csvOut,
		NoPlots:   *noPlots,
	}
	if err := Execute(opts, logger); err != nil {
		logger.Fatal("analysis failed", "err", err)
	}
}

// Execute loads the sequence, prints the report and writes the requested artifacts.
func Execute(opts Options, logger *log.Logger) error {
	loaded, err := common.LoadSequence(opts.InFile, opts.FASTA)
	if err != nil {
		return err
	}
	if loaded.Records > 1 {
		logger.Warn("multiple FASTA records found, analyzing the first only",
			"records", loaded.Records, "id", loaded.ID)
	}
	logger.Debug("sequence loaded", "file", opts.InFile, "chars", len(loaded.Raw))

	res := Analyze(loaded.Raw, opts.Uppercase)
	if res.Composition.Len() == 0 {
		logger.Warn("no valid residues found", "file", opts.InFile)
	}
	PrintReport(os.Stdout, res.Composition, res.Buckets)

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if opts.CSVOut {
		path := filepath.Join(opts.OutDir, frequencyCSVFile)
		if err := WriteFrequencyCSV(path, res.Composition); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		logger.Info("wrote residue counts", "file", path)
	}

	if opts.NoPlots {
		return nil
	}
	return writePlots(res, opts, logger)
}

func writePlots(res Result, opts Options, logger *log.Logger) error {
	bar, err := FrequencyBarChart(res.Composition, opts.Label)
	if errors.Is(err, ErrNoResidues) {
		logger.Warn("skipping plots", "reason", err)
		return nil
	}
	if err != nil {
		return err
	}
	path := filepath.Join(opts.OutDir, frequencyPlotFile)
	if err := SavePNG(bar, 10*vg.Inch, 4*vg.Inch, path); err != nil {
		return err
	}
	logger.Info("wrote frequency plot", "file", path)

	box, err := HydropathyBoxPlot(res.Buckets, opts.Label)
	if err != nil {
		return err
	}
	path = filepath.Join(opts.OutDir, hydropathyPlotFile)
	if err := SavePNG(box, 6*vg.Inch, 6*vg.Inch, path); err != nil {
		return err
	}
	logger.Info("wrote hydropathy plot", "file", path)
	return nil
}
