package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"aa_profiler_go/benchmark"
	version_control "aa_profiler_go/config"
	"aa_profiler_go/tools/aa_composition"
	"aa_profiler_go/tools/seq_generator"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`AA Profiler - Custom Help Menu
Usage:
  aa_profiler <tool> [options]

Tools:
  aa_composition	Residue frequencies and hydropathy of one protein
  prot_gen		Generate random protein sequences (FASTA)

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("AA Profiler - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tAA Profiler:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tAA Composition:\t\t%s\n", version_control.AA_Composition)
	fmt.Printf("\tProtein Generator:\t%s\n", version_control.Prot_Gen)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)
	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Executable-specific help only when no tool is named
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "aa_composition":
			aa_composition.Run(cleanedArgs)
		case "prot_gen":
			seq_generator.Run(cleanedArgs)
		default:
			log.Error("unknown tool", "tool", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("aa_profiler %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
