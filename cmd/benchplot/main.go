// Package main implements the benchplot binary. It reads a benchmark
// results CSV from a GDPR logging engine run and renders the analysis
// charts into an output directory.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/gdpruler/benchplot/internal/config"
	"github.com/gdpruler/benchplot/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	flag.StringVar(&cfg.InputFile, "input_file", cfg.InputFile,
		"Input CSV file with benchmark results")
	flag.StringVar(&cfg.OutputDir, "output_dir", cfg.OutputDir,
		"Directory to save the generated plots")
	flag.Parse()

	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	driver := report.NewDriver(cfg, os.Stdout)
	if err := driver.Run(context.Background()); err != nil {
		log.Fatalf("Report generation failed: %v", err)
	}
}
