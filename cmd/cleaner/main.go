// Command cleaner runs the delivery-order cleaning recipes over raw export
// files and writes dated outputs for the reporting layer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"giclean/internal/config"
	"giclean/internal/files"
	"giclean/internal/infrastructure"
	"giclean/internal/pipeline"
	"giclean/pkg/contracts"
)

func main() {
	os.Exit(run())
}

func run() int {
	recipeName := flag.String("recipe", "", "recipe to run (see -list)")
	in := flag.String("in", "", "input file or directory (defaults to the configured raw directory)")
	out := flag.String("out", "", "override the recipe's output directory")
	dateStr := flag.String("date", "", "run date override as YYYY-MM-DD (defaults to today)")
	parallel := flag.Int("parallel", 0, "concurrent file runs in batch mode (defaults to configured parallelism)")
	configFile := flag.String("config", "", "config file path (defaults to config.yaml next to the binary)")
	list := flag.Bool("list", false, "list available recipes and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println(contracts.GetFullVersionString())
		return 0
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	paths, err := config.ResolvePaths(cfg)
	if err != nil {
		slog.Error("failed to resolve paths", "error", err)
		return 1
	}
	if err := paths.EnsureLogsDir(); err != nil {
		slog.Error("failed to prepare logs directory", "error", err)
		return 1
	}
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetLogPath(filepath.Base(cfg.Logging.FilePath))
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	opts := pipeline.RecipeOptions{
		CleanedDir:           paths.CleanedDir,
		ReturnsDir:           paths.ReturnsDir,
		CSVDir:               paths.CSVDir,
		HeaderRows:           cfg.Cleaning.HeaderRows,
		LeadingColumnStrips:  cfg.Cleaning.LeadingColumnStrips,
		ReturnLeadingColumns: cfg.Cleaning.ReturnLeadingColumns,
		SubtotalRowIndex:     cfg.Cleaning.SubtotalRowIndex,
		CanonicalOrder:       cfg.Cleaning.CanonicalOrder,
		KeyColumn:            cfg.Cleaning.KeyColumn,
		AllowMissingColumns:  cfg.Cleaning.AllowMissingColumns,
		Overwrite:            cfg.Cleaning.Overwrite,
	}
	if *out != "" {
		opts.CleanedDir = *out
		opts.ReturnsDir = *out
		opts.CSVDir = *out
	}
	registry := pipeline.NewRegistry(opts)

	if *list {
		for _, name := range registry.Names() {
			recipe, _ := registry.Get(name)
			fmt.Printf("%-16s %s\n", name, recipe.Description)
		}
		return 0
	}

	if *recipeName == "" {
		fmt.Fprintln(os.Stderr, "missing -recipe (use -list to see available recipes)")
		return 2
	}
	recipe, err := registry.Get(*recipeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	runDate := time.Now()
	if *dateStr != "" {
		runDate, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -date %q: %v\n", *dateStr, err)
			return 2
		}
	}

	inputs, err := collectInputs(*in, paths.RawDir)
	if err != nil {
		logger.Error("failed to collect inputs", "error", err)
		return 1
	}
	if len(inputs) == 0 {
		logger.Warn("no input files found", slog.String("input", *in))
		fmt.Println("No input files found")
		return 0
	}

	limit := cfg.Cleaning.Parallelism
	if *parallel > 0 {
		limit = *parallel
	}

	logger.Info("starting batch",
		slog.String("recipe", recipe.Name),
		slog.Int("files", len(inputs)),
		slog.Int("parallel", limit))

	runner := pipeline.NewRunner(logger)
	var (
		g        errgroup.Group
		mu       sync.Mutex
		rowsOut  int
		failures []string
	)
	g.SetLimit(limit)

	for _, input := range inputs {
		input := input
		g.Go(func() error {
			state, err := runner.Run(context.Background(), recipe, input, runDate)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// Other files keep processing; the batch reports at the end.
				failures = append(failures, fmt.Sprintf("%s: %v", input, err))
				return nil
			}
			rowsOut += state.RowsOut
			return nil
		})
	}
	g.Wait()

	fmt.Printf("Files processed: %d\n", len(inputs)-len(failures))
	fmt.Printf("Rows written: %d\n", rowsOut)
	if len(failures) > 0 {
		fmt.Printf("Errors encountered: %d\n", len(failures))
		for _, failure := range failures {
			fmt.Printf("  - %s\n", failure)
		}
		return 1
	}
	fmt.Println("No errors encountered")
	return 0
}

// collectInputs expands the -in flag into the list of files to clean. A
// directory means every cleanable file in it; empty means the configured
// raw directory.
func collectInputs(in, rawDir string) ([]string, error) {
	if in == "" {
		in = rawDir
	}
	info, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", in, err)
	}
	if !info.IsDir() {
		return []string{in}, nil
	}
	found, err := files.FindInputFiles(in)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = f.Path
	}
	return paths, nil
}
