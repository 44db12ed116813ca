// Package main provides the feed converter command-line tool for turning
// Roku Direct Publisher feeds into Roku Search Feeds.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"kmgiroku/internal/config"
	"kmgiroku/internal/converter"
	"kmgiroku/internal/feedio"
	"kmgiroku/internal/report"
	"kmgiroku/internal/validator"
	"kmgiroku/pkg/manifest"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("input", "", "Direct Publisher JSON file to convert (overrides config)")
	output := flag.String("output", "", "Output search feed path (overrides config)")
	compact := flag.Bool("compact", false, "Write compact JSON instead of indented")
	samples := flag.Int("samples", -1, "Print the first N assets of each type (overrides config)")
	skipValidation := flag.Bool("no-validate", false, "Skip validating the generated feed")
	initConfig := flag.String("init-config", "", "Write a default configuration file to the given path and exit")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	if *initConfig != "" {
		cfg := config.Default()
		cfg.Feed.Sources = []config.SourceConfig{
			{
				Name:    "KMGI Direct Publisher",
				Input:   "data/direct_publisher.json",
				Enabled: true,
			},
		}

		if err := cfg.SaveConfig(*initConfig); err != nil {
			log.Fatalf("❌ Failed to write config: %v\n", err)
		}

		fmt.Printf("✅ Wrote default configuration to: %s\n", *initConfig)

		return
	}

	cfg := loadConfiguration(*configFile, *input, *output)

	if *compact {
		cfg.Feed.Output.PrettyPrint = false
	}

	if *samples >= 0 {
		cfg.Feed.Logging.SampleAssets = *samples
	}

	if *verbose {
		cfg.Feed.Logging.Level = "debug"
	}

	printConverterHeader(cfg)

	conv, err := converter.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create converter: %v\n", err)
	}

	feedValidator := validator.NewFeedValidator()

	// Process each enabled source
	enabledSources := cfg.GetEnabledSources()
	fmt.Printf("🚀 Processing %d enabled sources...\n", len(enabledSources))

	failed := 0

	for i, source := range enabledSources {
		fmt.Printf("\n----------------------------------------------------------------\n")
		fmt.Printf("📦 Source %d/%d: %s (%s)\n", i+1, len(enabledSources), source.Name, source.Input)

		outputPath := source.OutputPath()
		if *output != "" && len(enabledSources) == 1 {
			// Only override output path when processing a single source
			outputPath = *output
		}

		if err := runSource(cfg, conv, feedValidator, source, outputPath, *skipValidation); err != nil {
			fmt.Printf("⚠️  Skipping source %s: %v\n", source.Name, err)

			failed++
		}
	}

	if failed > 0 {
		if failed == len(enabledSources) {
			log.Fatalf("❌ All %d sources failed\n", failed)
		}

		fmt.Printf("\n⚠️  Finished with %d of %d sources failed\n", failed, len(enabledSources))
		os.Exit(1)
	}

	fmt.Println("\n✨ Conversion complete!")
}

// runSource converts one Direct Publisher file into a search feed, writing
// the output and its manifest sidecar. Per-item failures are reported and
// skipped; only file-level failures abort the source.
func runSource(cfg *config.Config, conv *converter.Converter, feedValidator *validator.FeedValidator, source config.SourceConfig, outputPath string, skipValidation bool) error {
	start := time.Now()

	fmt.Printf("⏳ Reading: %s\n", source.Input)

	feed, raw, err := feedio.ReadDirectPublisher(source.Input)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Read %d items (%d bytes)\n", feed.ItemCount(), len(raw))

	fmt.Println("\n📊 Converting items...")

	searchFeed, result := conv.ConvertFeed(feed)

	for _, itemErr := range result.Errors {
		fmt.Printf("❌ Skipped %s\n", itemErr)
	}

	fmt.Printf("✅ Converted %d of %d items\n", result.Converted, result.MoviesIn+result.ShortFormIn)

	// Validation is diagnostic; an invalid feed is still written so it can
	// be inspected. The validator command enforces.
	if !skipValidation {
		fmt.Println("\n🔍 Validating generated feed...")

		valResult := feedValidator.ValidateFeed(searchFeed)

		valResult.PrintWarnings()

		if !valResult.IsValid {
			valResult.PrintErrors()
		}

		fmt.Printf("%s\n", valResult)
	}

	fmt.Println("\n📝 Writing search feed...")

	if cfg.Feed.Output.CreateBackup {
		backupPath, backupErr := feedio.BackupExisting(outputPath)
		if backupErr != nil {
			fmt.Printf("⚠️  Could not create backup: %v\n", backupErr)
		} else if backupPath != "" {
			fmt.Printf("💾 Backed up existing file to: %s\n", backupPath)
		}
	}

	data, err := feedio.WriteSearchFeed(outputPath, searchFeed, cfg.Feed.Output.PrettyPrint)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Saved to: %s\n", outputPath)

	if cfg.Feed.Output.WriteManifest {
		m := manifest.Build(source.Input, raw, data, len(searchFeed.Assets), result.Failed)

		manifestPath := manifest.PathFor(outputPath)
		if err := m.Write(manifestPath); err != nil {
			fmt.Printf("⚠️  Could not write manifest: %v\n", err)
		} else {
			fmt.Printf("✅ Manifest: %s\n", manifestPath)
		}
	}

	sum := &report.RunSummary{
		Source:      source.Input,
		Output:      outputPath,
		Provider:    feed.ProviderName,
		MoviesIn:    result.MoviesIn,
		ShortFormIn: result.ShortFormIn,
		Converted:   result.Converted,
		Failed:      result.Failed,
		OutputBytes: len(data),
		Elapsed:     time.Since(start),
	}

	fmt.Printf("\n📈 Summary:\n%s", report.RenderRun(sum))

	if cfg.Feed.Logging.SampleAssets > 0 {
		fmt.Println()
		fmt.Print(report.RenderSamples(searchFeed, cfg.Feed.Logging.SampleAssets))
	}

	return nil
}

// loadConfiguration resolves the effective config from the -config flag, the
// -input flag, or the default config path, in that order.
func loadConfiguration(configFile, input, output string) *config.Config {
	var cfg *config.Config

	var err error

	if configFile != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", configFile)

		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}

		fmt.Printf("✅ Configuration loaded: %s\n\n", cfg)
	} else if input != "" {
		// Create minimal config from CLI flags
		cfg = createConfigFromCLI(input, output)

		fmt.Println("⚙️  Using command-line arguments")
		fmt.Println()
	} else {
		// Try to load default config
		defaultConfig := "configs/converter.yaml"
		if _, statErr := os.Stat(defaultConfig); statErr == nil {
			fmt.Printf("⚙️  Loading default configuration: %s\n", defaultConfig)

			cfg, err = config.LoadConfig(defaultConfig)
			if err != nil {
				log.Fatalf("❌ Failed to load default config: %v\n", err)
			}

			fmt.Printf("✅ Configuration loaded: %s\n\n", cfg)
		} else {
			log.Fatal("❌ Please provide -config file or -input flag, or place configs/converter.yaml in working directory")
		}
	}

	return cfg
}

// createConfigFromCLI creates a config from CLI arguments.
func createConfigFromCLI(input, output string) *config.Config {
	cfg := config.Default()
	cfg.Feed.Sources = []config.SourceConfig{
		{
			Name:    "CLI Argument",
			Input:   input,
			Output:  output,
			Enabled: true,
		},
	}

	return cfg
}

func printConverterHeader(cfg *config.Config) {
	fmt.Println("📺 KMGI Roku Feed Converter")
	fmt.Printf("Available sources: %d\n", len(cfg.GetEnabledSources()))
	fmt.Printf("Defaults: language %s, rating %s %s, quality %s\n",
		cfg.Feed.Defaults.Language,
		cfg.Feed.Defaults.RatingSource,
		cfg.Feed.Defaults.RatingValue,
		cfg.Feed.Defaults.Quality)

	if cfg.Feed.Convert.Classify {
		fmt.Printf("Genres: keyword classification (%d buckets, fallback %q)\n",
			len(cfg.Feed.Convert.Buckets), cfg.Feed.Convert.FallbackGenre)
	} else {
		fmt.Printf("Genres: canonical filter (default %q)\n", cfg.Feed.Defaults.Genre)
	}

	fmt.Println()
}

func printUsage() {
	fmt.Println("Usage: ./bin/converter [OPTIONS]")
	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println("  1. Config-based:   ./bin/converter -config configs/converter.yaml")
	fmt.Println("  2. Default config: ./bin/converter (reads configs/converter.yaml if exists)")
	fmt.Println("  3. CLI arguments:  ./bin/converter -input <PATH> [-output <PATH>]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/converter -config configs/converter.yaml")
	fmt.Println("  ./bin/converter -input data/direct_publisher.json -output data/search_feed.json")
	fmt.Println("  ./bin/converter -input data/direct_publisher.json -compact -no-validate")
	fmt.Println("  ./bin/converter -init-config configs/converter.yaml")
}
