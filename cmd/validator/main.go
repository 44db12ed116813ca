// Package main provides the search feed validator command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"kmgiroku/internal/feedio"
	"kmgiroku/internal/logger"
	"kmgiroku/internal/report"
	"kmgiroku/internal/validator"
	"kmgiroku/pkg/manifest"
)

func main() {
	// 1. Define Command-Line Flags
	// ----------------------------
	feedPath := flag.String("feed", "", "Search feed JSON file to validate")
	manifestPath := flag.String("manifest", "", "Manifest sidecar to verify (defaults to <feed>.manifest.json)")
	skipManifest := flag.Bool("no-manifest", false, "Skip manifest verification")
	samples := flag.Int("samples", 0, "Print the first N assets of each type")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	// Initialize Logger
	log := logger.NewLogger("info")
	if *verbose {
		log.SetLevel("debug")
	}

	// Validate Inputs
	if *feedPath == "" && flag.NArg() == 1 {
		*feedPath = flag.Arg(0)
	}

	if *feedPath == "" {
		log.Error("Please provide a feed file with -feed flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Info("🚀 Starting search feed validation")
	log.Info(fmt.Sprintf("📍 Feed: %s", *feedPath))

	// 2. Reading
	// ----------
	log.Info("Phase 1: Reading feed...")

	startTime := time.Now()

	feed, raw, err := feedio.ReadSearchFeed(*feedPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Read failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Read %d assets (%d movies, %d shortform, %d bytes) in %v",
		len(feed.Assets), feed.MovieCount(), feed.ShortFormCount(), len(raw), time.Since(startTime)))

	// 3. Validation
	// -------------
	log.Info("Phase 2: Validating assets...")

	result := validator.NewFeedValidator().ValidateFeed(feed)

	result.PrintWarnings()

	if !result.IsValid {
		result.PrintErrors()
	}

	// 4. Manifest Verification
	// ------------------------
	manifestOK := true

	if !*skipManifest {
		log.Info("Phase 3: Verifying manifest...")

		manifestOK = verifyManifest(log, *manifestPath, *feedPath, raw)
	}

	// 5. Final Report
	// ---------------
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Validation Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Print(report.RenderValidation(result))
	fmt.Println("------------------------------------------------")
	fmt.Printf("%s\n", result)

	if *samples > 0 {
		fmt.Println()
		fmt.Print(report.RenderSamples(feed, *samples))
	}

	if !result.IsValid || !manifestOK {
		os.Exit(1)
	}

	log.Info("✨ Feed is valid!")
}

// verifyManifest checks the feed bytes against their manifest sidecar. A
// missing sidecar is only an error when a path was given explicitly.
func verifyManifest(log *logger.Logger, manifestPath, feedPath string, raw []byte) bool {
	path := manifestPath
	if path == "" {
		path = manifest.PathFor(feedPath)

		if _, statErr := os.Stat(path); statErr != nil {
			log.Warn(fmt.Sprintf("⚠️  No manifest found at %s, skipping verification", path))

			return true
		}
	}

	m, err := manifest.Load(path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Manifest load failed: %v", err))

		return false
	}

	if err := m.Verify(raw); err != nil {
		log.Error(fmt.Sprintf("❌ Manifest verification failed: %v", err))

		return false
	}

	log.Info(fmt.Sprintf("✅ Manifest verified (generated %s, %d assets)",
		m.GeneratedAt.Format(time.RFC3339), m.Assets))

	return true
}

func printUsage() {
	fmt.Println("Usage: ./bin/validator [OPTIONS] [feed.json]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/validator -feed data/search_feed.json")
	fmt.Println("  ./bin/validator -feed data/search_feed.json -manifest data/search_feed.json.manifest.json")
	fmt.Println("  ./bin/validator -feed data/search_feed.json -no-manifest -samples 1")
}
