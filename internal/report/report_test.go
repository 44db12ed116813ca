package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"kmgiroku/internal/models"
	"kmgiroku/internal/validator"
)

func TestRenderTable_Alignment(t *testing.T) {
	got := renderTable([]string{"Metric", "Value"}, [][]string{
		{"語語", "1"},
	})

	expected := "| Metric | Value |\n" +
		"| ------ | ----- |\n" +
		"| 語語   | 1     |\n"

	if got != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
	}
}

func TestRenderTable_MinimumColumnWidth(t *testing.T) {
	got := renderTable([]string{"A", "B"}, [][]string{
		{"x", "y"},
	})

	expected := "| A   | B   |\n" +
		"| --- | --- |\n" +
		"| x   | y   |\n"

	if got != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
	}
}

func TestRenderRun_Contents(t *testing.T) {
	sum := &RunSummary{
		Source:      "feed.json",
		Output:      "feed_search_feed.json",
		Provider:    "KMGI",
		MoviesIn:    12,
		ShortFormIn: 30,
		Converted:   41,
		Failed:      1,
		OutputBytes: 2048,
		Elapsed:     1500 * time.Millisecond,
	}

	got := RenderRun(sum)

	for _, want := range []string{"KMGI", "Movies in", "12", "Assets written", "41", "Items skipped", "2.0 KB", "1.50s"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderRun_UnknownProvider(t *testing.T) {
	got := RenderRun(&RunSummary{})

	if !strings.Contains(got, "Unknown") {
		t.Errorf("Expected placeholder provider, got:\n%s", got)
	}
}

func TestRenderValidation_Contents(t *testing.T) {
	result := &validator.ValidationResult{
		Errors: []validator.ValidationError{
			{AssetID: "a", Field: "id", Message: "id is empty"},
		},
		Warnings: []string{`asset "b" has no images`},
		Stats: validator.ValidationStats{
			Assets:        10,
			Movies:        4,
			ShortForm:     6,
			MissingImages: 2,
		},
	}

	got := RenderValidation(result)

	for _, want := range []string{"Assets", "10", "Missing images", "Errors", "Warnings"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected validation table to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderSamples(t *testing.T) {
	feed := &models.SearchFeed{
		Assets: []models.Asset{
			{ID: "movie-1", Type: models.TypeMovie},
			{ID: "movie-2", Type: models.TypeMovie},
			{ID: "short-1", Type: models.TypeShortForm},
		},
	}

	got := RenderSamples(feed, 1)

	if strings.Count(got, "--- Sample movie ---") != 1 {
		t.Errorf("Expected exactly one movie sample, got:\n%s", got)
	}
	if strings.Count(got, "--- Sample shortform ---") != 1 {
		t.Errorf("Expected exactly one shortform sample, got:\n%s", got)
	}
	if strings.Contains(got, "movie-2") {
		t.Errorf("Expected second movie to be skipped, got:\n%s", got)
	}

	start := strings.Index(got, "{")
	end := strings.Index(got, "\n--- Sample shortform ---")
	if start < 0 || end < 0 || end <= start {
		t.Fatalf("Could not locate sample JSON in:\n%s", got)
	}

	var asset models.Asset
	if err := json.Unmarshal([]byte(got[start:end]), &asset); err != nil {
		t.Fatalf("Expected sample to be valid JSON, got error: %v", err)
	}
	if asset.ID != "movie-1" {
		t.Errorf("Expected sample asset movie-1, got %q", asset.ID)
	}
}

func TestRenderSamples_Empty(t *testing.T) {
	if got := RenderSamples(&models.SearchFeed{}, 1); got != "" {
		t.Errorf("Expected empty output for empty feed, got %q", got)
	}

	feed := &models.SearchFeed{Assets: []models.Asset{{ID: "a", Type: models.TypeMovie}}}
	if got := RenderSamples(feed, 0); got != "" {
		t.Errorf("Expected empty output when sampling is disabled, got %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{"Bytes", 512, "512 B"},
		{"Kilobytes", 1536, "1.5 KB"},
		{"Megabytes", 3 * 1024 * 1024, "3.0 MB"},
		{"Zero", 0, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatBytes(tt.n); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
