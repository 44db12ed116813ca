// Package report renders human-readable summaries of conversion runs and
// validation results.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"kmgiroku/internal/models"
	"kmgiroku/internal/validator"
)

// RunSummary collects the figures reported after converting one source.
type RunSummary struct {
	Source      string
	Output      string
	Provider    string
	MoviesIn    int
	ShortFormIn int
	Converted   int
	Failed      int
	OutputBytes int
	Elapsed     time.Duration
}

// RenderRun returns an aligned table summarizing one conversion run.
func RenderRun(sum *RunSummary) string {
	provider := sum.Provider
	if provider == "" {
		provider = "Unknown"
	}

	rows := [][]string{
		{"Provider", provider},
		{"Movies in", strconv.Itoa(sum.MoviesIn)},
		{"Short form in", strconv.Itoa(sum.ShortFormIn)},
		{"Assets written", strconv.Itoa(sum.Converted)},
		{"Items skipped", strconv.Itoa(sum.Failed)},
		{"Output size", formatBytes(sum.OutputBytes)},
		{"Elapsed", fmt.Sprintf("%.2fs", sum.Elapsed.Seconds())},
	}

	return renderTable([]string{"Metric", "Value"}, rows)
}

// RenderValidation returns an aligned table of the validator's counters.
func RenderValidation(result *validator.ValidationResult) string {
	rows := [][]string{
		{"Assets", strconv.Itoa(result.Stats.Assets)},
		{"Movies", strconv.Itoa(result.Stats.Movies)},
		{"Short form", strconv.Itoa(result.Stats.ShortForm)},
		{"Invalid assets", strconv.Itoa(result.Stats.InvalidAssets)},
		{"Duplicate IDs", strconv.Itoa(result.Stats.DuplicateIDs)},
		{"Missing images", strconv.Itoa(result.Stats.MissingImages)},
		{"Missing duration", strconv.Itoa(result.Stats.MissingDuration)},
		{"Titles > 200 chars", strconv.Itoa(result.Stats.LongTitles)},
		{"Short descs > 200 chars", strconv.Itoa(result.Stats.LongShortDescs)},
		{"Errors", strconv.Itoa(len(result.Errors))},
		{"Warnings", strconv.Itoa(len(result.Warnings))},
	}

	return renderTable([]string{"Check", "Count"}, rows)
}

// RenderSamples pretty-prints the first perType assets of each type, the
// quickest way to eyeball a generated feed without opening it.
func RenderSamples(feed *models.SearchFeed, perType int) string {
	if perType <= 0 || len(feed.Assets) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(renderSampleSection(feed, models.TypeMovie, "Sample movie", perType))
	sb.WriteString(renderSampleSection(feed, models.TypeShortForm, "Sample shortform", perType))

	return sb.String()
}

func renderSampleSection(feed *models.SearchFeed, assetType, label string, limit int) string {
	var sb strings.Builder

	count := 0

	for i := range feed.Assets {
		if feed.Assets[i].Type != assetType {
			continue
		}

		data, err := json.MarshalIndent(&feed.Assets[i], "", "  ")
		if err != nil {
			continue
		}

		sb.WriteString(fmt.Sprintf("--- %s ---\n", label))
		sb.Write(data)
		sb.WriteString("\n")

		count++
		if count >= limit {
			break
		}
	}

	return sb.String()
}

func formatBytes(n int) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/1024/1024)
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// renderTable builds an aligned markdown table. Column widths use display
// width so multibyte titles keep the pipes lined up.
func renderTable(headers []string, rows [][]string) string {
	colCount := len(headers)

	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	for i := 0; i < len(headers) && i < colCount; i++ {
		if w := runewidth.StringWidth(headers[i]); w > colWidths[i] {
			colWidths[i] = w
		}
	}

	for _, row := range rows {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	writeRow := func(cells []string) {
		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			content := ""
			if j < len(cells) {
				content = cells[j]
			}

			sb.WriteString(content)

			padding := colWidths[j] - runewidth.StringWidth(content)
			if padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(headers)

	sb.WriteString("|")

	for j := 0; j < colCount; j++ {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", colWidths[j]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}
