// Package validator checks generated search feed documents against the
// ingester's acceptance rules.
package validator

import (
	"fmt"
	"unicode/utf8"

	"kmgiroku/internal/converter"
	"kmgiroku/internal/models"
)

// ValidationError represents one rule breach on one asset.
type ValidationError struct {
	AssetID string
	Field   string
	Message string
	Index   int
}

// ValidationResult contains validation results for one feed document.
// Errors mark documents the ingester would reject; warnings mark catalog
// quality problems that still pass ingest.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	Stats    ValidationStats
	IsValid  bool
}

// ValidationStats contains feed-level counters.
type ValidationStats struct {
	Assets          int
	Movies          int
	ShortForm       int
	InvalidAssets   int
	DuplicateIDs    int
	MissingImages   int
	MissingDuration int
	LongTitles      int
	LongShortDescs  int
}

// FeedValidator validates search feed documents.
type FeedValidator struct{}

// NewFeedValidator creates a new validator.
func NewFeedValidator() *FeedValidator {
	return &FeedValidator{}
}

// ValidateFeed checks the envelope and every asset of a search feed.
func (v *FeedValidator) ValidateFeed(feed *models.SearchFeed) *ValidationResult {
	result := &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationError{},
		Warnings: []string{},
		Stats:    ValidationStats{},
	}

	v.checkEnvelope(feed, result)

	seen := make(map[string]int, len(feed.Assets))

	for i := range feed.Assets {
		asset := &feed.Assets[i]
		result.Stats.Assets++

		switch asset.Type {
		case models.TypeMovie:
			result.Stats.Movies++
		case models.TypeShortForm:
			result.Stats.ShortForm++
		}

		if first, dup := seen[asset.ID]; dup {
			result.Stats.DuplicateIDs++
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate asset id %q at index %d (first seen at index %d)", asset.ID, i, first))
		} else {
			seen[asset.ID] = i
		}

		errs := v.checkAsset(asset, i, result)
		if len(errs) > 0 {
			result.IsValid = false
			result.Stats.InvalidAssets++
			result.Errors = append(result.Errors, errs...)
		}
	}

	if len(result.Errors) > 0 {
		result.IsValid = false
	}

	return result
}

func (v *FeedValidator) checkEnvelope(feed *models.SearchFeed, result *ValidationResult) {
	if feed.Version != models.FeedVersion {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("version must be %q, got %q", models.FeedVersion, feed.Version),
		})
	}

	if feed.DefaultLanguage == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "defaultLanguage",
			Message: "defaultLanguage is empty",
		})
	}

	if len(feed.DefaultAvailabilityCountries) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "defaultAvailabilityCountries",
			Message: "defaultAvailabilityCountries is empty",
		})
	}
}

// checkAsset validates one asset and updates the feed-level stats.
func (v *FeedValidator) checkAsset(asset *models.Asset, index int, result *ValidationResult) []ValidationError {
	var errs []ValidationError

	fail := func(field, message string) {
		errs = append(errs, ValidationError{
			AssetID: asset.ID,
			Field:   field,
			Message: message,
			Index:   index,
		})
	}

	if asset.ID == "" {
		fail("id", "id is empty")
	} else if n := utf8.RuneCountInString(asset.ID); n > converter.MaxIDLength {
		fail("id", fmt.Sprintf("id is %d chars, max %d", n, converter.MaxIDLength))
	}

	if asset.Type != models.TypeMovie && asset.Type != models.TypeShortForm {
		fail("type", fmt.Sprintf("unknown asset type %q", asset.Type))
	}

	v.checkTexts(asset, fail, result)

	if len(asset.Genres) == 0 {
		fail("genres", "genres is empty")
	}

	for _, g := range asset.Genres {
		if !converter.IsCanonicalGenre(g) {
			fail("genres", fmt.Sprintf("genre %q is not in the canonical set", g))
		}
	}

	if len(asset.AdvisoryRatings) == 0 {
		fail("advisoryRatings", "advisoryRatings is empty")
	}

	for _, r := range asset.AdvisoryRatings {
		if r.Source == "" || r.Value == "" {
			fail("advisoryRatings", "advisory rating needs both source and value")
		}
	}

	if len(asset.Content.PlayOptions) == 0 {
		fail("playOptions", "playOptions is empty")
	}

	for _, opt := range asset.Content.PlayOptions {
		if opt.License == "" {
			fail("playOptions", "play option has no license")
		}

		if opt.PlayID == "" {
			fail("playOptions", "play option has no playId")
		}
	}

	if asset.DurationInSeconds < 1 {
		fail("durationInSeconds", fmt.Sprintf("duration must be at least 1, got %d", asset.DurationInSeconds))
	}

	if asset.DurationInSeconds == 0 {
		result.Stats.MissingDuration++
	}

	for _, tag := range asset.Tags {
		if tag == "" {
			fail("tags", "tag is empty")
		} else if n := utf8.RuneCountInString(tag); n > converter.MaxTagLength {
			fail("tags", fmt.Sprintf("tag %q is %d chars, max %d", tag, n, converter.MaxTagLength))
		}
	}

	v.checkImages(asset, fail, result)

	if asset.ReleaseDate == "" {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("asset %q has no release date", asset.ID))
	}

	return errs
}

func (v *FeedValidator) checkTexts(asset *models.Asset, fail func(field, message string), result *ValidationResult) {
	if len(asset.Titles) == 0 {
		fail("titles", "titles is empty")
	}

	for _, title := range asset.Titles {
		if title.Value == "" {
			fail("titles", "title value is empty")
		}

		if n := utf8.RuneCountInString(title.Value); n > converter.MaxTitleLength {
			result.Stats.LongTitles++

			fail("titles", fmt.Sprintf("title is %d chars, max %d", n, converter.MaxTitleLength))
		}
	}

	if len(asset.ShortDescriptions) == 0 {
		fail("shortDescriptions", "shortDescriptions is empty")
	}

	for _, desc := range asset.ShortDescriptions {
		if desc.Value == "" {
			fail("shortDescriptions", "short description value is empty")
		}

		if n := utf8.RuneCountInString(desc.Value); n > converter.MaxShortDescLength {
			result.Stats.LongShortDescs++

			fail("shortDescriptions", fmt.Sprintf("short description is %d chars, max %d", n, converter.MaxShortDescLength))
		}
	}

	// Long descriptions are optional, but present entries obey the limit.
	for _, desc := range asset.LongDescriptions {
		if n := utf8.RuneCountInString(desc.Value); n > converter.MaxLongDescLength {
			fail("longDescriptions", fmt.Sprintf("long description is %d chars, max %d", n, converter.MaxLongDescLength))
		}
	}
}

func (v *FeedValidator) checkImages(asset *models.Asset, fail func(field, message string), result *ValidationResult) {
	if len(asset.Images) == 0 {
		result.Stats.MissingImages++
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("asset %q has no images", asset.ID))

		return
	}

	for _, img := range asset.Images {
		if img.URL == "" {
			fail("images", "image has no url")
		}

		if img.Type != models.ImageTypeMain && img.Type != models.ImageTypeBackup {
			fail("images", fmt.Sprintf("unknown image type %q", img.Type))
		}
	}
}

// String returns string representation of validation result.
func (r *ValidationResult) String() string {
	status := "✅ VALID"
	if !r.IsValid {
		status = "❌ INVALID"
	}

	return fmt.Sprintf(
		"%s | Assets: %d | Movies: %d | Shortform: %d | Errors: %d | Warnings: %d",
		status,
		r.Stats.Assets,
		r.Stats.Movies,
		r.Stats.ShortForm,
		len(r.Errors),
		len(r.Warnings),
	)
}

// PrintErrors prints validation errors in readable format.
func (r *ValidationResult) PrintErrors() {
	if len(r.Errors) == 0 {
		return
	}

	fmt.Println("❌ Validation Errors:")

	for _, err := range r.Errors {
		if err.AssetID != "" {
			fmt.Printf("  Asset %q (index %d)", err.AssetID, err.Index)
		} else {
			fmt.Print("  Feed")
		}

		if err.Field != "" {
			fmt.Printf(" [%s]", err.Field)
		}

		fmt.Printf(": %s\n", err.Message)
	}
}

// PrintWarnings prints validation warnings.
func (r *ValidationResult) PrintWarnings() {
	if len(r.Warnings) == 0 {
		return
	}

	fmt.Println("⚠️  Validation Warnings:")

	for _, warn := range r.Warnings {
		fmt.Printf("  %s\n", warn)
	}
}
