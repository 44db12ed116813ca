package converter

import (
	"fmt"

	"kmgiroku/internal/models"
)

// ItemError records one isolated per-item conversion failure.
type ItemError struct {
	Category string
	ID       string
	Err      error
}

// Error implements error.
func (e *ItemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Category, e.ID, e.Err)
}

// Unwrap exposes the underlying conversion error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// Result aggregates the outcome of converting one Direct Publisher feed.
type Result struct {
	Provider    string
	MoviesIn    int
	ShortFormIn int
	Converted   int
	Failed      int
	Errors      []*ItemError
}

// ConvertFeed converts every item of a Direct Publisher feed into one
// search feed document. Items that fail to convert are skipped and
// recorded in the result; they never abort the run. Assets keep the
// source order, movies first.
func (c *Converter) ConvertFeed(feed *models.DirectPublisherFeed) (*models.SearchFeed, *Result) {
	result := &Result{
		Provider:    feed.ProviderName,
		MoviesIn:    len(feed.Movies),
		ShortFormIn: len(feed.ShortFormVideos),
	}

	assets := make([]models.Asset, 0, feed.ItemCount())
	assets = c.convertCategory(assets, feed.Movies, models.TypeMovie, result)
	assets = c.convertCategory(assets, feed.ShortFormVideos, models.TypeShortForm, result)

	c.log.Debug("feed converted",
		"provider", feed.ProviderName,
		"assets", len(assets),
		"failed", result.Failed)

	out := &models.SearchFeed{
		Version:                      models.FeedVersion,
		DefaultLanguage:              c.defaults.Language,
		DefaultAvailabilityCountries: c.countries,
		Assets:                       assets,
	}

	return out, result
}

func (c *Converter) convertCategory(assets []models.Asset, items []models.DirectPublisherItem, category string, result *Result) []models.Asset {
	for i := range items {
		asset, err := c.ConvertItem(&items[i], category)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, &ItemError{
				Category: category,
				ID:       itemLabel(&items[i]),
				Err:      err,
			})

			c.log.Debug("item skipped", "category", category, "id", itemLabel(&items[i]), "error", err)

			continue
		}

		assets = append(assets, *asset)
		result.Converted++
	}

	return assets
}

// itemLabel names an item for error reporting: the id when present, the
// title as a best effort for items that failed for lacking one.
func itemLabel(item *models.DirectPublisherItem) string {
	if item.ID != "" {
		return item.ID
	}

	if item.Title != "" {
		return item.Title
	}

	return "?"
}
