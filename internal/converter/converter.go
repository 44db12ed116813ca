// Package converter turns Roku Direct Publisher catalog items into Roku
// Search Feed assets.
//
// The search feed ingester enforces limits the Direct Publisher export
// does not: shorter identifiers, capped text lengths, a closed genre
// vocabulary, and mandatory ratings, play options, and durations. The
// converter applies those rules one item at a time so a single bad record
// never blocks the rest of the catalog.
package converter

import (
	"errors"
	"fmt"
	"strings"

	"kmgiroku/internal/config"
	"kmgiroku/internal/logger"
	"kmgiroku/internal/models"
	"kmgiroku/pkg/textutil"
)

// Field limits imposed by the search feed ingester.
const (
	MaxIDLength        = 50
	MaxTitleLength     = 200
	MaxShortDescLength = 200
	MaxLongDescLength  = 500
	MaxTagLength       = 20
)

// DefaultTitle replaces an absent item title.
const DefaultTitle = "Untitled"

// Conversion errors.
var (
	ErrMissingItemID        = errors.New("item has no id")
	ErrUnknownDefaultGenre  = errors.New("default genre is not in the canonical genre set")
	ErrUnknownFallbackGenre = errors.New("classify fallback genre is not in the canonical genre set")
	ErrUnknownBucketGenre   = errors.New("classify bucket genre is not in the canonical genre set")
)

// Converter maps Direct Publisher items onto search feed assets according
// to the configured defaults and conversion rules.
type Converter struct {
	defaults  config.DefaultsConfig
	convert   config.ConvertConfig
	resolver  GenreResolver
	languages []string
	countries []string
	log       *logger.Logger
}

// New creates a converter from configuration. Genre names coming from the
// config are lowercased and must belong to the canonical set, otherwise
// every asset built with them would be rejected at ingest.
func New(cfg *config.Config) (*Converter, error) {
	defaults := cfg.Feed.Defaults
	convert := cfg.Feed.Convert

	defaults.Genre = strings.ToLower(defaults.Genre)
	if !IsCanonicalGenre(defaults.Genre) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefaultGenre, defaults.Genre)
	}

	var resolver GenreResolver = FilterResolver{Fallback: defaults.Genre}

	if convert.Classify {
		fallback := strings.ToLower(convert.FallbackGenre)
		if !IsCanonicalGenre(fallback) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFallbackGenre, fallback)
		}

		buckets := make([]config.KeywordBucket, len(convert.Buckets))
		copy(buckets, convert.Buckets)

		for i := range buckets {
			buckets[i].Genre = strings.ToLower(buckets[i].Genre)
			if !IsCanonicalGenre(buckets[i].Genre) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownBucketGenre, buckets[i].Genre)
			}

			keywords := make([]string, len(buckets[i].Keywords))
			for j, kw := range buckets[i].Keywords {
				keywords[j] = strings.ToLower(kw)
			}

			buckets[i].Keywords = keywords
		}

		resolver = NewKeywordResolver(buckets, fallback)
	}

	countries := make([]string, len(defaults.Countries))
	for i, country := range defaults.Countries {
		countries[i] = strings.ToLower(country)
	}

	return &Converter{
		defaults:  defaults,
		convert:   convert,
		resolver:  resolver,
		languages: []string{defaults.Language},
		countries: countries,
		log:       logger.NewLogger(cfg.Feed.Logging.Level),
	}, nil
}

// ConvertItem maps one source item onto a search feed asset. The declared
// type is the source category the item came from, models.TypeMovie or
// models.TypeShortForm; pass an empty string to derive the type from the
// item's duration. Items without an id cannot be converted.
func (c *Converter) ConvertItem(item *models.DirectPublisherItem, declaredType string) (*models.Asset, error) {
	if strings.TrimSpace(item.ID) == "" {
		return nil, ErrMissingItemID
	}

	title := item.Title
	if title == "" {
		title = DefaultTitle
	}

	title = textutil.Truncate(title, MaxTitleLength)

	shortDesc := item.ShortDescription
	if shortDesc == "" {
		shortDesc = title
	}

	shortDesc = textutil.Truncate(shortDesc, MaxShortDescLength)

	longDesc := textutil.Truncate(item.LongDescription, MaxLongDescLength)

	releaseDate := item.ReleaseDate
	if releaseDate == "" {
		releaseDate = c.defaults.ReleaseDate
	}

	duration := 0
	if item.Content != nil {
		duration = int(item.Content.Duration)
	}

	if duration <= 0 {
		duration = c.defaults.MinDurationSec
	}

	asset := &models.Asset{
		ID:                textutil.Clip(item.ID, MaxIDLength),
		Type:              c.classifyType(declaredType, duration),
		Titles:            c.localized(title),
		ShortDescriptions: c.localized(shortDesc),
		ReleaseDate:       releaseDate,
		Genres:            c.resolver.Resolve(item),
		AdvisoryRatings:   c.advisoryRatings(item.Rating),
		Images:            c.images(item),
		DurationInSeconds: duration,
		Content: models.AssetContent{
			PlayOptions: c.playOptions(item),
		},
	}

	if longDesc != "" {
		asset.LongDescriptions = c.localized(longDesc)
	}

	if tags := c.tags(item.Tags); len(tags) > 0 {
		asset.Tags = tags
	}

	return asset, nil
}

// classifyType picks the asset type. A declared shortform is always
// trusted. A declared movie is trusted unless reclassification is on, in
// which case it is re-derived from the duration like an undeclared item.
func (c *Converter) classifyType(declared string, duration int) string {
	switch declared {
	case models.TypeShortForm:
		return models.TypeShortForm
	case models.TypeMovie:
		if !c.convert.ReclassifyMovies {
			return models.TypeMovie
		}
	}

	if duration > c.convert.MovieThresholdSec {
		return models.TypeMovie
	}

	return models.TypeShortForm
}

func (c *Converter) localized(value string) []models.LocalizedText {
	return []models.LocalizedText{
		{Value: value, Languages: c.languages},
	}
}

func (c *Converter) images(item *models.DirectPublisherItem) []models.Image {
	images := make([]models.Image, 0, 1)

	if item.Thumbnail != "" {
		images = append(images, models.Image{
			Type: models.ImageTypeMain,
			URL:  item.Thumbnail,
		})
	}

	return images
}

// tags cleans and clips the source tags. Tags that clean down to nothing
// are dropped. When no tag survives and a default tag is configured, the
// default is used; otherwise the asset carries no tags at all.
func (c *Converter) tags(src models.StringList) []string {
	var tags []string

	for _, t := range src {
		cleaned := textutil.CleanTag(t)
		if cleaned == "" {
			continue
		}

		tags = append(tags, textutil.Clip(cleaned, MaxTagLength))
	}

	if len(tags) == 0 && c.defaults.DefaultTag != "" {
		return []string{c.defaults.DefaultTag}
	}

	return tags
}
