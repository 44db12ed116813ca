// Package config provides configuration management for the feed converter.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoSources             = errors.New("at least one source is required")
	ErrSourceMissingInput    = errors.New("input path is required")
	ErrNoEnabledSources      = errors.New("at least one source must be enabled")
	ErrMissingLanguage       = errors.New("defaults.language is required")
	ErrNoCountries           = errors.New("defaults.countries must list at least one country")
	ErrMissingReleaseDate    = errors.New("defaults.release_date is required")
	ErrMissingDefaultGenre   = errors.New("defaults.genre is required")
	ErrMissingRatingSource   = errors.New("defaults.rating_source is required")
	ErrMissingRatingValue    = errors.New("defaults.rating_value is required")
	ErrMissingQuality        = errors.New("defaults.quality is required")
	ErrInvalidMinDuration    = errors.New("defaults.min_duration_sec must be at least 1")
	ErrMissingPlayIDMarker   = errors.New("convert.play_id_marker is required")
	ErrInvalidMovieThreshold = errors.New("convert.movie_threshold_sec must be at least 1")
	ErrMissingFallbackGenre  = errors.New("convert.classify_fallback_genre is required when classify is enabled")
	ErrBucketMissingGenre    = errors.New("classify bucket genre is required")
	ErrBucketNoKeywords      = errors.New("classify bucket must list at least one keyword")
	ErrInvalidSampleAssets   = errors.New("logging.sample_assets must be non-negative")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete converter configuration.
type Config struct {
	Feed FeedConfig `yaml:"feed"`
}

// FeedConfig contains feed conversion settings.
type FeedConfig struct {
	Sources  []SourceConfig `yaml:"sources"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Convert  ConvertConfig  `yaml:"convert"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SourceConfig names one Direct Publisher export to convert.
type SourceConfig struct {
	Name    string `yaml:"name"`
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Enabled bool   `yaml:"enabled"`
}

// OutputPath returns the configured output path, deriving one next to the
// input when none is set.
func (s *SourceConfig) OutputPath() string {
	if s.Output != "" {
		return s.Output
	}

	base := strings.TrimSuffix(s.Input, ".json")

	return base + "_search_feed.json"
}

// DefaultsConfig supplies substitute values for absent source fields.
type DefaultsConfig struct {
	Language       string   `yaml:"language"`
	Countries      []string `yaml:"countries"`
	ReleaseDate    string   `yaml:"release_date"`
	Genre          string   `yaml:"genre"`
	RatingSource   string   `yaml:"rating_source"`
	RatingValue    string   `yaml:"rating_value"`
	Quality        string   `yaml:"quality"`
	MinDurationSec int      `yaml:"min_duration_sec"`
	DefaultTag     string   `yaml:"default_tag"`
}

// ConvertConfig tunes the conversion rules.
type ConvertConfig struct {
	PlayIDMarker      string          `yaml:"play_id_marker"`
	MovieThresholdSec int             `yaml:"movie_threshold_sec"`
	ReclassifyMovies  bool            `yaml:"reclassify_movies"`
	Classify          bool            `yaml:"classify"`
	FallbackGenre     string          `yaml:"classify_fallback_genre"`
	Buckets           []KeywordBucket `yaml:"classify_buckets"`
}

// KeywordBucket maps content keywords to one canonical genre. Buckets are
// checked in order and the first match wins.
type KeywordBucket struct {
	Genre    string   `yaml:"genre"`
	Keywords []string `yaml:"keywords"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	PrettyPrint   bool `yaml:"pretty_print"`
	CreateBackup  bool `yaml:"create_backup"`
	WriteManifest bool `yaml:"write_manifest"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	SampleAssets int    `yaml:"sample_assets"`
	ShowProgress bool   `yaml:"show_progress"`
}

// Default returns the configuration used when no file is given. The
// defaults match what the station's catalog actually needs, so a bare
// `converter -input feed.json` run produces a publishable feed.
func Default() *Config {
	return &Config{
		Feed: FeedConfig{
			Defaults: DefaultsConfig{
				Language:       "en",
				Countries:      []string{"us"},
				ReleaseDate:    "2025-01-01",
				Genre:          "special",
				RatingSource:   "USA_PR",
				RatingValue:    "TV-G",
				Quality:        "hd",
				MinDurationSec: 60,
			},
			Convert: ConvertConfig{
				PlayIDMarker:      "/play/",
				MovieThresholdSec: 900,
				Classify:          false,
				FallbackGenre:     "faith",
				Buckets:           DefaultBuckets(),
			},
			Output: OutputConfig{
				PrettyPrint:   true,
				CreateBackup:  false,
				WriteManifest: true,
			},
			Logging: LoggingConfig{
				Level:        "info",
				SampleAssets: 1,
				ShowProgress: true,
			},
		},
	}
}

// DefaultBuckets returns the keyword buckets tuned for the station's
// catalog of worship services, concerts, and community programming.
func DefaultBuckets() []KeywordBucket {
	return []KeywordBucket{
		{
			Genre: "faith",
			Keywords: []string{
				"church", "sermon", "bible", "pastor", "worship", "prayer",
				"gospel", "praise", "ministry", "missionary", "baptist",
				"pastoral", "deacon", "sunday", "galilee", "scripture",
				"christmas eve", "easter", "revival",
			},
		},
		{
			Genre:    "music",
			Keywords: []string{"music", "song", "concert", "singing", "choir", "hymn"},
		},
		{
			Genre:    "holiday",
			Keywords: []string{"christmas", "holiday", "thanksgiving", "easter"},
		},
		{
			Genre:    "talk",
			Keywords: []string{"news", "interview", "talk", "discussion"},
		},
		{
			Genre:    "community",
			Keywords: []string{"community", "neighborhood", "local", "event"},
		},
		{
			Genre:    "educational",
			Keywords: []string{"education", "learn", "class", "lesson", "tutorial"},
		},
	}
}

// LoadConfig loads configuration from a YAML file. Settings absent from
// the file keep their Default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Feed.Sources) == 0 {
		return ErrNoSources
	}

	enabledCount := 0

	for i, src := range c.Feed.Sources {
		if src.Input == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingInput, i)
		}

		if src.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSources
	}

	return c.validateSettings()
}

func (c *Config) validateSettings() error {
	d := &c.Feed.Defaults

	if d.Language == "" {
		return ErrMissingLanguage
	}

	if len(d.Countries) == 0 {
		return ErrNoCountries
	}

	if d.ReleaseDate == "" {
		return ErrMissingReleaseDate
	}

	if d.Genre == "" {
		return ErrMissingDefaultGenre
	}

	if d.RatingSource == "" {
		return ErrMissingRatingSource
	}

	if d.RatingValue == "" {
		return ErrMissingRatingValue
	}

	if d.Quality == "" {
		return ErrMissingQuality
	}

	if d.MinDurationSec < 1 {
		return ErrInvalidMinDuration
	}

	cv := &c.Feed.Convert

	if cv.PlayIDMarker == "" {
		return ErrMissingPlayIDMarker
	}

	if cv.MovieThresholdSec < 1 {
		return ErrInvalidMovieThreshold
	}

	if cv.Classify {
		if cv.FallbackGenre == "" {
			return ErrMissingFallbackGenre
		}

		for i, b := range cv.Buckets {
			if b.Genre == "" {
				return fmt.Errorf("%w: bucket[%d]", ErrBucketMissingGenre, i)
			}

			if len(b.Keywords) == 0 {
				return fmt.Errorf("%w: bucket[%d] (%s)", ErrBucketNoKeywords, i, b.Genre)
			}
		}
	}

	if c.Feed.Logging.SampleAssets < 0 {
		return ErrInvalidSampleAssets
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Feed.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetEnabledSources returns only enabled sources.
func (c *Config) GetEnabledSources() []SourceConfig {
	var enabled []SourceConfig

	for _, src := range c.Feed.Sources {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}

	return enabled
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Sources: %d, Language: %s, Classify: %t}",
		len(c.Feed.Sources),
		c.Feed.Defaults.Language,
		c.Feed.Convert.Classify,
	)
}
