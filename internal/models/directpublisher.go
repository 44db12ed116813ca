// Package models defines the Direct Publisher source schema and the
// Roku Search Feed target schema.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DirectPublisherFeed is the root of a Roku Direct Publisher catalog.
type DirectPublisherFeed struct {
	ProviderName    string                `json:"providerName"`
	LastUpdated     string                `json:"lastUpdated"`
	Language        string                `json:"language"`
	Movies          []DirectPublisherItem `json:"movies"`
	ShortFormVideos []DirectPublisherItem `json:"shortFormVideos"`
}

// ItemCount returns the total number of items across both categories.
func (f *DirectPublisherFeed) ItemCount() int {
	return len(f.Movies) + len(f.ShortFormVideos)
}

// DirectPublisherItem is one movie or short-form video record as exported
// by Direct Publisher. Only the id is mandatory; every other field may be
// absent or malformed in real exports.
type DirectPublisherItem struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	ShortDescription string       `json:"shortDescription"`
	LongDescription  string       `json:"longDescription"`
	ReleaseDate      string       `json:"releaseDate"`
	Genres           StringList   `json:"genres"`
	Tags             StringList   `json:"tags"`
	Thumbnail        string       `json:"thumbnail"`
	Rating           *ItemRating  `json:"rating"`
	Content          *ItemContent `json:"content"`
}

// ItemRating is the Direct Publisher rating sub-record.
type ItemRating struct {
	RatingSource string `json:"ratingSource"`
	Rating       string `json:"rating"`
}

// ItemContent holds the playable streams of one item.
type ItemContent struct {
	DateAdded string  `json:"dateAdded"`
	Videos    []Video `json:"videos"`
	Duration  Seconds `json:"duration"`
}

// Video is one deliverable stream variant.
type Video struct {
	URL      string  `json:"url"`
	Quality  string  `json:"quality"`
	Duration Seconds `json:"duration"`
}

// StringList decodes a field that should be a JSON array of strings but is
// sometimes delivered as a single string or null. Shapes that cannot be
// read as strings decode to an empty list so one malformed field never
// fails the whole document.
type StringList []string

// UnmarshalJSON implements lenient decoding for StringList.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many

		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = StringList{one}

		return nil
	}

	*l = nil

	return nil
}

// Seconds decodes a duration that should be a JSON number but is sometimes
// delivered as a numeric string or null. Unreadable values decode to zero,
// which downstream code treats as missing.
type Seconds int

// UnmarshalJSON implements lenient decoding for Seconds.
func (s *Seconds) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = 0

		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = Seconds(f)

		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if v, convErr := strconv.Atoi(strings.TrimSpace(str)); convErr == nil {
			*s = Seconds(v)

			return nil
		}
	}

	*s = 0

	return nil
}
