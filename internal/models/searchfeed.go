package models

// Search feed envelope literals required by the Roku ingester.
const (
	FeedVersion     = "1"
	DefaultLicense  = "free"
	ImageTypeMain   = "main"
	ImageTypeBackup = "background"
)

// Asset types accepted by the search feed.
const (
	TypeMovie     = "movie"
	TypeShortForm = "shortform"
)

// SearchFeed is the root of a Roku Search Feed document.
type SearchFeed struct {
	Version                      string   `json:"version"`
	DefaultLanguage              string   `json:"defaultLanguage"`
	DefaultAvailabilityCountries []string `json:"defaultAvailabilityCountries"`
	Assets                       []Asset  `json:"assets"`
}

// Asset is one canonical search feed record for a single playable item.
type Asset struct {
	ID                string           `json:"id"`
	Type              string           `json:"type"`
	Titles            []LocalizedText  `json:"titles"`
	ShortDescriptions []LocalizedText  `json:"shortDescriptions"`
	LongDescriptions  []LocalizedText  `json:"longDescriptions,omitempty"`
	ReleaseDate       string           `json:"releaseDate"`
	Genres            []string         `json:"genres"`
	Tags              []string         `json:"tags,omitempty"`
	AdvisoryRatings   []AdvisoryRating `json:"advisoryRatings"`
	Images            []Image          `json:"images"`
	DurationInSeconds int              `json:"durationInSeconds"`
	Content           AssetContent     `json:"content"`
}

// LocalizedText pairs one text value with the languages it applies to.
type LocalizedText struct {
	Value     string   `json:"value"`
	Languages []string `json:"languages"`
}

// AdvisoryRating is one parental guidance entry in search feed form.
type AdvisoryRating struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// Image points at one artwork URL. Type is "main" or "background".
type Image struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// AssetContent wraps the play options of an asset.
type AssetContent struct {
	PlayOptions []PlayOption `json:"playOptions"`
}

// PlayOption is one playback variant of an asset.
type PlayOption struct {
	License string `json:"license"`
	Quality string `json:"quality"`
	PlayID  string `json:"playId"`
}

// MovieCount returns how many assets carry the movie type.
func (f *SearchFeed) MovieCount() int {
	n := 0

	for _, a := range f.Assets {
		if a.Type == TypeMovie {
			n++
		}
	}

	return n
}

// ShortFormCount returns how many assets carry the shortform type.
func (f *SearchFeed) ShortFormCount() int {
	n := 0

	for _, a := range f.Assets {
		if a.Type == TypeShortForm {
			n++
		}
	}

	return n
}
