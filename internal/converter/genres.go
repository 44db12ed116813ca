package converter

import (
	"strings"

	"kmgiroku/internal/config"
	"kmgiroku/internal/models"
	"kmgiroku/pkg/textutil"
)

// canonicalGenreList holds every genre name the search feed ingester
// accepts, lowercase. Assets carrying any other genre are rejected at
// ingest, so the converter never emits a name outside this list.
var canonicalGenreList = []string{
	"action", "action sports", "adventure", "aerobics", "agriculture", "animals",
	"animated", "anime", "anthology", "archery", "arm wrestling", "art", "arts/crafts",
	"artistic gymnastics", "artistic swimming", "athletics", "auction", "auto",
	"auto racing", "aviation", "awards", "badminton", "ballet", "baseball",
	"basketball", "3x3 basketball", "beach soccer", "beach volleyball", "biathlon",
	"bicycle", "bicycle racing", "billiards", "biography", "blackjack", "bmx racing",
	"boat", "boat racing", "bobsled", "bodybuilding", "bowling", "boxing",
	"bullfighting", "bus./financial", "canoe", "card games", "ceremony", "cheerleading",
	"children", "children-music", "children-special", "children-talk", "collectibles",
	"comedy", "comedy drama", "community", "computers", "canoe/kayak", "consumer",
	"cooking", "cricket", "crime", "crime drama", "curling", "cycling", "dance",
	"dark comedy", "darts", "debate", "diving", "docudrama", "documentary",
	"dog racing", "dog show", "dog sled", "drag racing", "drama", "educational",
	"entertainment", "environment", "equestrian", "erotic", "event", "exercise",
	"fantasy", "faith", "fashion", "fencing", "field hockey", "figure skating",
	"fishing", "football", "food", "fundraiser", "gaelic football", "game show",
	"gaming", "gay/lesbian", "golf", "gymnastics", "handball", "health",
	"historical drama", "history", "hockey", "holiday", "holiday music",
	"holiday music special", "holiday special", "holiday-children",
	"holiday-children special", "home improvement", "horror", "horse", "house/garden",
	"how-to", "hunting", "hurling", "hydroplane racing", "indoor soccer", "interview",
	"intl soccer", "judo", "karate", "kayaking", "lacrosse", "law", "live", "luge",
	"martial arts", "medical", "military", "miniseries", "mixed martial arts",
	"modern pentathlon", "motorcycle", "motorcycle racing", "motorsports",
	"mountain biking", "music", "music special", "music talk", "musical",
	"musical comedy", "mystery", "nature", "news", "newsmagazine", "olympics",
	"opera", "outdoors", "parade", "paranormal", "parenting", "performing arts",
	"playoff sports", "poker", "politics", "polo", "pool", "pro wrestling",
	"public affairs", "racquet", "reality", "religious", "ringuette", "road cycling",
	"rodeo", "roller derby", "romance", "romantic comedy", "rowing", "rugby",
	"running", "rhythmic gymnastics", "sailing", "science", "science fiction",
	"self improvement", "shooting", "shopping", "sitcom", "skateboarding", "skating",
	"skeleton", "skiing", "snooker", "snowboarding", "snowmobile", "soap",
	"soap special", "soap talk", "soccer", "softball", "special", "speed skating",
	"sport climbing", "sports", "sports talk", "squash", "standup", "sumo wrestling",
	"surfing", "suspense", "swimming", "table tennis", "taekwondo", "talk",
	"technology", "tennis", "theater", "thriller", "track/field", "track cycling",
	"travel", "trampoline", "triathlon", "variety", "volleyball", "war", "water polo",
	"water skiing", "watersports", "weather", "weightlifting", "western", "wrestling",
	"yacht racing",
}

var canonicalGenres = make(map[string]struct{}, len(canonicalGenreList))

func init() {
	for _, g := range canonicalGenreList {
		canonicalGenres[g] = struct{}{}
	}
}

// IsCanonicalGenre reports whether name belongs to the accepted genre set.
// Membership is case-insensitive.
func IsCanonicalGenre(name string) bool {
	_, ok := canonicalGenres[strings.ToLower(name)]

	return ok
}

// GenreResolver derives the canonical genre list for one source item.
// Implementations must return at least one genre from the canonical set.
type GenreResolver interface {
	Resolve(item *models.DirectPublisherItem) []string
}

// FilterResolver keeps the source genres found in the canonical set,
// lowercased. Items left with no genre get the fallback.
type FilterResolver struct {
	Fallback string
}

// Resolve implements GenreResolver.
func (r FilterResolver) Resolve(item *models.DirectPublisherItem) []string {
	var genres []string

	for _, g := range item.Genres {
		name := strings.ToLower(g)
		if IsCanonicalGenre(name) {
			genres = append(genres, name)
		}
	}

	if len(genres) == 0 {
		return []string{r.Fallback}
	}

	return genres
}

// KeywordResolver assigns one genre by matching keyword buckets against
// the item's title, short description, and tags. The text is
// whitespace-normalized so multi-word keywords match across line breaks.
// Buckets are checked in order and the first keyword hit wins. Items
// matching no bucket get the fallback, which suits catalogs whose source
// genres are unusable.
type KeywordResolver struct {
	buckets  []config.KeywordBucket
	fallback string
}

// NewKeywordResolver creates a resolver over the given buckets. Bucket
// genres and keywords are expected lowercase.
func NewKeywordResolver(buckets []config.KeywordBucket, fallback string) *KeywordResolver {
	return &KeywordResolver{
		buckets:  buckets,
		fallback: fallback,
	}
}

// Resolve implements GenreResolver.
func (r *KeywordResolver) Resolve(item *models.DirectPublisherItem) []string {
	text := item.Title + " " + item.ShortDescription + " " + strings.Join(item.Tags, " ")
	text = strings.ToLower(textutil.NormalizeWhitespace(text))

	for _, b := range r.buckets {
		for _, kw := range b.Keywords {
			if kw != "" && strings.Contains(text, kw) {
				return []string{b.Genre}
			}
		}
	}

	return []string{r.fallback}
}
