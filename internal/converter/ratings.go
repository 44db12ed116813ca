package converter

import "kmgiroku/internal/models"

// ratingSourceMap converts Direct Publisher rating sources to the advisory
// rating sources the search feed accepts. Direct Publisher's USA_TV has no
// search feed counterpart and lands on the parental rating source.
var ratingSourceMap = map[string]string{
	"USA_TV": "USA_PR",
	"MPAA":   "MPAA",
	"USA_PR": "USA_PR",
}

func advisorySource(source, fallback string) string {
	if mapped, ok := ratingSourceMap[source]; ok {
		return mapped
	}

	return fallback
}

// advisoryRatings maps the item rating onto the advisory ratings list.
// Items without a usable rating get the configured default so the list is
// never empty.
func (c *Converter) advisoryRatings(rating *models.ItemRating) []models.AdvisoryRating {
	if rating == nil || (rating.RatingSource == "" && rating.Rating == "") {
		return []models.AdvisoryRating{
			{Source: c.defaults.RatingSource, Value: c.defaults.RatingValue},
		}
	}

	value := rating.Rating
	if value == "" {
		value = c.defaults.RatingValue
	}

	return []models.AdvisoryRating{
		{Source: advisorySource(rating.RatingSource, c.defaults.RatingSource), Value: value},
	}
}
