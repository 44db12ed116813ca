package converter

import (
	"strings"

	"kmgiroku/internal/models"
)

// qualityMap converts Direct Publisher video qualities to the lowercase
// names the search feed accepts.
var qualityMap = map[string]string{
	"HD":  "hd",
	"SD":  "sd",
	"UHD": "uhd",
	"FHD": "fhd",
}

func normalizeQuality(quality, fallback string) string {
	if mapped, ok := qualityMap[strings.ToUpper(quality)]; ok {
		return mapped
	}

	return fallback
}

// ExtractPlayID returns the playback identifier embedded in a delivery
// URL: everything after the last occurrence of the marker. URLs without
// the marker, and URLs where nothing follows it, yield the fallback.
func ExtractPlayID(url, marker, fallback string) string {
	if marker == "" {
		return fallback
	}

	idx := strings.LastIndex(url, marker)
	if idx < 0 {
		return fallback
	}

	id := url[idx+len(marker):]
	if id == "" {
		return fallback
	}

	return id
}

// playOptions maps the item's videos onto play options. Items without any
// video get one synthetic option pointing at the item id, keeping the
// asset playable through the station's proxy.
func (c *Converter) playOptions(item *models.DirectPublisherItem) []models.PlayOption {
	var opts []models.PlayOption

	if item.Content != nil {
		opts = make([]models.PlayOption, 0, len(item.Content.Videos))

		for _, vid := range item.Content.Videos {
			opts = append(opts, models.PlayOption{
				License: models.DefaultLicense,
				Quality: normalizeQuality(vid.Quality, c.defaults.Quality),
				PlayID:  ExtractPlayID(vid.URL, c.convert.PlayIDMarker, item.ID),
			})
		}
	}

	if len(opts) == 0 {
		opts = []models.PlayOption{
			{License: models.DefaultLicense, Quality: c.defaults.Quality, PlayID: item.ID},
		}
	}

	return opts
}
