package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StringList
	}{
		{
			name:  "Array of strings",
			input: `["Faith", "Special"]`,
			want:  StringList{"Faith", "Special"},
		},
		{
			name:  "Single string",
			input: `"Faith"`,
			want:  StringList{"Faith"},
		},
		{
			name:  "Null",
			input: `null`,
			want:  nil,
		},
		{
			name:  "Number treated as absent",
			input: `42`,
			want:  nil,
		},
		{
			name:  "Mixed array treated as absent",
			input: `["Faith", 42]`,
			want:  nil,
		},
		{
			name:  "Empty array",
			input: `[]`,
			want:  StringList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%s) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeconds_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Seconds
	}{
		{
			name:  "Integer",
			input: `1652`,
			want:  1652,
		},
		{
			name:  "Float",
			input: `1652.9`,
			want:  1652,
		},
		{
			name:  "Numeric string",
			input: `"1652"`,
			want:  1652,
		},
		{
			name:  "Padded numeric string",
			input: `" 90 "`,
			want:  90,
		},
		{
			name:  "Null",
			input: `null`,
			want:  0,
		},
		{
			name:  "Garbage string",
			input: `"soon"`,
			want:  0,
		},
		{
			name:  "Bool treated as missing",
			input: `true`,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Seconds
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirectPublisherItem_Decode(t *testing.T) {
	raw := `{
		"id": "sunday-service-2025-01-05",
		"title": "Sunday Service",
		"shortDescription": "Live worship from the sanctuary.",
		"longDescription": "Full recording of the Sunday morning service.",
		"releaseDate": "2025-01-05",
		"genres": ["Faith"],
		"tags": ["worship", "live"],
		"thumbnail": "https://cdn.example.org/thumbs/sunday.jpg",
		"rating": {"ratingSource": "USA_TV", "rating": "TV-G"},
		"content": {
			"dateAdded": "2025-01-05T12:00:00Z",
			"videos": [
				{"url": "https://proxy.example.org/play/98765", "quality": "HD", "duration": 3600}
			],
			"duration": "3600"
		}
	}`

	var item DirectPublisherItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if item.ID != "sunday-service-2025-01-05" {
		t.Errorf("Expected id sunday-service-2025-01-05, got %s", item.ID)
	}

	if item.Rating == nil || item.Rating.RatingSource != "USA_TV" {
		t.Errorf("Expected rating source USA_TV, got %+v", item.Rating)
	}

	if item.Content == nil {
		t.Fatal("Expected content to be decoded")
	}

	if item.Content.Duration != 3600 {
		t.Errorf("Expected duration 3600, got %d", item.Content.Duration)
	}

	if len(item.Content.Videos) != 1 || item.Content.Videos[0].Quality != "HD" {
		t.Errorf("Unexpected videos: %+v", item.Content.Videos)
	}

	if !reflect.DeepEqual([]string(item.Genres), []string{"Faith"}) {
		t.Errorf("Unexpected genres: %v", item.Genres)
	}
}

func TestDirectPublisherFeed_ItemCount(t *testing.T) {
	feed := DirectPublisherFeed{
		Movies:          []DirectPublisherItem{{ID: "m1"}, {ID: "m2"}},
		ShortFormVideos: []DirectPublisherItem{{ID: "s1"}},
	}

	if got := feed.ItemCount(); got != 3 {
		t.Errorf("Expected 3 items, got %d", got)
	}
}

func TestSearchFeed_TypeCounts(t *testing.T) {
	feed := SearchFeed{
		Assets: []Asset{
			{ID: "a", Type: TypeMovie},
			{ID: "b", Type: TypeShortForm},
			{ID: "c", Type: TypeShortForm},
		},
	}

	if got := feed.MovieCount(); got != 1 {
		t.Errorf("Expected 1 movie, got %d", got)
	}

	if got := feed.ShortFormCount(); got != 2 {
		t.Errorf("Expected 2 shortform, got %d", got)
	}
}

func TestAsset_MarshalShape(t *testing.T) {
	asset := Asset{
		ID:                "ep-1",
		Type:              TypeShortForm,
		Titles:            []LocalizedText{{Value: "Episode 1", Languages: []string{"en"}}},
		ShortDescriptions: []LocalizedText{{Value: "Episode 1", Languages: []string{"en"}}},
		ReleaseDate:       "2025-01-01",
		Genres:            []string{"special"},
		AdvisoryRatings:   []AdvisoryRating{{Source: "USA_PR", Value: "TV-G"}},
		Images:            []Image{},
		DurationInSeconds: 60,
		Content: AssetContent{
			PlayOptions: []PlayOption{{License: DefaultLicense, Quality: "hd", PlayID: "ep-1"}},
		},
	}

	data, err := json.Marshal(asset)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	// Optional fields stay out of the document when empty.
	if _, ok := decoded["longDescriptions"]; ok {
		t.Error("Empty longDescriptions should be omitted")
	}

	if _, ok := decoded["tags"]; ok {
		t.Error("Empty tags should be omitted")
	}

	// Images must serialize as an empty array, not null.
	imgs, ok := decoded["images"].([]any)
	if !ok {
		t.Fatalf("Expected images array, got %T", decoded["images"])
	}

	if len(imgs) != 0 {
		t.Errorf("Expected empty images array, got %v", imgs)
	}
}
