package plex

import (
	"github.com/goccy/go-json"
)

// container is the MediaContainer envelope every API response arrives in.
// Metadata stays raw so one malformed element cannot sink the page.
type container struct {
	MediaContainer struct {
		Size      int               `json:"size"`
		TotalSize int               `json:"totalSize"`
		Metadata  []json.RawMessage `json:"Metadata"`
		Directory []section         `json:"Directory"`
		Account   []account         `json:"Account"`
	} `json:"MediaContainer"`
}

// section is one library section directory.
type section struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Agent string `json:"agent"`
}

// account is one server account entry.
type account struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// guidEntry is one element of an item's Guid array.
type guidEntry struct {
	ID string `json:"id"`
}

// item is the subset of a Metadata element entity construction reads.
type item struct {
	RatingKey string      `json:"ratingKey"`
	Type      string      `json:"type"` // "movie", "episode", "show"
	Title     string      `json:"title"`
	Year      int         `json:"year"`
	GUID      string      `json:"guid"` // agent-style item guid
	Guids     []guidEntry `json:"Guid"`

	AddedAt      int64 `json:"addedAt"`      // unix seconds
	LastViewedAt int64 `json:"lastViewedAt"` // unix seconds, 0 when never viewed
	ViewCount    int   `json:"viewCount"`
	ViewOffset   int64 `json:"viewOffset"` // playback offset, milliseconds

	// episode attributes
	GrandparentKey   string `json:"grandparentRatingKey"`
	GrandparentTitle string `json:"grandparentTitle"`
	GrandparentGUID  string `json:"grandparentGuid"`
	ParentIndex      int    `json:"parentIndex"`
	Index            int    `json:"index"`
}

// watched reports whether the item has been viewed to completion.
func (it *item) watched() bool { return it.ViewCount > 0 }

// dateKey returns the play-state timestamp: last view when watched, library
// addition otherwise. Zero means the server sent no usable date.
func (it *item) dateKey() int64 {
	if it.watched() && it.LastViewedAt > 0 {
		return it.LastViewedAt
	}
	return it.AddedAt
}

// webhookPayload is the JSON carried in the multipart "payload" form field.
type webhookPayload struct {
	Event    string `json:"event"`
	Metadata item   `json:"Metadata"`
	Account  struct {
		ID int `json:"id"`
	} `json:"Account"`
	Server struct {
		UUID string `json:"uuid"`
	} `json:"Server"`
}
