package jellyfin

import (
	"time"

	"github.com/goccy/go-json"
)

// itemsPage is the envelope every /Items listing comes back in. Items stays
// raw so one malformed element cannot sink the whole page.
type itemsPage struct {
	Items            []json.RawMessage `json:"Items"`
	TotalRecordCount int               `json:"TotalRecordCount"`
}

// userData is the per-user play-state block on an item.
type userData struct {
	Played                bool    `json:"Played"`
	LastPlayedDate        *string `json:"LastPlayedDate"`
	PlaybackPositionTicks int64   `json:"PlaybackPositionTicks"`
}

// item is the subset of an API item entity construction reads.
type item struct {
	ID             string            `json:"Id"`
	Type           string            `json:"Type"`
	Name           string            `json:"Name"`
	OriginalTitle  string            `json:"OriginalTitle"`
	ProductionYear int               `json:"ProductionYear"`
	DateCreated    *string           `json:"DateCreated"`
	ProviderIds    map[string]string `json:"ProviderIds"`
	UserData       *userData         `json:"UserData"`

	// library attributes
	CollectionType string `json:"CollectionType"`

	// episode attributes
	SeriesID          string `json:"SeriesId"`
	SeriesName        string `json:"SeriesName"`
	ParentIndexNumber int    `json:"ParentIndexNumber"`
	IndexNumber       int    `json:"IndexNumber"`
	IndexNumberEnd    int    `json:"IndexNumberEnd"`
}

// title prefers the display name, falling back to the original title.
func (it *item) title() string {
	if it.Name != "" {
		return it.Name
	}
	if it.OriginalTitle != "" {
		return it.OriginalTitle
	}
	return "??"
}

// played reports the user play flag, tolerating items without user data.
func (it *item) played() bool {
	return it.UserData != nil && it.UserData.Played
}

// positionTicks returns the playback offset in API ticks.
func (it *item) positionTicks() int64 {
	if it.UserData == nil {
		return 0
	}
	return it.UserData.PlaybackPositionTicks
}

// webhookPayload is the body the notification plugin posts.
type webhookPayload struct {
	NotificationType      string `json:"NotificationType"`
	ItemType              string `json:"ItemType"`
	ItemID                string `json:"ItemId"`
	Played                bool   `json:"Played"`
	PlaybackPositionTicks int64  `json:"PlaybackPositionTicks"`

	// Provider ids arrive as flat Provider_{name} keys; captured separately
	// during decode.
	providers map[string]string
}

// parseDate parses the API's ISO-8601 timestamps (.NET emits up to seven
// fractional-second digits, which RFC 3339 parsing tolerates).
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.9999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ticksToMillis converts API ticks (100ns units) to milliseconds.
func ticksToMillis(ticks int64) int64 { return ticks / 10_000 }

// millisToTicks converts milliseconds back to API ticks.
func millisToTicks(ms int64) int64 { return ms * 10_000 }
