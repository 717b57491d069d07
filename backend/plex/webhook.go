package plex

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
)

// maxWebhookPayload bounds the multipart form parse.
const maxWebhookPayload = 1 << 20

// Webhook events worth ingesting.
var webhookEvents = map[string]bool{
	"library.new":    true,
	"media.play":     true,
	"media.pause":    true,
	"media.resume":   true,
	"media.stop":     true,
	"media.scrobble": true,
}

// taintedEvents are the low-confidence signals; a scrobble is the server's
// own "finished watching" determination and is trusted.
var taintedEvents = map[string]bool{
	"library.new":  true,
	"media.play":   true,
	"media.pause":  true,
	"media.resume": true,
	"media.stop":   true,
}

// ParseWebhook turns a Plex webhook request into an entity. Plex posts a
// multipart form whose "payload" field carries the JSON document.
func (c *Client) ParseWebhook(ctx context.Context, r *http.Request) (*entity.State, error) {
	if err := r.ParseMultipartForm(maxWebhookPayload); err != nil {
		return nil, backend.NewWebhookError(http.StatusBadRequest, "malformed multipart form: %v", err)
	}
	raw := r.FormValue("payload")
	if raw == "" {
		return nil, backend.NewWebhookError(http.StatusBadRequest, "form carries no payload field")
	}

	var payload webhookPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, backend.NewWebhookError(http.StatusBadRequest, "malformed payload: %v", err)
	}

	if !webhookEvents[payload.Event] {
		return nil, backend.NewWebhookError(http.StatusOK, "event %q is not applicable", payload.Event)
	}
	if payload.Metadata.Type != sectionMovie && payload.Metadata.Type != "episode" {
		return nil, backend.NewWebhookError(http.StatusOK,
			"item type %q is not applicable", payload.Metadata.Type)
	}
	if payload.Metadata.RatingKey == "" {
		return nil, backend.NewWebhookError(http.StatusBadRequest, "payload carries no rating key")
	}

	// The webhook Metadata block is trimmed; re-fetch the full item so
	// identity and dates come from the library, not the event.
	it := &payload.Metadata
	if body, err := c.itemDetails(ctx, payload.Metadata.RatingKey); err == nil {
		var cont container
		if json.Unmarshal(body, &cont) == nil && len(cont.MediaContainer.Metadata) > 0 {
			var full item
			if json.Unmarshal(cont.MediaContainer.Metadata[0], &full) == nil {
				it = &full
			}
		}
	}

	now := time.Now().Unix()
	watched := payload.Event == "media.scrobble" || it.watched()
	ov := &entityOverride{
		watched:   &watched,
		event:     payload.Event,
		eventDate: now,
	}
	if watched {
		ov.updatedAt = &now
	} else if payload.Metadata.ViewOffset > 0 {
		ov.progressMs = &payload.Metadata.ViewOffset
	}
	if it.dateKey() == 0 {
		ov.updatedAt = &now
	}

	st, err := c.createEntity(ctx, it, "", ov)
	if err != nil {
		return nil, backend.NewWebhookError(http.StatusOK,
			"item %s is not ingestible: %v", payload.Metadata.RatingKey, err)
	}

	if !st.HasGUIDs() && !st.HasRelativeGUIDs() {
		return nil, backend.NewWebhookError(http.StatusOK,
			"item %s carries no supported external ids", payload.Metadata.RatingKey)
	}

	if taintedEvents[payload.Event] {
		st.Tainted = true
	}
	return st, nil
}
