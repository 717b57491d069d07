package jellyfin

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
)

// Webhook events worth ingesting. Everything else is acknowledged and
// dropped so the notification plugin does not retry.
var webhookEvents = map[string]bool{
	"ItemAdded":     true,
	"UserDataSaved": true,
	"PlaybackStart": true,
	"PlaybackStop":  true,
}

// taintedEvents are the low-confidence signals: item additions and playback
// heartbeats, where the play flag does not reflect a settled library state.
var taintedEvents = map[string]bool{
	"ItemAdded":     true,
	"PlaybackStart": true,
	"PlaybackStop":  true,
}

// UnmarshalJSON decodes the flat plugin payload, capturing the Provider_*
// keys the plugin templates emit alongside the declared fields.
func (p *webhookPayload) UnmarshalJSON(data []byte) error {
	type plain webhookPayload
	if err := json.Unmarshal(data, (*plain)(p)); err != nil {
		return err
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	for key, raw := range flat {
		if !strings.HasPrefix(key, "Provider_") {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil || value == "" {
			continue
		}
		if p.providers == nil {
			p.providers = make(map[string]string)
		}
		p.providers[strings.TrimPrefix(key, "Provider_")] = value
	}
	return nil
}

// ParseWebhook turns a notification-plugin request into an entity. Payloads
// that are valid but not actionable return a *backend.WebhookError with
// status 200 so the sender does not retry; malformed ones get 400.
func (c *Client) ParseWebhook(ctx context.Context, r *http.Request) (*entity.State, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		return nil, backend.NewWebhookError(http.StatusBadRequest, "empty or unreadable payload")
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, backend.NewWebhookError(http.StatusBadRequest, "malformed payload: %v", err)
	}

	if !webhookEvents[payload.NotificationType] {
		return nil, backend.NewWebhookError(http.StatusOK,
			"event %q is not applicable", payload.NotificationType)
	}
	if payload.ItemType != typeMovie && payload.ItemType != typeEpisode {
		return nil, backend.NewWebhookError(http.StatusOK,
			"item type %q is not applicable", payload.ItemType)
	}
	if payload.ItemID == "" {
		return nil, backend.NewWebhookError(http.StatusBadRequest, "payload carries no item id")
	}

	raw, err := c.itemDetails(ctx, payload.ItemID)
	if err != nil {
		return nil, backend.NewWebhookError(http.StatusOK,
			"item %s could not be fetched: %v", payload.ItemID, err)
	}
	var it item
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, backend.NewWebhookError(http.StatusBadRequest,
			"item %s details are malformed: %v", payload.ItemID, err)
	}

	now := time.Now().Unix()
	ov := &entityOverride{
		watched: &payload.Played,
		event:   payload.NotificationType,
		// Stamp the event, not the item: provenance comparisons during
		// progress propagation rely on when the signal fired.
		eventDate: now,
	}
	if payload.Played {
		ov.updatedAt = &now
	}
	if ticks := payload.PlaybackPositionTicks; ticks > 0 && !payload.Played {
		ms := ticksToMillis(ticks)
		ov.progressMs = &ms
	}
	if len(payload.providers) > 0 {
		ov.guids = parseGUIDs(payload.providers, c.ctx.LogWith("item", payload.ItemID)...)
		ov.metaGUIDs = ov.guids
	}

	st, err := c.createEntity(ctx, &it, "", ov)
	if err != nil {
		return nil, backend.NewWebhookError(http.StatusOK,
			"item %s is not ingestible: %v", payload.ItemID, err)
	}

	if !st.HasGUIDs() && !st.HasRelativeGUIDs() {
		return nil, backend.NewWebhookError(http.StatusOK,
			"item %s carries no supported external ids", payload.ItemID)
	}

	if taintedEvents[payload.NotificationType] {
		st.Tainted = true
	}
	return st, nil
}
