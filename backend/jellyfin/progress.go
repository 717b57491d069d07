package jellyfin

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/queue"
)

// Progress queues playback-position updates for in-flight items. Positions
// are a low-confidence signal, so every guard errs on the side of not
// writing: the target's own state wins whenever the dates are close.
func (c *Client) Progress(ctx context.Context, entities []*entity.State, q *queue.Queue) error {
	fetches := queue.New(c.http)

	for _, e := range entities {
		if e.Via == c.name() {
			// The position came from this server.
			c.stats.Inc(backend.StatSkipped)
			continue
		}
		m, ok := e.MetadataFor(c.name())
		if !ok || m.ID == "" {
			c.stats.Inc(backend.StatSkipped)
			continue
		}

		sender, ok := e.ExtraFor(e.Via)
		if !ok || sender.Date == 0 {
			c.stats.Inc(backend.StatSkipped)
			continue
		}
		// Allow for event-delivery drift between the sender's clock and
		// whatever we recorded for the target.
		senderDate := sender.Date - int64(backend.ProgressDriftAllowance.Seconds())

		if !c.ctx.Options.IgnoreDate {
			if target, ok := e.ExtraFor(c.name()); ok && target.Date > senderDate {
				c.stats.Inc(backend.StatSkipped)
				continue
			}
		}

		query := url.Values{}
		query.Set("fields", strings.Join(extraFields, ","))
		query.Set("enableUserData", "true")
		query.Set("enableImages", "false")

		local := e
		itemID := m.ID
		env := c.ctx.NewEnvelope(http.MethodGet,
			"/Users/"+c.ctx.UserID+"/Items/"+itemID, query, nil, "item", e.Name())
		env.OnSuccess = func(resp *queue.Response) {
			c.progressDecide(ctx, q, local, itemID, senderDate, resp)
		}
		env.OnError = func(err error) {
			slog.Error("progress re-fetch failed",
				c.ctx.LogWith("item", local.Name(), "error", err)...)
		}
		fetches.Enqueue(ctx, env)
	}

	fetches.Drain()
	return nil
}

func (c *Client) progressDecide(ctx context.Context, q *queue.Queue, local *entity.State, itemID string, senderDate int64, resp *queue.Response) {
	if resp.StatusCode != http.StatusOK {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	var it item
	if err := json.Unmarshal(resp.Body, &it); err != nil {
		c.stats.Inc(backend.StatMalformed)
		return
	}

	if it.played() {
		// Finished on the target; a position write would re-open it.
		c.stats.Inc(backend.StatSkipped)
		return
	}

	if !c.ctx.Options.IgnoreDate {
		remote, err := c.createEntity(ctx, &it, "", &entityOverride{latestDate: true})
		if err == nil && remote.UpdatedAt > senderDate {
			c.stats.Inc(backend.StatSkipped)
			return
		}
	}

	if c.ctx.Options.DryRun {
		slog.Info("dry-run: would update playback position",
			c.ctx.LogWith("item", local.Name(), "progress_ms", local.Progress)...)
		c.stats.Inc(backend.StatQueuedSeek)
		return
	}

	body, err := json.Marshal(map[string]int64{
		"PlaybackPositionTicks": millisToTicks(local.Progress),
	})
	if err != nil {
		return
	}

	env := c.ctx.NewEnvelope(http.MethodPost,
		"/Users/"+c.ctx.UserID+"/Items/"+itemID+"/UserData", nil, body,
		"item", local.Name())
	name := local.Name()
	env.OnSuccess = func(resp *queue.Response) {
		if resp.StatusCode >= http.StatusBadRequest {
			slog.Error("position write rejected",
				c.ctx.LogWith("item", name, "status", resp.StatusCode)...)
		}
	}
	env.OnError = func(err error) {
		slog.Error("position write failed",
			c.ctx.LogWith("item", name, "error", err)...)
	}
	q.Enqueue(ctx, env)
	c.stats.Inc(backend.StatQueuedSeek)
}
