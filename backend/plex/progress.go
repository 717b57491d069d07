package plex

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/queue"
)

// Progress queues playback-position updates for in-flight items.
func (c *Client) Progress(ctx context.Context, entities []*entity.State, q *queue.Queue) error {
	fetches := queue.New(c.http)

	for _, e := range entities {
		if e.Via == c.name() {
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
		senderDate := sender.Date - int64(backend.ProgressDriftAllowance.Seconds())

		if !c.ctx.Options.IgnoreDate {
			if target, ok := e.ExtraFor(c.name()); ok && target.Date > senderDate {
				c.stats.Inc(backend.StatSkipped)
				continue
			}
		}

		query := url.Values{}
		query.Set("includeGuids", "1")

		local := e
		itemID := m.ID
		env := c.ctx.NewEnvelope(http.MethodGet, "/library/metadata/"+itemID, query, nil,
			"item", e.Name())
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

	var cont container
	if err := json.Unmarshal(resp.Body, &cont); err != nil || len(cont.MediaContainer.Metadata) == 0 {
		c.stats.Inc(backend.StatMalformed)
		return
	}
	var it item
	if err := json.Unmarshal(cont.MediaContainer.Metadata[0], &it); err != nil {
		c.stats.Inc(backend.StatMalformed)
		return
	}

	if it.watched() {
		c.stats.Inc(backend.StatSkipped)
		return
	}
	if !c.ctx.Options.IgnoreDate {
		if remoteDate := it.dateKey(); remoteDate > senderDate {
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

	query := url.Values{}
	query.Set("identifier", clientIdentifier)
	query.Set("key", itemID)
	query.Set("time", strconv.FormatInt(local.Progress, 10))
	query.Set("state", "stopped")

	env := c.ctx.NewEnvelope(http.MethodGet, "/:/progress", query, nil, "item", local.Name())
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
