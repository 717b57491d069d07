package plex

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/queue"
)

// Push queues play-state writes for a known change set, re-fetching each
// item's current remote state before deciding.
func (c *Client) Push(ctx context.Context, entities []*entity.State, q *queue.Queue) error {
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

		query := url.Values{}
		query.Set("includeGuids", "1")

		local := e
		env := c.ctx.NewEnvelope(http.MethodGet, "/library/metadata/"+m.ID, query, nil,
			"item", e.Name())
		env.OnSuccess = func(resp *queue.Response) {
			c.pushDecide(ctx, q, local, resp)
		}
		env.OnError = func(err error) {
			c.stats.MarkError()
			slog.Error("push re-fetch failed",
				c.ctx.LogWith("item", local.Name(), "error", err)...)
		}
		fetches.Enqueue(ctx, env)
	}

	fetches.Drain()
	return nil
}

func (c *Client) pushDecide(ctx context.Context, q *queue.Queue, local *entity.State, resp *queue.Response) {
	if resp.StatusCode != http.StatusOK {
		c.stats.Inc(backend.StatSkipped)
		slog.Warn("push re-fetch returned unexpected status",
			c.ctx.LogWith("item", local.Name(), "status", resp.StatusCode)...)
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

	if it.watched() == local.Watched {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	if !c.ctx.Options.IgnoreDate {
		remoteDate := it.dateKey()
		if remoteDate == 0 {
			c.stats.Inc(backend.StatSkippedDate)
			return
		}
		margin := int64(c.ctx.Options.ExportTimeMargin.Seconds())
		if remoteDate+margin > local.UpdatedAt {
			c.stats.Inc(backend.StatSkipped)
			if c.ctx.Trace() {
				slog.Debug("remote state is within the clock-skew margin",
					c.ctx.LogWith("item", local.Name(),
						"remote", remoteDate, "local", local.UpdatedAt)...)
			}
			return
		}
	}

	c.queuePlayedState(ctx, q, local, it.RatingKey)
}
