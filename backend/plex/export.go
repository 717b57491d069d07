package plex

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/queue"
)

// Export walks the server's sections and queues a scrobble or unscrobble for
// every item whose canonical record disagrees with the server's view.
func (c *Client) Export(ctx context.Context, mp mapper.Mapper, q *queue.Queue, after *time.Time) error {
	sections, err := c.sections(ctx)
	if err != nil {
		c.stats.MarkError()
		return fmt.Errorf("%s: enumerating sections: %w", c.name(), err)
	}

	pages := queue.New(c.http)

	for _, sec := range sections {
		total, err := c.sectionCount(ctx, sec)
		if err != nil {
			// One broken section must not abandon the rest, nor the
			// window requests already in flight.
			c.stats.MarkError()
			slog.Error("failed to count section",
				c.ctx.LogWith("section", sec.Title, "error", err)...)
			continue
		}
		if total < 1 {
			slog.Warn("section reported no items, skipping",
				c.ctx.LogWith("section", sec.Title)...)
			continue
		}
		c.scatterContent(ctx, pages, sec, total, func(it *item) {
			c.compareItem(ctx, mp, q, it, sec.Title, after)
		})
	}

	pages.Drain()
	return nil
}

func (c *Client) compareItem(ctx context.Context, mp mapper.Mapper, q *queue.Queue, it *item, secTitle string, after *time.Time) {
	remote, err := c.createEntity(ctx, it, secTitle, nil)
	if err != nil {
		c.stats.Inc(backend.StatSkippedDate)
		return
	}
	if !remote.HasGUIDs() && !remote.HasRelativeGUIDs() {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	if !c.ctx.Options.IgnoreDate && after != nil && remote.UpdatedAt >= after.Unix() {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	local, err := mp.Get(ctx, remote)
	if err != nil {
		slog.Error("lookup failed during export",
			c.ctx.LogWith("item", remote.Name(), "error", err)...)
		return
	}
	if local == nil {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	if local.Watched == remote.Watched {
		c.stats.Inc(backend.StatSkipped)
		return
	}
	if !c.ctx.Options.IgnoreDate {
		// The server's own clock gets a skew margin: a date trailing the
		// canonical one by less than the margin is treated as current.
		margin := int64(c.ctx.Options.ExportTimeMargin.Seconds())
		if remote.UpdatedAt+margin > local.UpdatedAt {
			c.stats.Inc(backend.StatSkipped)
			return
		}
	}
	if local.Via == c.name() {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	c.queuePlayedState(ctx, q, local, it.RatingKey)
}

// queuePlayedState queues the scrobble-style play-state write for one item,
// honouring dry-run.
func (c *Client) queuePlayedState(ctx context.Context, q *queue.Queue, local *entity.State, ratingKey string) {
	path := "/:/unscrobble"
	stat := backend.StatQueuedUnplay
	if local.Watched {
		path = "/:/scrobble"
		stat = backend.StatQueuedPlay
	}

	if c.ctx.Options.DryRun {
		slog.Info("dry-run: would change play state",
			c.ctx.LogWith("item", local.Name(), "watched", local.Watched)...)
		c.stats.Inc(stat)
		return
	}

	query := url.Values{}
	query.Set("identifier", clientIdentifier)
	query.Set("key", ratingKey)

	env := c.ctx.NewEnvelope(http.MethodGet, path, query, nil, "item", local.Name())
	name := local.Name()
	env.OnSuccess = func(resp *queue.Response) {
		if resp.StatusCode >= http.StatusBadRequest {
			c.stats.MarkError()
			slog.Error("play-state write rejected",
				c.ctx.LogWith("item", name, "status", resp.StatusCode)...)
			return
		}
		if c.ctx.Trace() {
			slog.Debug("play-state updated", c.ctx.LogWith("item", name)...)
		}
	}
	env.OnError = func(err error) {
		c.stats.MarkError()
		slog.Error("play-state write failed",
			c.ctx.LogWith("item", name, "error", err)...)
	}
	q.Enqueue(ctx, env)
	c.stats.Inc(stat)
}
