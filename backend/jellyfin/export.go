package jellyfin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/queue"
)

// Export walks the server's library content and queues a play-state write
// for every item whose canonical record disagrees with the server's view.
// Content pages travel on an internal queue; the write requests land on the
// caller's queue so a multi-backend run drains them together.
func (c *Client) Export(ctx context.Context, mp mapper.Mapper, q *queue.Queue, after *time.Time) error {
	libs, err := c.libraries(ctx)
	if err != nil {
		c.stats.MarkError()
		return fmt.Errorf("%s: enumerating libraries: %w", c.name(), err)
	}

	pages := queue.New(c.http)

	for _, lib := range libs {
		total, err := c.libraryCount(ctx, lib)
		if err != nil {
			// One broken library must not abandon the rest, nor the page
			// requests already in flight.
			c.stats.MarkError()
			slog.Error("failed to count library",
				c.ctx.LogWith("library", lib.title, "error", err)...)
			continue
		}
		if total < 1 {
			slog.Warn("library reported no items, skipping",
				c.ctx.LogWith("library", lib.title)...)
			continue
		}
		c.scatterContent(ctx, pages, lib, total, func(it *item) {
			c.compareItem(ctx, mp, q, it, lib.title, after)
		})
	}

	pages.Drain()
	return nil
}

// compareItem decides whether one remote item needs a play-state write.
func (c *Client) compareItem(ctx context.Context, mp mapper.Mapper, q *queue.Queue, it *item, libTitle string, after *time.Time) {
	if !hasGUIDs(it.ProviderIds) {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	remote, err := c.createEntity(ctx, it, libTitle, nil)
	if err != nil {
		c.stats.Inc(backend.StatSkippedDate)
		return
	}

	// The server touched this item after our checkpoint; the import side of
	// the run owns whatever changed.
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
		// Never imported; exporting would invent state.
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
	// A change that originated here must not be echoed back.
	if local.Via == c.name() {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	c.queuePlayedState(ctx, q, local, it.ID)
}

// queuePlayedState queues the mark-played / mark-unplayed request for one
// item, honouring dry-run.
func (c *Client) queuePlayedState(ctx context.Context, q *queue.Queue, local *entity.State, itemID string) {
	method := http.MethodDelete
	stat := backend.StatQueuedUnplay
	if local.Watched {
		method = http.MethodPost
		stat = backend.StatQueuedPlay
	}

	if c.ctx.Options.DryRun {
		slog.Info("dry-run: would change play state",
			c.ctx.LogWith("item", local.Name(), "watched", local.Watched)...)
		c.stats.Inc(stat)
		return
	}

	path := "/Users/" + c.ctx.UserID + "/PlayedItems/" + itemID
	query := c.playedStateQuery(local)

	env := c.ctx.NewEnvelope(method, path, query, nil, "item", local.Name())
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
