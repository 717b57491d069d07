package jellyfin

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/queue"
)

// Push queues play-state writes for a known change set. Unlike Export it does
// not walk the library; instead each entity's current remote state is
// re-fetched first, because the change set may have been computed minutes ago
// and the user may have watched the item on the target in the meantime.
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
		query.Set("fields", strings.Join(extraFields, ","))
		query.Set("enableUserData", "true")
		query.Set("enableImages", "false")

		local := e
		env := c.ctx.NewEnvelope(http.MethodGet,
			"/Users/"+c.ctx.UserID+"/Items/"+m.ID, query, nil, "item", e.Name())
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

// pushDecide compares the re-fetched remote state against the canonical
// record and queues the write only when the remote is genuinely behind.
func (c *Client) pushDecide(ctx context.Context, q *queue.Queue, local *entity.State, resp *queue.Response) {
	if resp.StatusCode != http.StatusOK {
		c.stats.Inc(backend.StatSkipped)
		slog.Warn("push re-fetch returned unexpected status",
			c.ctx.LogWith("item", local.Name(), "status", resp.StatusCode)...)
		return
	}

	var it item
	if err := json.Unmarshal(resp.Body, &it); err != nil {
		c.stats.Inc(backend.StatMalformed)
		return
	}

	if it.played() == local.Watched {
		c.stats.Inc(backend.StatSkipped)
		return
	}

	if !c.ctx.Options.IgnoreDate {
		remote, err := c.createEntity(ctx, &it, "", nil)
		if err != nil {
			// No usable date on the remote item; writing blind risks
			// clobbering a fresher change we cannot see.
			c.stats.Inc(backend.StatSkippedDate)
			return
		}
		margin := int64(c.ctx.Options.ExportTimeMargin.Seconds())
		if remote.UpdatedAt+margin > local.UpdatedAt {
			c.stats.Inc(backend.StatSkipped)
			if c.ctx.Trace() {
				slog.Debug("remote state is within the clock-skew margin",
					c.ctx.LogWith("item", local.Name(),
						"remote", remote.UpdatedAt, "local", local.UpdatedAt)...)
			}
			return
		}
	}

	c.queuePlayedState(ctx, q, local, it.ID)
}

// playedStateQuery adds the DatePlayed stamp to mark-played requests.
// Jellyfin records it; Emby rejects unknown parameters on this endpoint, so
// the query is only sent to Jellyfin proper.
func (c *Client) playedStateQuery(local *entity.State) url.Values {
	if !local.Watched || c.ctx.Kind != backend.KindJellyfin {
		return nil
	}
	q := url.Values{}
	q.Set("DatePlayed", time.Unix(local.UpdatedAt, 0).UTC().Format(time.RFC3339))
	return q
}
