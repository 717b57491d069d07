package plex

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jellydator/ttlcache/v3"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/queue"
)

// Pull imports the server's play-state into the mapper. Each eligible
// section is counted up front and fetched as fixed-size container windows
// scattered over the queue.
func (c *Client) Pull(ctx context.Context, mp mapper.Mapper, after *time.Time) error {
	sections, err := c.sections(ctx)
	if err != nil {
		c.stats.MarkError()
		return fmt.Errorf("%s: enumerating sections: %w", c.name(), err)
	}

	q := queue.New(c.http)

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

		if sec.Type == sectionShow {
			c.scatterShows(ctx, q, sec)
		}
		c.scatterContent(ctx, q, sec, total, func(it *item) {
			c.addItem(ctx, mp, it, sec.Title, after)
		})
	}

	q.Drain()
	return nil
}

func (c *Client) addItem(ctx context.Context, mp mapper.Mapper, it *item, secTitle string, after *time.Time) {
	st, err := c.createEntity(ctx, it, secTitle, nil)
	if err != nil {
		c.stats.Inc(backend.StatSkippedDate)
		if c.ctx.Trace() {
			slog.Debug("item skipped", c.ctx.LogWith("error", err)...)
		}
		return
	}
	opts := mapper.AddOptions{After: after, MetadataOnly: c.ctx.Options.MetadataOnly}
	if err := mp.Add(ctx, st, opts); err != nil {
		slog.Error("failed to merge item",
			c.ctx.LogWith("item", st.Name(), "error", err)...)
		return
	}
	c.stats.Inc(backend.StatImported)
}

// sections lists the library sections and keeps the syncable, non-ignored
// ones.
func (c *Client) sections(ctx context.Context) ([]section, error) {
	body, status, err := backend.Fetch(ctx, c.http, c.ctx, http.MethodGet, "/library/sections", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("sections listing returned status %d", status)
	}

	var cont container
	if err := json.Unmarshal(body, &cont); err != nil {
		return nil, fmt.Errorf("decoding sections listing: %w", err)
	}

	var out []section
	for _, sec := range cont.MediaContainer.Directory {
		if sec.Type != sectionMovie && sec.Type != sectionShow {
			c.stats.Inc(backend.StatUnsupported)
			continue
		}
		if c.ctx.Options.Ignored(sec.Title) {
			c.stats.Inc(backend.StatIgnored)
			slog.Info("section ignored by configuration",
				c.ctx.LogWith("section", sec.Title)...)
			continue
		}
		out = append(out, sec)
	}
	return out, nil
}

// sectionCount asks for the section's total leaf count via a zero-size
// container window.
func (c *Client) sectionCount(ctx context.Context, sec section) (int, error) {
	q := c.contentQuery(sec)
	q.Set("X-Plex-Container-Start", "0")
	q.Set("X-Plex-Container-Size", "0")

	body, status, err := backend.Fetch(ctx, c.http, c.ctx, http.MethodGet,
		"/library/sections/"+sec.Key+"/all", q, nil)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("count request returned status %d", status)
	}

	var cont container
	if err := json.Unmarshal(body, &cont); err != nil {
		return 0, fmt.Errorf("decoding count response: %w", err)
	}
	return cont.MediaContainer.TotalSize, nil
}

// contentQuery builds the shared query for a section's content requests.
// Shows sections are walked at episode granularity.
func (c *Client) contentQuery(sec section) url.Values {
	q := url.Values{}
	q.Set("includeGuids", "1")
	if sec.Type == sectionShow {
		q.Set("type", strconv.Itoa(codeEpisode))
	} else {
		q.Set("type", strconv.Itoa(codeMovie))
	}
	return q
}

// scatterContent enqueues the section's container-window requests.
func (c *Client) scatterContent(ctx context.Context, q *queue.Queue, sec section, total int, visit func(*item)) {
	segment := c.ctx.Options.LibrarySegment
	segments := (total + segment - 1) / segment

	for i := 0; i < segments; i++ {
		query := c.contentQuery(sec)
		query.Set("X-Plex-Container-Start", strconv.Itoa(i*segment))
		query.Set("X-Plex-Container-Size", strconv.Itoa(segment))

		env := c.ctx.NewEnvelope(http.MethodGet, "/library/sections/"+sec.Key+"/all", query, nil,
			"section", sec.Title, "segment", i)
		env.OnSuccess = func(resp *queue.Response) {
			if resp.StatusCode != http.StatusOK {
				c.stats.MarkError()
				slog.Error("window request failed",
					c.ctx.LogWith("section", sec.Title, "status", resp.StatusCode)...)
				return
			}
			c.visitContainer(resp.Body, sec, visit)
		}
		env.OnError = func(err error) {
			c.stats.MarkError()
			slog.Error("window request failed",
				c.ctx.LogWith("section", sec.Title, "error", err)...)
		}
		q.Enqueue(ctx, env)
	}
}

func (c *Client) visitContainer(body []byte, sec section, visit func(*item)) {
	var cont container
	if err := json.Unmarshal(body, &cont); err != nil {
		c.stats.MarkError()
		slog.Error("failed to decode container",
			c.ctx.LogWith("section", sec.Title, "error", err)...)
		return
	}
	for _, raw := range cont.MediaContainer.Metadata {
		var it item
		if err := json.Unmarshal(raw, &it); err != nil {
			c.stats.Inc(backend.StatMalformed)
			slog.Warn("skipping malformed item",
				c.ctx.LogWith("section", sec.Title, "error", err)...)
			continue
		}
		visit(&it)
	}
}

// scatterShows enqueues a show-identity pass over a shows section, seeding
// the run arena.
func (c *Client) scatterShows(ctx context.Context, q *queue.Queue, sec section) {
	query := url.Values{}
	query.Set("includeGuids", "1")
	query.Set("type", strconv.Itoa(codeShow))

	env := c.ctx.NewEnvelope(http.MethodGet, "/library/sections/"+sec.Key+"/all", query, nil,
		"section", sec.Title, "pass", "shows")
	env.OnSuccess = func(resp *queue.Response) {
		if resp.StatusCode != http.StatusOK {
			slog.Warn("show identity pass failed",
				c.ctx.LogWith("section", sec.Title, "status", resp.StatusCode)...)
			return
		}
		c.visitContainer(resp.Body, sec, func(it *item) {
			if it.Type != sectionShow || it.RatingKey == "" {
				return
			}
			parents := parseGUIDs(it.Guids, it.GUID, c.ctx.LogWith("show", it.RatingKey)...)
			c.ctx.Cache.Set(sectionShow+"."+it.RatingKey, parents, ttlcache.DefaultTTL)
		})
	}
	env.OnError = func(err error) {
		slog.Warn("show identity pass failed",
			c.ctx.LogWith("section", sec.Title, "error", err)...)
	}
	q.Enqueue(ctx, env)
}
