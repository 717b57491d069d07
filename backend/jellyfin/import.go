package jellyfin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jellydator/ttlcache/v3"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/queue"
)

// library is one syncable section of the server's content.
type library struct {
	id    string
	title string
	kind  string // collectionMovies or collectionShows
}

// Pull imports the server's play-state into the mapper. Libraries are
// enumerated and counted up front, then fetched as fixed-size segments
// scattered over the queue; the drain pass feeds every decoded item into the
// mapper on a single goroutine.
func (c *Client) Pull(ctx context.Context, mp mapper.Mapper, after *time.Time) error {
	libs, err := c.libraries(ctx)
	if err != nil {
		c.stats.MarkError()
		return fmt.Errorf("%s: enumerating libraries: %w", c.name(), err)
	}

	q := queue.New(c.http)

	for _, lib := range libs {
		total, err := c.libraryCount(ctx, lib)
		if err != nil {
			// One broken library must not abandon the rest, nor the
			// segment requests already in flight.
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

		if lib.kind == collectionShows {
			c.scatterSeries(ctx, q, lib)
		}
		c.scatterContent(ctx, q, lib, total, func(it *item) {
			c.addItem(ctx, mp, it, lib.title, after)
		})
	}

	q.Drain()
	return nil
}

// addItem expands and merges one decoded content item, counting rather than
// failing on payload defects.
func (c *Client) addItem(ctx context.Context, mp mapper.Mapper, it *item, libTitle string, after *time.Time) {
	for _, expanded := range expandEpisodeRange(it, c.ctx.Options.MaxEpisodeRange) {
		st, err := c.createEntity(ctx, expanded, libTitle, nil)
		if err != nil {
			c.stats.Inc(backend.StatSkippedDate)
			if c.ctx.Trace() {
				slog.Debug("item skipped", c.ctx.LogWith("error", err)...)
			}
			continue
		}
		opts := mapper.AddOptions{After: after, MetadataOnly: c.ctx.Options.MetadataOnly}
		if err := mp.Add(ctx, st, opts); err != nil {
			slog.Error("failed to merge item",
				c.ctx.LogWith("item", st.Name(), "error", err)...)
			continue
		}
		c.stats.Inc(backend.StatImported)
	}
}

// expandEpisodeRange turns a multi-episode file (IndexNumberEnd beyond
// IndexNumber) into one item per covered index. Files spanning more indexes
// than maxRange keep only their first episode; such wide ranges are almost
// always mislabelled specials.
func expandEpisodeRange(it *item, maxRange int) []*item {
	if it.Type != typeEpisode || it.IndexNumberEnd <= it.IndexNumber || it.IndexNumber < 1 {
		return []*item{it}
	}
	width := it.IndexNumberEnd - it.IndexNumber + 1
	if width > maxRange {
		return []*item{it}
	}
	out := make([]*item, 0, width)
	for idx := it.IndexNumber; idx <= it.IndexNumberEnd; idx++ {
		dup := *it
		dup.IndexNumber = idx
		dup.IndexNumberEnd = 0
		out = append(out, &dup)
	}
	return out
}

// libraries lists the user's views and keeps the syncable, non-ignored ones.
func (c *Client) libraries(ctx context.Context) ([]library, error) {
	body, status, err := backend.Fetch(ctx, c.http, c.ctx, http.MethodGet,
		"/Users/"+c.ctx.UserID+"/Items/", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("library listing returned status %d", status)
	}

	var page itemsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decoding library listing: %w", err)
	}

	var libs []library
	for _, raw := range page.Items {
		var it item
		if err := json.Unmarshal(raw, &it); err != nil {
			continue
		}
		kind := strings.ToLower(it.CollectionType)
		if kind != collectionMovies && kind != collectionShows {
			c.stats.Inc(backend.StatUnsupported)
			continue
		}
		if c.ctx.Options.Ignored(it.title()) {
			c.stats.Inc(backend.StatIgnored)
			slog.Info("library ignored by configuration",
				c.ctx.LogWith("library", it.title())...)
			continue
		}
		libs = append(libs, library{id: it.ID, title: it.title(), kind: kind})
	}
	return libs, nil
}

// libraryCount asks for the library's total item count without fetching any
// content.
func (c *Client) libraryCount(ctx context.Context, lib library) (int, error) {
	q := c.contentQuery(lib)
	q.Set("limit", "0")

	body, status, err := backend.Fetch(ctx, c.http, c.ctx, http.MethodGet,
		"/Users/"+c.ctx.UserID+"/Items/", q, nil)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("count request returned status %d", status)
	}

	var page itemsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return 0, fmt.Errorf("decoding count response: %w", err)
	}
	return page.TotalRecordCount, nil
}

// contentQuery builds the shared query for a library's content requests.
func (c *Client) contentQuery(lib library) url.Values {
	q := url.Values{}
	q.Set("parentId", lib.id)
	q.Set("recursive", "true")
	q.Set("enableUserData", "true")
	q.Set("enableImages", "false")
	q.Set("fields", strings.Join(extraFields, ","))
	if lib.kind == collectionShows {
		q.Set("includeItemTypes", typeEpisode)
	} else {
		q.Set("includeItemTypes", typeMovie)
	}
	return q
}

// scatterContent enqueues the library's segment requests. Each continuation
// decodes its page item by item, so one malformed element costs one counter
// bump, not the page.
func (c *Client) scatterContent(ctx context.Context, q *queue.Queue, lib library, total int, visit func(*item)) {
	segment := c.ctx.Options.LibrarySegment
	segments := (total + segment - 1) / segment

	for i := 0; i < segments; i++ {
		query := c.contentQuery(lib)
		query.Set("startIndex", strconv.Itoa(i*segment))
		query.Set("limit", strconv.Itoa(segment))

		env := c.ctx.NewEnvelope(http.MethodGet, "/Users/"+c.ctx.UserID+"/Items/", query, nil,
			"library", lib.title, "segment", i)
		env.OnSuccess = func(resp *queue.Response) {
			if resp.StatusCode != http.StatusOK {
				c.stats.MarkError()
				slog.Error("segment request failed",
					c.ctx.LogWith("library", lib.title, "status", resp.StatusCode)...)
				return
			}
			c.visitPage(resp.Body, lib, visit)
		}
		env.OnError = func(err error) {
			c.stats.MarkError()
			slog.Error("segment request failed",
				c.ctx.LogWith("library", lib.title, "error", err)...)
		}
		q.Enqueue(ctx, env)
	}
}

func (c *Client) visitPage(body []byte, lib library, visit func(*item)) {
	var page itemsPage
	if err := json.Unmarshal(body, &page); err != nil {
		c.stats.MarkError()
		slog.Error("failed to decode content page",
			c.ctx.LogWith("library", lib.title, "error", err)...)
		return
	}
	for _, raw := range page.Items {
		var it item
		if err := json.Unmarshal(raw, &it); err != nil {
			c.stats.Inc(backend.StatMalformed)
			slog.Warn("skipping malformed item",
				c.ctx.LogWith("library", lib.title, "error", err)...)
			continue
		}
		visit(&it)
	}
}

// scatterSeries enqueues a series-identity pass over a shows library, seeding
// the run's show-parent arena so episode merges resolve relative identity
// without per-episode fetches.
func (c *Client) scatterSeries(ctx context.Context, q *queue.Queue, lib library) {
	query := url.Values{}
	query.Set("parentId", lib.id)
	query.Set("recursive", "true")
	query.Set("includeItemTypes", typeShow)
	query.Set("enableImages", "false")
	query.Set("fields", "ProviderIds")

	env := c.ctx.NewEnvelope(http.MethodGet, "/Users/"+c.ctx.UserID+"/Items/", query, nil,
		"library", lib.title, "pass", "series")
	env.OnSuccess = func(resp *queue.Response) {
		if resp.StatusCode != http.StatusOK {
			slog.Warn("series identity pass failed",
				c.ctx.LogWith("library", lib.title, "status", resp.StatusCode)...)
			return
		}
		c.visitPage(resp.Body, lib, func(it *item) {
			if it.Type != typeShow || it.ID == "" {
				return
			}
			parents := parseGUIDs(it.ProviderIds, c.ctx.LogWith("series", it.ID)...)
			c.ctx.Cache.Set(typeShow+"."+it.ID, parents, ttlcache.DefaultTTL)
		})
	}
	env.OnError = func(err error) {
		slog.Warn("series identity pass failed",
			c.ctx.LogWith("library", lib.title, "error", err)...)
	}
	q.Enqueue(ctx, env)
}
