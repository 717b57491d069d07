package plex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/jellydator/ttlcache/v3"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
)

// entityOverride carries webhook-supplied fields that take precedence over
// what the fetched item reports.
type entityOverride struct {
	watched    *bool
	updatedAt  *int64
	progressMs *int64
	event      string
	eventDate  int64
}

// createEntity canonicalises one Metadata element.
func (c *Client) createEntity(ctx context.Context, it *item, library string, ov *entityOverride) (*entity.State, error) {
	eType, err := mapType(it.Type)
	if err != nil {
		return nil, err
	}

	isWatched := it.watched()
	if ov != nil && ov.watched != nil {
		isWatched = *ov.watched
	}

	updated := it.dateKey()
	if updated == 0 && (ov == nil || ov.updatedAt == nil) {
		return nil, fmt.Errorf("%s %q: no date is set on object", eType, it.Title)
	}
	if ov != nil && ov.updatedAt != nil {
		updated = *ov.updatedAt
	}

	guids := parseGUIDs(it.Guids, it.GUID, c.ctx.LogWith("item", it.RatingKey)...)

	meta := entity.Metadata{
		ID:      it.RatingKey,
		Type:    eType,
		Watched: isWatched,
		GUIDs:   guids.Clone(),
		AddedAt: it.AddedAt,
		Title:   it.Title,
		Library: library,
	}
	if isWatched {
		meta.PlayedAt = updated
	} else if it.ViewOffset > 0 {
		meta.Progress = it.ViewOffset
	}
	if ov != nil && ov.progressMs != nil {
		meta.Progress = *ov.progressMs
	}

	st := &entity.State{
		Type:      eType,
		Title:     it.Title,
		Year:      it.Year,
		Watched:   isWatched,
		UpdatedAt: updated,
		Via:       c.name(),
		GUIDs:     guids,
		Metadata:  map[string]entity.Metadata{c.name(): meta},
		Extra:     map[string]entity.Extra{},
		Progress:  meta.Progress,
	}

	if eType == entity.TypeEpisode {
		st.Season = it.ParentIndex
		st.Episode = it.Index
		if it.GrandparentTitle != "" {
			st.Title = it.GrandparentTitle
			meta.Title = it.GrandparentTitle
		}
		meta.Show = it.GrandparentKey
		if it.GrandparentKey != "" {
			st.ParentGUIDs = c.episodeParent(ctx, it.GrandparentKey, it.GrandparentGUID)
		}
		st.Metadata[c.name()] = meta
	}

	if ov != nil && ov.event != "" {
		st.Extra[c.name()] = entity.Extra{Event: ov.event, Date: ov.eventDate}
	}

	return st, nil
}

func mapType(apiType string) (entity.Type, error) {
	switch apiType {
	case sectionMovie:
		return entity.TypeMovie, nil
	case "episode":
		return entity.TypeEpisode, nil
	case sectionShow:
		return entity.TypeShow, nil
	default:
		return "", fmt.Errorf("unexpected content type %q", apiType)
	}
}

// episodeParent resolves the grandparent show's identity via the run arena,
// falling back to a metadata fetch. The legacy grandparent guid alone can be
// enough for un-migrated libraries, so it seeds the candidate set too.
func (c *Client) episodeParent(ctx context.Context, showKey, showGUID string) guid.Set {
	cacheKey := sectionShow + "." + showKey

	if !c.ctx.Options.NoCache {
		if cached := c.ctx.Cache.Get(cacheKey); cached != nil {
			return cached.Value()
		}
	}

	parents := guid.Set{}
	raw, err := c.itemDetails(ctx, showKey)
	if err == nil {
		var cont container
		if json.Unmarshal(raw, &cont) == nil && len(cont.MediaContainer.Metadata) > 0 {
			var show item
			if json.Unmarshal(cont.MediaContainer.Metadata[0], &show) == nil && show.Type == sectionShow {
				parents = parseGUIDs(show.Guids, show.GUID, c.ctx.LogWith("show", showKey)...)
			}
		}
	}
	if len(parents) == 0 && showGUID != "" {
		parents = parseGUIDs(nil, showGUID, c.ctx.LogWith("show", showKey)...)
	}

	c.ctx.Cache.Set(cacheKey, parents, ttlcache.DefaultTTL)
	return parents
}

// itemDetails fetches one item's metadata container, caching it unless
// NoCache is set.
func (c *Client) itemDetails(ctx context.Context, ratingKey string) ([]byte, error) {
	cacheKey := "item." + ratingKey
	if !c.ctx.Options.NoCache {
		if cached := c.metaCache.Get(cacheKey); cached != nil {
			return cached.Value(), nil
		}
	}

	q := url.Values{}
	q.Set("includeGuids", "1")

	body, status, err := backend.Fetch(ctx, c.http, c.ctx, http.MethodGet,
		"/library/metadata/"+ratingKey, q, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("item %s metadata returned status %d", ratingKey, status)
	}

	c.metaCache.Set(cacheKey, body, 5*time.Minute)
	return body, nil
}

// GetMetadata fetches one item's raw metadata by rating key.
func (c *Client) GetMetadata(ctx context.Context, id string) (map[string]any, error) {
	raw, err := c.itemDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding item %s metadata: %w", id, err)
	}
	return out, nil
}

// GetUsersList lists the server's accounts.
func (c *Client) GetUsersList(ctx context.Context) ([]backend.User, error) {
	body, status, err := backend.Fetch(ctx, c.http, c.ctx, http.MethodGet, "/accounts", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("accounts listing returned status %d", status)
	}

	var cont container
	if err := json.Unmarshal(body, &cont); err != nil {
		return nil, fmt.Errorf("decoding accounts listing: %w", err)
	}

	users := make([]backend.User, 0, len(cont.MediaContainer.Account))
	for _, a := range cont.MediaContainer.Account {
		if a.ID == 0 {
			// Account 0 is the synthetic "all accounts" entry.
			continue
		}
		users = append(users, backend.User{
			ID:    fmt.Sprintf("%d", a.ID),
			Name:  a.Name,
			Admin: a.ID == 1, // the server owner is always account 1
		})
	}
	return users, nil
}
