package jellyfin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
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
	guids      guid.Set
	metaGUIDs  guid.Set
	progressMs *int64
	event      string
	eventDate  int64
	latestDate bool // prefer LastPlayedDate over the played/created split
}

// createEntity canonicalises one API item. Items without the required date
// field are an error the caller counts and skips; pipelines never panic on
// payload shape.
func (c *Client) createEntity(ctx context.Context, it *item, library string, ov *entityOverride) (*entity.State, error) {
	var (
		isPlayed bool
		dateRaw  string
	)
	if ov != nil && ov.watched != nil {
		isPlayed = *ov.watched
		if it.DateCreated != nil {
			dateRaw = *it.DateCreated
		}
	} else {
		isPlayed = it.played()
		if isPlayed && it.UserData != nil && it.UserData.LastPlayedDate != nil {
			dateRaw = *it.UserData.LastPlayedDate
		} else if it.DateCreated != nil {
			dateRaw = *it.DateCreated
		}
	}
	if ov != nil && ov.latestDate && it.UserData != nil && it.UserData.LastPlayedDate != nil {
		dateRaw = *it.UserData.LastPlayedDate
	}

	eType, err := mapType(it.Type)
	if err != nil {
		return nil, err
	}

	var updated int64
	if date, ok := parseDate(dateRaw); ok {
		updated = date.Unix()
	} else if ov == nil || ov.updatedAt == nil {
		return nil, fmt.Errorf("%s %q: no date is set on object", eType, it.title())
	}
	if ov != nil && ov.updatedAt != nil {
		updated = *ov.updatedAt
	}

	guids := parseGUIDs(it.ProviderIds, c.ctx.LogWith("item", it.ID)...)
	metaGUIDs := guids.Clone()
	if ov != nil {
		if len(ov.guids) > 0 {
			guids = guids.Merge(ov.guids)
		}
		if len(ov.metaGUIDs) > 0 {
			metaGUIDs = metaGUIDs.Merge(ov.metaGUIDs)
		}
	}

	meta := entity.Metadata{
		ID:      it.ID,
		Type:    eType,
		Watched: isPlayed,
		GUIDs:   metaGUIDs,
		Title:   it.title(),
		Library: library,
	}
	if it.DateCreated != nil {
		if added, ok := parseDate(*it.DateCreated); ok {
			meta.AddedAt = added.Unix()
		}
	}
	if isPlayed {
		meta.PlayedAt = updated
	} else if ticks := it.positionTicks(); ticks > 0 {
		meta.Progress = ticksToMillis(ticks)
	}
	if ov != nil && ov.progressMs != nil {
		meta.Progress = *ov.progressMs
	}

	st := &entity.State{
		Type:      eType,
		Title:     it.title(),
		Year:      it.ProductionYear,
		Watched:   isPlayed,
		UpdatedAt: updated,
		Via:       c.name(),
		GUIDs:     guids,
		Metadata:  map[string]entity.Metadata{c.name(): meta},
		Extra:     map[string]entity.Extra{},
		Progress:  meta.Progress,
	}

	if eType == entity.TypeEpisode {
		st.Season = it.ParentIndexNumber
		st.Episode = it.IndexNumber
		st.Title = seriesTitle(it)
		meta.Title = st.Title
		meta.Show = it.SeriesID

		if it.SeriesID != "" {
			st.ParentGUIDs = c.episodeParent(ctx, it.SeriesID)
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
	case typeMovie:
		return entity.TypeMovie, nil
	case typeEpisode:
		return entity.TypeEpisode, nil
	case typeShow:
		return entity.TypeShow, nil
	default:
		return "", fmt.Errorf("unexpected content type %q", apiType)
	}
}

func seriesTitle(it *item) string {
	if it.SeriesName != "" {
		return it.SeriesName
	}
	return "??"
}

// episodeParent resolves a series' universal identity, consulting the run's
// parent arena first and falling back to an item detail fetch. A series that
// resolves to nothing is cached as empty so it is not re-fetched every
// episode.
func (c *Client) episodeParent(ctx context.Context, seriesID string) guid.Set {
	cacheKey := typeShow + "." + seriesID

	if !c.ctx.Options.NoCache {
		if cached := c.ctx.Cache.Get(cacheKey); cached != nil {
			return cached.Value()
		}
	}

	raw, err := c.itemDetails(ctx, seriesID)
	if err != nil {
		slog.Warn("failed to resolve series external ids",
			c.ctx.LogWith("series", seriesID, "error", err)...)
		return nil
	}

	var series item
	if err := json.Unmarshal(raw, &series); err != nil || series.Type != typeShow {
		return nil
	}

	parents := parseGUIDs(series.ProviderIds, c.ctx.LogWith("series", seriesID)...)
	c.ctx.Cache.Set(cacheKey, parents, ttlcache.DefaultTTL)
	return parents
}

// itemDetails fetches one item's raw payload, caching it unless NoCache is
// set.
func (c *Client) itemDetails(ctx context.Context, id string) ([]byte, error) {
	cacheKey := "item." + id
	if !c.ctx.Options.NoCache {
		if cached := c.metaCache.Get(cacheKey); cached != nil {
			return cached.Value(), nil
		}
	}

	q := url.Values{}
	q.Set("fields", strings.Join(extraFields, ","))
	q.Set("enableUserData", "true")
	q.Set("enableImages", "false")

	path := fmt.Sprintf("/Users/%s/Items/%s", c.ctx.UserID, id)
	body, status, err := backend.Fetch(ctx, c.http, c.ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("item %s details returned status %d", id, status)
	}

	c.metaCache.Set(cacheKey, body, 5*time.Minute)
	return body, nil
}

// GetMetadata fetches one item's raw metadata by native id.
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
	body, status, err := backend.Fetch(ctx, c.http, c.ctx, http.MethodGet, "/Users", nil, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("users list returned status %d", status)
	}

	var raw []struct {
		ID               string  `json:"Id"`
		Name             string  `json:"Name"`
		LastActivityDate *string `json:"LastActivityDate"`
		Policy           struct {
			IsAdministrator bool `json:"IsAdministrator"`
			IsHidden        bool `json:"IsHidden"`
			IsDisabled      bool `json:"IsDisabled"`
		} `json:"Policy"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding users list: %w", err)
	}

	users := make([]backend.User, 0, len(raw))
	for _, u := range raw {
		user := backend.User{
			ID:       u.ID,
			Name:     u.Name,
			Admin:    u.Policy.IsAdministrator,
			Hidden:   u.Policy.IsHidden,
			Disabled: u.Policy.IsDisabled,
		}
		if u.LastActivityDate != nil {
			if t, ok := parseDate(*u.LastActivityDate); ok {
				user.LastActivity = &t
			}
		}
		users = append(users, user)
	}
	return users, nil
}
