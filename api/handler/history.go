package handler

import (
	"net/http"
	"strconv"

	"entgo.io/ent/dialect/sql"
	"github.com/gin-gonic/gin"

	"github.com/ddevcap/watchsync/ent"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// HistoryHandler exposes the reconciled play-state records, newest first.
type HistoryHandler struct {
	db *ent.Client
}

func NewHistoryHandler(db *ent.Client) *HistoryHandler {
	return &HistoryHandler{db: db}
}

type historyResponse struct {
	ID       int64       `json:"id"`
	Type     string      `json:"type"`
	Name     string      `json:"name"`
	Watched  bool        `json:"watched"`
	Updated  int64       `json:"updated"`
	Via      string      `json:"via"`
	GUIDs    guid.Set    `json:"guids,omitempty"`
	Tainted  bool        `json:"tainted,omitempty"`
	Progress int64       `json:"progress,omitempty"`
}

// List handles GET /v1/history. Filters: ?type=movie|episode, ?via=<server>,
// ?limit=<n> (default 50, capped at 500).
func (h *HistoryHandler) List(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	q := h.db.MediaState.Query().
		Order(mediastate.ByUpdated(sql.OrderDesc())).
		Limit(limit)

	if t := c.Query("type"); t != "" {
		if t != string(entity.TypeMovie) && t != string(entity.TypeEpisode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
			return
		}
		q.Where(mediastate.TypeEQ(t))
	}
	if via := c.Query("via"); via != "" {
		q.Where(mediastate.ViaEQ(via))
	}

	rows, err := q.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history"})
		return
	}

	resp := make([]historyResponse, len(rows))
	for i, row := range rows {
		st := entity.State{
			Type:    entity.Type(row.Type),
			Title:   row.Title,
			Year:    row.Year,
			Season:  row.Season,
			Episode: row.Episode,
		}
		resp[i] = historyResponse{
			ID:       int64(row.ID),
			Type:     row.Type,
			Name:     st.Name(),
			Watched:  row.Watched,
			Updated:  row.Updated,
			Via:      row.Via,
			GUIDs:    row.Guids,
			Tainted:  row.Tainted,
			Progress: row.Progress,
		}
	}
	c.JSON(http.StatusOK, resp)
}
