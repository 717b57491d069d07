package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/ent"
	entserver "github.com/ddevcap/watchsync/ent/server"
)

// ServerHandler exposes the configured media servers, read-only. Tokens are
// never echoed back.
type ServerHandler struct {
	db      *ent.Client
	checker *backend.AvailabilityChecker
}

func NewServerHandler(db *ent.Client, checker *backend.AvailabilityChecker) *ServerHandler {
	return &ServerHandler{db: db, checker: checker}
}

type serverResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Kind        string     `json:"kind"`
	URL         string     `json:"url"`
	UserID      string     `json:"user_id"`
	Enabled     bool       `json:"enabled"`
	ImportAfter *time.Time `json:"import_after,omitempty"`
	ExportAfter *time.Time `json:"export_after,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toServerResponse(s *ent.Server) serverResponse {
	return serverResponse{
		ID:          s.ID,
		Name:        s.Name,
		Kind:        s.Kind,
		URL:         s.URL,
		UserID:      s.UserID,
		Enabled:     s.Enabled,
		ImportAfter: s.ImportAfter,
		ExportAfter: s.ExportAfter,
		CreatedAt:   s.CreatedAt,
	}
}

// ListServers handles GET /v1/servers.
func (h *ServerHandler) ListServers(c *gin.Context) {
	rows, err := h.db.Server.Query().
		Order(entserver.ByName()).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list servers"})
		return
	}

	resp := make([]serverResponse, len(rows))
	for i, row := range rows {
		resp[i] = toServerResponse(row)
	}
	c.JSON(http.StatusOK, resp)
}

// GetServer handles GET /v1/servers/:id.
func (h *ServerHandler) GetServer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid server ID"})
		return
	}

	row, err := h.db.Server.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "server not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get server"})
		return
	}

	c.JSON(http.StatusOK, toServerResponse(row))
}

// Health handles GET /v1/servers/health, reporting what the availability
// checker currently believes about each server.
func (h *ServerHandler) Health(c *gin.Context) {
	if h.checker == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, h.checker.Statuses())
}
