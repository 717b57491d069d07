package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/storage"
	"github.com/ddevcap/watchsync/syncer"
)

// WebhookHandler ingests play-state notifications pushed by the media
// servers themselves, between full sync cycles.
type WebhookHandler struct {
	reg   *syncer.Registry
	store storage.Store
	opts  mapper.Options
}

func NewWebhookHandler(reg *syncer.Registry, store storage.Store, opts mapper.Options) *WebhookHandler {
	return &WebhookHandler{reg: reg, store: store, opts: opts}
}

// Receive handles POST /v1/webhook/:name. The parser decides the response
// status for declined payloads: 200 for valid-but-not-applicable (so the
// sender does not retry), 400 for malformed ones.
func (h *WebhookHandler) Receive(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	client, _, err := h.reg.Resolve(ctx, name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown server"})
		return
	}

	state, err := client.ParseWebhook(ctx, c.Request)
	if err != nil {
		var werr *backend.WebhookError
		if errors.As(err, &werr) {
			c.JSON(werr.Status, gin.H{"message": werr.Message})
			return
		}
		// Unexpected failures are our problem, not the sender's; answering
		// non-200 would only provoke a retry storm.
		slog.Error("webhook: parse failed", "server", name, "error", err)
		c.JSON(http.StatusOK, gin.H{"message": "delivery could not be processed"})
		return
	}

	// A short-lived mapper scoped to this delivery: the merge rules applied
	// during a full import apply to webhook entities too.
	mp := mapper.NewMemory(h.store, h.opts, nil)
	if err := mp.Add(ctx, state, mapper.AddOptions{}); err != nil {
		slog.Error("webhook: failed to buffer entity", "server", name, "error", err)
		c.JSON(http.StatusOK, gin.H{"message": "delivery could not be processed"})
		return
	}
	if _, err := mp.Commit(ctx); err != nil {
		slog.Error("webhook: commit failed", "server", name, "error", err)
		c.JSON(http.StatusOK, gin.H{"message": "delivery could not be processed"})
		return
	}

	slog.Info("webhook: state recorded",
		"server", name, "item", state.Name(), "watched", state.Watched, "tainted", state.Tainted)
	c.JSON(http.StatusOK, gin.H{"message": "state recorded", "item": state.Name()})
}
