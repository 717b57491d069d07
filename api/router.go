// Package api exposes the HTTP façade: webhook ingestion, server listing,
// health probes. All sync logic lives below it.
package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/ddevcap/watchsync/api/handler"
	"github.com/ddevcap/watchsync/api/middleware"
	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/config"
	"github.com/ddevcap/watchsync/ent"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/storage"
	"github.com/ddevcap/watchsync/syncer"
)

// corsMiddleware allows credentialed requests from the configured external
// URL plus any extra origins. Webhook senders are server-to-server and ignore
// CORS; this exists for browser dashboards polling the read endpoints.
func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	allowed := buildAllowedOrigins(cfg.ExternalURL)
	for _, o := range cfg.CORSOrigins {
		allowed[strings.ToLower(o)] = true
	}

	return cors.New(cors.Config{
		AllowOriginWithContextFunc: func(c *gin.Context, origin string) bool {
			return allowed[strings.ToLower(origin)]
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "User-Agent", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

// NewRouter builds the HTTP handler.
func NewRouter(
	db *ent.Client,
	cfg config.Config,
	reg *syncer.Registry,
	checker *backend.AvailabilityChecker,
	store storage.Store,
	opts mapper.Options,
) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestid.New(), middleware.RequestLogger(), corsMiddleware(cfg))

	webhookH := handler.NewWebhookHandler(reg, store, opts)
	serverH := handler.NewServerHandler(db, checker)
	historyH := handler.NewHistoryHandler(db)

	v1 := r.Group("/v1")
	{
		v1.POST("/webhook/:name", webhookH.Receive)

		v1.GET("/servers", serverH.ListServers)
		v1.GET("/servers/health", serverH.Health)
		v1.GET("/servers/:id", serverH.GetServer)

		v1.GET("/history", historyH.List)
	}

	// Health probes — for container orchestrators.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		// Readiness means the database answers queries.
		if _, err := db.Server.Query().Count(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	return r
}

// buildAllowedOrigins derives the credentialed origin set from the configured
// external URL, including its http/https counterpart so both schemes work
// during development.
func buildAllowedOrigins(externalURL string) map[string]bool {
	origins := make(map[string]bool)
	if externalURL == "" {
		return origins
	}
	parsed, err := url.Parse(externalURL)
	if err != nil {
		origins[strings.ToLower(externalURL)] = true
		return origins
	}
	origin := strings.ToLower(parsed.Scheme + "://" + parsed.Host)
	origins[origin] = true
	switch parsed.Scheme {
	case "https":
		origins["http://"+strings.ToLower(parsed.Host)] = true
	case "http":
		origins["https://"+strings.ToLower(parsed.Host)] = true
	}
	return origins
}
