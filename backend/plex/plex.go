// Package plex implements the sync client for Plex Media Server. Plex
// differs from the Jellyfin family in every surface detail — container
// envelopes, numeric type codes, scrobble-style write endpoints, multipart
// webhooks — but feeds the same canonical pipeline.
package plex

import (
	"net/http"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/ddevcap/watchsync/backend"
)

// Numeric content-type codes the /library/sections endpoints use.
const (
	codeMovie   = 1
	codeShow    = 2
	codeEpisode = 4
)

// Section types eligible for sync.
const (
	sectionMovie = "movie"
	sectionShow  = "show"
)

// clientIdentifier is sent as the plugin identifier on scrobble-style writes.
const clientIdentifier = "com.plexapp.plugins.library"

// Client implements backend.Client for Plex Media Server.
type Client struct {
	ctx   *backend.Context
	http  *http.Client
	stats *backend.Stats

	metaCache *ttlcache.Cache[string, []byte]
}

var _ backend.Client = (*Client)(nil)

func init() {
	backend.Register(backend.KindPlex, New)
}

// New builds a client for one Plex server.
func New(c *backend.Context, httpClient *http.Client, stats *backend.Stats) backend.Client {
	cache := ttlcache.New[string, []byte](
		ttlcache.WithTTL[string, []byte](5 * time.Minute),
	)
	go cache.Start()

	return &Client{
		ctx:       c,
		http:      httpClient,
		stats:     stats,
		metaCache: cache,
	}
}

// Context returns the run descriptor the client was built with.
func (c *Client) Context() *backend.Context { return c.ctx }

func (c *Client) name() string { return c.ctx.Name }
