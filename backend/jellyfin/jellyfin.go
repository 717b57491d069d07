// Package jellyfin implements the sync client for Jellyfin servers. Emby
// shares the same API family, so the package serves both kinds and branches
// only where the products diverge (the played-date query parameter on
// play-state writes).
package jellyfin

import (
	"net/http"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/ddevcap/watchsync/backend"
)

// Item types as the API reports them.
const (
	typeMovie   = "Movie"
	typeEpisode = "Episode"
	typeShow    = "Series"
)

// Library collection types eligible for sync.
const (
	collectionMovies = "movies"
	collectionShows  = "tvshows"
)

// extraFields asks the API for the fields entity construction needs beyond
// the defaults.
var extraFields = []string{
	"ProviderIds",
	"DateCreated",
	"OriginalTitle",
	"SeasonUserData",
	"DateLastSaved",
}

// Client implements backend.Client for the Jellyfin API family.
type Client struct {
	ctx   *backend.Context
	http  *http.Client
	stats *backend.Stats

	// metaCache holds raw item detail payloads; bypassed when the NoCache
	// option is set.
	metaCache *ttlcache.Cache[string, []byte]
}

var _ backend.Client = (*Client)(nil)

func init() {
	backend.Register(backend.KindJellyfin, New)
	backend.Register(backend.KindEmby, New)
}

// New builds a client for one Jellyfin or Emby server.
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

// name is shorthand for the configured server name used in log lines and
// metadata slot keys.
func (c *Client) name() string { return c.ctx.Name }
