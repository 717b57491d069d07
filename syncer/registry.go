// Package syncer turns the stored server table into live backend clients and
// drives the periodic import/export cycle across them.
package syncer

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/config"
	"github.com/ddevcap/watchsync/ent"
	entserver "github.com/ddevcap/watchsync/ent/server"
)

// Registry builds backend clients from server rows. Run contexts are cached
// per server name so the show-parent arena survives across cycles and
// webhook deliveries.
type Registry struct {
	db   *ent.Client
	http *http.Client
	cfg  config.Config

	mu       sync.Mutex
	contexts map[string]*backend.Context
}

// NewRegistry wraps the database and the shared HTTP client.
func NewRegistry(db *ent.Client, httpClient *http.Client, cfg config.Config) *Registry {
	return &Registry{
		db:       db,
		http:     httpClient,
		cfg:      cfg,
		contexts: make(map[string]*backend.Context),
	}
}

// HTTPClient returns the shared transport client.
func (g *Registry) HTTPClient() *http.Client { return g.http }

// ClientFor builds a client for one server row with a fresh stats
// accumulator.
func (g *Registry) ClientFor(row *ent.Server) (backend.Client, *backend.Stats, error) {
	bctx, err := g.contextFor(row)
	if err != nil {
		return nil, nil, err
	}
	stats := backend.NewStats()
	cli, err := backend.New(bctx, g.http, stats)
	if err != nil {
		return nil, nil, err
	}
	return cli, stats, nil
}

// Resolve looks a server up by name and returns a client for it. Used by the
// webhook endpoint, where the name arrives in the URL.
func (g *Registry) Resolve(ctx context.Context, name string) (backend.Client, *backend.Stats, error) {
	row, err := g.db.Server.Query().
		Where(entserver.NameEQ(name), entserver.Enabled(true)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil, fmt.Errorf("syncer: no enabled server named %q", name)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("syncer: resolving server %q: %w", name, err)
	}
	return g.ClientFor(row)
}

// ServerLister adapts the server table to the availability checker's needs.
func (g *Registry) ServerLister() backend.ServerLister {
	return func(ctx context.Context) ([]backend.ServerInfo, error) {
		rows, err := g.db.Server.Query().
			Where(entserver.Enabled(true)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("syncer: listing servers: %w", err)
		}
		out := make([]backend.ServerInfo, 0, len(rows))
		for _, row := range rows {
			kind, err := backend.ParseKind(row.Kind)
			if err != nil {
				continue
			}
			out = append(out, backend.ServerInfo{
				ID:    row.ID.String(),
				Name:  row.Name,
				Kind:  kind,
				URL:   row.URL,
				Token: row.Token,
			})
		}
		return out, nil
	}
}

// contextFor returns the cached run context for a server row, building one
// on first use.
func (g *Registry) contextFor(row *ent.Server) (*backend.Context, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if bctx, ok := g.contexts[row.Name]; ok {
		return bctx, nil
	}

	kind, err := backend.ParseKind(row.Kind)
	if err != nil {
		return nil, fmt.Errorf("syncer: server %q: %w", row.Name, err)
	}

	bctx := backend.NewContext(row.Name, kind, row.URL, row.Token, row.UserID, g.options(row))
	g.contexts[row.Name] = bctx
	return bctx, nil
}

// options combines the instance-wide sync knobs with the row's own ignore
// list.
func (g *Registry) options(row *ent.Server) backend.Options {
	return backend.Options{
		DryRun:           g.cfg.DryRun,
		IgnoreDate:       g.cfg.IgnoreDate,
		DebugTrace:       g.cfg.Trace,
		LibrarySegment:   g.cfg.LibrarySegment,
		MaxEpisodeRange:  g.cfg.MaxEpisodeRange,
		ExportTimeMargin: g.cfg.ExportTimeMargin,
		Ignore:           ignoreList(row.Options),
	}
}

func ignoreList(options map[string]any) []string {
	raw, ok := options["ignore"].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
