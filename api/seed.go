package api

import (
	"context"
	"log/slog"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/config"
	"github.com/ddevcap/watchsync/ent"
)

// SeedServers creates server rows from the SERVERS environment seed when the
// table is empty. It is a no-op when servers already exist, so it is safe to
// call on every startup.
func SeedServers(ctx context.Context, db *ent.Client, cfg config.Config) {
	count, err := db.Server.Query().Count(ctx)
	if err != nil {
		slog.Error("seed: failed to count servers", "error", err)
		return
	}
	if count > 0 {
		// Servers already exist; nothing to do.
		return
	}

	seeds, err := cfg.ParseServers()
	if err != nil {
		slog.Error("seed: invalid SERVERS value", "error", err)
		return
	}
	if len(seeds) == 0 {
		slog.Warn("seed: no servers configured — set SERVERS to seed the first ones on startup")
		return
	}

	for _, s := range seeds {
		if _, err := backend.ParseKind(s.Kind); err != nil {
			slog.Error("seed: skipping server with unsupported kind", "server", s.Name, "kind", s.Kind)
			continue
		}

		options := map[string]any{}
		if len(s.Ignore) > 0 {
			options["ignore"] = toAnySlice(s.Ignore)
		}

		_, err := db.Server.Create().
			SetName(s.Name).
			SetKind(s.Kind).
			SetURL(s.URL).
			SetToken(s.Token).
			SetUserID(s.UserID).
			SetEnabled(true).
			SetOptions(options).
			Save(ctx)
		if err != nil {
			slog.Error("seed: failed to create server", "server", s.Name, "error", err)
			continue
		}
		slog.Info("seed: created server", "server", s.Name, "kind", s.Kind)
	}
}

// toAnySlice widens the ignore list to the shape the options JSON column
// round-trips through.
func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
