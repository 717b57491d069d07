package syncer

import (
	"context"
	"log/slog"
	"time"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/ent"
	entserver "github.com/ddevcap/watchsync/ent/server"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/queue"
	"github.com/ddevcap/watchsync/storage"
)

// Runner drives the periodic sync cycle: import every enabled server's
// play-state, commit the merged changes, then push the resulting change set
// back out. A server that records errors during import never advances its
// checkpoint, so the next cycle re-covers the same window.
type Runner struct {
	db      *ent.Client
	reg     *Registry
	store   storage.Store
	checker *backend.AvailabilityChecker

	interval time.Duration
	opts     mapper.Options

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner assembles a runner. checker may be nil, in which case every
// server is assumed reachable.
func NewRunner(db *ent.Client, reg *Registry, store storage.Store, checker *backend.AvailabilityChecker, interval time.Duration, opts mapper.Options) *Runner {
	return &Runner{
		db:       db,
		reg:      reg,
		store:    store,
		checker:  checker,
		interval: interval,
		opts:     opts,
		done:     make(chan struct{}),
	}
}

// Start begins the background cycle loop. A zero interval disables it.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	go func() {
		defer close(r.done)
		if r.interval <= 0 {
			slog.Info("periodic sync disabled; webhooks only")
			<-ctx.Done()
			return
		}
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.RunCycle(ctx); err != nil {
					slog.Error("sync cycle failed", "error", err)
				}
			}
		}
	}()
}

// Stop signals the loop to stop and waits for it.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	<-r.done
}

// RunCycle executes one full import/push pass across the enabled servers.
// A server that has never completed a clean cycle gets a full export
// reconciliation in place of the targeted push.
func (r *Runner) RunCycle(ctx context.Context) error {
	cycleStart := time.Now()

	rows, err := r.db.Server.Query().
		Where(entserver.Enabled(true)).
		All(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		slog.Info("no enabled servers; nothing to sync")
		return nil
	}

	mp := mapper.NewMemory(r.store, r.opts, nil)

	type participant struct {
		row    *ent.Server
		client backend.Client
		stats  *backend.Stats
	}
	var participants []participant

	for _, row := range rows {
		if r.checker != nil && !r.checker.IsAvailable(row.ID.String()) {
			slog.Warn("skipping unavailable server", "server", row.Name)
			continue
		}
		cli, stats, err := r.reg.ClientFor(row)
		if err != nil {
			slog.Error("skipping misconfigured server", "server", row.Name, "error", err)
			continue
		}
		participants = append(participants, participant{row: row, client: cli, stats: stats})
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.row.Name)

		start := time.Now()
		if err := p.client.Pull(ctx, mp, p.row.ImportAfter); err != nil {
			slog.Error("import failed", "server", p.row.Name, "error", err)
			continue
		}
		slog.Info("import finished",
			append([]any{"server", p.row.Name, "elapsed", time.Since(start).Round(time.Millisecond)},
				p.stats.LogAttrs()...)...)
	}

	// Change sets and progress items must be read before Commit resets the
	// buffer.
	progress := mp.ProgressItems()
	changes := mp.ComputeChanges(names)

	summary, err := mp.Commit(ctx)
	if err != nil {
		return err
	}
	for etype, counts := range summary {
		slog.Info("commit finished", "type", string(etype),
			"added", counts.Added, "updated", counts.Updated, "failed", counts.Failed)
	}

	q := queue.New(r.reg.HTTPClient())
	for _, p := range participants {
		if p.row.ExportAfter == nil {
			// No export checkpoint means this server has never been
			// reconciled; the targeted change set cannot cover its
			// history, so walk the whole library once.
			if err := p.client.Export(ctx, mp, q, nil); err != nil {
				slog.Error("export failed", "server", p.row.Name, "error", err)
			}
		} else if set := changes[p.row.Name]; len(set) > 0 {
			if err := p.client.Push(ctx, set, q); err != nil {
				slog.Error("push failed", "server", p.row.Name, "error", err)
			}
		}
		if len(progress) > 0 {
			if err := p.client.Progress(ctx, progress, q); err != nil {
				slog.Error("progress propagation failed", "server", p.row.Name, "error", err)
			}
		}
	}
	q.Drain()

	for _, p := range participants {
		if p.stats.HasErrors() {
			slog.Warn("checkpoint held back after errors", "server", p.row.Name)
			continue
		}
		if err := r.db.Server.UpdateOneID(p.row.ID).
			SetImportAfter(cycleStart).
			SetExportAfter(cycleStart).
			Exec(ctx); err != nil {
			slog.Error("failed to advance checkpoint", "server", p.row.Name, "error", err)
		}
	}
	return nil
}
