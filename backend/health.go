package backend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// Default interval between availability checks.
	defaultCheckInterval = 30 * time.Second
	// Timeout for a single availability ping.
	checkTimeout = 5 * time.Second
)

// ServerInfo is the slice of a configured server the availability checker
// needs: enough to ping it and attribute the result.
type ServerInfo struct {
	ID    string
	Name  string
	Kind  Kind
	URL   string
	Token string
}

// ServerLister supplies the current set of enabled servers each check cycle,
// so servers added or disabled at runtime are picked up without a restart.
type ServerLister func(ctx context.Context) ([]ServerInfo, error)

// serverStatus tracks the availability of a single server.
type serverStatus struct {
	available    bool
	lastChecked  time.Time
	lastErr      string
	failureCount int
}

// AvailabilityChecker periodically pings every enabled server and maintains
// an in-memory availability map. Sync runs consult it so a scheduled run
// skips servers that are known to be offline instead of burning the run's
// time budget on timeouts.
type AvailabilityChecker struct {
	list     ServerLister
	client   *http.Client
	interval time.Duration

	mu       sync.RWMutex
	statuses map[string]*serverStatus // keyed by server id

	cancel context.CancelFunc
	done   chan struct{}
}

// NewAvailabilityChecker creates a checker over the given lister.
// Call Start() to begin background checking.
func NewAvailabilityChecker(list ServerLister, client *http.Client, interval time.Duration) *AvailabilityChecker {
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &AvailabilityChecker{
		list:     list,
		client:   client,
		interval: interval,
		statuses: make(map[string]*serverStatus),
		done:     make(chan struct{}),
	}
}

// Start begins the background check loop. It runs an immediate check on
// startup, then repeats at the configured interval. Safe to call once.
func (ac *AvailabilityChecker) Start(ctx context.Context) {
	ctx, ac.cancel = context.WithCancel(ctx)

	go func() {
		defer close(ac.done)

		// Immediate first check so servers are classified before the first run.
		ac.checkAll(ctx)

		ticker := time.NewTicker(ac.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ac.checkAll(ctx)
			}
		}
	}()
}

// Stop signals the check loop to stop and waits for it to finish.
func (ac *AvailabilityChecker) Stop() {
	if ac.cancel != nil {
		ac.cancel()
	}
	<-ac.done
}

// IsAvailable reports whether the server with the given id is considered
// reachable. Servers that have never been checked are assumed available so
// the first run isn't blocked.
func (ac *AvailabilityChecker) IsAvailable(serverID string) bool {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	s, ok := ac.statuses[serverID]
	if !ok {
		return true // unknown = assume available until first check
	}
	return s.available
}

// RecordRequestFailure records a live request failure for a server (e.g.
// connection refused mid-run). Supplements the periodic check — if a server
// starts failing live requests, the circuit trips faster than waiting for
// the next check cycle. After consecutiveRequestFailuresThreshold failures
// the server is marked unavailable until the next successful check.
const consecutiveRequestFailuresThreshold = 5

func (ac *AvailabilityChecker) RecordRequestFailure(serverID, name string) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	s, ok := ac.statuses[serverID]
	if !ok {
		s = &serverStatus{available: true}
		ac.statuses[serverID] = s
	}

	s.failureCount++
	if s.failureCount >= consecutiveRequestFailuresThreshold && s.available {
		slog.Warn("circuit breaker: server marked unavailable after repeated request failures",
			"server", name, "id", serverID,
			"failures", s.failureCount)
		s.available = false
	}
}

// RecordRequestSuccess resets the per-request failure counter for a server.
func (ac *AvailabilityChecker) RecordRequestSuccess(serverID string) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	s, ok := ac.statuses[serverID]
	if !ok {
		return
	}
	// Only reset request-failure count; availability transitions belong to
	// the checker.
	if s.available {
		s.failureCount = 0
	}
}

// ServerAvailability is a snapshot of one server's availability for the
// status endpoint.
type ServerAvailability struct {
	ServerID     string    `json:"server_id"`
	Available    bool      `json:"available"`
	LastChecked  time.Time `json:"last_checked"`
	LastError    string    `json:"last_error,omitempty"`
	FailureCount int       `json:"failure_count"`
}

// Statuses returns a snapshot of all tracked server availability statuses.
func (ac *AvailabilityChecker) Statuses() []ServerAvailability {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	result := make([]ServerAvailability, 0, len(ac.statuses))
	for id, s := range ac.statuses {
		result = append(result, ServerAvailability{
			ServerID:     id,
			Available:    s.available,
			LastChecked:  s.lastChecked,
			LastError:    s.lastErr,
			FailureCount: s.failureCount,
		})
	}
	return result
}

// checkAll lists the enabled servers and pings each one concurrently.
func (ac *AvailabilityChecker) checkAll(ctx context.Context) {
	servers, err := ac.list(ctx)
	if err != nil {
		slog.Warn("availability checker: listing servers failed", "error", err)
		return
	}

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)
		go func(srv ServerInfo) {
			defer wg.Done()
			ac.checkOne(ctx, srv)
		}(srv)
	}
	wg.Wait()
}

// pingPath is the cheapest unauthenticated-ish identity endpoint per family.
func pingPath(kind Kind) string {
	if kind == KindPlex {
		return "/identity"
	}
	return "/System/Info/Public"
}

// checkOne pings a single server's identity endpoint and updates the status
// map accordingly.
func (ac *AvailabilityChecker) checkOne(ctx context.Context, srv ServerInfo) {
	pingURL := strings.TrimRight(srv.URL, "/") + pingPath(srv.Kind)

	reqCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, pingURL, nil)
	if err != nil {
		ac.recordResult(srv.ID, srv.Name, fmt.Errorf("bad url: %w", err))
		return
	}
	if srv.Kind == KindPlex && srv.Token != "" {
		req.Header.Set("X-Plex-Token", srv.Token)
	}

	resp, err := ac.client.Do(req)
	if err != nil {
		ac.recordResult(srv.ID, srv.Name, err)
		return
	}
	_ = resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		ac.recordResult(srv.ID, srv.Name, nil)
	} else {
		ac.recordResult(srv.ID, srv.Name, fmt.Errorf("status %d", resp.StatusCode))
	}
}

// recordResult updates the in-memory status for a server.
// A server is marked unavailable after 2 consecutive failures, and marked
// available again on the first success. This avoids flapping on transient
// single-request failures.
func (ac *AvailabilityChecker) recordResult(id, name string, err error) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	s, ok := ac.statuses[id]
	if !ok {
		s = &serverStatus{available: true}
		ac.statuses[id] = s
	}

	s.lastChecked = time.Now()

	if err == nil {
		if !s.available {
			slog.Info("server came back online", "server", name, "id", id)
		}
		s.available = true
		s.failureCount = 0
		s.lastErr = ""
		return
	}

	s.failureCount++
	s.lastErr = err.Error()

	// Require 2 consecutive failures before marking unavailable to avoid
	// flapping on a single dropped packet.
	if s.failureCount >= 2 && s.available {
		slog.Warn("server marked unavailable",
			"server", name, "id", id,
			"failures", s.failureCount, "error", err)
		s.available = false
	}
}
