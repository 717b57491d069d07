package backend

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/queue"
)

// Client is one media server seen through the sync operations. All
// implementations are safe for use by a single run goroutine; the queue they
// are handed does the parallelism.
type Client interface {
	// Context returns the run descriptor the client was built with.
	Context() *Context

	// Pull imports the backend's play-state into the mapper. When after is
	// non-nil the mapper treats older remote items as metadata-only.
	Pull(ctx context.Context, mp mapper.Mapper, after *time.Time) error

	// Export walks the backend's library content and queues play-state
	// writes for every item whose canonical record disagrees with it.
	Export(ctx context.Context, mp mapper.Mapper, q *queue.Queue, after *time.Time) error

	// Push queues play-state writes for a known set of changed entities,
	// re-fetching each item's current remote state before deciding.
	Push(ctx context.Context, entities []*entity.State, q *queue.Queue) error

	// Progress queues playback-position updates for in-flight items.
	Progress(ctx context.Context, entities []*entity.State, q *queue.Queue) error

	// ParseWebhook turns an incoming webhook request into an entity.
	// Declined payloads return a *WebhookError carrying the status the
	// ingestion endpoint should answer with.
	ParseWebhook(ctx context.Context, r *http.Request) (*entity.State, error)

	// GetMetadata fetches one item's raw metadata by native id.
	GetMetadata(ctx context.Context, id string) (map[string]any, error)

	// GetUsersList lists the server's accounts.
	GetUsersList(ctx context.Context) ([]User, error)
}

// Factory builds a client for one run. stats must not be nil.
type Factory func(c *Context, httpClient *http.Client, stats *Stats) Client

var (
	factoriesMu sync.RWMutex
	factories   = make(map[Kind]Factory)
)

// Register makes a client family available under kind. Called from the
// family packages' init, in the manner of database/sql drivers. Registering
// the same kind twice panics.
func Register(kind Kind, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if _, dup := factories[kind]; dup {
		panic(fmt.Sprintf("backend: Register called twice for kind %q", kind))
	}
	factories[kind] = f
}

// Kinds lists the registered kinds, sorted.
func Kinds() []Kind {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	out := make([]Kind, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// New builds a client for the context's kind. The family package must be
// linked in (blank import in main) or the kind is unknown.
func New(c *Context, httpClient *http.Client, stats *Stats) (Client, error) {
	factoriesMu.RLock()
	f, ok := factories[c.Kind]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("backend: no client registered for kind %q", c.Kind)
	}
	if stats == nil {
		stats = NewStats()
	}
	return f(c, httpClient, stats), nil
}

// WebhookError is a webhook payload the parser declined, carrying the HTTP
// status the ingestion endpoint should answer with: 200 for "valid but not
// applicable" (senders must not retry), 400 for malformed payloads.
type WebhookError struct {
	Status  int
	Message string
}

func (e *WebhookError) Error() string { return e.Message }

// NewWebhookError builds a WebhookError with a formatted message.
func NewWebhookError(status int, format string, args ...any) *WebhookError {
	return &WebhookError{Status: status, Message: fmt.Sprintf(format, args...)}
}
