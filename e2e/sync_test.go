package e2e

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/config"
	"github.com/ddevcap/watchsync/ent"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/storage"
	"github.com/ddevcap/watchsync/syncer"
)

const (
	dateAdded  = "2024-01-10T08:00:00Z"
	datePlayed = "2024-02-01T20:30:00Z"
)

// fakeJellyfin serves one movie library with a single item and records every
// state-changing request it receives.
type fakeJellyfin struct {
	srv  *httptest.Server
	item string

	mu     sync.Mutex
	writes []string
	broken bool // answer enumeration requests with 500
}

func newFakeJellyfin(itemID string, played bool) *fakeJellyfin {
	f := &fakeJellyfin{}
	f.item = movieDoc(itemID, played)

	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			f.mu.Lock()
			f.writes = append(f.writes, r.Method+" "+r.URL.Path)
			f.mu.Unlock()
			w.WriteHeader(http.StatusOK)
			return
		}

		q := r.URL.Query()
		switch {
		case strings.HasSuffix(r.URL.Path, "/Items/"+itemID):
			fmt.Fprint(w, f.item)
		case q.Get("parentId") == "":
			fmt.Fprint(w, `{"Items":[{"Id":"lib-movies","Type":"CollectionFolder","Name":"Movies","CollectionType":"movies"}],"TotalRecordCount":1}`)
		case f.isBroken():
			w.WriteHeader(http.StatusInternalServerError)
		case q.Get("limit") == "0":
			fmt.Fprint(w, `{"Items":[],"TotalRecordCount":1}`)
		default:
			fmt.Fprintf(w, `{"Items":[%s],"TotalRecordCount":1}`, f.item)
		}
	}))
	return f
}

func (f *fakeJellyfin) isBroken() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.broken
}

func (f *fakeJellyfin) breakEnumeration() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broken = true
}

func (f *fakeJellyfin) writeLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

func movieDoc(id string, played bool) string {
	userData := `{"Played":false,"PlaybackPositionTicks":0}`
	if played {
		userData = fmt.Sprintf(`{"Played":true,"LastPlayedDate":%q,"PlaybackPositionTicks":0}`, datePlayed)
	}
	return fmt.Sprintf(`{"Id":%q,"Type":"Movie","Name":"Heat","ProductionYear":1995,
		"DateCreated":%q,
		"ProviderIds":{"Imdb":"tt0113277","Tmdb":"949"},
		"UserData":%s}`, id, dateAdded, userData)
}

func addServer(name, url string) *ent.Server {
	return db.Server.Create().
		SetName(name).
		SetKind("jellyfin").
		SetURL(url).
		SetToken("secret").
		SetUserID("u1").
		SetEnabled(true).
		SaveX(context.Background())
}

func newRunner(cfg config.Config, opts mapper.Options) *syncer.Runner {
	reg := syncer.NewRegistry(db, http.DefaultClient, cfg)
	store := storage.NewEntStore(db)
	return syncer.NewRunner(db, reg, store, nil, time.Hour, opts)
}

var _ = Describe("Full sync cycle", func() {
	BeforeEach(cleanDB)

	cfg := config.Config{LibrarySegment: 100, MaxEpisodeRange: 3, ExportTimeMargin: 10 * time.Second}

	It("propagates a watched state from one server to the other", func() {
		alpha := newFakeJellyfin("am1", true)
		defer alpha.srv.Close()
		beta := newFakeJellyfin("bm1", false)
		defer beta.srv.Close()

		rowA := addServer("alpha", alpha.srv.URL)
		rowB := addServer("beta", beta.srv.URL)

		runner := newRunner(cfg, mapper.Options{})
		Expect(runner.RunCycle(context.Background())).To(Succeed())

		ctx := context.Background()

		// One canonical record, watched, attributed to the server that saw it.
		state := db.MediaState.Query().OnlyX(ctx)
		Expect(state.Title).To(Equal("Heat"))
		Expect(state.Watched).To(BeTrue())
		Expect(state.Via).To(Equal("alpha"))
		Expect(state.Metadata).To(HaveKey("alpha"))
		Expect(state.Metadata).To(HaveKey("beta"))

		// The lagging server got marked played; the up-to-date one was left alone.
		Expect(beta.writeLines()).To(ContainElement("POST /Users/u1/PlayedItems/bm1"))
		Expect(alpha.writeLines()).To(BeEmpty())

		// A clean run advances both checkpoints.
		Expect(db.Server.GetX(ctx, rowA.ID).ImportAfter).NotTo(BeNil())
		Expect(db.Server.GetX(ctx, rowB.ID).ExportAfter).NotTo(BeNil())
	})

	It("agrees to do nothing when both servers already match", func() {
		alpha := newFakeJellyfin("am1", true)
		defer alpha.srv.Close()
		beta := newFakeJellyfin("bm1", true)
		defer beta.srv.Close()

		addServer("alpha", alpha.srv.URL)
		addServer("beta", beta.srv.URL)

		runner := newRunner(cfg, mapper.Options{})
		Expect(runner.RunCycle(context.Background())).To(Succeed())

		Expect(alpha.writeLines()).To(BeEmpty())
		Expect(beta.writeLines()).To(BeEmpty())
	})

	It("reconciles pre-existing history on a server's first cycle", func() {
		beta := newFakeJellyfin("bm1", false)
		defer beta.srv.Close()
		rowB := addServer("beta", beta.srv.URL)

		// History recorded before beta was enrolled; no cycle ever pushed
		// it, so only a full reconciliation can reach it.
		playedAt, _ := time.Parse(time.RFC3339, datePlayed)
		store := storage.NewEntStore(db)
		_, err := store.Insert(context.Background(), &entity.State{
			Type: entity.TypeMovie, Title: "Heat", Year: 1995,
			Watched: true, UpdatedAt: playedAt.Unix(), Via: "alpha",
			GUIDs: guid.Set{guid.IMDB: "tt0113277", guid.TMDB: "949"},
		})
		Expect(err).NotTo(HaveOccurred())

		runner := newRunner(cfg, mapper.Options{})
		Expect(runner.RunCycle(context.Background())).To(Succeed())

		Expect(beta.writeLines()).To(ContainElement("POST /Users/u1/PlayedItems/bm1"))
		Expect(db.Server.GetX(context.Background(), rowB.ID).ExportAfter).NotTo(BeNil(),
			"subsequent cycles go back to targeted pushes")
	})

	It("holds back the checkpoint of a server that failed enumeration", func() {
		alpha := newFakeJellyfin("am1", true)
		defer alpha.srv.Close()
		beta := newFakeJellyfin("bm1", false)
		defer beta.srv.Close()
		beta.breakEnumeration()

		rowA := addServer("alpha", alpha.srv.URL)
		rowB := addServer("beta", beta.srv.URL)

		runner := newRunner(cfg, mapper.Options{})
		Expect(runner.RunCycle(context.Background())).To(Succeed())

		ctx := context.Background()
		Expect(db.Server.GetX(ctx, rowA.ID).ImportAfter).NotTo(BeNil())
		Expect(db.Server.GetX(ctx, rowB.ID).ImportAfter).To(BeNil(),
			"the next cycle must re-cover the failed window")
	})

	It("records what it would write in dry-run without touching anything", func() {
		alpha := newFakeJellyfin("am1", true)
		defer alpha.srv.Close()
		beta := newFakeJellyfin("bm1", false)
		defer beta.srv.Close()

		addServer("alpha", alpha.srv.URL)
		addServer("beta", beta.srv.URL)

		dryCfg := cfg
		dryCfg.DryRun = true
		reg := syncer.NewRegistry(db, http.DefaultClient, dryCfg)
		store := storage.NewEntStore(db)
		runner := syncer.NewRunner(db, reg, store, nil, time.Hour, mapper.Options{DryRun: true})
		Expect(runner.RunCycle(context.Background())).To(Succeed())

		Expect(db.MediaState.Query().CountX(context.Background())).To(BeZero())
		Expect(beta.writeLines()).To(BeEmpty())
	})
})
