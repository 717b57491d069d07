package jellyfin_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/backend"
	"github.com/ddevcap/watchsync/backend/jellyfin"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/queue"
)

func TestJellyfin(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Jellyfin Suite")
}

// ── Test doubles ─────────────────────────────────────────────────────────────

// recorder collects what the fake server saw; queue goroutines hit it
// concurrently.
type recorder struct {
	mu           sync.Mutex
	startIndexes []string
	writes       []string // "METHOD path?query" for state-changing calls
}

func (r *recorder) sawSegment(idx string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startIndexes = append(r.startIndexes, idx)
}

func (r *recorder) sawWrite(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	line := req.Method + " " + req.URL.Path
	if req.URL.RawQuery != "" {
		line += "?" + req.URL.RawQuery
	}
	r.writes = append(r.writes, line)
}

func (r *recorder) segments() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.startIndexes...)
	sort.Strings(out)
	return out
}

func (r *recorder) writeLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

// fakeMapper records Add calls and answers Get from a fixed lookup.
type fakeMapper struct {
	mu     sync.Mutex
	added  []*entity.State
	lookup func(*entity.State) *entity.State
}

func (m *fakeMapper) Load(context.Context, *time.Time) error { return nil }

func (m *fakeMapper) Add(_ context.Context, e *entity.State, _ mapper.AddOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.added = append(m.added, e)
	return nil
}

func (m *fakeMapper) Get(_ context.Context, e *entity.State) (*entity.State, error) {
	if m.lookup == nil {
		return nil, nil
	}
	return m.lookup(e), nil
}

func (m *fakeMapper) Remove(context.Context, *entity.State) (bool, error) { return false, nil }
func (m *fakeMapper) ComputeChanges([]string) map[string][]*entity.State  { return nil }
func (m *fakeMapper) ProgressItems() []*entity.State                      { return nil }
func (m *fakeMapper) Commit(context.Context) (mapper.Summary, error)      { return nil, nil }
func (m *fakeMapper) Reset()                                              {}
func (m *fakeMapper) Count() int                                          { return 0 }
func (m *fakeMapper) SetOptions(mapper.Options)                           {}

func (m *fakeMapper) addedEntities() []*entity.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entity.State(nil), m.added...)
}

// ── Payload builders ─────────────────────────────────────────────────────────

const (
	dateAdded  = "2024-01-10T08:00:00Z"
	datePlayed = "2024-02-01T20:30:00Z"
)

func moviesViews() string {
	return `{"Items":[
		{"Id":"lib-movies","Type":"CollectionFolder","Name":"Movies","CollectionType":"movies"},
		{"Id":"lib-music","Type":"CollectionFolder","Name":"Music","CollectionType":"music"}
	],"TotalRecordCount":2}`
}

func showsViews() string {
	return `{"Items":[
		{"Id":"lib-shows","Type":"CollectionFolder","Name":"Shows","CollectionType":"tvshows"}
	],"TotalRecordCount":1}`
}

func movieItem(id, name string, played bool, withDate bool) string {
	created := ""
	if withDate {
		created = fmt.Sprintf(`"DateCreated":%q,`, dateAdded)
	}
	lastPlayed := ""
	if played {
		lastPlayed = fmt.Sprintf(`"LastPlayedDate":%q,`, datePlayed)
	}
	return fmt.Sprintf(`{
		"Id":%q,"Type":"Movie","Name":%q,"ProductionYear":1995,%s
		"ProviderIds":{"Imdb":"tt0113277","Tmdb":"949"},
		"UserData":{%s"Played":%t,"PlaybackPositionTicks":0}
	}`, id, name, created, lastPlayed, played)
}

func episodeItem(id string, index, indexEnd int) string {
	return fmt.Sprintf(`{
		"Id":%q,"Type":"Episode","Name":"Pilot","SeriesId":"s1","SeriesName":"The Wire",
		"ParentIndexNumber":1,"IndexNumber":%d,"IndexNumberEnd":%d,
		"DateCreated":%q,
		"ProviderIds":{"Imdb":"tt0749451"},
		"UserData":{"Played":true,"LastPlayedDate":%q}
	}`, id, index, indexEnd, dateAdded, datePlayed)
}

func page(items ...string) string {
	return fmt.Sprintf(`{"Items":[%s],"TotalRecordCount":%d}`, strings.Join(items, ","), len(items))
}

func countPage(total int) string {
	return fmt.Sprintf(`{"Items":[],"TotalRecordCount":%d}`, total)
}

func newClient(srv *httptest.Server, kind backend.Kind, opts backend.Options) (backend.Client, *backend.Stats) {
	c := backend.NewContext("home", kind, srv.URL, "secret", "u1", opts)
	stats := backend.NewStats()
	return jellyfin.New(c, srv.Client(), stats), stats
}

// ── Pull ─────────────────────────────────────────────────────────────────────

var _ = Describe("Pull", func() {
	It("fetches a large library as fixed-size segments", func() {
		rec := &recorder{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case q.Get("parentId") == "":
				fmt.Fprint(w, moviesViews())
			case q.Get("limit") == "0":
				fmt.Fprint(w, countPage(2500))
			default:
				rec.sawSegment(q.Get("startIndex"))
				fmt.Fprint(w, page(movieItem("m1", "Heat", true, true)))
			}
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{LibrarySegment: 1000})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		Expect(rec.segments()).To(Equal([]string{"0", "1000", "2000"}))
		Expect(mp.addedEntities()).To(HaveLen(3), "one item per segment page")
	})

	It("skips items without any usable date and counts them", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case q.Get("parentId") == "":
				fmt.Fprint(w, moviesViews())
			case q.Get("limit") == "0":
				fmt.Fprint(w, countPage(1))
			default:
				fmt.Fprint(w, page(movieItem("m1", "Heat", false, false)))
			}
		}))
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		Expect(mp.addedEntities()).To(BeEmpty())
		Expect(stats.Get(backend.StatSkippedDate)).To(Equal(int64(1)))
	})

	It("expands a short multi-episode file into one entity per index", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case q.Get("parentId") == "":
				fmt.Fprint(w, showsViews())
			case q.Get("limit") == "0":
				fmt.Fprint(w, countPage(1))
			case q.Get("includeItemTypes") == "Series":
				fmt.Fprint(w, page(`{"Id":"s1","Type":"Series","Name":"The Wire","ProviderIds":{"Imdb":"tt0306414"}}`))
			default:
				fmt.Fprint(w, page(episodeItem("e1", 5, 6)))
			}
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{MaxEpisodeRange: 3})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		added := mp.addedEntities()
		Expect(added).To(HaveLen(2))
		episodes := []int{added[0].Episode, added[1].Episode}
		sort.Ints(episodes)
		Expect(episodes).To(Equal([]int{5, 6}))
		Expect(added[0].Season).To(Equal(1))
		Expect(added[0].ParentGUIDs).NotTo(BeEmpty(), "series pass seeds the parent arena")
	})

	It("keeps only the first index of an implausibly wide range", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case q.Get("parentId") == "":
				fmt.Fprint(w, showsViews())
			case q.Get("limit") == "0":
				fmt.Fprint(w, countPage(1))
			case q.Get("includeItemTypes") == "Series":
				fmt.Fprint(w, page())
			default:
				fmt.Fprint(w, page(episodeItem("e1", 5, 10)))
			}
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{MaxEpisodeRange: 3})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		added := mp.addedEntities()
		Expect(added).To(HaveLen(1))
		Expect(added[0].Episode).To(Equal(5))
	})

	It("skips empty libraries with a warning instead of scattering requests", func() {
		rec := &recorder{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case q.Get("parentId") == "":
				fmt.Fprint(w, moviesViews())
			case q.Get("limit") == "0":
				fmt.Fprint(w, countPage(0))
			default:
				rec.sawSegment(q.Get("startIndex"))
				fmt.Fprint(w, page())
			}
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		Expect(client.Pull(context.Background(), &fakeMapper{}, nil)).To(Succeed())
		Expect(rec.segments()).To(BeEmpty())
	})

	It("keeps pulling the remaining libraries when one count fails", func() {
		views := `{"Items":[
			{"Id":"lib-a","Type":"CollectionFolder","Name":"Action","CollectionType":"movies"},
			{"Id":"lib-b","Type":"CollectionFolder","Name":"Drama","CollectionType":"movies"}
		],"TotalRecordCount":2}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case q.Get("parentId") == "":
				fmt.Fprint(w, views)
			case q.Get("parentId") == "lib-a" && q.Get("limit") == "0":
				w.WriteHeader(http.StatusInternalServerError)
			case q.Get("limit") == "0":
				fmt.Fprint(w, countPage(1))
			default:
				fmt.Fprint(w, page(movieItem("m1", "Heat", true, true)))
			}
		}))
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		Expect(mp.addedEntities()).To(HaveLen(1), "the healthy library still imports")
		Expect(stats.HasErrors()).To(BeTrue())
	})

	It("fails the run when library enumeration fails", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		Expect(client.Pull(context.Background(), &fakeMapper{}, nil)).NotTo(Succeed())
		Expect(stats.HasErrors()).To(BeTrue())
	})
})

// ── Export ───────────────────────────────────────────────────────────────────

var _ = Describe("Export", func() {
	playedAt, _ := time.Parse(time.RFC3339, datePlayed)

	exportServer := func(rec *recorder, remoteItem string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "/PlayedItems/") {
				rec.sawWrite(r)
				fmt.Fprint(w, `{}`)
				return
			}
			q := r.URL.Query()
			switch {
			case q.Get("parentId") == "":
				fmt.Fprint(w, moviesViews())
			case q.Get("limit") == "0":
				fmt.Fprint(w, countPage(1))
			default:
				fmt.Fprint(w, page(remoteItem))
			}
		}))
	}

	It("queues a mark-played write when the canonical record is newer", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: playedAt.Unix(), Via: "cinema",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		lines := rec.writeLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("POST /Users/u1/PlayedItems/m1"))
		Expect(lines[0]).To(ContainSubstring("DatePlayed="), "jellyfin records the played date")
		Expect(stats.Get(backend.StatQueuedPlay)).To(Equal(int64(1)))
	})

	It("omits the DatePlayed stamp for emby servers", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindEmby, backend.Options{})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: playedAt.Unix(), Via: "cinema",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		lines := rec.writeLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).NotTo(ContainSubstring("DatePlayed="))
	})

	It("does not write when the backend already agrees", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieItem("m1", "Heat", true, true))
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: playedAt.Unix(), Via: "cinema",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
		Expect(stats.Get(backend.StatSkipped)).To(BeNumerically(">=", 1))
	})

	It("treats a remote date within the clock-skew margin as current", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		addedAt, _ := time.Parse(time.RFC3339, dateAdded)
		client, stats := newClient(srv, backend.KindJellyfin,
			backend.Options{ExportTimeMargin: 10 * time.Second})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: addedAt.Unix() + 5, Via: "cinema",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty(),
			"a 5s lag is clock skew, not a missed watch")
		Expect(stats.Get(backend.StatSkipped)).To(BeNumerically(">=", 1))
	})

	It("writes when the canonical record clears the margin", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		addedAt, _ := time.Parse(time.RFC3339, dateAdded)
		client, _ := newClient(srv, backend.KindJellyfin,
			backend.Options{ExportTimeMargin: 10 * time.Second})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: addedAt.Unix() + 60, Via: "cinema",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(HaveLen(1))
	})

	It("keeps exporting the remaining libraries when one count fails", func() {
		rec := &recorder{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "/PlayedItems/") {
				rec.sawWrite(r)
				fmt.Fprint(w, `{}`)
				return
			}
			q := r.URL.Query()
			switch {
			case q.Get("parentId") == "":
				fmt.Fprint(w, `{"Items":[
					{"Id":"lib-a","Type":"CollectionFolder","Name":"Action","CollectionType":"movies"},
					{"Id":"lib-b","Type":"CollectionFolder","Name":"Drama","CollectionType":"movies"}
				],"TotalRecordCount":2}`)
			case q.Get("parentId") == "lib-a" && q.Get("limit") == "0":
				w.WriteHeader(http.StatusInternalServerError)
			case q.Get("limit") == "0":
				fmt.Fprint(w, countPage(1))
			default:
				fmt.Fprint(w, page(movieItem("m1", "Heat", false, true)))
			}
		}))
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: playedAt.Unix(), Via: "cinema",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(HaveLen(1), "the healthy library still exports")
		Expect(stats.HasErrors()).To(BeTrue())
	})

	It("does not write items that were never imported", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		mp := &fakeMapper{} // lookup always misses

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
	})

	It("never echoes a change back to its origin", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: playedAt.Unix(), Via: "home",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
	})

	It("logs instead of writing in dry-run mode", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{DryRun: true})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: playedAt.Unix(), Via: "cinema",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
		Expect(stats.Get(backend.StatQueuedPlay)).To(Equal(int64(1)), "dry-run still counts")
	})
})

// ── Push ─────────────────────────────────────────────────────────────────────

var _ = Describe("Push", func() {
	pushServer := func(rec *recorder, remoteItem string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "/PlayedItems/") {
				rec.sawWrite(r)
				fmt.Fprint(w, `{}`)
				return
			}
			rec.sawSegment("fetch")
			fmt.Fprint(w, remoteItem)
		}))
	}

	changed := func(via string, updated int64) *entity.State {
		return &entity.State{
			Type: entity.TypeMovie, Title: "Heat", Year: 1995,
			Watched: true, UpdatedAt: updated, Via: via,
			Metadata: map[string]entity.Metadata{
				"home": {ID: "m1", Type: entity.TypeMovie},
			},
		}
	}

	It("skips the write when the remote state is within the clock-skew margin", func() {
		added, _ := time.Parse(time.RFC3339, dateAdded)
		rec := &recorder{}
		srv := pushServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		// Canonical change 5s after the remote's own date: inside the 10s
		// margin, so the remote might simply not have caught up yet.
		q := queue.New(srv.Client())
		Expect(client.Push(context.Background(), []*entity.State{changed("cinema", added.Unix()+5)}, q)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
		Expect(stats.Get(backend.StatSkipped)).To(Equal(int64(1)))
	})

	It("writes when the canonical change clears the margin", func() {
		added, _ := time.Parse(time.RFC3339, dateAdded)
		rec := &recorder{}
		srv := pushServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		q := queue.New(srv.Client())
		Expect(client.Push(context.Background(), []*entity.State{changed("cinema", added.Unix()+60)}, q)).To(Succeed())
		q.Drain()

		lines := rec.writeLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("POST /Users/u1/PlayedItems/m1"))
	})

	It("makes no requests at all for a self-originated change", func() {
		rec := &recorder{}
		srv := pushServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		q := queue.New(srv.Client())
		Expect(client.Push(context.Background(), []*entity.State{changed("home", time.Now().Unix())}, q)).To(Succeed())
		q.Drain()

		Expect(rec.segments()).To(BeEmpty(), "no safety re-fetch")
		Expect(rec.writeLines()).To(BeEmpty())
	})

	It("skips entities this backend has never seen", func() {
		rec := &recorder{}
		srv := pushServer(rec, movieItem("m1", "Heat", false, true))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		e := &entity.State{Type: entity.TypeMovie, Title: "Heat", Watched: true, Via: "cinema"}
		q := queue.New(srv.Client())
		Expect(client.Push(context.Background(), []*entity.State{e}, q)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
	})
})

// ── Progress ─────────────────────────────────────────────────────────────────

var _ = Describe("Progress", func() {
	inFlight := func(via string, eventDate int64) *entity.State {
		return &entity.State{
			Type: entity.TypeEpisode, Title: "The Wire", Year: 2002,
			Season: 1, Episode: 5,
			Watched: false, UpdatedAt: eventDate, Via: via,
			Progress: 1_200_000, // 20 minutes in
			Metadata: map[string]entity.Metadata{
				"home": {ID: "e1", Type: entity.TypeEpisode},
			},
			Extra: map[string]entity.Extra{
				via: {Event: "PlaybackStop", Date: eventDate},
			},
		}
	}

	progressServer := func(rec *recorder, remoteItem string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/UserData") && r.Method == http.MethodPost {
				rec.sawWrite(r)
				fmt.Fprint(w, `{}`)
				return
			}
			fmt.Fprint(w, remoteItem)
		}))
	}

	It("propagates the position to an unwatched target", func() {
		rec := &recorder{}
		srv := progressServer(rec, `{"Id":"e1","Type":"Episode","Name":"Pilot","SeriesId":"s1","SeriesName":"The Wire",
			"ParentIndexNumber":1,"IndexNumber":5,"DateCreated":"2024-01-10T08:00:00Z",
			"ProviderIds":{"Imdb":"tt0749451"},"UserData":{"Played":false,"PlaybackPositionTicks":0}}`)
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		q := queue.New(srv.Client())
		e := inFlight("cinema", time.Now().Unix())
		Expect(client.Progress(context.Background(), []*entity.State{e}, q)).To(Succeed())
		q.Drain()

		lines := rec.writeLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(Equal("POST /Users/u1/Items/e1/UserData"))
		Expect(stats.Get(backend.StatQueuedSeek)).To(Equal(int64(1)))
	})

	It("never writes a position for a self-originated event", func() {
		rec := &recorder{}
		srv := progressServer(rec, episodeItem("e1", 5, 0))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		q := queue.New(srv.Client())
		e := inFlight("home", time.Now().Unix())
		Expect(client.Progress(context.Background(), []*entity.State{e}, q)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
	})

	It("leaves finished items alone", func() {
		rec := &recorder{}
		srv := progressServer(rec, episodeItem("e1", 5, 0)) // fixture is played
		defer srv.Close()

		client, stats := newClient(srv, backend.KindJellyfin, backend.Options{})
		q := queue.New(srv.Client())
		e := inFlight("cinema", time.Now().Unix())
		Expect(client.Progress(context.Background(), []*entity.State{e}, q)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
		Expect(stats.Get(backend.StatQueuedSeek)).To(BeZero())
	})
})

// ── Webhooks ─────────────────────────────────────────────────────────────────

var _ = Describe("ParseWebhook", func() {
	detailServer := func(body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		}))
	}

	webhookReq := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/v1/webhook/home", strings.NewReader(body))
	}

	It("builds a tainted entity from a playback stop", func() {
		srv := detailServer(`{"Id":"m1","Type":"Movie","Name":"Heat","ProductionYear":1995,
			"DateCreated":"2024-01-10T08:00:00Z",
			"ProviderIds":{"Imdb":"tt0113277"},
			"UserData":{"Played":false,"PlaybackPositionTicks":0}}`)
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		req := webhookReq(`{"NotificationType":"PlaybackStop","ItemType":"Movie","ItemId":"m1",
			"Played":false,"PlaybackPositionTicks":12000000000,
			"Provider_tmdb":"949"}`)

		st, err := client.ParseWebhook(context.Background(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Tainted).To(BeTrue())
		Expect(st.Watched).To(BeFalse())
		Expect(st.Progress).To(Equal(int64(1_200_000)), "ticks converted to milliseconds")
		Expect(st.GUIDs).To(HaveKey("tmdb"), "payload provider keys merged in")
	})

	It("stamps a fresh date on played events", func() {
		srv := detailServer(`{"Id":"m1","Type":"Movie","Name":"Heat","ProductionYear":1995,
			"DateCreated":"2024-01-10T08:00:00Z",
			"ProviderIds":{"Imdb":"tt0113277"},
			"UserData":{"Played":true,"LastPlayedDate":"2024-02-01T20:30:00Z"}}`)
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		req := webhookReq(`{"NotificationType":"UserDataSaved","ItemType":"Movie","ItemId":"m1","Played":true}`)

		before := time.Now().Unix()
		st, err := client.ParseWebhook(context.Background(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Watched).To(BeTrue())
		Expect(st.UpdatedAt).To(BeNumerically(">=", before))
		Expect(st.Tainted).To(BeFalse(), "a settled user-data save is trusted")
	})

	DescribeTable("declined payloads",
		func(body string, wantStatus int) {
			srv := detailServer(`{}`)
			defer srv.Close()
			client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})

			_, err := client.ParseWebhook(context.Background(), webhookReq(body))
			var werr *backend.WebhookError
			Expect(errors.As(err, &werr)).To(BeTrue())
			Expect(werr.Status).To(Equal(wantStatus))
		},
		Entry("unlisted event", `{"NotificationType":"SessionStarted","ItemType":"Movie","ItemId":"m1"}`, http.StatusOK),
		Entry("unsupported item type", `{"NotificationType":"ItemAdded","ItemType":"Audio","ItemId":"a1"}`, http.StatusOK),
		Entry("missing item id", `{"NotificationType":"ItemAdded","ItemType":"Movie"}`, http.StatusBadRequest),
		Entry("empty body", ``, http.StatusBadRequest),
		Entry("invalid json", `{notjson`, http.StatusBadRequest),
	)

	It("accepts an item whose only identity comes from the payload", func() {
		srv := detailServer(`{"Id":"m3","Type":"Movie","Name":"Heat","ProductionYear":1995,
			"DateCreated":"2024-01-10T08:00:00Z","ProviderIds":{},
			"UserData":{"Played":true,"LastPlayedDate":"2024-02-01T20:30:00Z"}}`)
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		req := webhookReq(`{"NotificationType":"UserDataSaved","ItemType":"Movie","ItemId":"m3",
			"Played":true,"Provider_imdb":"tt0113277"}`)

		st, err := client.ParseWebhook(context.Background(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.GUIDs).To(HaveKeyWithValue(guid.IMDB, "tt0113277"))
	})

	It("declines items without supported external ids", func() {
		srv := detailServer(`{"Id":"m2","Type":"Movie","Name":"Obscure","ProductionYear":2001,
			"DateCreated":"2024-01-10T08:00:00Z","ProviderIds":{},
			"UserData":{"Played":true,"LastPlayedDate":"2024-02-01T20:30:00Z"}}`)
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		req := webhookReq(`{"NotificationType":"UserDataSaved","ItemType":"Movie","ItemId":"m2","Played":true}`)

		_, err := client.ParseWebhook(context.Background(), req)
		var werr *backend.WebhookError
		Expect(errors.As(err, &werr)).To(BeTrue())
		Expect(werr.Status).To(Equal(http.StatusOK))
	})
})

// ── Users ────────────────────────────────────────────────────────────────────

var _ = Describe("GetUsersList", func() {
	It("maps the policy block onto user flags", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/Users"))
			fmt.Fprint(w, `[
				{"Id":"u1","Name":"alice","LastActivityDate":"2024-03-01T12:00:00Z",
				 "Policy":{"IsAdministrator":true,"IsHidden":false,"IsDisabled":false}},
				{"Id":"u2","Name":"bob","Policy":{"IsAdministrator":false,"IsHidden":true,"IsDisabled":true}}
			]`)
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.KindJellyfin, backend.Options{})
		users, err := client.GetUsersList(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(users).To(HaveLen(2))
		Expect(users[0].Admin).To(BeTrue())
		Expect(users[0].LastActivity).NotTo(BeNil())
		Expect(users[1].Hidden).To(BeTrue())
		Expect(users[1].Disabled).To(BeTrue())
	})
})
