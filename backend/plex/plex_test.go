package plex_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
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
	"github.com/ddevcap/watchsync/backend/plex"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/queue"
)

func TestPlex(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Plex Suite")
}

// ── Test doubles ─────────────────────────────────────────────────────────────

type recorder struct {
	mu      sync.Mutex
	windows []string
	writes  []string
}

func (r *recorder) sawWindow(start string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows = append(r.windows, start)
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

func (r *recorder) windowStarts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.windows...)
	sort.Strings(out)
	return out
}

func (r *recorder) writeLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

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
	tsAdded  = int64(1704873600) // 2024-01-10
	tsViewed = int64(1706819400) // 2024-02-01
)

func sectionsListing() string {
	return `{"MediaContainer":{"Directory":[
		{"key":"1","type":"movie","title":"Movies"},
		{"key":"2","type":"artist","title":"Music"}
	]}}`
}

func movieMeta(key string, watched bool, guids string) string {
	viewCount := 0
	lastViewed := int64(0)
	if watched {
		viewCount = 1
		lastViewed = tsViewed
	}
	return fmt.Sprintf(`{"ratingKey":%q,"type":"movie","title":"Heat","year":1995,
		"guid":"plex://movie/5d776834880197001ec967c6",%s
		"addedAt":%d,"lastViewedAt":%d,"viewCount":%d}`,
		key, guids, tsAdded, lastViewed, viewCount)
}

func modernGuids() string {
	return `"Guid":[{"id":"imdb://tt0113277"},{"id":"tmdb://949"}],`
}

func windowBody(meta ...string) string {
	return fmt.Sprintf(`{"MediaContainer":{"size":%d,"Metadata":[%s]}}`,
		len(meta), strings.Join(meta, ","))
}

func countBody(total int) string {
	return fmt.Sprintf(`{"MediaContainer":{"size":0,"totalSize":%d}}`, total)
}

func metadataBody(meta string) string {
	return fmt.Sprintf(`{"MediaContainer":{"size":1,"Metadata":[%s]}}`, meta)
}

func newClient(srv *httptest.Server, opts backend.Options) (backend.Client, *backend.Stats) {
	c := backend.NewContext("den", backend.KindPlex, srv.URL, "secret", "1", opts)
	stats := backend.NewStats()
	return plex.New(c, srv.Client(), stats), stats
}

// ── Pull ─────────────────────────────────────────────────────────────────────

var _ = Describe("Pull", func() {
	It("fetches a large section as container windows", func() {
		rec := &recorder{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case r.URL.Path == "/library/sections":
				fmt.Fprint(w, sectionsListing())
			case q.Get("X-Plex-Container-Size") == "0":
				fmt.Fprint(w, countBody(2500))
			default:
				rec.sawWindow(q.Get("X-Plex-Container-Start"))
				fmt.Fprint(w, windowBody(movieMeta("10", true, modernGuids())))
			}
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{LibrarySegment: 1000})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		Expect(rec.windowStarts()).To(Equal([]string{"0", "1000", "2000"}))
		Expect(mp.addedEntities()).To(HaveLen(3))
	})

	It("derives identity from a legacy agent guid when Guid entries are absent", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case r.URL.Path == "/library/sections":
				fmt.Fprint(w, sectionsListing())
			case q.Get("X-Plex-Container-Size") == "0":
				fmt.Fprint(w, countBody(1))
			default:
				fmt.Fprint(w, windowBody(fmt.Sprintf(`{"ratingKey":"10","type":"movie","title":"Heat","year":1995,
					"guid":"com.plexapp.agents.imdb://tt0113277?lang=en",
					"addedAt":%d,"viewCount":0}`, tsAdded)))
			}
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		added := mp.addedEntities()
		Expect(added).To(HaveLen(1))
		Expect(added[0].GUIDs).To(HaveKeyWithValue(guid.IMDB, "tt0113277"))
	})

	It("uses the last view date for watched items and the added date otherwise", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case r.URL.Path == "/library/sections":
				fmt.Fprint(w, sectionsListing())
			case q.Get("X-Plex-Container-Size") == "0":
				fmt.Fprint(w, countBody(2))
			default:
				fmt.Fprint(w, windowBody(
					movieMeta("10", true, modernGuids()),
					movieMeta("11", false, modernGuids()),
				))
			}
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		added := mp.addedEntities()
		Expect(added).To(HaveLen(2))
		dates := map[bool]int64{}
		for _, e := range added {
			dates[e.Watched] = e.UpdatedAt
		}
		Expect(dates[true]).To(Equal(tsViewed))
		Expect(dates[false]).To(Equal(tsAdded))
	})

	It("keeps pulling the remaining sections when one count fails", func() {
		listing := `{"MediaContainer":{"Directory":[
			{"key":"1","type":"movie","title":"Action"},
			{"key":"2","type":"movie","title":"Drama"}
		]}}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			switch {
			case r.URL.Path == "/library/sections":
				fmt.Fprint(w, listing)
			case r.URL.Path == "/library/sections/1/all" && q.Get("X-Plex-Container-Size") == "0":
				w.WriteHeader(http.StatusInternalServerError)
			case q.Get("X-Plex-Container-Size") == "0":
				fmt.Fprint(w, countBody(1))
			default:
				fmt.Fprint(w, windowBody(movieMeta("10", true, modernGuids())))
			}
		}))
		defer srv.Close()

		client, stats := newClient(srv, backend.Options{})
		mp := &fakeMapper{}
		Expect(client.Pull(context.Background(), mp, nil)).To(Succeed())

		Expect(mp.addedEntities()).To(HaveLen(1), "the healthy section still imports")
		Expect(stats.HasErrors()).To(BeTrue())
	})

	It("fails the run when section enumeration fails", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client, stats := newClient(srv, backend.Options{})
		Expect(client.Pull(context.Background(), &fakeMapper{}, nil)).NotTo(Succeed())
		Expect(stats.HasErrors()).To(BeTrue())
	})
})

// ── Export / Push ────────────────────────────────────────────────────────────

var _ = Describe("Export", func() {
	exportServer := func(rec *recorder, remoteMeta string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/:/") {
				rec.sawWrite(r)
				fmt.Fprint(w, `{}`)
				return
			}
			q := r.URL.Query()
			switch {
			case r.URL.Path == "/library/sections":
				fmt.Fprint(w, sectionsListing())
			case q.Get("X-Plex-Container-Size") == "0":
				fmt.Fprint(w, countBody(1))
			default:
				fmt.Fprint(w, windowBody(remoteMeta))
			}
		}))
	}

	It("queues a scrobble when the canonical record is newer and watched", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, stats := newClient(srv, backend.Options{})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: tsViewed, Via: "loft",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		lines := rec.writeLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("GET /:/scrobble?"))
		Expect(lines[0]).To(ContainSubstring("key=10"))
		Expect(stats.Get(backend.StatQueuedPlay)).To(Equal(int64(1)))
	})

	It("queues an unscrobble for a canonical unwatch", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieMeta("10", true, modernGuids()))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: false, UpdatedAt: tsViewed + 3600, Via: "loft",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		lines := rec.writeLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("GET /:/unscrobble?"))
	})

	It("treats a remote date within the clock-skew margin as current", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, stats := newClient(srv, backend.Options{ExportTimeMargin: 10 * time.Second})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: tsAdded + 5, Via: "loft",
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
		srv := exportServer(rec, movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{ExportTimeMargin: 10 * time.Second})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: tsAdded + 60, Via: "loft",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(HaveLen(1))
	})

	It("never echoes a change back to its origin", func() {
		rec := &recorder{}
		srv := exportServer(rec, movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		mp := &fakeMapper{lookup: func(*entity.State) *entity.State {
			return &entity.State{
				Type: entity.TypeMovie, Title: "Heat", Year: 1995,
				Watched: true, UpdatedAt: tsViewed, Via: "den",
			}
		}}

		q := queue.New(srv.Client())
		Expect(client.Export(context.Background(), mp, q, nil)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
	})
})

var _ = Describe("Push", func() {
	pushServer := func(rec *recorder, remoteMeta string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasPrefix(r.URL.Path, "/:/"):
				rec.sawWrite(r)
				fmt.Fprint(w, `{}`)
			case strings.HasPrefix(r.URL.Path, "/library/metadata/"):
				rec.sawWindow("fetch")
				fmt.Fprint(w, metadataBody(remoteMeta))
			}
		}))
	}

	changed := func(via string, updated int64) *entity.State {
		return &entity.State{
			Type: entity.TypeMovie, Title: "Heat", Year: 1995,
			Watched: true, UpdatedAt: updated, Via: via,
			Metadata: map[string]entity.Metadata{
				"den": {ID: "10", Type: entity.TypeMovie},
			},
		}
	}

	It("skips the write when the remote state is within the clock-skew margin", func() {
		rec := &recorder{}
		srv := pushServer(rec, movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, stats := newClient(srv, backend.Options{})
		q := queue.New(srv.Client())
		Expect(client.Push(context.Background(), []*entity.State{changed("loft", tsAdded + 5)}, q)).To(Succeed())
		q.Drain()

		Expect(rec.writeLines()).To(BeEmpty())
		Expect(stats.Get(backend.StatSkipped)).To(Equal(int64(1)))
	})

	It("writes when the canonical change clears the margin", func() {
		rec := &recorder{}
		srv := pushServer(rec, movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		q := queue.New(srv.Client())
		Expect(client.Push(context.Background(), []*entity.State{changed("loft", tsAdded + 60)}, q)).To(Succeed())
		q.Drain()

		lines := rec.writeLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("GET /:/scrobble?"))
	})

	It("makes no requests at all for a self-originated change", func() {
		rec := &recorder{}
		srv := pushServer(rec, movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		q := queue.New(srv.Client())
		Expect(client.Push(context.Background(), []*entity.State{changed("den", time.Now().Unix())}, q)).To(Succeed())
		q.Drain()

		Expect(rec.windowStarts()).To(BeEmpty(), "no safety re-fetch")
		Expect(rec.writeLines()).To(BeEmpty())
	})
})

// ── Webhooks ─────────────────────────────────────────────────────────────────

var _ = Describe("ParseWebhook", func() {
	multipartReq := func(payload string) *http.Request {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		Expect(mw.WriteField("payload", payload)).To(Succeed())
		Expect(mw.Close()).To(Succeed())

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook/den", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	detailServer := func(meta string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, metadataBody(meta))
		}))
	}

	It("builds a trusted watched entity from a scrobble", func() {
		srv := detailServer(movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		req := multipartReq(`{"event":"media.scrobble","Account":{"id":1},
			"Metadata":{"ratingKey":"10","type":"movie","title":"Heat"}}`)

		before := time.Now().Unix()
		st, err := client.ParseWebhook(context.Background(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Watched).To(BeTrue())
		Expect(st.Tainted).To(BeFalse())
		Expect(st.UpdatedAt).To(BeNumerically(">=", before))
		Expect(st.GUIDs).To(HaveKeyWithValue(guid.IMDB, "tt0113277"))
	})

	It("builds a tainted in-flight entity from a pause", func() {
		srv := detailServer(movieMeta("10", false, modernGuids()))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		req := multipartReq(`{"event":"media.pause","Account":{"id":1},
			"Metadata":{"ratingKey":"10","type":"movie","title":"Heat","viewOffset":1200000}}`)

		st, err := client.ParseWebhook(context.Background(), req)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Tainted).To(BeTrue())
		Expect(st.Watched).To(BeFalse())
		Expect(st.Progress).To(Equal(int64(1_200_000)))
	})

	DescribeTable("declined payloads",
		func(payload string, wantStatus int) {
			srv := detailServer(movieMeta("10", false, modernGuids()))
			defer srv.Close()
			client, _ := newClient(srv, backend.Options{})

			_, err := client.ParseWebhook(context.Background(), multipartReq(payload))
			var werr *backend.WebhookError
			Expect(errors.As(err, &werr)).To(BeTrue())
			Expect(werr.Status).To(Equal(wantStatus))
		},
		Entry("unlisted event", `{"event":"media.rate","Metadata":{"ratingKey":"10","type":"movie"}}`, http.StatusOK),
		Entry("unsupported item type", `{"event":"media.play","Metadata":{"ratingKey":"77","type":"track"}}`, http.StatusOK),
		Entry("missing rating key", `{"event":"media.play","Metadata":{"type":"movie"}}`, http.StatusBadRequest),
		Entry("invalid json", `{notjson`, http.StatusBadRequest),
	)

	It("declines non-multipart requests", func() {
		srv := detailServer(movieMeta("10", false, modernGuids()))
		defer srv.Close()
		client, _ := newClient(srv, backend.Options{})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook/den", strings.NewReader(`{"event":"media.play"}`))
		req.Header.Set("Content-Type", "application/json")

		_, err := client.ParseWebhook(context.Background(), req)
		var werr *backend.WebhookError
		Expect(errors.As(err, &werr)).To(BeTrue())
		Expect(werr.Status).To(Equal(http.StatusBadRequest))
	})
})

// ── Users ────────────────────────────────────────────────────────────────────

var _ = Describe("GetUsersList", func() {
	It("maps server accounts, dropping the synthetic all-accounts entry", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/accounts"))
			fmt.Fprint(w, `{"MediaContainer":{"Account":[
				{"id":0,"name":""},
				{"id":1,"name":"owner"},
				{"id":27,"name":"kid"}
			]}}`)
		}))
		defer srv.Close()

		client, _ := newClient(srv, backend.Options{})
		users, err := client.GetUsersList(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(users).To(HaveLen(2))
		Expect(users[0].Admin).To(BeTrue())
		Expect(users[1].Name).To(Equal("kid"))
		Expect(users[1].Admin).To(BeFalse())
	})
})
