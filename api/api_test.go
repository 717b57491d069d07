package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/api"
	_ "github.com/ddevcap/watchsync/backend/jellyfin"
	"github.com/ddevcap/watchsync/config"
	"github.com/ddevcap/watchsync/ent"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/storage"
	"github.com/ddevcap/watchsync/syncer"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newRouter(cfg config.Config) http.Handler {
	reg := syncer.NewRegistry(db, http.DefaultClient, cfg)
	store := storage.NewEntStore(db)
	return api.NewRouter(db, cfg, reg, nil, store, mapper.Options{})
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func addServer(name, kind, url string) *ent.Server {
	return db.Server.Create().
		SetName(name).
		SetKind(kind).
		SetURL(url).
		SetToken("secret").
		SetUserID("u1").
		SetEnabled(true).
		SaveX(context.Background())
}

// detailServer answers every request with the given item document, the way a
// media server answers an item-details fetch.
func detailServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
}

const heatItem = `{"Id":"m1","Type":"Movie","Name":"Heat","ProductionYear":1995,
	"DateCreated":"2024-01-10T08:00:00Z",
	"ProviderIds":{"Imdb":"tt0113277","Tmdb":"949"},
	"UserData":{"Played":true,"LastPlayedDate":"2024-02-01T20:30:00Z"}}`

// ── Webhook ingestion ────────────────────────────────────────────────────────

var _ = Describe("POST /v1/webhook/:name", func() {
	BeforeEach(cleanDB)

	It("persists the parsed state through the mapper", func() {
		srv := detailServer(heatItem)
		defer srv.Close()
		addServer("home", "jellyfin", srv.URL)

		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodPost, "/v1/webhook/home",
			`{"NotificationType":"UserDataSaved","ItemType":"Movie","ItemId":"m1","Played":true}`)
		Expect(w.Code).To(Equal(http.StatusOK))

		ctx := context.Background()
		row := db.MediaState.Query().OnlyX(ctx)
		Expect(row.Title).To(Equal("Heat"))
		Expect(row.Watched).To(BeTrue())
		Expect(row.Via).To(Equal("home"))
		Expect(db.GuidPointer.Query().CountX(ctx)).To(BeNumerically(">", 0),
			"lookup pointers are written alongside the state")
	})

	It("answers with the parser's status hint for declined payloads", func() {
		srv := detailServer(heatItem)
		defer srv.Close()
		addServer("home", "jellyfin", srv.URL)

		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodPost, "/v1/webhook/home",
			`{"NotificationType":"SessionStarted","ItemType":"Movie","ItemId":"m1"}`)
		Expect(w.Code).To(Equal(http.StatusOK), "valid but not applicable — sender must not retry")
		Expect(db.MediaState.Query().CountX(context.Background())).To(BeZero())
	})

	It("rejects malformed payloads", func() {
		srv := detailServer(heatItem)
		defer srv.Close()
		addServer("home", "jellyfin", srv.URL)

		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodPost, "/v1/webhook/home", `{notjson`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("still answers 200 when recording fails downstream", func() {
		srv := detailServer(heatItem)
		defer srv.Close()
		addServer("home", "jellyfin", srv.URL)

		// A store over a closed client fails every lookup; the sender must
		// not be told to retry our own failures.
		broken, err := ent.Open("sqlite3", "file:broken_store?mode=memory&cache=shared")
		Expect(err).NotTo(HaveOccurred())
		Expect(broken.Close()).To(Succeed())

		reg := syncer.NewRegistry(db, http.DefaultClient, config.Config{})
		r := api.NewRouter(db, config.Config{}, reg, nil, storage.NewEntStore(broken), mapper.Options{})

		w := doRequest(r, http.MethodPost, "/v1/webhook/home",
			`{"NotificationType":"UserDataSaved","ItemType":"Movie","ItemId":"m1","Played":true}`)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("could not be processed"))
		Expect(db.MediaState.Query().CountX(context.Background())).To(BeZero())
	})

	It("rejects deliveries for unknown servers", func() {
		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodPost, "/v1/webhook/nowhere",
			`{"NotificationType":"UserDataSaved","ItemType":"Movie","ItemId":"m1"}`)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("ignores disabled servers", func() {
		srv := detailServer(heatItem)
		defer srv.Close()
		row := addServer("home", "jellyfin", srv.URL)
		db.Server.UpdateOne(row).SetEnabled(false).ExecX(context.Background())

		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodPost, "/v1/webhook/home",
			`{"NotificationType":"UserDataSaved","ItemType":"Movie","ItemId":"m1","Played":true}`)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})

// ── Server listing ───────────────────────────────────────────────────────────

var _ = Describe("GET /v1/servers", func() {
	BeforeEach(cleanDB)

	It("lists servers without echoing tokens", func() {
		addServer("cinema", "plex", "http://plex.local")
		addServer("home", "jellyfin", "http://jf.local")

		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodGet, "/v1/servers", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
		Expect(resp[0]["name"]).To(Equal("cinema"), "sorted by name")
		Expect(resp[1]["kind"]).To(Equal("jellyfin"))
		for _, entry := range resp {
			Expect(entry).NotTo(HaveKey("token"))
		}
		Expect(w.Body.String()).NotTo(ContainSubstring("secret"))
	})

	It("fetches one server by id", func() {
		row := addServer("home", "jellyfin", "http://jf.local")

		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodGet, "/v1/servers/"+row.ID.String(), "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["name"]).To(Equal("home"))
	})

	It("rejects malformed ids", func() {
		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodGet, "/v1/servers/not-a-uuid", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns an empty health report without a checker", func() {
		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodGet, "/v1/servers/health", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})
})

// ── History ──────────────────────────────────────────────────────────────────

var _ = Describe("GET /v1/history", func() {
	BeforeEach(cleanDB)

	addState := func(title string, updated int64, typ string, via string) {
		create := db.MediaState.Create().
			SetType(typ).
			SetTitle(title).
			SetYear(1995).
			SetWatched(true).
			SetUpdated(updated).
			SetVia(via)
		if typ == "episode" {
			create.SetSeason(1).SetEpisode(2)
		}
		create.SaveX(context.Background())
	}

	It("returns records newest first with rendered names", func() {
		addState("Heat", 100, "movie", "home")
		addState("The Wire", 200, "episode", "cinema")

		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodGet, "/v1/history", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
		Expect(resp[0]["name"]).To(Equal("The Wire (1995) - 01x002"))
		Expect(resp[1]["name"]).To(Equal("Heat (1995)"))
	})

	It("filters by type and source", func() {
		addState("Heat", 100, "movie", "home")
		addState("The Wire", 200, "episode", "cinema")

		r := newRouter(config.Config{})

		w := doRequest(r, http.MethodGet, "/v1/history?type=movie", "")
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["name"]).To(Equal("Heat (1995)"))

		w = doRequest(r, http.MethodGet, "/v1/history?via=cinema", "")
		resp = nil
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["via"]).To(Equal("cinema"))
	})

	It("honours the limit parameter", func() {
		for i := 0; i < 5; i++ {
			addState(fmt.Sprintf("Movie %d", i), int64(i), "movie", "home")
		}

		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodGet, "/v1/history?limit=2", "")

		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
	})

	DescribeTable("rejects bad parameters",
		func(query string) {
			r := newRouter(config.Config{})
			w := doRequest(r, http.MethodGet, "/v1/history?"+query, "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		},
		Entry("non-numeric limit", "limit=lots"),
		Entry("zero limit", "limit=0"),
		Entry("unknown type", "type=song"),
	)
})

// ── Routing ──────────────────────────────────────────────────────────────────

var _ = Describe("Router", func() {
	BeforeEach(cleanDB)

	It("serves the health probes", func() {
		r := newRouter(config.Config{})
		Expect(doRequest(r, http.MethodGet, "/health", "").Code).To(Equal(http.StatusOK))
		Expect(doRequest(r, http.MethodGet, "/ready", "").Code).To(Equal(http.StatusOK))
	})

	It("answers unknown routes with a JSON 404", func() {
		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodGet, "/v2/nothing", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("endpoint not found"))
	})

	It("tags every response with a request id", func() {
		r := newRouter(config.Config{})
		w := doRequest(r, http.MethodGet, "/health", "")
		Expect(w.Header().Get("X-Request-Id")).NotTo(BeEmpty())
	})
})

// ── Seeding ──────────────────────────────────────────────────────────────────

var _ = Describe("SeedServers", func() {
	BeforeEach(cleanDB)
	ctx := context.Background()

	It("creates rows from the SERVERS document when the table is empty", func() {
		cfg := config.Config{Servers: `[
			{"name":"home","kind":"jellyfin","url":"http://jf.local","token":"t1","user_id":"u1"},
			{"name":"cinema","kind":"plex","url":"http://plex.local","token":"t2","user_id":"1","ignore":["Music"]}
		]`}

		api.SeedServers(ctx, db, cfg)

		rows := db.Server.Query().AllX(ctx)
		Expect(rows).To(HaveLen(2))

		for _, row := range rows {
			Expect(row.Enabled).To(BeTrue())
			if row.Name == "cinema" {
				Expect(row.Options).To(HaveKeyWithValue("ignore", ContainElement("Music")))
			}
		}
	})

	It("is a no-op when servers already exist", func() {
		addServer("existing", "plex", "http://plex.local")
		cfg := config.Config{Servers: `[{"name":"home","kind":"jellyfin","url":"http://jf.local","token":"t","user_id":"u"}]`}

		api.SeedServers(ctx, db, cfg)

		Expect(db.Server.Query().CountX(ctx)).To(Equal(1))
	})

	It("skips entries with unsupported kinds", func() {
		cfg := config.Config{Servers: `[
			{"name":"home","kind":"kodi","url":"http://kodi.local","token":"t","user_id":"u"},
			{"name":"cinema","kind":"plex","url":"http://plex.local","token":"t","user_id":"1"}
		]`}

		api.SeedServers(ctx, db, cfg)

		rows := db.Server.Query().AllX(ctx)
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Name).To(Equal("cinema"))
	})
})
