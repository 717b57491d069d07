package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/backend"
)

func TestBackend(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Backend Suite")
}

var _ = Describe("Kind", func() {
	DescribeTable("ParseKind",
		func(in string, want backend.Kind, ok bool) {
			got, err := backend.ParseKind(in)
			if ok {
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(want))
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("plex", "plex", backend.KindPlex, true),
		Entry("jellyfin mixed case", " Jellyfin ", backend.KindJellyfin, true),
		Entry("emby", "EMBY", backend.KindEmby, true),
		Entry("unknown", "kodi", backend.Kind(""), false),
		Entry("empty", "", backend.Kind(""), false),
	)
})

var _ = Describe("Options", func() {
	It("fills defaults through NewContext", func() {
		c := backend.NewContext("home", backend.KindJellyfin, "http://nas:8096/", "tok", "u1", backend.Options{})
		Expect(c.Options.LibrarySegment).To(Equal(backend.DefaultLibrarySegment))
		Expect(c.Options.MaxEpisodeRange).To(Equal(backend.DefaultMaxEpisodeRange))
		Expect(c.Options.ExportTimeMargin).To(Equal(backend.DefaultExportTimeMargin))
		Expect(c.BaseURL).To(Equal("http://nas:8096"), "trailing slash trimmed")
	})

	It("keeps explicit values", func() {
		c := backend.NewContext("home", backend.KindPlex, "http://plex:32400", "", "", backend.Options{
			LibrarySegment:   250,
			MaxEpisodeRange:  5,
			ExportTimeMargin: time.Minute,
		})
		Expect(c.Options.LibrarySegment).To(Equal(250))
		Expect(c.Options.MaxEpisodeRange).To(Equal(5))
		Expect(c.Options.ExportTimeMargin).To(Equal(time.Minute))
	})

	It("matches ignore-list entries exactly", func() {
		o := backend.Options{Ignore: []string{"4K Movies", "Home Videos"}}
		Expect(o.Ignored("4K Movies")).To(BeTrue())
		Expect(o.Ignored("Movies")).To(BeFalse())
	})
})

var _ = Describe("Context requests", func() {
	It("authenticates with the kind's token header", func() {
		var gotEmby, gotPlex http.Header
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/jf":
				gotEmby = r.Header.Clone()
			case "/px":
				gotPlex = r.Header.Clone()
			}
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		ctx := context.Background()
		jf := backend.NewContext("jf", backend.KindJellyfin, srv.URL, "jf-token", "u1", backend.Options{})
		px := backend.NewContext("px", backend.KindPlex, srv.URL, "px-token", "u1", backend.Options{})

		_, status, err := backend.Fetch(ctx, srv.Client(), jf, http.MethodGet, "/jf", nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))
		_, _, err = backend.Fetch(ctx, srv.Client(), px, http.MethodGet, "/px", nil, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(gotEmby.Get("X-Emby-Token")).To(Equal("jf-token"))
		Expect(gotEmby.Get("X-Plex-Token")).To(BeEmpty())
		Expect(gotPlex.Get("X-Plex-Token")).To(Equal("px-token"))
	})

	It("encodes query values and default headers", func() {
		var got *http.Request
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Clone(context.Background())
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := backend.NewContext("home", backend.KindJellyfin, srv.URL, "", "", backend.Options{})
		c.Headers.Set("X-Request-Source", "sync")

		q := url.Values{}
		q.Set("StartIndex", "2000")
		q.Set("Limit", "1000")
		_, _, err := backend.Fetch(context.Background(), srv.Client(), c, http.MethodGet, "/Items", q, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(got.URL.Query().Get("StartIndex")).To(Equal("2000"))
		Expect(got.URL.Query().Get("Limit")).To(Equal("1000"))
		Expect(got.Header.Get("X-Request-Source")).To(Equal("sync"))
		Expect(got.Header.Get("Accept")).To(Equal("application/json"))
	})
})

var _ = Describe("Stats", func() {
	It("accumulates counters concurrently", func() {
		s := backend.NewStats()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Inc(backend.StatImported)
				s.Add(backend.StatSkipped, 2)
			}()
		}
		wg.Wait()

		Expect(s.Get(backend.StatImported)).To(Equal(int64(50)))
		Expect(s.Get(backend.StatSkipped)).To(Equal(int64(100)))
	})

	It("only escalates the error flag", func() {
		s := backend.NewStats()
		Expect(s.HasErrors()).To(BeFalse())
		s.MarkError()
		Expect(s.HasErrors()).To(BeTrue())
	})

	It("flattens counters into sorted log attributes", func() {
		s := backend.NewStats()
		s.Inc("zeta")
		s.Inc("alpha")
		Expect(s.LogAttrs()).To(Equal([]any{"alpha", int64(1), "zeta", int64(1)}))
	})
})

var _ = Describe("Registry", func() {
	It("rejects contexts for unregistered kinds", func() {
		c := backend.NewContext("mystery", backend.Kind("vhs"), "http://x", "", "", backend.Options{})
		_, err := backend.New(c, http.DefaultClient, backend.NewStats())
		Expect(err).To(MatchError(ContainSubstring("no client registered")))
	})
})

var _ = Describe("WebhookError", func() {
	It("carries the status hint", func() {
		err := backend.NewWebhookError(http.StatusBadRequest, "no item id in %q", "payload")
		Expect(err.Status).To(Equal(http.StatusBadRequest))
		Expect(err.Error()).To(ContainSubstring("no item id"))
	})
})
