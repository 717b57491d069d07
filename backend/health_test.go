package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/backend"
)

func staticLister(servers ...backend.ServerInfo) backend.ServerLister {
	return func(context.Context) ([]backend.ServerInfo, error) {
		return servers, nil
	}
}

var _ = Describe("AvailabilityChecker", func() {
	It("marks a healthy server as available", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/System/Info/Public"))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ServerName":"test"}`))
		}))
		defer srv.Close()

		ac := backend.NewAvailabilityChecker(staticLister(backend.ServerInfo{
			ID: "s1", Name: "healthy", Kind: backend.KindJellyfin, URL: srv.URL,
		}), srv.Client(), 100*time.Millisecond)
		ac.Start(context.Background())
		defer ac.Stop()

		Eventually(func() bool {
			return ac.IsAvailable("s1")
		}, 2*time.Second, 50*time.Millisecond).Should(BeTrue())
	})

	It("pings plex servers on their identity endpoint with the token", func() {
		var gotPath atomic.Value
		var gotToken atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath.Store(r.URL.Path)
			gotToken.Store(r.Header.Get("X-Plex-Token"))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		ac := backend.NewAvailabilityChecker(staticLister(backend.ServerInfo{
			ID: "p1", Name: "plex", Kind: backend.KindPlex, URL: srv.URL, Token: "tok",
		}), srv.Client(), time.Hour)
		ac.Start(context.Background())
		defer ac.Stop()

		Eventually(func() any { return gotPath.Load() },
			2*time.Second, 50*time.Millisecond).Should(Equal("/identity"))
		Expect(gotToken.Load()).To(Equal("tok"))
	})

	It("marks an unreachable server as unavailable after consecutive failures", func() {
		ac := backend.NewAvailabilityChecker(staticLister(backend.ServerInfo{
			ID: "d1", Name: "dead", Kind: backend.KindJellyfin, URL: "http://127.0.0.1:1",
		}), &http.Client{Timeout: 200 * time.Millisecond}, 100*time.Millisecond)
		ac.Start(context.Background())
		defer ac.Stop()

		// Should become unavailable after 2 consecutive failures.
		Eventually(func() bool {
			return !ac.IsAvailable("d1")
		}, 5*time.Second, 50*time.Millisecond).Should(BeTrue())
	})

	It("recovers a server when it comes back online", func() {
		var healthy atomic.Bool
		healthy.Store(true)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if healthy.Load() {
				w.WriteHeader(http.StatusOK)
			} else {
				w.WriteHeader(http.StatusServiceUnavailable)
			}
		}))
		defer srv.Close()

		ac := backend.NewAvailabilityChecker(staticLister(backend.ServerInfo{
			ID: "f1", Name: "flaky", Kind: backend.KindEmby, URL: srv.URL,
		}), srv.Client(), 100*time.Millisecond)
		ac.Start(context.Background())
		defer ac.Stop()

		// Starts healthy.
		Eventually(func() bool {
			return ac.IsAvailable("f1")
		}, 2*time.Second, 50*time.Millisecond).Should(BeTrue())

		// Take it down.
		healthy.Store(false)
		Eventually(func() bool {
			return !ac.IsAvailable("f1")
		}, 5*time.Second, 50*time.Millisecond).Should(BeTrue())

		// Bring it back.
		healthy.Store(true)
		Eventually(func() bool {
			return ac.IsAvailable("f1")
		}, 5*time.Second, 50*time.Millisecond).Should(BeTrue())
	})

	Describe("RecordRequestFailure (circuit breaker)", func() {
		It("trips the circuit after threshold failures", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			ac := backend.NewAvailabilityChecker(staticLister(backend.ServerInfo{
				ID: "c1", Name: "circuit-test", Kind: backend.KindJellyfin, URL: srv.URL,
			}), srv.Client(), time.Hour) // long interval so only manual checks
			ac.Start(context.Background())
			defer ac.Stop()

			// Wait for the initial check to mark it available.
			Eventually(func() bool {
				return ac.IsAvailable("c1")
			}, 2*time.Second, 50*time.Millisecond).Should(BeTrue())

			// Record failures below the threshold — should stay available.
			for i := 0; i < 4; i++ {
				ac.RecordRequestFailure("c1", "circuit-test")
			}
			Expect(ac.IsAvailable("c1")).To(BeTrue())

			// One more failure should trip the breaker (threshold = 5).
			ac.RecordRequestFailure("c1", "circuit-test")
			Expect(ac.IsAvailable("c1")).To(BeFalse())
		})

		It("resets failure count on success", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			ac := backend.NewAvailabilityChecker(staticLister(backend.ServerInfo{
				ID: "r1", Name: "reset-test", Kind: backend.KindJellyfin, URL: srv.URL,
			}), srv.Client(), time.Hour)
			ac.Start(context.Background())
			defer ac.Stop()

			Eventually(func() bool {
				return ac.IsAvailable("r1")
			}, 2*time.Second, 50*time.Millisecond).Should(BeTrue())

			// Record 3 failures then a success — counter should reset.
			for i := 0; i < 3; i++ {
				ac.RecordRequestFailure("r1", "reset-test")
			}
			ac.RecordRequestSuccess("r1")

			// Now 4 more failures should NOT trip (only 4, not 5).
			for i := 0; i < 4; i++ {
				ac.RecordRequestFailure("r1", "reset-test")
			}
			Expect(ac.IsAvailable("r1")).To(BeTrue())
		})
	})

	Describe("Statuses", func() {
		It("returns status snapshots for tracked servers", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			ac := backend.NewAvailabilityChecker(staticLister(backend.ServerInfo{
				ID: "st1", Name: "status-test", Kind: backend.KindJellyfin, URL: srv.URL,
			}), srv.Client(), 100*time.Millisecond)
			ac.Start(context.Background())
			defer ac.Stop()

			Eventually(func() int {
				return len(ac.Statuses())
			}, 2*time.Second, 50*time.Millisecond).Should(BeNumerically(">=", 1))

			statuses := ac.Statuses()
			found := false
			for _, s := range statuses {
				if s.ServerID == "st1" {
					found = true
					Expect(s.Available).To(BeTrue())
					Expect(s.FailureCount).To(Equal(0))
				}
			}
			Expect(found).To(BeTrue())
		})
	})
})
