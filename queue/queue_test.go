package queue_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/queue"
)

func TestQueue(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Queue Suite")
}

var _ = Describe("Queue", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	// ── Dispatch and drain ───────────────────────────────────────────────

	It("delivers the buffered response to the success continuation", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Header.Get("X-Token")).To(Equal("secret"))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		q := queue.New(srv.Client())
		var got *queue.Response
		q.Enqueue(ctx, queue.Envelope{
			Method:    http.MethodGet,
			URL:       srv.URL,
			Header:    http.Header{"X-Token": []string{"secret"}},
			OnSuccess: func(r *queue.Response) { got = r },
			OnError:   func(err error) { Fail("unexpected error: " + err.Error()) },
		})
		q.Drain()

		Expect(got).NotTo(BeNil())
		Expect(got.StatusCode).To(Equal(http.StatusOK))
		Expect(string(got.Body)).To(Equal(`{"ok":true}`))
		Expect(q.Len()).To(BeZero())
	})

	It("routes transport failures to the error continuation", func() {
		q := queue.New(&http.Client{Timeout: 200 * time.Millisecond})
		var gotErr error
		q.Enqueue(ctx, queue.Envelope{
			Method:    http.MethodGet,
			URL:       "http://127.0.0.1:1/unreachable",
			OnSuccess: func(*queue.Response) { Fail("unexpected success") },
			OnError:   func(err error) { gotErr = err },
		})
		q.Drain()

		Expect(gotErr).To(HaveOccurred())
	})

	It("drains continuations in submission order even when the first response is slowest", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/slow" {
				time.Sleep(150 * time.Millisecond)
			}
			_, _ = w.Write([]byte(r.URL.Path))
		}))
		defer srv.Close()

		q := queue.New(srv.Client())
		var order []string
		for _, path := range []string{"/slow", "/a", "/b"} {
			q.Enqueue(ctx, queue.Envelope{
				Method:    http.MethodGet,
				URL:       srv.URL + path,
				OnSuccess: func(r *queue.Response) { order = append(order, string(r.Body)) },
			})
		}
		q.Drain()

		Expect(order).To(Equal([]string{"/slow", "/a", "/b"}))
	})

	// ── Failure isolation ────────────────────────────────────────────────

	It("survives a panicking continuation and still runs every other one exactly once", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		q := queue.New(srv.Client())
		var runs [5]int32
		for i := 0; i < 5; i++ {
			i := i
			q.Enqueue(ctx, queue.Envelope{
				Method: http.MethodGet,
				URL:    srv.URL,
				OnSuccess: func(*queue.Response) {
					atomic.AddInt32(&runs[i], 1)
					if i == 2 {
						panic(fmt.Sprintf("continuation %d blew up", i))
					}
				},
				LogContext: []any{"item", i},
			})
		}

		Expect(q.Drain).NotTo(Panic())
		for i := 0; i < 5; i++ {
			Expect(runs[i]).To(Equal(int32(1)), "continuation %d", i)
		}
	})

	It("reports a cancelled context as an error, not a hang", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		cctx, cancel := context.WithCancel(ctx)
		q := queue.New(srv.Client())
		var gotErr error
		q.Enqueue(cctx, queue.Envelope{
			Method:  http.MethodGet,
			URL:     srv.URL,
			OnError: func(err error) { gotErr = err },
		})
		cancel()
		q.Drain()

		Expect(gotErr).To(HaveOccurred())
	})

	// ── Reset ────────────────────────────────────────────────────────────

	It("Reset drops pending handles without invoking continuations", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		q := queue.New(srv.Client())
		q.Enqueue(ctx, queue.Envelope{
			Method:    http.MethodGet,
			URL:       srv.URL,
			OnSuccess: func(*queue.Response) { Fail("continuation ran after Reset") },
		})
		q.Reset()

		Expect(q.Len()).To(BeZero())
		q.Drain() // must be a no-op
	})
})
