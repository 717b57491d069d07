// Package queue provides the scatter/gather primitive the sync pipelines are
// built on: requests are dispatched over the network as soon as they are
// enqueued, and a single drain pass later walks the in-flight handles in
// submission order, feeding each outcome to its continuation.
//
// Continuations run on the draining goroutine, so all reconciliation work
// they perform is single-threaded per queue; only the I/O overlaps.
package queue

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Response is the buffered outcome of one request. Bodies are fully read
// before the continuation runs so the transport connection is reusable.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Envelope describes one request and what to do with its outcome. Exactly one
// of OnSuccess / OnError is invoked during Drain; a nil continuation is a
// no-op. LogContext is attached to any log line the queue emits about this
// request, so failures are attributable without shared mutable state.
type Envelope struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte

	OnSuccess  func(*Response)
	OnError    func(error)
	LogContext []any
}

type handle struct {
	env  Envelope
	done chan struct{}
	resp *Response
	err  error
}

// Queue is an ordered collection of in-flight request handles.
//
// Not safe for concurrent use: one queue belongs to one backend run, and
// Enqueue/Drain are called from that run's goroutine only. The transport
// requests themselves run concurrently.
type Queue struct {
	client  *http.Client
	handles []*handle
}

// New returns an empty queue using client for transport. Per-request timeouts
// are the client's concern and surface as OnError invocations.
func New(client *http.Client) *Queue {
	if client == nil {
		client = http.DefaultClient
	}
	return &Queue{client: client}
}

// Len returns the number of undrained handles.
func (q *Queue) Len() int { return len(q.handles) }

// Enqueue dispatches the request immediately on its own goroutine and records
// a handle for Drain. The request inherits ctx, so a cancelled run surfaces
// as an error continuation rather than a hung drain.
func (q *Queue) Enqueue(ctx context.Context, env Envelope) {
	h := &handle{env: env, done: make(chan struct{})}
	q.handles = append(q.handles, h)

	go func() {
		defer close(h.done)

		var body io.Reader
		if len(env.Body) > 0 {
			body = bytes.NewReader(env.Body)
		}
		req, err := http.NewRequestWithContext(ctx, env.Method, env.URL, body)
		if err != nil {
			h.err = fmt.Errorf("queue: building request: %w", err)
			return
		}
		for k, vv := range env.Header {
			for _, v := range vv {
				req.Header.Add(k, v)
			}
		}

		resp, err := q.client.Do(req)
		if err != nil {
			h.err = fmt.Errorf("queue: request failed: %w", err)
			return
		}
		defer func() { _ = resp.Body.Close() }()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			h.err = fmt.Errorf("queue: reading response: %w", err)
			return
		}
		h.resp = &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: raw}
	}()
}

// Drain waits for each handle in submission order and invokes its
// continuation. A panicking continuation is caught, logged with the
// envelope's log context, and draining moves on — one bad response must not
// abort the batch. Each slot is released as soon as its continuation has run
// so large runs do not retain response bodies.
func (q *Queue) Drain() {
	for i, h := range q.handles {
		<-h.done
		runContinuation(h)
		q.handles[i] = nil
	}
	q.handles = q.handles[:0]
}

func runContinuation(h *handle) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("queue: continuation panicked",
				append([]any{"panic", r}, h.env.LogContext...)...)
		}
	}()

	if h.err != nil {
		if h.env.OnError != nil {
			h.env.OnError(h.err)
		}
		return
	}
	if h.env.OnSuccess != nil {
		h.env.OnSuccess(h.resp)
	}
}

// Reset drops any undrained handles without running their continuations.
// In-flight transport goroutines are left to finish and be collected.
func (q *Queue) Reset() {
	for i := range q.handles {
		q.handles[i] = nil
	}
	q.handles = q.handles[:0]
}
