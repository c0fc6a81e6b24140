package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/kbukum/searchkit/requests"
	"github.com/kbukum/searchkit/responses"
)

func TestBuilder_SingleUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"acknowledged": true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{Addresses: []string{srv.URL}})
	b := Request[responses.CommandResponse](c, requests.DeleteIndex("testindex"))

	if _, err := b.Send(context.Background()); err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	if _, err := b.Send(context.Background()); !errors.Is(err, ErrRequestConsumed) {
		t.Fatalf("second send must fail with ErrRequestConsumed, got %v", err)
	}
	if _, err := b.Submit(context.Background()); !errors.Is(err, ErrRequestConsumed) {
		t.Fatalf("submit after send must fail with ErrRequestConsumed, got %v", err)
	}
}

func TestBuilder_OverrideSkipsPool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"acknowledged": true}`))
	}))
	defer srv.Close()

	// The configured address is unreachable on purpose; only the
	// override can make this call succeed.
	c := newTestClient(t, Config{Addresses: []string{"http://127.0.0.1:1"}})

	resp, err := Request[responses.CommandResponse](c, requests.DeleteIndex("testindex")).
		WithParams(RequestParams{BaseURL: srv.URL}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Acknowledged {
		t.Error("expected acknowledged response")
	}
	if calls := c.pool.calls.Load(); calls != 0 {
		t.Errorf("pool consulted %d times despite override", calls)
	}
}

func TestBuilder_Submit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Scorcher","cluster_name":"docsearch","tagline":"You Know, for Search","version":{"number":"5.6.4"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{Addresses: []string{srv.URL}})

	task, err := Request[responses.PingResponse](c, requests.Ping()).Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := task.Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Name != "Scorcher" {
		t.Errorf("unexpected name: %q", resp.Name)
	}

	// Waiting again returns the same outcome.
	again, err := task.Wait(context.Background())
	if err != nil || again.Name != resp.Name {
		t.Errorf("repeated wait should return the same outcome, got %v / %v", again, err)
	}
}

func TestBuilder_SubmitResolvesBeforeScheduling(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"acknowledged": true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{Addresses: []string{srv.URL, srv.URL}})

	task, err := Request[responses.CommandResponse](c, requests.DeleteIndex("a")).Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The pool advance happened during Submit, not inside the pending task.
	if calls := c.pool.calls.Load(); calls != 1 {
		t.Errorf("expected 1 pool call at submit time, got %d", calls)
	}

	close(release)
	if _, err := task.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuilder_CancelAbortsTransport(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := newTestClient(t, Config{Addresses: []string{srv.URL}})

	task, err := Request[responses.PingResponse](c, requests.Ping()).Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	<-started
	task.Cancel()

	_, err = task.Wait(context.Background())
	if !IsTransport(err) {
		t.Fatalf("expected a transport error after cancellation, got %v", err)
	}
}

func TestBuilder_WaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"acknowledged": true}`))
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, Config{Addresses: []string{srv.URL}})

	task, err := Request[responses.CommandResponse](c, requests.DeleteIndex("a")).Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = task.Wait(ctx)
	if !IsTimeout(err) {
		t.Fatalf("expected timeout waiting on pending task, got %v", err)
	}
}

// ctxRecordingSender captures the context each dispatch ran under.
type ctxRecordingSender struct {
	mu   sync.Mutex
	ctxs []context.Context
}

func (s *ctxRecordingSender) Send(ctx context.Context, req *SendableRequest) (*Envelope, error) {
	s.mu.Lock()
	s.ctxs = append(s.ctxs, ctx)
	s.mu.Unlock()
	return &Envelope{StatusCode: 200, Body: []byte(`{"acknowledged": true}`)}, nil
}

func TestBuilder_SubmitReleasesContextOnCompletion(t *testing.T) {
	sender := &ctxRecordingSender{}
	c := newTestClient(t, Config{Addresses: []string{"http://node:9200"}}, WithSender(sender))

	// A long-lived cancellable parent, as an application would hold.
	parent, cancelParent := context.WithCancel(context.Background())
	defer cancelParent()

	for i := 0; i < 50; i++ {
		task, err := Request[responses.CommandResponse](c, requests.DeleteIndex("x")).Submit(parent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := task.Wait(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Completion must detach each task from the parent: every per-task
	// context is released by the time its task reports done.
	sender.mu.Lock()
	defer sender.mu.Unlock()
	for i, ctx := range sender.ctxs {
		select {
		case <-ctx.Done():
		default:
			t.Fatalf("task %d still holds a live context after completion", i)
		}
	}
}

// recordingExecutor counts scheduled tasks and runs them inline in a
// goroutine, like the default executor.
type recordingExecutor struct {
	mu    sync.Mutex
	count int
}

func (e *recordingExecutor) Go(task func()) {
	e.mu.Lock()
	e.count++
	e.mu.Unlock()
	go task()
}

func TestBuilder_SubmitUsesConfiguredExecutor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"acknowledged": true}`))
	}))
	defer srv.Close()

	exec := &recordingExecutor{}
	c := newTestClient(t, Config{Addresses: []string{srv.URL}}, WithExecutor(exec))

	task, err := Request[responses.CommandResponse](c, requests.DeleteIndex("a")).Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := task.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.count != 1 {
		t.Errorf("expected 1 scheduled task, got %d", exec.count)
	}
}
