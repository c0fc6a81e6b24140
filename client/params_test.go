package client

import "testing"

func newTestClient(t *testing.T, cfg Config, opts ...Option) *Client {
	t.Helper()
	c, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return c
}

func TestResolve_DeferredUsesPool(t *testing.T) {
	c := newTestClient(t, Config{Addresses: []string{"http://a:9200", "http://b:9200"}})

	first, err := c.resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.BaseURL == second.BaseURL {
		t.Errorf("consecutive resolutions should rotate, both got %s", first.BaseURL)
	}
	if c.pool.calls.Load() != 2 {
		t.Errorf("expected 2 pool calls, got %d", c.pool.calls.Load())
	}
}

func TestResolve_OverrideBypassesPool(t *testing.T) {
	c := newTestClient(t, Config{Addresses: []string{"http://a:9200"}})

	rp, err := c.resolve(&RequestParams{BaseURL: "http://elsewhere:9200"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rp.BaseURL != "http://elsewhere:9200" {
		t.Errorf("override address not used: %s", rp.BaseURL)
	}
	if calls := c.pool.calls.Load(); calls != 0 {
		t.Errorf("pool must not be consulted with an explicit override, got %d calls", calls)
	}
}

func TestResolve_OverrideWithoutBaseURL(t *testing.T) {
	c := newTestClient(t, Config{Addresses: []string{"http://a:9200"}})

	_, err := c.resolve(&RequestParams{Headers: map[string]string{"X-Env": "test"}})
	if !IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if calls := c.pool.calls.Load(); calls != 0 {
		t.Errorf("pool must stay untouched, got %d calls", calls)
	}
}

func TestResolve_HeaderPrecedence(t *testing.T) {
	c := newTestClient(t, Config{
		Addresses: []string{"http://a:9200"},
		Headers:   map[string]string{"X-Env": "default", "X-Keep": "kept"},
	})

	rp, err := c.resolve(&RequestParams{
		BaseURL: "http://a:9200",
		Headers: map[string]string{"X-Env": "override"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rp.Headers["X-Env"] != "override" {
		t.Errorf("override header should win, got %q", rp.Headers["X-Env"])
	}
	if rp.Headers["X-Keep"] != "kept" {
		t.Errorf("default header should survive, got %q", rp.Headers["X-Keep"])
	}
}

func TestResolve_AttachesRequestID(t *testing.T) {
	c := newTestClient(t, Config{Addresses: []string{"http://a:9200"}})

	rp, err := c.resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rp.RequestID == "" {
		t.Fatal("expected a generated request id")
	}
	if rp.Headers[requestIDHeader] != rp.RequestID {
		t.Errorf("request id header not set: %v", rp.Headers)
	}
}

func TestResolve_AppliesAuth(t *testing.T) {
	c := newTestClient(t, Config{
		Addresses: []string{"http://a:9200"},
		Auth:      BasicAuth("elastic", "changeme"),
	})

	rp, err := c.resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// base64("elastic:changeme")
	want := "Basic ZWxhc3RpYzpjaGFuZ2VtZQ=="
	if rp.Headers["Authorization"] != want {
		t.Errorf("unexpected authorization header: %q", rp.Headers["Authorization"])
	}
}

func TestResolve_OverrideAuthWins(t *testing.T) {
	c := newTestClient(t, Config{
		Addresses: []string{"http://a:9200"},
		Auth:      BearerAuth("default-token"),
	})

	rp, err := c.resolve(&RequestParams{
		BaseURL: "http://a:9200",
		Headers: map[string]string{"Authorization": "Bearer per-call"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rp.Headers["Authorization"] != "Bearer per-call" {
		t.Errorf("per-call auth should win, got %q", rp.Headers["Authorization"])
	}
}
