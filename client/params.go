package client

import "github.com/google/uuid"

// RequestParams is an explicit per-call parameter override. Supplying one
// bypasses pool rotation entirely for that call: the override's base URL
// is used as-is and the pool is never consulted.
type RequestParams struct {
	// BaseURL is the base endpoint for this call. Required.
	BaseURL string
	// Headers are merged over the client's default headers, key by key.
	Headers map[string]string
	// Query are default query parameters for this call.
	Query map[string]string
}

// ResolvedParams is the concrete parameter set a request is dispatched
// with. It is produced exactly once per call, before any transport I/O.
type ResolvedParams struct {
	// BaseURL is the selected base endpoint.
	BaseURL string
	// Headers is the merged header set, including auth and request id.
	Headers map[string]string
	// Query is the merged default query parameter set.
	Query map[string]string
	// RequestID is the generated id attached as X-Request-Id.
	RequestID string
}

const requestIDHeader = "X-Request-Id"

// resolve merges client-wide defaults with either the explicit override
// or a freshly rotated pool address. Called exactly once per request,
// synchronously, before the transport is invoked.
func (c *Client) resolve(override *RequestParams) (ResolvedParams, error) {
	rp := ResolvedParams{
		Headers:   make(map[string]string, len(c.config.Headers)+2),
		Query:     make(map[string]string),
		RequestID: uuid.NewString(),
	}

	for k, v := range c.config.Headers {
		rp.Headers[k] = v
	}

	if override != nil {
		if override.BaseURL == "" {
			return rp, NewConfigurationError("parameter override has no base URL")
		}
		rp.BaseURL = override.BaseURL
		for k, v := range override.Headers {
			rp.Headers[k] = v
		}
		for k, v := range override.Query {
			rp.Query[k] = v
		}
	} else {
		addr, err := c.pool.next()
		if err != nil {
			return rp, err
		}
		rp.BaseURL = addr
	}

	if c.config.Auth != nil {
		c.config.Auth.apply(rp.Headers)
	}
	if _, ok := rp.Headers[requestIDHeader]; !ok {
		rp.Headers[requestIDHeader] = rp.RequestID
	}

	return rp, nil
}
