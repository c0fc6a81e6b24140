package client

import (
	"context"

	"github.com/kbukum/searchkit/requests"
	"github.com/kbukum/searchkit/responses"
)

// RequestBuilder ties the pipeline together for one call: it holds the
// wire request descriptor and the pending parameter choice, and on
// finalization resolves parameters exactly once, dispatches the request,
// and feeds the raw result through the response classifier.
//
// Builders are single use. Finalizing one a second time, in either mode,
// fails with ErrRequestConsumed; it never silently re-sends.
type RequestBuilder[T any] struct {
	client   *Client
	endpoint requests.Endpoint
	override *RequestParams
	consumed bool
}

// Request opens a builder for an endpoint whose response decodes as T.
func Request[T any](c *Client, endpoint requests.Endpoint) *RequestBuilder[T] {
	return &RequestBuilder[T]{client: c, endpoint: endpoint}
}

// WithParams sets an explicit parameter override for this call. The
// address pool is not consulted when an override is present.
func (b *RequestBuilder[T]) WithParams(params RequestParams) *RequestBuilder[T] {
	b.override = &params
	return b
}

// take consumes the builder's state, enforcing single use.
func (b *RequestBuilder[T]) take() (*SendableRequest, error) {
	if b.consumed {
		return nil, ErrRequestConsumed
	}
	b.consumed = true

	// Resolution happens here, exactly once, before any transport I/O in
	// either execution mode.
	params, err := b.client.resolve(b.override)
	if err != nil {
		return nil, err
	}
	return &SendableRequest{Endpoint: b.endpoint, Params: params}, nil
}

// Send dispatches the request, blocking until the typed outcome is
// available.
func (b *RequestBuilder[T]) Send(ctx context.Context) (T, error) {
	var zero T
	req, err := b.take()
	if err != nil {
		return zero, err
	}
	env, err := b.client.dispatch(ctx, req)
	if err != nil {
		return zero, err
	}
	return responses.Parse[T](env.StatusCode, env.Body)
}

// Submit dispatches the request as a scheduled task on the client's
// executor and returns a handle to its eventual outcome. Parameters are
// resolved synchronously before the task is scheduled, so the address
// pool is never touched while the call is pending.
func (b *RequestBuilder[T]) Submit(ctx context.Context) (*Task[T], error) {
	req, err := b.take()
	if err != nil {
		return nil, err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	task := &Task[T]{done: make(chan struct{}), cancel: cancel}

	b.client.executor.Go(func() {
		// Release the per-task context before completion is visible, so
		// a finished task never stays registered with its parent.
		defer close(task.done)
		defer cancel()
		env, err := b.client.dispatch(taskCtx, req)
		if err != nil {
			task.err = err
			return
		}
		task.result, task.err = responses.Parse[T](env.StatusCode, env.Body)
	})

	return task, nil
}
