package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/searchkit/requests"
)

// SendableRequest is one fully resolved outbound call: the wire request
// descriptor plus the parameters it will be dispatched with.
type SendableRequest struct {
	Endpoint requests.Endpoint
	Params   ResolvedParams
}

// Envelope is the raw result of one call: status code and fully drained
// body. It exists only for the duration of the call; the parser consumes
// it immediately.
type Envelope struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Sender dispatches a resolved request over HTTP. Implementations block
// until the complete response is available or a transport error occurs;
// the scheduled-task mode wraps a Sender in a task on an Executor so both
// modes share this single code path.
type Sender interface {
	Send(ctx context.Context, req *SendableRequest) (*Envelope, error)
}

const tracerName = "github.com/kbukum/searchkit/client"

// httpSender is the blocking net/http transport.
type httpSender struct {
	client *http.Client
	tracer trace.Tracer
}

func newHTTPSender(client *http.Client) *httpSender {
	return &httpSender{
		client: client,
		tracer: otel.Tracer(tracerName),
	}
}

// Send executes the request and drains the whole body before returning.
// Nothing downstream ever observes partial bytes.
func (s *httpSender) Send(ctx context.Context, req *SendableRequest) (*Envelope, error) {
	httpReq, err := buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, req.Endpoint.Method()+" "+req.Endpoint.Path(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Endpoint.Method()),
			attribute.String("url.path", req.Endpoint.Path()),
			attribute.String("server.address", req.Params.BaseURL),
		))
	defer span.End()
	httpReq = httpReq.WithContext(ctx)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		// A timeout can come from the request context or from
		// http.Client.Timeout; the latter leaves ctx.Err() nil.
		if ctx.Err() != nil || isTimeout(err) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failure")
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	return &Envelope{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// isTimeout reports whether a transport error is a timeout, wherever it
// was enforced.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// buildHTTPRequest combines the endpoint with its resolved parameters.
func buildHTTPRequest(ctx context.Context, req *SendableRequest) (*http.Request, error) {
	target := strings.TrimRight(req.Params.BaseURL, "/") + req.Endpoint.Path()

	var body io.Reader
	if req.Endpoint.HasBody() {
		body = bytes.NewReader(req.Endpoint.Body())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Endpoint.Method(), target, body)
	if err != nil {
		return nil, NewConfigurationError(fmt.Sprintf("build request: %v", err))
	}

	if len(req.Params.Query) > 0 {
		q := url.Values{}
		for k, v := range req.Params.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range req.Params.Headers {
		httpReq.Header.Set(k, v)
	}
	if req.Endpoint.HasBody() && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", req.Endpoint.ContentType())
	}

	return httpReq, nil
}
