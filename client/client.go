package client

import (
	"context"
	"net/http"
	"time"

	"github.com/kbukum/searchkit/logger"
	"github.com/kbukum/searchkit/requests"
	"github.com/kbukum/searchkit/responses"
)

// Client dispatches typed requests against a search-service cluster. A
// single Client is safe for concurrent use; the rotation cursor of its
// address pool is the only shared mutable state.
type Client struct {
	config   Config
	pool     *nodePool
	sender   Sender
	executor Executor
	log      *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger. Defaults to a no-op logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log.WithComponent("client") }
}

// WithExecutor sets the executor for scheduled-task dispatch. Defaults
// to one goroutine per task.
func WithExecutor(exec Executor) Option {
	return func(c *Client) { c.executor = exec }
}

// WithSender replaces the transport. Mainly useful in tests.
func WithSender(s Sender) Option {
	return func(c *Client) { c.sender = s }
}

// WithHTTPClient sets the underlying *http.Client used by the default
// transport. Connection pooling, TLS and timeouts are configured there.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.sender = newHTTPSender(hc) }
}

// New creates a client from the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:   cfg,
		pool:     newNodePool(cfg.Addresses),
		executor: goroutineExecutor{},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sender == nil {
		c.sender = newHTTPSender(&http.Client{Timeout: cfg.Timeout})
	}
	return c, nil
}

// dispatch runs one resolved request through the transport. Shared by
// both execution modes.
func (c *Client) dispatch(ctx context.Context, req *SendableRequest) (*Envelope, error) {
	start := time.Now()
	c.log.Debug("dispatching request", logger.Fields(
		logger.FieldMethod, req.Endpoint.Method(),
		logger.FieldPath, req.Endpoint.Path(),
		logger.FieldNode, req.Params.BaseURL,
		logger.FieldRequestID, req.Params.RequestID,
	))

	env, err := c.sender.Send(ctx, req)
	if err != nil {
		c.log.WithError(err).Debug("request failed", logger.Fields(
			logger.FieldRequestID, req.Params.RequestID,
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
		return nil, err
	}

	c.log.Debug("request completed", logger.Fields(
		logger.FieldRequestID, req.Params.RequestID,
		logger.FieldStatus, env.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return env, nil
}

// Ping fetches cluster metadata.
func (c *Client) Ping(ctx context.Context) (responses.PingResponse, error) {
	return Request[responses.PingResponse](c, requests.Ping()).Send(ctx)
}

// CreateIndex creates an index. Settings may be nil.
func (c *Client) CreateIndex(ctx context.Context, index string, settings any) (responses.CommandResponse, error) {
	ep, err := requests.CreateIndex(index, settings)
	if err != nil {
		return responses.CommandResponse{}, err
	}
	return Request[responses.CommandResponse](c, ep).Send(ctx)
}

// DeleteIndex deletes an index.
func (c *Client) DeleteIndex(ctx context.Context, index string) (responses.CommandResponse, error) {
	return Request[responses.CommandResponse](c, requests.DeleteIndex(index)).Send(ctx)
}

// IndexExists checks whether an index exists. Decided from the response
// status alone.
func (c *Client) IndexExists(ctx context.Context, index string) (bool, error) {
	resp, err := Request[responses.IndicesExistsResponse](c, requests.IndexExists(index)).Send(ctx)
	if err != nil {
		return false, err
	}
	return resp.Exists(), nil
}

// IndexDocument indexes a document under an explicit id.
func (c *Client) IndexDocument(ctx context.Context, index, docType, id string, doc any) (responses.IndexResponse, error) {
	ep, err := requests.IndexDocument(index, docType, id, doc)
	if err != nil {
		return responses.IndexResponse{}, err
	}
	return Request[responses.IndexResponse](c, ep).Send(ctx)
}

// CreateDocument indexes a document under a server-generated id. The id
// comes back on the response.
func (c *Client) CreateDocument(ctx context.Context, index, docType string, doc any) (responses.IndexResponse, error) {
	ep, err := requests.CreateDocument(index, docType, doc)
	if err != nil {
		return responses.IndexResponse{}, err
	}
	return Request[responses.IndexResponse](c, ep).Send(ctx)
}

// DeleteDocument deletes a document. Deleting a missing document is not
// an error; check Deleted on the response.
func (c *Client) DeleteDocument(ctx context.Context, index, docType, id string) (responses.DeleteResponse, error) {
	return Request[responses.DeleteResponse](c, requests.DeleteDocument(index, docType, id)).Send(ctx)
}

// UpdateDocument applies a partial update to a document.
func (c *Client) UpdateDocument(ctx context.Context, index, docType, id string, update any) (responses.UpdateResponse, error) {
	ep, err := requests.UpdateDocument(index, docType, id, update)
	if err != nil {
		return responses.UpdateResponse{}, err
	}
	return Request[responses.UpdateResponse](c, ep).Send(ctx)
}

// Bulk submits a newline-delimited JSON bulk body. Partial failures come
// back inside the response items, not as an error.
func (c *Client) Bulk(ctx context.Context, index string, body []byte) (responses.BulkResponse, error) {
	return Request[responses.BulkResponse](c, requests.Bulk(index, body)).Send(ctx)
}

// GetDocument fetches a document of type T.
func GetDocument[T any](ctx context.Context, c *Client, index, docType, id string) (responses.GetResponse[T], error) {
	return Request[responses.GetResponse[T]](c, requests.GetDocument(index, docType, id)).Send(ctx)
}

// Search runs a search whose hit documents decode as T. An empty index
// searches the whole cluster.
func Search[T any](ctx context.Context, c *Client, index string, query any) (responses.SearchResponse[T], error) {
	var zero responses.SearchResponse[T]
	ep, err := requests.Search(index, query)
	if err != nil {
		return zero, err
	}
	return Request[responses.SearchResponse[T]](c, ep).Send(ctx)
}
