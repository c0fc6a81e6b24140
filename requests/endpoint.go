package requests

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const (
	// ContentTypeJSON is the content type for JSON request bodies.
	ContentTypeJSON = "application/json"
	// ContentTypeNDJSON is the content type for newline-delimited JSON
	// bodies used by bulk submissions.
	ContentTypeNDJSON = "application/x-ndjson"
)

// Endpoint describes one outbound call to the search service. It is
// immutable once constructed: fields are unexported and only readable
// through accessors.
type Endpoint struct {
	method      string
	path        string
	body        []byte
	contentType string
}

// Method returns the HTTP method of the call.
func (e Endpoint) Method() string { return e.method }

// Path returns the request path with all path parameters substituted
// and percent-escaped.
func (e Endpoint) Path() string { return e.path }

// Body returns the serialized request body, or nil when the call has none.
// Callers must not modify the returned slice.
func (e Endpoint) Body() []byte { return e.body }

// ContentType returns the content type of the body, or "" when there is
// no body.
func (e Endpoint) ContentType() string { return e.contentType }

// HasBody reports whether the call carries a body.
func (e Endpoint) HasBody() bool { return len(e.body) > 0 }

// String returns a short description for logging.
func (e Endpoint) String() string {
	return fmt.Sprintf("%s %s", e.method, e.path)
}

// joinPath builds a request path from segments, escaping each one.
func joinPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}

// encodeBody serializes a request body. io.Reader is intentionally not
// accepted: descriptors hold complete bodies so they can be re-read by
// the transport.
func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case json.RawMessage:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("requests: encode body: %w", err)
		}
		return data, nil
	}
}
