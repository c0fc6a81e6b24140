package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// statusDecoder is implemented by response types whose value is decided
// from the status code alone, without inspecting the body.
type statusDecoder interface {
	decodeStatus(status int) error
}

// statusAcceptor is implemented by response types that can decode bodies
// outside the 2xx range (a delete of a missing document reports 404 with
// a well-formed body, for example).
type statusAcceptor interface {
	acceptsStatus(status int) bool
}

// errorProbe pulls out a top-level "error" entry without committing to
// any particular body shape.
type errorProbe struct {
	Error *json.RawMessage `json:"error"`
}

// Parse decodes a complete response body into T.
//
// The error envelope check runs first, independent of status: if the top
// level carries an "error" entry the result is an *APIError even when the
// status is in the success range. Otherwise the body is decoded as T when
// the status allows it; anything else is a *ParseError carrying the status
// and a diagnostic excerpt of the raw body.
//
// Types implementing the status-only hook (IndicesExistsResponse) are
// decoded from the status alone and the body is ignored.
func Parse[T any](status int, body []byte) (T, error) {
	var out T

	if sd, ok := any(&out).(statusDecoder); ok {
		if err := sd.decodeStatus(status); err != nil {
			return out, err
		}
		return out, nil
	}

	var probe errorProbe
	if err := json.Unmarshal(body, &probe); err == nil && probe.Error != nil {
		return out, classifyError(*probe.Error)
	}

	if !decodableStatus(status, any(&out)) {
		return out, newParseError(status, body, errors.New("unexpected status"))
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, newParseError(status, body, err)
	}
	return out, nil
}

// ParseReader drains r fully, then parses it the same way Parse does.
// No partial decode is ever observable: decoding starts only after the
// whole body has been read.
func ParseReader[T any](status int, r io.Reader) (T, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		var out T
		return out, newParseError(status, body, fmt.Errorf("read body: %w", err))
	}
	return Parse[T](status, body)
}

// decodableStatus reports whether a body with the given status may be
// decoded as the target type.
func decodableStatus(status int, target any) bool {
	if status >= 200 && status < 300 {
		return true
	}
	if sa, ok := target.(statusAcceptor); ok {
		return sa.acceptsStatus(status)
	}
	return false
}
