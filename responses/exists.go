package responses

import "net/http"

// IndicesExistsResponse is the outcome of an index existence check. The
// check is decided from the status code alone: 200 means the index
// exists, 404 that it does not. Any other status is a classification
// failure.
type IndicesExistsResponse struct {
	exists bool
}

// Exists reports whether the index exists.
func (r *IndicesExistsResponse) Exists() bool { return r.exists }

func (r *IndicesExistsResponse) decodeStatus(status int) error {
	switch status {
	case http.StatusOK:
		r.exists = true
		return nil
	case http.StatusNotFound:
		r.exists = false
		return nil
	default:
		return &ParseError{StatusCode: status}
	}
}
