// Package responses turns raw search-service response bytes into typed
// values or classified errors.
//
// The central entry point is Parse, which takes a status code and a
// complete body and produces either a decoded response of the expected
// type, an *APIError describing a recognized service failure, or a
// *ParseError when the body matches neither shape.
//
// The service is not strict about pairing failures with failure statuses:
// a 200 response can carry an embedded error document (bulk submissions
// do this for partial failures). Parse therefore probes the body for a
// top-level "error" entry before attempting to decode the expected type,
// regardless of status.
//
//	resp, err := responses.Parse[responses.IndexResponse](status, body)
//	if responses.IsIndexAlreadyExists(err) {
//	    // the index is already there, treat as success
//	}
//
// Existence-style responses (IndicesExistsResponse) are decoded from the
// status code alone; the body is never inspected for those.
package responses
