package responses

import "net/http"

// IndexResponse is the outcome of indexing a single document.
type IndexResponse struct {
	Index   string `json:"_index"`
	Type    string `json:"_type"`
	ID      string `json:"_id"`
	Version *int64 `json:"_version"`
	// Result is the operation result string on newer servers ("created",
	// "updated"); CreatedFlag is the boolean older servers send instead.
	Result      string `json:"result"`
	CreatedFlag bool   `json:"created"`
}

// Created reports whether the operation created a new document rather
// than updating an existing one.
func (r *IndexResponse) Created() bool {
	return r.CreatedFlag || r.Result == "created"
}

// GetResponse is the outcome of fetching a single document of type T.
// A missing document is not an error: the service reports 404 with a
// well-formed body and Found set to false.
type GetResponse[T any] struct {
	Index   string `json:"_index"`
	Type    string `json:"_type"`
	ID      string `json:"_id"`
	Version *int64 `json:"_version"`
	Found   bool   `json:"found"`
	Source  T      `json:"_source"`
}

// Document returns the fetched document and whether it was found.
func (r *GetResponse[T]) Document() (T, bool) {
	return r.Source, r.Found
}

func (r *GetResponse[T]) acceptsStatus(status int) bool {
	return status == http.StatusNotFound
}

// DeleteResponse is the outcome of deleting a single document. Deleting
// a document that does not exist reports 404 with a well-formed body and
// is not an error.
type DeleteResponse struct {
	Index   string `json:"_index"`
	Type    string `json:"_type"`
	ID      string `json:"_id"`
	Version *int64 `json:"_version"`
	Found   bool   `json:"found"`
	Result  string `json:"result"`
}

// Deleted reports whether a document was actually removed.
func (r *DeleteResponse) Deleted() bool {
	return r.Found || r.Result == "deleted"
}

func (r *DeleteResponse) acceptsStatus(status int) bool {
	return status == http.StatusNotFound
}

// UpdateResponse is the outcome of a partial document update.
type UpdateResponse struct {
	Index   string `json:"_index"`
	Type    string `json:"_type"`
	ID      string `json:"_id"`
	Version *int64 `json:"_version"`
	Result  string `json:"result"`
}

// Updated reports whether the update changed the document.
func (r *UpdateResponse) Updated() bool {
	return r.Result == "updated"
}
