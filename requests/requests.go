package requests

import "net/http"

// Ping creates a cluster ping request.
func Ping() Endpoint {
	return Endpoint{method: http.MethodGet, path: "/"}
}

// GetDocument creates a document get request.
func GetDocument(index, docType, id string) Endpoint {
	return Endpoint{method: http.MethodGet, path: joinPath(index, docType, id)}
}

// IndexDocument creates a document index request for an explicit id.
// The document is serialized at construction.
func IndexDocument(index, docType, id string, doc any) (Endpoint, error) {
	body, err := encodeBody(doc)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{
		method:      http.MethodPut,
		path:        joinPath(index, docType, id),
		body:        body,
		contentType: ContentTypeJSON,
	}, nil
}

// CreateDocument creates a document index request with a server-generated id.
func CreateDocument(index, docType string, doc any) (Endpoint, error) {
	body, err := encodeBody(doc)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{
		method:      http.MethodPost,
		path:        joinPath(index, docType),
		body:        body,
		contentType: ContentTypeJSON,
	}, nil
}

// DeleteDocument creates a document delete request.
func DeleteDocument(index, docType, id string) Endpoint {
	return Endpoint{method: http.MethodDelete, path: joinPath(index, docType, id)}
}

// UpdateDocument creates a partial document update request. The update
// script or partial document is passed as-is and serialized at construction.
func UpdateDocument(index, docType, id string, update any) (Endpoint, error) {
	body, err := encodeBody(update)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{
		method:      http.MethodPost,
		path:        joinPath(index, docType, id, "_update"),
		body:        body,
		contentType: ContentTypeJSON,
	}, nil
}

// Search creates a search request scoped to an index. An empty index
// searches the whole cluster. A nil query sends a bodyless match-all search.
func Search(index string, query any) (Endpoint, error) {
	body, err := encodeBody(query)
	if err != nil {
		return Endpoint{}, err
	}
	path := "/_search"
	if index != "" {
		path = joinPath(index, "_search")
	}
	ep := Endpoint{method: http.MethodPost, path: path}
	if len(body) > 0 {
		ep.body = body
		ep.contentType = ContentTypeJSON
	}
	return ep, nil
}

// Bulk creates a bulk submission request. The body must already be
// newline-delimited JSON, one action or source line each.
func Bulk(index string, body []byte) Endpoint {
	path := "/_bulk"
	if index != "" {
		path = joinPath(index, "_bulk")
	}
	return Endpoint{
		method:      http.MethodPost,
		path:        path,
		body:        body,
		contentType: ContentTypeNDJSON,
	}
}

// CreateIndex creates an index creation request. Settings may be nil.
func CreateIndex(index string, settings any) (Endpoint, error) {
	body, err := encodeBody(settings)
	if err != nil {
		return Endpoint{}, err
	}
	ep := Endpoint{method: http.MethodPut, path: joinPath(index)}
	if len(body) > 0 {
		ep.body = body
		ep.contentType = ContentTypeJSON
	}
	return ep, nil
}

// DeleteIndex creates an index deletion request.
func DeleteIndex(index string) Endpoint {
	return Endpoint{method: http.MethodDelete, path: joinPath(index)}
}

// IndexExists creates an index existence check. The response carries no
// body; existence is decided from the status code alone.
func IndexExists(index string) Endpoint {
	return Endpoint{method: http.MethodHead, path: joinPath(index)}
}
