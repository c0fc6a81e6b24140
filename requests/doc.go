// Package requests models outbound search-service calls as immutable
// endpoint descriptors.
//
// An Endpoint carries everything the dispatch pipeline needs to put a
// request on the wire: HTTP method, a fully substituted and escaped path,
// an optional serialized body, and the body's content type. Endpoints are
// independent of any base address or transport; the client package merges
// them with resolved per-call parameters at send time.
//
// Constructors cover the common service operations:
//
//	ep := requests.Ping()
//	ep, err := requests.IndexDocument("myindex", "mytype", "1", doc)
//	ep, err := requests.Search("myindex", query)
//
// Bodies are serialized once, at construction. The descriptor is a plain
// value; copying it is cheap and safe.
package requests
