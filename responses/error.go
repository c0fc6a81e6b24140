package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrorKind classifies recognized service failures.
type ErrorKind int

const (
	// KindUnknown is the fallback for unrecognized failure types. The
	// server's raw type and reason strings are preserved verbatim.
	KindUnknown ErrorKind = iota
	// KindIndexNotFound indicates the target index does not exist.
	KindIndexNotFound
	// KindIndexAlreadyExists indicates an index creation hit an existing index.
	KindIndexAlreadyExists
	// KindVersionConflict indicates an optimistic concurrency conflict.
	KindVersionConflict
	// KindDocumentMissing indicates an update targeted a missing document.
	KindDocumentMissing
	// KindMapperParsing indicates a document failed schema mapping.
	KindMapperParsing
	// KindIllegalArgument indicates the service rejected a request argument.
	KindIllegalArgument
	// KindActionRequestValidation indicates the request failed server-side validation.
	KindActionRequestValidation
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindIndexNotFound:
		return "index_not_found"
	case KindIndexAlreadyExists:
		return "index_already_exists"
	case KindVersionConflict:
		return "version_conflict"
	case KindDocumentMissing:
		return "document_missing"
	case KindMapperParsing:
		return "mapper_parsing"
	case KindIllegalArgument:
		return "illegal_argument"
	case KindActionRequestValidation:
		return "action_request_validation"
	default:
		return "unknown"
	}
}

// kindByType maps the server's exception type strings to kinds. Types not
// listed here classify as KindUnknown with the raw strings preserved.
var kindByType = map[string]ErrorKind{
	"index_not_found_exception":          KindIndexNotFound,
	"index_already_exists_exception":     KindIndexAlreadyExists,
	"version_conflict_engine_exception":  KindVersionConflict,
	"document_missing_exception":         KindDocumentMissing,
	"mapper_parsing_exception":           KindMapperParsing,
	"illegal_argument_exception":         KindIllegalArgument,
	"action_request_validation_exception": KindActionRequestValidation,
}

// APIError is a failure reported by the service itself through its error
// envelope. It is a first-class outcome: callers branch on Kind (or the
// Is* helpers) instead of matching message strings.
type APIError struct {
	// Kind classifies the failure against the closed set of recognized types.
	Kind ErrorKind
	// Type is the server's raw exception type string.
	Type string
	// Reason is the server's human-readable explanation.
	Reason string
	// Index is the index the failure refers to, when the server supplied one.
	Index string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Index != "":
		return fmt.Sprintf("responses: %s (index %q): %s", e.Kind, e.Index, e.Reason)
	case e.Type != "" && e.Kind == KindUnknown:
		return fmt.Sprintf("responses: %s (%s): %s", e.Kind, e.Type, e.Reason)
	default:
		return fmt.Sprintf("responses: %s: %s", e.Kind, e.Reason)
	}
}

// classifyError builds an *APIError from the raw contents of a top-level
// "error" entry. The entry is either a bare string or an object with at
// least "type" and "reason" fields.
func classifyError(raw json.RawMessage) *APIError {
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return &APIError{Kind: KindUnknown, Reason: msg}
	}

	var envelope struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
		Index  string `json:"index"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Type != "" {
		kind, ok := kindByType[envelope.Type]
		if !ok {
			kind = KindUnknown
		}
		return &APIError{
			Kind:   kind,
			Type:   envelope.Type,
			Reason: envelope.Reason,
			Index:  envelope.Index,
		}
	}

	// An error entry of an unexpected shape. Keep the raw contents so
	// nothing is silently discarded.
	return &APIError{Kind: KindUnknown, Reason: string(bound(raw))}
}

// ParseError indicates the body matched neither the expected response
// shape nor a recognized error envelope.
type ParseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Excerpt is a bounded sample of the raw body for diagnostics.
	Excerpt string
	// Err is the underlying decode error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("responses: unparseable response (HTTP %d): %v: %q", e.StatusCode, e.Err, e.Excerpt)
	}
	return fmt.Sprintf("responses: unparseable response (HTTP %d): %q", e.StatusCode, e.Excerpt)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error { return e.Err }

const excerptLimit = 256

// bound truncates a body for use in diagnostics, backing the cut off to
// a rune boundary so the excerpt stays valid UTF-8.
func bound(body []byte) []byte {
	if len(body) <= excerptLimit {
		return body
	}
	cut := excerptLimit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut]
}

func newParseError(status int, body []byte, err error) *ParseError {
	return &ParseError{StatusCode: status, Excerpt: string(bound(body)), Err: err}
}

// IsAPIError checks if an error is a service-reported failure.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsIndexNotFound checks if an error is an index-not-found failure.
func IsIndexNotFound(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Kind == KindIndexNotFound
}

// IsIndexAlreadyExists checks if an error is an index-already-exists failure.
func IsIndexAlreadyExists(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Kind == KindIndexAlreadyExists
}

// IsVersionConflict checks if an error is a version conflict.
func IsVersionConflict(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Kind == KindVersionConflict
}

// IsDocumentMissing checks if an error is a document-missing failure.
func IsDocumentMissing(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Kind == KindDocumentMissing
}

// IsMapperParsing checks if an error is a mapping failure.
func IsMapperParsing(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Kind == KindMapperParsing
}

// IsParseError checks if an error is an unparseable-response failure.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
