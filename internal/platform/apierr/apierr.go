// Package apierr defines the closed set of failure kinds the API exposes.
// Components raise these; the httpx layer is the only place that turns them
// into wire responses.
package apierr

import "errors"

// Kind enumerates the recognized failure classes.
type Kind int

const (
	// KindBadRequest covers missing/blank fields, length violations and
	// unparseable request bodies.
	KindBadRequest Kind = iota
	// KindUnauthenticated covers credential failures and missing, invalid
	// or expired tokens.
	KindUnauthenticated
	// KindNotFound covers lookups for resources that do not exist.
	KindNotFound
	// KindConflict covers uniqueness violations such as duplicate emails.
	KindConflict
)

// Error is a tagged failure carrying a human-readable message. Anything that
// is not an *Error is treated as an internal defect by the HTTP layer.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// BadRequest builds a KindBadRequest error.
func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Msg: msg} }

// Unauthenticated builds a KindUnauthenticated error.
func Unauthenticated(msg string) *Error { return &Error{Kind: KindUnauthenticated, Msg: msg} }

// NotFound builds a KindNotFound error.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }

// Conflict builds a KindConflict error.
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }

// From extracts the tagged error from err's chain, if any.
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Recognized reports whether err belongs to the closed taxonomy.
func Recognized(err error) bool {
	_, ok := From(err)
	return ok
}
