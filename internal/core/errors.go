package core

import "errors"

var (
	// ErrRemoteUnavailable covers transport errors, timeouts and
	// 5xx-equivalent failures from either remote model.
	ErrRemoteUnavailable = errors.New("remote model unavailable")

	// ErrMalformedResponse means the remote call succeeded but the
	// payload failed schema validation. Treated like ErrRemoteUnavailable
	// at the orchestrator boundary.
	ErrMalformedResponse = errors.New("malformed model response")
)
