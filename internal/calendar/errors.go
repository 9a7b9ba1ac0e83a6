package calendar

import "errors"

var (
	// ErrFetchFailed means at least one read of the window failed. The
	// published snapshot is the last known good one or empty.
	ErrFetchFailed = errors.New("failed to fetch calendar window")
	// ErrStaleWindowResponse means a newer navigation superseded this one and
	// its result was discarded. It is never shown to users.
	ErrStaleWindowResponse = errors.New("stale calendar window response")
	ErrUnknownProject      = errors.New("unknown project")
)
