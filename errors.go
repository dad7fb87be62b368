package debtservice

import "errors"

// Failure classes for rate sources. Sources wrap them so callers can use errors.Is.
var (
	// ErrNetwork reports a transport failure: timeout, refused connection or a non-200 status.
	ErrNetwork = errors.New("network error")
	// ErrParse reports a payload that could not be understood: layout change, non-numeric text, malformed JSON.
	ErrParse = errors.New("parse error")
	// ErrEmpty reports a well formed payload without any observation.
	ErrEmpty = errors.New("empty result")
	// ErrNoValue is returned by a source that has nothing to say, it is skipped silently.
	ErrNoValue = errors.New("no value")
	// ErrNoRate is returned by a strict Resolver when every source failed.
	ErrNoRate = errors.New("no rate could be obtained")
	// ErrNotFinite reports an estimate that is not a finite number, e.g. at a zero total rate.
	ErrNotFinite = errors.New("estimate is not a finite number")
)
