package domain

import "errors"

var (
	// ErrNotTextURL is returned before any network call when the URL does
	// not point at a plain-text file.
	ErrNotTextURL = errors.New("url must point to a .txt file")

	// ErrFetchFailed wraps any transport-layer failure while retrieving a
	// document: connection errors, timeouts, non-2xx statuses.
	ErrFetchFailed = errors.New("failed to fetch document")

	// ErrEmptyDocument is returned when cleaning and normalization reduce
	// the document to nothing; callers should check the URL and cleaning
	// rules rather than proceed to statistics on empty input.
	ErrEmptyDocument = errors.New("text was cleaned down to nothing")
)
