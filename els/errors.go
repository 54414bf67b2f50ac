package els

import "errors"

var (
	// ErrStreamRequired is returned when a nil stream is passed to a Scanner.
	ErrStreamRequired = errors.New("stream required")

	// ErrNoWindows is returned when a scan is requested without any skip window.
	ErrNoWindows = errors.New("at least one skip window required")

	// ErrDuplicateTerm is returned when two terms in one scan share a label.
	ErrDuplicateTerm = errors.New("duplicate term label")
)
