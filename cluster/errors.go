package cluster

import "errors"

var (
	// ErrAnalyzerReleased is returned when an Analyzer is used after Release.
	ErrAnalyzerReleased = errors.New("analyzer released")
)
