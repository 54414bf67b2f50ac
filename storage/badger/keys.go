package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/elscan/core"
)

// Key prefixes for different data types
const (
	matchSetPrefix   = "matset"
	reportPrefix     = "runrep"
	reportDatePrefix = "runrepd"
)

// makeMatchSetKey generates a key for a cached match set.
// Format: prefix:streamID:termID:min:max
func makeMatchSetKey(streamID core.ID, termID core.ID, window core.SkipWindow) []byte {
	return []byte(fmt.Sprintf("%s:%d:%d:%d:%d", matchSetPrefix, streamID, termID, window.Min, window.Max))
}

// makeMatchSetStreamPrefix generates the key prefix shared by every match set of a stream.
func makeMatchSetStreamPrefix(streamID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d:", matchSetPrefix, streamID))
}

// makeReportKey generates a key for a report by run ID.
func makeReportKey(runID string) []byte {
	return []byte(reportPrefix + ":" + runID)
}

// makeReportDateKey generates a composite key for the report time index.
// Format: prefix:timestamp:runID
func makeReportDateKey(createdAt time.Time, runID string) []byte {
	buf := makePartialReportDateKey(createdAt)
	return append(buf, runID...)
}

// makePartialReportDateKey generates a partial key for time-ordered scans.
// Format: prefix:timestamp
func makePartialReportDateKey(createdAt time.Time) []byte {
	prefix := reportDatePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	return buf
}
