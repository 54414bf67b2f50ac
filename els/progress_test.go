package els

import (
	"bytes"
	"testing"
	"time"

	"github.com/poiesic/elscan/core"
	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Basic(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10)

	tracker.Start(core.NewTerm("DNA", "דנא"), 100)
	assert.True(t, tracker.started, "should be started")

	tracker.SkipsScanned(25)
	tracker.SkipsScanned(25)
	tracker.SkipsScanned(50)

	elapsed := tracker.Elapsed()
	assert.Greater(t, elapsed, time.Duration(0), "elapsed time should be positive")

	output := buf.String()
	assert.Contains(t, output, "DNA: 100/100 skips", "should show completion")
	assert.Contains(t, output, "100.0%", "should show 100%")
}

func TestProgressTracker_Finish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10)

	tracker.Start(core.NewTerm("DNA", "דנא"), 100)
	tracker.SkipsScanned(5)
	tracker.Finish(core.NewTerm("DNA", "דנא"), []core.Match{{Term: "DNA"}, {Term: "DNA"}})

	output := buf.String()
	assert.Contains(t, output, "100/100", "finish should set to total")
	assert.Contains(t, output, " - 2 matches\n")
	assert.False(t, tracker.started)
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 0)

	tracker.SkipsScanned(10)
	tracker.Finish(core.Term{}, nil)

	assert.Empty(t, buf.String())
	assert.Equal(t, time.Duration(0), tracker.Elapsed())
}

func TestProgressTracker_BeyondTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 1)

	tracker.Start(core.NewTerm("X", "X"), 10)
	tracker.SkipsScanned(150)

	assert.Contains(t, buf.String(), "10/10", "should cap at total")
}
