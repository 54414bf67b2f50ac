// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package els

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/poiesic/elscan/core"
)

// ProgressTracker reports scan progress to a writer. It implements ScanMonitor.
type ProgressTracker struct {
	writer         io.Writer
	term           string
	total          int
	current        int
	reportInterval int
	lastReported   int
	startTime      time.Time
	started        bool
	mu             sync.Mutex
}

var _ ScanMonitor = (*ProgressTracker)(nil)

// NewProgressTracker creates a new progress tracker.
// writer: where to write progress output (typically os.Stderr)
// reportInterval: report progress every N skips
func NewProgressTracker(writer io.Writer, reportInterval int) *ProgressTracker {
	if reportInterval < 1 {
		reportInterval = 1
	}
	return &ProgressTracker{
		writer:         writer,
		reportInterval: reportInterval,
	}
}

// Start begins tracking a scan of the given number of skips.
func (p *ProgressTracker) Start(term core.Term, skips int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.term = term.Name
	p.total = skips
	p.startTime = time.Now()
	p.started = true
	p.current = 0
	p.lastReported = 0
}

// SkipsScanned increases the current progress by count skips.
func (p *ProgressTracker) SkipsScanned(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.current += count
	if p.current > p.total {
		p.current = p.total
	}

	if p.current-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = p.current
	}
}

// Finish marks the scan as complete and prints the final progress line.
func (p *ProgressTracker) Finish(_ core.Term, matches []core.Match) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.current = p.total
	p.report()
	fmt.Fprintf(p.writer, " - %d matches\n", len(matches))
	p.started = false
}

// Elapsed returns the time elapsed since Start was called.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}

	return time.Since(p.startTime)
}

// report prints the current progress. Must be called with lock held.
func (p *ProgressTracker) report() {
	elapsed := time.Since(p.startTime)
	rate := float64(p.current) / elapsed.Seconds()

	percentage := 0.0
	if p.total > 0 {
		percentage = float64(p.current) / float64(p.total) * 100.0
	}

	fmt.Fprintf(p.writer, "\r%s: %d/%d skips (%.1f%%) - %.1f skips/s",
		p.term, p.current, p.total, percentage, rate)
}
