package els

import "github.com/poiesic/elscan/core"

// ScanMonitor provides hooks to observe a parallel scan.
// SkipsScanned is called from worker goroutines and must be safe for
// concurrent use.
type ScanMonitor interface {
	Start(term core.Term, skips int)
	SkipsScanned(count int)
	Finish(term core.Term, matches []core.Match)
}

// noopMonitor is a no-op implementation of ScanMonitor
type noopMonitor struct{}

var _ ScanMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.Term, _ int)           {}
func (n *noopMonitor) SkipsScanned(_ int)                 {}
func (n *noopMonitor) Finish(_ core.Term, _ []core.Match) {}
