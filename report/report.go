// Package report renders scan reports as plain text.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/gematria"
)

const rule = "------------------------------"

// Locator names the region of the stream an index falls in, such as a book.
type Locator func(index int) string

type options struct {
	maxPairs int
	locate   Locator
	stream   *core.Stream
	context  int
}

// Option configures the text output.
type Option func(*options)

// WithMaxPairs limits how many cluster pairs are listed. Zero lists all.
func WithMaxPairs(n int) Option {
	return func(o *options) {
		o.maxPairs = max(n, 0)
	}
}

// WithLocator annotates match positions with a region name.
func WithLocator(l Locator) Option {
	return func(o *options) {
		o.locate = l
	}
}

// WithContext prints radius symbols either side of each paired match start.
func WithContext(stream *core.Stream, radius int) Option {
	return func(o *options) {
		o.stream = stream
		o.context = max(radius, 0)
	}
}

// Write renders r to w.
func Write(w io.Writer, r *core.Report, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	writeHeader(bw, r)
	writeTerms(bw, r)
	writePairs(bw, r, &o)
	writeClusters(bw, r)
	return bw.Flush()
}

// String renders r as text.
func String(r *core.Report, opts ...Option) string {
	var sb strings.Builder
	_ = Write(&sb, r, opts...)
	return sb.String()
}

func writeHeader(w *bufio.Writer, r *core.Report) {
	fmt.Fprintf(w, "Run %s\n", r.RunId)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created: %s\n", r.CreatedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(w, "Search space: %d symbols (stream %016x)\n", r.StreamLen, uint64(r.StreamId))
	windows := make([]string, len(r.Windows))
	for i, win := range r.Windows {
		windows[i] = fmt.Sprintf("[%d, %d]", win.Min, win.Max)
	}
	fmt.Fprintf(w, "Skips: %s\n", strings.Join(windows, " "))
	fmt.Fprintf(w, "Proximity threshold: %d\n", r.Threshold)
}

func writeTerms(w *bufio.Writer, r *core.Report) {
	fmt.Fprintf(w, "\n--- TERMS ---\n")
	for _, h := range r.Hits {
		fmt.Fprintf(w, "%s (%s, gematria %d): ", h.Term.Name, h.Term.Text(), gematria.Calculate(h.Term.Symbols, gematria.Standard))
		if len(h.Matches) == 0 {
			fmt.Fprintln(w, "none found")
			continue
		}
		forward := 0
		for _, m := range h.Matches {
			if m.Skip > 0 {
				forward++
			}
		}
		fmt.Fprintf(w, "%d hits (%d forward, %d backward)\n", len(h.Matches), forward, len(h.Matches)-forward)
	}
}

func writePairs(w *bufio.Writer, r *core.Report, o *options) {
	fmt.Fprintf(w, "\n--- CLUSTER PAIRS (%d) ---\n", len(r.Pairs))
	if len(r.Pairs) == 0 {
		fmt.Fprintln(w, "none")
		return
	}
	shown := r.Pairs
	if o.maxPairs > 0 && len(shown) > o.maxPairs {
		shown = shown[:o.maxPairs]
	}
	for _, p := range shown {
		fmt.Fprintf(w, "'%s' and '%s' found together\n", p.First.Term, p.Second.Term)
		writeMatch(w, p.First, o)
		writeMatch(w, p.Second, o)
		fmt.Fprintf(w, "    Distance: %d letters.\n", p.Distance)
		fmt.Fprintln(w, rule)
	}
	if hidden := len(r.Pairs) - len(shown); hidden > 0 {
		fmt.Fprintf(w, "... %d more\n", hidden)
	}
}

func writeMatch(w *bufio.Writer, m core.Match, o *options) {
	fmt.Fprintf(w, "    %s: Index %d, Skip %d", m.Term, m.Start, m.Skip)
	if o.locate != nil {
		if region := o.locate(m.Start); region != "" {
			fmt.Fprintf(w, " (%s)", region)
		}
	}
	if o.stream != nil && o.context > 0 {
		fmt.Fprintf(w, " [%s]", o.stream.Slice(m.Start-o.context, m.Start+o.context+1))
	}
	fmt.Fprintln(w)
}

func writeClusters(w *bufio.Writer, r *core.Report) {
	fmt.Fprintf(w, "\n--- CLUSTERS (%d) ---\n", len(r.Clusters))
	if len(r.Clusters) == 0 {
		fmt.Fprintln(w, "none")
		return
	}
	for i, c := range r.Clusters {
		fmt.Fprintf(w, "#%d indices %d..%d: %s (%d members)\n", i+1, c.Low, c.High, strings.Join(c.Terms, ", "), len(c.Members))
	}
}

// Summary renders r as one line for run listings.
func Summary(r *core.Report) string {
	created := "-"
	if !r.CreatedAt.IsZero() {
		created = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	hits := 0
	for _, h := range r.Hits {
		hits += len(h.Matches)
	}
	return fmt.Sprintf("%s  %s  %d terms  %d hits  %d pairs  %d clusters",
		r.RunId, created, len(r.Hits), hits, len(r.Pairs), len(r.Clusters))
}
