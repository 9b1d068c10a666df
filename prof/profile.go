// Package prof collects coarse phase timings from the commitment pipeline.
// Library code records spans with Track; drivers drain them with
// SnapshotAndReset or print an aggregate with Report.
package prof

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// Entry is one recorded span: a phase label and how long it ran.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track records the time elapsed since start under label. Meant to be
// deferred at the top of a phase:
//
//	defer prof.Track(time.Now(), "Hyrax.CommitRows")
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset hands back everything recorded so far and opens a fresh
// window, so a sweep driver can attribute spans to a single run.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Report aggregates entries by label and writes one line per label, longest
// total first, with the call count when a label fired more than once.
func Report(w io.Writer, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	totals := make(map[string]time.Duration)
	counts := make(map[string]int)
	for _, e := range entries {
		totals[e.Label] += e.Dur
		counts[e.Label]++
	}
	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return totals[labels[i]] > totals[labels[j]] })
	for _, label := range labels {
		if counts[label] > 1 {
			fmt.Fprintf(w, "  %-40s %12s  (%d calls)\n", label, totals[label], counts[label])
			continue
		}
		fmt.Fprintf(w, "  %-40s %12s\n", label, totals[label])
	}
}
