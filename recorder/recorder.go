// Package recorder keeps a bounded history of analysis operations and
// running performance statistics, safe for concurrent callers.
package recorder

import (
	"sync"
	"time"
)

type Kind string

const (
	KindEvaluate      Kind = "evaluate"
	KindTruthTable    Kind = "truth_table"
	KindTautology     Kind = "tautology"
	KindContradiction Kind = "contradiction"
	KindEquivalence   Kind = "equivalence"
)

// DefaultCapacity bounds the history when no capacity is given.
const DefaultCapacity = 100

// Record is one logged operation.
type Record struct {
	Kind        Kind
	Expressions []string
	Variables   []string
	Outcome     string
	Failed      bool
	Duration    time.Duration
	At          time.Time
}

// Metrics is a point-in-time snapshot of the recorder's statistics.
type Metrics struct {
	Count          int64
	AverageSeconds float64
	Recent         []Record
}

// Recorder appends records FIFO up to its capacity, evicting the
// oldest. One mutex guards both the log and the statistics so the
// average never sees a torn read-modify-write.
type Recorder struct {
	mu      sync.Mutex
	cap     int
	records []Record
	count   int64
	avgSecs float64
}

func New(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{cap: capacity}
}

// Record appends r, stamping it if At is zero, and folds its duration
// into the running average under the same lock.
func (rc *Recorder) Record(r Record) {
	if r.At.IsZero() {
		r.At = time.Now()
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.records = append(rc.records, r)
	if len(rc.records) > rc.cap {
		rc.records = rc.records[1:]
	}
	rc.count++
	rc.avgSecs = (rc.avgSecs*float64(rc.count-1) + r.Duration.Seconds()) /
		float64(rc.count)
}

// Metrics returns a snapshot. The returned slice is a copy; callers
// may hold it without further locking.
func (rc *Recorder) Metrics() Metrics {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	recent := make([]Record, len(rc.records))
	copy(recent, rc.records)
	return Metrics{
		Count:          rc.count,
		AverageSeconds: rc.avgSecs,
		Recent:         recent,
	}
}

// Clear atomically resets the log and the statistics.
func (rc *Recorder) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.records = nil
	rc.count = 0
	rc.avgSecs = 0
}
