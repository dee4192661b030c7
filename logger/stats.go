package logger

import (
	"sync/atomic"

	"github.com/philipp01105/mysyslog/core"
)

// numKinds bounds the per-kind counters; it must exceed the largest core.Kind.
const numKinds = int(core.TimeUnavailable) + 1

// Stats tracks dispatcher statistics
type Stats struct {
	written atomic.Uint64
	// failed is indexed by core.Kind; index 0 counts errors without a kind
	failed [numKinds]atomic.Uint64
}

// recordWritten counts one entry handed to a driver successfully
func (s *Stats) recordWritten() {
	s.written.Add(1)
}

// recordFailure counts a failed call under the outermost kind of err
func (s *Stats) recordFailure(err error) {
	k := int(core.KindOf(err))
	if k >= numKinds {
		k = 0
	}
	s.failed[k].Add(1)
}

// GetWritten returns the number of entries written
func (s *Stats) GetWritten() uint64 {
	return s.written.Load()
}

// GetFailed returns the failure count for a kind
func (s *Stats) GetFailed(kind core.Kind) uint64 {
	if int(kind) >= numKinds {
		return 0
	}
	return s.failed[kind].Load()
}

// GetTotalFailed returns the failures across all kinds
func (s *Stats) GetTotalFailed() uint64 {
	var total uint64
	for i := range s.failed {
		total += s.failed[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.written.Store(0)
	for i := range s.failed {
		s.failed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written uint64
	Failed  map[core.Kind]uint64
}

// GetSnapshot returns a snapshot of current statistics. Kinds with no
// failures are omitted.
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written: s.written.Load(),
		Failed:  make(map[core.Kind]uint64),
	}
	for i := range s.failed {
		if n := s.failed[i].Load(); n > 0 {
			snap.Failed[core.Kind(i)] = n
		}
	}
	return snap
}
