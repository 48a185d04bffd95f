// Package coverage implements the accessor's auxiliary byte-range
// log: an appendable record of which windows have been consumed and
// why, plus a sort-then-adjacent-merge summarisation step with
// caller-overridable comparators.
package coverage

import "sort"

// Record describes one accessed byte range, relative to the owning
// accessor's own window.
type Record struct {
	Offset uint64
	Size   uint64
	Usage1 int
	Usage2 interface{}
}

// ForceOption controls whether an explicit record is appended even
// when the recorder is currently disabled.
type ForceOption int

const (
	RespectDisabled ForceOption = iota
	EvenIfDisabled
)

const initialCapacity = 64

// Recorder is the per-accessor coverage log. The zero value is a
// disabled recorder with no records, ready to use.
type Recorder struct {
	enabled      bool
	suspendCount int
	records      []Record

	// DefaultUsage1/DefaultUsage2 are appended with every implicit
	// record (one successful read); see SetUsage.
	DefaultUsage1 int
	DefaultUsage2 interface{}
}

// Allow toggles whether implicit recording is active.
func (r *Recorder) Allow(enabled bool) {
	r.enabled = enabled
}

// Enabled reports the current enable state.
func (r *Recorder) Enabled() bool {
	return r.enabled
}

// Suspend increments the re-entrant suspend counter: while it is
// above zero, no implicit record is appended regardless of Enabled.
func (r *Recorder) Suspend() {
	r.suspendCount++
}

// Resume decrements the suspend counter, saturating at zero.
func (r *Recorder) Resume() {
	if r.suspendCount > 0 {
		r.suspendCount--
	}
}

// Suspended reports whether implicit recording is currently suspended.
func (r *Recorder) Suspended() bool {
	return r.suspendCount > 0
}

// SetUsage sets the usage values attached to every implicit record
// from this point on.
func (r *Recorder) SetUsage(usage1 int, usage2 interface{}) {
	r.DefaultUsage1 = usage1
	r.DefaultUsage2 = usage2
}

// active reports whether an implicit record should be appended right
// now: enabled and not suspended.
func (r *Recorder) active() bool {
	return r.enabled && r.suspendCount == 0
}

// RecordImplicit appends a record for a just-completed successful
// read spanning [offset, offset+size), using the recorder's current
// default usage values. It is a no-op when recording is not active.
// Allocation failure while growing the backing slice is treated as
// fatal: the log must never silently lose a record.
func (r *Recorder) RecordImplicit(offset, size uint64) {
	if !r.active() || size == 0 {
		return
	}
	r.append(Record{Offset: offset, Size: size, Usage1: r.DefaultUsage1, Usage2: r.DefaultUsage2})
}

// AddExplicit appends a caller-supplied record. windowSize is the
// owning accessor's current window size, used to validate bounds and
// to resolve a size of UntilEnd. Out-of-bounds requests are dropped
// silently. When force is
// EvenIfDisabled the record is still appended while disabled,
// provided the log is not currently suspended.
func (r *Recorder) AddExplicit(offset, size, windowSize uint64, usage1 int, usage2 interface{}, force ForceOption) {
	if size == UntilEnd {
		if offset > windowSize {
			return
		}
		size = windowSize - offset
	}
	if offset > windowSize || offset+size > windowSize {
		return
	}
	if r.suspendCount > 0 {
		return
	}
	if !r.enabled && force != EvenIfDisabled {
		return
	}
	r.append(Record{Offset: offset, Size: size, Usage1: usage1, Usage2: usage2})
}

// UntilEnd tells AddExplicit to resolve Size to windowSize-offset.
const UntilEnd = ^uint64(0)

// append grows the backing slice by doubling, starting at
// initialCapacity.
func (r *Recorder) append(rec Record) {
	if r.records == nil {
		r.records = make([]Record, 0, initialCapacity)
	}
	r.records = append(r.records, rec)
}

// Records returns the current record slice. Callers must not retain
// it across a subsequent mutating call on the recorder.
func (r *Recorder) Records() []Record {
	return r.records
}

// Len reports how many records are currently logged.
func (r *Recorder) Len() int {
	return len(r.records)
}

// Compare orders two records; the default orders by increasing
// offset, then decreasing size, then increasing usage1,
// then increasing usage2 (compared only when both are ints, so the
// ordering stays defined for the common case of small integer tags;
// other usage2 types compare as equal).
type Compare func(a, b Record) bool

// Merge reports whether b should be folded into a, and if so returns
// the merged record.
type Merge func(a, b Record) (merged Record, ok bool)

// DefaultCompare is the package's default "less than" relation.
func DefaultCompare(a, b Record) bool {
	if a.Offset != b.Offset {
		return a.Offset < b.Offset
	}
	if a.Size != b.Size {
		return a.Size > b.Size // decreasing size
	}
	if a.Usage1 != b.Usage1 {
		return a.Usage1 < b.Usage1
	}
	au, aok := a.Usage2.(int)
	bu, bok := b.Usage2.(int)
	if aok && bok {
		return au < bu
	}
	return false
}

// DefaultMerge folds b into a iff their usage tags match and b starts
// within or immediately after a's extent; the merged record's size
// extends to the later of the two end offsets.
func DefaultMerge(a, b Record) (Record, bool) {
	if a.Usage1 != b.Usage1 {
		return Record{}, false
	}
	if !usageEqual(a.Usage2, b.Usage2) {
		return Record{}, false
	}
	if b.Offset < a.Offset || b.Offset > a.Offset+a.Size {
		return Record{}, false
	}
	end := a.Offset + a.Size
	bEnd := b.Offset + b.Size
	if bEnd > end {
		end = bEnd
	}
	a.Size = end - a.Offset
	return a, true
}

func usageEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	return a == b
}

// Summarize sorts records with compare (DefaultCompare if nil), then
// merges adjacent records back-to-front with merge (DefaultMerge if
// nil), minimising the size of each slice-down. The result is stored
// back into the recorder: sorted, merged, and left enabled regardless
// of its prior state.
func (r *Recorder) Summarize(compare Compare, merge Merge) {
	if compare == nil {
		compare = DefaultCompare
	}
	if merge == nil {
		merge = DefaultMerge
	}

	sort.SliceStable(r.records, func(i, j int) bool {
		return compare(r.records[i], r.records[j])
	})

	for i := len(r.records) - 2; i >= 0; i-- {
		merged, ok := merge(r.records[i], r.records[i+1])
		if !ok {
			continue
		}
		r.records[i] = merged
		r.records = append(r.records[:i+1], r.records[i+2:]...)
	}

	r.enabled = true
}
