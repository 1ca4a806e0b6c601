package game

import "sort"

type timerEntry struct {
	seq uint64
	due float64
	gen uint64
	fn  func()
}

// dueSlack absorbs accumulated FrameStep rounding so a 0.6s timer fires on frame 36.
const dueSlack = 1e-9

// Timers is a registry of delayed callbacks advanced by simulated time.
// CancelAll invalidates everything scheduled before it, including entries
// that are due in the same Advance call.
type Timers struct {
	now     float64
	next    uint64
	gen     uint64
	entries []*timerEntry
}

// After schedules fn to run once delay seconds of simulated time have passed.
func (t *Timers) After(delay float64, fn func()) {
	t.next++
	t.entries = append(t.entries, &timerEntry{
		seq: t.next,
		due: t.now + delay,
		gen: t.gen,
		fn:  fn,
	})
}

// CancelAll drops every pending timer.
func (t *Timers) CancelAll() {
	t.gen++
	t.entries = nil
}

// Pending returns the number of scheduled timers.
func (t *Timers) Pending() int {
	return len(t.entries)
}

// Advance moves simulated time forward and fires due timers in due order.
// Returns the number fired.
func (t *Timers) Advance(dt float64) int {
	t.now += dt

	var due, rest []*timerEntry
	for _, e := range t.entries {
		if e.due <= t.now+dueSlack {
			due = append(due, e)
		} else {
			rest = append(rest, e)
		}
	}
	if len(due) == 0 {
		return 0
	}
	t.entries = rest
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	fired := 0
	for _, e := range due {
		// A callback may have cancelled everything.
		if e.gen != t.gen {
			continue
		}
		e.fn()
		fired++
	}
	return fired
}
