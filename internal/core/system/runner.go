package system

import (
	"fmt"
	"sort"
	"time"
)

// Stats is the execution record of one registered system.
type Stats struct {
	Name    string
	Phase   Phase
	Runs    int64
	Skipped int64
	Last    time.Duration
	Max     time.Duration
	Total   time.Duration
}

// Avg returns the mean duration of the runs so far.
func (s Stats) Avg() time.Duration {
	if s.Runs == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Runs)
}

type entry struct {
	sys   System
	stats Stats
}

// Runner executes systems in phase order each frame. Systems sharing a phase
// run in registration order.
type Runner struct {
	entries []*entry
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		entries: make([]*entry, 0, 16),
	}
}

func (r *Runner) Register(s System) {
	name := fmt.Sprintf("%T", s)
	r.entries = append(r.entries, &entry{sys: s, stats: Stats{Name: name, Phase: s.Phase()}})
	r.sorted = false
}

func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, e := range r.entries {
		r.run(e, dt)
	}
}

// TickPhase runs only the systems of the given phase.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	r.ensureSorted()
	for _, e := range r.entries {
		if e.sys.Phase() == phase {
			r.run(e, dt)
		}
	}
}

// Stats returns a copy of every system's execution record, in run order.
func (r *Runner) Stats() []Stats {
	r.ensureSorted()
	out := make([]Stats, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.stats
	}
	return out
}

func (r *Runner) run(e *entry, dt time.Duration) {
	if t, ok := e.sys.(Toggleable); ok && !t.Enabled() {
		e.stats.Skipped++
		return
	}
	start := time.Now()
	e.sys.Update(dt)
	d := time.Since(start)

	e.stats.Runs++
	e.stats.Last = d
	e.stats.Total += d
	if d > e.stats.Max {
		e.stats.Max = d
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.entries, func(i, j int) bool {
			return r.entries[i].sys.Phase() < r.entries[j].sys.Phase()
		})
		r.sorted = true
	}
}
