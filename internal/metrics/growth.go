package metrics

import "github.com/san-kum/arraylist/internal/arraylist"

type Metric interface {
	Name() string
	Value() float64
	Reset()
}

// GrowthTracker records the growth events of a list. Attach it with
// ArrayList.SetGrowthObserver.
type GrowthTracker struct {
	name    string
	initial int
	events  int
	copies  int
	history []int
}

func NewGrowthTracker(initialCap int) *GrowthTracker {
	return &GrowthTracker{
		name:    "growth_events",
		initial: initialCap,
		history: []int{initialCap},
	}
}

func (g *GrowthTracker) Name() string { return g.name }

func (g *GrowthTracker) OnGrow(oldCap, newCap, size int) {
	g.events++
	g.copies += size
	g.history = append(g.history, newCap)
}

func (g *GrowthTracker) Value() float64 { return float64(g.events) }

func (g *GrowthTracker) Reset() {
	g.events = 0
	g.copies = 0
	g.history = []int{g.initial}
}

func (g *GrowthTracker) Events() int { return g.events }

// Copies is the total number of elements moved into new backing stores.
func (g *GrowthTracker) Copies() int { return g.copies }

// History returns the capacity after each growth event, starting with the
// initial capacity.
func (g *GrowthTracker) History() []int {
	out := make([]int, len(g.history))
	copy(out, g.history)
	return out
}

func (g *GrowthTracker) Capacity() int { return g.history[len(g.history)-1] }

// AmortizedCopies returns copies per insertion for n insertions.
func (g *GrowthTracker) AmortizedCopies(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(g.copies) / float64(n)
}

func (g *GrowthTracker) Snapshot() map[string]float64 {
	return map[string]float64{
		"growth_events":  float64(g.events),
		"element_copies": float64(g.copies),
		"capacity":       float64(g.Capacity()),
	}
}

// Capacities returns the capacity sequence a list starting at initial passes
// through while n elements are appended, starting with initial.
func Capacities(initial, n int) []int {
	caps := []int{initial}
	c := initial
	for c < n {
		c = arraylist.NextCapacity(c)
		caps = append(caps, c)
	}
	return caps
}
