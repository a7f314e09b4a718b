// Package aggregate accounts log-type frequencies across a parse run.
package aggregate

import "sort"

type (
	// LogTypeCount is one template with its stable ID and frequency.
	LogTypeCount struct {
		// ID is assigned in first-seen order and never changes.
		ID int

		// LogType is the event template.
		LogType string

		// Count is the number of events that rendered to this
		// template.
		Count int
	}

	// LogTypeCounter assigns stable first-seen IDs to templates and
	// counts occurrences.
	LogTypeCounter struct {
		ids    map[string]int
		counts []LogTypeCount
		total  int
	}
)

// NewLogTypeCounter returns an empty counter.
func NewLogTypeCounter() *LogTypeCounter {
	return &LogTypeCounter{ids: make(map[string]int)}
}

// Observe records one event of the given template and returns the
// template's stable ID.
func (c *LogTypeCounter) Observe(logType string) int {
	c.total++

	if id, ok := c.ids[logType]; ok {
		c.counts[id].Count++
		return id
	}

	id := len(c.counts)
	c.ids[logType] = id
	c.counts = append(c.counts, LogTypeCount{ID: id, LogType: logType, Count: 1})

	return id
}

// Total returns the number of observed events.
func (c *LogTypeCounter) Total() int {
	return c.total
}

// Len returns the number of distinct templates.
func (c *LogTypeCounter) Len() int {
	return len(c.counts)
}

// ByID returns the templates in first-seen order.
func (c *LogTypeCounter) ByID() []LogTypeCount {
	out := make([]LogTypeCount, len(c.counts))
	copy(out, c.counts)
	return out
}

// ByCount returns the templates most frequent first; equal counts keep
// first-seen order.
func (c *LogTypeCounter) ByCount() []LogTypeCount {
	out := c.ByID()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
