package query

// orderedCounter counts string keys while remembering first-seen order. The
// reference table has no ordering guarantee beyond row order, so first-seen
// order is the documented deterministic tie-break for every ranking this
// package produces.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// max returns the key with the highest count, first-seen order breaking
// ties, and false when the counter is empty.
func (c *orderedCounter) max() (string, int, bool) {
	top := ""
	topCount := 0
	for _, key := range c.order {
		if c.counts[key] > topCount {
			top = key
			topCount = c.counts[key]
		}
	}
	return top, topCount, topCount > 0
}
