package input

// Sample is the level state of each control for one poll.
type Sample map[Control]bool

// EdgeDetector converts level samples into rising edges. It remembers the
// previous sample per control; a control fires only on inactive→active.
type EdgeDetector struct {
	order []Control
	prev  map[Control]bool
}

// NewEdgeDetector tracks the given controls, reporting edges in that order.
func NewEdgeDetector(order ...Control) *EdgeDetector {
	if len(order) == 0 {
		order = Controls
	}
	return &EdgeDetector{
		order: append([]Control(nil), order...),
		prev:  make(map[Control]bool, len(order)),
	}
}

// Update records sample and returns controls that just became active.
// Controls missing from sample count as inactive.
func (d *EdgeDetector) Update(sample Sample) []Control {
	var rising []Control
	for _, c := range d.order {
		now := sample[c]
		if now && !d.prev[c] {
			rising = append(rising, c)
		}
		d.prev[c] = now
	}
	return rising
}

// Reset forgets history so held controls fire again on the next Update.
func (d *EdgeDetector) Reset() {
	for k := range d.prev {
		delete(d.prev, k)
	}
}
