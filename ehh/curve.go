package ehh

// curve tracks one decaying statistic and its trapezoid integral.
type curve struct {
	cur      float64
	prev     float64
	integral float64
}

func newCurve(seed float64) curve {
	return curve{cur: seed, prev: seed}
}

// add records the statistic at the next locus and integrates the trapezoid
// between it and the previous value over dist, shrunk by scale.
func (c *curve) add(value, scale, dist float64) {
	c.cur = value
	c.integral += 0.5 * scale * dist * (c.cur + c.prev)
	c.prev = c.cur
}
