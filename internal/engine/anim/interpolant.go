package anim

// interpolant ramps a value linearly from "from" to "to" over duration
// seconds of mixer time.
type interpolant struct {
	from, to float64
	elapsed  float64
	duration float64
	active   bool
}

func (i *interpolant) start(from, to, duration float64) {
	i.from = from
	i.to = to
	i.elapsed = 0
	i.duration = duration
	i.active = true
}

func (i *interpolant) stop() {
	i.active = false
}

func (i *interpolant) value() float64 {
	if i.duration <= 0 || i.elapsed >= i.duration {
		return i.to
	}
	return i.from + (i.to-i.from)*(i.elapsed/i.duration)
}

// advance moves the ramp forward and reports whether it has completed.
func (i *interpolant) advance(dt float64) bool {
	i.elapsed += dt
	return i.elapsed >= i.duration
}
