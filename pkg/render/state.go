package render

import "time"

// Signals are the four directional rotation inputs sampled once per frame
type Signals struct {
	Axis1Inc bool
	Axis1Dec bool
	Axis2Inc bool
	Axis2Dec bool
}

// Any reports whether any signal is active
func (s Signals) Any() bool {
	return s.Axis1Inc || s.Axis1Dec || s.Axis2Inc || s.Axis2Dec
}

// FrameState is the per-frame rotation bookkeeping owned by the render loop
type FrameState struct {
	Angle1 float32 // radians about RotationConfig.Axis1, unbounded
	Angle2 float32 // radians about RotationConfig.Axis2, unbounded

	last    time.Duration
	started bool
}

// Tick records the monotonic timestamp of the current frame and returns the
// seconds elapsed since the previous one. The first tick and a clock that
// goes backwards both yield zero.
func (s *FrameState) Tick(now time.Duration) float32 {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}
	elapsed := now - s.last
	s.last = now
	if elapsed < 0 {
		return 0
	}
	return float32(elapsed.Seconds())
}

// Apply accumulates angle += direction * speed * elapsed for every active
// signal. Opposing signals cancel.
func (s *FrameState) Apply(sig Signals, speed, elapsed float32) {
	if elapsed <= 0 {
		return
	}
	step := speed * elapsed
	s.Angle1 += direction(sig.Axis1Inc, sig.Axis1Dec) * step
	s.Angle2 += direction(sig.Axis2Inc, sig.Axis2Dec) * step
}

func direction(inc, dec bool) float32 {
	var d float32
	if inc {
		d++
	}
	if dec {
		d--
	}
	return d
}
