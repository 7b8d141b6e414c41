package main

// ReactionFunc consumes a perceived sound: how loud it arrived, where it came
// from, and the emitter's opaque quality tag.
type ReactionFunc func(loudness float64, source Vec3, quality float64)

// Listener is the receiving end of the sound system: a threshold gate in
// front of a reaction callback. It keeps no memory of past sounds; repeated
// reaction logic belongs to whatever consumes the callback.
type Listener struct {
	threshold float64
	react     ReactionFunc
}

// NewListener builds a listener with the given hearing threshold, clamped to
// [0, 1].
func NewListener(threshold float64, react ReactionFunc) *Listener {
	l := &Listener{react: react}
	l.SetHearingThreshold(threshold)
	return l
}

// CheckSound fires the reaction iff the perceived loudness meets the hearing
// threshold. The bound is inclusive: a sound exactly at the threshold reacts.
func (l *Listener) CheckSound(loudness float64, source Vec3, quality float64) {
	if loudness < l.threshold {
		return
	}
	if l.react != nil {
		l.react(loudness, source, quality)
	}
}

// SetHearingThreshold clamps the value to [0, 1] and applies it to all
// subsequent checks.
func (l *Listener) SetHearingThreshold(v float64) {
	l.threshold = clamp01(v)
}

// HearingThreshold returns the current gate value.
func (l *Listener) HearingThreshold() float64 {
	return l.threshold
}
