package main

import (
	"fmt"
	"log"
	"math"
)

// Emission carries the parameters of one sound through a single propagation
// pass. It is built, fully resolved, and discarded within one call; no two
// emissions share state.
type Emission struct {
	Origin      Vec3
	Velocity    Vec3
	Loudness    float64
	Quality     float64
	Filter      ObstructionMask
	WallPenalty float64
}

// ListenerHit pairs a candidate listener with its position at query time.
type ListenerHit struct {
	Listener *Listener
	Pos      Vec3
}

// ListenerSource is the broad-phase spatial query supplied by the host. It
// appends every listener within radius of center to buf and returns the
// extended slice, so callers can reuse their buffer across emissions.
type ListenerSource interface {
	ListenersWithin(center Vec3, radius float64, buf []ListenerHit) []ListenerHit
}

// Occluder counts the distinct pieces of sound-blocking geometry crossed by
// the segment from one point to another, restricted to filter.
type Occluder interface {
	OcclusionCount(from, to Vec3, filter ObstructionMask) int
}

// TraceFunc observes every emission that actually propagates, together with
// its computed hearing radius. Used by overlays and diagnostics; never by the
// propagation math.
type TraceFunc func(e Emission, radius float64)

// Propagator resolves emissions against the world: it computes the hearing
// radius, finds candidate listeners, attenuates per listener by distance
// falloff and wall crossings, and delivers the perceived loudness. The whole
// pass is synchronous and never mutates world state.
type Propagator struct {
	listeners ListenerSource
	occluder  Occluder
	minRadius float64
	maxRadius float64

	buf      []ListenerHit
	counters *telemetryCounters
	trace    TraceFunc
}

// NewPropagator wires a propagator to its collaborators. The radius bounds
// are validated here so emissions never have to.
func NewPropagator(listeners ListenerSource, occluder Occluder, minRadius, maxRadius float64) (*Propagator, error) {
	if listeners == nil || occluder == nil {
		return nil, fmt.Errorf("propagator: listener source and occluder are required")
	}
	if minRadius <= 0 || maxRadius <= 0 || minRadius >= maxRadius {
		return nil, fmt.Errorf("propagator: radius bounds must satisfy 0 < min < max, got %g..%g", minRadius, maxRadius)
	}
	return &Propagator{
		listeners: listeners,
		occluder:  occluder,
		minRadius: minRadius,
		maxRadius: maxRadius,
	}, nil
}

// SetCounters attaches diagnostic counters. Nil is allowed.
func (p *Propagator) SetCounters(c *telemetryCounters) { p.counters = c }

// SetTrace attaches an emission observer. Nil disables tracing.
func (p *Propagator) SetTrace(fn TraceFunc) { p.trace = fn }

// HearingRadius returns the effective reach of a sound at the given loudness.
// Reach scales with loudness squared: quiet sounds cover a disproportionately
// small area while loud ones rapidly approach the maximum.
func (p *Propagator) HearingRadius(loudness float64) float64 {
	scale := clamp01(loudness)
	return lerp(p.minRadius, p.maxRadius, scale*scale)
}

// Propagate resolves one emission. Zero or negative loudness is a no-op, not
// an error. A panic from a collaborator or a listener callback is confined to
// this emission: it is logged and the emission dropped, so the emitting
// entity never crashes because of a downstream failure.
func (p *Propagator) Propagate(e Emission) {
	if e.Loudness <= 0 {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sound propagation dropped: %v", r)
		}
	}()

	radius := p.HearingRadius(e.Loudness)
	p.buf = p.listeners.ListenersWithin(e.Origin, radius, p.buf[:0])
	p.counters.RecordEmission(radius, len(p.buf))
	if p.trace != nil {
		p.trace(e, radius)
	}

	delivered := 0
	for _, hit := range p.buf {
		dist := hit.Pos.DistanceTo(e.Origin)
		if dist > radius {
			continue
		}
		nd := dist / radius
		heard := e.Loudness * clamp01(1-nd*nd)
		if heard <= 0 {
			continue
		}
		if walls := p.occluder.OcclusionCount(e.Origin, hit.Pos, e.Filter); walls > 0 {
			heard *= math.Pow(e.WallPenalty, float64(walls))
		}
		if heard <= 0 {
			continue
		}
		hit.Listener.CheckSound(heard, e.Origin, e.Quality)
		delivered++
	}
	p.counters.RecordDeliveries(delivered)
}
