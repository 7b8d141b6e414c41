package main

import (
	"fmt"
	"time"
)

// SoundSource supplies the current world state of the entity an emitter is
// attached to.
type SoundSource interface {
	SoundPosition() Vec3
	SoundVelocity() Vec3
}

// EmitterConfig is validated once at construction so emissions never need to
// re-check engine constants.
type EmitterConfig struct {
	DefaultLoudness float64
	DefaultQuality  float64
	Filter          ObstructionMask
	WallPenalty     float64
}

// LastEmission records the most recent emit call for diagnostic consumers.
// It has no effect on propagation.
type LastEmission struct {
	Loudness float64
	Quality  float64
	At       time.Time
}

// Emitter is attached to any entity that makes noise. It forwards emissions
// to the propagator with its configured obstruction filter and wall penalty,
// stamped with the owner's position and velocity.
type Emitter struct {
	prop   *Propagator
	source SoundSource
	cfg    EmitterConfig
	last   LastEmission
}

func NewEmitter(prop *Propagator, source SoundSource, cfg EmitterConfig) (*Emitter, error) {
	if prop == nil || source == nil {
		return nil, fmt.Errorf("emitter: propagator and source are required")
	}
	if cfg.WallPenalty <= 0 || cfg.WallPenalty > 1 {
		return nil, fmt.Errorf("emitter: wall penalty must be in (0,1], got %g", cfg.WallPenalty)
	}
	if cfg.DefaultLoudness < 0 || cfg.DefaultLoudness > 1 {
		return nil, fmt.Errorf("emitter: default loudness must be in [0,1], got %g", cfg.DefaultLoudness)
	}
	return &Emitter{prop: prop, source: source, cfg: cfg}, nil
}

// Emit produces a sound with the emitter's default loudness and quality.
func (e *Emitter) Emit() {
	e.EmitSound(e.cfg.DefaultLoudness, e.cfg.DefaultQuality)
}

// EmitSound produces a sound with explicit loudness and quality. The whole
// propagation pass completes synchronously within this call.
func (e *Emitter) EmitSound(loudness, quality float64) {
	e.last = LastEmission{Loudness: loudness, Quality: quality, At: time.Now()}
	e.prop.Propagate(Emission{
		Origin:      e.source.SoundPosition(),
		Velocity:    e.source.SoundVelocity(),
		Loudness:    loudness,
		Quality:     quality,
		Filter:      e.cfg.Filter,
		WallPenalty: e.cfg.WallPenalty,
	})
}

// LastEmission returns the diagnostic record of the most recent emit call.
func (e *Emitter) LastEmission() LastEmission {
	return e.last
}
