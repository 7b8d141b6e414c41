package main

import (
	"testing"
	"time"
)

// stubSource is a fixed-position SoundSource.
type stubSource struct {
	pos Vec3
	vel Vec3
}

func (s stubSource) SoundPosition() Vec3 { return s.pos }
func (s stubSource) SoundVelocity() Vec3 { return s.vel }

func TestNewEmitterValidation(t *testing.T) {
	p := newTestPropagator(t, &stubListeners{}, &stubOccluder{})
	src := stubSource{}

	bad := []EmitterConfig{
		{DefaultLoudness: 0.5, WallPenalty: 0},
		{DefaultLoudness: 0.5, WallPenalty: -0.3},
		{DefaultLoudness: 0.5, WallPenalty: 1.5},
		{DefaultLoudness: -0.1, WallPenalty: 0.8},
		{DefaultLoudness: 1.1, WallPenalty: 0.8},
	}
	for i, cfg := range bad {
		if _, err := NewEmitter(p, src, cfg); err == nil {
			t.Fatalf("case %d: expected config %+v to be rejected", i, cfg)
		}
	}
	if _, err := NewEmitter(nil, src, EmitterConfig{WallPenalty: 1}); err == nil {
		t.Fatalf("expected nil propagator to be rejected")
	}
	if _, err := NewEmitter(p, src, EmitterConfig{DefaultLoudness: 1, WallPenalty: 1}); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestEmitterUsesDefaults(t *testing.T) {
	var gotLoudness, gotQuality float64
	l := NewListener(0, func(loudness float64, source Vec3, quality float64) {
		gotLoudness, gotQuality = loudness, quality
	})
	src := &stubListeners{hits: []ListenerHit{{Listener: l, Pos: Vec3{}}}}
	p := newTestPropagator(t, src, &stubOccluder{})

	e, err := NewEmitter(p, stubSource{}, EmitterConfig{
		DefaultLoudness: 0.4,
		DefaultQuality:  qualityFootstep,
		WallPenalty:     0.8,
	})
	if err != nil {
		t.Fatalf("emitter construction failed: %v", err)
	}
	e.Emit()
	if gotLoudness != 0.4 || gotQuality != qualityFootstep {
		t.Fatalf("default emission delivered (%g, %g), want (0.4, %g)", gotLoudness, gotQuality, float64(qualityFootstep))
	}
}

func TestEmitterStampsSourceState(t *testing.T) {
	var gotSource Vec3
	l := NewListener(0, func(loudness float64, source Vec3, quality float64) {
		gotSource = source
	})
	reg := NewListenerRegistry(listenerCellSize)
	reg.Add(l, Vec3{X: 21, Y: 34})
	p := newTestPropagator(t, reg, &stubOccluder{})

	e, err := NewEmitter(p, stubSource{pos: Vec3{X: 20, Y: 34}, vel: Vec3{X: 2}}, EmitterConfig{
		DefaultLoudness: 1.0,
		WallPenalty:     0.8,
	})
	if err != nil {
		t.Fatalf("emitter construction failed: %v", err)
	}
	e.Emit()
	if gotSource != (Vec3{X: 20, Y: 34}) {
		t.Fatalf("delivered source position %v, want emitter position", gotSource)
	}
}

func TestEmitterCopiesFilterAndPenalty(t *testing.T) {
	l := NewListener(0, nil)
	src := &stubListeners{hits: []ListenerHit{{Listener: l, Pos: Vec3{X: 5}}}}
	occ := &stubOccluder{walls: 1}
	p := newTestPropagator(t, src, occ)

	e, err := NewEmitter(p, stubSource{}, EmitterConfig{
		DefaultLoudness: 1.0,
		Filter:          BlockWall | BlockGlass,
		WallPenalty:     0.8,
	})
	if err != nil {
		t.Fatalf("emitter construction failed: %v", err)
	}
	e.Emit()
	if occ.lastFilter != BlockWall|BlockGlass {
		t.Fatalf("occlusion filter %v, want %v", occ.lastFilter, BlockWall|BlockGlass)
	}
}

func TestEmitterRecordsLastEmission(t *testing.T) {
	p := newTestPropagator(t, &stubListeners{}, &stubOccluder{})
	e, err := NewEmitter(p, stubSource{}, EmitterConfig{DefaultLoudness: 0.4, WallPenalty: 0.8})
	if err != nil {
		t.Fatalf("emitter construction failed: %v", err)
	}
	if got := e.LastEmission(); !got.At.IsZero() {
		t.Fatalf("fresh emitter already has an emission record: %+v", got)
	}
	before := time.Now()
	e.EmitSound(0.9, qualityShout)
	got := e.LastEmission()
	if got.Loudness != 0.9 || got.Quality != qualityShout {
		t.Fatalf("last emission %+v, want loudness 0.9 quality %g", got, float64(qualityShout))
	}
	if got.At.Before(before) {
		t.Fatalf("last emission timestamp %v predates the call", got.At)
	}
	// Silent calls are still recorded for diagnostics even though they
	// do not propagate.
	e.EmitSound(0, 0)
	if got := e.LastEmission(); got.Loudness != 0 {
		t.Fatalf("silent emission not recorded, got %+v", got)
	}
}
