package main

import (
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const rippleMarkerLife = 40 // frames an emission ring stays on screen

// rippleMarker is a render-only expanding ring spawned per emission. It grows
// to the emission's hearing radius over its lifetime.
type rippleMarker struct {
	origin    Vec3
	maxRadius float64
	age       int
}

// Game wires the propagation core to the interactive demo: a player emitting
// footsteps, listening guards, optional overlays, audio, and diagnostics.
type Game struct {
	level    *Level
	registry *ListenerRegistry
	prop     *Propagator
	counters *telemetryCounters
	hub      *eventHub

	player *player
	guards []*guard

	ripples []rippleMarker
	field   *rippleField
	workers *rippleWorkers

	sounds      *stepAudio
	audioCtx    *audio.Context
	audioPlayer *audio.Player

	pix             []byte
	lastSimDuration time.Duration
}

// newGame constructs a fully initialized Game instance.
func newGame(seed int64) (*Game, error) {
	level := newLevel(levelW, levelH, seed)
	spawn := Vec3{X: float64(levelW) / 2, Y: float64(levelH) / 2}
	level.generate(spawn.X, spawn.Y)

	registry := NewListenerRegistry(listenerCellSize)
	prop, err := NewPropagator(registry, level, minHearingRadius, maxHearingRadius)
	if err != nil {
		return nil, err
	}
	counters := newTelemetryCounters()
	prop.SetCounters(counters)

	g := &Game{
		level:    level,
		registry: registry,
		prop:     prop,
		counters: counters,
	}

	g.player = &player{
		pos:      spawn,
		rng:      rand.New(rand.NewSource(seed + 1)),
		autoWalk: *autoWalkFlag,
	}
	emitter, err := NewEmitter(prop, g.player, EmitterConfig{
		DefaultLoudness: walkLoudness,
		DefaultQuality:  qualityFootstep,
		Filter:          BlockWall,
		WallPenalty:     defaultWallPenalty,
	})
	if err != nil {
		return nil, err
	}
	g.player.emitter = emitter

	if *telemetryAddrFlag != "" {
		g.hub = newEventHub()
		startTelemetryServer(*telemetryAddrFlag, counters, g.hub)
	}

	for i := 0; i < *guardCountFlag; i++ {
		x, y := level.randomOpenCell(spawn.X, spawn.Y, 30)
		gd := newGuard(
			Vec3{X: float64(x) + 0.5, Y: float64(y) + 0.5},
			rand.New(rand.NewSource(seed+10+int64(i))),
		)
		gd.listener = NewListener(defaultHearingThreshold, func(loudness float64, source Vec3, quality float64) {
			gd.hear(loudness, source, quality)
			counters.RecordReaction()
			g.hub.Broadcast(reactionEvent{
				Type:     "reaction",
				Guard:    gd.id.String(),
				Loudness: loudness,
				SourceX:  source.X,
				SourceY:  source.Y,
				Quality:  quality,
				At:       time.Now().UnixMilli(),
			})
		})
		gd.id = registry.Add(gd.listener, gd.pos)
		g.guards = append(g.guards, gd)
	}

	if *showWavefieldFlag {
		g.field = newRippleField(levelW, levelH)
		g.workers = startRippleWorkers(g.field, level, runtime.NumCPU())
	}

	if *enableAudioFlag {
		g.audioCtx = audio.NewContext(audioSampleRate)
		g.sounds = newStepAudio()
		if player, err := g.audioCtx.NewPlayer(g.sounds); err != nil {
			log.Printf("audio player creation failed: %v", err)
			g.sounds = nil
		} else {
			g.audioPlayer = player
			g.audioPlayer.SetBufferSize(80 * time.Millisecond)
			g.audioPlayer.Play()
		}
	}

	prop.SetTrace(func(e Emission, radius float64) {
		g.ripples = append(g.ripples, rippleMarker{origin: e.Origin, maxRadius: radius})
		if g.field != nil {
			cx, cy := level.cellAtWorld(e.Origin)
			g.field.queueImpulse(cx, cy, float32(rippleImpulseMax*e.Loudness))
		}
		if g.sounds != nil {
			g.sounds.Trigger(e.Loudness)
		}
		g.hub.Broadcast(emissionEvent{
			Type:     "emission",
			X:        e.Origin.X,
			Y:        e.Origin.Y,
			VX:       e.Velocity.X,
			VY:       e.Velocity.Y,
			Loudness: e.Loudness,
			Quality:  e.Quality,
			Radius:   radius,
			At:       time.Now().UnixMilli(),
		})
	})

	return g, nil
}

// Update advances the player, fires footstep and shout emissions, steps the
// guards, and drives the optional overlay solver.
func (g *Game) Update() error {
	p := g.player
	dx, dy, loudness := p.movementVector(g.level)
	oldX, oldY := p.pos.X, p.pos.Y
	p.pos.X = clampFloat(p.pos.X+dx, 2, float64(levelW-3))
	p.pos.Y = clampFloat(p.pos.Y+dy, 2, float64(levelH-3))
	if g.level.isSolid(int(p.pos.X), int(p.pos.Y)) {
		p.pos.X, p.pos.Y = oldX, oldY
	}
	p.vel = Vec3{X: dx * defaultTPS, Y: dy * defaultTPS}

	moving := dx != 0 || dy != 0
	if moving {
		p.stepTimer++
		if p.stepTimer >= stepDelay {
			p.stepTimer = 0
			p.emitter.EmitSound(loudness, qualityFootstep)
		}
	} else {
		p.stepTimer = stepDelay
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.emitter.EmitSound(shoutLoudness, qualityShout)
	}

	simStart := time.Now()
	for _, gd := range g.guards {
		gd.update(g.level)
		g.registry.Move(gd.id, gd.pos)
	}
	if g.field != nil {
		g.field.applyImpulses(g.level)
		for i := 0; i < rippleStepsPerTick; i++ {
			g.workers.stepOnce()
		}
	}
	g.lastSimDuration = time.Since(simStart)

	alive := g.ripples[:0]
	for _, m := range g.ripples {
		m.age++
		if m.age < rippleMarkerLife {
			alive = append(alive, m)
		}
	}
	g.ripples = alive

	return nil
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
