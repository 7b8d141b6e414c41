package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type alertLevel int

const (
	alertCalm alertLevel = iota
	alertSuspicious
	alertAlarmed
)

// guard is a wandering NPC with a listener capability. Hearing a sound makes
// it investigate the source; loud sounds and shouts alarm it outright.
// Alertness decays back to calm after a quiet spell.
type guard struct {
	id  uuid.UUID
	pos Vec3
	rng *rand.Rand

	dirX, dirY   float64
	wanderFrames int

	listener      *Listener
	alert         alertLevel
	investigating bool
	lastHeard     Vec3
	lastLoudness  float64
	heardAt       time.Time
}

func newGuard(pos Vec3, rng *rand.Rand) *guard {
	return &guard{pos: pos, rng: rng}
}

// hear is the guard's reaction to a perceived sound. Louder percepts override
// the current investigation target and reset the calm-down timer.
func (gd *guard) hear(loudness float64, source Vec3, quality float64) {
	gd.lastHeard = source
	gd.lastLoudness = loudness
	gd.heardAt = time.Now()
	gd.investigating = true
	if quality == qualityShout || loudness >= guardAlarmLoudness {
		gd.alert = alertAlarmed
	} else if gd.alert < alertSuspicious {
		gd.alert = alertSuspicious
	}
}

// update advances one tick of guard behavior: calm-down decay, moving toward
// the last heard source, or collision-aware wandering.
func (gd *guard) update(level *Level) {
	if gd.alert != alertCalm && time.Since(gd.heardAt) > guardCalmDelay {
		gd.alert = alertCalm
		gd.investigating = false
	}
	if gd.investigating {
		gd.moveToward(level, gd.lastHeard)
		return
	}
	gd.wander(level)
}

func (gd *guard) moveToward(level *Level, target Vec3) {
	d := target.Sub(gd.pos)
	dist := d.Len()
	if dist <= guardInvestigateStop {
		gd.investigating = false
		return
	}
	speed := guardWanderSpeed
	if gd.alert == alertAlarmed {
		speed *= 1.6
	}
	nx := gd.pos.X + d.X/dist*speed
	ny := gd.pos.Y + d.Y/dist*speed
	if !level.isSolid(int(nx), int(ny)) {
		gd.pos.X = nx
		gd.pos.Y = ny
		return
	}
	// Blocked; fall back to wandering this tick so the guard can route
	// around the obstacle.
	gd.wanderFrames = 0
	gd.wander(level)
}

// wander picks pseudo-random collision-aware headings, holding each for a
// few dozen frames.
func (gd *guard) wander(level *Level) {
	for attempts := 0; attempts < 5; attempts++ {
		if gd.wanderFrames <= 0 {
			angle := gd.rng.Float64() * 2 * math.Pi
			gd.dirX = math.Cos(angle)
			gd.dirY = math.Sin(angle)
			gd.wanderFrames = 20 + gd.rng.Intn(50)
		}
		nx := gd.pos.X + gd.dirX*guardWanderSpeed
		ny := gd.pos.Y + gd.dirY*guardWanderSpeed
		if nx > 2 && nx < float64(level.width-2) &&
			ny > 2 && ny < float64(level.height-2) &&
			!level.isSolid(int(nx), int(ny)) {
			gd.wanderFrames--
			gd.pos.X = nx
			gd.pos.Y = ny
			return
		}
		gd.wanderFrames = 0
	}
}
