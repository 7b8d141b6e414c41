package main

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// player is the controllable sound source. Movement cadence drives footstep
// emissions; sneak and sprint modifiers trade speed against loudness.
type player struct {
	pos Vec3
	vel Vec3 // world units per second, carried into emissions

	stepTimer int
	emitter   *Emitter

	autoWalk       bool
	rng            *rand.Rand
	autoDirX       float64
	autoDirY       float64
	autoFrameCount int
}

// SoundPosition implements SoundSource.
func (p *player) SoundPosition() Vec3 { return p.pos }

// SoundVelocity implements SoundSource.
func (p *player) SoundVelocity() Vec3 { return p.vel }

// movementVector returns this tick's displacement and the footstep loudness
// tier the movement mode produces.
func (p *player) movementVector(level *Level) (float64, float64, float64) {
	if p.autoWalk {
		dx, dy := p.autoWalkVector(level)
		return dx, dy, walkLoudness
	}
	return p.manualMovementVector()
}

// manualMovementVector reads WASD plus sneak/sprint modifiers.
func (p *player) manualMovementVector() (float64, float64, float64) {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += moveSpeed
	}
	if dx != 0 && dy != 0 {
		dx *= 0.7071
		dy *= 0.7071
	}
	loudness := walkLoudness
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight):
		dx *= sprintMultiplier
		dy *= sprintMultiplier
		loudness = sprintLoudness
	case ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight):
		dx *= sneakMultiplier
		dy *= sneakMultiplier
		loudness = sneakLoudness
	}
	return dx, dy, loudness
}

// autoWalkVector returns a pseudo-random, collision-aware movement vector for
// soak testing.
func (p *player) autoWalkVector(level *Level) (float64, float64) {
	for attempts := 0; attempts < 5; attempts++ {
		if p.autoFrameCount <= 0 {
			p.randomizeAutoWalkDirection()
		}
		nextX := p.pos.X + p.autoDirX*moveSpeed
		nextY := p.pos.Y + p.autoDirY*moveSpeed
		if nextX > 2 && nextX < float64(level.width-2) &&
			nextY > 2 && nextY < float64(level.height-2) &&
			!level.isSolid(int(nextX), int(nextY)) {
			p.autoFrameCount--
			return p.autoDirX * moveSpeed, p.autoDirY * moveSpeed
		}
		p.autoFrameCount = 0
	}
	return 0, 0
}

// randomizeAutoWalkDirection chooses a new heading for automatic walking.
func (p *player) randomizeAutoWalkDirection() {
	angle := p.rng.Float64() * 2 * math.Pi
	p.autoDirX = math.Cos(angle)
	p.autoDirY = math.Sin(angle)
	p.autoFrameCount = 20 + p.rng.Intn(50)
}
