package main

import "time"

// Simulation and demo configuration constants. These values define the grid
// size, sound propagation tuning, movement timing, and audio behavior.
const (
	levelW, levelH = 256, 256
	windowScale    = 3
	cellSize       = 1.0 // world units per grid cell

	// Hearing radius bounds. A sound at full loudness reaches
	// maxHearingRadius world units; the quietest audible sound still
	// covers minHearingRadius. Reach scales with loudness squared so
	// quiet sounds stay disproportionately short-ranged.
	minHearingRadius = 0.5
	maxHearingRadius = 50.0

	defaultHearingThreshold = 0.2
	defaultWallPenalty      = 0.6

	// Footstep cadence and loudness tiers for the player.
	stepDelay        = 60 / 4
	moveSpeed        = 0.9
	sneakMultiplier  = 0.5
	sprintMultiplier = 1.8
	sneakLoudness    = 0.15
	walkLoudness     = 0.4
	sprintLoudness   = 0.75
	shoutLoudness    = 1.0

	// Quality tags carried with emissions. Opaque to propagation;
	// listeners use them to pick a response.
	qualityFootstep = 1.0
	qualityShout    = 2.0

	// Guard behavior tuning.
	defaultGuardCount    = 8
	guardWanderSpeed     = 0.45
	guardAlarmLoudness   = 0.55
	guardCalmDelay       = 6 * time.Second
	guardInvestigateStop = 1.5

	// Procedural wall generation.
	wallSegments          = 25
	wallMinLen            = 12
	wallMaxLen            = 56
	wallExclusionRadius   = 10
	wallThicknessVariance = 1
	glassChance           = 0.15
	decorCount            = 40

	// Spatial hash sizing for the listener registry.
	listenerCellSize = 16.0

	// Cosmetic wavefront overlay.
	rippleDamp         = 0.994
	rippleSpeed        = 0.5
	rippleImpulseMax   = 0.9
	rippleStepsPerTick = 3
	rippleRad          = 2

	defaultTPS = 60.0

	// Footstep audio synthesis.
	audioSampleRate = 48000
	stepBurstDecay  = 0.9992
	stepBurstFloor  = 0.002
	pcm16MaxValue   = 32767

	// Telemetry websocket server.
	telemetryWriteWait = 5 * time.Second
)
