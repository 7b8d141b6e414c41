package main

import "flag"

// Command-line flags that control optional rendering, simulation, and runtime
// behavior.
var (
	// showWallsFlag toggles rendering of wall geometry overlays.
	showWallsFlag = flag.Bool("show-walls", true, "render wall geometry overlays")

	// debugFlag enables the FPS and propagation counters overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and propagation counters overlay")

	// showWavefieldFlag enables the cosmetic wavefront overlay that renders
	// each emission as a physical ripple under the scene.
	showWavefieldFlag = flag.Bool("show-wavefield", false, "render emissions as a CPU wavefront overlay")

	// showHeardLinesFlag draws a line from each guard to the last sound
	// source it reacted to.
	showHeardLinesFlag = flag.Bool("show-heard-lines", true, "draw lines from guards to their last heard source")

	// autoWalkFlag makes the player walk randomly instead of reading input.
	autoWalkFlag = flag.Bool("auto-walk", false, "walk the player randomly for soak testing")

	// guardCountFlag sets how many listening guards patrol the level.
	guardCountFlag = flag.Int("guards", defaultGuardCount, "number of listening guards in the level")

	// seedFlag fixes the level and guard RNG for reproducible runs. Zero
	// seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "level generation seed (0 = time-based)")

	// telemetryAddrFlag enables the diagnostics HTTP/websocket server.
	telemetryAddrFlag = flag.String("telemetry-addr", "", "listen address for the diagnostics server (empty = disabled)")

	// enableAudioFlag toggles procedural footstep audio output.
	enableAudioFlag = flag.Bool("enable-audio", false, "enable procedural footstep audio")

	// cpuProfileFlag writes a CPU profile to the given path for the
	// lifetime of the run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
