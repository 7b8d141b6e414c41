package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the level, the optional wavefront overlay, emission rings,
// entities, and the debug readout.
func (g *Game) Draw(screen *ebiten.Image) {
	if len(g.pix) != levelW*levelH*4 {
		g.pix = make([]byte, levelW*levelH*4)
	}
	pix := g.pix
	for i := 0; i < levelW*levelH; i++ {
		var intensity byte
		if g.field != nil {
			v := g.field.curr[i]
			if v < 0 {
				v = -v
			}
			if v > 1 {
				v = 1
			}
			intensity = byte(v * 255)
		}
		base := i * 4
		pix[base] = intensity
		pix[base+1] = intensity
		pix[base+2] = intensity
		pix[base+3] = 255
	}
	if *showWallsFlag {
		for i, kind := range g.level.cells {
			var c color.RGBA
			switch kind {
			case CellWall:
				c = color.RGBA{30, 40, 80, 255}
			case CellGlass:
				c = color.RGBA{70, 100, 150, 255}
			case CellDecor:
				c = color.RGBA{40, 70, 40, 255}
			default:
				continue
			}
			base := i * 4
			pix[base] = c.R
			pix[base+1] = c.G
			pix[base+2] = c.B
			pix[base+3] = 255
		}
	}
	screen.WritePixels(pix)

	for _, m := range g.ripples {
		t := float64(m.age) / float64(rippleMarkerLife)
		radius := m.maxRadius * t
		alpha := uint8(200 * (1 - t))
		drawCircle(screen, int(m.origin.X), int(m.origin.Y), int(radius), color.RGBA{120, 180, 255, alpha})
	}

	if *showHeardLinesFlag {
		for _, gd := range g.guards {
			if !gd.investigating {
				continue
			}
			drawLine(screen, int(gd.pos.X), int(gd.pos.Y),
				int(gd.lastHeard.X), int(gd.lastHeard.Y), color.RGBA{230, 220, 60, 120})
		}
	}

	for _, gd := range g.guards {
		var c color.RGBA
		switch gd.alert {
		case alertAlarmed:
			c = color.RGBA{255, 60, 40, 255}
		case alertSuspicious:
			c = color.RGBA{230, 200, 40, 255}
		default:
			c = color.RGBA{60, 200, 80, 255}
		}
		drawSquare(screen, int(gd.pos.X), int(gd.pos.Y), 1, c)
	}
	drawSquare(screen, int(g.player.pos.X), int(g.player.pos.Y), 1, color.RGBA{255, 0, 0, 255})

	if *debugFlag {
		snap := g.counters.Snapshot()
		last := g.player.emitter.LastEmission()
		simMS := g.lastSimDuration.Seconds() * 1000
		debugMsg := fmt.Sprintf(
			"FPS: %.1f TPS: %.1f\nEmissions: %d Candidates: %d\nDeliveries: %d Reactions: %d\nLast radius: %.1f\nLast emit: loudness %.2f quality %.0f\nSim: %.2f ms",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			snap.Emissions, snap.Candidates,
			snap.Deliveries, snap.Reactions,
			snap.LastRadius,
			last.Loudness, last.Quality,
			simMS)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return levelW, levelH }

// drawSquare fills a (2r+1)-sided square centered on the given pixel.
func drawSquare(screen *ebiten.Image, cx, cy, r int, clr color.Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			px := cx + x
			py := cy + y
			if px >= 0 && px < levelW && py >= 0 && py < levelH {
				screen.Set(px, py, clr)
			}
		}
	}
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < levelW && y0 >= 0 && y0 < levelH {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircle plots a circle outline using the midpoint algorithm.
func drawCircle(screen *ebiten.Image, cx, cy, r int, clr color.Color) {
	if r <= 0 {
		return
	}
	setOctants := func(x, y int) {
		points := [8][2]int{
			{cx + x, cy + y}, {cx - x, cy + y}, {cx + x, cy - y}, {cx - x, cy - y},
			{cx + y, cy + x}, {cx - y, cy + x}, {cx + y, cy - x}, {cx - y, cy - x},
		}
		for _, pt := range points {
			if pt[0] >= 0 && pt[0] < levelW && pt[1] >= 0 && pt[1] < levelH {
				screen.Set(pt[0], pt[1], clr)
			}
		}
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		setOctants(x, y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}
