package main

import (
	"math"
	"math/rand"
)

// CellKind classifies one grid cell of the level.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellGlass
	CellDecor
)

// ObstructionMask selects which cell kinds count as sound-blocking geometry.
// A listener's own body and anything outside the mask never obstruct a sound.
type ObstructionMask uint8

const (
	BlockWall  ObstructionMask = 1 << CellWall
	BlockGlass ObstructionMask = 1 << CellGlass
	BlockDecor ObstructionMask = 1 << CellDecor
)

// blocks reports whether this cell kind is selected by the mask.
func (k CellKind) blocks(filter ObstructionMask) bool {
	if k == CellEmpty {
		return false
	}
	return ObstructionMask(1)<<k&filter != 0
}

// Level is the demo world: a uniform grid of cells. Walls stop both movement
// and sound, glass stops movement but lets sound through, decor stops neither.
type Level struct {
	width, height int
	cells         []CellKind
	rng           *rand.Rand
}

func newLevel(width, height int, seed int64) *Level {
	return &Level{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// kindAt returns the cell kind at grid coordinates. Out-of-bounds cells read
// as walls so nothing escapes the level.
func (l *Level) kindAt(x, y int) CellKind {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return CellWall
	}
	return l.cells[y*l.width+x]
}

// isSolid reports whether movement is blocked at the given cell.
func (l *Level) isSolid(x, y int) bool {
	k := l.kindAt(x, y)
	return k == CellWall || k == CellGlass
}

// cellAtWorld maps a world position to grid coordinates.
func (l *Level) cellAtWorld(p Vec3) (int, int) {
	return int(math.Floor(p.X / cellSize)), int(math.Floor(p.Y / cellSize))
}

// generate procedurally places wall and glass segments plus scattered decor,
// keeping an exclusion radius clear around the spawn point.
func (l *Level) generate(spawnX, spawnY float64) {
	for i := range l.cells {
		l.cells[i] = CellEmpty
	}
	for s := 0; s < wallSegments; s++ {
		lengthRange := wallMaxLen - wallMinLen + 1
		if lengthRange <= 0 {
			lengthRange = 1
		}
		length := wallMinLen + l.rng.Intn(lengthRange)
		thickness := 1
		if wallThicknessVariance > 0 {
			thickness += l.rng.Intn(wallThicknessVariance + 1)
		}
		kind := CellWall
		if l.rng.Float64() < glassChance {
			kind = CellGlass
		}
		horizontal := l.rng.Intn(2) == 0
		x := l.rng.Intn(l.width-4) + 2
		y := l.rng.Intn(l.height-4) + 2
		dx, dy := 0, 1
		if horizontal {
			dx, dy = 1, 0
		}
		perpX, perpY := dy, dx
		cx, cy := x, y
		for i := 0; i < length; i++ {
			if cx <= 1 || cx >= l.width-1 || cy <= 1 || cy >= l.height-1 {
				break
			}
			for t := -thickness; t <= thickness; t++ {
				l.trySetCell(cx+perpX*t, cy+perpY*t, kind, spawnX, spawnY)
			}
			cx += dx
			cy += dy
		}
	}
	for d := 0; d < decorCount; d++ {
		x := l.rng.Intn(l.width-4) + 2
		y := l.rng.Intn(l.height-4) + 2
		if l.kindAt(x, y) == CellEmpty {
			l.trySetCell(x, y, CellDecor, spawnX, spawnY)
		}
	}
}

// trySetCell marks a cell while enforcing spacing from the spawn point.
func (l *Level) trySetCell(x, y int, kind CellKind, spawnX, spawnY float64) {
	if x <= 1 || x >= l.width-1 || y <= 1 || y >= l.height-1 {
		return
	}
	dx := float64(x) - spawnX
	dy := float64(y) - spawnY
	if dx*dx+dy*dy < float64(wallExclusionRadius*wallExclusionRadius) {
		return
	}
	l.cells[y*l.width+x] = kind
}

// randomOpenCell picks a walkable cell at least minDist world units from the
// given point.
func (l *Level) randomOpenCell(fromX, fromY, minDist float64) (int, int) {
	for attempts := 0; attempts < 1000; attempts++ {
		x := l.rng.Intn(l.width-4) + 2
		y := l.rng.Intn(l.height-4) + 2
		if l.isSolid(x, y) {
			continue
		}
		dx := float64(x) - fromX
		dy := float64(y) - fromY
		if dx*dx+dy*dy < minDist*minDist {
			continue
		}
		return x, y
	}
	return l.width / 2, l.height / 2
}
