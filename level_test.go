package main

import "testing"

func TestLevelGenerateKeepsSpawnClear(t *testing.T) {
	l := newLevel(levelW, levelH, 42)
	spawnX, spawnY := float64(levelW)/2, float64(levelH)/2
	l.generate(spawnX, spawnY)

	r := wallExclusionRadius
	cx, cy := int(spawnX), int(spawnY)
	for y := -r + 1; y < r; y++ {
		for x := -r + 1; x < r; x++ {
			if x*x+y*y >= r*r {
				continue
			}
			if l.kindAt(cx+x, cy+y) != CellEmpty {
				t.Fatalf("cell (%d,%d) inside the spawn exclusion radius is %v", cx+x, cy+y, l.kindAt(cx+x, cy+y))
			}
		}
	}
}

func TestLevelGenerateIsDeterministic(t *testing.T) {
	a := newLevel(levelW, levelH, 99)
	b := newLevel(levelW, levelH, 99)
	a.generate(128, 128)
	b.generate(128, 128)
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			t.Fatalf("same seed produced different levels at index %d", i)
		}
	}
}

func TestLevelOutOfBoundsIsSolid(t *testing.T) {
	l := newLevel(16, 16, 1)
	if !l.isSolid(-1, 5) || !l.isSolid(5, -1) || !l.isSolid(16, 5) || !l.isSolid(5, 16) {
		t.Fatalf("out-of-bounds cells must read as solid")
	}
	if l.isSolid(5, 5) {
		t.Fatalf("interior empty cell reads as solid")
	}
}

func TestLevelGlassBlocksMovementNotSound(t *testing.T) {
	l := newLevel(16, 16, 1)
	l.setCell(5, 5, CellGlass)
	if !l.isSolid(5, 5) {
		t.Fatalf("glass must block movement")
	}
	if CellGlass.blocks(BlockWall) {
		t.Fatalf("glass must not match a wall-only obstruction filter")
	}
	if !CellGlass.blocks(BlockGlass) {
		t.Fatalf("glass must match a filter that includes it")
	}
	if CellEmpty.blocks(BlockWall | BlockGlass | BlockDecor) {
		t.Fatalf("empty cells never obstruct")
	}
}

func TestLevelRandomOpenCell(t *testing.T) {
	l := newLevel(levelW, levelH, 7)
	l.generate(128, 128)
	for i := 0; i < 20; i++ {
		x, y := l.randomOpenCell(128, 128, 30)
		if l.isSolid(x, y) {
			t.Fatalf("randomOpenCell returned solid cell (%d,%d)", x, y)
		}
		dx, dy := float64(x)-128, float64(y)-128
		if dx*dx+dy*dy < 30*30 {
			t.Fatalf("randomOpenCell returned (%d,%d) inside the keep-out distance", x, y)
		}
	}
}
