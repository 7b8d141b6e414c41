package main

// OcclusionCount walks the grid between two world points and counts distinct
// runs of cells selected by filter. A wall two cells thick reads as a single
// obstruction; two separated walls read as two. Degenerate segments (both
// points in one cell) count zero.
func (l *Level) OcclusionCount(from, to Vec3, filter ObstructionMask) int {
	x0, y0 := l.cellAtWorld(from)
	x1, y1 := l.cellAtWorld(to)
	if x0 == x1 && y0 == y1 {
		return 0
	}

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	count := 0
	inRun := false
	for {
		if l.kindAt(x0, y0).blocks(filter) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
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
	return count
}
