package main

import "sync"

// rowSpan is an inclusive column range of non-wall cells in one row.
type rowSpan struct {
	y      int
	x0, x1 int
}

// rippleWorkers runs the overlay's finite difference updates across a fixed
// pool of goroutines. Each worker owns a static set of row spans, built once
// from the level since walls never move.
type rippleWorkers struct {
	field *rippleField
	count int

	mu      sync.Mutex
	cond    *sync.Cond
	step    int
	pending int

	assignments [][]rowSpan
}

// startRippleWorkers builds span assignments from the level and launches the
// worker goroutines.
func startRippleWorkers(field *rippleField, level *Level, count int) *rippleWorkers {
	if count < 1 {
		count = 1
	}
	wk := &rippleWorkers{
		field:       field,
		count:       count,
		assignments: assignRowSpans(level, count),
	}
	wk.cond = sync.NewCond(&wk.mu)
	for i := 0; i < count; i++ {
		go wk.loop(i)
	}
	return wk
}

// assignRowSpans collects runs of non-wall cells per interior row and deals
// them round robin across workers.
func assignRowSpans(level *Level, count int) [][]rowSpan {
	assignments := make([][]rowSpan, count)
	next := 0
	for y := 1; y < level.height-1; y++ {
		in := false
		start := 0
		for x := 1; x < level.width-1; x++ {
			blocked := level.kindAt(x, y) == CellWall
			if !blocked && !in {
				in = true
				start = x
			}
			if (blocked || x == level.width-2) && in {
				end := x - 1
				if x == level.width-2 && !blocked {
					end = x
				}
				if end >= start {
					assignments[next%count] = append(assignments[next%count], rowSpan{y: y, x0: start, x1: end})
					next++
				}
				in = false
			}
		}
	}
	return assignments
}

// loop waits for a step signal, processes the worker's spans, and reports
// back through the shared barrier.
func (wk *rippleWorkers) loop(index int) {
	lastStep := 0
	wk.mu.Lock()
	for {
		for wk.step == lastStep {
			wk.cond.Wait()
		}
		lastStep = wk.step
		spans := wk.assignments[index]
		wk.mu.Unlock()

		processSpans(wk.field, spans)

		wk.mu.Lock()
		wk.pending--
		if wk.pending == 0 {
			wk.cond.Broadcast()
		}
	}
}

// processSpans steps the finite difference solver over the given spans.
func processSpans(field *rippleField, spans []rowSpan) {
	width := field.width
	const damp = float32(rippleDamp)
	const speed = float32(rippleSpeed)
	for _, sp := range spans {
		rowBase := sp.y * width
		center := field.curr[rowBase : rowBase+width]
		prev := field.prev[rowBase : rowBase+width]
		top := field.curr[rowBase-width : rowBase]
		bottom := field.curr[rowBase+width : rowBase+2*width]
		nextRow := field.next[rowBase : rowBase+width]
		for x := sp.x0; x <= sp.x1; x++ {
			c := center[x]
			lap := center[x-1] + center[x+1] + top[x] + bottom[x] - 4*c
			nextRow[x] = ((2*c - prev[x]) + speed*lap) * damp
		}
	}
}

// stepOnce synchronizes one full solver tick across all workers.
func (wk *rippleWorkers) stepOnce() {
	wk.mu.Lock()
	wk.pending = wk.count
	wk.step++
	wk.cond.Broadcast()
	for wk.pending > 0 {
		wk.cond.Wait()
	}
	wk.mu.Unlock()
	wk.field.zeroBoundaries()
	wk.field.swap()
}
