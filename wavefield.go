package main

// The wavefront overlay is purely cosmetic: it renders emissions as physical
// ripples under the scene. Gameplay perception always uses the analytic
// model in sound.go.

type gridOffset struct {
	dx int
	dy int
}

// rippleFootprint is the circular stamp applied per queued impulse.
var rippleFootprint = precomputeFootprint(rippleRad)

func precomputeFootprint(radius int) []gridOffset {
	footprint := make([]gridOffset, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= r2 {
				footprint = append(footprint, gridOffset{dx: x, dy: y})
			}
		}
	}
	return footprint
}

type rippleImpulse struct {
	x, y     int
	strength float32
}

// rippleField stores the three buffers of the finite difference solver plus
// the impulses queued since the last step.
type rippleField struct {
	width, height int
	curr          []float32
	prev          []float32
	next          []float32
	pending       []rippleImpulse
}

func newRippleField(width, height int) *rippleField {
	return &rippleField{
		width:  width,
		height: height,
		curr:   make([]float32, width*height),
		prev:   make([]float32, width*height),
		next:   make([]float32, width*height),
	}
}

// queueImpulse records an excitation to be stamped before the next step.
// Called from the update goroutine only.
func (f *rippleField) queueImpulse(x, y int, strength float32) {
	f.pending = append(f.pending, rippleImpulse{x: x, y: y, strength: strength})
}

// applyImpulses stamps every queued impulse into the current buffer, skipping
// wall cells and the grid border.
func (f *rippleField) applyImpulses(level *Level) {
	for _, imp := range f.pending {
		for _, off := range rippleFootprint {
			cx := imp.x + off.dx
			cy := imp.y + off.dy
			if cx <= 0 || cx >= f.width-1 || cy <= 0 || cy >= f.height-1 {
				continue
			}
			if level.kindAt(cx, cy) == CellWall {
				continue
			}
			f.curr[cy*f.width+cx] = imp.strength
		}
	}
	f.pending = f.pending[:0]
}

// swap rotates the triple buffers so next becomes current and current becomes
// previous.
func (f *rippleField) swap() {
	f.prev, f.curr, f.next = f.curr, f.next, f.prev
}

// zeroBoundaries clears the grid edges so ripples die at the border instead
// of reflecting back into view.
func (f *rippleField) zeroBoundaries() {
	lastRow := f.height - 1
	lastCol := f.width - 1
	for x := 0; x < f.width; x++ {
		f.next[x] = 0
		f.next[lastRow*f.width+x] = 0
	}
	for y := 1; y < lastRow; y++ {
		f.next[y*f.width] = 0
		f.next[y*f.width+lastCol] = 0
	}
}
