package textgui

import "github.com/chewxy/math32"

// CursorBlinkPeriod is how long the cursor stays in each blink phase, in seconds.
const CursorBlinkPeriod float32 = 0.5

// Blink drives cursor visibility from accumulated frame time.
// The zero value is a visible cursor at the start of its phase.
type Blink struct {
	elapsed float32
	hidden  bool
}

// Advance adds dt seconds. Each full period toggles visibility; the
// remainder carries over so uneven frame times don't drift the phase.
func (b *Blink) Advance(dt float32) {
	if dt <= 0 || math32.IsNaN(dt) || math32.IsInf(dt, 0) {
		return
	}
	b.elapsed += dt
	if b.elapsed < CursorBlinkPeriod {
		return
	}
	periods := math32.Floor(b.elapsed / CursorBlinkPeriod)
	if math32.Mod(periods, 2) == 1 {
		b.hidden = !b.hidden
	}
	b.elapsed = math32.Mod(b.elapsed, CursorBlinkPeriod)
}

// Reset restarts the phase with the cursor shown.
func (b *Blink) Reset() {
	b.elapsed = 0
	b.hidden = false
}

// Visible reports whether the cursor should be drawn.
func (b *Blink) Visible() bool {
	return !b.hidden
}

// Elapsed returns the time spent in the current phase.
func (b *Blink) Elapsed() float32 {
	return b.elapsed
}
