package textgui

import "github.com/chewxy/math32"

const (
	// ScrollFactor is the number of line heights one wheel notch scrolls.
	ScrollFactor float32 = 1.5

	// scrollTailPad keeps a sliver of space below the last line when
	// scrolled to the end.
	scrollTailPad float32 = 0.05

	// minThumbFraction keeps the scrollbar thumb grabbable for long content.
	minThumbFraction float32 = 0.05
)

// ScrollModel tracks the vertical scroll position of a multi-line field.
// Offset is always kept within [0, MaxOffset]; every change to the line
// count, line height or viewport recomputes MaxOffset and re-clamps.
type ScrollModel struct {
	offset         float32
	maxOffset      float32
	viewportHeight float32
	lineHeight     float32
	spacing        float32 // line pitch relative to lineHeight
	lineCount      int
}

// NewScrollModel creates a scroll model for lines of the given nominal
// height and spacing factor inside a viewport.
func NewScrollModel(lineHeight, spacing, viewportHeight float32) *ScrollModel {
	if spacing <= 0 {
		spacing = DefaultLineSpacing
	}
	s := &ScrollModel{
		lineHeight:     maxf(0, lineHeight),
		spacing:        spacing,
		viewportHeight: maxf(0, viewportHeight),
	}
	s.recompute()
	return s
}

// Offset returns the current scroll offset in pixels.
func (s *ScrollModel) Offset() float32 { return s.offset }

// MaxOffset returns the largest valid offset.
func (s *ScrollModel) MaxOffset() float32 { return s.maxOffset }

// ViewportHeight returns the visible height.
func (s *ScrollModel) ViewportHeight() float32 { return s.viewportHeight }

// LineHeight returns the nominal line height.
func (s *ScrollModel) LineHeight() float32 { return s.lineHeight }

// LineCount returns the number of lines the model was last given.
func (s *ScrollModel) LineCount() int { return s.lineCount }

// Pitch returns the vertical distance between consecutive line tops.
func (s *ScrollModel) Pitch() float32 {
	return s.lineHeight * s.spacing
}

// ContentHeight returns the height of all lines laid out at Pitch.
func (s *ScrollModel) ContentHeight() float32 {
	return float32(s.lineCount) * s.Pitch()
}

// SetLineCount updates the number of lines.
func (s *ScrollModel) SetLineCount(n int) {
	s.lineCount = max(0, n)
	s.recompute()
}

// SetLineHeight updates the nominal line height and spacing factor.
func (s *ScrollModel) SetLineHeight(lineHeight, spacing float32) {
	s.lineHeight = maxf(0, lineHeight)
	if spacing > 0 {
		s.spacing = spacing
	}
	s.recompute()
}

// SetViewport updates the visible height.
func (s *ScrollModel) SetViewport(height float32) {
	s.viewportHeight = maxf(0, height)
	s.recompute()
}

// recompute derives MaxOffset from the content and clamps Offset into range.
func (s *ScrollModel) recompute() {
	s.maxOffset = maxf(0, s.ContentHeight()-s.viewportHeight+s.lineHeight*scrollTailPad)
	s.offset = clampf(s.offset, 0, s.maxOffset)
}

// SetOffset moves to v, clamped to [0, MaxOffset].
func (s *ScrollModel) SetOffset(v float32) {
	if math32.IsNaN(v) {
		return
	}
	s.offset = clampf(v, 0, s.maxOffset)
}

// Scroll applies a wheel delta. Positive deltas (wheel up) move towards the
// top, matching GLFW's wheel sign.
func (s *ScrollModel) Scroll(delta float32) {
	s.SetOffset(s.offset - delta*s.lineHeight*ScrollFactor)
}

// ScrollTo maps a scrollbar fraction in [0,1] onto [0, MaxOffset].
func (s *ScrollModel) ScrollTo(fraction float32) {
	if math32.IsNaN(fraction) {
		return
	}
	s.SetOffset(clampf(fraction, 0, 1) * s.maxOffset)
}

// ScrollToEnd moves to MaxOffset.
func (s *ScrollModel) ScrollToEnd() {
	s.offset = s.maxOffset
}

// AtEnd reports whether the view is scrolled to the bottom.
func (s *ScrollModel) AtEnd() bool {
	return s.offset >= s.maxOffset
}

// Fraction returns the scroll position as a fraction of MaxOffset.
func (s *ScrollModel) Fraction() float32 {
	if s.maxOffset <= 0 {
		return 0
	}
	return s.offset / s.maxOffset
}

// VisibleRange returns the half-open range of lines to render. One extra line
// is included on each side so partially scrolled lines don't pop in.
func (s *ScrollModel) VisibleRange() (start, end int) {
	pitch := s.Pitch()
	if pitch <= 0 {
		return 0, s.lineCount
	}
	start = int(math32.Floor(s.offset/pitch)) - 1
	end = int(math32.Ceil((s.offset+s.viewportHeight)/pitch)) + 1
	start = min(max(start, 0), s.lineCount)
	end = min(max(end, 0), s.lineCount)
	return start, end
}

// Overflows reports whether the content is taller than the viewport.
func (s *ScrollModel) Overflows() bool {
	return s.maxOffset > 0
}

// Scrollbar returns the thumb position and size as fractions of the track
// length. pos+size never exceeds 1.
func (s *ScrollModel) Scrollbar() (pos, size float32) {
	content := s.ContentHeight()
	if content <= s.viewportHeight || content <= 0 {
		return 0, 1
	}
	size = clampf(s.viewportHeight/content, minThumbFraction, 1)
	return s.Fraction() * (1 - size), size
}

// ThumbToFraction converts a thumb top position (a fraction of the track)
// back into a scroll fraction. It is the inverse of Scrollbar.
func (s *ScrollModel) ThumbToFraction(thumbPos float32) float32 {
	_, size := s.Scrollbar()
	if size >= 1 {
		return 0
	}
	return clampf(thumbPos/(1-size), 0, 1)
}
