package textgui

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// wrapEpsilon absorbs float rounding when an offset is compared to the wrap bound.
const wrapEpsilon float32 = 1e-3

// minBreakIndex is the first character index that may become a break point.
// Characters before it always stay on the current line.
const minBreakIndex = 2

// TextLine is one visual line of a field.
type TextLine struct {
	Content string
	// Offsets holds the pixel offset before each character of Content
	// plus the full width as the last entry.
	Offsets []float32
	Width   float32
}

// NewTextLine measures content with m and returns the resulting line.
func NewTextLine(m GlyphMetrics, content string, fontSize float32) TextLine {
	offs := offsetsOf(m, content, fontSize)
	return TextLine{
		Content: content,
		Offsets: offs,
		Width:   offs[len(offs)-1],
	}
}

// Len returns the number of characters on the line.
func (l TextLine) Len() int {
	if len(l.Offsets) == 0 {
		return 0
	}
	return len(l.Offsets) - 1
}

// FlowedText is the result of wrapping a string into width-bounded lines.
type FlowedText struct {
	Lines  []TextLine
	Source string // unwrapped input
	Length int    // character count of Source
}

// LineCount returns the number of wrapped lines.
func (f FlowedText) LineCount() int {
	return len(f.Lines)
}

// Text joins the wrapped lines with '\n'. Spaces consumed at wrap points are
// not restored, so this only matches Source when nothing was wrapped.
func (f FlowedText) Text() string {
	parts := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		parts[i] = l.Content
	}
	return strings.Join(parts, "\n")
}

// MaxLineWidth returns the width of the widest line.
func (f FlowedText) MaxLineWidth() float32 {
	var w float32
	for _, l := range f.Lines {
		w = maxf(w, l.Width)
	}
	return w
}

// Wrap splits text into lines no wider than maxWidth-reserved.
//
// Explicit '\n' characters always start a new line. A line that overflows is
// cut after the last space before the overflowing character (the space is
// dropped) or, when the line has no usable space, right before that
// character. Empty text produces no lines at all.
//
// Wrap is deterministic: the same arguments always produce the same lines.
func Wrap(m GlyphMetrics, text string, maxWidth, fontSize, reserved float32) FlowedText {
	ft := FlowedText{Source: text, Length: runeCount(text)}
	if text == "" {
		return ft
	}

	bound := maxWidth - reserved
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	// The remainder of every cut is inserted right after its head and
	// scanned on the next iteration, so one long line can be cut many times.
	for i := 0; i < len(lines); i++ {
		head, rest, cut := breakLine(m, lines[i], bound, fontSize)
		if !cut {
			continue
		}
		lines[i] = head
		if rest != "" {
			lines = slices.Insert(lines, i+1, rest)
		}
	}

	ft.Lines = make([]TextLine, len(lines))
	for i, content := range lines {
		ft.Lines[i] = NewTextLine(m, content, fontSize)
	}

	logger().Debug("wrapped text",
		"chars", ft.Length,
		"lines", len(ft.Lines),
		"bound", bound)
	return ft
}

// breakLine finds the cut point of a single line. cut is false when the line
// fits the bound or cannot be split further.
func breakLine(m GlyphMetrics, line string, bound, fontSize float32) (head, rest string, cut bool) {
	runes := []rune(line)
	n := len(runes)
	if n < 2 {
		return "", "", false
	}

	offs := offsetsOf(m, line, fontSize)
	if offs[n] <= bound+wrapEpsilon {
		return "", "", false
	}

	// j is the first character that ends past the bound.
	j := 0
	for j < n && offs[j+1] <= bound+wrapEpsilon {
		j++
	}

	if j < minBreakIndex {
		// Bound narrower than the protected head: emit one character per
		// pass so the line always shrinks.
		if runes[1] == ' ' {
			return string(runes[:1]), string(runes[2:]), true
		}
		return string(runes[:1]), string(runes[1:]), true
	}

	for k := j; k >= minBreakIndex; k-- {
		if runes[k] == ' ' {
			return string(runes[:k]), string(runes[k+1:]), true
		}
	}
	return string(runes[:j]), string(runes[j:]), true
}

// TruncateText shortens text to fit within maxWidth, ending it with "..".
// Very narrow widths fall back to a single "." and finally to "".
func TruncateText(m GlyphMetrics, text string, maxWidth, fontSize float32) string {
	if maxWidth <= 0 {
		return ""
	}
	if m.MeasureWidth(text, fontSize) <= maxWidth {
		return text
	}
	for _, suffix := range []string{"..", "."} {
		if s, ok := truncateWithSuffix(m, text, maxWidth, fontSize, suffix); ok {
			return s
		}
	}
	return ""
}

// truncateWithSuffix keeps the longest prefix of text that fits together with suffix.
func truncateWithSuffix(m GlyphMetrics, text string, maxWidth, fontSize float32, suffix string) (string, bool) {
	target := maxWidth - m.MeasureWidth(suffix, fontSize)
	if target < 0 {
		return "", false
	}

	runes := []rune(text)
	offs := offsetsOf(m, text, fontSize)
	keep := 0
	for i := len(runes); i >= 0; i-- {
		if offs[i] <= target+wrapEpsilon {
			keep = i
			break
		}
	}
	return string(runes[:keep]) + suffix, true
}

// runeCount returns the number of characters in s.
func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
