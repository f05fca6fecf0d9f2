package textgui

import "errors"

var (
	// ErrNoRenderer is returned by New when no renderer is given.
	ErrNoRenderer = errors.New("textgui: renderer is required")

	// ErrNoFonts is returned by New when no font is registered.
	ErrNoFonts = errors.New("textgui: at least one font is required")

	// ErrNoMetrics is returned when a font or editor is created without a metrics provider.
	ErrNoMetrics = errors.New("textgui: no glyph metrics")

	// ErrUnknownFont is returned when a field names a font that was never registered.
	ErrUnknownFont = errors.New("textgui: unknown font")

	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("textgui: duplicate field name")
)
