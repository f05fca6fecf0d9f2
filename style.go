package textgui

import "strings"

// Style defines the visual appearance of text fields.
type Style struct {
	// Text
	TextColor        uint32
	PlaceholderColor uint32
	SelectedBgColor  uint32
	CursorColor      uint32

	// Field chrome
	FieldBgColor        uint32
	FieldFocusedBgColor uint32
	FieldBorderColor    uint32
	FocusColor          uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Sizing
	Padding       float32 // Inset between the field border and its text
	BorderSize    float32
	CursorWidth   float32
	ScrollbarSize float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:        ColorWhite,
		PlaceholderColor: ColorGray,
		SelectedBgColor:  RGBA(50, 100, 150, 255),
		CursorColor:      ColorWhite,

		FieldBgColor:        RGBA(30, 30, 30, 255),
		FieldFocusedBgColor: RGBA(40, 40, 50, 255),
		FieldBorderColor:    RGBA(100, 100, 100, 255),
		FocusColor:          ColorCyan,

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		Padding:       4,
		BorderSize:    1,
		CursorWidth:   1,
		ScrollbarSize: 12,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	s := DefaultStyle()
	s.TextColor = ColorWhite
	s.PlaceholderColor = RGBA(128, 128, 128, 255)
	s.SelectedBgColor = RGBA(0, 120, 180, 255)
	s.CursorColor = RGBA(255, 200, 0, 255) // GTA yellow
	s.FieldBgColor = RGBA(20, 20, 20, 255)
	s.FieldFocusedBgColor = RGBA(30, 40, 50, 255)
	s.FieldBorderColor = RGBA(0, 150, 200, 255)
	s.FocusColor = RGBA(0, 200, 255, 255)
	s.ScrollbarBgColor = RGBA(20, 20, 20, 255)
	s.ScrollbarGrabColor = RGBA(0, 100, 150, 255)
	s.ScrollbarGrabHovered = RGBA(0, 150, 200, 255)
	s.Padding = 6
	s.ScrollbarSize = 14
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		TextColor:        RGBA(20, 20, 20, 255),
		PlaceholderColor: RGBA(150, 150, 150, 255),
		SelectedBgColor:  RGBA(0, 120, 215, 255),
		CursorColor:      RGBA(20, 20, 20, 255),

		FieldBgColor:        ColorWhite,
		FieldFocusedBgColor: ColorWhite,
		FieldBorderColor:    RGBA(150, 150, 150, 255),
		FocusColor:          RGBA(0, 100, 200, 255),

		ScrollbarBgColor:     RGBA(240, 240, 240, 255),
		ScrollbarGrabColor:   RGBA(180, 180, 180, 255),
		ScrollbarGrabHovered: RGBA(160, 160, 160, 255),

		Padding:       4,
		BorderSize:    1,
		CursorWidth:   1,
		ScrollbarSize: 12,
	}
}

// StyleByName returns a built-in style by configuration name ("default",
// "gta", "light"). Unknown names return DefaultStyle.
func StyleByName(name string) Style {
	switch strings.ToLower(name) {
	case "gta":
		return GTAStyle()
	case "light":
		return LightStyle()
	default:
		return DefaultStyle()
	}
}
