/*
Package textgui provides the text flow and editing engine of a GL GUI
toolkit, and the retained text fields built on it.

# Overview

Every text field shares one engine, parameterized by a GlyphMetrics
provider (how wide a string is at a font size) and a CharacterSet (whether
the font can draw all of Unicode or only folded ASCII). The engine has
three parts:

  - Wrap splits text into visual lines that fit a pixel bound, breaking at
    the last space before the overflow or hard-cutting words with no usable
    space. Explicit newlines always start a new line.
  - ScrollModel keeps a clamped vertical offset over a list of lines and
    derives the visible line range and the scrollbar thumb from it.
  - Editor holds the cursor and selection of a single-line field, applies
    keys and pointer gestures, and refuses insertions that would overflow
    the field's width budget.

Label, TextArea and TextInput wrap the engine into drawable fields. A
Toolkit owns a set of fields, routes InputState to them, and submits a
DrawList to a Renderer once per frame.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	vector, _ := fonts.NewGoRegular()
	ui, err := textgui.New(renderer,
	    textgui.WithStyle(textgui.GTAStyle()),
	    textgui.WithFont("vector", vector),
	    textgui.WithFont("bitmap", fonts.NewBitmap()),
	)
	if err != nil {
	    return err
	}

	cfg, _ := textgui.LoadConfig("fields.toml")
	if err := ui.Build(cfg); err != nil {
	    return err
	}
	console, _ := textgui.Find[*textgui.TextArea](ui, "console")
	console.FollowTail = true

	// Game loop
	for !window.ShouldClose() {
	    ui.Begin(input.Update(), deltaTime)
	    input.EndFrame()
	    ui.End()
	    window.SwapBuffers()
	}

# Character Sets

Fields using a vector font render text unchanged (CharsetUnicode). Fields
using the bitmap atlas fold their text first (CharsetASCII): accented
Latin letters lose their marks, common typographic characters map to an
ASCII look-alike and anything else becomes '?'. Folding never changes the
number of characters, so cursor and selection indices mean the same thing
in the true text and the displayed text.

# Keyboard Shortcuts Reference

## TextInput

Navigation:

	Left Arrow       Move cursor one character left
	Right Arrow      Move cursor one character right
	Ctrl+Left        Move cursor to the start of the previous word
	Ctrl+Right       Move cursor to the start of the next word
	Home             Jump to start of text
	End              Jump to end of text

Selection:

	Shift+Left       Extend selection one character left
	Shift+Right      Extend selection one character right
	Ctrl+Shift+Left  Extend selection one word left
	Ctrl+Shift+Right Extend selection one word right
	Shift+Home       Select from cursor to start
	Shift+End        Select from cursor to end
	Shift+Click      Extend selection to the clicked position
	Click+Drag       Select the dragged range
	Ctrl+A           Select all text

A plain Left or Right with an active selection collapses it to the edge in
that direction instead of moving.

Control:

	Enter            Submit (runs the OnSubmit callback)
	Escape           Cancel
	Backspace        Delete character before cursor (or delete selection)
	Delete           Delete character after cursor (or delete selection)

## TextArea

	Mouse Wheel      Scroll by 1.5 lines per notch
	Up / Down        Scroll by one line
	Page Up          Scroll up by the viewport height
	Page Down        Scroll down by the viewport height
	Home             Scroll to top
	End              Scroll to bottom
	Click track      Centre the scrollbar thumb on the pointer
	Drag thumb       Scroll proportionally

## Focus

	Click            Focus the clicked input; clicking empty space clears focus
	Tab              Focus the next input
	Shift+Tab        Focus the previous input

# Configuration

Layouts are TOML or YAML files decoded into Config:

	style = "gta"

	[[field]]
	kind = "input"
	name = "command"
	font = "vector"
	x = 16
	y = 476
	w = 560
	h = 28
	font_size = 16
	placeholder = "command"

# Logging

The package logs through log/slog. Debug output is off by default; enable
it with SetVerbose or route it elsewhere with SetLogger. WithLogger gives a
single Toolkit its own logger.
*/
package textgui
