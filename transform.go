package textgui

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaskGlyph replaces each character of a hidden field.
const DefaultMaskGlyph = '*'

// foldTable maps Latin-1 and common typographic characters to the ASCII
// glyph a constrained atlas can draw.
var foldTable = map[rune]rune{
	'\u00a0': ' ', '¡': '!', '¢': 'c', '£': 'L', '¥': 'Y', '¦': '|', '§': 'S',
	'©': 'c', 'ª': 'a', '«': '<', '¬': '-', '\u00ad': '-', '®': 'r', '°': 'o',
	'±': '+', '²': '2', '³': '3', '´': '\'', 'µ': 'u', '·': '.', '¹': '1',
	'º': 'o', '»': '>', '¿': '?',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A', 'Æ': 'A',
	'Ç': 'C', 'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I', 'Ð': 'D', 'Ñ': 'N',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', '×': 'x', 'Ø': 'O',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U', 'Ý': 'Y', 'Þ': 'P', 'ß': 's',
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'æ': 'a',
	'ç': 'c', 'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ð': 'd', 'ñ': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', '÷': '/', 'ø': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ý': 'y', 'þ': 'p', 'ÿ': 'y',
	'Œ': 'O', 'œ': 'o', 'Ł': 'L', 'ł': 'l', 'Đ': 'D', 'đ': 'd', 'ı': 'i',
	'‘': '\'', '’': '\'', '‚': ',', '“': '"', '”': '"', '„': '"',
	'–': '-', '—': '-', '…': '.', '•': '*', '€': 'E',
	'►': '>', '▶': '>', '→': '>', '◄': '<', '◀': '<', '←': '<',
	'▼': 'v', '↓': 'v', '▲': '^', '↑': '^', '●': '*', '◆': '*',
	'✓': '+', '✔': '+', '✗': 'x', '✘': 'x',
}

// stripMarks decomposes a character and drops its combining marks, which
// turns most accented Latin letters outside the table into plain ASCII.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldRune maps r onto the printable ASCII range. ok is false for control
// characters, which fold to nothing.
func FoldRune(r rune) (folded rune, ok bool) {
	switch {
	case r < 0x20:
		return 0, false
	case r <= 0x7E:
		return r, true
	}
	if f, found := foldTable[r]; found {
		return f, true
	}
	if s, _, err := transform.String(stripMarks, string(r)); err == nil {
		if rs := []rune(s); len(rs) == 1 && rs[0] >= 0x20 && rs[0] <= 0x7E {
			return rs[0], true
		}
	}
	return '?', true
}

// DiacriticFold folds every character of s with FoldRune.
func DiacriticFold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if f, ok := FoldRune(r); ok {
			b.WriteRune(f)
		}
	}
	return b.String()
}

// Mask replaces every character of s with glyph.
func Mask(s string, glyph rune) string {
	if glyph == 0 {
		glyph = DefaultMaskGlyph
	}
	return strings.Repeat(string(glyph), runeCount(s))
}

// CharacterSet selects the glyph repertoire a field can render.
type CharacterSet int

const (
	// CharsetUnicode renders text unchanged.
	CharsetUnicode CharacterSet = iota
	// CharsetASCII folds text to printable ASCII for bitmap atlases.
	CharsetASCII
)

// String returns the configuration name of the character set.
func (c CharacterSet) String() string {
	switch c {
	case CharsetASCII:
		return "ascii"
	default:
		return "unicode"
	}
}

// ParseCharacterSet maps a configuration name to a CharacterSet.
// Unknown names select CharsetUnicode.
func ParseCharacterSet(name string) CharacterSet {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii", "bitmap", "fold":
		return CharsetASCII
	default:
		return CharsetUnicode
	}
}

// Apply returns s as it will be displayed under this character set.
func (c CharacterSet) Apply(s string) string {
	if c == CharsetASCII {
		return DiacriticFold(s)
	}
	return s
}

// Accepts reports whether r survives the character set unchanged in count,
// i.e. typing r adds exactly one displayed character.
func (c CharacterSet) Accepts(r rune) bool {
	if c == CharsetASCII {
		_, ok := FoldRune(r)
		return ok
	}
	return r >= 0x20 && r != 0x7F
}

// displayText applies the character set and, for hidden fields, the mask.
func displayText(s string, cs CharacterSet, hidden bool, glyph rune) string {
	if hidden {
		return Mask(s, glyph)
	}
	return cs.Apply(s)
}

// ApplyLines is Apply for multi-line text: '\n' separators are kept.
func (c CharacterSet) ApplyLines(s string) string {
	if c != CharsetASCII {
		return s
	}
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = DiacriticFold(p)
	}
	return strings.Join(parts, "\n")
}
