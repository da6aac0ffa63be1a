package scene

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultFont is used for new text and whenever a stored font descriptor
// cannot be parsed.
var DefaultFont = Font{Size: 24, Family: "Arial"}

// Font is a CSS-like font descriptor: a pixel size and a family name.
type Font struct {
	Size   int
	Family string
}

// String formats the descriptor as "24px Arial".
func (f Font) String() string {
	return fmt.Sprintf("%dpx %s", f.Size, f.Family)
}

var fontPattern = regexp.MustCompile(`^(\d+)px\s(.+)$`)

// ParseFont parses a "<size>px <family>" descriptor. ok is false when s
// does not have that shape.
func ParseFont(s string) (Font, bool) {
	m := fontPattern.FindStringSubmatch(s)
	if m == nil {
		return Font{}, false
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return Font{}, false
	}
	return Font{Size: size, Family: m[2]}, true
}

// ParseFontOrDefault is ParseFont falling back to DefaultFont.
func ParseFontOrDefault(s string) Font {
	if f, ok := ParseFont(s); ok {
		return f
	}
	return DefaultFont
}
