package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/dayslider/internal/config"
)

// DrawStyling is style information used for rendering text: fore- and
// background color and font modifiers.
// Derived stylings are copies; the receiver is never modified.
type DrawStyling interface {
	AsTcell() tcell.Style

	// Faded blends the foreground into the background by the percentage, e.g.
	// for slots far from a wheel's center.
	Faded(percentage int) DrawStyling
	// Emphasized increases the contrast of the foreground.
	Emphasized() DrawStyling

	Italicized() DrawStyling
	Bolded() DrawStyling

	ToString() string
}

// FallbackStyling is a DrawStyling that holds non-renderer-specific colors.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s *FallbackStyling) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcellColor(s.fg)).
		Background(toTcellColor(s.bg)).
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.underlined)
}

// Faded returns a copy with the foreground blended towards the background.
func (s *FallbackStyling) Faded(percentage int) DrawStyling {
	result := *s
	result.fg = towards(s.fg, s.bg, percentage)
	return &result
}

// Emphasized returns a copy with the foreground lightened on dark backgrounds
// and darkened on light ones.
func (s *FallbackStyling) Emphasized() DrawStyling {
	result := *s
	result.fg = contrasting(s.fg, s.bg, 30)
	return &result
}

// Italicized returns an italic copy.
func (s *FallbackStyling) Italicized() DrawStyling {
	result := *s
	result.italic = true
	return &result
}

// Bolded returns a bold copy.
func (s *FallbackStyling) Bolded() DrawStyling {
	result := *s
	result.bold = true
	return &result
}

// ToString returns a string representation of this styling, e.g., for logging
// purposes.
func (s *FallbackStyling) ToString() string {
	return fmt.Sprintf("[fg:'%s' bg:'%s' (b:%t i:%t u:%t)]", s.fg.Hex(), s.bg.Hex(), s.bold, s.italic, s.underlined)
}

// StyleFromHex constructs a styling from two colors in hexadecimal notation
// with a leading '#', e.g. '#ff0000' or '#fff'.
func StyleFromHex(fg, bg string) (*FallbackStyling, error) {
	fgColor, err := parseHex(fg)
	if err != nil {
		return nil, fmt.Errorf("invalid foreground (%w)", err)
	}
	bgColor, err := parseHex(bg)
	if err != nil {
		return nil, fmt.Errorf("invalid background (%w)", err)
	}
	return &FallbackStyling{fg: fgColor, bg: bgColor}, nil
}

// StyleFromConfig constructs a styling from a config styling.
func StyleFromConfig(c config.Styling) (DrawStyling, error) {
	s, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		return nil, err
	}
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s, nil
}
