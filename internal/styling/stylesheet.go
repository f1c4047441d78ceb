package styling

import (
	"fmt"

	"github.com/ja-he/dayslider/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling
	Title  DrawStyling
	Status DrawStyling
	Help   DrawStyling

	WheelNormal      DrawStyling
	WheelCenter      DrawStyling
	WheelOutOfBounds DrawStyling
	WheelSunday      DrawStyling
	WheelNight       DrawStyling
	WheelAccent      DrawStyling
	WheelFocusMarker DrawStyling

	Button        DrawStyling
	ButtonFocused DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet. It fails on the first styling with an invalid color.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}
	for _, entry := range []struct {
		name   string
		from   config.Styling
		target *DrawStyling
	}{
		{"normal", c.Normal, &stylesheet.Normal},
		{"title", c.Title, &stylesheet.Title},
		{"status", c.Status, &stylesheet.Status},
		{"help", c.Help, &stylesheet.Help},
		{"wheel-normal", c.WheelNormal, &stylesheet.WheelNormal},
		{"wheel-center", c.WheelCenter, &stylesheet.WheelCenter},
		{"wheel-out-of-bounds", c.WheelOutOfBounds, &stylesheet.WheelOutOfBounds},
		{"wheel-sunday", c.WheelSunday, &stylesheet.WheelSunday},
		{"wheel-night", c.WheelNight, &stylesheet.WheelNight},
		{"wheel-accent", c.WheelAccent, &stylesheet.WheelAccent},
		{"wheel-focus-marker", c.WheelFocusMarker, &stylesheet.WheelFocusMarker},
		{"button", c.Button, &stylesheet.Button},
		{"button-focused", c.ButtonFocused, &stylesheet.ButtonFocused},
	} {
		s, err := StyleFromConfig(entry.from)
		if err != nil {
			return nil, fmt.Errorf("styling '%s' (%w)", entry.name, err)
		}
		*entry.target = s
	}
	return &stylesheet, nil
}
