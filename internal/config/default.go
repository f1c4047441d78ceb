package config

import "github.com/ja-he/dayslider/internal/input"

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Slider: Slider{
			Preset: "default",
		},
		Scroll: Scroll{
			Deceleration:     120,
			MinFlingVelocity: 8,
			MaxFlingVelocity: 400,
			TickInterval:     "16ms",
		},
		Input: input.InputConfig{
			Picker: map[input.Keyspec]input.Actionspec{
				"h":       "step-backward",
				"<left>":  "step-backward",
				"l":       "step-forward",
				"<right>": "step-forward",
				"H":       "page-backward",
				"L":       "page-forward",
				"j":       "next-wheel",
				"<down>":  "next-wheel",
				"<tab>":   "next-wheel",
				"k":       "previous-wheel",
				"<up>":    "previous-wheel",
				"<s-tab>": "previous-wheel",
				"t":       "now",
				"u":       "undo",
				"gg":      "first-bound",
				"G":       "last-bound",
				"<cr>":    "confirm",
				"<esc>":   "cancel",
				"q":       "cancel",
				"?":       "help",
			},
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:           Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Title:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			Status:           Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Help:             Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			WheelNormal:      Styling{Fg: "#666666", Bg: "#ffffff", Style: &FontStyle{}},
			WheelCenter:      Styling{Fg: "#333333", Bg: "#e0e0e0", Style: &FontStyle{Bold: true}},
			WheelOutOfBounds: Styling{Fg: "#d0d0d0", Bg: "#ffffff", Style: &FontStyle{}},
			WheelSunday:      Styling{Fg: "#773333", Bg: "#ffffff", Style: &FontStyle{}},
			WheelNight:       Styling{Fg: "#666666", Bg: "#e6e6f5", Style: &FontStyle{}},
			WheelAccent:      Styling{Fg: "#883333", Bg: "#ffffff", Style: &FontStyle{Italic: true}},
			WheelFocusMarker: Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			Button:           Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
			ButtonFocused:    Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		}
	}
	return Stylesheet{
		Normal:           Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Title:            Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{Bold: true}},
		Status:           Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		Help:             Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		WheelNormal:      Styling{Fg: "#a0a0a0", Bg: "#000000", Style: &FontStyle{}},
		WheelCenter:      Styling{Fg: "#ffffff", Bg: "#303030", Style: &FontStyle{Bold: true}},
		WheelOutOfBounds: Styling{Fg: "#404040", Bg: "#000000", Style: &FontStyle{}},
		WheelSunday:      Styling{Fg: "#ffaaaa", Bg: "#000000", Style: &FontStyle{}},
		WheelNight:       Styling{Fg: "#a0a0a0", Bg: "#222255", Style: &FontStyle{}},
		WheelAccent:      Styling{Fg: "#ffdccc", Bg: "#000000", Style: &FontStyle{Italic: true}},
		WheelFocusMarker: Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		Button:           Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		ButtonFocused:    Styling{Fg: "#000000", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
	}
}
