package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/dayslider/internal/input"
)

// Config is the configuration data as present in a config file at
// '${DAYSLIDER_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet `yaml:"stylesheet"`
	Slider     Slider     `yaml:"slider"`
	Scroll     Scroll     `yaml:"scroll"`

	Input input.InputConfig `yaml:"input"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal Styling `yaml:"normal"`
	Title  Styling `yaml:"title"`
	Status Styling `yaml:"status"`
	Help   Styling `yaml:"help"`

	WheelNormal      Styling `yaml:"wheel-normal"`
	WheelCenter      Styling `yaml:"wheel-center"`
	WheelOutOfBounds Styling `yaml:"wheel-out-of-bounds"`
	WheelSunday      Styling `yaml:"wheel-sunday"`
	WheelNight       Styling `yaml:"wheel-night"`
	WheelAccent      Styling `yaml:"wheel-accent"`
	WheelFocusMarker Styling `yaml:"wheel-focus-marker"`

	Button        Styling `yaml:"button"`
	ButtonFocused Styling `yaml:"button-focused"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Slider configures the picker, i.e. which wheels are shown and how.
//
// Wheels, if given, replace the wheels of the preset; the preset then still
// determines the title.
type Slider struct {
	Preset         string  `yaml:"preset,omitempty"`
	Wheels         []Wheel `yaml:"wheels,omitempty"`
	MinuteInterval int     `yaml:"minute-interval,omitempty"`
	Location       string  `yaml:"location,omitempty"`
	TitleLayout    string  `yaml:"title-layout,omitempty"`
}

// Wheel configures a single wheel.
//
// Format is a Go time layout (e.g. "Jan 2006"), except for the "week"
// granularity, where it is a fmt format receiving the ISO week number.
// Width and height override the labeler's preferred slot size, if non-zero.
type Wheel struct {
	Granularity string `yaml:"granularity"`
	Format      string `yaml:"format,omitempty"`
	Width       int    `yaml:"width,omitempty"`
	Height      int    `yaml:"height,omitempty"`
}

// Scroll configures the scrolling physics of all wheels.
//
// Velocities are in cells per second, deceleration in cells per second
// squared. TickInterval is a duration string (see time.ParseDuration).
type Scroll struct {
	Deceleration     float64 `yaml:"deceleration,omitempty"`
	MinFlingVelocity float64 `yaml:"min-fling-velocity,omitempty"`
	MaxFlingVelocity float64 `yaml:"max-fling-velocity,omitempty"`
	TickInterval     string  `yaml:"tick-interval,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)
	result.Slider = base.Slider.augmentWith(augment.Slider)
	result.Scroll = base.Scroll.augmentWith(augment.Scroll)
	result.Input = base.Input.AugmentWith(augment.Input)

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Title.overwriteIfDefined(augment.Title)
	result.Status.overwriteIfDefined(augment.Status)
	result.Help.overwriteIfDefined(augment.Help)
	result.WheelNormal.overwriteIfDefined(augment.WheelNormal)
	result.WheelCenter.overwriteIfDefined(augment.WheelCenter)
	result.WheelOutOfBounds.overwriteIfDefined(augment.WheelOutOfBounds)
	result.WheelSunday.overwriteIfDefined(augment.WheelSunday)
	result.WheelNight.overwriteIfDefined(augment.WheelNight)
	result.WheelAccent.overwriteIfDefined(augment.WheelAccent)
	result.WheelFocusMarker.overwriteIfDefined(augment.WheelFocusMarker)
	result.Button.overwriteIfDefined(augment.Button)
	result.ButtonFocused.overwriteIfDefined(augment.ButtonFocused)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

func (base Slider) augmentWith(augment Slider) Slider {
	result := base
	if augment.Preset != "" {
		result.Preset = augment.Preset
	}
	if len(augment.Wheels) > 0 {
		result.Wheels = augment.Wheels
	}
	if augment.MinuteInterval != 0 {
		result.MinuteInterval = augment.MinuteInterval
	}
	if augment.Location != "" {
		result.Location = augment.Location
	}
	if augment.TitleLayout != "" {
		result.TitleLayout = augment.TitleLayout
	}
	return result
}

func (base Scroll) augmentWith(augment Scroll) Scroll {
	result := base
	if augment.Deceleration > 0 {
		result.Deceleration = augment.Deceleration
	}
	if augment.MinFlingVelocity > 0 {
		result.MinFlingVelocity = augment.MinFlingVelocity
	}
	if augment.MaxFlingVelocity > 0 {
		result.MaxFlingVelocity = augment.MaxFlingVelocity
	}
	if augment.TickInterval != "" {
		result.TickInterval = augment.TickInterval
	}
	return result
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
