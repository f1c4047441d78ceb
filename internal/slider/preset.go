package slider

import (
	"fmt"
	"sort"

	"github.com/ja-he/dayslider/internal/config"
)

// Preset is a named arrangement of wheels.
type Preset struct {
	Name   string
	Wheels []config.Wheel
	// TitleLayout is the Go time layout the picked instant is shown in.
	TitleLayout string
	// MinuteInterval applies unless one is configured; 0 for none.
	MinuteInterval int
}

var presets = map[string]Preset{
	"default": {
		Wheels:      []config.Wheel{{Granularity: "year"}, {Granularity: "month"}, {Granularity: "daydate"}},
		TitleLayout: "Mon, 2. January 2006",
	},
	"alternative": {
		Wheels:      []config.Wheel{{Granularity: "monthyear"}, {Granularity: "daydate"}},
		TitleLayout: "Mon, 2. January 2006",
	},
	"custom": {
		Wheels:      []config.Wheel{{Granularity: "year"}, {Granularity: "week"}, {Granularity: "day", Format: "Mon 2"}},
		TitleLayout: "Mon, 2. January 2006",
	},
	"monthyear": {
		Wheels:      []config.Wheel{{Granularity: "year"}, {Granularity: "month", Format: "January"}},
		TitleLayout: "January 2006",
	},
	"time": {
		Wheels:      []config.Wheel{{Granularity: "hour"}, {Granularity: "minute"}},
		TitleLayout: "15:04",
	},
	"datetime": {
		Wheels:         []config.Wheel{{Granularity: "daydate"}, {Granularity: "time"}},
		TitleLayout:    "Mon, 2. January 2006  15:04",
		MinuteInterval: 15,
	},
}

// LookupPreset returns the preset of the given name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset '%s' (known: %v)", name, PresetNames())
	}
	p.Name = name
	return p, nil
}

// PresetNames returns the names of all presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
