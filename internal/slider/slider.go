package slider

import (
	"fmt"
	"time"

	"github.com/ja-he/dayslider/internal/config"
	"github.com/ja-he/dayslider/internal/labeler"
	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/scroll"
)

// Params are the parameters for building a Slider.
type Params struct {
	Config config.Slider

	// ViewportWidth is the width all wheels are laid out for.
	ViewportWidth int
	Physics       scroll.Physics

	// Initial is the instant initially shown.
	Initial  time.Time
	Min, Max *time.Time

	// Suntimes, if set, mark night hours on hour wheels.
	Suntimes *model.SuntimesProvider

	// Debug makes labeler inconsistencies fatal.
	Debug bool
	Now   func() time.Time
}

// Slider is a configured picker: a container of wheels and the layout its
// title is shown in.
type Slider struct {
	*Container

	Preset      Preset
	Names       []string
	TitleLayout string
	Location    *time.Location
}

// New builds a slider as configured.
//
// The wheels are the configured ones or, if none are configured, those of the
// configured preset. Bounds are applied after the initial instant, which is
// moved to the nearest bucket boundary if the minute interval exceeds one
// minute.
func New(p Params) (*Slider, error) {
	presetName := p.Config.Preset
	if presetName == "" {
		presetName = "default"
	}
	preset, err := LookupPreset(presetName)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	if p.Config.Location != "" {
		loc, err = time.LoadLocation(p.Config.Location)
		if err != nil {
			return nil, fmt.Errorf("could not load location '%s' (%w)", p.Config.Location, err)
		}
	}

	interval := p.Config.MinuteInterval
	if interval == 0 {
		interval = preset.MinuteInterval
	}
	if interval != 0 && !labeler.ValidMinuteInterval(interval) {
		return nil, fmt.Errorf("minute interval %d does not divide 60", interval)
	}

	initial := p.Initial.In(loc)
	if interval > 1 {
		initial = SnapToInterval(initial, interval)
	}

	wheelConfigs := p.Config.Wheels
	if len(wheelConfigs) == 0 {
		wheelConfigs = preset.Wheels
	}
	if len(wheelConfigs) == 0 {
		return nil, fmt.Errorf("no wheels configured")
	}

	var sunTimes func(model.Date) model.SunTimes
	if p.Suntimes != nil {
		provider := *p.Suntimes
		provider.Location = loc
		sunTimes = provider.Get
	}

	names := make([]string, 0, len(wheelConfigs))
	wheels := make([]*scroll.Layout, 0, len(wheelConfigs))
	for i, wc := range wheelConfigs {
		l, err := labeler.New(wc.Granularity, labeler.Options{
			Format:         wc.Format,
			Location:       loc,
			MinuteInterval: interval,
			SunTimes:       sunTimes,
		})
		if err != nil {
			return nil, fmt.Errorf("wheel %d (%w)", i, err)
		}
		w, err := scroll.NewLayout(scroll.Params{
			Name:          wc.Granularity,
			Labeler:       labeler.Checked(l, p.Debug),
			ViewportWidth: p.ViewportWidth,
			SlotWidth:     wc.Width,
			SlotHeight:    wc.Height,
			Time:          initial,
			Physics:       p.Physics,
			Now:           p.Now,
		})
		if err != nil {
			return nil, fmt.Errorf("wheel %d (%s) (%w)", i, wc.Granularity, err)
		}
		names = append(names, wc.Granularity)
		wheels = append(wheels, w)
	}

	c := NewContainer(wheels...)
	if interval != 0 {
		c.minuteInterval = interval
	}
	c.SetTime(initial)
	if p.Min != nil {
		if err := c.SetMinTime(p.Min.In(loc)); err != nil {
			return nil, err
		}
	}
	if p.Max != nil {
		if err := c.SetMaxTime(p.Max.In(loc)); err != nil {
			return nil, err
		}
	}

	titleLayout := preset.TitleLayout
	if p.Config.TitleLayout != "" {
		titleLayout = p.Config.TitleLayout
	}

	return &Slider{
		Container:   c,
		Preset:      preset,
		Names:       names,
		TitleLayout: titleLayout,
		Location:    loc,
	}, nil
}

// Title returns the picked instant in the title layout.
func (s *Slider) Title() string {
	return s.Time().In(s.Location).Format(s.TitleLayout)
}

// SetViewportWidth lays all wheels out for the given width.
func (s *Slider) SetViewportWidth(w int) {
	for _, wheel := range s.Wheels() {
		wheel.SetViewportWidth(w)
	}
}
