package timeview

import (
	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// SunTimesFunc returns the sun times for a date.
type SunTimesFunc func(model.Date) model.SunTimes

// DaylightView decorates a view to mark intervals starting before sunrise or
// after sunset, i.e. the night hours on an hour wheel.
type DaylightView struct {
	StyledView
	sunTimes SunTimesFunc

	night    bool
	lastDate model.Date
	lastSun  model.SunTimes
	haveLast bool
}

// NewDaylightView returns a new daylight view decorating the given view.
func NewDaylightView(inner StyledView, sunTimes SunTimesFunc) *DaylightView {
	return &DaylightView{StyledView: inner, sunTimes: sunTimes}
}

// Adopt assigns the given time object.
func (v *DaylightView) Adopt(o model.TimeObject) {
	v.StyledView.Adopt(o)

	date := model.DateFromGotime(o.Start)
	if !v.haveLast || date != v.lastDate {
		v.lastSun = v.sunTimes(date)
		v.lastDate = date
		v.haveLast = true
	}
	v.night = v.lastSun.IsNight(model.TimestampOf(o.Start))
}

// AdoptView assigns the time object shown by other.
func (v *DaylightView) AdoptView(other TimeView) { v.Adopt(other.TimeObject()) }

// IsNight returns whether the shown interval starts at night.
func (v *DaylightView) IsNight() bool { return v.night }

// Style returns the style the view draws itself in.
func (v *DaylightView) Style(s *styling.Stylesheet) styling.DrawStyling {
	if v.night && !v.OutOfBounds() {
		if v.IsCenter() {
			return s.WheelNight.Bolded()
		}
		return s.WheelNight
	}
	return v.StyledView.Style(s)
}

// Draw draws the view into the given box.
func (v *DaylightView) Draw(r ui.Renderer, s *styling.Stylesheet, x, y, w, h int) {
	v.DrawStyled(r, v.Style(s), x, y, w, h)
}
