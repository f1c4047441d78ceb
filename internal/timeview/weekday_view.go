package timeview

import (
	"time"

	"github.com/ja-he/dayslider/internal/model"
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/ui"
)

// WeekdayView decorates a view to mark Sundays.
//
// Whether the shown interval is a Sunday is decided by its end, so it is
// recomputed on every assignment, including AdoptView.
type WeekdayView struct {
	StyledView
	sunday bool
}

// NewWeekdayView returns a new weekday view decorating the given view.
func NewWeekdayView(inner StyledView) *WeekdayView {
	return &WeekdayView{StyledView: inner}
}

// Adopt assigns the given time object.
func (v *WeekdayView) Adopt(o model.TimeObject) {
	v.StyledView.Adopt(o)
	v.sunday = o.End.Weekday() == time.Sunday
}

// AdoptView assigns the time object shown by other.
func (v *WeekdayView) AdoptView(other TimeView) { v.Adopt(other.TimeObject()) }

// IsSunday returns whether the shown interval ends on a Sunday.
func (v *WeekdayView) IsSunday() bool { return v.sunday }

// Style returns the style the view draws itself in.
func (v *WeekdayView) Style(s *styling.Stylesheet) styling.DrawStyling {
	if v.sunday && !v.OutOfBounds() {
		if v.IsCenter() {
			return s.WheelSunday.Bolded()
		}
		return s.WheelSunday
	}
	return v.StyledView.Style(s)
}

// Draw draws the view into the given box.
func (v *WeekdayView) Draw(r ui.Renderer, s *styling.Stylesheet, x, y, w, h int) {
	v.DrawStyled(r, v.Style(s), x, y, w, h)
}
