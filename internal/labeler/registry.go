package labeler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ja-he/dayslider/internal/timeview"
)

// Options configure the construction of a labeler.
type Options struct {
	// Format is the Go time layout of the labels; for weeks, a fmt format
	// receiving the ISO week number. Empty selects the granularity's default.
	Format string
	// Location is where wall-clock units are determined; nil means time.Local.
	Location *time.Location
	// MinuteInterval is the bucket size of minute-bucketing labelers; 0
	// selects the granularity's default.
	MinuteInterval int
	// SunTimes, if set, lets hour labelers mark night hours.
	SunTimes timeview.SunTimesFunc
}

// Constructor constructs a labeler of one granularity.
type Constructor func(opts Options) (Labeler, error)

var registry = map[string]Constructor{
	"year":      NewYearLabeler,
	"month":     NewMonthLabeler,
	"monthyear": NewMonthYearLabeler,
	"week":      NewWeekLabeler,
	"day":       NewDayLabeler,
	"daydate":   NewDayDateLabeler,
	"hour":      NewHourLabeler,
	"minute":    NewMinuteLabeler,
	"time":      NewTimeLabeler,
}

// New constructs the labeler registered for the given granularity.
func New(granularity string, opts Options) (Labeler, error) {
	construct, ok := registry[strings.ToLower(granularity)]
	if !ok {
		return nil, fmt.Errorf("unknown granularity '%s' (known: %s)", granularity, strings.Join(Granularities(), ", "))
	}
	l, err := construct(opts)
	if err != nil {
		return nil, fmt.Errorf("could not construct '%s' labeler (%w)", granularity, err)
	}
	return l, nil
}

// Granularities returns the known granularity names, sorted.
func Granularities() []string {
	result := make([]string, 0, len(registry))
	for name := range registry {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func (o Options) format(def string) string {
	if o.Format == "" {
		return def
	}
	return o.Format
}

func calendar(unit calendarUnit, defaultFormat string, w, h int, view viewKind) Constructor {
	return func(opts Options) (Labeler, error) {
		format := opts.format(defaultFormat)
		if strings.TrimSpace(format) == "" {
			return nil, fmt.Errorf("empty format")
		}
		if unit == unitWeek && !strings.Contains(format, "%") {
			return nil, fmt.Errorf("week format '%s' has no verb for the week number", format)
		}
		return &calendarLabeler{
			unit:     unit,
			format:   format,
			location: opts.location(),
			w:        w,
			h:        h,
			view:     view,
		}, nil
	}
}

// NewYearLabeler labels years ("2024").
func NewYearLabeler(opts Options) (Labeler, error) {
	return calendar(unitYear, "2006", 8, 3, textView)(opts)
}

// NewMonthLabeler labels months ("Feb").
func NewMonthLabeler(opts Options) (Labeler, error) {
	return calendar(unitMonth, "Jan", 7, 3, textView)(opts)
}

// NewMonthYearLabeler labels months with their year on a second row.
func NewMonthYearLabeler(opts Options) (Labeler, error) {
	return calendar(unitMonth, "Jan 2006", 8, 4, twoRowView)(opts)
}

// NewWeekLabeler labels Monday-based weeks with their ISO week number.
func NewWeekLabeler(opts Options) (Labeler, error) {
	return calendar(unitWeek, "week %d", 10, 3, accentTextView)(opts)
}

// NewDayLabeler labels days ("29").
func NewDayLabeler(opts Options) (Labeler, error) {
	return calendar(unitDay, "2", 5, 3, textView)(opts)
}

// NewDayDateLabeler labels days with their weekday above the day of month and
// marks Sundays.
func NewDayDateLabeler(opts Options) (Labeler, error) {
	return calendar(unitDay, "Mon 2", 6, 4, weekdayView)(opts)
}

func clock(minutes int, hourly bool, defaultFormat string, w, h int) Constructor {
	return func(opts Options) (Labeler, error) {
		format := opts.format(defaultFormat)
		if strings.TrimSpace(format) == "" {
			return nil, fmt.Errorf("empty format")
		}
		bucket := minutes
		if !hourly && opts.MinuteInterval != 0 {
			bucket = opts.MinuteInterval
		}
		if !ValidMinuteInterval(bucket) {
			return nil, fmt.Errorf("minute interval %d does not divide 60", bucket)
		}
		l := &clockLabeler{
			minutes:  bucket,
			hourly:   hourly,
			format:   format,
			location: opts.location(),
			w:        w,
			h:        h,
			view:     textView,
		}
		if hourly {
			l.sunTimes = opts.SunTimes
		}
		return l, nil
	}
}

// NewHourLabeler labels hours ("14h").
func NewHourLabeler(opts Options) (Labeler, error) {
	return clock(60, true, "15h", 5, 3)(opts)
}

// NewMinuteLabeler labels minute buckets by their minute ("05"); the default
// bucket is a single minute.
func NewMinuteLabeler(opts Options) (Labeler, error) {
	return clock(1, false, "04", 4, 3)(opts)
}

// NewTimeLabeler labels minute buckets by their time of day ("14:15"); the
// default bucket is 15 minutes.
func NewTimeLabeler(opts Options) (Labeler, error) {
	return clock(15, false, "15:04", 7, 3)(opts)
}
