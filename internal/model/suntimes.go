package model

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SuntimesProvider computes sunrise and sunset for dates at a fixed position.
type SuntimesProvider struct {
	Latitude  float64
	Longitude float64
	Location  *time.Location
}

// SunTimes represents the sunrise and sunset times of a date.
type SunTimes struct {
	Rise, Set Timestamp
}

// Get returns the sunrise and sunset times for the given date, as wall-clock
// timestamps in the provider's location.
func (p *SuntimesProvider) Get(d Date) SunTimes {
	loc := p.Location
	if loc == nil {
		loc = time.Local
	}

	// calculated in UTC
	sunriseTime, sunsetTime := sunrise.SunriseSunset(p.Latitude, p.Longitude, d.Year, time.Month(d.Month), d.Day)

	return SunTimes{
		Rise: TimestampOf(sunriseTime.In(loc)),
		Set:  TimestampOf(sunsetTime.In(loc)),
	}
}

// IsNight returns whether the given time of day lies before sunrise or after
// sunset.
func (s SunTimes) IsNight(t Timestamp) bool {
	return t.IsBefore(s.Rise) || t.IsAfter(s.Set)
}
