package appointment

import (
	"time"

	"github.com/BruksfildServices01/dental-scheduler/internal/config"
)

// ClinicHours are HH:MM wall-clock times; the lunch break is optional.
type ClinicHours struct {
	Open       string
	Close      string
	LunchStart string
	LunchEnd   string
}

func ClinicHoursFromConfig(cfg *config.Config) ClinicHours {
	return ClinicHours{
		Open:       cfg.ClinicOpen,
		Close:      cfg.ClinicClose,
		LunchStart: cfg.LunchStart,
		LunchEnd:   cfg.LunchEnd,
	}
}

func (h ClinicHours) hasLunch() bool {
	return h.LunchStart != "" && h.LunchEnd != ""
}

// on returns the given HH:MM on day's calendar date in day's location.
func on(day time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	)
}

// IsWithinWorkingHours is false when [start, end) leaves opening hours or
// touches the lunch break.
func (h ClinicHours) IsWithinWorkingHours(start, end time.Time) bool {
	if h.Open == "" || h.Close == "" {
		return false
	}

	if start.Before(on(start, h.Open)) || end.After(on(start, h.Close)) {
		return false
	}

	if h.hasLunch() {
		if start.Before(on(start, h.LunchEnd)) && end.After(on(start, h.LunchStart)) {
			return false
		}
	}

	return true
}

func (h ClinicHours) DayBounds(day time.Time) (time.Time, time.Time) {
	return on(day, h.Open), on(day, h.Close)
}
