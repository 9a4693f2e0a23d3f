package appointment

import (
	"time"

	"github.com/BruksfildServices01/dental-scheduler/internal/models"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Availability struct {
	DentistID   string     `json:"dentist_id"`
	TreatmentID string     `json:"treatment_id"`
	Date        string     `json:"date"`
	Slots       []TimeSlot `json:"slots"`
}

// FreeSlots walks the opening hours of day in steps of duration and keeps the
// slots that miss the lunch break and every booked appointment. booked must be
// ordered by StartTime.
func FreeSlots(
	hours ClinicHours,
	day time.Time,
	duration time.Duration,
	booked []models.Appointment,
) []TimeSlot {

	slots := []TimeSlot{}
	if duration <= 0 {
		return slots
	}

	dayStart, dayEnd := hours.DayBounds(day)

	var lunchStart, lunchEnd time.Time
	if hours.hasLunch() {
		lunchStart = on(day, hours.LunchStart)
		lunchEnd = on(day, hours.LunchEnd)
	}

	apIdx := 0

	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(duration) {

		slotStart := cur
		slotEnd := cur.Add(duration)

		if hours.hasLunch() && slotStart.Before(lunchEnd) && slotEnd.After(lunchStart) {
			continue
		}

		// skip appointments that are already over
		for apIdx < len(booked) && !booked[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		for i := apIdx; i < len(booked) && booked[i].StartTime.Before(slotEnd); i++ {
			if slotStart.Before(booked[i].EndTime) && slotEnd.After(booked[i].StartTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots
}
