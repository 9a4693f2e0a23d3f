package appointment

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentDto is the booking request body.
type AppointmentDto struct {
	TreatmentID string `json:"treatment"`
	DentistID   string `json:"dentist"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	// only honoured for staff and manager bookings
	CustomerID string `json:"customer"`
	Note       string `json:"note"`
}

type CalendarQuery struct {
	Start  string
	End    string
	View   string
	UserID string
}

type Calendar struct {
	View   string          `json:"view"`
	Start  string          `json:"start"`
	End    string          `json:"end"`
	Events []CalendarEvent `json:"events"`
}

type CalendarEvent struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}

type AppointmentView struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	Note          string    `json:"note"`
	TreatmentID   uuid.UUID `json:"treatment_id"`
	TreatmentName string    `json:"treatment_name"`
	DentistID     uuid.UUID `json:"dentist_id"`
	DentistName   string    `json:"dentist_name"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CreatedAt     time.Time `json:"created_at"`
}
