package httperr

import (
	"errors"
	"net/http"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) Status() int {
	if d, ok := catalog[e.Code]; ok {
		return d.status
	}
	return http.StatusBadRequest
}

func (e BusinessError) Message() string {
	if d, ok := catalog[e.Code]; ok {
		return d.message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

type descriptor struct {
	status  int
	message string
}

var catalog = map[string]descriptor{
	"invalid_id":            {http.StatusBadRequest, "Invalid id"},
	"invalid_date":          {http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD"},
	"invalid_time":          {http.StatusBadRequest, "Invalid time, expected HH:MM"},
	"invalid_range":         {http.StatusBadRequest, "Start date must not be after end date"},
	"invalid_pagination":    {http.StatusBadRequest, "Invalid page or limit"},
	"invalid_request":       {http.StatusBadRequest, "Invalid request body"},
	"too_soon":              {http.StatusBadRequest, "Appointment time is in the past"},
	"outside_working_hours": {http.StatusBadRequest, "Appointment is outside clinic working hours"},
	"time_conflict":         {http.StatusConflict, "The dentist is already booked at this time"},
	"invalid_state":         {http.StatusBadRequest, "Appointment can not be cancelled"},
	"missing_customer":      {http.StatusBadRequest, "Customer is required when booking for a patient"},
	"forbidden_role":        {http.StatusForbidden, "Role is not allowed to book appointments"},
	"appointment_not_found": {http.StatusNotFound, "Appointment not found"},
	"treatment_not_found":   {http.StatusNotFound, "Treatment not found"},
	"dentist_not_found":     {http.StatusNotFound, "Dentist not found"},
	"customer_not_found":    {http.StatusNotFound, "Customer not found"},
}
