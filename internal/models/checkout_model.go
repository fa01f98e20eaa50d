package models

import (
	"time"
)

// CheckoutRecord is one row of the checkout feed: a single vehicle-use event.
// Fields that the source spreadsheet can leave blank or unparseable are
// pointers; a nil value means the field could not be coerced, not that the
// row is invalid.
type CheckoutRecord struct {
	CheckoutTime   *time.Time `json:"checkout_time"`
	Vehicle        string     `json:"vehicle"`
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	Mileage        *float64   `json:"mileage"`
	Destination    *string    `json:"destination"`
	ExpectedBack   *string    `json:"expected_back"`
	Email          *string    `json:"email"`
	SubmissionID   string     `json:"submission_id"`
	ProgramFlagRaw *string    `json:"program_flag_raw,omitempty"`

	// Derived fields, recomputed on every render cycle.
	StaffName     string `json:"staff_name"`
	IsProgramTrip bool   `json:"is_program_trip"`
}
