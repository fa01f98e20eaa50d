package models

// Oil-change status classifications.
const (
	OilStatusGood    = "GOOD"
	OilStatusWarning = "WARNING"
	OilStatusOverdue = "OVERDUE"
	OilStatusUnknown = "UNKNOWN"
)

// OilChangeStatus is the derived service status for one vehicle at a given
// odometer reading. It is never stored; it is recomputed from the
// maintenance table on every query.
type OilChangeStatus struct {
	Vehicle            string   `json:"vehicle"`
	Status             string   `json:"status"`
	Message            string   `json:"message"`
	MilesSince         *int64   `json:"miles_since,omitempty"`
	MilesUntilDue      *int64   `json:"miles_until_due,omitempty"`
	LastServiceMileage *float64 `json:"last_service_mileage,omitempty"`
}
