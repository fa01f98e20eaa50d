package models

import "time"

// MaintenanceRecord is one row of the maintenance feed: a single service
// event with the odometer reading at service time.
type MaintenanceRecord struct {
	Vehicle     string     `json:"vehicle"`
	Date        *time.Time `json:"date"`
	Mileage     *float64   `json:"mileage"`
	ServiceType string     `json:"service_type"`
}
