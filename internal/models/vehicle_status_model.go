package models

import "time"

// VehicleStatus is the "current status card" for one vehicle: its newest
// checkout plus the oil-change status computed from its latest known mileage.
type VehicleStatus struct {
	Vehicle      string           `json:"vehicle"`
	CheckoutTime *time.Time       `json:"checkout_time"`
	StaffName    string           `json:"staff_name"`
	Destination  *string          `json:"destination"`
	ExpectedBack *string          `json:"expected_back"`
	HoursOut     *float64         `json:"hours_out"`
	OilStatus    *OilChangeStatus `json:"oil_status,omitempty"`
}

// CheckoutStats are the summary metrics computed over a filtered checkout
// set. MostUsedVehicle is "N/A" when the set is empty. ThisWeek counts
// checkouts in the last 7 days over the full (unfiltered) table.
type CheckoutStats struct {
	TotalCheckouts  int    `json:"total_checkouts"`
	UniqueStaff     int    `json:"unique_staff"`
	MostUsedVehicle string `json:"most_used_vehicle"`
	ThisWeek        int    `json:"this_week"`
}
