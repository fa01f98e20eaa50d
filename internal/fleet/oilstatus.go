package fleet

import (
	"strings"

	"github.com/fleetops/fleet-dashboard/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Oil-change thresholds in miles. Fixed by policy, not configurable.
const (
	oilServiceInterval = 5000
	oilWarningMiles    = 4000
	oilOverdueMiles    = 5000
)

var milesPrinter = message.NewPrinter(language.English)

// ComputeOilStatus classifies a vehicle's oil-change status from its current
// odometer reading and the full maintenance table.
//
// "Most recent" oil change is the matching row with the highest recorded
// mileage, not the latest date: odometer readings only move forward while
// service dates get entered out of order. A mileage tie keeps the earlier
// table row. miles_since is not clamped; inconsistent data can make it
// negative.
func ComputeOilStatus(vehicle string, currentMileage *float64, maintenance []models.MaintenanceRecord) models.OilChangeStatus {
	var last *models.MaintenanceRecord
	for i := range maintenance {
		m := &maintenance[i]
		if m.Vehicle != vehicle || m.Mileage == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(m.ServiceType), "oil") {
			continue
		}
		if last == nil || *m.Mileage > *last.Mileage {
			last = m
		}
	}

	if last == nil || currentMileage == nil {
		return models.OilChangeStatus{
			Vehicle: vehicle,
			Status:  models.OilStatusUnknown,
			Message: "No oil change on record",
		}
	}

	milesSince := int64(*currentMileage - *last.Mileage)

	status := models.OilStatusGood
	label := "OK"
	switch {
	case milesSince >= oilOverdueMiles:
		status, label = models.OilStatusOverdue, "Overdue"
	case milesSince >= oilWarningMiles:
		status, label = models.OilStatusWarning, "Due soon"
	}

	result := models.OilChangeStatus{
		Vehicle:            vehicle,
		Status:             status,
		Message:            milesPrinter.Sprintf("%d miles since oil change - %s", milesSince, label),
		MilesSince:         &milesSince,
		LastServiceMileage: last.Mileage,
	}

	if remaining := int64(oilServiceInterval) - milesSince; remaining > 0 {
		result.MilesUntilDue = &remaining
	}

	return result
}
