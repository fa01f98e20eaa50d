package fleet

import (
	"time"

	"github.com/fleetops/fleet-dashboard/internal/models"
)

// ApplyFilters returns the records satisfying every set predicate, keeping
// the input's relative order. Predicates are independent, so any application
// order yields the same set.
func ApplyFilters(records []models.CheckoutRecord, filters models.CheckoutFilters) []models.CheckoutRecord {
	out := make([]models.CheckoutRecord, 0, len(records))
	for _, record := range records {
		if filters.Vehicle != nil && record.Vehicle != *filters.Vehicle {
			continue
		}
		if filters.Staff != nil && record.StaffName != *filters.Staff {
			continue
		}
		if filters.Since != nil {
			if record.CheckoutTime == nil || record.CheckoutTime.Before(*filters.Since) {
				continue
			}
		}
		if filters.ProgramTrip != nil && record.IsProgramTrip != *filters.ProgramTrip {
			continue
		}
		out = append(out, record)
	}
	return out
}

// ComputeStats summarizes a filtered set. The most-used vehicle tie-break is
// first-encountered in the set's order, which is the table's defined
// newest-first order. "This week" always counts over the full table.
func ComputeStats(filtered, all []models.CheckoutRecord, now time.Time) models.CheckoutStats {
	stats := models.CheckoutStats{
		TotalCheckouts:  len(filtered),
		MostUsedVehicle: "N/A",
	}

	// StaffName is derived and never null; the empty name produced by two
	// missing parts is a value like any other.
	staff := make(map[string]bool)
	vehicleCounts := make(map[string]int)
	best := 0
	for _, record := range filtered {
		staff[record.StaffName] = true
		if record.Vehicle == "" {
			continue
		}
		vehicleCounts[record.Vehicle]++
		if vehicleCounts[record.Vehicle] > best {
			best = vehicleCounts[record.Vehicle]
			stats.MostUsedVehicle = record.Vehicle
		}
	}
	stats.UniqueStaff = len(staff)

	weekAgo := now.AddDate(0, 0, -7)
	for _, record := range all {
		if record.CheckoutTime != nil && !record.CheckoutTime.Before(weekAgo) {
			stats.ThisWeek++
		}
	}

	return stats
}
