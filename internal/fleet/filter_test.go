package fleet

import (
	"testing"
	"time"

	"github.com/fleetops/fleet-dashboard/internal/models"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func boolPtr(b bool) *bool {
	return &b
}

// sampleCheckouts is newest first, matching the loader's sort order.
func sampleCheckouts(now time.Time) []models.CheckoutRecord {
	return []models.CheckoutRecord{
		{Vehicle: "Van-1", StaffName: "Alice Nguyen", CheckoutTime: timePtr(now.AddDate(0, 0, -1)), IsProgramTrip: true},
		{Vehicle: "Truck-2", StaffName: "Bob Ortiz", CheckoutTime: timePtr(now.AddDate(0, 0, -3))},
		{Vehicle: "Van-1", StaffName: "Alice Nguyen", CheckoutTime: timePtr(now.AddDate(0, 0, -10))},
		{Vehicle: "Truck-2", StaffName: "Carol Lee", CheckoutTime: timePtr(now.AddDate(0, 0, -20)), IsProgramTrip: true},
		{Vehicle: "Van-1", StaffName: "Dan Wu", CheckoutTime: nil},
	}
}

func TestApplyFiltersConjunction(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := sampleCheckouts(now)

	vehicle := "Van-1"
	since := now.AddDate(0, 0, -7)
	got := ApplyFilters(records, models.CheckoutFilters{Vehicle: &vehicle, Since: &since})

	require.Len(t, got, 1)
	require.Equal(t, "Alice Nguyen", got[0].StaffName)
}

func TestApplyFiltersCommute(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := sampleCheckouts(now)

	vehicle := "Truck-2"
	staff := "Carol Lee"
	since := now.AddDate(0, 0, -30)

	oneOrder := ApplyFilters(ApplyFilters(records, models.CheckoutFilters{Vehicle: &vehicle, Since: &since}),
		models.CheckoutFilters{Staff: &staff})
	otherOrder := ApplyFilters(ApplyFilters(records, models.CheckoutFilters{Staff: &staff}),
		models.CheckoutFilters{Vehicle: &vehicle, Since: &since})

	require.Equal(t, oneOrder, otherOrder)
	require.Len(t, oneOrder, 1)
}

func TestApplyFiltersWindowExcludesNilTimes(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := sampleCheckouts(now)

	since := now.AddDate(0, 0, -7)
	got := ApplyFilters(records, models.CheckoutFilters{Since: &since})

	for _, record := range got {
		require.NotNil(t, record.CheckoutTime)
	}
	require.Len(t, got, 2)
}

func TestApplyFiltersProgramFlag(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := sampleCheckouts(now)

	program := ApplyFilters(records, models.CheckoutFilters{ProgramTrip: boolPtr(true)})
	require.Len(t, program, 2)

	nonProgram := ApplyFilters(records, models.CheckoutFilters{ProgramTrip: boolPtr(false)})
	require.Len(t, nonProgram, 3)
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := sampleCheckouts(now)

	vehicle := "Van-1"
	got := ApplyFilters(records, models.CheckoutFilters{Vehicle: &vehicle})

	require.Len(t, got, 3)
	require.Equal(t, "Alice Nguyen", got[0].StaffName)
	require.Equal(t, "Dan Wu", got[2].StaffName)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := sampleCheckouts(now)

	stats := ComputeStats(records, records, now)

	require.Equal(t, 5, stats.TotalCheckouts)
	require.Equal(t, 4, stats.UniqueStaff)
	require.Equal(t, "Van-1", stats.MostUsedVehicle)
	require.Equal(t, 2, stats.ThisWeek)
}

func TestComputeStatsEmptySet(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	stats := ComputeStats(nil, nil, now)

	require.Equal(t, 0, stats.TotalCheckouts)
	require.Equal(t, 0, stats.UniqueStaff)
	require.Equal(t, "N/A", stats.MostUsedVehicle)
	require.Equal(t, 0, stats.ThisWeek)
}

func TestComputeStatsCountsBlankStaffName(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.CheckoutRecord{
		{Vehicle: "Van-1", StaffName: "Alice Nguyen", CheckoutTime: timePtr(now)},
		{Vehicle: "Van-1", StaffName: "", CheckoutTime: timePtr(now)},
		{Vehicle: "Van-1", StaffName: "", CheckoutTime: timePtr(now)},
	}

	stats := ComputeStats(records, records, now)

	// Two distinct values: "Alice Nguyen" and the blank name from rows with
	// both name parts missing.
	require.Equal(t, 2, stats.UniqueStaff)
}

func TestComputeStatsMostUsedTieBreak(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.CheckoutRecord{
		{Vehicle: "Truck-2", CheckoutTime: timePtr(now)},
		{Vehicle: "Van-1", CheckoutTime: timePtr(now)},
		{Vehicle: "Truck-2", CheckoutTime: timePtr(now)},
		{Vehicle: "Van-1", CheckoutTime: timePtr(now)},
	}

	stats := ComputeStats(records, records, now)

	// First encountered in table order wins the tie.
	require.Equal(t, "Truck-2", stats.MostUsedVehicle)
}
