package fleet

import (
	"strings"

	"github.com/fleetops/fleet-dashboard/internal/models"
)

// programFlagValues are the affirmative spellings staff have used in the
// free-text program-trip column. Matching is against the whole trimmed,
// lowercased cell, never a substring.
var programFlagValues = map[string]bool{
	"yes":              true,
	"true":             true,
	"uc program trip":  true,
	"uc program trip?": true,
	"checked":          true,
	"1":                true,
	"x":                true,
}

// StaffName combines the two name parts, treating a missing part as empty.
// Both parts missing yields the empty string, not an error.
func StaffName(first, last *string) string {
	var name strings.Builder
	if first != nil {
		name.WriteString(*first)
	}
	name.WriteString(" ")
	if last != nil {
		name.WriteString(*last)
	}
	return strings.TrimSpace(name.String())
}

// IsProgramTrip classifies the raw program-flag cell. A nil cell (older feed
// format without the column, or a blank cell) is never a program trip.
func IsProgramTrip(raw *string) bool {
	if raw == nil {
		return false
	}
	return programFlagValues[strings.ToLower(strings.TrimSpace(*raw))]
}

// Derive returns a copy of the checkout table with the derived fields filled
// in. The input is never written: the snapshot it comes from is shared by
// concurrent render cycles.
func Derive(records []models.CheckoutRecord) []models.CheckoutRecord {
	derived := make([]models.CheckoutRecord, len(records))
	for i, record := range records {
		record.StaffName = StaffName(record.FirstName, record.LastName)
		record.IsProgramTrip = IsProgramTrip(record.ProgramFlagRaw)
		derived[i] = record
	}
	return derived
}
