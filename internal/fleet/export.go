package fleet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fleetops/fleet-dashboard/internal/models"
)

// exportTimeLayout is how checkout timestamps appear in the export.
const exportTimeLayout = "2006-01-02 15:04"

// ExportHeader is the column set of the program-trip export.
var ExportHeader = []string{"Date", "Vehicle", "Staff", "Destination", "Mileage"}

// ProgramTrips selects the program-trip rows whose checkout time falls in
// [start, end], with end treated as end-of-day inclusive. Rows without a
// parseable checkout time never qualify.
func ProgramTrips(records []models.CheckoutRecord, start, end time.Time) []models.CheckoutRecord {
	cutoff := end.AddDate(0, 0, 1)
	out := make([]models.CheckoutRecord, 0)
	for _, record := range records {
		if !record.IsProgramTrip || record.CheckoutTime == nil {
			continue
		}
		t := *record.CheckoutTime
		if t.Before(start) || !t.Before(cutoff) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// WriteTripsCSV writes the export rows for an audit submission.
func WriteTripsCSV(w io.Writer, trips []models.CheckoutRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return err
	}
	for _, trip := range trips {
		row := []string{
			trip.CheckoutTime.Format(exportTimeLayout),
			trip.Vehicle,
			trip.StaffName,
			"",
			"",
		}
		if trip.Destination != nil {
			row[3] = *trip.Destination
		}
		if trip.Mileage != nil {
			row[4] = strconv.FormatFloat(*trip.Mileage, 'f', -1, 64)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportFilename embeds the selected range so downloads stay distinguishable.
func ExportFilename(start, end time.Time) string {
	return fmt.Sprintf("program_trips_%s_%s.csv", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
