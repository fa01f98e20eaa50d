package sheets

import (
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts seen in form-submitted sheets, tried in order. The first
// two are what the spreadsheet UI produces for form submissions.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
	"1/2/2006",
}

// parseTimestamp coerces a cell to a timestamp. Anything unparseable is nil;
// the row is kept either way. The cells carry naive wall-clock times, so
// they are read in the server's location to stay comparable with time.Now()
// in the window cutoffs and hours-out math.
func parseTimestamp(cell string) *time.Time {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, cell, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// parseNumber coerces a cell to a number, tolerating thousands separators.
// Anything unparseable is nil.
func parseNumber(cell string) *float64 {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if cell == "" {
		return nil
	}
	n, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &n
}

func trimCell(cell string) string {
	return strings.TrimSpace(cell)
}

// cellPtr returns the trimmed cell, or nil for a blank cell.
func cellPtr(cell string) *string {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
