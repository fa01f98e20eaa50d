package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/fleetops/fleet-dashboard/internal/models"
)

// Column counts of the two feed schemas. The checkout feed comes in two
// format versions: the older one has 9 columns, the newer one appends a
// 10th free-text program-trip column.
const (
	checkoutMinColumns    = 9
	checkoutProgramColumn = 9
	maintenanceColumns    = 4
)

const fetchTimeout = 15 * time.Second

// FleetRepository contains the methods any feed implementation needs to
// provide the two normalized tables.
type FleetRepository interface {
	CheckoutLog(ctx context.Context) ([]models.CheckoutRecord, error)
	MaintenanceLog(ctx context.Context) ([]models.MaintenanceRecord, error)
}

// SheetRepository reads both tables from published spreadsheet CSV exports
// over plain HTTP GET.
type SheetRepository struct {
	client         *http.Client
	checkoutURL    string
	maintenanceURL string
}

// NewSheetRepository creates a SheetRepository for the two feed URLs. One
// HTTP client with a bounded timeout is shared by both feeds.
func NewSheetRepository(checkoutURL string, maintenanceURL string) *SheetRepository {
	return &SheetRepository{
		client:         &http.Client{Timeout: fetchTimeout},
		checkoutURL:    checkoutURL,
		maintenanceURL: maintenanceURL,
	}
}

// CheckoutLog fetches and normalizes the checkout feed, newest first with
// unparseable checkout times sorted last.
func (repo *SheetRepository) CheckoutLog(ctx context.Context) ([]models.CheckoutRecord, error) {
	rows, err := repo.fetchCSV(ctx, repo.checkoutURL)
	if err != nil {
		return nil, &FetchError{Feed: "checkout", Err: err}
	}
	if len(rows) == 0 {
		return []models.CheckoutRecord{}, nil
	}

	header := rows[0]
	if len(header) < checkoutMinColumns {
		return nil, &FetchError{
			Feed: "checkout",
			Err:  fmt.Errorf("expected at least %d columns, got %d", checkoutMinColumns, len(header)),
		}
	}
	hasProgramColumn := len(header) > checkoutProgramColumn

	records := make([]models.CheckoutRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		row = padRow(row, len(header))
		record := models.CheckoutRecord{
			CheckoutTime: parseTimestamp(row[0]),
			Vehicle:      trimCell(row[1]),
			FirstName:    cellPtr(row[2]),
			LastName:     cellPtr(row[3]),
			Mileage:      parseNumber(row[4]),
			Destination:  cellPtr(row[5]),
			ExpectedBack: cellPtr(row[6]),
			Email:        cellPtr(row[7]),
			SubmissionID: trimCell(row[8]),
		}
		if hasProgramColumn {
			record.ProgramFlagRaw = cellPtr(row[checkoutProgramColumn])
		}
		records = append(records, record)
	}

	// Newest first; rows whose timestamp failed to parse sink to the end.
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := records[i].CheckoutTime, records[j].CheckoutTime
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})

	return records, nil
}

// MaintenanceLog fetches and normalizes the maintenance feed. The table is
// left in feed order; ordering is the status computation's concern.
func (repo *SheetRepository) MaintenanceLog(ctx context.Context) ([]models.MaintenanceRecord, error) {
	rows, err := repo.fetchCSV(ctx, repo.maintenanceURL)
	if err != nil {
		return nil, &FetchError{Feed: "maintenance", Err: err}
	}
	if len(rows) == 0 {
		return []models.MaintenanceRecord{}, nil
	}

	header := rows[0]
	if len(header) < maintenanceColumns {
		return nil, &FetchError{
			Feed: "maintenance",
			Err:  fmt.Errorf("expected %d columns, got %d", maintenanceColumns, len(header)),
		}
	}

	records := make([]models.MaintenanceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		row = padRow(row, maintenanceColumns)
		records = append(records, models.MaintenanceRecord{
			Vehicle:     trimCell(row[0]),
			Date:        parseTimestamp(row[1]),
			Mileage:     parseNumber(row[2]),
			ServiceType: trimCell(row[3]),
		})
	}

	return records, nil
}

// fetchCSV issues an HTTP GET for the feed URL and decodes the body as CSV.
// A non-200 status is an error. The reader tolerates ragged rows and lazy
// quoting since the sheets are edited by hand.
func (repo *SheetRepository) fetchCSV(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := repo.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch feed: %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			// Malformed lines are skipped, not fatal.
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
