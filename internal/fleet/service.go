package fleet

import (
	"context"
	"time"

	"github.com/fleetops/fleet-dashboard/internal/models"
	"github.com/fleetops/fleet-dashboard/internal/sheets"
)

// SnapshotProvider is what the service needs from the caching layer.
type SnapshotProvider interface {
	GetOrRefresh(ctx context.Context, now time.Time) *sheets.Snapshot
	Invalidate()
}

// Service computes every dashboard view from the current snapshot. All
// derived fields are recomputed per call; nothing is kept between render
// cycles beyond the snapshot cache itself.
type Service struct {
	snapshots SnapshotProvider
}

func NewService(snapshots SnapshotProvider) *Service {
	return &Service{snapshots: snapshots}
}

// HistoryResult is a filtered slice of the checkout table plus its summary
// metrics.
type HistoryResult struct {
	Records []models.CheckoutRecord `json:"records"`
	Stats   models.CheckoutStats    `json:"stats"`
}

// load returns the current snapshot plus a derived copy of its checkout
// table. The snapshot itself is shared across requests and must stay
// read-only here.
func (s *Service) load(ctx context.Context, now time.Time) (*sheets.Snapshot, []models.CheckoutRecord) {
	snap := s.snapshots.GetOrRefresh(ctx, now)
	return snap, Derive(snap.Checkouts)
}

// Refresh drops the cached snapshot so the next view refetches both feeds.
func (s *Service) Refresh() {
	s.snapshots.Invalidate()
}

// FeedHealth reports when the current snapshot was fetched and any feed
// diagnostics from that fetch.
func (s *Service) FeedHealth(ctx context.Context, now time.Time) (time.Time, []string) {
	snap := s.snapshots.GetOrRefresh(ctx, now)
	return snap.FetchedAt, snap.FeedErrors()
}

// CurrentStatus builds one status card per vehicle, in order of each
// vehicle's newest checkout. The oil status uses the vehicle's most recent
// recorded mileage.
func (s *Service) CurrentStatus(ctx context.Context, now time.Time) []models.VehicleStatus {
	snap, checkouts := s.load(ctx, now)

	statuses := make([]models.VehicleStatus, 0)
	seen := make(map[string]bool)
	for _, record := range checkouts {
		if record.Vehicle == "" || seen[record.Vehicle] {
			continue
		}
		seen[record.Vehicle] = true

		status := models.VehicleStatus{
			Vehicle:      record.Vehicle,
			CheckoutTime: record.CheckoutTime,
			StaffName:    record.StaffName,
			Destination:  record.Destination,
			ExpectedBack: record.ExpectedBack,
		}
		if record.CheckoutTime != nil {
			hours := now.Sub(*record.CheckoutTime).Hours()
			status.HoursOut = &hours
		}

		oil := ComputeOilStatus(record.Vehicle, currentMileage(checkouts, record.Vehicle), snap.Maintenance)
		status.OilStatus = &oil

		statuses = append(statuses, status)
	}
	return statuses
}

// CheckoutHistory applies the filters and summarizes the result.
func (s *Service) CheckoutHistory(ctx context.Context, now time.Time, filters models.CheckoutFilters) HistoryResult {
	_, checkouts := s.load(ctx, now)
	filtered := ApplyFilters(checkouts, filters)
	return HistoryResult{
		Records: filtered,
		Stats:   ComputeStats(filtered, checkouts, now),
	}
}

// OilStatus computes the status for one vehicle. When mileage is nil the
// vehicle's most recent recorded mileage from the checkout table is used.
func (s *Service) OilStatus(ctx context.Context, now time.Time, vehicle string, mileage *float64) models.OilChangeStatus {
	snap, checkouts := s.load(ctx, now)
	if mileage == nil {
		mileage = currentMileage(checkouts, vehicle)
	}
	return ComputeOilStatus(vehicle, mileage, snap.Maintenance)
}

// ProgramTripExport selects the export subset for [start, end].
func (s *Service) ProgramTripExport(ctx context.Context, now time.Time, start, end time.Time) []models.CheckoutRecord {
	_, checkouts := s.load(ctx, now)
	return ProgramTrips(checkouts, start, end)
}

// currentMileage is the newest parseable odometer reading for the vehicle.
// The table is newest first, so the first hit wins.
func currentMileage(records []models.CheckoutRecord, vehicle string) *float64 {
	for _, record := range records {
		if record.Vehicle == vehicle && record.Mileage != nil {
			return record.Mileage
		}
	}
	return nil
}
