package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/fleetops/fleet-dashboard/internal/models"
)

type countingRepository struct {
	fetches        int
	checkoutErr    error
	maintenanceErr error
}

func (r *countingRepository) CheckoutLog(ctx context.Context) ([]models.CheckoutRecord, error) {
	r.fetches++
	if r.checkoutErr != nil {
		return nil, r.checkoutErr
	}
	return []models.CheckoutRecord{{Vehicle: "Van-1"}}, nil
}

func (r *countingRepository) MaintenanceLog(ctx context.Context) ([]models.MaintenanceRecord, error) {
	if r.maintenanceErr != nil {
		return nil, r.maintenanceErr
	}
	return []models.MaintenanceRecord{}, nil
}

func TestSnapshotCacheServesWithinTTL(t *testing.T) {
	repo := &countingRepository{}
	cache := NewSnapshotCache(repo, 60*time.Second)

	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	first := cache.GetOrRefresh(ctx, now)
	second := cache.GetOrRefresh(ctx, now.Add(30*time.Second))
	if repo.fetches != 1 {
		t.Fatalf("expected 1 fetch within TTL, got %d", repo.fetches)
	}
	if first != second {
		t.Errorf("expected the same snapshot within TTL")
	}

	cache.GetOrRefresh(ctx, now.Add(61*time.Second))
	if repo.fetches != 2 {
		t.Fatalf("expected a refetch past TTL, got %d fetches", repo.fetches)
	}
}

func TestSnapshotCacheInvalidateForcesRefetch(t *testing.T) {
	repo := &countingRepository{}
	cache := NewSnapshotCache(repo, 60*time.Second)

	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	cache.GetOrRefresh(ctx, now)
	cache.Invalidate()
	cache.GetOrRefresh(ctx, now)

	if repo.fetches != 2 {
		t.Fatalf("expected invalidation to force a refetch, got %d fetches", repo.fetches)
	}
}

func TestSnapshotCacheDegradesToEmptyTables(t *testing.T) {
	repo := &countingRepository{
		checkoutErr:    &FetchError{Feed: "checkout", Err: context.DeadlineExceeded},
		maintenanceErr: &FetchError{Feed: "maintenance", Err: context.DeadlineExceeded},
	}
	cache := NewSnapshotCache(repo, 60*time.Second)

	snap := cache.GetOrRefresh(context.Background(), time.Now())

	if snap == nil {
		t.Fatal("expected a snapshot even when both feeds fail")
	}
	if len(snap.Checkouts) != 0 || len(snap.Maintenance) != 0 {
		t.Errorf("expected empty tables, got %d checkouts and %d maintenance rows",
			len(snap.Checkouts), len(snap.Maintenance))
	}
	if len(snap.FeedErrors()) != 2 {
		t.Errorf("expected 2 feed diagnostics, got %v", snap.FeedErrors())
	}
}
