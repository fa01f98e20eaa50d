package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/fleetops/fleet-dashboard/internal/logging"
	"github.com/fleetops/fleet-dashboard/internal/models"
	"golang.org/x/sync/errgroup"
)

// DefaultTTL is how long a snapshot is served before the feeds are fetched
// again.
const DefaultTTL = 60 * time.Second

// Snapshot holds both normalized tables from one refresh. A feed that failed
// to load contributes an empty table and keeps its error here so callers can
// tell "no data" from "nothing recorded".
type Snapshot struct {
	Checkouts      []models.CheckoutRecord
	Maintenance    []models.MaintenanceRecord
	FetchedAt      time.Time
	CheckoutErr    error
	MaintenanceErr error
}

// FeedErrors returns the diagnostics for whichever feeds failed on the last
// refresh, empty when both loaded cleanly.
func (s *Snapshot) FeedErrors() []string {
	var errs []string
	if s.CheckoutErr != nil {
		errs = append(errs, s.CheckoutErr.Error())
	}
	if s.MaintenanceErr != nil {
		errs = append(errs, s.MaintenanceErr.Error())
	}
	return errs
}

// SnapshotCache owns the current snapshot and its time-to-live. Reads within
// the TTL are served from memory; a read past the TTL triggers one
// synchronous refresh. Invalidate forces the next read to refetch.
type SnapshotCache struct {
	mu      sync.Mutex
	repo    FleetRepository
	ttl     time.Duration
	current *Snapshot
}

func NewSnapshotCache(repo FleetRepository, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SnapshotCache{
		repo: repo,
		ttl:  ttl,
	}
}

// GetOrRefresh returns the cached snapshot when it is still fresh at `now`,
// refreshing both feeds otherwise. It never returns nil and never fails:
// fetch errors degrade the affected table to empty.
func (c *SnapshotCache) GetOrRefresh(ctx context.Context, now time.Time) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && now.Sub(c.current.FetchedAt) < c.ttl {
		return c.current
	}

	c.current = c.refresh(ctx, now)
	return c.current
}

// Invalidate drops the cached snapshot so the next read refetches.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

func (c *SnapshotCache) refresh(ctx context.Context, now time.Time) *Snapshot {
	snap := &Snapshot{FetchedAt: now}

	// Both feeds load in parallel within this one synchronous refresh. A
	// failed feed must not cancel the other, so errors are kept per feed
	// instead of returned through the group.
	var g errgroup.Group
	g.Go(func() error {
		snap.Checkouts, snap.CheckoutErr = c.repo.CheckoutLog(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Maintenance, snap.MaintenanceErr = c.repo.MaintenanceLog(ctx)
		return nil
	})
	g.Wait()

	logger := logging.GetLogger()
	if snap.CheckoutErr != nil {
		logger.Error("checkout feed unavailable, serving empty table: %v", snap.CheckoutErr)
		snap.Checkouts = []models.CheckoutRecord{}
	}
	if snap.MaintenanceErr != nil {
		logger.Error("maintenance feed unavailable, serving empty table: %v", snap.MaintenanceErr)
		snap.Maintenance = []models.MaintenanceRecord{}
	}

	return snap
}
