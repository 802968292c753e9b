package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"digiwork-hub.com/digiwork-hub/internal/constants"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

// Reaper removes stored files that no row references any more. Files
// younger than the grace period are left alone so an upload whose row is
// still being committed is never touched.
type Reaper struct {
	store *repository.Store
	files *storage.FileStore
	grace time.Duration
	now   func() time.Time
	cron  *cron.Cron
}

func NewReaper(store *repository.Store, files *storage.FileStore, grace time.Duration) *Reaper {
	return &Reaper{store: store, files: files, grace: grace, now: time.Now}
}

// Sweep runs one pass and returns the number of files removed.
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	referenced, err := r.store.ReferencedPaths(ctx)
	if err != nil {
		return 0, err
	}
	referenced.Add(constants.DeletedUserImage)

	cutoff := r.now().Add(-r.grace)
	removed := 0
	for _, dir := range []string{constants.AttachmentsDir, constants.ImagesDir} {
		candidates, err := r.files.ListOlderThan(dir, cutoff)
		if err != nil {
			return removed, err
		}
		for _, p := range candidates {
			if referenced.Contains(p) {
				continue
			}
			if err := r.files.Remove(p); err != nil {
				zap.L().Warn("orphan removal failed", zap.String("path", p), zap.Error(err))
				continue
			}
			removed++
		}
	}
	return removed, nil
}

// Start schedules Sweep with a cron spec such as "@every 1h".
func (r *Reaper) Start(spec string) error {
	r.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := r.cron.AddFunc(spec, func() {
		n, err := r.Sweep(context.Background())
		if err != nil {
			zap.L().Error("orphan sweep failed", zap.Error(err))
			return
		}
		zap.L().Info("orphan sweep finished", zap.Int("removed", n))
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop waits for a running sweep until ctx expires.
func (r *Reaper) Stop(ctx context.Context) {
	if r.cron == nil {
		return
	}
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
		zap.L().Warn("orphan sweep still running at shutdown")
	}
}
