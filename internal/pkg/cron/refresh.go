package cron

import (
	"context"
	"time"
)

// Loader re-fetches the console's collections.
type Loader interface {
	Load(ctx context.Context) error
}

// RefreshJobs keeps the console store in step with edits made to the Data
// Store by other clients.
type RefreshJobs struct {
	loader   Loader
	interval time.Duration
}

func NewRefreshJobs(loader Loader, interval time.Duration) *RefreshJobs {
	return &RefreshJobs{
		loader:   loader,
		interval: interval,
	}
}

// RegisterJobs adds the refresh job. The initial load happens at startup, so
// the first tick is skipped.
func (j *RefreshJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:      "refresh_collections",
		Interval:  j.interval,
		Fn:        j.Refresh,
		SkipFirst: true,
	})
}

func (j *RefreshJobs) Refresh(ctx context.Context) error {
	return j.loader.Load(ctx)
}
