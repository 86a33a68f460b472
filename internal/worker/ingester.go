package worker

import (
	"context"
	"errors"
	"fmt"
	"recond/internal/recon"
	"recond/pkg/domain"
	"recond/pkg/logger"
	"recond/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DiscoveryIngestWorker is a River worker that folds queued discovery records
// into the domain tree. Each job carries exactly one record; the heavy lifting
// (validation, matching, merging) lives in the recon service, the worker only
// maps service errors to River actions.
//
// Error handling: a missing root domain cancels the job since the tree it was
// meant for no longer exists; retrying would never succeed. Everything else is
// returned so River retries up to the job's MaxAttempts.
type DiscoveryIngestWorker struct {
	river.WorkerDefaults[recon.DiscoveryJobArgs]

	recon recon.Recon
}

// NewDiscoveryIngestWorker constructs a DiscoveryIngestWorker backed by the
// provided recon service.
func NewDiscoveryIngestWorker(r recon.Recon) *DiscoveryIngestWorker {
	return &DiscoveryIngestWorker{recon: r}
}

// Work ingests the single discovery record carried by the job.
func (w *DiscoveryIngestWorker) Work(ctx context.Context, job *river.Job[recon.DiscoveryJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("rootDomain", job.Args.RootDomain),
		zap.String("subdomain", job.Args.Discovery.Subdomain))

	err := w.recon.IngestDiscovery(ctx,
		domain.TargetID(job.Args.TargetID),
		job.Args.RootDomain,
		job.Args.Discovery)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			// the root domain was deleted after the job was enqueued
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error ingesting discovery", zap.Error(err))

		return fmt.Errorf("could not ingest discovery: %w", err)
	}

	logger.Info(ctx, "discovery ingested")

	return nil
}
