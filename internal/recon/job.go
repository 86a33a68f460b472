package recon

import (
	"recond/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// DiscoveryJobArgs is the payload of a background ingest job: one discovery
// record bound to the target and root domain it belongs to. The unique fields
// make River drop repeated submissions of the same agent line within the
// configured period.
type DiscoveryJobArgs struct {
	// TargetID identifies the reconnaissance target.
	TargetID uuid.UUID `json:"targetId" river:"unique"`
	// RootDomain is the name of the root domain the discovery belongs under.
	RootDomain string `json:"rootDomain" river:"unique"`
	// Discovery is the record to fold into the domain tree.
	Discovery domain.Discovery `json:"discovery" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the ingest worker.
func (args DiscoveryJobArgs) Kind() string { return "IngestDiscoveryJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints that drop
// duplicate discovery lines across job states.
func (args DiscoveryJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
