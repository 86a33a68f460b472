package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"recond/internal/recon"
	mockrecon "recond/internal/recon/mock"
	"recond/internal/worker"
	"recond/pkg/domain"
	"recond/pkg/logger"
	"recond/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, targetID uuid.UUID, rootDomain string, disc domain.Discovery) *river.Job[recon.DiscoveryJobArgs] {
	return &river.Job[recon.DiscoveryJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args: recon.DiscoveryJobArgs{
			TargetID:   targetID,
			RootDomain: rootDomain,
			Discovery:  disc,
		},
	}
}

func TestDiscoveryIngestWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockrecon.NewMockRecon(ctrl)
	w := worker.NewDiscoveryIngestWorker(mock)

	targetID := uuid.New()
	disc := domain.Discovery{Subdomain: "api.example.com", Tool: "dnsbrute"}
	mock.EXPECT().
		IngestDiscovery(gomock.Any(), domain.TargetID(targetID), "example.com", disc).
		Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, targetID, "example.com", disc)))
}

func TestDiscoveryIngestWorker_Work_MissingRootCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockrecon.NewMockRecon(ctrl)
	w := worker.NewDiscoveryIngestWorker(mock)

	targetID := uuid.New()
	disc := domain.Discovery{Subdomain: "api.example.com"}
	mock.EXPECT().
		IngestDiscovery(gomock.Any(), gomock.Any(), "gone.com", disc).
		Return(serrors.With(serrors.ErrNotFound, "root domain not found"))

	err := w.Work(context.Background(), makeJob(2, targetID, "gone.com", disc))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestDiscoveryIngestWorker_Work_OtherErrorsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockrecon.NewMockRecon(ctrl)
	w := worker.NewDiscoveryIngestWorker(mock)

	targetID := uuid.New()
	disc := domain.Discovery{Subdomain: "api.example.com"}
	mock.EXPECT().
		IngestDiscovery(gomock.Any(), gomock.Any(), "example.com", disc).
		Return(serrors.Wrap(serrors.ErrTxFailure, errors.New("commit failed"), "could not ingest discovery"))

	err := w.Work(context.Background(), makeJob(3, targetID, "example.com", disc))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}
