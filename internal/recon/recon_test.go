package recon_test

import (
	"context"
	"errors"
	"recond/internal/recon"
	"testing"
	"time"

	mockstorage "recond/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/mock/gomock"

	"recond/pkg/domain"
	"recond/pkg/serrors"
	"recond/pkg/storage"
)

const rootName = "example.com"

func newTestRecon(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, recon.Recon) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := recon.New(st, recon.Options{MaxAttempts: 3, UniqueJobPeriod: time.Hour})

	return ctrl, st, r
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestRecon_ReconcileTarget_PrunesAndStores(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	dropped := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: "a.com"}
	kept := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: "b.com"}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RootDomainsByTarget(gomock.Any(), targetID).
			Return([]domain.RootDomain{dropped, kept}, nil)

		// a.com is gone from the observed list: cascade in dependency order
		gomock.InOrder(
			tx.EXPECT().DeleteSubdomainsByRootDomain(gomock.Any(), dropped.ID).Return(int64(2), nil),
			tx.EXPECT().DeleteNote(gomock.Any(), dropped.ID).Return(nil),
			tx.EXPECT().DeleteRootDomain(gomock.Any(), dropped.ID).Return(nil),
		)

		tx.EXPECT().StoreRootDomains(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, roots ...domain.RootDomain) ([]domain.RootDomain, error) {
				if len(roots) != 1 || roots[0].Name != "c.com" {
					t.Fatalf("expected a single new c.com, got %v", roots)
				}
				if roots[0].TargetID != targetID {
					t.Fatalf("expected new root bound to target")
				}
				roots[0].ID = domain.RootDomainID(uuid.New())

				return roots, nil
			},
		)
	})

	result, err := r.ReconcileTarget(context.Background(), targetID, []string{"b.com", "c.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 root domains, got %d", len(result))
	}
	if result[0].ID != kept.ID || result[0].Name != "b.com" {
		t.Fatalf("expected surviving b.com first, got %+v", result[0])
	}
	if result[1].Name != "c.com" || result[1].ID == (domain.RootDomainID{}) {
		t.Fatalf("expected stored c.com with identity, got %+v", result[1])
	}
}

func TestRecon_ReconcileTarget_Cancelled(t *testing.T) {
	_, _, r := newTestRecon(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ReconcileTarget(ctx, domain.TargetID(uuid.New()), []string{"a.com"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRecon_IngestDiscovery_CreatesSubdomain(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	root := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), TargetID: targetID, Name: rootName}
	disc := domain.Discovery{
		Subdomain: "api.example.com",
		Services:  []domain.Service{{Protocol: "tcp", Port: 443, Name: "https"}},
		Tags:      []string{"prod"},
		Tool:      "portscan",
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RootDomainByName(gomock.Any(), targetID, rootName).Return(&root, nil)
		tx.EXPECT().SubdomainByNameForUpdate(gomock.Any(), root.ID, disc.Subdomain).Return(nil, nil)
		tx.EXPECT().AddSubdomain(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub domain.Subdomain) (*domain.Subdomain, bool, error) {
				if sub.Name != disc.Subdomain || sub.RootDomainID != root.ID {
					t.Fatalf("unexpected subdomain insert: %+v", sub)
				}
				sub.ID = domain.SubdomainID(uuid.New())

				return &sub, true, nil
			},
		)
		tx.EXPECT().UpdateSubdomain(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.SubdomainID, updates storage.SubdomainUpdates) (*domain.Subdomain, error) {
				if len(updates.Services) != 1 || updates.Services[0].Port != 443 {
					t.Fatalf("expected merged services, got %v", updates.Services)
				}
				if len(updates.Tags) != 1 || updates.Tags[0] != "prod" {
					t.Fatalf("expected merged tags, got %v", updates.Tags)
				}

				return &domain.Subdomain{Name: disc.Subdomain, Services: updates.Services, Tags: updates.Tags}, nil
			},
		)
	})

	if err := r.IngestDiscovery(context.Background(), targetID, rootName, disc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecon_IngestDiscovery_InvalidHostnameIsDropped(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	root := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: rootName}

	// only the root lookup happens; the record itself never reaches storage
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RootDomainByName(gomock.Any(), targetID, rootName).Return(&root, nil)
	})

	err := r.IngestDiscovery(context.Background(), targetID, rootName,
		domain.Discovery{Subdomain: "bad_host.example.com", Tool: "dnsbrute"})
	if err != nil {
		t.Fatalf("expected invalid hostname to be dropped silently, got %v", err)
	}
}

func TestRecon_IngestDiscovery_RepeatedRecordSkipsWrite(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	root := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: rootName}
	existing := domain.Subdomain{
		ID:           domain.SubdomainID(uuid.New()),
		RootDomainID: root.ID,
		Name:         "api.example.com",
		Services:     []domain.Service{{Protocol: "tcp", Port: 443, Name: "https"}},
		Tags:         []string{"prod"},
	}

	// the record carries nothing new, so no UpdateSubdomain is expected
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RootDomainByName(gomock.Any(), targetID, rootName).Return(&root, nil)
		tx.EXPECT().SubdomainByNameForUpdate(gomock.Any(), root.ID, existing.Name).Return(&existing, nil)
	})

	err := r.IngestDiscovery(context.Background(), targetID, rootName, domain.Discovery{
		Subdomain: existing.Name,
		Services:  []domain.Service{{Protocol: "tcp", Port: 443}},
		Tags:      []string{"PROD"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecon_IngestDiscovery_RootDomainNotFound(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RootDomainByName(gomock.Any(), targetID, rootName).Return(nil, nil)
	})

	err := r.IngestDiscovery(context.Background(), targetID, rootName,
		domain.Discovery{Subdomain: "api.example.com"})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecon_IngestDiscoveries_SkipsFailingRecord(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	root := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: rootName}
	discs := []domain.Discovery{
		{Subdomain: "broken.example.com", Tags: []string{"a"}},
		{Subdomain: "ok.example.com", Tags: []string{"b"}},
		{Subdomain: "bad_host.example.com", Tags: []string{"c"}},
	}

	st.EXPECT().RootDomainByName(gomock.Any(), targetID, rootName).Return(&root, nil)

	// first record fails its transaction and is skipped
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("commit failed"))
	// second record still runs
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubdomainByNameForUpdate(gomock.Any(), root.ID, "ok.example.com").Return(nil, nil)
		tx.EXPECT().AddSubdomain(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub domain.Subdomain) (*domain.Subdomain, bool, error) {
				sub.ID = domain.SubdomainID(uuid.New())

				return &sub, true, nil
			},
		)
		tx.EXPECT().UpdateSubdomain(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.SubdomainID, updates storage.SubdomainUpdates) (*domain.Subdomain, error) {
				return &domain.Subdomain{Name: "ok.example.com", Tags: updates.Tags}, nil
			},
		)
	})
	// third record has an invalid hostname: discarded inside its transaction
	expectWithTx(t, ctrl, st, nil)

	ingested, err := r.IngestDiscoveries(context.Background(), targetID, rootName, discs)
	if err != nil {
		t.Fatalf("expected batch to survive one broken record, got %v", err)
	}
	if ingested != 1 {
		t.Fatalf("expected only the applied record counted, got %d", ingested)
	}
}

func TestRecon_IngestDiscoveries_FailedRecordDoesNotTaintNext(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	root := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: rootName}
	existing := domain.Subdomain{
		ID:           domain.SubdomainID(uuid.New()),
		RootDomainID: root.ID,
		Name:         "api.example.com",
	}
	// two records about the same host; the first one's transaction rolls back
	discs := []domain.Discovery{
		{Subdomain: existing.Name, Tags: []string{"a"}},
		{Subdomain: existing.Name, Tags: []string{"b"}},
	}

	st.EXPECT().RootDomainByName(gomock.Any(), targetID, rootName).Return(&root, nil)

	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("commit failed"))
	// the second record must re-read the stored row instead of reusing state
	// from the rolled-back transaction
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubdomainByNameForUpdate(gomock.Any(), root.ID, existing.Name).Return(&existing, nil)
		tx.EXPECT().UpdateSubdomain(gomock.Any(), existing.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.SubdomainID, updates storage.SubdomainUpdates) (*domain.Subdomain, error) {
				if len(updates.Tags) != 1 || updates.Tags[0] != "b" {
					t.Fatalf("expected only the second record's tags, got %v", updates.Tags)
				}

				return &domain.Subdomain{Name: existing.Name, Tags: updates.Tags}, nil
			},
		)
	})

	ingested, err := r.IngestDiscoveries(context.Background(), targetID, rootName, discs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ingested != 1 {
		t.Fatalf("expected 1 ingested record, got %d", ingested)
	}
}

func TestRecon_IngestDiscoveries_Cancelled(t *testing.T) {
	_, _, r := newTestRecon(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.IngestDiscoveries(ctx, domain.TargetID(uuid.New()), rootName,
		[]domain.Discovery{{Subdomain: "api.example.com"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRecon_RootDomains_LoadsTreeInOneTx(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	root := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), TargetID: targetID, Name: rootName}
	sub := domain.Subdomain{ID: domain.SubdomainID(uuid.New()), RootDomainID: root.ID, Name: "api.example.com"}

	// both reads happen on the same transaction handle, so a concurrent
	// reconcile cannot interleave between them
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RootDomainsByTarget(gomock.Any(), targetID).
			Return([]domain.RootDomain{root}, nil)
		tx.EXPECT().SubdomainsByRootDomain(gomock.Any(), root.ID).
			Return([]domain.Subdomain{sub}, nil)
	})

	roots, err := r.RootDomains(context.Background(), targetID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 1 || len(roots[0].Subdomains) != 1 {
		t.Fatalf("expected one root with one subdomain, got %+v", roots)
	}
	if roots[0].Subdomains[0].Name != "api.example.com" {
		t.Fatalf("unexpected subdomain: %+v", roots[0].Subdomains[0])
	}
}

func TestRecon_EnqueueDiscoveries_FiltersAndCounts(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	discs := []domain.Discovery{
		{Subdomain: "api.example.com", Tool: "dnsbrute"},
		{Subdomain: "in valid.example.com", Tool: "dnsbrute"},
		{Subdomain: "mail.example.com", Tool: "dnsbrute"},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// valid records become jobs; the second job is a known duplicate
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				jobArgs, ok := args.(recon.DiscoveryJobArgs)
				if !ok {
					t.Fatalf("expected DiscoveryJobArgs, got %T", args)
				}
				if jobArgs.RootDomain != rootName {
					t.Fatalf("expected job bound to %q, got %q", rootName, jobArgs.RootDomain)
				}

				return true, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
	})

	enqueued, err := r.EnqueueDiscoveries(context.Background(), targetID, rootName, discs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enqueued != 1 {
		t.Fatalf("expected 1 enqueued job, got %d", enqueued)
	}
}

func TestRecon_UploadSubdomains_MostSpecificRootWins(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	broad := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: "example.com"}
	narrow := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: "shop.example.com"}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RootDomainsByTarget(gomock.Any(), targetID).
			Return([]domain.RootDomain{broad, narrow}, nil)

		tx.EXPECT().AddSubdomain(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub domain.Subdomain) (*domain.Subdomain, bool, error) {
				if sub.Name != "api.shop.example.com" || sub.RootDomainID != narrow.ID {
					t.Fatalf("expected api.shop.example.com under shop.example.com, got %+v", sub)
				}
				sub.ID = domain.SubdomainID(uuid.New())

				return &sub, true, nil
			},
		)
		// www.example.com already exists under the broad root
		tx.EXPECT().AddSubdomain(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub domain.Subdomain) (*domain.Subdomain, bool, error) {
				if sub.Name != "www.example.com" || sub.RootDomainID != broad.ID {
					t.Fatalf("expected www.example.com under example.com, got %+v", sub)
				}
				sub.ID = domain.SubdomainID(uuid.New())

				return &sub, false, nil
			},
		)
	})

	created, err := r.UploadSubdomains(context.Background(), targetID, []string{
		"api.shop.example.com",
		"bad_host.example.com",
		"stray.other.net",
		"www.example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 || created[0].Name != "api.shop.example.com" {
		t.Fatalf("expected only api.shop.example.com created, got %v", created)
	}
}

func TestRecon_DeleteRootDomains_Cascades(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())
	root := domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: rootName}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().RootDomainByName(gomock.Any(), targetID, rootName).Return(&root, nil),
			tx.EXPECT().DeleteSubdomainsByRootDomain(gomock.Any(), root.ID).Return(int64(3), nil),
			tx.EXPECT().DeleteNote(gomock.Any(), root.ID).Return(nil),
			tx.EXPECT().DeleteRootDomain(gomock.Any(), root.ID).Return(nil),
		)
	})

	if err := r.DeleteRootDomains(context.Background(), targetID, []string{rootName}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecon_DeleteRootDomains_NotFound(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RootDomainByName(gomock.Any(), targetID, "gone.com").Return(nil, nil)
	})

	err := r.DeleteRootDomains(context.Background(), targetID, []string{"gone.com"})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecon_DeleteRootDomains_PropagatesTxFailure(t *testing.T) {
	_, st, r := newTestRecon(t)

	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		Return(errors.Join(errors.New("delete failed"), errors.New("could not rollback tx")))

	err := r.DeleteRootDomains(context.Background(), domain.TargetID(uuid.New()), []string{rootName})
	if !errors.Is(err, serrors.ErrTxFailure) {
		t.Fatalf("expected transaction failure, got %v", err)
	}
}

func TestRecon_DeleteSubdomainsOf(t *testing.T) {
	ctrl, st, r := newTestRecon(t)

	targetID := domain.TargetID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteSubdomainsByTarget(gomock.Any(), targetID).Return(int64(7), nil)
	})

	deleted, err := r.DeleteSubdomainsOf(context.Background(), targetID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 7 {
		t.Fatalf("expected 7 deleted subdomains, got %d", deleted)
	}
}
