package recon

import (
	"context"
	"errors"
	"fmt"
	"recond/internal/config"
	"recond/pkg/domain"
	"recond/pkg/hostname"
	"recond/pkg/logger"
	"recond/pkg/metrics"
	"recond/pkg/serrors"
	"recond/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure how discovery jobs are enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing an ingest job before marking it failed.
	MaxAttempts int
	// UniqueJobPeriod is the duration during which an identical discovery line
	// is considered a duplicate job and skipped on enqueue.
	UniqueJobPeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:     cfg.Ingest.MaxAttempts,
		UniqueJobPeriod: cfg.Ingest.UniqueJobPeriod,
	}
}

// recon is the concrete implementation of the Recon interface. It coordinates
// the domain tree logic with the storage layer and job enqueueing.
type recon struct {
	options   Options
	storage   storage.Storage
	validator HostnameValidator
	merger    SubdomainMerger
}

// New creates a new Recon instance backed by the provided storage, using the
// default hostname validator and discovery merger.
func New(storage storage.Storage, options Options) Recon {
	return NewWithCollaborators(storage, options, NewHostnameValidator(), NewMerger())
}

// NewWithCollaborators creates a Recon instance with explicit validator and
// merger implementations.
func NewWithCollaborators(storage storage.Storage,
	options Options,
	validator HostnameValidator,
	merger SubdomainMerger) Recon {
	return &recon{
		options:   options,
		storage:   storage,
		validator: validator,
		merger:    merger,
	}
}

// txError classifies a failed transactional operation. Cancellation keeps its
// context error identity; everything else coming out of storage is a
// transaction failure.
func txError(err error, msg string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	return serrors.Wrap(serrors.ErrTxFailure, err, "%s", msg)
}

// ReconcileTarget loads the target's stored root domains, reconciles them with
// the observed name list and persists the outcome in one transaction: removed
// roots are pruned with their subdomains and note, new names are inserted.
func (r recon) ReconcileTarget(ctx context.Context,
	targetID domain.TargetID,
	observed []string) ([]domain.RootDomain, error) {
	// cancellation is honored before the transaction begins; once begun, an
	// in-flight commit is never interrupted
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reconciliation cancelled: %w", err)
	}

	var result []domain.RootDomain
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.RootDomainsByTarget(ctx, targetID)
		if err != nil {
			return fmt.Errorf("could not load root domains: %w", err)
		}

		reconciled, err := ReconcileRootDomains(ctx, current, observed)
		if err != nil {
			return err
		}

		survivors := make(map[domain.RootDomainID]struct{}, len(reconciled))
		for _, root := range reconciled {
			if root.ID != (domain.RootDomainID{}) {
				survivors[root.ID] = struct{}{}
			}
		}

		for _, root := range current {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("reconciliation cancelled: %w", err)
			}
			if _, ok := survivors[root.ID]; ok {
				continue
			}

			if _, err := tx.DeleteSubdomainsByRootDomain(ctx, root.ID); err != nil {
				return fmt.Errorf("could not prune subdomains of %q: %w", root.Name, err)
			}
			if err := tx.DeleteNote(ctx, root.ID); err != nil {
				return fmt.Errorf("could not prune note of %q: %w", root.Name, err)
			}
			if err := tx.DeleteRootDomain(ctx, root.ID); err != nil {
				return fmt.Errorf("could not prune root domain %q: %w", root.Name, err)
			}

			logger.Info(ctx, "pruned root domain", zap.String("name", root.Name))
		}

		fresh := make([]domain.RootDomain, 0, len(reconciled))
		for _, root := range reconciled {
			if root.ID == (domain.RootDomainID{}) {
				root.TargetID = targetID
				fresh = append(fresh, root)
			}
		}

		stored, err := tx.StoreRootDomains(ctx, fresh...)
		if err != nil {
			return fmt.Errorf("could not store new root domains: %w", err)
		}

		// stitch the stored rows back into the reconciled order
		storedByName := make(map[string]domain.RootDomain, len(stored))
		for _, root := range stored {
			storedByName[root.Name] = root
		}
		result = make([]domain.RootDomain, 0, len(reconciled))
		for _, root := range reconciled {
			if root.ID == (domain.RootDomainID{}) {
				root = storedByName[root.Name]
			}
			result = append(result, root)
		}

		return nil
	}); err != nil {
		return nil, txError(err, "could not reconcile target")
	}

	return result, nil
}

// RootDomains lists the root domains of a target with their subdomain
// collections loaded. The reads run in one transaction so a concurrent
// reconcile cannot interleave and pair a root with a half-pruned tree.
func (r recon) RootDomains(ctx context.Context,
	targetID domain.TargetID) ([]domain.RootDomain, error) {
	var roots []domain.RootDomain
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		roots, err = tx.RootDomainsByTarget(ctx, targetID)
		if err != nil {
			return fmt.Errorf("could not load root domains: %w", err)
		}

		for i := range roots {
			subs, err := tx.SubdomainsByRootDomain(ctx, roots[i].ID)
			if err != nil {
				return fmt.Errorf("could not load subdomains of %q: %w", roots[i].Name, err)
			}
			roots[i].Subdomains = subs
		}

		return nil
	}); err != nil {
		return nil, txError(err, "could not list root domains")
	}

	return roots, nil
}

// IngestDiscovery folds one discovery record into the tree in its own
// transaction.
func (r recon) IngestDiscovery(ctx context.Context,
	targetID domain.TargetID,
	rootDomainName string,
	disc domain.Discovery) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ingest cancelled: %w", err)
	}

	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		root, err := tx.RootDomainByName(ctx, targetID, rootDomainName)
		if err != nil {
			return fmt.Errorf("could not load root domain: %w", err)
		}
		if root == nil {
			return serrors.With(serrors.ErrNotFound, "root domain %q not found", rootDomainName)
		}

		_, err = r.ingestInto(ctx, tx, *root, disc)

		return err
	}); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return err
		}

		return txError(err, "could not ingest discovery")
	}

	return nil
}

// IngestDiscoveries folds a batch of records, one transaction per record so a
// bad line or a failed commit never takes the rest of the run down with it.
// Returns how many records were actually folded into the tree; discarded and
// failed records are not counted.
func (r recon) IngestDiscoveries(ctx context.Context,
	targetID domain.TargetID,
	rootDomainName string,
	discs []domain.Discovery) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("ingest cancelled: %w", err)
	}

	root, err := r.storage.RootDomainByName(ctx, targetID, rootDomainName)
	if err != nil {
		return 0, fmt.Errorf("could not load root domain: %w", err)
	}
	if root == nil {
		return 0, serrors.With(serrors.ErrNotFound, "root domain %q not found", rootDomainName)
	}

	ingested := 0
	for i, disc := range discs {
		if err := ctx.Err(); err != nil {
			return ingested, fmt.Errorf("ingest cancelled after %d records: %w", i, err)
		}

		var touched *domain.Subdomain
		if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			var err error
			touched, err = r.ingestInto(ctx, tx, *root, disc)

			return err
		}); err != nil {
			// best-effort path: one broken record must not abort the run
			logger.Warn(ctx, "skipping discovery record",
				zap.String("subdomain", disc.Subdomain),
				zap.String("tool", disc.Tool),
				zap.Error(err))

			continue
		}

		// only records whose transaction committed count as ingested
		if touched != nil {
			ingested++
		}
	}

	return ingested, nil
}

// ingestInto applies a single discovery record to the tree under root inside
// the given transaction. The lookup takes a row lock so concurrent merges of
// the same host serialize instead of overwriting each other's services and
// tags. Returns the subdomain the record was merged into, or nil when the
// record was discarded.
func (r recon) ingestInto(ctx context.Context,
	tx storage.AllStorage,
	root domain.RootDomain,
	disc domain.Discovery) (*domain.Subdomain, error) {
	// noise filter: an invalid hostname is dropped, not reported
	if !r.validator.IsValidHostname(disc.Subdomain) {
		logger.Debug(ctx, "discarding discovery with invalid hostname",
			zap.String("subdomain", disc.Subdomain),
			zap.String("tool", disc.Tool))
		metrics.DiscoveryDiscarded(ctx, disc.Tool)

		return nil, nil //nolint: nilnil
	}

	sub, err := tx.SubdomainByNameForUpdate(ctx, root.ID, disc.Subdomain)
	if err != nil {
		return nil, fmt.Errorf("could not look up subdomain: %w", err)
	}
	if sub == nil {
		created, wasCreated, err := tx.AddSubdomain(ctx, domain.Subdomain{
			RootDomainID: root.ID,
			Name:         disc.Subdomain,
		})
		if err != nil {
			return nil, fmt.Errorf("could not add subdomain: %w", err)
		}
		if wasCreated {
			metrics.SubdomainCreated(ctx)
			logger.Info(ctx, "created subdomain",
				zap.String("name", created.Name),
				zap.String("rootDomain", root.Name))
		}
		sub = created
	}

	return r.mergeInto(ctx, tx, sub, disc)
}

// mergeInto delegates the field merge to the SubdomainMerger and persists the
// outcome. When the merge reports no change the write is skipped, which keeps
// repeated ingestion of the same record free of side effects.
func (r recon) mergeInto(ctx context.Context,
	tx storage.AllStorage,
	sub *domain.Subdomain,
	disc domain.Discovery) (*domain.Subdomain, error) {
	if !r.merger.Merge(sub, disc) {
		return sub, nil
	}

	updated, err := tx.UpdateSubdomain(ctx, sub.ID, storage.SubdomainUpdates{
		Services: sub.Services,
		Tags:     sub.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("could not persist merge: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "subdomain %q vanished during merge", sub.Name)
	}

	metrics.DiscoveryIngested(ctx, disc.Tool)

	return updated, nil
}

// EnqueueDiscoveries inserts one ingest job per record, transactionally with
// the caller's request. Invalid hostnames are filtered here already so the
// queue never carries known noise.
func (r recon) EnqueueDiscoveries(ctx context.Context,
	targetID domain.TargetID,
	rootDomainName string,
	discs []domain.Discovery) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("enqueue cancelled: %w", err)
	}

	enqueued := 0
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for i, disc := range discs {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("enqueue cancelled after %d records: %w", i, err)
			}

			if !r.validator.IsValidHostname(disc.Subdomain) {
				metrics.DiscoveryDiscarded(ctx, disc.Tool)

				continue
			}

			added, err := tx.AddJob(ctx, DiscoveryJobArgs{
				TargetID:        uuid.UUID(targetID),
				RootDomain:      rootDomainName,
				Discovery:       disc,
				maxAttempts:     r.options.MaxAttempts,
				uniqueJobPeriod: r.options.UniqueJobPeriod,
			}, nil)
			if err != nil {
				return fmt.Errorf("could not add ingest job: %w", err)
			}
			if added {
				enqueued++
			}
		}

		return nil
	}); err != nil {
		return 0, txError(err, "could not enqueue discoveries")
	}

	return enqueued, nil
}

// UploadSubdomains registers externally supplied hostnames under the target's
// root domains. A name attaches to the most specific root domain it falls
// under; invalid and unmatched names are skipped silently, existing names are
// left untouched. Only subdomains created by this call are returned.
func (r recon) UploadSubdomains(ctx context.Context,
	targetID domain.TargetID,
	names []string) ([]domain.Subdomain, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("upload cancelled: %w", err)
	}

	var created []domain.Subdomain
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		roots, err := tx.RootDomainsByTarget(ctx, targetID)
		if err != nil {
			return fmt.Errorf("could not load root domains: %w", err)
		}

		for i, name := range names {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("upload cancelled after %d names: %w", i, err)
			}

			if !r.validator.IsValidHostname(name) {
				logger.Debug(ctx, "skipping invalid hostname", zap.String("name", name))

				continue
			}

			root := matchRootDomain(roots, name)
			if root == nil {
				logger.Debug(ctx, "no root domain matches hostname", zap.String("name", name))

				continue
			}

			sub, wasCreated, err := tx.AddSubdomain(ctx, domain.Subdomain{
				RootDomainID: root.ID,
				Name:         name,
			})
			if err != nil {
				return fmt.Errorf("could not add subdomain %q: %w", name, err)
			}
			if wasCreated {
				metrics.SubdomainCreated(ctx)
				created = append(created, *sub)
			}
		}

		return nil
	}); err != nil {
		return nil, txError(err, "could not upload subdomains")
	}

	return created, nil
}

// DeleteRootDomains removes the named root domains with their subdomains and
// notes in one transaction. Deletes are safety-critical: every failure,
// including a failed rollback, propagates to the caller.
func (r recon) DeleteRootDomains(ctx context.Context,
	targetID domain.TargetID,
	names []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete cancelled: %w", err)
	}

	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for i, name := range names {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("delete cancelled after %d root domains: %w", i, err)
			}

			root, err := tx.RootDomainByName(ctx, targetID, name)
			if err != nil {
				return fmt.Errorf("could not load root domain %q: %w", name, err)
			}
			if root == nil {
				return serrors.With(serrors.ErrNotFound, "root domain %q not found", name)
			}

			if _, err := tx.DeleteSubdomainsByRootDomain(ctx, root.ID); err != nil {
				return fmt.Errorf("could not delete subdomains of %q: %w", name, err)
			}
			if err := tx.DeleteNote(ctx, root.ID); err != nil {
				return fmt.Errorf("could not delete note of %q: %w", name, err)
			}
			if err := tx.DeleteRootDomain(ctx, root.ID); err != nil {
				return fmt.Errorf("could not delete root domain %q: %w", name, err)
			}
		}

		return nil
	}); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return err
		}

		return txError(err, "could not delete root domains")
	}

	return nil
}

// DeleteSubdomainsOf removes every subdomain of a target in one transaction
// and reports how many were deleted. Failures propagate like any other bulk
// delete.
func (r recon) DeleteSubdomainsOf(ctx context.Context,
	targetID domain.TargetID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("delete cancelled: %w", err)
	}

	var deleted int64
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		n, err := tx.DeleteSubdomainsByTarget(ctx, targetID)
		if err != nil {
			return fmt.Errorf("could not delete subdomains: %w", err)
		}
		deleted = n

		return nil
	}); err != nil {
		return 0, txError(err, "could not delete target subdomains")
	}

	return deleted, nil
}

// matchRootDomain picks the most specific root domain the hostname falls
// under, so "api.shop.example.com" prefers "shop.example.com" over
// "example.com" when both are present.
func matchRootDomain(roots []domain.RootDomain, name string) *domain.RootDomain {
	var best *domain.RootDomain
	for i := range roots {
		if !hostname.IsSubdomainOf(name, roots[i].Name) {
			continue
		}
		if best == nil || len(roots[i].Name) > len(best.Name) {
			best = &roots[i]
		}
	}

	return best
}
