// Package recon owns the domain tree of reconnaissance targets: reconciling
// root domains against observed name lists and ingesting discovery records
// into the right subdomains. All mutations run inside explicit storage
// transactions; no unit-of-work state is kept between calls.
package recon

import (
	"context"
	"recond/pkg/domain"
)

//go:generate mockgen -package mockrecon -source=interface.go -destination=mock/mockrecon.go *

// Recon exposes the domain tree operations consumed by the API layer, the CLI
// and the background workers.
type Recon interface {
	// ReconcileTarget aligns the stored root domains of a target with a freshly
	// observed name list: roots absent from observed are pruned together with
	// their subdomains and note, names without a stored root get a new empty
	// one. Returns the resulting set, survivors first in their stored order,
	// then new entries in observed order.
	ReconcileTarget(ctx context.Context,
		targetID domain.TargetID,
		observed []string) ([]domain.RootDomain, error)

	// RootDomains lists the root domains of a target with their subdomains.
	RootDomains(ctx context.Context, targetID domain.TargetID) ([]domain.RootDomain, error)

	// IngestDiscovery folds a single discovery record into the tree under the
	// named root domain. Records naming an invalid hostname are dropped
	// silently; they are expected noise, not failures.
	IngestDiscovery(ctx context.Context,
		targetID domain.TargetID,
		rootDomainName string,
		disc domain.Discovery) error

	// IngestDiscoveries folds a batch of discovery records, one transaction per
	// record. A failing record is logged and skipped so a long discovery run is
	// never aborted by one bad line; cancellation stops the loop between
	// records. Returns how many records were actually folded into the tree,
	// excluding discarded and failed ones.
	IngestDiscoveries(ctx context.Context,
		targetID domain.TargetID,
		rootDomainName string,
		discs []domain.Discovery) (int, error)

	// EnqueueDiscoveries inserts one background ingest job per discovery record
	// and reports how many were actually enqueued (duplicates of unique jobs
	// are skipped).
	EnqueueDiscoveries(ctx context.Context,
		targetID domain.TargetID,
		rootDomainName string,
		discs []domain.Discovery) (int, error)

	// UploadSubdomains registers externally supplied hostnames under the
	// target's root domains, skipping invalid names and names that match no
	// stored root. It returns only the subdomains created by this call.
	UploadSubdomains(ctx context.Context,
		targetID domain.TargetID,
		names []string) ([]domain.Subdomain, error)

	// DeleteRootDomains removes the named root domains of a target, cascading
	// to their subdomains and notes, in a single transaction. Unlike ingestion,
	// any failure here propagates: a silent partial delete is worse than a loud
	// failure.
	DeleteRootDomains(ctx context.Context, targetID domain.TargetID, names []string) error

	// DeleteSubdomainsOf removes every subdomain of a target and reports how
	// many were deleted.
	DeleteSubdomainsOf(ctx context.Context, targetID domain.TargetID) (int64, error)
}

// HostnameValidator decides whether a string is a syntactically plausible
// hostname. Validation policy is kept behind this capability so the tree logic
// stays independent of it and can be tested with a stub.
type HostnameValidator interface {
	IsValidHostname(name string) bool
}

// SubdomainMerger applies the fields of a discovery record onto an existing
// subdomain in place. Merge must be idempotent: applying the same record twice
// leaves the subdomain as after the first application. The return value
// reports whether anything changed, letting callers skip redundant writes.
type SubdomainMerger interface {
	Merge(sub *domain.Subdomain, disc domain.Discovery) bool
}
