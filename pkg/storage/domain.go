package storage

import (
	"context"
	"recond/pkg/domain"
)

// SubdomainUpdates describes the fields that can be applied to an existing
// subdomain during a merge. Only non-nil fields are written; updated_at is set
// automatically by the implementation.
type SubdomainUpdates struct {
	// Services, when provided, replaces the stored service list.
	Services []domain.Service
	// Tags, when provided, replaces the stored tag list.
	Tags []string
}

// DomainStorage defines persistence operations on the domain tree: root
// domains, their notes and their subdomains. Implementations enforce the name
// uniqueness invariants (root domain names unique per target, subdomain names
// unique per root domain with case-insensitive matching).
type DomainStorage interface {
	// StoreRootDomains inserts one or more root domains and returns the stored
	// rows as they exist in the database (including generated fields).
	StoreRootDomains(ctx context.Context, roots ...domain.RootDomain) ([]domain.RootDomain, error)
	// RootDomainsByTarget returns all root domains of a target ordered by
	// creation time, without their subdomain collections.
	RootDomainsByTarget(ctx context.Context, targetID domain.TargetID) ([]domain.RootDomain, error)
	// RootDomainByName fetches a root domain by its exact (case-sensitive) name
	// within a target, including its note. Returns nil when not found.
	RootDomainByName(ctx context.Context, targetID domain.TargetID, name string) (*domain.RootDomain, error)
	// DeleteRootDomain removes a root domain row. Its note and subdomains must
	// be removed by the caller first; deletion does not cascade implicitly.
	DeleteRootDomain(ctx context.Context, id domain.RootDomainID) error
	// StoreNote attaches a note to a root domain, replacing any existing one.
	// The note relation is 1:1; a second store overwrites the content.
	StoreNote(ctx context.Context, note domain.Note) (*domain.Note, error)
	// DeleteNote removes the note owned by the given root domain, if any.
	DeleteNote(ctx context.Context, rootDomainID domain.RootDomainID) error

	// AddSubdomain inserts a subdomain unless one with the same name (matched
	// case-insensitively) already exists under the root domain. It returns the
	// row now present in the database and whether it was created by this call.
	AddSubdomain(ctx context.Context, sub domain.Subdomain) (*domain.Subdomain, bool, error)
	// SubdomainByName fetches a subdomain by its exact (case-sensitive) name
	// under a root domain. Returns nil when not found.
	SubdomainByName(ctx context.Context, rootDomainID domain.RootDomainID, name string) (*domain.Subdomain, error)
	// SubdomainByNameForUpdate is SubdomainByName with a row lock held until the
	// surrounding transaction ends. Read-modify-write flows (merging discoveries
	// into the services and tags columns) must use this variant so concurrent
	// writers serialize instead of overwriting each other.
	SubdomainByNameForUpdate(ctx context.Context,
		rootDomainID domain.RootDomainID, name string) (*domain.Subdomain, error)
	// SubdomainsByRootDomain returns all subdomains under a root domain ordered
	// by creation time.
	SubdomainsByRootDomain(ctx context.Context, rootDomainID domain.RootDomainID) ([]domain.Subdomain, error)
	// UpdateSubdomain applies the provided field set to a subdomain and returns
	// the updated row, or nil when the subdomain does not exist.
	UpdateSubdomain(ctx context.Context,
		id domain.SubdomainID,
		updates SubdomainUpdates) (*domain.Subdomain, error)
	// DeleteSubdomains removes the given subdomains and reports how many rows
	// were deleted.
	DeleteSubdomains(ctx context.Context, ids ...domain.SubdomainID) (int64, error)
	// DeleteSubdomainsByRootDomain removes every subdomain under a root domain.
	DeleteSubdomainsByRootDomain(ctx context.Context, rootDomainID domain.RootDomainID) (int64, error)
	// DeleteSubdomainsByTarget removes every subdomain under every root domain
	// of a target.
	DeleteSubdomainsByTarget(ctx context.Context, targetID domain.TargetID) (int64, error)
}
