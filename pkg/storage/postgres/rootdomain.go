package postgres

import (
	"context"
	"fmt"
	"recond/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	rootDomainsTable = "root_domains"
	notesTable       = "notes"
)

func (p *PgSQL) StoreRootDomains(ctx context.Context,
	roots ...domain.RootDomain) ([]domain.RootDomain, error) {
	if len(roots) == 0 {
		return nil, nil
	}

	var result []PgRootDomain
	if err := p.Builder.Insert(rootDomainsTable).
		Rows(domainRootsToPg(roots)).
		Returning(&PgRootDomain{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store root domains into pg: %w", err)
	}

	return pgRootsToDomain(result), nil
}

// RootDomainsByTarget returns the root domains of a target in creation order.
// Subdomain collections are not loaded; use SubdomainsByRootDomain for those.
func (p *PgSQL) RootDomainsByTarget(ctx context.Context,
	targetID domain.TargetID) ([]domain.RootDomain, error) {
	var rows []PgRootDomain
	if err := p.Builder.From(rootDomainsTable).
		Where(goqu.I("target_id").Eq(uuid.UUID(targetID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch root domains from pg: %w", err)
	}

	return pgRootsToDomain(rows), nil
}

// RootDomainByName fetches a root domain by its exact name within a target,
// including its note when one exists. Returns nil when not found.
func (p *PgSQL) RootDomainByName(ctx context.Context,
	targetID domain.TargetID, name string) (*domain.RootDomain, error) {
	var row PgRootDomain
	found, err := p.Builder.From(rootDomainsTable).
		Where(
			goqu.I("target_id").Eq(uuid.UUID(targetID)),
			goqu.I("name").Eq(name),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch root domain by name: %w", err)
	}
	if !found {
		return nil, nil
	}

	root := row.ToDomain()

	var note PgNote
	noteFound, err := p.Builder.From(notesTable).
		Where(goqu.I("root_domain_id").Eq(row.ID)).
		Executor().ScanStructContext(ctx, &note)
	if err != nil {
		return nil, fmt.Errorf("could not fetch root domain note: %w", err)
	}
	if noteFound {
		root.Note = note.ToDomain()
	}

	return root, nil
}

// DeleteRootDomain removes a root domain row. Foreign keys require the note
// and subdomains to be deleted first; callers drive the cascade explicitly.
func (p *PgSQL) DeleteRootDomain(ctx context.Context, id domain.RootDomainID) error {
	if _, err := p.Builder.Delete(rootDomainsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete root domain in pg: %w", err)
	}

	return nil
}

// StoreNote attaches a note to a root domain. A note already present for the
// root domain is overwritten in place.
func (p *PgSQL) StoreNote(ctx context.Context, note domain.Note) (*domain.Note, error) {
	var pgNote PgNote
	pgNote.FromDomain(note)

	var row PgNote
	found, err := p.Builder.Insert(notesTable).
		Rows(pgNote).
		OnConflict(goqu.DoUpdate("root_domain_id", goqu.Record{
			"content":    note.Content,
			"created_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgNote{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store note into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store note into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// DeleteNote removes the note owned by the given root domain. Deleting a
// root domain without a note is a no-op.
func (p *PgSQL) DeleteNote(ctx context.Context, rootDomainID domain.RootDomainID) error {
	if _, err := p.Builder.Delete(notesTable).
		Where(goqu.I("root_domain_id").Eq(uuid.UUID(rootDomainID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete note in pg: %w", err)
	}

	return nil
}
