package postgres

import (
	"context"
	"fmt"
	"recond/pkg/domain"
	"recond/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	subdomainsTable = "subdomains"
)

// AddSubdomain inserts a subdomain unless a row with the same name already
// exists under the root domain. Name collisions are detected by the unique
// index on (root_domain_id, lower(name)), so two casings of the same host can
// never coexist. Returns the row now present and whether this call created it.
func (p *PgSQL) AddSubdomain(ctx context.Context,
	sub domain.Subdomain) (*domain.Subdomain, bool, error) {
	var pgSub PgSubdomain
	if err := pgSub.FromDomain(sub); err != nil {
		return nil, false, err
	}

	var row PgSubdomain
	inserted, err := p.Builder.Insert(subdomainsTable).
		Rows(pgSub).
		OnConflict(goqu.DoNothing()).
		Returning(&PgSubdomain{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, false, fmt.Errorf("could not store subdomain into pg: %w", err)
	}

	if inserted {
		d, err := row.ToDomain()
		if err != nil {
			return nil, false, err
		}

		return d, true, nil
	}

	// conflict: fetch the existing row under the case-insensitive name match,
	// locked so a following merge does not race a concurrent writer
	var existing PgSubdomain
	found, err := p.Builder.From(subdomainsTable).
		Where(
			goqu.I("root_domain_id").Eq(uuid.UUID(sub.RootDomainID)),
			goqu.L("LOWER(name) = LOWER(?)", sub.Name),
		).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &existing)
	if err != nil {
		return nil, false, fmt.Errorf("could not fetch conflicting subdomain: %w", err)
	}
	if !found {
		return nil, false, fmt.Errorf("subdomain insert conflicted but no row found for %q", sub.Name)
	}

	d, err := existing.ToDomain()
	if err != nil {
		return nil, false, err
	}

	return d, false, nil
}

// SubdomainByName fetches a subdomain by its exact (case-sensitive) name under
// a root domain. Returns nil when not found.
func (p *PgSQL) SubdomainByName(ctx context.Context,
	rootDomainID domain.RootDomainID, name string) (*domain.Subdomain, error) {
	return p.subdomainByName(ctx, rootDomainID, name, false)
}

// SubdomainByNameForUpdate fetches a subdomain like SubdomainByName but with
// SELECT FOR UPDATE, holding the row lock until the transaction ends. Merge
// flows rely on this to keep concurrent read-modify-writes of the services and
// tags columns serialized.
func (p *PgSQL) SubdomainByNameForUpdate(ctx context.Context,
	rootDomainID domain.RootDomainID, name string) (*domain.Subdomain, error) {
	return p.subdomainByName(ctx, rootDomainID, name, true)
}

func (p *PgSQL) subdomainByName(ctx context.Context,
	rootDomainID domain.RootDomainID, name string, lock bool) (*domain.Subdomain, error) {
	query := p.Builder.From(subdomainsTable).
		Where(
			goqu.I("root_domain_id").Eq(uuid.UUID(rootDomainID)),
			goqu.I("name").Eq(name),
		)
	if lock {
		query = query.ForUpdate(exp.Wait)
	}

	var row PgSubdomain
	found, err := query.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subdomain by name: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SubdomainsByRootDomain returns the subdomains of a root domain in creation order.
func (p *PgSQL) SubdomainsByRootDomain(ctx context.Context,
	rootDomainID domain.RootDomainID) ([]domain.Subdomain, error) {
	var rows []PgSubdomain
	if err := p.Builder.From(subdomainsTable).
		Where(goqu.I("root_domain_id").Eq(uuid.UUID(rootDomainID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch subdomains from pg: %w", err)
	}

	return pgSubdomainsToDomain(rows)
}

// UpdateSubdomain applies the provided field set to a subdomain and returns
// the updated row. Only provided fields are changed; updated_at is always set.
func (p *PgSQL) UpdateSubdomain(ctx context.Context,
	id domain.SubdomainID,
	updates storage.SubdomainUpdates) (*domain.Subdomain, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Services != nil {
		b, err := marshalJSONList(updates.Services)
		if err != nil {
			return nil, fmt.Errorf("could not marshal services: %w", err)
		}
		rec["services"] = b
	}
	if updates.Tags != nil {
		b, err := marshalJSONList(updates.Tags)
		if err != nil {
			return nil, fmt.Errorf("could not marshal tags: %w", err)
		}
		rec["tags"] = b
	}

	var row PgSubdomain
	found, err := p.Builder.Update(subdomainsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgSubdomain{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update subdomain in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteSubdomains removes the given subdomains and reports how many rows were
// deleted.
func (p *PgSQL) DeleteSubdomains(ctx context.Context,
	ids ...domain.SubdomainID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	rawIDs := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		rawIDs[i] = uuid.UUID(id)
	}

	res, err := p.Builder.Delete(subdomainsTable).
		Where(goqu.I("id").In(rawIDs)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete subdomains in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

// DeleteSubdomainsByRootDomain removes every subdomain under a root domain.
func (p *PgSQL) DeleteSubdomainsByRootDomain(ctx context.Context,
	rootDomainID domain.RootDomainID) (int64, error) {
	res, err := p.Builder.Delete(subdomainsTable).
		Where(goqu.I("root_domain_id").Eq(uuid.UUID(rootDomainID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete subdomains by root domain in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

// DeleteSubdomainsByTarget removes every subdomain under every root domain of
// a target.
func (p *PgSQL) DeleteSubdomainsByTarget(ctx context.Context,
	targetID domain.TargetID) (int64, error) {
	res, err := p.Builder.Delete(subdomainsTable).
		Where(goqu.I("root_domain_id").In(
			goqu.From(rootDomainsTable).
				Select("id").
				Where(goqu.I("target_id").Eq(uuid.UUID(targetID))),
		)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete subdomains by target in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
