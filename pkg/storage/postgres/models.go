package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"recond/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgRootDomain struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	TargetID uuid.UUID `db:"target_id"`

	Name string `db:"name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRootDomain) ToDomain() *domain.RootDomain {
	return &domain.RootDomain{
		ID:        domain.RootDomainID(p.ID),
		TargetID:  domain.TargetID(p.TargetID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgRootDomain) FromDomain(root domain.RootDomain) {
	*p = PgRootDomain{
		ID:        uuid.UUID(root.ID),
		TargetID:  uuid.UUID(root.TargetID),
		Name:      root.Name,
		CreatedAt: root.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  root.UpdatedAt,
			Valid: !root.UpdatedAt.IsZero(),
		},
	}
}

type PgNote struct {
	ID           uuid.UUID `db:"id"             goqu:"skipinsert"`
	RootDomainID uuid.UUID `db:"root_domain_id"`

	Content string `db:"content"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgNote) ToDomain() *domain.Note {
	return &domain.Note{
		ID:           domain.NoteID(p.ID),
		RootDomainID: domain.RootDomainID(p.RootDomainID),
		Content:      p.Content,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgNote) FromDomain(note domain.Note) {
	*p = PgNote{
		ID:           uuid.UUID(note.ID),
		RootDomainID: uuid.UUID(note.RootDomainID),
		Content:      note.Content,
		CreatedAt:    note.CreatedAt,
	}
}

type PgSubdomain struct {
	ID           uuid.UUID `db:"id"             goqu:"skipinsert"`
	RootDomainID uuid.UUID `db:"root_domain_id"`

	Name     string          `db:"name"`
	Services json.RawMessage `db:"services"`
	Tags     json.RawMessage `db:"tags"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSubdomain) ToDomain() (*domain.Subdomain, error) {
	var services []domain.Service
	if len(p.Services) > 0 {
		if err := json.Unmarshal(p.Services, &services); err != nil {
			return nil, fmt.Errorf("could not unmarshal services: %w", err)
		}
	}

	var tags []string
	if len(p.Tags) > 0 {
		if err := json.Unmarshal(p.Tags, &tags); err != nil {
			return nil, fmt.Errorf("could not unmarshal tags: %w", err)
		}
	}

	return &domain.Subdomain{
		ID:           domain.SubdomainID(p.ID),
		RootDomainID: domain.RootDomainID(p.RootDomainID),
		Name:         p.Name,
		Services:     services,
		Tags:         tags,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}, nil
}

func (p *PgSubdomain) FromDomain(sub domain.Subdomain) error {
	services, err := marshalJSONList(sub.Services)
	if err != nil {
		return fmt.Errorf("could not marshal services: %w", err)
	}
	tags, err := marshalJSONList(sub.Tags)
	if err != nil {
		return fmt.Errorf("could not marshal tags: %w", err)
	}

	*p = PgSubdomain{
		ID:           uuid.UUID(sub.ID),
		RootDomainID: uuid.UUID(sub.RootDomainID),
		Name:         sub.Name,
		Services:     services,
		Tags:         tags,
		CreatedAt:    sub.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  sub.UpdatedAt,
			Valid: !sub.UpdatedAt.IsZero(),
		},
	}

	return nil
}

// marshalJSONList marshals a slice for a jsonb column, storing an empty array
// instead of SQL null for nil slices.
func marshalJSONList[T any](list []T) (json.RawMessage, error) {
	if len(list) == 0 {
		return json.RawMessage("[]"), nil
	}

	b, err := json.Marshal(list)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return b, nil
}

func domainRootsToPg(roots []domain.RootDomain) []PgRootDomain {
	out := make([]PgRootDomain, len(roots))
	for i := range out {
		out[i].FromDomain(roots[i])
	}

	return out
}

func pgRootsToDomain(roots []PgRootDomain) []domain.RootDomain {
	out := make([]domain.RootDomain, 0, len(roots))
	for _, root := range roots {
		out = append(out, *root.ToDomain())
	}

	return out
}

func pgSubdomainsToDomain(subs []PgSubdomain) ([]domain.Subdomain, error) {
	out := make([]domain.Subdomain, 0, len(subs))
	for _, sub := range subs {
		d, err := sub.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
