package domain

import (
	"time"

	"github.com/google/uuid"
)

// TargetID uniquely identifies a reconnaissance target within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type TargetID uuid.UUID

// RootDomainID uniquely identifies a root domain.
type RootDomainID uuid.UUID

// NoteID uniquely identifies a note attached to a root domain.
type NoteID uuid.UUID

// Note is an optional annotation owned 1:1 by a root domain. It is deleted
// together with its owner.
type Note struct {
	// ID is the unique identifier of the note.
	ID NoteID `json:"id"`
	// RootDomainID references the owning root domain.
	RootDomainID RootDomainID `json:"rootDomainId"`
	// Content is the free-form annotation text.
	Content string `json:"content"`
	// CreatedAt is the time when the note was created.
	CreatedAt time.Time `json:"createdAt"`
}

// RootDomain is a top-level domain under reconnaissance for a target
// (e.g. "example.com"). It owns its subdomains and its optional note;
// ownership flows one way only, subdomains refer back by plain ID.
//
// Within a target, root domain names are unique and compared case-sensitively.
type RootDomain struct {
	// ID is the unique identifier of the root domain.
	ID RootDomainID `json:"id"`
	// TargetID is the identifier of the target this root domain belongs to.
	TargetID TargetID `json:"targetId"`

	// Name is the root domain name, e.g. "example.com".
	Name string `json:"name"`

	// Note is the optional annotation owned by this root domain.
	Note *Note `json:"note,omitempty"`
	// Subdomains is the owned collection of hosts discovered under this root
	// domain. Names are unique within the collection.
	Subdomains []Subdomain `json:"subdomains,omitempty"`

	// CreatedAt is the time when the root domain was first recorded.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the root domain was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
