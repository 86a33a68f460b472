package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubdomainID uniquely identifies a subdomain.
type SubdomainID uuid.UUID

// Service is a network service discovered on a subdomain.
type Service struct {
	// Protocol is the transport protocol, e.g. "tcp" or "udp".
	Protocol string `json:"protocol"`
	// Port is the service port number.
	Port int `json:"port"`
	// Name is the detected service name, e.g. "https".
	Name string `json:"name,omitempty"`
	// Banner is the raw banner grabbed from the service, if any.
	Banner string `json:"banner,omitempty"`
}

// Subdomain is a discovered host under a root domain (e.g. "api.example.com").
// It is created on first discovery and updated in place when later discoveries
// repeat the same name; it is never silently duplicated.
//
// Names are unique within a root domain: matching is case-insensitive while
// the original casing is preserved for storage.
type Subdomain struct {
	// ID is the unique identifier of the subdomain.
	ID SubdomainID `json:"id"`
	// RootDomainID is a plain back-reference to the owning root domain. The
	// relation is non-owning; ownership flows RootDomain -> Subdomains only.
	RootDomainID RootDomainID `json:"rootDomainId"`

	// Name is the full hostname of the subdomain.
	Name string `json:"name"`

	// Services are the network services discovered on this host. Owned by the
	// subdomain and deduplicated by (protocol, port).
	Services []Service `json:"services,omitempty"`
	// Tags are free-form labels attached by discovery tools.
	Tags []string `json:"tags,omitempty"`

	// CreatedAt is the time of first discovery.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last merge into this subdomain.
	UpdatedAt time.Time `json:"updatedAt"`
}
