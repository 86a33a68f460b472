package domain

import "time"

// Discovery is one immutable unit of output from a reconnaissance agent run.
// It names the subdomain it pertains to and carries the fields to merge into
// that subdomain. Discoveries are never stored as-is; they are folded into the
// domain tree by the ingestion pipeline.
type Discovery struct {
	// Subdomain is the hostname this discovery pertains to.
	Subdomain string `json:"subdomain"`

	// Services are network services observed on the host during the run.
	Services []Service `json:"services,omitempty"`
	// Tags are labels emitted by the tool, e.g. "takeover-candidate".
	Tags []string `json:"tags,omitempty"`

	// Tool is the name of the agent or tool that produced this record.
	Tool string `json:"tool,omitempty"`
	// RawLine is the original output line, kept for audit purposes.
	RawLine string `json:"rawLine,omitempty"`
	// ObservedAt is the time the agent reported the discovery.
	ObservedAt time.Time `json:"observedAt,omitzero"`
}
