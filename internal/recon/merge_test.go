package recon_test

import (
	"recond/internal/recon"
	"testing"

	"recond/pkg/domain"
)

func TestMerger_AddsServicesAndTags(t *testing.T) {
	m := recon.NewMerger()

	sub := domain.Subdomain{
		Name:     "api.example.com",
		Services: []domain.Service{{Protocol: "tcp", Port: 443, Name: "https"}},
		Tags:     []string{"prod"},
	}
	disc := domain.Discovery{
		Subdomain: "api.example.com",
		Services:  []domain.Service{{Protocol: "tcp", Port: 22, Name: "ssh"}},
		Tags:      []string{"exposed"},
	}

	if !m.Merge(&sub, disc) {
		t.Fatalf("expected merge to report a change")
	}
	if len(sub.Services) != 2 {
		t.Fatalf("expected 2 services, got %v", sub.Services)
	}
	if len(sub.Tags) != 2 || sub.Tags[1] != "exposed" {
		t.Fatalf("expected tags [prod exposed], got %v", sub.Tags)
	}
}

func TestMerger_Idempotent(t *testing.T) {
	m := recon.NewMerger()

	sub := domain.Subdomain{Name: "api.example.com"}
	disc := domain.Discovery{
		Subdomain: "api.example.com",
		Services:  []domain.Service{{Protocol: "tcp", Port: 443, Name: "https", Banner: "nginx"}},
		Tags:      []string{"prod"},
	}

	if !m.Merge(&sub, disc) {
		t.Fatalf("expected first merge to report a change")
	}
	before := len(sub.Services)

	if m.Merge(&sub, disc) {
		t.Fatalf("expected repeated merge to be a no-op")
	}
	if len(sub.Services) != before || len(sub.Tags) != 1 {
		t.Fatalf("expected unchanged subdomain, got %+v", sub)
	}
}

func TestMerger_DedupServicesByProtocolAndPort(t *testing.T) {
	m := recon.NewMerger()

	sub := domain.Subdomain{
		Services: []domain.Service{{Protocol: "tcp", Port: 443}},
	}
	disc := domain.Discovery{
		Services: []domain.Service{
			{Protocol: "TCP", Port: 443, Name: "https", Banner: "nginx/1.27"},
			{Protocol: "udp", Port: 443},
		},
	}

	if !m.Merge(&sub, disc) {
		t.Fatalf("expected merge to report a change")
	}
	if len(sub.Services) != 2 {
		t.Fatalf("expected tcp/443 deduped and udp/443 added, got %v", sub.Services)
	}
	// the repeated endpoint picked up the detail fields
	if sub.Services[0].Name != "https" || sub.Services[0].Banner != "nginx/1.27" {
		t.Fatalf("expected detail fields filled on tcp/443, got %+v", sub.Services[0])
	}
}

func TestMerger_TagsCaseInsensitiveFirstCasingWins(t *testing.T) {
	m := recon.NewMerger()

	sub := domain.Subdomain{Tags: []string{"Prod"}}
	disc := domain.Discovery{Tags: []string{"prod", "PROD", "staging"}}

	if !m.Merge(&sub, disc) {
		t.Fatalf("expected merge to report a change")
	}
	if len(sub.Tags) != 2 || sub.Tags[0] != "Prod" || sub.Tags[1] != "staging" {
		t.Fatalf("expected tags [Prod staging], got %v", sub.Tags)
	}
}

func TestMerger_EmptyDiscoveryIsNoOp(t *testing.T) {
	m := recon.NewMerger()

	sub := domain.Subdomain{
		Services: []domain.Service{{Protocol: "tcp", Port: 80}},
		Tags:     []string{"prod"},
	}

	if m.Merge(&sub, domain.Discovery{Subdomain: sub.Name}) {
		t.Fatalf("expected empty discovery to change nothing")
	}
}
