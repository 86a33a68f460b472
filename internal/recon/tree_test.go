package recon_test

import (
	"context"
	"errors"
	"recond/internal/recon"
	"testing"

	"recond/pkg/domain"

	"github.com/google/uuid"
)

func namedRoot(name string) domain.RootDomain {
	return domain.RootDomain{ID: domain.RootDomainID(uuid.New()), Name: name}
}

func names(roots []domain.RootDomain) []string {
	out := make([]string, 0, len(roots))
	for _, root := range roots {
		out = append(out, root.Name)
	}

	return out
}

func TestReconcileRootDomains_DropsAndAdds(t *testing.T) {
	a := namedRoot("a.com")
	b := namedRoot("b.com")

	result, err := recon.ReconcileRootDomains(context.Background(),
		[]domain.RootDomain{a, b},
		[]string{"b.com", "c.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 root domains, got %d: %v", len(result), names(result))
	}
	if result[0].Name != "b.com" || result[0].ID != b.ID {
		t.Fatalf("expected surviving b.com with its identity, got %+v", result[0])
	}
	if result[1].Name != "c.com" || result[1].ID != (domain.RootDomainID{}) {
		t.Fatalf("expected new empty c.com, got %+v", result[1])
	}
}

func TestReconcileRootDomains_ExactMembership(t *testing.T) {
	current := []domain.RootDomain{namedRoot("a.com"), namedRoot("b.com"), namedRoot("c.com")}
	observed := []string{"c.com", "a.com", "d.com"}

	result, err := recon.ReconcileRootDomains(context.Background(), current, observed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make(map[string]int)
	for _, root := range result {
		got[root.Name]++
	}
	for _, name := range observed {
		if got[name] != 1 {
			t.Fatalf("expected %q exactly once, got %d times", name, got[name])
		}
	}
	if len(result) != len(observed) {
		t.Fatalf("expected %d root domains, got %d", len(observed), len(result))
	}
}

func TestReconcileRootDomains_SurvivorsKeepStoredOrder(t *testing.T) {
	a := namedRoot("a.com")
	b := namedRoot("b.com")
	c := namedRoot("c.com")

	// observed lists the survivors in reverse; stored order must win for them
	result, err := recon.ReconcileRootDomains(context.Background(),
		[]domain.RootDomain{a, b, c},
		[]string{"c.com", "a.com", "new.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.com", "c.com", "new.com"}
	for i, name := range want {
		if result[i].Name != name {
			t.Fatalf("expected order %v, got %v", want, names(result))
		}
	}
}

func TestReconcileRootDomains_Idempotent(t *testing.T) {
	current := []domain.RootDomain{namedRoot("a.com"), namedRoot("b.com")}
	observed := []string{"b.com", "c.com"}

	first, err := recon.ReconcileRootDomains(context.Background(), current, observed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := recon.ReconcileRootDomains(context.Background(), first, observed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("expected stable result, got %v then %v", names(first), names(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || first[i].ID != second[i].ID {
			t.Fatalf("expected stable result, got %+v then %+v", first[i], second[i])
		}
	}
}

func TestReconcileRootDomains_EmptyObservedDropsEverything(t *testing.T) {
	result, err := recon.ReconcileRootDomains(context.Background(),
		[]domain.RootDomain{namedRoot("a.com"), namedRoot("b.com")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %v", names(result))
	}
}

func TestReconcileRootDomains_DuplicateObservedNamesAppearOnce(t *testing.T) {
	result, err := recon.ReconcileRootDomains(context.Background(),
		[]domain.RootDomain{namedRoot("a.com")},
		[]string{"a.com", "a.com", "b.com", "b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.com", "b.com"}
	if len(result) != len(want) {
		t.Fatalf("expected %v, got %v", want, names(result))
	}
	for i, name := range want {
		if result[i].Name != name {
			t.Fatalf("expected %v, got %v", want, names(result))
		}
	}
}

func TestReconcileRootDomains_CaseSensitiveNames(t *testing.T) {
	a := namedRoot("Example.com")

	result, err := recon.ReconcileRootDomains(context.Background(),
		[]domain.RootDomain{a},
		[]string{"example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "Example.com" and "example.com" are distinct root domain names
	if len(result) != 1 || result[0].Name != "example.com" || result[0].ID != (domain.RootDomainID{}) {
		t.Fatalf("expected a single new example.com, got %v", result)
	}
}

func TestReconcileRootDomains_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := recon.ReconcileRootDomains(ctx,
		[]domain.RootDomain{namedRoot("a.com")},
		[]string{"a.com"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
