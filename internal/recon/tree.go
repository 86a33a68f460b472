package recon

import (
	"context"
	"fmt"
	"recond/pkg/domain"
)

// ReconcileRootDomains computes the membership of a target's root domain set
// against an externally observed list of names.
//
// Rules:
//   - a root domain whose name is absent from observed is dropped from the
//     result (callers cascade the deletion of its subdomains and note through
//     storage; this function only decides membership)
//   - every observed name without a surviving root domain yields a new empty
//     RootDomain carrying just that name
//   - survivors keep their original relative order, new entries follow in
//     observed order, and every observed name appears exactly once
//
// Names are compared case-sensitively and are not validated here; validation
// happens at discovery time. The function is cancellable: when ctx fires
// mid-scan it returns the partial result together with the context error, so
// atomicity is the responsibility of the enclosing transaction, not of this
// function.
func ReconcileRootDomains(ctx context.Context,
	current []domain.RootDomain,
	observed []string) ([]domain.RootDomain, error) {
	observedSet := make(map[string]struct{}, len(observed))
	for _, name := range observed {
		observedSet[name] = struct{}{}
	}

	result := make([]domain.RootDomain, 0, len(observed))
	taken := make(map[string]struct{}, len(observed))

	for _, root := range current {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("reconciliation cancelled: %w", err)
		}

		if _, ok := observedSet[root.Name]; !ok {
			continue
		}
		// duplicate names cannot exist in a valid stored set, but reconciling
		// must still return each observed name exactly once
		if _, dup := taken[root.Name]; dup {
			continue
		}

		taken[root.Name] = struct{}{}
		result = append(result, root)
	}

	for _, name := range observed {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("reconciliation cancelled: %w", err)
		}

		if _, ok := taken[name]; ok {
			continue
		}

		taken[name] = struct{}{}
		result = append(result, domain.RootDomain{Name: name})
	}

	return result, nil
}
