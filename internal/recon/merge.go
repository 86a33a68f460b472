package recon

import (
	"recond/pkg/domain"
	"strconv"
	"strings"
)

// merger is the default SubdomainMerger. Services are deduplicated by
// (protocol, port); tags by case-insensitive name with the first observed
// casing preserved.
type merger struct{}

// NewMerger returns the default discovery merger.
func NewMerger() SubdomainMerger {
	return merger{}
}

func (merger) Merge(sub *domain.Subdomain, disc domain.Discovery) bool {
	changed := false

	known := make(map[string]int, len(sub.Services))
	for i, svc := range sub.Services {
		known[serviceKey(svc)] = i
	}
	for _, svc := range disc.Services {
		idx, ok := known[serviceKey(svc)]
		if !ok {
			known[serviceKey(svc)] = len(sub.Services)
			sub.Services = append(sub.Services, svc)
			changed = true

			continue
		}

		// same endpoint seen again: fill in detail fields a later tool learned
		existing := &sub.Services[idx]
		if svc.Name != "" && existing.Name != svc.Name {
			existing.Name = svc.Name
			changed = true
		}
		if svc.Banner != "" && existing.Banner != svc.Banner {
			existing.Banner = svc.Banner
			changed = true
		}
	}

	tags := make(map[string]struct{}, len(sub.Tags))
	for _, tag := range sub.Tags {
		tags[strings.ToLower(tag)] = struct{}{}
	}
	for _, tag := range disc.Tags {
		if _, ok := tags[strings.ToLower(tag)]; ok {
			continue
		}

		tags[strings.ToLower(tag)] = struct{}{}
		sub.Tags = append(sub.Tags, tag)
		changed = true
	}

	return changed
}

func serviceKey(svc domain.Service) string {
	return strings.ToLower(svc.Protocol) + "/" + strconv.Itoa(svc.Port)
}
