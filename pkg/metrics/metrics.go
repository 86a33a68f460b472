// Package metrics holds the OpenTelemetry instruments shared across the
// service. Instruments are created lazily against the global meter provider,
// which the API server binds to a Prometheus exporter at startup.
package metrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	initOnce sync.Once

	discoveriesIngested  metric.Int64Counter
	discoveriesDiscarded metric.Int64Counter
	subdomainsCreated    metric.Int64Counter
)

func instruments() {
	initOnce.Do(func() {
		meter := otel.Meter("recond")
		discoveriesIngested, _ = meter.Int64Counter("recond_discoveries_ingested_total",
			metric.WithDescription("Discovery records merged into the domain tree"))
		discoveriesDiscarded, _ = meter.Int64Counter("recond_discoveries_discarded_total",
			metric.WithDescription("Discovery records dropped as noise (invalid hostname)"))
		subdomainsCreated, _ = meter.Int64Counter("recond_subdomains_created_total",
			metric.WithDescription("Subdomains created on first discovery"))
	})
}

// DiscoveryIngested records one discovery record merged for the given tool.
func DiscoveryIngested(ctx context.Context, tool string) {
	instruments()
	discoveriesIngested.Add(ctx, 1, metric.WithAttributes(attribute.String("tool", tool)))
}

// DiscoveryDiscarded records one discovery record dropped by the hostname
// noise filter.
func DiscoveryDiscarded(ctx context.Context, tool string) {
	instruments()
	discoveriesDiscarded.Add(ctx, 1, metric.WithAttributes(attribute.String("tool", tool)))
}

// SubdomainCreated records one newly created subdomain.
func SubdomainCreated(ctx context.Context) {
	instruments()
	subdomainsCreated.Add(ctx, 1)
}
