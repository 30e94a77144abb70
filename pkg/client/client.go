// Package client implements a gRPC PrimeService client with optional
// OpenTelemetry metrics and traces.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/memes/primegen/pkg/generated"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

const (
	// The default maximum timeout that will be applied to requests.
	DefaultMaxTimeout = 30 * time.Second
	// The default name to use when registering OpenTelemetry components.
	OpenTelemetryPackageIdentifier = "pkg.client"
)

// PrimeClient issues PrimeService requests to a remote server.
type PrimeClient struct {
	// The logr.Logger instance to use.
	logger logr.Logger
	// The client maximum timeout/deadline to use when making requests.
	maxTimeout time.Duration
	// A set of gRPC DialOptions to apply to connections.
	dialOptions []grpc.DialOption
	// A counter for the number of connection errors.
	connectionErrors metric.Int64Counter
	// A counter for the number of response errors.
	responseErrors metric.Int64Counter
	// A gauge for request durations.
	durationMs metric.Int64Histogram
}

// Defines a function signature for PrimeClient options.
type PrimeClientOption func(*PrimeClient)

// Create a new PrimeClient with optional settings.
func NewPrimeClient(options ...PrimeClientOption) (*PrimeClient, error) {
	client := &PrimeClient{
		logger:     logr.Discard(),
		maxTimeout: DefaultMaxTimeout,
		dialOptions: []grpc.DialOption{
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		},
	}
	for _, option := range options {
		option(client)
	}
	var err error
	client.connectionErrors, err = otel.Meter(OpenTelemetryPackageIdentifier).Int64Counter(
		OpenTelemetryPackageIdentifier+".connection_errors",
		metric.WithDescription("The count of connection errors seen by client"),
	)
	if err != nil {
		return nil, fmt.Errorf("error returned while creating connectionErrors Counter: %w", err)
	}
	client.responseErrors, err = otel.Meter(OpenTelemetryPackageIdentifier).Int64Counter(
		OpenTelemetryPackageIdentifier+".response_errors",
		metric.WithDescription("The count of error responses received by client"),
	)
	if err != nil {
		return nil, fmt.Errorf("error returned while creating responseErrors Counter: %w", err)
	}
	client.durationMs, err = otel.Meter(OpenTelemetryPackageIdentifier).Int64Histogram(
		OpenTelemetryPackageIdentifier+".request_duration_ms",
		metric.WithUnit("ms"),
		metric.WithDescription("The duration (ms) of requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("error returned while creating durationMs Histogram: %w", err)
	}
	return client, nil
}

// Use the supplied logr.Logger.
func WithLogger(logger logr.Logger) PrimeClientOption {
	return func(c *PrimeClient) {
		c.logger = logger
	}
}

// Set the maximum timeout for client requests to a PrimeService.
func WithMaxTimeout(maxTimeout time.Duration) PrimeClientOption {
	return func(c *PrimeClient) {
		c.maxTimeout = maxTimeout
	}
}

// Set the TransportCredentials to use for PrimeService connections.
func WithTransportCredentials(creds credentials.TransportCredentials) PrimeClientOption {
	return func(c *PrimeClient) {
		if creds != nil {
			c.dialOptions = append(c.dialOptions, grpc.WithTransportCredentials(creds))
		}
	}
}

// Set the authority string to use for PrimeService connections, overriding
// the hostname derived from the target.
func WithAuthority(authority string) PrimeClientOption {
	return func(c *PrimeClient) {
		if authority != "" {
			c.dialOptions = append(c.dialOptions, grpc.WithAuthority(authority))
		}
	}
}

// Request a run of count primes at or above the decimal start bound from the
// PrimeService at endpoint.
func (c *PrimeClient) FetchPrimes(ctx context.Context, endpoint, start string, count uint32) ([]string, error) {
	logger := c.logger.V(1).WithValues("endpoint", endpoint, "start", start, "count", count)
	logger.Info("FetchPrimes: enter")
	attributes := []attribute.KeyValue{
		attribute.String(OpenTelemetryPackageIdentifier+".endpoint", endpoint),
		attribute.String(OpenTelemetryPackageIdentifier+".start", start),
		attribute.Int64(OpenTelemetryPackageIdentifier+".count", int64(count)),
	}
	ctx, cancel := context.WithTimeout(ctx, c.maxTimeout)
	defer cancel()
	conn, err := grpc.DialContext(ctx, endpoint, c.dialOptions...)
	if err != nil {
		c.connectionErrors.Add(ctx, 1, metric.WithAttributes(attributes...))
		return nil, fmt.Errorf("failed to create gRPC connection to %s: %w", endpoint, err)
	}
	defer conn.Close()
	ts := time.Now()
	response, err := generated.NewPrimeServiceClient(conn).GeneratePrimes(ctx, &generated.GeneratePrimesRequest{
		Start: start,
		Count: count,
	})
	c.durationMs.Record(ctx, time.Since(ts).Milliseconds(), metric.WithAttributes(attributes...))
	if err != nil {
		c.responseErrors.Add(ctx, 1, metric.WithAttributes(attributes...))
		return nil, fmt.Errorf("error returned from GeneratePrimes request: %w", err)
	}
	logger.Info("FetchPrimes: exit", "found", len(response.Primes), "metadata.identity", response.Metadata.GetIdentity())
	return response.Primes, nil
}
