// Package server implements a gRPC server (and optional REST gateway) that
// satisfies the PrimeService interface requirements, with optional
// OpenTelemetry metrics and traces.
package server

import (
	"fmt"
	"math/big"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/memes/primegen"
	cachepkg "github.com/memes/primegen/pkg/cache"
	"github.com/memes/primegen/pkg/generated"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

const (
	// The default name to use when using OpenTelemetry components.
	OpenTelemetryPackageIdentifier = "pkg.server"
	// The largest run a single request may ask for.
	MaxRunCount = 10000
)

var ErrCountTooLarge = fmt.Errorf("count is too large, must be <= %d", MaxRunCount)

type PrimeServer struct {
	generated.UnimplementedPrimeServiceServer
	// The logr.Logger implementation to use
	logger logr.Logger
	// An optional cache implementation for completed runs
	cache cachepkg.Cache
	// Holds the instance specific metadata that will be returned in PrimeService responses
	metadata *generated.GenerateMetadata
	// A gauge for generation durations
	generationMs metric.Int64Histogram
	// A counter for the number of errors returned by cache
	cacheErrors metric.Int64Counter
	// A counter for cache hits
	cacheHits metric.Int64Counter
	// A counter for cache misses
	cacheMisses metric.Int64Counter
	// A set of gRPC ServerOptions to use
	serverOptions []grpc.ServerOption
	// A set of gRPC DialOptions to use with REST gateway gRPC client
	dialOptions []grpc.DialOption
}

// Defines the function signature for PrimeServer options.
type PrimeServerOption func(*PrimeServer)

// Create a new PrimeServer and apply any options.
func NewPrimeServer(options ...PrimeServerOption) (*PrimeServer, error) {
	var hostname string
	if host, err := os.Hostname(); err == nil {
		hostname = host
	} else {
		hostname = "unknown"
	}
	server := &PrimeServer{
		logger: logr.Discard(),
		cache:  cachepkg.NewNoopCache(),
		metadata: &generated.GenerateMetadata{
			Identity:    hostname,
			Tags:        []string{},
			Annotations: map[string]string{},
		},
		serverOptions: []grpc.ServerOption{
			grpc.StatsHandler(otelgrpc.NewServerHandler()),
		},
		dialOptions: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		},
	}
	for _, option := range options {
		option(server)
	}
	var err error
	server.generationMs, err = otel.Meter(OpenTelemetryPackageIdentifier).Int64Histogram(
		OpenTelemetryPackageIdentifier+".generation_duration_ms",
		metric.WithUnit("ms"),
		metric.WithDescription("The duration (ms) of prime run generation"),
	)
	if err != nil {
		return nil, fmt.Errorf("error returned while creating generationMs Histogram: %w", err)
	}
	server.cacheErrors, err = otel.Meter(OpenTelemetryPackageIdentifier).Int64Counter(
		OpenTelemetryPackageIdentifier+".cache_errors",
		metric.WithDescription("The count of error responses from run cache"),
	)
	if err != nil {
		return nil, fmt.Errorf("error returned while creating cacheErrors Counter: %w", err)
	}
	server.cacheHits, err = otel.Meter(OpenTelemetryPackageIdentifier).Int64Counter(
		OpenTelemetryPackageIdentifier+".cache_hits",
		metric.WithDescription("The count of cache hits"),
	)
	if err != nil {
		return nil, fmt.Errorf("error returned while creating cacheHits Counter: %w", err)
	}
	server.cacheMisses, err = otel.Meter(OpenTelemetryPackageIdentifier).Int64Counter(
		OpenTelemetryPackageIdentifier+".cache_misses",
		metric.WithDescription("The count of cache misses"),
	)
	if err != nil {
		return nil, fmt.Errorf("error returned while creating cacheMisses Counter: %w", err)
	}
	return server, nil
}

// Use the supplied logger for the server and primegen packages.
func WithLogger(logger logr.Logger) PrimeServerOption {
	return func(s *PrimeServer) {
		s.logger = logger
		primegen.Logger = logger
	}
}

// Use the Cache implementation to store completed runs so a repeated request
// does not recompute the primes.
func WithCache(cache cachepkg.Cache) PrimeServerOption {
	return func(s *PrimeServer) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// Add the string tags to the server's metadata.
func WithTags(tags []string) PrimeServerOption {
	return func(s *PrimeServer) {
		if tags != nil {
			s.metadata.Tags = append(s.metadata.Tags, tags...)
		}
	}
}

// Add the key-value annotations to the server's metadata.
func WithAnnotations(annotations map[string]string) PrimeServerOption {
	return func(s *PrimeServer) {
		for k, v := range annotations {
			s.metadata.Annotations[k] = v
		}
	}
}

// Set the TransportCredentials to use for PrimeService gRPC listener.
func WithGRPCServerTransportCredentials(serverCredentials credentials.TransportCredentials) PrimeServerOption {
	return func(s *PrimeServer) {
		s.serverOptions = append(s.serverOptions, grpc.Creds(serverCredentials))
	}
}

// Set the TransportCredentials to use for PrimeService REST-to-gRPC client.
func WithRestClientGRPCTransportCredentials(restClientGRPCCredentials credentials.TransportCredentials) PrimeServerOption {
	return func(s *PrimeServer) {
		if restClientGRPCCredentials != nil {
			s.dialOptions = append(s.dialOptions, grpc.WithTransportCredentials(restClientGRPCCredentials))
		}
	}
}

// Set the authority string to use for REST-gRPC gateway calls.
func WithRestClientAuthority(restClientAuthority string) PrimeServerOption {
	return func(s *PrimeServer) {
		if restClientAuthority != "" {
			s.dialOptions = append(s.dialOptions, grpc.WithAuthority(restClientAuthority))
		}
	}
}

// Generate a run of primes for the parsed start bound. The deterministic
// 64-bit engine handles any bound that fits a uint64; if it exhausts the
// numeric range, or the bound is wider than 64 bits, the arbitrary-precision
// engine continues from where it stopped.
func computeRun(start *big.Int, count int) ([]string, string) {
	run := make([]string, 0, count)
	engine := "big"
	if start.Sign() >= 0 && start.IsUint64() {
		engine = "u64"
		for _, p := range primegen.GeneratePrimes64(start.Uint64(), count) {
			run = append(run, strconv.FormatUint(p, 10))
		}
	}
	if len(run) < count {
		resume := new(big.Int).Set(start)
		if len(run) > 0 {
			engine = "u64+big"
			resume.SetString(run[len(run)-1], 10)
			resume.Add(resume, big.NewInt(1))
		} else {
			// The 64-bit engine contributed nothing; the run is
			// entirely the arbitrary-precision engine's.
			engine = "big"
		}
		g := primegen.NewGenerator()
		for _, p := range g.GeneratePrimes(resume, count-len(run)) {
			run = append(run, p.String())
		}
	}
	return run, engine
}

// Implement the PrimeService GeneratePrimes RPC method.
//
//nolint:funlen // OTEL options make this function appear longer than expected.
func (s *PrimeServer) GeneratePrimes(ctx context.Context, in *generated.GeneratePrimesRequest) (*generated.GeneratePrimesResponse, error) {
	logger := s.logger.WithValues("start", in.Start, "count", in.Count)
	logger.Info("GeneratePrimes: enter")
	if in.Count > MaxRunCount {
		return nil, status.Error(codes.InvalidArgument, ErrCountTooLarge.Error()) //nolint:wrapcheck // Errors returned should be gRPC statuses
	}
	start := new(big.Int)
	if in.Start != "" {
		if _, ok := start.SetString(in.Start, 10); !ok {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("start %q cannot be parsed as an integer", in.Start)) //nolint:wrapcheck // Errors returned should be gRPC statuses
		}
	}
	key := cachepkg.RunKey(start.String(), in.Count)
	attributes := []attribute.KeyValue{
		attribute.String(OpenTelemetryPackageIdentifier+".start", start.String()),
		attribute.Int64(OpenTelemetryPackageIdentifier+".count", int64(in.Count)),
		attribute.String(OpenTelemetryPackageIdentifier+".cacheKey", key),
	}
	ctx, span := otel.Tracer(OpenTelemetryPackageIdentifier).Start(ctx, OpenTelemetryPackageIdentifier+"/GeneratePrimes")
	defer span.End()
	span.SetAttributes(attributes...)
	span.AddEvent("Checking cache")
	encoded, err := s.cache.GetRun(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.cacheErrors.Add(ctx, 1, metric.WithAttributes(attributes...))
		return nil, status.Error(codes.Internal, fmt.Sprintf("cache %T GetRun method returned an error: %v", s.cache, err)) //nolint:wrapcheck // Errors returned should be gRPC statuses
	}
	var primes []string
	if encoded == "" {
		attributes := append(attributes, attribute.Bool(OpenTelemetryPackageIdentifier+".cache_hit", false))
		span.SetAttributes(attributes...)
		span.AddEvent("Generating prime run")
		s.cacheMisses.Add(ctx, 1, metric.WithAttributes(attributes...))
		ts := time.Now()
		var engine string
		primes, engine = computeRun(start, int(in.Count))
		span.SetAttributes(attribute.String(OpenTelemetryPackageIdentifier+".engine", engine))
		s.generationMs.Record(ctx, time.Since(ts).Milliseconds(), metric.WithAttributes(attributes...))
		if err = s.cache.SetRun(ctx, key, cachepkg.EncodeRun(primes)); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			s.cacheErrors.Add(ctx, 1, metric.WithAttributes(attributes...))
			return nil, status.Error(codes.Internal, fmt.Sprintf("cache %T SetRun method returned an error: %v", s.cache, err)) //nolint:wrapcheck // Errors returned should be gRPC statuses
		}
	} else {
		attributes := append(attributes, attribute.Bool(OpenTelemetryPackageIdentifier+".cache_hit", true))
		span.SetAttributes(attributes...)
		s.cacheHits.Add(ctx, 1, metric.WithAttributes(attributes...))
		primes = cachepkg.DecodeRun(encoded)
	}
	logger.Info("GeneratePrimes: exit", "found", len(primes))
	return &generated.GeneratePrimesResponse{
		Start:    in.Start,
		Primes:   primes,
		Metadata: s.metadata,
	}, nil
}

// Create a new grpc.Server that is ready to be attached to a net.Listener.
func (s *PrimeServer) NewGrpcServer() *grpc.Server {
	s.logger.V(1).Info("Building a standard gRPC server")
	grpcServer := grpc.NewServer(s.serverOptions...)
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	generated.RegisterPrimeServiceServer(grpcServer, s)
	reflection.Register(grpcServer)
	return grpcServer
}

// Create a new REST gateway handler that translates and forwards incoming REST
// requests to the specified gRPC endpoint address.
func (s *PrimeServer) NewRestGatewayHandler(ctx context.Context, grpcAddress string) (http.Handler, error) {
	mux := runtime.NewServeMux()
	if err := generated.RegisterPrimeServiceHandlerFromEndpoint(ctx, mux, grpcAddress, s.dialOptions); err != nil {
		return nil, fmt.Errorf("failed to register PrimeService handler for REST gateway: %w", err)
	}
	if err := mux.HandlePath("GET", "/api/v1/swagger.json",
		func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
			w.Header().Add("Content-Type", "application/json")
			if _, err := w.Write(generated.SwaggerJSON); err != nil {
				s.logger.Error(err, "Writing swagger JSON to response raised an error; continuing")
			}
		},
	); err != nil {
		return nil, fmt.Errorf("failed to register /api/v1 handler for swagger definition: %w", err)
	}
	return otelhttp.NewHandler(mux,
		OpenTelemetryPackageIdentifier+"/RestGatewayHandler",
		otelhttp.WithMessageEvents(otelhttp.ReadEvents, otelhttp.WriteEvents),
	), nil
}
