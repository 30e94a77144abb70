package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	gcpdetectors "go.opentelemetry.io/contrib/detectors/gcp"
	hostMetrics "go.opentelemetry.io/contrib/instrumentation/host"
	runtimeMetrics "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding/gzip"
)

const (
	metricReportingPeriod = 30 * time.Second
)

// Defines the function signature of OpenTelemetry shutdown handlers.
type shutdownFunction func(context.Context) error

// Create a new OpenTelemetry resource to describe the source of metrics and traces.
func newTelemetryResource(ctx context.Context, name string) (*resource.Resource, error) {
	logger := logger.V(1).WithValues("name", name)
	logger.Info("Creating new OpenTelemetry resource descriptor")
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for telemetry resource: %w", err)
	}
	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceNamespace(PackageName),
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
			semconv.ServiceInstanceID(id.String()),
		),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcessPID(),
		resource.WithProcessExecutableName(),
		resource.WithProcessExecutablePath(),
		resource.WithProcessCommandArgs(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithProcessRuntimeDescription(),
		// These detectors place last to override the base service attributes with specifiers from GCP
		resource.WithDetectors(
			&gcpdetectors.GCE{},
			&gcpdetectors.GKE{},
			gcpdetectors.NewCloudRun(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create new telemetry resource: %w", err)
	}
	logger.V(1).Info("OpenTelemetry resource created", "resource", res)
	return res, nil
}

// Builds the transport credentials and dial options shared by the OTLP metric
// and trace exporters from the configuration options provided.
func newTelemetryCredentials() (credentials.TransportCredentials, []grpc.DialOption, error) {
	var dialOptions []grpc.DialOption
	if authority := viper.GetString(OpenTelemetryAuthorityFlagName); authority != "" {
		dialOptions = append(dialOptions, grpc.WithAuthority(authority))
	}
	if viper.GetBool(OpenTelemetryInsecureFlagName) {
		return insecure.NewCredentials(), dialOptions, nil
	}
	tlsConf, err := newTLSConfig(viper.GetString(TLSCertFlagName), viper.GetString(TLSKeyFlagName))
	if err != nil {
		return nil, nil, err
	}
	pool, err := newCACertPool(viper.GetString(CACertFlagName))
	if err != nil {
		return nil, nil, err
	}
	tlsConf.RootCAs = pool
	return credentials.NewTLS(tlsConf), dialOptions, nil
}

// Initialises a periodic reader that will send OpenTelemetry metrics to the
// target provided, returning shutdown functions.
func initMetrics(ctx context.Context, target string, creds credentials.TransportCredentials, dialOptions []grpc.DialOption, res *resource.Resource) ([]shutdownFunction, error) {
	logger := logger.V(1).WithValues("target", target)
	logger.Info("Creating OpenTelemetry metric handlers")
	if target == "" {
		logger.V(0).Info("OpenTelemetry endpoint is not set; no metrics will be sent to collector")
		return nil, nil
	}
	options := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(target),
		otlpmetricgrpc.WithCompressor(gzip.Name),
		otlpmetricgrpc.WithTLSCredentials(creds),
	}
	if len(dialOptions) > 0 {
		options = append(options, otlpmetricgrpc.WithDialOption(dialOptions...))
	}
	exporter, err := otlpmetricgrpc.New(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create new metric exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(metricReportingPeriod),
		)),
	)
	otel.SetMeterProvider(provider)
	if err = runtimeMetrics.Start(runtimeMetrics.WithMeterProvider(provider)); err != nil {
		return nil, fmt.Errorf("failed to start runtime metrics: %w", err)
	}
	if err = hostMetrics.Start(hostMetrics.WithMeterProvider(provider)); err != nil {
		return nil, fmt.Errorf("failed to start host metrics: %w", err)
	}
	logger.V(1).Info("OpenTelemetry metric handlers created and started")
	return []shutdownFunction{provider.Shutdown, exporter.Shutdown}, nil
}

// Initialises a pipeline handler that will send OpenTelemetry spans to the
// target provided, returning shutdown functions.
func initTrace(ctx context.Context, target string, creds credentials.TransportCredentials, dialOptions []grpc.DialOption, res *resource.Resource, sampler sdktrace.Sampler) ([]shutdownFunction, error) {
	logger := logger.V(1).WithValues("target", target, "sampler", sampler.Description())
	logger.Info("Creating new OpenTelemetry trace exporter")
	if target == "" {
		logger.V(0).Info("OpenTelemetry endpoint is not set; no traces will be sent to collector")
		return nil, nil
	}
	options := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(target),
		otlptracegrpc.WithCompressor(gzip.Name),
		otlptracegrpc.WithTLSCredentials(creds),
	}
	if len(dialOptions) > 0 {
		options = append(options, otlptracegrpc.WithDialOption(dialOptions...))
	}
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(options...))
	if err != nil {
		return nil, fmt.Errorf("failed to create new trace exporter: %w", err)
	}
	spanProcessor := sdktrace.NewBatchSpanProcessor(exporter)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sampler),
		sdktrace.WithSpanProcessor(spanProcessor),
		sdktrace.WithResource(res),
	)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetTracerProvider(provider)
	logger.V(1).Info("OpenTelemetry trace handlers created and started")
	return []shutdownFunction{provider.Shutdown, exporter.Shutdown}, nil
}

// Initializes OpenTelemetry metric and trace processing and delivery to a
// collector target, returning the functions that must be called to shutdown
// the background pipeline processes.
func initTelemetry(ctx context.Context, name string, sampler sdktrace.Sampler) ([]shutdownFunction, error) {
	target := viper.GetString(OpenTelemetryTargetFlagName)
	logger := logger.V(1).WithValues("name", name, "target", target, "sampler", sampler.Description())
	logger.Info("Initializing OpenTelemetry")
	res, err := newTelemetryResource(ctx, name)
	if err != nil {
		return nil, err
	}
	creds, dialOptions, err := newTelemetryCredentials()
	if err != nil {
		return nil, err
	}
	shutdownFunctions, err := initMetrics(ctx, target, creds, dialOptions, res)
	if err != nil {
		return nil, err
	}
	shutdownTraces, err := initTrace(ctx, target, creds, dialOptions, res, sampler)
	if err != nil {
		return nil, err
	}
	logger.Info("OpenTelemetry initialization complete")
	return append(shutdownFunctions, shutdownTraces...), nil
}
