package main

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/memes/primegen/pkg/cache"
	"github.com/memes/primegen/pkg/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/credentials"
)

const (
	ServerServiceName           = "server"
	DefaultGRPCListenAddress    = ":8443"
	AddressFlagName             = "address"
	RestAddressFlagName         = "rest-address"
	RedisTargetFlagName         = "redis-target"
	LabelFlagName               = "label"
	TagFlagName                 = "tag"
	TLSClientAuthFlagName       = "tls-client-auth"
	RestClientAuthorityFlagName = "rest-authority"
	ServerShutdownTimeout       = 60 * time.Second
)

// Implements the server sub-command.
func NewServerCmd() (*cobra.Command, error) {
	serverCmd := &cobra.Command{
		Use:   ServerServiceName,
		Short: "Run a gRPC service to generate runs of prime numbers",
		Long: `Launches a gRPC PrimeService server that generates runs of primes at or above a caller supplied start bound.

An optional Redis DB can be used to cache completed runs. Metrics and traces will be sent to an OpenTelemetry collection endpoint, if specified.`,
		RunE: serverMain,
	}
	serverCmd.PersistentFlags().StringP(AddressFlagName, "a", DefaultGRPCListenAddress, "Address to listen for gRPC PrimeService requests")
	serverCmd.PersistentFlags().String(RestAddressFlagName, "", "An optional listen address to launch a REST/gRPC gateway process")
	serverCmd.PersistentFlags().String(RedisTargetFlagName, "", "An optional Redis endpoint to use as a PrimeService run cache")
	serverCmd.PersistentFlags().StringToStringP(LabelFlagName, "l", nil, "An optional label key=value to add to PrimeService response metadata; can be repeated")
	serverCmd.PersistentFlags().StringArrayP(TagFlagName, "t", nil, "An optional tag to add to PrimeService response metadata; can be repeated")
	serverCmd.PersistentFlags().Bool(TLSClientAuthFlagName, false, "Require PrimeService clients to provide a valid TLS client certificate")
	serverCmd.PersistentFlags().String(RestClientAuthorityFlagName, "", "Set the authoritative name used by the REST gateway for gRPC TLS verification, overriding hostname")
	if err := viper.BindPFlag(AddressFlagName, serverCmd.PersistentFlags().Lookup(AddressFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", AddressFlagName, err)
	}
	if err := viper.BindPFlag(RestAddressFlagName, serverCmd.PersistentFlags().Lookup(RestAddressFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", RestAddressFlagName, err)
	}
	if err := viper.BindPFlag(RedisTargetFlagName, serverCmd.PersistentFlags().Lookup(RedisTargetFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", RedisTargetFlagName, err)
	}
	if err := viper.BindPFlag(LabelFlagName, serverCmd.PersistentFlags().Lookup(LabelFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", LabelFlagName, err)
	}
	if err := viper.BindPFlag(TagFlagName, serverCmd.PersistentFlags().Lookup(TagFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", TagFlagName, err)
	}
	if err := viper.BindPFlag(TLSClientAuthFlagName, serverCmd.PersistentFlags().Lookup(TLSClientAuthFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", TLSClientAuthFlagName, err)
	}
	if err := viper.BindPFlag(RestClientAuthorityFlagName, serverCmd.PersistentFlags().Lookup(RestClientAuthorityFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", RestClientAuthorityFlagName, err)
	}
	return serverCmd, nil
}

// Server sub-command entrypoint. This function will launch the gRPC
// PrimeService and an optional REST gateway.
func serverMain(_ *cobra.Command, _ []string) error {
	address := viper.GetString(AddressFlagName)
	restAddress := viper.GetString(RestAddressFlagName)
	redisTarget := viper.GetString(RedisTargetFlagName)
	logger := logger.WithValues("address", address, "redisTarget", redisTarget, "restAddress", restAddress)
	ctx := context.Background()
	logger.V(1).Info("Preparing telemetry")
	telemetryShutdown, err := initTelemetry(ctx, ServerServiceName,
		sdktrace.ParentBased(sdktrace.TraceIDRatioBased(viper.GetFloat64(OpenTelemetrySamplingRatioFlagName))))
	if err != nil {
		return err
	}

	logger.V(1).Info("Preparing services")
	options := []server.PrimeServerOption{
		server.WithLogger(logger),
		server.WithTags(viper.GetStringSlice(TagFlagName)),
		server.WithAnnotations(viper.GetStringMapString(LabelFlagName)),
		server.WithRestClientAuthority(viper.GetString(RestClientAuthorityFlagName)),
	}
	if redisTarget != "" {
		options = append(options, server.WithCache(cache.NewRedisCache(ctx, redisTarget)))
	}
	if viper.GetString(TLSCertFlagName) != "" {
		serverCreds, err := newServerTLSCredentials()
		if err != nil {
			return err
		}
		options = append(options, server.WithGRPCServerTransportCredentials(serverCreds))
		clientCreds, err := newClientTLSCredentials()
		if err != nil {
			return err
		}
		options = append(options, server.WithRestClientGRPCTransportCredentials(clientCreds))
	}
	primeServer, err := server.NewPrimeServer(options...)
	if err != nil {
		return fmt.Errorf("failed to build PrimeService server: %w", err)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	// Both servers are built before their goroutines launch so the shutdown
	// path below never races on the pointers.
	grpcServer := primeServer.NewGrpcServer()
	var restServer *http.Server
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.V(1).Info("Starting gRPC service")
		listener, err := net.Listen("tcp", address)
		if err != nil {
			return fmt.Errorf("failed to start gRPC listener: %w", err)
		}
		if err := grpcServer.Serve(listener); err != nil {
			return fmt.Errorf("failed to start gRPC server: %w", err)
		}
		return nil
	})
	if restAddress != "" {
		restHandler, err := primeServer.NewRestGatewayHandler(ctx, address)
		if err != nil {
			return fmt.Errorf("failed to create new REST gateway handler: %w", err)
		}
		restServer = &http.Server{
			Addr:              restAddress,
			Handler:           restHandler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		g.Go(func() error {
			logger.V(1).Info("Starting REST/gRPC gateway")
			if err := restServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("restServer listener returned an error: %w", err)
			}
			return nil
		})
	}

	select {
	case <-interrupt:
		break
	case <-ctx.Done():
		break
	}
	logger.V(1).Info("Shutting down on signal")
	cancel()
	ctx, shutdown := context.WithTimeout(context.Background(), ServerShutdownTimeout)
	defer shutdown()
	if restServer != nil {
		if err := restServer.Shutdown(ctx); err != nil {
			logger.Error(err, "Failed to shutdown REST gateway cleanly")
		}
	}
	grpcServer.GracefulStop()
	for _, fn := range telemetryShutdown {
		if err := fn(ctx); err != nil {
			logger.Error(err, "Failed to shutdown telemetry cleanly")
		}
	}
	return g.Wait() //nolint:wrapcheck // Errors from group are already wrapped
}

// Creates the gRPC transport credentials to use with the PrimeService listener
// from the various configuration options provided.
func newServerTLSCredentials() (credentials.TransportCredentials, error) {
	certFile := viper.GetString(TLSCertFlagName)
	keyFile := viper.GetString(TLSKeyFlagName)
	cacertFile := viper.GetString(CACertFlagName)
	tlsClientAuth := viper.GetBool(TLSClientAuthFlagName)
	logger := logger.V(1).WithValues("certFile", certFile, "keyFile", keyFile, "cacertFile", cacertFile)
	logger.Info("Preparing server TLS credentials")
	tlsConf, err := newTLSConfig(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	pool, err := newCACertPool(cacertFile)
	if err != nil {
		return nil, err
	}
	tlsConf.ClientCAs = pool

	switch {
	case tlsClientAuth:
		tlsConf.ClientAuth = tls.RequireAndVerifyClientCert

	case pool != nil:
		tlsConf.ClientAuth = tls.VerifyClientCertIfGiven

	default:
		tlsConf.ClientAuth = tls.NoClientCert
	}
	return credentials.NewTLS(tlsConf), nil
}
