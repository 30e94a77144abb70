package main

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/memes/primegen/pkg/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	ClientServiceName     = "client"
	StartFlagName         = "start"
	CountFlagName         = "count"
	MaxTimeoutFlagName    = "max-timeout"
	InsecureFlagName      = "insecure"
	AuthorityFlagName     = "authority"
	DefaultClientRunCount = uint32(DefaultRunCount)
	DefaultClientMaxWait  = 30 * time.Second
	DefaultClientStart    = DefaultBigStart
)

// Implements the client sub-command which connects to a PrimeService server
// and requests a run of primes.
func NewClientCmd() (*cobra.Command, error) {
	clientCmd := &cobra.Command{
		Use:   ClientServiceName + " target",
		Short: "Run a gRPC PrimeService client to request a run of primes",
		Long: `Launches a gRPC client that will connect to the PrimeService target and request a run of primes at or above the start bound.

The target endpoint must be provided. Metrics and traces will be sent to an OpenTelemetry collection endpoint, if specified.`,
		Args: cobra.ExactArgs(1),
		RunE: clientMain,
	}
	clientCmd.PersistentFlags().StringP(StartFlagName, "s", DefaultClientStart, "The start bound of the requested run, as a decimal integer")
	clientCmd.PersistentFlags().Uint32P(CountFlagName, "c", DefaultClientRunCount, "The number of primes to request")
	clientCmd.PersistentFlags().DurationP(MaxTimeoutFlagName, "m", DefaultClientMaxWait, "The maximum timeout for a PrimeService request")
	clientCmd.PersistentFlags().Bool(InsecureFlagName, false, "Disable TLS verification of PrimeService")
	clientCmd.PersistentFlags().String(AuthorityFlagName, "", "Set the authoritative name of the PrimeService target for TLS verification, overriding hostname")
	if err := viper.BindPFlag(StartFlagName, clientCmd.PersistentFlags().Lookup(StartFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", StartFlagName, err)
	}
	if err := viper.BindPFlag(CountFlagName, clientCmd.PersistentFlags().Lookup(CountFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", CountFlagName, err)
	}
	if err := viper.BindPFlag(MaxTimeoutFlagName, clientCmd.PersistentFlags().Lookup(MaxTimeoutFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", MaxTimeoutFlagName, err)
	}
	if err := viper.BindPFlag(InsecureFlagName, clientCmd.PersistentFlags().Lookup(InsecureFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", InsecureFlagName, err)
	}
	if err := viper.BindPFlag(AuthorityFlagName, clientCmd.PersistentFlags().Lookup(AuthorityFlagName)); err != nil {
		return nil, fmt.Errorf("failed to bind %s pflag: %w", AuthorityFlagName, err)
	}
	return clientCmd, nil
}

// Client sub-command entrypoint. This function issues a GeneratePrimes request
// to the target endpoint and writes one prime per line to stdout.
func clientMain(cmd *cobra.Command, endpoints []string) error {
	start := viper.GetString(StartFlagName)
	count := viper.GetUint32(CountFlagName)
	logger := logger.WithValues("start", start, "count", count, "endpoints", endpoints)
	logger.V(1).Info("Preparing telemetry")
	ctx := context.Background()
	telemetryShutdown, err := initTelemetry(ctx, ClientServiceName,
		sdktrace.ParentBased(sdktrace.TraceIDRatioBased(viper.GetFloat64(OpenTelemetrySamplingRatioFlagName))))
	if err != nil {
		return err
	}
	defer func() {
		for _, fn := range telemetryShutdown {
			if err := fn(ctx); err != nil {
				logger.Error(err, "Failed to shutdown telemetry cleanly")
			}
		}
	}()
	logger.V(1).Info("Preparing client TLS config")
	tlsCreds, err := newClientTLSCredentials()
	if err != nil {
		return err
	}
	logger.V(1).Info("Building client")
	primeClient, err := client.NewPrimeClient(
		client.WithLogger(logger),
		client.WithMaxTimeout(viper.GetDuration(MaxTimeoutFlagName)),
		client.WithTransportCredentials(tlsCreds),
		client.WithAuthority(viper.GetString(AuthorityFlagName)),
	)
	if err != nil {
		return fmt.Errorf("failed to build PrimeService client: %w", err)
	}
	primes, err := primeClient.FetchPrimes(ctx, endpoints[0], start, count)
	if err != nil {
		return err
	}
	writer := bufio.NewWriter(cmd.OutOrStdout())
	defer writer.Flush()
	for _, prime := range primes {
		fmt.Fprintln(writer, prime)
	}
	return nil
}

// Creates the gRPC transport credentials to use with PrimeService client from
// the various configuration options provided.
func newClientTLSCredentials() (credentials.TransportCredentials, error) {
	certFile := viper.GetString(TLSCertFlagName)
	keyFile := viper.GetString(TLSKeyFlagName)
	cacertFile := viper.GetString(CACertFlagName)
	if viper.GetBool(InsecureFlagName) {
		logger.V(1).Info("Skipping TLS for PrimeService connection")
		return insecure.NewCredentials(), nil
	}
	logger := logger.V(1).WithValues("certFile", certFile, "keyFile", keyFile, "cacertFile", cacertFile)
	logger.Info("Preparing client TLS credentials")
	tlsConf, err := newTLSConfig(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	pool, err := newCACertPool(cacertFile)
	if err != nil {
		return nil, err
	}
	tlsConf.RootCAs = pool
	return credentials.NewTLS(tlsConf), nil
}
