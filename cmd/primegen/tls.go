package main

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

var errFailedToAppendCACert = errors.New("failed to append CA cert to CA pool")

// Builds an x509 certificate pool from the PEM file at cacertFile. A nil pool
// is returned when cacertFile is empty, leaving callers with the system roots.
func newCACertPool(cacertFile string) (*x509.CertPool, error) {
	if cacertFile == "" {
		return nil, nil
	}
	ca, err := os.ReadFile(cacertFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate from file %s: %w", cacertFile, err)
	}
	pool := x509.NewCertPool()
	if ok := pool.AppendCertsFromPEM(ca); !ok {
		return nil, errFailedToAppendCACert
	}
	return pool, nil
}

// Builds a TLS configuration from the certificate and key files, if provided.
func newTLSConfig(certFile, keyFile string) (*tls.Config, error) {
	tlsConf := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	if certFile != "" {
		cert, err := tls.LoadX509KeyPair(certFile, keyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load certificate and key from %s and %s: %w", certFile, keyFile, err)
		}
		tlsConf.Certificates = []tls.Certificate{cert}
	}
	return tlsConf, nil
}
