package certs

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"strings"
)

// Fingerprint returns the hex SHA-256 checksum of the raw certificate file
// contents. The stored record from the previous run is compared against
// this value to decide whether rotation is needed.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Load parses the first PEM certificate block in data.
func Load(data []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in certificate data")
	}
	if block.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return cert, nil
}

// Summary returns a short human-readable description of a certificate for
// progress logs.
func Summary(cert *x509.Certificate) string {
	sans := append([]string{}, cert.DNSNames...)
	for _, ip := range cert.IPAddresses {
		sans = append(sans, ip.String())
	}
	return fmt.Sprintf("CN=%s SANs=[%s] notAfter=%s",
		cert.Subject.CommonName,
		strings.Join(sans, ","),
		cert.NotAfter.Format("2006-01-02"))
}
