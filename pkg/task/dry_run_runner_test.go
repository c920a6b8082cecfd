package task

import (
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDryRunRunnerReadFileReturnsParseableCertificate(t *testing.T) {
	r := &DryRunRunner{Host: "localhost"}

	data, err := r.ReadFile("/etc/controller/cert.pem")
	require.NoError(t, err)

	block, _ := pem.Decode(data)
	require.NotNil(t, block, "dry-run certificate must be valid PEM")
	require.Equal(t, "CERTIFICATE", block.Type)

	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	require.Equal(t, "dry-run.invalid", cert.Subject.CommonName)
}

func TestDryRunRunnerReportsFilesPresent(t *testing.T) {
	r := &DryRunRunner{Host: "localhost"}

	ok, err := r.Exists("/var/lib/controller/keystore")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDryRunRunnerMutatesNothing(t *testing.T) {
	r := &DryRunRunner{Host: "localhost"}

	require.NoError(t, r.Copy("/a", "/b"))
	require.NoError(t, r.Remove("/a"))
	require.NoError(t, r.Close())
}
