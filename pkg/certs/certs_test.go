package certs

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// selfSignedPEM generates a throwaway self-signed certificate for tests.
func selfSignedPEM(t *testing.T, cn string, sans []string) []byte {
	t.Helper()

	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: cn},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().AddDate(0, 0, 365),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		BasicConstraintsValid: true,
	}
	for _, san := range sans {
		if ip := net.ParseIP(san); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, san)
		}
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, template, template, &privKey.PublicKey, privKey)
	require.NoError(t, err)

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes})
}

func TestFingerprintIsStable(t *testing.T) {
	data := selfSignedPEM(t, "controller.local", nil)
	require.Equal(t, Fingerprint(data), Fingerprint(data))
	require.Len(t, Fingerprint(data), 64)
}

func TestFingerprintDetectsChange(t *testing.T) {
	a := selfSignedPEM(t, "controller.local", nil)
	b := selfSignedPEM(t, "controller.local", nil)
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestLoadParsesCertificate(t *testing.T) {
	data := selfSignedPEM(t, "controller.local", []string{"controller.local", "10.0.0.5"})

	cert, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, "controller.local", cert.Subject.CommonName)
	require.Contains(t, cert.DNSNames, "controller.local")
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load([]byte("not a certificate"))
	require.Error(t, err)
}

func TestLoadRejectsWrongBlockType(t *testing.T) {
	data := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: []byte{1, 2, 3}})
	_, err := Load(data)
	require.Error(t, err)
}

func TestSummary(t *testing.T) {
	data := selfSignedPEM(t, "controller.local", []string{"controller.local"})
	cert, err := Load(data)
	require.NoError(t, err)

	s := Summary(cert)
	require.Contains(t, s, "CN=controller.local")
	require.Contains(t, s, "controller.local")
	require.Contains(t, s, "notAfter=")
}
