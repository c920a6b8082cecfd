package task

import (
	"fmt"
	"strings"
)

// placeholderCert is a throwaway self-signed certificate (CN=dry-run.invalid)
// returned by DryRunRunner.ReadFile, so certificate parsing and change
// detection can be rehearsed without touching the controller host.
const placeholderCert = `-----BEGIN CERTIFICATE-----
MIIDFTCCAf2gAwIBAgIUDXBlGUpk/AwPjSxnG8kmnkHzExIwDQYJKoZIhvcNAQEL
BQAwGjEYMBYGA1UEAwwPZHJ5LXJ1bi5pbnZhbGlkMB4XDTI2MDgyOTIzMDIzN1oX
DTQ2MDgyNDIzMDIzN1owGjEYMBYGA1UEAwwPZHJ5LXJ1bi5pbnZhbGlkMIIBIjAN
BgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAtpj+9YQ/IZBdp8f+5Mk22GXX8elz
Y2nYJufnWn+H9n5YJGcROUATZbtpsBV/7X1zeUJTfN02BNXzoNkhahSzdNuMVUpG
j5j9xrp19gxpXA4VMX4Xb7qR76K5PK5Ity9e+UD5CjlWn/JD20Jtv/ctzDWB+VwF
L5jhRR7hRsN9qModE290yZ/Fe41yCVOFGIIx8Q5oKmLvPYO+iHbWkbOoALJMUbA0
DqzKzI6u318ij6PflhubJ2ziMqgttYF36nqpQQc0nXsbujtAVK/62u8nLPqFAVWf
TI7rqJLP60sSfAmGJdIoCLLgWn1o9DO0rQ6PS98K98XVHUT7cA5VWJHLeQIDAQAB
o1MwUTAdBgNVHQ4EFgQUwV0S8kcbGmSyR+bHBqA4jPlnzQ4wHwYDVR0jBBgwFoAU
wV0S8kcbGmSyR+bHBqA4jPlnzQ4wDwYDVR0TAQH/BAUwAwEB/zANBgkqhkiG9w0B
AQsFAAOCAQEAi5lZoKZOOrCuLol1tTZsbe1mb0tbSk6BYuD2O0Y9c8IYJKEPvogY
/mvZ2AsAsstrY2eceD+PQDqzrg9tq+ZWiTijqX6zroTFOgWP0t1EaIERpowGaCeS
iTqTjqzMqdL0XYGhkbYExjsf29o2Kf/YuGbg/6h+LYH6bcoJlLmlmwUKF/8TUhm9
HvS6Ac4fk7LjDwwaDLLwvHWcpoj1y/vNNnD0XnnJ2mhCurgeDV5d4m7dnvH3RzTK
Ss6JbU3RHaCo11wAbPiEosxcS6dC5G1PnprqLPCOyriOZy7gj+cqxs54ne6IGxRC
mgm2vE46U+vwWbu85t0AHqtpITWxTO+DzA==
-----END CERTIFICATE-----
`

// DryRunRunner is a mock runner for --dry-run mode. It narrates every call
// and mutates nothing.
type DryRunRunner struct {
	Host string
}

func (r *DryRunRunner) Run(name string, args ...string) (string, error) {
	fmt.Printf("[DRY-RUN] Would run command on %s: %s %s\n", r.Host, name, strings.Join(args, " "))
	return "", nil
}

func (r *DryRunRunner) ReadFile(path string) ([]byte, error) {
	fmt.Printf("[DRY-RUN] Would read file %s:%s\n", r.Host, path)
	// Return a parseable certificate so change detection and validation
	// have something real to work with.
	return []byte(placeholderCert), nil
}

func (r *DryRunRunner) Exists(path string) (bool, error) {
	fmt.Printf("[DRY-RUN] Would check for file %s:%s\n", r.Host, path)
	// Report files as present so the full flow can be rehearsed.
	return true, nil
}

func (r *DryRunRunner) Copy(src, dest string) error {
	fmt.Printf("[DRY-RUN] Would copy %s to %s on %s\n", src, dest, r.Host)
	return nil
}

func (r *DryRunRunner) Remove(path string) error {
	fmt.Printf("[DRY-RUN] Would remove file %s:%s\n", r.Host, path)
	return nil
}

func (r *DryRunRunner) Close() error {
	// No-op for dry run
	return nil
}
