package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
identity: controller.example.com
workspace_dir: /var/lib/keystore-rotate
issuer:
  command: issue-agent
  extra_args: ["ca", "certificate"]
paths:
  cert: /etc/controller/cert.pem
  key: /etc/controller/key.pem
store:
  path: /var/lib/controller/keystore
  alias: controller
  password: hunter2
service:
  name: controller
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	require.Equal(t, "controller.example.com", cfg.Identity)
	require.Equal(t, []string{"ca", "certificate"}, cfg.Issuer.ExtraArgs)
	require.Equal(t, "controller", cfg.Store.Alias)
	require.False(t, cfg.Remote())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	require.Equal(t, "keytool", cfg.Tools.Keytool)
	require.Equal(t, "openssl", cfg.Tools.OpenSSL)
	// Key password falls back to the store password.
	require.Equal(t, "hunter2", cfg.Store.KeyPassword)
	require.Positive(t, cfg.Service.StopTimeoutSeconds)
	require.Positive(t, cfg.Service.StartTimeoutSeconds)
}

func TestStorePasswordFromEnvironment(t *testing.T) {
	content := `
identity: controller.example.com
issuer:
  command: issue-agent
paths:
  cert: /tmp/cert.pem
  key: /tmp/key.pem
store:
  path: /tmp/keystore
  alias: controller
service:
  name: controller
`
	t.Setenv("KEYSTORE_PASSWORD", "from-env")

	cfg, err := LoadConfig(writeConfig(t, content))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Store.Password)
	require.Equal(t, "from-env", cfg.Store.KeyPassword)
}

func TestValidateRejectsIncompleteConfig(t *testing.T) {
	cases := map[string]string{
		"missing identity": `
issuer: {command: issue-agent}
paths: {cert: /tmp/c, key: /tmp/k}
store: {path: /tmp/s, alias: a, password: p}
service: {name: svc}
`,
		"missing store alias": `
identity: x
issuer: {command: issue-agent}
paths: {cert: /tmp/c, key: /tmp/k}
store: {path: /tmp/s, password: p}
service: {name: svc}
`,
		"missing service name": `
identity: x
issuer: {command: issue-agent}
paths: {cert: /tmp/c, key: /tmp/k}
store: {path: /tmp/s, alias: a, password: p}
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestArchiveDir(t *testing.T) {
	cfg := &Config{WorkspaceDir: "/work"}
	require.Equal(t, "/work", cfg.ArchiveDir())

	cfg.SSH.Host = "10.0.0.5"
	require.Equal(t, "/tmp", cfg.ArchiveDir())
}
