package bundle

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go_keystore_rotation/pkg/config"
)

type fakeRunner struct {
	commands [][]string
	runErr   error
	removed  []string
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	f.commands = append(f.commands, append([]string{name}, args...))
	return "", f.runErr
}

func (f *fakeRunner) ReadFile(path string) ([]byte, error) { return nil, errors.New("not used") }
func (f *fakeRunner) Exists(path string) (bool, error)     { return false, nil }
func (f *fakeRunner) Copy(src, dest string) error          { return nil }
func (f *fakeRunner) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}
func (f *fakeRunner) Close() error { return nil }

func TestNewArchive(t *testing.T) {
	a, err := NewArchive("/tmp", "controller")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(a.Path, "/tmp/controller-"))
	require.True(t, strings.HasSuffix(a.Path, ".p12"))
	// 16 random bytes, hex encoded.
	require.Len(t, a.Password, 32)
}

func TestNewArchivePathsAndPasswordsDiffer(t *testing.T) {
	a, err := NewArchive("/tmp", "controller")
	require.NoError(t, err)
	b, err := NewArchive("/tmp", "controller")
	require.NoError(t, err)

	require.NotEqual(t, a.Path, b.Path)
	require.NotEqual(t, a.Password, b.Password)
}

func TestExportCommand(t *testing.T) {
	cfg := &config.Config{
		Paths: config.PathsConfig{Cert: "/etc/controller/cert.pem", Key: "/etc/controller/key.pem"},
		Store: config.StoreConfig{Alias: "controller"},
		Tools: config.ToolsConfig{OpenSSL: "openssl"},
	}
	r := &fakeRunner{}
	a := &Archive{Path: "/tmp/controller-x.p12", Password: "onetime"}

	require.NoError(t, Export(r, cfg, a))
	require.Len(t, r.commands, 1)

	cmd := strings.Join(r.commands[0], " ")
	require.Contains(t, cmd, "pkcs12 -export")
	require.Contains(t, cmd, "-in /etc/controller/cert.pem")
	require.Contains(t, cmd, "-inkey /etc/controller/key.pem")
	require.Contains(t, cmd, "-name controller")
	require.Contains(t, cmd, "pass:onetime")
}

func TestExportFailure(t *testing.T) {
	cfg := &config.Config{Tools: config.ToolsConfig{OpenSSL: "openssl"}}
	r := &fakeRunner{runErr: errors.New("exit status 1")}

	require.Error(t, Export(r, cfg, &Archive{Path: "/tmp/a.p12", Password: "x"}))
}

func TestRemove(t *testing.T) {
	r := &fakeRunner{}
	Remove(r, &Archive{Path: "/tmp/controller-x.p12"})
	require.Equal(t, []string{"/tmp/controller-x.p12"}, r.removed)
}
