package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsZeroState(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	require.Empty(t, st.Fingerprint)
	require.False(t, st.OriginalBackupDone)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := Path(filepath.Join(t.TempDir(), "workspace"))

	st := &State{
		Fingerprint:        "abc123",
		OriginalBackupDone: true,
		RotatedAt:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, st.Fingerprint, loaded.Fingerprint)
	require.True(t, loaded.OriginalBackupDone)
	require.True(t, st.RotatedAt.Equal(loaded.RotatedAt))
}

func TestSaveCreatesWorkspaceDir(t *testing.T) {
	workspace := filepath.Join(t.TempDir(), "nested", "workspace")
	st := &State{Fingerprint: "abc"}
	require.NoError(t, st.Save(Path(workspace)))

	_, err := os.Stat(Path(workspace))
	require.NoError(t, err)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
