package injector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/fpskit/internal/core/observability/log"
	"github.com/zeusync/fpskit/pkg/constants"
	"github.com/zeusync/fpskit/pkg/vector"
)

func TestInitializeToolkitDefaults(t *testing.T) {
	toolkit, err := InitializeToolkit(log.LevelError, ConstantsPath(filepath.Join(t.TempDir(), "none.yaml")))
	require.NoError(t, err)
	require.NotNil(t, toolkit.Logger)
	require.Equal(t, constants.Default(), toolkit.Constants)
	require.Same(t, toolkit.Constants, toolkit.Utils.Game.Constants)
	require.True(t, toolkit.Utils.Game.IsInBounds(vector.New(100, 0, 100)))
}

func TestInitializeToolkitLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  size: 50\n"), 0o600))

	toolkit, err := InitializeToolkit(log.LevelError, ConstantsPath(path))
	require.NoError(t, err)
	require.Equal(t, 50.0, toolkit.Constants.World.Size)
	require.False(t, toolkit.Utils.Game.IsInBounds(vector.New(30, 0, 0)))
}

func TestInitializeToolkitPropagatesErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  size: -3\n"), 0o600))

	_, err := InitializeToolkit(log.LevelError, ConstantsPath(path))
	require.ErrorIs(t, err, constants.ErrInvalidConstants)
}
