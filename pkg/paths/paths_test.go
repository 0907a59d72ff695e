package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/DevVenusK/tuist/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestConfigDirOverride(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/tmp/custom-config")

	assert.Equal(t, "/tmp/custom-config", paths.ConfigDir())
	assert.Equal(t, filepath.Join("/tmp/custom-config", paths.ConfigFileName), paths.ConfigFile())
}

func TestStateDirOverride(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "/tmp/custom-state")

	assert.Equal(t, "/tmp/custom-state", paths.StateDir())
	assert.Equal(t, filepath.Join("/tmp/custom-state", paths.LogFileName), paths.LogFile())
}

func TestDefaultDirsEndWithAppName(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvStateDir, "")

	assert.Equal(t, paths.AppDirName, filepath.Base(paths.ConfigDir()))
	assert.Equal(t, paths.AppDirName, filepath.Base(paths.StateDir()))
}
