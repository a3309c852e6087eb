package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/droidforge/droidforge/internal/adapters/config"
	"github.com/droidforge/droidforge/internal/core/ports"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeProject(t, `
build_root: out
parallelism: 2
apps:
  helloworld:
    formal_name: Hello World
    bundle: com.example
    version: "0.0.1"
    permission:
      camera: true
      android.permission.VIBRATE: true
    feature:
      android.hardware.camera.front: false
    activity: com.example.Main
`)

	project, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", project.Layout.BuildRoot)
	assert.Equal(t, "dist", project.Layout.DistRoot)
	assert.Equal(t, 2, project.Parallelism)

	app, err := project.App("helloworld")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", app.FormalName)
	assert.Equal(t, "com.example", app.Bundle)
	assert.Equal(t, "com.example.Main", app.EntryActivity())
	assert.True(t, app.Permissions["camera"])
	assert.True(t, app.Permissions["android.permission.VIBRATE"])
}

func TestLoader_ImplementsPort(t *testing.T) {
	path := writeProject(t, `
apps:
  helloworld:
    bundle: com.example
    version: "0.0.1"
`)

	var loader ports.ConfigLoader = config.NewLoader()
	project, err := loader.Load(filepath.Dir(path))
	require.NoError(t, err)

	_, err = project.App("helloworld")
	assert.NoError(t, err)
}

func TestLoad_FormalNameDefaultsToAppName(t *testing.T) {
	path := writeProject(t, `
apps:
  helloworld:
    bundle: com.example
    version: "0.0.1"
`)

	project, err := config.Load(path)
	require.NoError(t, err)

	app, err := project.App("helloworld")
	require.NoError(t, err)
	assert.Equal(t, "helloworld", app.FormalName)
	assert.NotNil(t, app.Permissions)
	assert.NotNil(t, app.Features)
}

func TestLoad_MissingBundle(t *testing.T) {
	path := writeProject(t, `
apps:
  helloworld:
    version: "0.0.1"
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bundle identifier")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "helloworld", zErr.Metadata()["app_name"])
}

func TestLoad_MissingVersion(t *testing.T) {
	path := writeProject(t, `
apps:
  helloworld:
    bundle: com.example
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestLoad_NoApps(t *testing.T) {
	path := writeProject(t, `build_root: out`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no apps")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("File Not Found", func(t *testing.T) {
		_, err := config.Load("non-existent-file.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read project file")
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := writeProject(t, `
apps:
  helloworld:
    bundle: [unclosed
`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse project file")
	})
}
