package dist_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidforge/droidforge/internal/adapters/dist"
	"github.com/droidforge/droidforge/internal/core/domain"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(string) {}
func (l *recordingLogger) Error(error) {}

func TestPublish_CopiesToDistribution(t *testing.T) {
	app := &domain.AppDescriptor{
		AppName:    "helloworld",
		FormalName: "Hello World",
		Bundle:     "com.example",
		Version:    "0.0.1",
	}
	layout := domain.Layout{BuildRoot: t.TempDir(), DistRoot: filepath.Join(t.TempDir(), "dist")}
	require.NoError(t, os.MkdirAll(layout.BundlePath(app), 0o755))

	binary := layout.BinaryPath(app, true)
	require.NoError(t, os.WriteFile(binary, []byte("apk-bytes"), 0o644))

	log := &recordingLogger{}
	destination, err := dist.NewPublisher(log).Publish(context.Background(), layout, app, true)
	require.NoError(t, err)

	assert.Equal(t, layout.DistributionPath(app, true), destination)
	copied, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, []byte("apk-bytes"), copied)

	// The canonical artifact stays in place.
	assert.FileExists(t, binary)

	require.NotEmpty(t, log.infos)
	assert.Contains(t, log.infos[0], "xxh64:")
}

func TestPublish_DebugNaming(t *testing.T) {
	app := &domain.AppDescriptor{
		AppName:    "helloworld",
		FormalName: "Hello World",
		Version:    "0.0.1",
	}
	layout := domain.Layout{BuildRoot: t.TempDir(), DistRoot: t.TempDir()}
	require.NoError(t, os.MkdirAll(layout.BundlePath(app), 0o755))
	require.NoError(t, os.WriteFile(layout.BinaryPath(app, false), []byte("x"), 0o644))

	destination, err := dist.NewPublisher(&recordingLogger{}).Publish(context.Background(), layout, app, false)
	require.NoError(t, err)
	assert.Equal(t, "Hello World-0.0.1.debug.apk", filepath.Base(destination))
}

func TestPublish_NotBuilt(t *testing.T) {
	app := &domain.AppDescriptor{AppName: "helloworld", FormalName: "Hello World", Version: "0.0.1"}
	layout := domain.Layout{BuildRoot: t.TempDir(), DistRoot: t.TempDir()}

	_, err := dist.NewPublisher(&recordingLogger{}).Publish(context.Background(), layout, app, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotBuilt)
}
