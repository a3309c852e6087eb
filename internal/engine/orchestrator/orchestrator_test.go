package orchestrator_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"github.com/droidforge/droidforge/internal/adapters/p4a"
	"github.com/droidforge/droidforge/internal/adapters/pyenv"
	"github.com/droidforge/droidforge/internal/adapters/sdk"
	"github.com/droidforge/droidforge/internal/adapters/telemetry"
	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports/mocks"
	"github.com/droidforge/droidforge/internal/engine/orchestrator"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// fixture wires an orchestrator against a real on-disk SDK layout and a
// mocked executor standing in for the external p4a process.
type fixture struct {
	orch   *orchestrator.Orchestrator
	exec   *mocks.MockExecutor
	layout domain.Layout
	app    *domain.AppDescriptor
}

func newFixture(t *testing.T, withNDK bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	sdkRoot := t.TempDir()
	if withNDK {
		require.NoError(t, os.MkdirAll(filepath.Join(sdkRoot, "ndk", "25.2.9519653"), 0o755))
	}

	app := &domain.AppDescriptor{
		AppName:     "helloworld",
		FormalName:  "Hello World",
		Bundle:      "com.example",
		Version:     "0.0.1",
		Permissions: map[string]bool{"camera": true},
		Features:    map[string]bool{},
	}
	layout := domain.Layout{BuildRoot: t.TempDir(), DistRoot: t.TempDir()}
	require.NoError(t, os.MkdirAll(layout.BundlePath(app), 0o755))

	exec := mocks.NewMockExecutor(ctrl)
	log := nopLogger{}
	toolchain := sdk.New(sdkRoot, log)

	orch := orchestrator.New(
		toolchain,
		pyenv.New(exec, log),
		p4a.NewInvoker(exec, log),
		p4a.NewArtifacts(log),
		telemetry.NewNoOp(),
		log,
	)

	return &fixture{orch: orch, exec: exec, layout: layout, app: app}
}

// expectNoProbe stubs the diagnostics probes as an absent interpreter.
func (f *fixture) expectNoProbe() {
	f.exec.EXPECT().Output(gomock.Any(), gomock.Any()).Return("", zerr.New("not found")).AnyTimes()
}

func TestBuild_DebugEndToEnd(t *testing.T) {
	f := newFixture(t, true)
	f.expectNoProbe()

	// The mocked toolchain exits 0 and writes <formal-name>-debug.apk at
	// the bundle root.
	f.exec.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd domain.Command) error {
		assert.Equal(t, "p4a", cmd.Args[0])
		assert.Contains(t, cmd.Args, "--debug")
		assert.Contains(t, cmd.Args, domain.PermCamera)
		hasNDK := false
		for _, entry := range cmd.Env {
			if strings.HasPrefix(entry, "ANDROID_NDK_HOME=") {
				hasNDK = true
			}
		}
		assert.True(t, hasNDK, "toolchain env must carry the selected NDK")
		return os.WriteFile(filepath.Join(cmd.Dir, "Hello World-debug.apk"), []byte("apk"), 0o644)
	})

	result, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{App: f.app, Release: false})
	require.NoError(t, err)

	assert.Equal(t, domain.StageArtifactResolved, result.Stage)
	assert.Equal(t, filepath.Join(f.layout.BundlePath(f.app), "Hello World-debug.apk"), result.Artifact)
	assert.FileExists(t, result.Artifact)
}

func TestBuild_ReleaseInvocationFails(t *testing.T) {
	f := newFixture(t, true)
	f.expectNoProbe()

	f.exec.EXPECT().Run(gomock.Any(), gomock.Any()).Return(zerr.With(zerr.New("command failed"), "exit_code", 1))

	result, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{App: f.app, Release: true})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrInvocationFailed)
	// The failure is terminal before any artifact search: the canonical
	// release path was never created.
	assert.Equal(t, domain.StageCapabilitiesResolved, result.Stage)
	assert.NoFileExists(t, f.layout.BinaryPath(f.app, true))
}

func TestBuild_ArtifactNotFound(t *testing.T) {
	f := newFixture(t, true)
	f.expectNoProbe()

	// Exit zero, but nothing written anywhere.
	f.exec.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{App: f.app, Release: false})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	assert.Equal(t, domain.StageInvoked, result.Stage)
	assert.NoFileExists(t, f.layout.BinaryPath(f.app, false))
}

func TestBuild_ToolchainMissing(t *testing.T) {
	f := newFixture(t, false)

	result, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{App: f.app, Release: false})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrToolchainMissing)
	assert.Equal(t, domain.StageIdle, result.Stage)
}

func TestBuild_SecondCandidateRecovered(t *testing.T) {
	f := newFixture(t, true)
	f.expectNoProbe()

	// The toolchain writes the machine-safe-name variant instead of the
	// primary candidate.
	f.exec.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd domain.Command) error {
		return os.WriteFile(filepath.Join(cmd.Dir, "helloworld-debug.apk"), []byte("apk"), 0o644)
	})

	result, err := f.orch.Build(context.Background(), f.layout, domain.BuildRequest{App: f.app, Release: false})
	require.NoError(t, err)

	assert.Equal(t, domain.StageArtifactResolved, result.Stage)
	assert.FileExists(t, f.layout.BinaryPath(f.app, false))
}
