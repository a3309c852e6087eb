package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/droidforge/droidforge/cmd/droidforge/commands"
	"github.com/droidforge/droidforge/internal/app"
	"github.com/droidforge/droidforge/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type fakeLoader struct {
	project *domain.Project
	err     error
}

func (f *fakeLoader) Load(string) (*domain.Project, error) {
	return f.project, f.err
}

type recordingBuilder struct {
	requests []domain.BuildRequest
}

func (r *recordingBuilder) Build(_ context.Context, layout domain.Layout, req domain.BuildRequest) (*domain.BuildResult, error) {
	r.requests = append(r.requests, req)
	return &domain.BuildResult{
		Stage:    domain.StageArtifactResolved,
		Artifact: layout.BinaryPath(req.App, req.Release),
	}, nil
}

func newCLI(t *testing.T, loader *fakeLoader, builder *recordingBuilder) *commands.CLI {
	t.Helper()
	a := app.New(loader, builder, nil, nil, nil, nopLogger{})
	return commands.New(a)
}

func testProject(t *testing.T) *domain.Project {
	t.Helper()
	return &domain.Project{
		Layout: domain.Layout{BuildRoot: t.TempDir(), DistRoot: t.TempDir()},
		Apps: map[string]*domain.AppDescriptor{
			"helloworld": {
				AppName:    "helloworld",
				FormalName: "Hello World",
				Bundle:     "com.example",
				Version:    "0.0.1",
			},
		},
	}
}

func TestBuildCommand_Debug(t *testing.T) {
	builder := &recordingBuilder{}
	cli := newCLI(t, &fakeLoader{project: testProject(t)}, builder)
	cli.SetArgs([]string{"build"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Len(t, builder.requests, 1)
	assert.False(t, builder.requests[0].Release)
	assert.Equal(t, "helloworld", builder.requests[0].App.AppName)
}

func TestPackageCommand_Release(t *testing.T) {
	builder := &recordingBuilder{}
	cli := newCLI(t, &fakeLoader{project: testProject(t)}, builder)
	cli.SetArgs([]string{"package", "helloworld"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Len(t, builder.requests, 1)
	assert.True(t, builder.requests[0].Release)
}

func TestBuildCommand_LoadFailure(t *testing.T) {
	cli := newCLI(t, &fakeLoader{err: zerr.New("no droidforge.yaml")}, &recordingBuilder{})
	cli.SetArgs([]string{"build"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load project")
}

func TestRunCommand_RequiresAppName(t *testing.T) {
	cli := newCLI(t, &fakeLoader{project: testProject(t)}, &recordingBuilder{})
	cli.SetArgs([]string{"run"})

	err := cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	cli := newCLI(t, &fakeLoader{project: testProject(t)}, &recordingBuilder{})

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "droidforge")
}
