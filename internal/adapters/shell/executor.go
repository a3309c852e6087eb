// Package shell provides the child-process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"go.trai.ch/zerr"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// Executor implements ports.Executor using os/exec.
//
// Children run in their own process group, and cancellation kills the whole
// group, so a long toolchain invocation interrupted by SIGINT/SIGTERM never
// leaves orphaned compiler processes behind.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the command, streaming its output to the logger unfiltered
// and, when a telemetry vertex is recording on the context, to the vertex
// as well. The command environment is the host environment with cmd.Env
// layered on top (override on conflict). A non-zero exit status is returned
// as an error carrying the exit code as metadata.
func (e *Executor) Run(ctx context.Context, command domain.Command) error {
	cmd, err := e.prepare(ctx, command)
	if err != nil {
		return err
	}

	cmd.Stdout = e.outputWriter(ctx, "info")
	cmd.Stderr = e.outputWriter(ctx, "error")

	if err := cmd.Run(); err != nil {
		return wrapRunError(err, command)
	}
	return nil
}

// Output executes the command and returns its captured stdout, trimmed of
// trailing whitespace.
func (e *Executor) Output(ctx context.Context, command domain.Command) (string, error) {
	cmd, err := e.prepare(ctx, command)
	if err != nil {
		return "", err
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		return "", wrapRunError(err, command)
	}
	return strings.TrimRight(stdout.String(), " \t\r\n"), nil
}

// outputWriter builds the stream destination for one child output channel:
// always the logger, plus the recording vertex when one is active.
func (e *Executor) outputWriter(ctx context.Context, level string) io.Writer {
	w := io.Writer(&logWriter{logger: e.logger, level: level})
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		w = io.MultiWriter(w, vertex.Stdout())
	}
	return w
}

func (e *Executor) prepare(ctx context.Context, command domain.Command) (*exec.Cmd, error) {
	if len(command.Args) == 0 {
		return nil, zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, command.Args[0], command.Args[1:]...) //nolint:gosec // argv is built by the pipeline
	cmd.Env = mergeEnvironment(os.Environ(), command.Env)
	if command.Dir != "" {
		cmd.Dir = command.Dir
	}

	// Scoped-resource handling: new process group, and cancellation signals
	// the group rather than just the immediate child.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	cmd.WaitDelay = 10 * time.Second

	return cmd, nil
}

func wrapRunError(err error, command domain.Command) error {
	exitCode := -1 // unknown or killed by signal
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	wrapped := zerr.Wrap(err, "command failed")
	wrapped = zerr.With(wrapped, "command", command.Args[0])
	return zerr.With(wrapped, "exit_code", exitCode)
}

// ExitCode extracts the exit code recorded by Run, or -1 if none is present.
func ExitCode(err error) int {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return -1
	}
	if code, ok := zErr.Metadata()["exit_code"].(int); ok {
		return code
	}
	return -1
}

type logWriter struct {
	logger ports.Logger
	level  string
}

// Write splits the chunk into lines and forwards each to the logger.
func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

// mergeEnvironment layers overrides on top of the base "KEY=VALUE" set.
func mergeEnvironment(base, overrides []string) []string {
	envMap := make(map[string]string, len(base)+len(overrides))
	order := make([]string, 0, len(base)+len(overrides))
	for _, entry := range append(append([]string{}, base...), overrides...) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
