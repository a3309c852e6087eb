// Package pyenv inspects the host Python environment for pyjnius
// compatibility. Everything here is advisory: findings are logged as info
// or warning and never block a build.
package pyenv

import (
	"context"
	"strings"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// pyjnius releases on the stable 1.x line predate the CPython 3.13 C-API
// changes; the fixes live on the upstream development branch.
var runtimeThreshold = domain.Version{3, 13}

// Diagnostics implements ports.Diagnoser by probing the host interpreter.
type Diagnostics struct {
	executor ports.Executor
	logger   ports.Logger
}

// New creates a Diagnostics adapter.
func New(executor ports.Executor, logger ports.Logger) *Diagnostics {
	return &Diagnostics{executor: executor, logger: logger}
}

// Check probes the host Python version and the installed pyjnius release,
// classifies the combination, and logs the findings. A host without a
// usable interpreter produces no diagnostics at all.
func (d *Diagnostics) Check(ctx context.Context) []domain.Diagnostic {
	runtime, err := d.executor.Output(ctx, domain.Command{
		Args: []string{"python3", "-c", "import platform; print(platform.python_version())"},
	})
	if err != nil {
		return nil
	}
	runtimeVersion, err := domain.ParseVersion(runtime)
	if err != nil {
		return nil
	}

	dep, err := d.executor.Output(ctx, domain.Command{
		Args: []string{"python3", "-c", "import pyjnius; print(getattr(pyjnius, '__version__', 'unknown'))"},
	})
	installed := dep
	if err != nil {
		installed = "" // import failed: not installed
	}

	diags := Classify(runtimeVersion, installed)
	for _, diag := range diags {
		if diag.Severity == domain.SeverityWarning {
			d.logger.Warn(diag.Message)
		} else {
			d.logger.Info(diag.Message)
		}
	}
	return diags
}

// Classify maps a host runtime version and an installed pyjnius version
// (empty when absent) to advisory diagnostics.
func Classify(runtime domain.Version, installed string) []domain.Diagnostic {
	if runtime.Compare(runtimeThreshold) < 0 {
		// Older runtimes have no known pyjnius incompatibility.
		return nil
	}

	if installed == "" {
		return []domain.Diagnostic{{
			Severity: domain.SeverityInfo,
			Message:  "no pyjnius found in environment - it will be installed automatically during the build",
		}}
	}

	if suspectRelease(installed) {
		return []domain.Diagnostic{{
			Severity: domain.SeverityWarning,
			Message: "pyjnius " + installed + " may be incompatible with Python " + runtime.String() +
				"; the build will use the correct version, but your development environment may need:" +
				" pip install git+https://github.com/kivy/pyjnius.git",
		}}
	}

	return []domain.Diagnostic{{
		Severity: domain.SeverityInfo,
		Message:  "found pyjnius " + installed + " - compatible with Python " + runtime.String(),
	}}
}

// suspectRelease reports whether the installed version is on the stable 1.x
// line. Development builds carry the 3.13 fixes and are acceptable.
func suspectRelease(installed string) bool {
	return strings.HasPrefix(installed, "1.") && !strings.Contains(installed, "dev")
}
