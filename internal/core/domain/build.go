package domain

// BuildRequest is one orchestration call: the app to build and the mode.
type BuildRequest struct {
	App     *AppDescriptor
	Release bool
}

// Stage is the orchestrator's position in the build state machine.
// No stage is ever re-entered; one orchestration run handles one request.
type Stage int

const (
	StageIdle Stage = iota
	StageVerified
	StageCapabilitiesResolved
	StageInvoked
	StageArtifactResolved
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageVerified:
		return "verified"
	case StageCapabilitiesResolved:
		return "capabilities-resolved"
	case StageInvoked:
		return "invoked"
	case StageArtifactResolved:
		return "artifact-resolved"
	}
	return "unknown"
}

// BuildResult reports how far a build got and, on success, where the
// canonical artifact lives.
type BuildResult struct {
	Stage    Stage
	Artifact string
}

// Command is an external process invocation: argv, extra environment
// entries layered over the host environment, and a working directory.
type Command struct {
	Args []string
	Env  []string
	Dir  string
}

// Severity classifies an advisory diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic is a human-readable advisory message. Diagnostics never block
// or fail a build.
type Diagnostic struct {
	Severity Severity
	Message  string
}
