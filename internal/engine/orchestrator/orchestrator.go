// Package orchestrator sequences one build: verify the toolchain, resolve
// capabilities, invoke p4a, and recover the artifact.
package orchestrator

import (
	"context"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// Orchestrator implements ports.Builder. It is stateless; each Build call
// creates one pipeline run that owns the stage progression for exactly one
// request, so no stage is ever re-entered.
type Orchestrator struct {
	toolchain ports.ToolchainResolver
	diagnoser ports.Diagnoser
	invoker   ports.Invoker
	artifacts ports.ArtifactLocator
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates an Orchestrator.
func New(
	toolchain ports.ToolchainResolver,
	diagnoser ports.Diagnoser,
	invoker ports.Invoker,
	artifacts ports.ArtifactLocator,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		toolchain: toolchain,
		diagnoser: diagnoser,
		invoker:   invoker,
		artifacts: artifacts,
		telemetry: telemetry,
		logger:    logger,
	}
}

// run is one in-flight build. Failure is terminal from any stage; the
// result reports the last stage reached.
type run struct {
	*Orchestrator
	layout domain.Layout
	req    domain.BuildRequest
	stage  domain.Stage
}

// Build executes the full pipeline for one request and returns how far it
// got. On error the returned result still carries the stage reached, so
// callers can tell a failed invocation from a missing artifact.
func (o *Orchestrator) Build(ctx context.Context, layout domain.Layout, req domain.BuildRequest) (*domain.BuildResult, error) {
	r := &run{Orchestrator: o, layout: layout, req: req, stage: domain.StageIdle}

	env, err := r.verify(ctx)
	if err != nil {
		return r.result(""), err
	}

	caps := r.resolveCapabilities()

	if err := r.invoke(ctx, caps, env); err != nil {
		return r.result(""), err
	}

	artifact, err := r.resolveArtifact(ctx)
	if err != nil {
		return r.result(""), err
	}

	return r.result(artifact), nil
}

// verify confirms a toolchain installation exists and runs the advisory
// environment checks. Diagnostics never block: only a missing or empty
// toolchain fails verification.
func (r *run) verify(ctx context.Context) ([]string, error) {
	ctx, vertex := r.telemetry.Record(ctx, "verify toolchain")

	tc, err := r.toolchain.Resolve(ctx)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}

	r.diagnoser.Check(ctx)

	vertex.Complete(nil)
	r.stage = domain.StageVerified
	return r.toolchain.Env(tc), nil
}

func (r *run) resolveCapabilities() domain.CapabilityDeclaration {
	caps := domain.MapCapabilities(r.req.App)
	r.stage = domain.StageCapabilitiesResolved
	return caps
}

func (r *run) invoke(ctx context.Context, caps domain.CapabilityDeclaration, env []string) error {
	ctx, vertex := r.telemetry.Record(ctx, "invoke p4a")

	err := r.invoker.Invoke(ctx, r.layout.BundlePath(r.req.App), r.req, caps, env)
	vertex.Complete(err)
	if err != nil {
		return err
	}

	r.stage = domain.StageInvoked
	return nil
}

func (r *run) resolveArtifact(ctx context.Context) (string, error) {
	_, vertex := r.telemetry.Record(ctx, "locate artifact")

	artifact, err := r.artifacts.Locate(r.layout, r.req.App, r.req.Release)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	r.stage = domain.StageArtifactResolved
	return artifact, nil
}

func (r *run) result(artifact string) *domain.BuildResult {
	return &domain.BuildResult{Stage: r.stage, Artifact: artifact}
}

var _ ports.Builder = (*Orchestrator)(nil)
