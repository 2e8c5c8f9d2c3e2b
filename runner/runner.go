/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package runner executes registered compatibility checks and produces
// a run report.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/ddbcompat"
	"github.com/suparena/ddbcompat/client"
	"github.com/suparena/ddbcompat/logger"
	"github.com/suparena/ddbcompat/registry"
)

// Status is the outcome of a single check.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// CheckResult records one check's outcome.
type CheckResult struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Error      string `json:"error,omitempty"`
	SkipReason string `json:"skipReason,omitempty"`
	DurationMS int64  `json:"durationMs"`
}

// Report summarizes a full run.
type Report struct {
	RunID      string          `json:"runId"`
	Endpoint   string          `json:"endpoint"`
	StartedAt  strfmt.DateTime `json:"startedAt"`
	FinishedAt strfmt.DateTime `json:"finishedAt"`
	Passed     int             `json:"passed"`
	Failed     int             `json:"failed"`
	Skipped    int             `json:"skipped"`
	Results    []CheckResult   `json:"results"`
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Option configures a Runner.
type Option func(*Runner)

// WithVerySlow enables checks marked VerySlow.
func WithVerySlow(enabled bool) Option {
	return func(r *Runner) { r.runVerySlow = enabled }
}

// Runner executes checks against one endpoint.
type Runner struct {
	cfg         client.Config
	ddb         *dynamodb.Client
	tables      *ddbcompat.SharedTables
	log         *logger.Logger
	runVerySlow bool
}

// New creates a Runner.
func New(cfg client.Config, ddb *dynamodb.Client, tables *ddbcompat.SharedTables, log *logger.Logger, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, ddb: ddb, tables: tables, log: log}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// skipReason returns a non-empty reason when the check should not run
// against the current target.
func (r *Runner) skipReason(c registry.Check) string {
	if c.VerySlow && !r.runVerySlow {
		return "very slow check; enable with --run-very-slow"
	}
	if c.EmulatorOnly && r.cfg.IsAWS() {
		return "probes emulator-only behavior; target is AWS"
	}
	return ""
}

// Run executes the given checks in order and returns the report.
// Failures are recorded in the report rather than aborting the run.
func (r *Runner) Run(ctx context.Context, checks []registry.Check) *Report {
	report := &Report{
		RunID:     uuid.NewString(),
		Endpoint:  r.cfg.Endpoint,
		StartedAt: strfmt.DateTime(time.Now().UTC()),
		Results:   make([]CheckResult, 0, len(checks)),
	}
	r.log.Infow("starting run", "runId", report.RunID, "endpoint", r.cfg.Endpoint, "checks", len(checks))

	for _, c := range checks {
		result := r.runOne(ctx, c)
		report.Results = append(report.Results, result)
		switch result.Status {
		case StatusPassed:
			report.Passed++
		case StatusFailed:
			report.Failed++
		case StatusSkipped:
			report.Skipped++
		}
	}

	report.FinishedAt = strfmt.DateTime(time.Now().UTC())
	r.log.Infow("run finished",
		"runId", report.RunID,
		"passed", report.Passed,
		"failed", report.Failed,
		"skipped", report.Skipped,
	)
	return report
}

func (r *Runner) runOne(ctx context.Context, c registry.Check) CheckResult {
	log := r.log.WithCheck(c.Name)

	if reason := r.skipReason(c); reason != "" {
		log.Infow("skipping", "reason", reason)
		return CheckResult{Name: c.Name, Status: StatusSkipped, SkipReason: reason}
	}

	env := &registry.Env{
		Client: r.ddb,
		Config: r.cfg,
		Tables: r.tables,
		Log:    log,
	}

	log.Infow("running")
	start := time.Now()
	err := c.Fn(ctx, env)
	elapsed := time.Since(start)

	if err != nil {
		log.Errorw("check failed", "error", err, "duration", elapsed)
		return CheckResult{
			Name:       c.Name,
			Status:     StatusFailed,
			Error:      err.Error(),
			DurationMS: elapsed.Milliseconds(),
		}
	}
	log.Infow("check passed", "duration", elapsed)
	return CheckResult{Name: c.Name, Status: StatusPassed, DurationMS: elapsed.Milliseconds()}
}
