// Package checker runs one update check: ask the package manager, then let
// the gate decide about notifying.
package checker

import (
	"context"
	"fmt"

	"github.com/obentoo/pkg-update-checker/internal/common/config"
	"github.com/obentoo/pkg-update-checker/internal/common/logger"
	"github.com/obentoo/pkg-update-checker/internal/gate"
	"github.com/obentoo/pkg-update-checker/internal/notify"
	"github.com/obentoo/pkg-update-checker/internal/pkgmgr"
)

// Report describes what a single run observed and did
type Report struct {
	Package    string
	Jail       string
	Result     pkgmgr.Result
	Outcome    gate.Outcome
	MarkerPath string
}

// Checker wires the package manager, the sender and the marker for one package
type Checker struct {
	cfg      *config.Config
	executor pkgmgr.Executor
	sender   notify.Sender
	marker   *gate.Marker
}

// Option is a functional option for configuring Checker
type Option func(*Checker) error

// WithExecutor sets a custom package manager executor
func WithExecutor(executor pkgmgr.Executor) Option {
	return func(c *Checker) error {
		c.executor = executor
		return nil
	}
}

// WithSender sets a custom notification sender
func WithSender(sender notify.Sender) Option {
	return func(c *Checker) error {
		c.sender = sender
		return nil
	}
}

// WithMarker sets a custom marker
func WithMarker(marker *gate.Marker) Option {
	return func(c *Checker) error {
		c.marker = marker
		return nil
	}
}

// New validates cfg and builds a Checker. Unset collaborators default to
// the pkg runner (scoped to cfg.Jail), Pushover with cfg's credentials, and
// the marker at cfg.MarkerPath().
func New(cfg *config.Config, opts ...Option) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Checker{cfg: cfg}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply checker option: %w", err)
		}
	}

	if c.executor == nil {
		c.executor = pkgmgr.NewRunner(pkgmgr.WithJail(cfg.Jail))
	}
	if c.sender == nil {
		c.sender = notify.NewPushover(cfg.Pushover.Token, cfg.Pushover.User)
	}
	if c.marker == nil {
		c.marker = gate.NewMarker(cfg.MarkerPath())
	}

	return c, nil
}

// Run performs the check. A package manager failure returns a
// *pkgmgr.CommandError before the gate is consulted. The report is returned
// alongside gate errors so callers can tell what happened before the fault.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Package:    c.cfg.Package,
		Jail:       c.cfg.Jail,
		MarkerPath: c.marker.Path,
	}

	logger.Debug("checking %s", c.cfg)

	result, err := pkgmgr.Check(c.executor, c.cfg.Package)
	if err != nil {
		return nil, err
	}
	report.Result = result
	if result.HasUpdate {
		logger.Debug("%s: remote version %s", c.cfg.Package, result.Version)
	}

	g := gate.New(c.marker, c.sender)
	msg := notify.UpdateMessage(c.cfg.Package, result.Version)
	outcome, err := g.Evaluate(ctx, result.HasUpdate, msg)
	report.Outcome = outcome
	if err != nil {
		return report, err
	}

	logger.Debug("%s: %s", c.cfg.Package, outcome)
	return report, nil
}
