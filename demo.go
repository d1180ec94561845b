package qoracle

import (
	"context"
	"math"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
)

// normTolerance is how far the norm may drift before a warning is logged.
const normTolerance = 1e-9

/*
OracleRun is one before/after pass: a fresh equal superposition is printed
under Before, the oracle is applied, and the result is printed under After.
*/
type OracleRun struct {
	Before string
	After  string
	Oracle Oracle
}

// DefaultRuns is the constant oracle followed by the balanced one.
func DefaultRuns() []OracleRun {
	return []OracleRun{
		{
			Before: "Before Oracle:",
			After:  "After  Oracle (constant):",
			Oracle: ApplyConstantOracle,
		},
		{
			Before: "Before Oracle (balanced):",
			After:  "After  Oracle (balanced):",
			Oracle: ApplyBalancedOracle,
		},
	}
}

// Demo drives the oracle runs in order and keeps a snapshot of every listing.
type Demo struct {
	printer   *Printer
	runs      []OracleRun
	logger    *log.Logger
	snapshots []Snapshot
}

// DemoOption is a function type for configuring a Demo.
type DemoOption func(*Demo)

// WithRuns replaces the default oracle runs.
func WithRuns(runs []OracleRun) DemoOption {
	return func(d *Demo) {
		d.runs = runs
	}
}

// WithLogger sets the logger used for norm diagnostics.
func WithLogger(logger *log.Logger) DemoOption {
	return func(d *Demo) {
		d.logger = logger
	}
}

func NewDemo(printer *Printer, opts ...DemoOption) *Demo {
	d := &Demo{
		printer: printer,
		runs:    DefaultRuns(),
		logger:  log.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.logger.Debug("demo ready", "runs", len(d.runs))
	return d
}

/*
Run prints every oracle run in order. The context is checked between steps
only; a cancelled context stops the demo and returns its error.
*/
func (d *Demo) Run(ctx context.Context) error {
	d.snapshots = d.snapshots[:0]

	for _, run := range d.runs {
		if err := ctx.Err(); err != nil {
			return err
		}

		sv := NewEqualSuperposition()
		d.logger.Debug("state prepared", "run", run.Before, "state", spew.Sdump(sv))
		if err := d.show(run.Before, sv); err != nil {
			return err
		}

		before := sv.Norm()
		run.Oracle(sv)

		if drift := math.Abs(sv.Norm() - before); drift > normTolerance {
			d.logger.Warn("oracle changed the state norm", "run", run.After, "drift", drift)
		}
		d.logger.Debug("oracle applied", "run", run.After, "norm", sv.Norm(), "state", spew.Sdump(sv))

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.show(run.After, sv); err != nil {
			return err
		}
	}

	return nil
}

// Snapshots returns the listings printed by the last Run.
func (d *Demo) Snapshots() []Snapshot {
	out := make([]Snapshot, len(d.snapshots))
	copy(out, d.snapshots)
	return out
}

func (d *Demo) show(title string, sv *StateVector) error {
	if err := d.printer.Heading(title); err != nil {
		return err
	}
	if err := d.printer.Print(sv); err != nil {
		return err
	}

	d.snapshots = append(d.snapshots, NewSnapshot(title, d.printer.Labels(sv), sv))
	return nil
}
