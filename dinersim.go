// Package dinersim provides a high-level façade over the dialog state
// machine, the session runner and the service abstractions (session store,
// generation model, menu catalog & logging) for simulating restaurant
// ordering conversations. Most applications interact with this package by:
//  1. Creating a DinerSim via New() with a generation model (optionally
//     overriding the default in-memory store, catalog or logger)
//  2. Running a batch of simulated sessions (Run) or driving a single
//     session trigger-by-trigger (CreateSession / Trigger / Session)
//
// All defaults are safe for local development and testing; production
// deployments typically supply a durable session store and a structured
// logger.
package dinersim

import (
	"context"

	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/fsm"
	"github.com/hupe1980/dinersim/logging"
	"github.com/hupe1980/dinersim/menu"
	"github.com/hupe1980/dinersim/model"
	"github.com/hupe1980/dinersim/runner"
	"github.com/hupe1980/dinersim/session"
)

// Options configures the DinerSim instance.
type Options struct {
	// SessionStore persists sessions. Defaults to an in-memory store.
	SessionStore core.SessionStore

	// Catalog is the menu used for prompts and analysis. Defaults to the
	// standard catalog.
	Catalog *menu.Catalog

	// Concurrency bounds how many sessions progress simultaneously in Run.
	Concurrency int

	// Logger defaults to a NoOp logger if nil.
	Logger logging.Logger
}

// DinerSim is the high-level façade aggregating the state machine and the
// session runner.
type DinerSim struct {
	opts    Options
	store   core.SessionStore
	machine *fsm.Machine
	runner  *runner.Runner
}

// New creates a DinerSim instance driven by the given generation model.
// Any unset service is initialized with a safe default.
func New(m model.Model, optFns ...func(o *Options)) *DinerSim {
	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		Catalog:      menu.Default(),
		Concurrency:  5,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	machine := fsm.NewMachine(opts.SessionStore, m, opts.Catalog, func(o *fsm.Options) {
		o.Logger = opts.Logger
	})
	run := runner.New(opts.SessionStore, machine, func(o *runner.Options) {
		o.Concurrency = opts.Concurrency
		o.Logger = opts.Logger
	})

	return &DinerSim{opts: opts, store: opts.SessionStore, machine: machine, runner: run}
}

// Run simulates count full conversations concurrently and returns one
// result per session.
func (d *DinerSim) Run(ctx context.Context, count int) []runner.Result {
	return d.runner.Run(ctx, count)
}

// CreateSession creates and persists a fresh session in the initial state.
func (d *DinerSim) CreateSession(ctx context.Context) (*core.Session, error) {
	sess := core.NewSession()
	if err := d.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Session returns the current snapshot of a session.
func (d *DinerSim) Session(ctx context.Context, id string) (*core.Session, error) {
	return d.store.Get(ctx, id)
}

// Trigger fires one named transition on a session, returning whether it
// committed. See fsm.Machine.Trigger for the failure taxonomy.
func (d *DinerSim) Trigger(ctx context.Context, sess *core.Session, trigger string) (bool, error) {
	return d.machine.Trigger(ctx, sess, trigger)
}
