package iocp

import (
	"github.com/windiocp/iocp/internal/logging"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/scheduler"
)

// RuntimeConfig configures a Runtime, in the manner of the teacher's
// ctrl.DeviceParams: a pluggable logger and observer, both optional. It
// has no port or queue sizing knobs.
type RuntimeConfig struct {
	// Logger receives diagnostic output; defaults to logging.Default().
	Logger *logging.Logger
	// Observer receives submission/completion metrics; defaults to NoOpObserver.
	Observer Observer
}

// DefaultRuntimeConfig returns a RuntimeConfig with the process-wide
// default logger and a no-op observer.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{Logger: logging.Default(), Observer: NoOpObserver{}}
}

// Runtime owns one completion port and the scheduler that drains it. Every
// fs.File/net.* resource a caller constructs must attach to this Runtime's
// Port.
type Runtime struct {
	cfg       RuntimeConfig
	port      *port.Port
	scheduler *scheduler.Scheduler
}

// NewRuntime creates a completion port, a scheduler, and wires the
// scheduler's park hook to the port's blocking wait — the same
// "build → wire observer/logger → start" shape as the teacher's
// CreateAndServe, minus the queue-runner/control-plane steps that have no
// analogue here.
func NewRuntime(cfg RuntimeConfig) (*Runtime, error) {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Observer == nil {
		cfg.Observer = NoOpObserver{}
	}

	p, err := port.New()
	if err != nil {
		return nil, WrapError("NewRuntime", err)
	}

	sched := scheduler.New()
	sched.SetParkHook(func() (bool, error) {
		return p.Wait(port.INFINITE)
	})

	return &Runtime{cfg: cfg, port: p, scheduler: sched}, nil
}

// Port returns the completion port every resource constructed under this
// runtime must attach to.
func (r *Runtime) Port() *port.Port { return r.port }

// Scheduler returns the scheduler driving this runtime's futures.
func (r *Runtime) Scheduler() *scheduler.Scheduler { return r.scheduler }

// Logger returns this runtime's configured logger.
func (r *Runtime) Logger() *logging.Logger { return r.cfg.Logger }

// Observer returns this runtime's configured observer.
func (r *Runtime) Observer() Observer { return r.cfg.Observer }

// SpawnLocal schedules task on this runtime's scheduler.
func (r *Runtime) SpawnLocal(task func()) { r.scheduler.SpawnLocal(task) }

// Close releases the completion port. Any operation still attached to it
// will fail its next overlapped call.
func (r *Runtime) Close() error {
	return r.port.Close()
}

// Run builds a Runtime with the default configuration, runs fn to
// completion under scheduler.BlockOn, and closes the runtime before
// returning fn's error — the top-level entry point mirroring
// tokio_iocp::start.
func Run(fn func(*Runtime) error) error {
	return RunWithConfig(DefaultRuntimeConfig(), fn)
}

// RunWithConfig is Run with an explicit RuntimeConfig.
func RunWithConfig(cfg RuntimeConfig, fn func(*Runtime) error) error {
	rt, err := NewRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	var fnErr error
	rt.scheduler.BlockOn(func() {
		fnErr = fn(rt)
	})
	return fnErr
}
