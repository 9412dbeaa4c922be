package feed

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/lixenwraith/particle-morph/control"
	"github.com/lixenwraith/particle-morph/gesture"
)

// Phase is the tracker lifecycle shown on the status indicator
type Phase uint8

const (
	PhaseLoading Phase = iota
	PhaseActive
	PhaseIdle
	PhaseUnavailable
	PhaseDisabled
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseIdle:
		return "idle"
	case PhaseUnavailable:
		return "unavailable"
	case PhaseDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Status is a point-in-time view of the tracker
type Status struct {
	Phase     Phase
	Source    string
	Err       error
	Frames    uint64
	Malformed uint64
	HandSeen  bool
}

// Runner drives a Source on its own goroutine, interprets every frame and publishes the result
type Runner struct {
	source      Source
	interpreter *gesture.Interpreter
	reactor     *control.Reactor

	phase     atomic.Uint32
	err       atomic.Pointer[error]
	frames    atomic.Uint64
	malformed atomic.Uint64
	handSeen  atomic.Bool

	// Logf receives source failures and malformed frames, nil discards
	Logf func(format string, args ...any)
}

// NewRunner pairs a source with the reactor that publishes its control states, nil source reports disabled
func NewRunner(source Source, reactor *control.Reactor) *Runner {
	r := &Runner{
		source:      source,
		interpreter: gesture.NewInterpreter(),
		reactor:     reactor,
	}
	if source == nil {
		r.phase.Store(uint32(PhaseDisabled))
	}
	return r
}

// Run blocks until the source ends, the tracker failing never stops the caller's render loop
func (r *Runner) Run(ctx context.Context) error {
	if r.source == nil {
		<-ctx.Done()
		return nil
	}

	if im, ok := r.source.(Immediate); ok && im.Immediate() {
		r.phase.CompareAndSwap(uint32(PhaseLoading), uint32(PhaseActive))
	}

	err := r.source.Run(ctx, r)

	// Relax openness so particles do not freeze at an extreme
	r.reactor.Publish(r.interpreter.Observe(nil))

	switch {
	case err != nil && !errors.Is(err, context.Canceled):
		r.err.Store(&err)
		r.phase.Store(uint32(PhaseUnavailable))
		r.logf("feed %s unavailable: %v", r.source.Name(), err)
		return err
	default:
		r.phase.Store(uint32(PhaseIdle))
		return nil
	}
}

// Frame implements Sink
func (r *Runner) Frame(f Frame) {
	r.frames.Add(1)
	r.phase.CompareAndSwap(uint32(PhaseLoading), uint32(PhaseActive))
	r.handSeen.Store(f.Hand != nil)
	r.reactor.Publish(r.interpreter.Observe(f.Hand))
}

// Malformed implements Sink
func (r *Runner) Malformed(err error) {
	n := r.malformed.Add(1)
	// Log the first few then every hundredth to keep a bad stream from flooding the log
	if n <= 5 || n%100 == 0 {
		r.logf("feed %s: skipped frame #%d: %v", r.source.Name(), n, err)
	}
}

// Status snapshots the tracker for the HUD
func (r *Runner) Status() Status {
	s := Status{
		Phase:     Phase(r.phase.Load()),
		Frames:    r.frames.Load(),
		Malformed: r.malformed.Load(),
		HandSeen:  r.handSeen.Load(),
	}
	if r.source != nil {
		s.Source = r.source.Name()
	}
	if e := r.err.Load(); e != nil {
		s.Err = *e
	}
	return s
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}
