package roundrobin

import (
	"context"
	"log/slog"
	"runtime/trace"

	"github.com/gammazero/deque"
)

// Runner is what a Scheduler drives. Status must be side-effect free.
// Start is only valid in NotStarted and Resume only in Suspended; both
// run until the Runner suspends or terminates.
type Runner interface {
	Status() Status
	Start() error
	Resume() error
}

// Scheduler advances its Runners one step at a time in the order they
// were added. The zero value is not usable; create one with New.
type Scheduler struct {
	noCopy noCopy
	tasks  deque.Deque[Runner]
	ticks  uint64
	cfg    config
}

// New creates an empty Scheduler.
func New(opts ...Option) *Scheduler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scheduler{cfg: cfg}
}

// Add appends r to the end of the sequence. A Runner added while a
// tick is in progress is first visited on the next tick.
func (s *Scheduler) Add(r Runner) {
	s.tasks.PushBack(r)
}

// Len returns the number of Runners held, terminated ones included
// unless compaction removed them.
func (s *Scheduler) Len() int {
	return s.tasks.Len()
}

// Ticks returns how many times Tick has been called.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick visits every Runner once in insertion order, starting the ones
// that have not started and resuming the suspended ones. It reports
// whether any Runner was still live. The first error returned by a
// Runner ends the tick and is returned as is.
func (s *Scheduler) Tick() (bool, error) {
	s.ticks++

	alive := 0
	for i, n := 0, s.tasks.Len(); i < n; i++ {
		r := s.tasks.At(i)

		var err error
		switch r.Status() {
		case Terminated:
			continue
		case NotStarted:
			alive++
			err = r.Start()
		default:
			alive++
			err = r.Resume()
		}

		if err != nil {
			s.cfg.logger.Warn("task failed",
				slog.Uint64("tick", s.ticks),
				slog.Int("index", i),
				slog.Any("error", err))
			return true, err
		}
	}

	s.cfg.logger.Debug("tick",
		slog.Uint64("tick", s.ticks),
		slog.Int("live", alive),
		slog.Int("tasks", s.tasks.Len()))

	if s.cfg.compact {
		s.compact()
	}

	return alive > 0, nil
}

// Run ticks until no Runner is live or a Runner fails.
func (s *Scheduler) Run() error {
	ctx, tracer := trace.NewTask(context.Background(), taskTraceTaskType)
	defer tracer.End()

	trace.Log(ctx, taskTraceCategory, "RUN")

	for {
		alive, err := s.Tick()
		if err != nil {
			trace.Logf(ctx, taskTraceCategory, "RUN FAILED %v", err)
			return err
		}
		if !alive {
			break
		}
	}

	trace.Logf(ctx, taskTraceCategory, "RUN DONE %v", s.ticks)
	return nil
}

// compact rotates the whole sequence once, dropping terminated
// Runners on the way.
func (s *Scheduler) compact() {
	for n := s.tasks.Len(); n > 0; n-- {
		if r := s.tasks.PopFront(); r.Status() != Terminated {
			s.tasks.PushBack(r)
		}
	}
}
