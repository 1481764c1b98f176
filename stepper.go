package roundrobin

import "fmt"

// Stepper is a Runner driven by an explicit step function instead of
// a coroutine. Every Start or Resume calls step once; the Stepper
// terminates when step reports done or returns an error.
type Stepper struct {
	step   func() (bool, error)
	status Status
	err    error
}

// NewStepper creates a Stepper in NotStarted.
func NewStepper(step func() (done bool, err error)) *Stepper {
	return &Stepper{step: step}
}

func (s *Stepper) Status() Status {
	return s.status
}

func (s *Stepper) Start() error {
	if s.status != NotStarted {
		return fmt.Errorf("%w: start %v stepper", ErrTaskState, s.status)
	}
	return s.run()
}

func (s *Stepper) Resume() error {
	if s.status != Suspended {
		return fmt.Errorf("%w: resume %v stepper", ErrTaskState, s.status)
	}
	return s.run()
}

// Err returns the error that terminated the Stepper, if any.
func (s *Stepper) Err() error {
	return s.err
}

func (s *Stepper) run() error {
	s.status = Running
	defer func() {
		if s.status == Running {
			s.status = Terminated
		}
	}()

	done, err := s.step()
	if err != nil || done {
		s.status = Terminated
		s.err = err
		return err
	}

	s.status = Suspended
	return nil
}
