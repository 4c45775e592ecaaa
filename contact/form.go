package contact

import "context"

// Status is the state of the contact form.
type Status uint8

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Form tracks one contact form. Submit returns immediately; the result is
// collected by Poll, which the frame loop calls once per frame.
type Form struct {
	submitter Submitter
	status    Status
	err       error
	result    chan error
	cancel    context.CancelFunc
}

// NewForm creates an idle form that sends through s.
func NewForm(s Submitter) *Form {
	return &Form{submitter: s}
}

// Status returns the current state.
func (f *Form) Status() Status {
	return f.status
}

// Err returns the error of the last failed submission.
func (f *Form) Err() error {
	return f.err
}

// Submit validates p and starts sending it in the background. A submission
// already pending is not duplicated. Validation failures move the form to
// StatusError without contacting the relay.
func (f *Form) Submit(ctx context.Context, p Payload) {
	if f.status == StatusPending {
		return
	}
	if err := p.Validate(); err != nil {
		f.status = StatusError
		f.err = err
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.status = StatusPending
	f.err = nil
	result := make(chan error, 1)
	f.result = result
	go func() {
		result <- f.submitter.Submit(ctx, p)
	}()
}

// Poll collects a finished submission without blocking and returns the
// current status.
func (f *Form) Poll() Status {
	if f.status != StatusPending {
		return f.status
	}
	select {
	case err := <-f.result:
		f.cancel()
		f.result = nil
		if err != nil {
			f.status = StatusError
			f.err = err
		} else {
			f.status = StatusSuccess
		}
	default:
	}
	return f.status
}

// Reset returns a finished form to idle. A pending submission is cancelled.
func (f *Form) Reset() {
	if f.cancel != nil {
		f.cancel()
	}
	f.status = StatusIdle
	f.err = nil
	f.result = nil
	f.cancel = nil
}
