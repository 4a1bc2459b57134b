package leadform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"standeal-backend/internal/domain"
)

// ErrInFlight is returned when a form is submitted again before the previous
// submission of the same form has finished.
var ErrInFlight = errors.New("leadform: submission already in flight")

// Phase is the lifecycle of one form inside a Session.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseEditing
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Submitter transmits a snapshot to the backend.
type Submitter interface {
	SubmitQuote(ctx context.Context, req domain.QuoteRequest) error
	SubmitContact(ctx context.Context, req domain.ContactRequest) error
}

// Session owns the form state of one visitor and the loading flag of each
// form. The two forms are independent; each may have one submission in flight.
type Session struct {
	mu       sync.Mutex
	state    State
	inFlight map[FormID]bool
}

// NewSession starts a session with both forms empty.
func NewSession() *Session {
	return &Session{inFlight: make(map[FormID]bool, 2)}
}

// NewSessionFrom starts a session from existing form values.
func NewSessionFrom(s State) *Session {
	session := NewSession()
	session.state = s
	return session
}

// State returns the current form values.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether form has a submission in flight.
func (s *Session) Loading(form FormID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[form]
}

// Phase reports the lifecycle stage of form.
func (s *Session) Phase(form FormID) Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[form] {
		return PhaseSubmitting
	}
	switch form {
	case FormQuote:
		if s.state.Quote.IsEmpty() {
			return PhaseEmpty
		}
	case FormContact:
		if s.state.Contact.IsEmpty() {
			return PhaseEmpty
		}
	}
	return PhaseEditing
}

// Update replaces one field of form, see the package-level Update.
func (s *Session) Update(form FormID, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := Update(s.state, form, field, value)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// Reset empties form.
func (s *Session) Reset(form FormID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reset(s.state, form)
}

// Replace takes every value of form from values and leaves the other form
// as it was. It is how a posted page is loaded into a running session.
func (s *Session) Replace(form FormID, values State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch form {
	case FormQuote:
		s.state.Quote = values.Quote
	case FormContact:
		s.state.Contact = values.Contact
	}
}

// Submit validates the form, sends its snapshot and applies the outcome:
// success empties the form, failure leaves every value as it was.
// A *FieldErrors is returned without any network call.
func (s *Session) Submit(ctx context.Context, form FormID, sub Submitter) error {
	s.mu.Lock()
	if s.inFlight[form] {
		s.mu.Unlock()
		return ErrInFlight
	}

	var send func() error
	switch form {
	case FormQuote:
		if err := s.state.Quote.Validate(); err != nil {
			s.mu.Unlock()
			return err
		}
		snapshot := s.state.Quote.Snapshot()
		send = func() error { return sub.SubmitQuote(ctx, snapshot) }
	case FormContact:
		if err := s.state.Contact.Validate(); err != nil {
			s.mu.Unlock()
			return err
		}
		snapshot := s.state.Contact.Snapshot()
		send = func() error { return sub.SubmitContact(ctx, snapshot) }
	default:
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownForm, form)
	}
	s.inFlight[form] = true
	s.mu.Unlock()

	err := send()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[form] = false
	if err != nil {
		return err
	}
	s.state = Reset(s.state, form)
	return nil
}
