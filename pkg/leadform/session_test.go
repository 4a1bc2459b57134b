package leadform

import (
	"context"
	"errors"
	"sync"
	"testing"

	"standeal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitter struct {
	mu       sync.Mutex
	quotes   []domain.QuoteRequest
	contacts []domain.ContactRequest
	err      error
	// release, when set, blocks the call until closed
	release chan struct{}
	started chan struct{}
}

func (s *stubSubmitter) wait() {
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
}

func (s *stubSubmitter) SubmitQuote(ctx context.Context, req domain.QuoteRequest) error {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = append(s.quotes, req)
	return s.err
}

func (s *stubSubmitter) SubmitContact(ctx context.Context, req domain.ContactRequest) error {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, req)
	return s.err
}

func TestSessionSubmitSuccessResetsForm(t *testing.T) {
	session := NewSessionFrom(filledQuote())
	require.NoError(t, session.Update(FormContact, "name", "Maria"))
	sub := &stubSubmitter{}

	require.NoError(t, session.Submit(context.Background(), FormQuote, sub))

	require.Len(t, sub.quotes, 1)
	assert.Equal(t, 500.0, *sub.quotes[0].CargoWeight)
	assert.True(t, session.State().Quote.IsEmpty())
	assert.Equal(t, "Maria", session.State().Contact.Name)
	assert.Equal(t, PhaseEmpty, session.Phase(FormQuote))
	assert.False(t, session.Loading(FormQuote))
}

func TestSessionSubmitContactSendsOnceAndResets(t *testing.T) {
	session := NewSession()
	for field, value := range map[string]string{
		"name": "Maria Rusu", "email": "maria@example.md", "subject": "Ofertă", "message": "Salut",
	} {
		require.NoError(t, session.Update(FormContact, field, value))
	}
	assert.Equal(t, PhaseEditing, session.Phase(FormContact))

	sub := &stubSubmitter{}
	require.NoError(t, session.Submit(context.Background(), FormContact, sub))

	assert.Len(t, sub.contacts, 1)
	assert.Equal(t, ContactForm{}, session.State().Contact)
}

func TestSessionSubmitFailureKeepsValues(t *testing.T) {
	before := filledQuote()
	session := NewSessionFrom(before)
	sub := &stubSubmitter{err: errors.New("status 500")}

	err := session.Submit(context.Background(), FormQuote, sub)
	assert.Error(t, err)

	assert.Equal(t, before, session.State())
	assert.Equal(t, PhaseEditing, session.Phase(FormQuote))
	assert.False(t, session.Loading(FormQuote))
}

func TestSessionSubmitInvalidFormSkipsNetwork(t *testing.T) {
	session := NewSession()
	sub := &stubSubmitter{}

	err := session.Submit(context.Background(), FormContact, sub)
	var fieldErrs *FieldErrors
	assert.True(t, errors.As(err, &fieldErrs))
	assert.Empty(t, sub.contacts)
}

func TestSessionRejectsSecondSubmitWhileInFlight(t *testing.T) {
	session := NewSessionFrom(filledQuote())
	require.NoError(t, session.Update(FormContact, "name", "Maria"))
	require.NoError(t, session.Update(FormContact, "email", "maria@example.md"))
	require.NoError(t, session.Update(FormContact, "subject", "Ofertă"))
	require.NoError(t, session.Update(FormContact, "message", "Salut"))

	sub := &stubSubmitter{release: make(chan struct{}), started: make(chan struct{}, 2)}

	done := make(chan error, 1)
	go func() { done <- session.Submit(context.Background(), FormQuote, sub) }()
	<-sub.started

	assert.True(t, session.Loading(FormQuote))
	assert.Equal(t, PhaseSubmitting, session.Phase(FormQuote))
	assert.ErrorIs(t, session.Submit(context.Background(), FormQuote, sub), ErrInFlight)

	// The contact form is independent and may be in flight at the same time.
	contactDone := make(chan error, 1)
	go func() { contactDone <- session.Submit(context.Background(), FormContact, sub) }()
	<-sub.started
	assert.True(t, session.Loading(FormContact))

	close(sub.release)
	require.NoError(t, <-done)
	require.NoError(t, <-contactDone)

	assert.Len(t, sub.quotes, 1)
	assert.Len(t, sub.contacts, 1)
	assert.False(t, session.Loading(FormQuote))
}

func TestSessionReplaceTouchesOneForm(t *testing.T) {
	session := NewSession()
	require.NoError(t, session.Update(FormContact, "name", "Maria"))
	assert.Equal(t, PhaseEmpty, session.Phase(FormQuote))

	session.Replace(FormQuote, filledQuote())
	assert.Equal(t, filledQuote().Quote, session.State().Quote)
	assert.Equal(t, "Maria", session.State().Contact.Name)
	assert.Equal(t, PhaseEditing, session.Phase(FormQuote))

	session.Reset(FormQuote)
	assert.Equal(t, PhaseEmpty, session.Phase(FormQuote))
	assert.Equal(t, PhaseEditing, session.Phase(FormContact))
}
