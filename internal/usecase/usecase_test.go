package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"standeal-backend/config"
	"standeal-backend/internal/domain"
	"standeal-backend/internal/usecase"
	"standeal-backend/pkg/apperror"
	"standeal-backend/pkg/security"
	"standeal-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Mock Repositories
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, quote *domain.TransportQuote) error {
	return m.Called(ctx, quote).Error(0)
}

func (m *MockQuoteRepo) List(ctx context.Context, limit int) ([]domain.TransportQuote, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransportQuote), args.Error(1)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockContactRepo) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

type MockStatusRepo struct {
	mock.Mock
}

func (m *MockStatusRepo) Create(ctx context.Context, check *domain.StatusCheck) error {
	return m.Called(ctx, check).Error(0)
}

func (m *MockStatusRepo) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCheck), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyQuote(ctx context.Context, quote *domain.TransportQuote) error {
	return m.Called(ctx, quote).Error(0)
}

func (m *MockNotifier) NotifyContact(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newQuoteUsecase(repo *MockQuoteRepo, notifier *MockNotifier) domain.QuoteUsecase {
	return usecase.NewQuoteUsecase(
		repo,
		notifier,
		validation.New(),
		security.NewSanitizer(),
		security.NewSecurityLogger(zap.NewNop(), "test", "test"),
		quietLogger(),
	)
}

func validQuote() *domain.QuoteRequest {
	weight := 500.0
	return &domain.QuoteRequest{
		ClientName:       "Ion Popescu",
		Email:            "Ion@Example.md ",
		Phone:            "+373 68 727 975",
		PickupLocation:   "Chișinău",
		DeliveryLocation: "București",
		CargoType:        "Mobilă",
		CargoWeight:      &weight,
		TransportType:    domain.TransportInternational,
		Urgency:          domain.UrgencyUrgent,
	}
}

func TestCompanyUsecaseReturnsCopies(t *testing.T) {
	uc := usecase.NewCompanyUsecase(config.CompanyConfig{
		Name:     "Standeal.md",
		Phone:    "+373 68 727 975",
		Services: []string{"Transport marfă"},
	})

	first := uc.GetCompanyInfo(context.Background())
	first.Services[0] = "altceva"
	first.CompanyName = "x"

	second := uc.GetCompanyInfo(context.Background())
	assert.Equal(t, "Standeal.md", second.CompanyName)
	assert.Equal(t, []string{"Transport marfă"}, second.Services)
}

func TestSubmitQuote(t *testing.T) {
	t.Run("Should store and notify a valid quote", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		notifier := new(MockNotifier)
		uc := newQuoteUsecase(repo, notifier)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TransportQuote")).Return(nil)
		notifier.On("NotifyQuote", mock.Anything, mock.AnythingOfType("*domain.TransportQuote")).Return(nil)

		quote, err := uc.SubmitQuote(context.Background(), validQuote())
		require.NoError(t, err)

		assert.NotEmpty(t, quote.ID)
		assert.Equal(t, "ion@example.md", quote.Email)
		assert.Equal(t, 500.0, *quote.CargoWeight)
		assert.Equal(t, time.UTC, quote.Timestamp.Location())
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("Should accept a missing weight", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		notifier := new(MockNotifier)
		uc := newQuoteUsecase(repo, notifier)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		notifier.On("NotifyQuote", mock.Anything, mock.Anything).Return(nil)

		req := validQuote()
		req.CargoWeight = nil
		quote, err := uc.SubmitQuote(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, quote.CargoWeight)
	})

	t.Run("Should reject invalid input without touching storage", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		notifier := new(MockNotifier)
		uc := newQuoteUsecase(repo, notifier)

		req := validQuote()
		req.Email = "not-an-email"
		req.Urgency = "tomorrow"

		_, err := uc.SubmitQuote(context.Background(), req)
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Len(t, appErr.Details, 2)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should strip markup before storing", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		notifier := new(MockNotifier)
		uc := newQuoteUsecase(repo, notifier)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		notifier.On("NotifyQuote", mock.Anything, mock.Anything).Return(nil)

		req := validQuote()
		req.AdditionalInfo = "<script>alert(1)</script>Paleți"
		quote, err := uc.SubmitQuote(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Paleți", quote.AdditionalInfo)
	})

	t.Run("Should accept ordinary symbols and punctuation in free text", func(t *testing.T) {
		inputs := []struct{ clientName, additionalInfo string }{
			{"Ion Popescu", "Temperatura 2-8°C"},
			{"Ion Popescu", "Factura nr. 5 ^ urgent"},
			{"Ion Popescu", "Mărfuri cu marca ©, lot № 7"},
			{"SRL Trans_Log!", ""},
		}
		for _, in := range inputs {
			repo := new(MockQuoteRepo)
			notifier := new(MockNotifier)
			uc := newQuoteUsecase(repo, notifier)

			repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			notifier.On("NotifyQuote", mock.Anything, mock.Anything).Return(nil)

			req := validQuote()
			req.ClientName = in.clientName
			req.AdditionalInfo = in.additionalInfo
			quote, err := uc.SubmitQuote(context.Background(), req)
			require.NoError(t, err, in)
			assert.Equal(t, in.additionalInfo, quote.AdditionalInfo)
			assert.Equal(t, in.clientName, quote.ClientName)
		}
	})

	t.Run("Should fail with a generic message when storage fails", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		notifier := new(MockNotifier)
		uc := newQuoteUsecase(repo, notifier)

		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		_, err := uc.SubmitQuote(context.Background(), validQuote())
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, "Eroare la procesarea cererii de cotație", appErr.Message)
		notifier.AssertNotCalled(t, "NotifyQuote", mock.Anything, mock.Anything)
	})

	t.Run("Should succeed even when notification dispatch fails", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		notifier := new(MockNotifier)
		uc := newQuoteUsecase(repo, notifier)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		notifier.On("NotifyQuote", mock.Anything, mock.Anything).Return(errors.New("queue down"))

		quote, err := uc.SubmitQuote(context.Background(), validQuote())
		require.NoError(t, err)
		assert.NotNil(t, quote)
	})
}

func TestListAndExportQuotes(t *testing.T) {
	repo := new(MockQuoteRepo)
	uc := newQuoteUsecase(repo, new(MockNotifier))

	stored := []domain.TransportQuote{{ID: "q-1", QuoteRequest: *validQuote(), Timestamp: time.Now().UTC()}}
	repo.On("List", mock.Anything, domain.MaxListLimit).Return(stored, nil)

	quotes, err := uc.ListQuotes(context.Background())
	require.NoError(t, err)
	assert.Len(t, quotes, 1)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportQuotes(context.Background(), &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(book.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "q-1", rows[1][0])
}

func TestSubmitContact(t *testing.T) {
	newUsecase := func(repo *MockContactRepo, notifier *MockNotifier) domain.ContactUsecase {
		return usecase.NewContactUsecase(
			repo,
			notifier,
			validation.New(),
			security.NewSanitizer(),
			security.NewSecurityLogger(zap.NewNop(), "test", "test"),
			quietLogger(),
		)
	}

	t.Run("Should store and forward a valid message", func(t *testing.T) {
		repo := new(MockContactRepo)
		notifier := new(MockNotifier)
		uc := newUsecase(repo, notifier)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)
		notifier.On("NotifyContact", mock.Anything, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

		msg, err := uc.SubmitContact(context.Background(), &domain.ContactRequest{
			Name:    "Maria Rusu",
			Email:   "maria@example.md",
			Subject: "Transport marfă",
			Message: "Aș dori o ofertă.",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, msg.ID)
		assert.Empty(t, msg.Phone)
		notifier.AssertExpectations(t)
	})

	t.Run("Should accept symbols in the name and subject", func(t *testing.T) {
		repo := new(MockContactRepo)
		notifier := new(MockNotifier)
		uc := newUsecase(repo, notifier)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		notifier.On("NotifyContact", mock.Anything, mock.Anything).Return(nil)

		msg, err := uc.SubmitContact(context.Background(), &domain.ContactRequest{
			Name:    "SRL Trans_Log!",
			Email:   "office@translog.md",
			Phone:   "068/727-975",
			Subject: "Transport la 2-8°C ^ ©",
			Message: "Salut",
		})
		require.NoError(t, err)
		assert.Equal(t, "Transport la 2-8°C ^ ©", msg.Subject)
	})

	t.Run("Should reject a message with missing fields", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := newUsecase(repo, new(MockNotifier))

		_, err := uc.SubmitContact(context.Background(), &domain.ContactRequest{Name: "Maria Rusu"})
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should report storage failures", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := newUsecase(repo, new(MockNotifier))
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := uc.SubmitContact(context.Background(), &domain.ContactRequest{
			Name:    "Maria Rusu",
			Email:   "maria@example.md",
			Subject: "Întrebare",
			Message: "Salut",
		})
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Eroare la trimiterea mesajului", appErr.Message)
	})
}

func TestStatusUsecase(t *testing.T) {
	repo := new(MockStatusRepo)
	uc := usecase.NewStatusUsecase(repo, validation.New())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.StatusCheck")).Return(nil)

	check, err := uc.RecordStatus(context.Background(), &domain.StatusCheckRequest{ClientName: "  landing  "})
	require.NoError(t, err)
	assert.Equal(t, "landing", check.ClientName)

	_, err = uc.RecordStatus(context.Background(), &domain.StatusCheckRequest{ClientName: " "})
	assert.Error(t, err)
}

func TestHealthUsecase(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheckFunc{
		"database": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return errors.New("refused") },
	})

	result, healthy := uc.Check(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "degraded", result["status"])
	assert.Equal(t, "ok", result["database"])
	assert.Equal(t, "unavailable", result["redis"])
}
