package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"standeal-backend/config"
	"standeal-backend/internal/delivery/http/middleware"
	v1 "standeal-backend/internal/delivery/http/v1"
	"standeal-backend/internal/domain"
	"standeal-backend/internal/usecase"
	"standeal-backend/pkg/apperror"
	"standeal-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminSecret = "admin-secret"

type MockCompanyUC struct{ info domain.CompanyInfo }

func (m *MockCompanyUC) GetCompanyInfo(ctx context.Context) *domain.CompanyInfo {
	return m.info.Clone()
}

type MockQuoteUC struct{ mock.Mock }

func (m *MockQuoteUC) SubmitQuote(ctx context.Context, req *domain.QuoteRequest) (*domain.TransportQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransportQuote), args.Error(1)
}

func (m *MockQuoteUC) ListQuotes(ctx context.Context) ([]domain.TransportQuote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransportQuote), args.Error(1)
}

func (m *MockQuoteUC) ExportQuotes(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if args.Error(0) == nil {
		_, _ = w.Write([]byte("PK"))
	}
	return args.Error(0)
}

type MockContactUC struct{ mock.Mock }

func (m *MockContactUC) SubmitContact(ctx context.Context, req *domain.ContactRequest) (*domain.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *MockContactUC) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

type MockStatusUC struct{ mock.Mock }

func (m *MockStatusUC) RecordStatus(ctx context.Context, req *domain.StatusCheckRequest) (*domain.StatusCheck, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCheck), args.Error(1)
}

func (m *MockStatusUC) ListStatus(ctx context.Context) ([]domain.StatusCheck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCheck), args.Error(1)
}

type testDeps struct {
	quote   *MockQuoteUC
	contact *MockContactUC
	status  *MockStatusUC
	router  *gin.Engine
}

func setup(t *testing.T, secret string, intakeLimit int) testDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := testDeps{
		quote:   new(MockQuoteUC),
		contact: new(MockContactUC),
		status:  new(MockStatusUC),
	}
	secLog := security.NewSecurityLogger(zap.NewNop(), "test", "test")
	deps.router = v1.NewRouter(v1.RouterDeps{
		CompanyUC: &MockCompanyUC{info: domain.CompanyInfo{
			CompanyName: "Standeal.md",
			Phone:       "+373 68 727 975",
			Services:    []string{"Transport marfă"},
		}},
		QuoteUC:        deps.quote,
		ContactUC:      deps.contact,
		StatusUC:       deps.status,
		HealthUC:       usecase.NewHealthUsecase(nil),
		RateLimiter:    middleware.NewRateLimiter(nil, secLog),
		SecurityLogger: secLog,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{
			CORSOrigins:              []string{"*"},
			RateLimitWindowSeconds:   60,
			RateLimitGlobalThreshold: 1000,
			RateLimitIntakeThreshold: intakeLimit,
			AdminJWTSecret:           secret,
		},
	})
	return deps
}

func do(r http.Handler, method, path string, body []byte, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(adminSecret))
	require.NoError(t, err)
	return token
}

func TestRootAndCompanyInfo(t *testing.T) {
	d := setup(t, adminSecret, 10)

	w := do(d.router, http.MethodGet, "/api/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "active")

	w = do(d.router, http.MethodGet, "/api/company-info", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var info domain.CompanyInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "Standeal.md", info.CompanyName)
	assert.Equal(t, []string{"Transport marfă"}, info.Services)

	w = do(d.router, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(d.router, http.MethodGet, "/api/nowhere", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resursa solicitată nu există")
}

func TestSubmitQuoteHandler(t *testing.T) {
	t.Run("Should return 201 with the stored record", func(t *testing.T) {
		d := setup(t, adminSecret, 10)
		weight := 500.0
		stored := &domain.TransportQuote{
			ID:           "q-1",
			QuoteRequest: domain.QuoteRequest{ClientName: "Ion", CargoType: "Transport marfă", CargoWeight: &weight},
			Timestamp:    time.Now().UTC(),
		}
		d.quote.On("SubmitQuote", mock.Anything, mock.MatchedBy(func(req *domain.QuoteRequest) bool {
			return req.CargoWeight != nil && *req.CargoWeight == 500 && req.CargoType == "Transport marfă"
		})).Return(stored, nil)

		w := do(d.router, http.MethodPost, "/api/transport-quote",
			[]byte(`{"client_name":"Ion","cargo_type":"Transport marfă","cargo_weight":500}`), "")
		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Success bool                  `json:"success"`
			Data    domain.TransportQuote `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "q-1", body.Data.ID)
		d.quote.AssertExpectations(t)
	})

	t.Run("Should accept a null weight", func(t *testing.T) {
		d := setup(t, adminSecret, 10)
		d.quote.On("SubmitQuote", mock.Anything, mock.MatchedBy(func(req *domain.QuoteRequest) bool {
			return req.CargoWeight == nil
		})).Return(&domain.TransportQuote{ID: "q-2"}, nil)

		w := do(d.router, http.MethodPost, "/api/transport-quote", []byte(`{"client_name":"Ion","cargo_weight":null}`), "")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Should reject a weight sent as a string", func(t *testing.T) {
		d := setup(t, adminSecret, 10)
		w := do(d.router, http.MethodPost, "/api/transport-quote", []byte(`{"client_name":"Ion","cargo_weight":""}`), "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		d.quote.AssertNotCalled(t, "SubmitQuote", mock.Anything, mock.Anything)
	})

	t.Run("Should surface validation details", func(t *testing.T) {
		d := setup(t, adminSecret, 10)
		d.quote.On("SubmitQuote", mock.Anything, mock.Anything).
			Return(nil, apperror.BadRequest("Datele cererii de cotație sunt invalide").WithDetails([]string{"Email este obligatoriu"}))

		w := do(d.router, http.MethodPost, "/api/transport-quote", []byte(`{}`), "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email este obligatoriu")
	})

	t.Run("Should hide storage errors", func(t *testing.T) {
		d := setup(t, adminSecret, 10)
		d.quote.On("SubmitQuote", mock.Anything, mock.Anything).
			Return(nil, apperror.New(http.StatusInternalServerError, "Eroare la procesarea cererii de cotație", errors.New("dial tcp: refused")))

		w := do(d.router, http.MethodPost, "/api/transport-quote", []byte(`{}`), "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Eroare la procesarea cererii de cotație")
		assert.NotContains(t, w.Body.String(), "refused")
	})

	t.Run("Should rate limit intake", func(t *testing.T) {
		d := setup(t, adminSecret, 1)
		d.quote.On("SubmitQuote", mock.Anything, mock.Anything).Return(&domain.TransportQuote{ID: "q"}, nil)

		assert.Equal(t, http.StatusCreated, do(d.router, http.MethodPost, "/api/transport-quote", []byte(`{}`), "").Code)
		assert.Equal(t, http.StatusTooManyRequests, do(d.router, http.MethodPost, "/api/transport-quote", []byte(`{}`), "").Code)
	})

	t.Run("Should ignore forwarded addresses from untrusted peers", func(t *testing.T) {
		d := setup(t, adminSecret, 1)
		d.quote.On("SubmitQuote", mock.Anything, mock.Anything).Return(&domain.TransportQuote{ID: "q"}, nil)

		codes := make([]int, 0, 2)
		for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
			req := httptest.NewRequest(http.MethodPost, "/api/transport-quote", bytes.NewReader([]byte(`{}`)))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Forwarded-For", ip)
			w := httptest.NewRecorder()
			d.router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		assert.Equal(t, []int{http.StatusCreated, http.StatusTooManyRequests}, codes)
	})
}

func TestSubmitContactHandler(t *testing.T) {
	d := setup(t, adminSecret, 10)
	d.contact.On("SubmitContact", mock.Anything, mock.MatchedBy(func(req *domain.ContactRequest) bool {
		return req.Name == "Maria" && req.Phone == ""
	})).Return(&domain.ContactMessage{ID: "c-1"}, nil)

	w := do(d.router, http.MethodPost, "/api/contact",
		[]byte(`{"name":"Maria","email":"maria@example.md","subject":"Ofertă","message":"Salut"}`), "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(d.router, http.MethodPost, "/api/contact", []byte(`not json`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLists(t *testing.T) {
	t.Run("Should require a token", func(t *testing.T) {
		d := setup(t, adminSecret, 10)
		assert.Equal(t, http.StatusUnauthorized, do(d.router, http.MethodGet, "/api/transport-quotes", nil, "").Code)
		assert.Equal(t, http.StatusUnauthorized, do(d.router, http.MethodGet, "/api/contact-messages", nil, "bogus").Code)
	})

	t.Run("Should be disabled without a secret", func(t *testing.T) {
		d := setup(t, "", 10)
		assert.Equal(t, http.StatusServiceUnavailable, do(d.router, http.MethodGet, "/api/transport-quotes", nil, "").Code)
	})

	t.Run("Should list for an admin", func(t *testing.T) {
		d := setup(t, adminSecret, 10)
		d.quote.On("ListQuotes", mock.Anything).Return([]domain.TransportQuote{{ID: "q-2"}, {ID: "q-1"}}, nil)
		d.contact.On("ListMessages", mock.Anything).Return([]domain.ContactMessage{{ID: "c-1"}}, nil)

		w := do(d.router, http.MethodGet, "/api/transport-quotes", nil, adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []domain.TransportQuote `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "q-2", body.Data[0].ID)

		w = do(d.router, http.MethodGet, "/api/contact-messages", nil, adminToken(t))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should export xlsx", func(t *testing.T) {
		d := setup(t, adminSecret, 10)
		d.quote.On("ExportQuotes", mock.Anything, mock.Anything).Return(nil)

		w := do(d.router, http.MethodGet, "/api/transport-quotes/export", nil, adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
		assert.Equal(t, "PK", w.Body.String())
	})
}

func TestStatusRoutes(t *testing.T) {
	d := setup(t, adminSecret, 10)
	d.status.On("RecordStatus", mock.Anything, mock.Anything).Return(&domain.StatusCheck{ID: "s-1", ClientName: "landing"}, nil)
	d.status.On("ListStatus", mock.Anything).Return([]domain.StatusCheck{{ID: "s-1"}}, nil)

	assert.Equal(t, http.StatusCreated, do(d.router, http.MethodPost, "/api/status", []byte(`{"client_name":"landing"}`), "").Code)
	assert.Equal(t, http.StatusOK, do(d.router, http.MethodGet, "/api/status", nil, "").Code)
}
