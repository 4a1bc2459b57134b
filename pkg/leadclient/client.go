// Package leadclient talks to the lead-intake API on behalf of the web shell
// and the operator CLI.
package leadclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"standeal-backend/internal/domain"
)

const (
	companyInfoPath    = "/api/company-info"
	transportQuotePath = "/api/transport-quote"
	contactPath        = "/api/contact"
	exportPath         = "/api/transport-quotes/export"
)

type visitorIPKey struct{}

// WithVisitorIP marks ctx with the address of the visitor a call is made on
// behalf of. Submissions made with it carry X-Forwarded-For, so the API rate
// limits the visitor rather than the caller.
func WithVisitorIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, visitorIPKey{}, ip)
}

func visitorIP(ctx context.Context) string {
	ip, _ := ctx.Value(visitorIPKey{}).(string)
	return ip
}

// ErrSubmission is the only failure kind a submission reports.
var ErrSubmission = errors.New("lead submission failed")

// SubmissionError covers network failures and non-2xx responses alike.
// StatusCode is zero when no response was received and is kept for logging only.
type SubmissionError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s returned status %d", ErrSubmission, e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", ErrSubmission, e.Endpoint, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func (e *SubmissionError) Is(target error) bool { return target == ErrSubmission }

// Client is stateless apart from its base URL; it never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchCompanyInfo reads the company content once.
func (c *Client) FetchCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+companyInfoPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch company info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch company info: unexpected status %d", resp.StatusCode)
	}

	var info domain.CompanyInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode company info: %w", err)
	}
	return &info, nil
}

// SubmitQuote sends one quote request. cargo_weight travels as a number or null.
func (c *Client) SubmitQuote(ctx context.Context, req domain.QuoteRequest) error {
	return c.post(ctx, transportQuotePath, req)
}

// SubmitContact sends one contact message.
func (c *Client) SubmitContact(ctx context.Context, req domain.ContactRequest) error {
	return c.post(ctx, contactPath, req)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &SubmissionError{Endpoint: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &SubmissionError{Endpoint: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if ip := visitorIP(ctx); ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Lead submission failed", "endpoint", path, "error", err)
		return &SubmissionError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the body itself is not interpreted.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Lead submission rejected", "endpoint", path, "status", resp.StatusCode)
		return &SubmissionError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return nil
}

// ExportQuotes downloads the XLSX quote export with an admin token.
func (c *Client) ExportQuotes(ctx context.Context, token string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+exportPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("export quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("export quotes: unexpected status %d", resp.StatusCode)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("export quotes: %w", err)
	}
	return nil
}
