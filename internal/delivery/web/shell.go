// Package web renders the landing page and drives the two lead forms
// through leadform and the API client.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"standeal-backend/internal/delivery/http/middleware"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/leadclient"
	"standeal-backend/pkg/leadform"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// LeadAPI is what the shell needs from the backend.
type LeadAPI interface {
	leadform.Submitter
	FetchCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error)
}

type notice struct {
	Success     bool
	Title       string
	Description string
}

var (
	quoteSent = notice{
		Success:     true,
		Title:       "Cererea a fost trimisă cu succes!",
		Description: "Vă vom contacta în maxim 2 ore cu o cotație detaliată.",
	}
	quoteFailed = notice{
		Title:       "Eroare la trimiterea cererii",
		Description: "Vă rugăm să încercați din nou sau să ne contactați direct.",
	}
	contactSent = notice{
		Success:     true,
		Title:       "Mesajul a fost trimis cu succes!",
		Description: "Vă vom răspunde în cel mai scurt timp.",
	}
	contactFailed = notice{
		Title:       "Eroare la trimiterea mesajului",
		Description: "Vă rugăm să încercați din nou sau să ne contactați direct.",
	}
	stillSending = notice{
		Title:       "Se trimite...",
		Description: "Cererea anterioară este încă în curs de trimitere. Vă rugăm să așteptați.",
	}
)

type pageView struct {
	Company       *domain.CompanyInfo
	State         leadform.State
	QuoteErrors   *leadform.FieldErrors
	ContactErrors *leadform.FieldErrors
	QuoteNotice   *notice
	ContactNotice *notice
	// OpenForm keeps the quote panel expanded after a failed submission
	OpenForm leadform.FormID
}

// Shell holds the company info read at startup and the sessions of visitors
// with a submission in progress; everything else is per request.
type Shell struct {
	api      LeadAPI
	logger   *slog.Logger
	visitors *visitorSessions

	mu      sync.RWMutex
	company *domain.CompanyInfo
}

func NewShell(api LeadAPI, logger *slog.Logger) *Shell {
	return &Shell{api: api, logger: logger, visitors: newVisitorSessions()}
}

// LoadCompanyInfo performs the single startup read. On failure the page keeps
// showing its loading placeholder; there is no retry.
func (s *Shell) LoadCompanyInfo(ctx context.Context) {
	info, err := s.api.FetchCompanyInfo(ctx)
	if err != nil {
		s.logger.Warn("Error fetching company info", "error", err)
		return
	}
	s.mu.Lock()
	s.company = info
	s.mu.Unlock()
}

func (s *Shell) Company() *domain.CompanyInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.company == nil {
		return nil
	}
	return s.company.Clone()
}

func NewRouter(shell *Shell) (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"fieldError": fieldError,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestIDMiddleware())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", shell.Index)
	r.POST("/quote", shell.SubmitQuote)
	r.POST("/contact", shell.SubmitContact)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	return r, nil
}

func (s *Shell) Index(c *gin.Context) {
	visitorKey(c)
	s.render(c, http.StatusOK, pageView{})
}

func (s *Shell) SubmitQuote(c *gin.Context) {
	s.submit(c, leadform.FormQuote, leadform.QuoteFieldNames(), quoteSent, quoteFailed)
}

func (s *Shell) SubmitContact(c *gin.Context) {
	s.submit(c, leadform.FormContact, leadform.ContactFieldNames(), contactSent, contactFailed)
}

func (s *Shell) submit(c *gin.Context, form leadform.FormID, fields []string, sent, failed notice) {
	var state leadform.State
	for _, field := range fields {
		next, err := leadform.Update(state, form, field, c.PostForm(field))
		if err != nil {
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
		state = next
	}

	key := visitorKey(c)
	session := s.visitors.acquire(key)
	defer s.visitors.release(key)
	session.Replace(form, state)

	ctx := leadclient.WithVisitorIP(c.Request.Context(), c.ClientIP())
	err := session.Submit(ctx, form, s.api)

	view := pageView{State: state}
	status := http.StatusOK

	var fieldErrs *leadform.FieldErrors
	switch {
	case err == nil:
		view.State = leadform.Reset(state, form)
		view.setNotice(form, sent)
	case errors.Is(err, leadform.ErrInFlight):
		status = http.StatusConflict
		view.OpenForm = form
		view.setNotice(form, stillSending)
	case errors.As(err, &fieldErrs):
		status = http.StatusUnprocessableEntity
		view.OpenForm = form
		if form == leadform.FormQuote {
			view.QuoteErrors = fieldErrs
		} else {
			view.ContactErrors = fieldErrs
		}
	default:
		s.logger.Warn("Lead submission failed", "form", form, "error", err)
		status = http.StatusBadGateway
		view.OpenForm = form
		view.setNotice(form, failed)
	}

	s.render(c, status, view)
}

func (v *pageView) setNotice(form leadform.FormID, n notice) {
	if form == leadform.FormQuote {
		v.QuoteNotice = &n
		return
	}
	v.ContactNotice = &n
}

func (s *Shell) render(c *gin.Context, status int, view pageView) {
	view.Company = s.Company()
	c.HTML(status, "index.html", view)
}

func fieldError(errs *leadform.FieldErrors, field string) string {
	if errs == nil {
		return ""
	}
	return errs.Message(field)
}
