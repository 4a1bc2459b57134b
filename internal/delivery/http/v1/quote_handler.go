package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"standeal-backend/internal/delivery/http/response"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/apperror"
	"time"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type QuoteHandler struct {
	quoteUC domain.QuoteUsecase
}

// NewQuoteHandler registers the public submission route and the admin list routes
func NewQuoteHandler(public, admin *gin.RouterGroup, intake gin.HandlerFunc, quoteUC domain.QuoteUsecase) {
	handler := &QuoteHandler{quoteUC: quoteUC}

	public.POST("/transport-quote", intake, handler.SubmitQuote)

	admin.GET("/transport-quotes", handler.ListQuotes)
	admin.GET("/transport-quotes/export", handler.ExportQuotes)
}

// SubmitQuote godoc
// @Summary      Submit transport quote request
// @Description  Stores a quote request and notifies the company. cargo_weight is a number or null.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.QuoteRequest  true  "Quote request"
// @Success      201    {object}  response.Response{data=domain.TransportQuote}
// @Failure      400    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /transport-quote [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Format invalid al cererii"))
		return
	}

	quote, err := h.quoteUC.SubmitQuote(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Cererea de cotație a fost trimisă cu succes", quote)
}

// ListQuotes godoc
// @Summary      List quote requests
// @Description  Newest first, at most 1000 records
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.TransportQuote}
// @Failure      401  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /transport-quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.quoteUC.ListQuotes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Cereri de cotație", quotes)
}

// ExportQuotes godoc
// @Summary      Export quote requests
// @Description  XLSX workbook with the same records as the list endpoint
// @Tags         quotes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      401  {object}  response.Response
// @Router       /transport-quotes/export [get]
func (h *QuoteHandler) ExportQuotes(c *gin.Context) {
	// Buffer first so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := h.quoteUC.ExportQuotes(c.Request.Context(), &buf); err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("cotatii-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
