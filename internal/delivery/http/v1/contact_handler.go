package v1

import (
	"net/http"
	"standeal-backend/internal/delivery/http/response"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes
func NewContactHandler(public, admin *gin.RouterGroup, intake gin.HandlerFunc, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	// Public Routes - NO authentication required
	public.POST("/contact", intake, handler.SubmitContact)

	admin.GET("/contact-messages", handler.ListMessages)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      201      {object}  response.Response{data=domain.ContactMessage}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Format invalid al mesajului"))
		return
	}

	msg, err := h.contactUC.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Mesajul a fost trimis cu succes", msg)
}

// ListMessages godoc
// @Summary      List contact messages
// @Description  Newest first, at most 1000 records
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.ContactMessage}
// @Failure      401  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /contact-messages [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactUC.ListMessages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Mesaje de contact", messages)
}
