package v1

import (
	"net/http"
	"standeal-backend/internal/delivery/http/response"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	statusUC domain.StatusUsecase
}

func NewStatusHandler(public *gin.RouterGroup, statusUC domain.StatusUsecase) {
	handler := &StatusHandler{statusUC: statusUC}
	public.POST("/status", handler.RecordStatus)
	public.GET("/status", handler.ListStatus)
}

// RecordStatus godoc
// @Summary      Record status check
// @Tags         system
// @Accept       json
// @Produce      json
// @Param        status  body      domain.StatusCheckRequest  true  "Client name"
// @Success      201     {object}  response.Response{data=domain.StatusCheck}
// @Failure      400     {object}  response.Response
// @Router       /status [post]
func (h *StatusHandler) RecordStatus(c *gin.Context) {
	var req domain.StatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Format invalid"))
		return
	}

	check, err := h.statusUC.RecordStatus(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Status înregistrat", check)
}

// ListStatus godoc
// @Summary      List status checks
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.StatusCheck}
// @Router       /status [get]
func (h *StatusHandler) ListStatus(c *gin.Context) {
	checks, err := h.statusUC.ListStatus(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Status checks", checks)
}
