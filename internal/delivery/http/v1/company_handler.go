package v1

import (
	"net/http"
	"standeal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}
	public.GET("/company-info", handler.GetCompanyInfo)
}

// GetCompanyInfo godoc
// @Summary      Company info
// @Description  Static company content for the landing page. Returned as a bare object.
// @Tags         company
// @Produce      json
// @Success      200  {object}  domain.CompanyInfo
// @Router       /company-info [get]
func (h *CompanyHandler) GetCompanyInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.companyUC.GetCompanyInfo(c.Request.Context()))
}
