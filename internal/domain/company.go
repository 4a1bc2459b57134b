package domain

import "context"

// CompanyInfo is the read-only company content shown on the landing page
type CompanyInfo struct {
	CompanyName string   `json:"company_name"`
	Slogan      string   `json:"slogan"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
}

// Clone returns a deep copy so callers can never mutate the shared blob
func (c CompanyInfo) Clone() *CompanyInfo {
	out := c
	out.Services = append([]string(nil), c.Services...)
	return &out
}

// CompanyUsecase serves the company info blob
type CompanyUsecase interface {
	GetCompanyInfo(ctx context.Context) *CompanyInfo
}
