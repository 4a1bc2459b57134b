package usecase

import (
	"context"
	"standeal-backend/config"
	"standeal-backend/internal/domain"
)

type companyUsecase struct {
	info domain.CompanyInfo
}

// NewCompanyUsecase freezes the configured company content
func NewCompanyUsecase(cfg config.CompanyConfig) domain.CompanyUsecase {
	info := domain.CompanyInfo{
		CompanyName: cfg.Name,
		Slogan:      cfg.Slogan,
		Description: cfg.Description,
		Services:    cfg.Services,
		Email:       cfg.Email,
		Phone:       cfg.Phone,
		Address:     cfg.Address,
	}
	return &companyUsecase{info: *info.Clone()}
}

// GetCompanyInfo returns a copy; the blob itself never changes after startup
func (u *companyUsecase) GetCompanyInfo(ctx context.Context) *domain.CompanyInfo {
	return u.info.Clone()
}
