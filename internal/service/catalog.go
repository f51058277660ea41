package service

import (
	"context"
	"errors"
	"strings"

	"libtrack-backend/internal/domain"
	"libtrack-backend/internal/logger"
	"libtrack-backend/internal/repository"
)

type catalogService struct {
	assets repository.AssetRepository
	loans  repository.LoanRepository
}

func NewCatalogService(assets repository.AssetRepository, loans repository.LoanRepository) CatalogService {
	return &catalogService{assets: assets, loans: loans}
}

func (s *catalogService) AddAsset(ctx context.Context, title, category, code string) (*domain.Asset, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrMissingTitle
	}
	code = strings.TrimSpace(code)
	if len(code) != domain.AssetCodeLength {
		return nil, domain.ErrInvalidAssetCode
	}
	category = strings.ToUpper(strings.TrimSpace(category))
	if category == "" {
		return nil, domain.ErrMissingCategory
	}

	asset := &domain.Asset{
		Code:     code,
		Title:    title,
		Category: category,
		Status:   domain.AssetStatusAvailable,
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	logger.Info("asset added", "asset_code", asset.Code, "category", asset.Category)
	return asset, nil
}

func (s *catalogService) DeleteAsset(ctx context.Context, id int32) error {
	// An open loan blocks deletion regardless of what the status column
	// says right now.
	_, err := s.loans.GetOpenByAsset(ctx, id)
	if err == nil {
		return domain.ErrAssetInUse
	}
	if !errors.Is(err, domain.ErrNoOpenLoan) {
		return err
	}

	// Conditioned on AVAILABLE so an issue committing in between fails the
	// delete instead of orphaning the new loan.
	if err := s.assets.DeleteAvailable(ctx, id); err != nil {
		if errors.Is(err, domain.ErrStaleRecord) {
			if _, gerr := s.assets.GetByID(ctx, id); errors.Is(gerr, domain.ErrAssetNotFound) {
				return domain.ErrAssetNotFound
			}
			return domain.ErrAssetInUse
		}
		return err
	}
	logger.Info("asset deleted", "asset_id", id)
	return nil
}

func (s *catalogService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.assets.List(ctx)
}

func (s *catalogService) ListAssetsByCategory(ctx context.Context, category string) ([]domain.Asset, error) {
	return s.assets.ListByCategory(ctx, strings.ToUpper(strings.TrimSpace(category)))
}
