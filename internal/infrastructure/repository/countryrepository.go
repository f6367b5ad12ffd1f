package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/persistence/models"
	"simvia/internal/shared/logger"
)

type CountryRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCountryRepository(db *gorm.DB, logger logger.Interface) catalog.CountryRepository {
	return &CountryRepositoryImpl{db: db, logger: logger}
}

func (r *CountryRepositoryImpl) Create(ctx context.Context, country *catalog.Country) error {
	model := &models.CountryModel{
		Code:    country.Code(),
		Name:    country.Name(),
		FlagURL: country.FlagURL(),
		Slug:    country.Slug(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create country", "error", err, "code", country.Code())
		return fmt.Errorf("failed to create country: %w", err)
	}

	if err := country.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("country created", "country_id", model.ID, "code", country.Code())
	return nil
}

func (r *CountryRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get country by code", "error", err, "code", code)
		return nil, fmt.Errorf("failed to get country by code: %w", err)
	}
	return countryToEntity(&model)
}

func (r *CountryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*catalog.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get country by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get country by slug: %w", err)
	}
	return countryToEntity(&model)
}

func (r *CountryRepositoryImpl) List(ctx context.Context) ([]*catalog.Country, error) {
	var countryModels []*models.CountryModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&countryModels).Error; err != nil {
		r.logger.Errorw("failed to list countries", "error", err)
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	countries := make([]*catalog.Country, 0, len(countryModels))
	for _, model := range countryModels {
		country, err := countryToEntity(model)
		if err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}
	return countries, nil
}

func countryToEntity(model *models.CountryModel) (*catalog.Country, error) {
	country, err := catalog.ReconstructCountry(model.ID, model.Code, model.Name,
		model.FlagURL, model.Slug, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct country: %w", err)
	}
	return country, nil
}
