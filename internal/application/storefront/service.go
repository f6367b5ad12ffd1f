package storefront

import (
	"context"
	"encoding/json"
	"fmt"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/cache"
	apperrors "simvia/internal/shared/errors"
	"simvia/internal/shared/logger"
	"simvia/internal/shared/services/markdown"
)

// ListProductsQuery narrows the public product listing.
type ListProductsQuery struct {
	ESIMType string
	Page     int
	PageSize int
}

// Service serves the public catalog. Listings go through the read-through
// cache; cache trouble degrades to the database silently.
type Service struct {
	countries catalog.CountryRepository
	products  catalog.ProductRepository
	variants  catalog.VariantRepository
	cache     *cache.CatalogCache
	markdown  markdown.Service
	logger    logger.Interface
}

func NewService(
	countries catalog.CountryRepository,
	products catalog.ProductRepository,
	variants catalog.VariantRepository,
	catalogCache *cache.CatalogCache,
	md markdown.Service,
	log logger.Interface,
) *Service {
	return &Service{
		countries: countries,
		products:  products,
		variants:  variants,
		cache:     catalogCache,
		markdown:  md,
		logger:    log,
	}
}

func (s *Service) ListCountries(ctx context.Context) ([]CountryDTO, error) {
	const cacheKey = "countries"
	if payload, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached []CountryDTO
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	countries, err := s.countries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	result := make([]CountryDTO, 0, len(countries))
	for _, c := range countries {
		result = append(result, toCountryDTO(c))
	}

	if payload, err := json.Marshal(result); err == nil {
		s.cache.Set(ctx, cacheKey, payload)
	}
	return result, nil
}

func (s *Service) GetCountryBySlug(ctx context.Context, countrySlug string) (*CountryDetailDTO, error) {
	country, err := s.countries.GetBySlug(ctx, countrySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	if country == nil {
		return nil, apperrors.NewNotFoundError("country not found")
	}

	countryID := country.ID()
	products, _, err := s.products.List(ctx, catalog.ProductFilter{
		CountryID:     &countryID,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list country products: %w", err)
	}

	detail := &CountryDetailDTO{
		CountryDTO: toCountryDTO(country),
		Products:   make([]ProductSummaryDTO, 0, len(products)),
	}
	for _, p := range products {
		detail.Products = append(detail.Products, toProductSummaryDTO(p))
	}
	return detail, nil
}

func (s *Service) ListProducts(ctx context.Context, query ListProductsQuery) (*ProductListDTO, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	cacheKey := fmt.Sprintf("products:%s:%d:%d", query.ESIMType, query.Page, query.PageSize)
	if payload, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached ProductListDTO
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	filter := catalog.ProductFilter{
		PublishedOnly: true,
		Page:          query.Page,
		PageSize:      query.PageSize,
	}
	if query.ESIMType != "" {
		esimType := catalog.ESIMType(query.ESIMType)
		if !esimType.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid esim type: %s", query.ESIMType))
		}
		filter.ESIMType = &esimType
	}

	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := &ProductListDTO{
		Products: make([]ProductSummaryDTO, 0, len(products)),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	for _, p := range products {
		result.Products = append(result.Products, toProductSummaryDTO(p))
	}

	if payload, err := json.Marshal(result); err == nil {
		s.cache.Set(ctx, cacheKey, payload)
	}
	return result, nil
}

func (s *Service) GetProductBySlug(ctx context.Context, productSlug string) (*ProductDetailDTO, error) {
	product, err := s.products.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil || !product.IsPublished() {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	detail := &ProductDetailDTO{
		ProductSummaryDTO: toProductSummaryDTO(product),
		Coverage:          product.Coverage(),
	}

	if product.Coverage() != "" {
		html, err := s.markdown.ToHTMLSanitized(product.Coverage())
		if err != nil {
			s.logger.Warnw("failed to render coverage", "slug", productSlug, "error", err)
		} else {
			detail.CoverageHTML = html
		}
	}

	detail.Countries, err = s.productCountries(ctx, product)
	if err != nil {
		return nil, err
	}

	detail.Variants, err = s.productVariants(ctx, product)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// productCountries expands the product's country ID list, preserving its
// order and any repeats.
func (s *Service) productCountries(ctx context.Context, product *catalog.Product) ([]CountryDTO, error) {
	if len(product.CountryIDs()) == 0 {
		return []CountryDTO{}, nil
	}

	all, err := s.countries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	byID := make(map[uint]*catalog.Country, len(all))
	for _, c := range all {
		byID[c.ID()] = c
	}

	result := make([]CountryDTO, 0, len(product.CountryIDs()))
	for _, id := range product.CountryIDs() {
		if c, ok := byID[id]; ok {
			result = append(result, toCountryDTO(c))
		}
	}
	return result, nil
}

func (s *Service) productVariants(ctx context.Context, product *catalog.Product) ([]VariantDTO, error) {
	if !product.VariantsEnabled() {
		return []VariantDTO{}, nil
	}

	variants, err := s.variants.ListByProduct(ctx, product.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	optionIDs := make([]uint, 0, len(variants))
	for _, v := range variants {
		optionIDs = append(optionIDs, v.OptionID())
	}
	options, err := s.variants.GetOptionsByIDs(ctx, optionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load variant options: %w", err)
	}
	optionByID := make(map[uint]*catalog.VariantOption, len(options))
	for _, o := range options {
		optionByID[o.ID()] = o
	}

	result := make([]VariantDTO, 0, len(variants))
	for _, v := range variants {
		dto := VariantDTO{
			ID:         v.ID(),
			Title:      v.Title(),
			PriceInUSD: v.PriceUSD(),
			Inventory:  v.Inventory(),
			PlanType:   string(v.PlanType()),
		}
		if o, ok := optionByID[v.OptionID()]; ok {
			dto.Option = OptionDTO{Label: o.Label(), Value: o.Value()}
		}
		result = append(result, dto)
	}
	return result, nil
}
