package importer

import (
	"context"
	"fmt"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/destinations"
	"simvia/internal/shared/logger"
)

// countryResolver maps source country entries to stored country IDs,
// creating missing ones. The cache is scoped to a single import run so
// repeated codes across destinations hit the database once.
type countryResolver struct {
	repo   catalog.CountryRepository
	cache  map[string]uint
	logger logger.Interface
}

func newCountryResolver(repo catalog.CountryRepository, log logger.Interface) *countryResolver {
	return &countryResolver{
		repo:   repo,
		cache:  make(map[string]uint),
		logger: log,
	}
}

func (r *countryResolver) Resolve(ctx context.Context, source destinations.Country) (uint, error) {
	if id, ok := r.cache[source.CountryCode]; ok {
		return id, nil
	}

	existing, err := r.repo.GetByCode(ctx, source.CountryCode)
	if err != nil {
		return 0, fmt.Errorf("failed to look up country %s: %w", source.CountryCode, err)
	}
	if existing != nil {
		r.cache[source.CountryCode] = existing.ID()
		return existing.ID(), nil
	}

	country, err := catalog.NewCountry(source.Name, source.CountryCode, source.Image)
	if err != nil {
		return 0, fmt.Errorf("invalid country %s: %w", source.CountryCode, err)
	}
	if err := r.repo.Create(ctx, country); err != nil {
		return 0, fmt.Errorf("failed to create country %s: %w", source.CountryCode, err)
	}

	r.logger.Infow("created country", "name", country.Name(), "code", country.Code())
	r.cache[source.CountryCode] = country.ID()
	return country.ID(), nil
}

// ResolveAll resolves the destination's country list in order. Duplicate
// codes in the source are preserved in the result.
func (r *countryResolver) ResolveAll(ctx context.Context, sources []destinations.Country) ([]uint, error) {
	ids := make([]uint, 0, len(sources))
	for _, source := range sources {
		id, err := r.Resolve(ctx, source)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
