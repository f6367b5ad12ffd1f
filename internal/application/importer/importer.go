package importer

import (
	"context"
	"fmt"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/destinations"
	"simvia/internal/shared/logger"
	"simvia/internal/shared/slug"
)

// Fetcher supplies the destination feed. Partial results are valid input:
// the fetch layer stops pagination on its first error and returns whatever
// it collected.
type Fetcher interface {
	FetchAll(ctx context.Context) []destinations.Destination
}

// Failure records one destination that could not be imported.
type Failure struct {
	Destination string
	Code        string
	Err         error
}

// Report summarizes a completed import run.
type Report struct {
	Total     int
	Succeeded int
	Failed    int
	Failures  []Failure
}

// Importer loads the external destination feed into the catalog. Each
// destination is processed independently so one bad payload does not stop
// the run.
type Importer struct {
	fetcher   Fetcher
	countries catalog.CountryRepository
	products  catalog.ProductRepository
	variants  catalog.VariantRepository
	logger    logger.Interface
}

func New(
	fetcher Fetcher,
	countries catalog.CountryRepository,
	products catalog.ProductRepository,
	variants catalog.VariantRepository,
	log logger.Interface,
) *Importer {
	return &Importer{
		fetcher:   fetcher,
		countries: countries,
		products:  products,
		variants:  variants,
		logger:    log,
	}
}

// Run executes one full import pass. It returns an error only when the run
// cannot proceed at all; per-destination failures are reported in the
// Report and do not fail the run.
func (i *Importer) Run(ctx context.Context) (*Report, error) {
	dests := i.fetcher.FetchAll(ctx)
	report := &Report{Total: len(dests)}

	if len(dests) == 0 {
		i.logger.Infow("no destinations to import")
		return report, nil
	}

	planType, err := i.ensurePlanVariantType(ctx)
	if err != nil {
		return nil, err
	}

	resolver := newCountryResolver(i.countries, i.logger)
	materializer := newVariantMaterializer(i.variants, i.logger)

	for _, dest := range dests {
		if err := i.importDestination(ctx, dest, planType.ID(), resolver, materializer); err != nil {
			i.logger.Errorw("failed to import destination",
				"destination", dest.Name,
				"code", dest.Code,
				"error", err)
			report.Failed++
			report.Failures = append(report.Failures, Failure{
				Destination: dest.Name,
				Code:        dest.Code,
				Err:         err,
			})
			continue
		}
		report.Succeeded++
	}

	i.logger.Infow("import completed",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed)
	return report, nil
}

func (i *Importer) ensurePlanVariantType(ctx context.Context) (*catalog.VariantType, error) {
	existing, err := i.variants.GetTypeByName(ctx, catalog.PlanVariantTypeName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up plan variant type: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	planType, err := catalog.NewVariantType(catalog.PlanVariantTypeName, catalog.PlanVariantTypeLabel)
	if err != nil {
		return nil, fmt.Errorf("invalid plan variant type: %w", err)
	}
	if err := i.variants.CreateType(ctx, planType); err != nil {
		return nil, fmt.Errorf("failed to create plan variant type: %w", err)
	}

	i.logger.Infow("created plan variant type", "id", planType.ID())
	return planType, nil
}

func (i *Importer) importDestination(
	ctx context.Context,
	dest destinations.Destination,
	planTypeID uint,
	resolver *countryResolver,
	materializer *variantMaterializer,
) error {
	countryIDs, err := resolver.ResolveAll(ctx, dest.Countries)
	if err != nil {
		return err
	}

	productSlug := slug.Join(dest.Name, dest.Code)

	existing, err := i.products.GetBySlug(ctx, productSlug)
	if err != nil {
		return fmt.Errorf("failed to look up product %s: %w", productSlug, err)
	}

	if existing != nil {
		// Existing products get a narrow refresh of the source-owned
		// fields. Pricing, variants, and title stay untouched.
		existing.ApplySourceUpdate(catalog.SourceUpdate{
			CountryIDs: countryIDs,
			Provider:   dest.Provider,
			ESIMType:   catalog.ESIMTypeFromSource(dest.Type),
			Coverage:   coverageText(dest.Coverages),
			IconURL:    dest.ImageURL,
		})
		if err := i.products.UpdateSourceFields(ctx, existing); err != nil {
			return fmt.Errorf("failed to update product %s: %w", productSlug, err)
		}
		i.logger.Infow("updated product", "slug", productSlug, "countries", len(countryIDs))
		return nil
	}

	product, err := catalog.NewProduct(dest.Name, productSlug, dest.Provider, catalog.ESIMTypeFromSource(dest.Type))
	if err != nil {
		return fmt.Errorf("invalid product %s: %w", productSlug, err)
	}
	product.SetCoverage(coverageText(dest.Coverages))
	product.SetIconURL(dest.ImageURL)
	product.SetCountryIDs(countryIDs)

	hasPlans := len(dest.Plans) > 0
	if hasPlans {
		product.EnableVariantPricing([]uint{planTypeID})
	} else {
		product.EnableBasePricing(0)
	}
	product.Publish()

	if err := i.products.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product %s: %w", productSlug, err)
	}
	i.logger.Infow("created product",
		"slug", productSlug,
		"plans", len(dest.Plans),
		"countries", len(countryIDs))

	if hasPlans {
		if err := materializer.Materialize(ctx, product.ID(), dest.Name, planTypeID, dest.Plans); err != nil {
			return err
		}
	}
	return nil
}
