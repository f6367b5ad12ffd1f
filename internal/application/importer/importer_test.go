package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/destinations"
	"simvia/internal/infrastructure/migration"
	"simvia/internal/infrastructure/persistence/models"
	"simvia/internal/infrastructure/repository"
	"simvia/internal/shared/logger"
)

type stubFetcher struct {
	dests []destinations.Destination
}

func (s *stubFetcher) FetchAll(context.Context) []destinations.Destination {
	return s.dests
}

type testEnv struct {
	db        *gorm.DB
	countries catalog.CountryRepository
	products  catalog.ProductRepository
	variants  catalog.VariantRepository
}

func setupTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(migration.AutoMigrateModels()...)
	require.NoError(t, err)

	log := logger.NewLogger()
	return &testEnv{
		db:        db,
		countries: repository.NewCountryRepository(db, log),
		products:  repository.NewProductRepository(db, log),
		variants:  repository.NewVariantRepository(db, log),
	}
}

func (e *testEnv) run(t *testing.T, dests ...destinations.Destination) *Report {
	imp := New(&stubFetcher{dests: dests}, e.countries, e.products, e.variants, logger.NewLogger())
	report, err := imp.Run(context.Background())
	require.NoError(t, err)
	return report
}

func floatPtr(v float64) *float64 { return &v }

func japanDestination() destinations.Destination {
	return destinations.Destination{
		ID:       1,
		Name:     "Japan",
		Code:     "JP",
		Type:     "local",
		Provider: "telna",
		ImageURL: "https://cdn.example.com/jp.png",
		Countries: []destinations.Country{
			{CountryCode: "JP", Name: "Japan", Image: "https://cdn.example.com/flags/jp.png"},
		},
		Coverages: []destinations.Coverage{
			{CountryName: "Japan", Networks: []destinations.Network{
				{Name: "NTT Docomo", Types: []string{"4G", "5G"}},
				{Name: "SoftBank", Types: []string{"4G"}},
			}},
		},
		Plans: []destinations.Plan{
			{ID: 10, Name: "Japan 3GB", Data: "3 GB", Duration: 7, PublicPrice: 12, DataAmount: floatPtr(3)},
			{ID: 11, Name: "Japan Unlimited", Data: "Unlimited", Duration: 30, PublicPrice: 49, IsUnlimited: 1},
		},
	}
}

func TestImporter_CreatesProductWithVariants(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	report := env.run(t, japanDestination())

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 0, report.Failed)

	country, err := env.countries.GetByCode(ctx, "JP")
	require.NoError(t, err)
	require.NotNil(t, country)
	assert.Equal(t, "Japan", country.Name())
	assert.Equal(t, "japan", country.Slug())

	product, err := env.products.GetBySlug(ctx, "japan-jp")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Japan", product.Title())
	assert.Equal(t, catalog.ESIMTypeLocal, product.ESIMType())
	assert.True(t, product.IsPublished())
	assert.True(t, product.VariantsEnabled())
	assert.False(t, product.BasePriceEnabled())
	assert.Equal(t, 0, product.Inventory())
	assert.Equal(t, []uint{country.ID()}, product.CountryIDs())
	assert.Equal(t, "Japan: NTT Docomo (4G, 5G), SoftBank (4G)", product.Coverage())

	planType, err := env.variants.GetTypeByName(ctx, "plan")
	require.NoError(t, err)
	require.NotNil(t, planType)
	assert.Equal(t, "Plan", planType.Label())

	option, err := env.variants.GetOptionByValue(ctx, planType.ID(), "3-gb-7d")
	require.NoError(t, err)
	require.NotNil(t, option)
	assert.Equal(t, "3 GB - 7 days", option.Label())

	variants, err := env.variants.ListByProduct(ctx, product.ID())
	require.NoError(t, err)
	require.Len(t, variants, 2)

	assert.Equal(t, "Japan — 3 GB - 7 days", variants[0].Title())
	assert.Equal(t, 12.0, variants[0].PriceUSD())
	assert.Equal(t, 999, variants[0].Inventory())
	assert.Equal(t, catalog.PlanTypeLimited, variants[0].PlanType())

	assert.Equal(t, catalog.PlanTypeUnlimited, variants[1].PlanType())
}

func TestImporter_ProductWithoutPlans(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	dest := japanDestination()
	dest.Plans = nil
	env.run(t, dest)

	product, err := env.products.GetBySlug(ctx, "japan-jp")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.False(t, product.VariantsEnabled())
	assert.True(t, product.BasePriceEnabled())
	assert.Equal(t, 0.0, product.BasePriceUSD())
	assert.Equal(t, 999, product.Inventory())
}

func TestImporter_CountryResolvedOnce(t *testing.T) {
	env := setupTestEnv(t)

	asia := destinations.Destination{
		Name: "Asia", Code: "AS", Type: "regional",
		Countries: []destinations.Country{
			{CountryCode: "JP", Name: "Japan"},
			{CountryCode: "KR", Name: "South Korea"},
		},
	}
	report := env.run(t, japanDestination(), asia)
	assert.Equal(t, 2, report.Succeeded)

	var count int64
	require.NoError(t, env.db.Model(&models.CountryModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImporter_DuplicateCountriesPreserved(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	dest := japanDestination()
	dest.Countries = append(dest.Countries, dest.Countries[0])
	env.run(t, dest)

	product, err := env.products.GetBySlug(ctx, "japan-jp")
	require.NoError(t, err)
	require.NotNil(t, product)
	require.Len(t, product.CountryIDs(), 2)
	assert.Equal(t, product.CountryIDs()[0], product.CountryIDs()[1])
}

func TestImporter_ExistingSlugGetsNarrowUpdate(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.run(t, japanDestination())

	changed := japanDestination()
	changed.Provider = "esimgo"
	changed.ImageURL = "https://cdn.example.com/jp-v2.png"
	changed.Type = "global"
	changed.Plans = []destinations.Plan{
		{ID: 99, Name: "Japan 50GB", Data: "50 GB", Duration: 30, PublicPrice: 90, DataAmount: floatPtr(50)},
	}
	report := env.run(t, changed)
	assert.Equal(t, 1, report.Succeeded)

	product, err := env.products.GetBySlug(ctx, "japan-jp")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "esimgo", product.Provider())
	assert.Equal(t, "https://cdn.example.com/jp-v2.png", product.IconURL())
	assert.Equal(t, catalog.ESIMTypeGlobal, product.ESIMType())

	// Pricing and variants are not source-owned on update.
	variants, err := env.variants.ListByProduct(ctx, product.ID())
	require.NoError(t, err)
	assert.Len(t, variants, 2)
}

func TestImporter_OptionReusedAcrossProducts(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	france := destinations.Destination{
		Name: "France", Code: "FR", Type: "local", Provider: "telna",
		Countries: []destinations.Country{{CountryCode: "FR", Name: "France"}},
		Plans: []destinations.Plan{
			{ID: 20, Name: "France 3GB", Data: "3 GB", Duration: 7, PublicPrice: 10, DataAmount: floatPtr(3)},
		},
	}
	env.run(t, japanDestination(), france)

	planType, err := env.variants.GetTypeByName(ctx, "plan")
	require.NoError(t, err)
	require.NotNil(t, planType)

	var optionCount int64
	require.NoError(t, env.db.Model(&models.VariantOptionModel{}).
		Where("variant_type_id = ? AND value = ?", planType.ID(), "3-gb-7d").
		Count(&optionCount).Error)
	assert.Equal(t, int64(1), optionCount)

	frProduct, err := env.products.GetBySlug(ctx, "france-fr")
	require.NoError(t, err)
	require.NotNil(t, frProduct)

	frVariants, err := env.variants.ListByProduct(ctx, frProduct.ID())
	require.NoError(t, err)
	require.Len(t, frVariants, 1)
	assert.Equal(t, 10.0, frVariants[0].PriceUSD())
}

func TestImporter_FailureIsolation(t *testing.T) {
	env := setupTestEnv(t)

	bad := destinations.Destination{Name: "", Code: "", Type: "local"}
	report := env.run(t, japanDestination(), bad, destinations.Destination{
		Name: "Spain", Code: "ES", Type: "local",
		Countries: []destinations.Country{{CountryCode: "ES", Name: "Spain"}},
	})

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "", report.Failures[0].Destination)
	assert.Error(t, report.Failures[0].Err)

	product, err := env.products.GetBySlug(context.Background(), "spain-es")
	require.NoError(t, err)
	assert.NotNil(t, product)
}

func TestClassifyPlan(t *testing.T) {
	tests := []struct {
		name string
		plan destinations.Plan
		want catalog.PlanType
	}{
		{
			name: "flag set",
			plan: destinations.Plan{Name: "Plan A", Data: "10 GB", IsUnlimited: 1, DataAmount: floatPtr(10)},
			want: catalog.PlanTypeUnlimited,
		},
		{
			name: "nil data amount",
			plan: destinations.Plan{Name: "Plan B", Data: "10 GB"},
			want: catalog.PlanTypeUnlimited,
		},
		{
			name: "unlimited in name",
			plan: destinations.Plan{Name: "Europe Unlimited", Data: "10 GB", DataAmount: floatPtr(10)},
			want: catalog.PlanTypeUnlimited,
		},
		{
			name: "limited",
			plan: destinations.Plan{Name: "Plan D", Data: "10 GB", DataAmount: floatPtr(10)},
			want: catalog.PlanTypeLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPlan(tt.plan))
		})
	}
}

func TestOptionValue(t *testing.T) {
	assert.Equal(t, "3-gb-7d", OptionValue(destinations.Plan{Data: "3 GB", Duration: 7}))
	assert.Equal(t, "unlimited-30d", OptionValue(destinations.Plan{Data: "Unlimited", Duration: 30}))
}
