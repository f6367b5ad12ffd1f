package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/migration"
	"simvia/internal/shared/logger"
)

func setupProductRepo(t *testing.T) catalog.ProductRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(migration.AutoMigrateModels()...)
	require.NoError(t, err)

	return NewProductRepository(db, logger.NewLogger())
}

func seedProduct(t *testing.T, repo catalog.ProductRepository, title, slug string, esimType catalog.ESIMType, published bool) *catalog.Product {
	product, err := catalog.NewProduct(title, slug, "telna", esimType)
	require.NoError(t, err)
	product.EnableBasePricing(10)
	if published {
		product.Publish()
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestProductRepository_ListPublishedOnly(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	seedProduct(t, repo, "Japan", "japan-jp", catalog.ESIMTypeLocal, true)
	seedProduct(t, repo, "Draft Region", "draft-region", catalog.ESIMTypeRegional, false)

	products, total, err := repo.List(ctx, catalog.ProductFilter{PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "japan-jp", products[0].Slug())

	products, total, err = repo.List(ctx, catalog.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)
}

func TestProductRepository_ListFilters(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	seedProduct(t, repo, "Japan", "japan-jp", catalog.ESIMTypeLocal, true)
	seedProduct(t, repo, "Asia", "asia", catalog.ESIMTypeRegional, true)
	seedProduct(t, repo, "Global", "global", catalog.ESIMTypeGlobal, true)

	esimType := catalog.ESIMTypeRegional
	products, total, err := repo.List(ctx, catalog.ProductFilter{ESIMType: &esimType, PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "asia", products[0].Slug())

	products, total, err = repo.List(ctx, catalog.ProductFilter{PublishedOnly: true, Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 2)
}
