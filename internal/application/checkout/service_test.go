package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"simvia/internal/domain/catalog"
	"simvia/internal/domain/order"
	"simvia/internal/infrastructure/migration"
	"simvia/internal/infrastructure/repository"
	"simvia/internal/shared/logger"
)

type recordingMailer struct {
	sent []string
	fail bool
}

func (m *recordingMailer) SendOrderConfirmation(ord *order.Order) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, ord.Number())
	return nil
}

type checkoutEnv struct {
	service  *Service
	orders   order.Repository
	products catalog.ProductRepository
	variants catalog.VariantRepository
	mailer   *recordingMailer
}

func setupCheckout(t *testing.T) *checkoutEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLogger()
	env := &checkoutEnv{
		orders:   repository.NewOrderRepository(db, log),
		products: repository.NewProductRepository(db, log),
		variants: repository.NewVariantRepository(db, log),
		mailer:   &recordingMailer{},
	}
	env.service = NewService(env.products, env.variants, env.orders, env.mailer, log)
	return env
}

func seedVariantProduct(t *testing.T, env *checkoutEnv) (*catalog.Product, *catalog.Variant) {
	ctx := context.Background()

	planType, err := catalog.NewVariantType("plan", "Plan")
	require.NoError(t, err)
	require.NoError(t, env.variants.CreateType(ctx, planType))

	option, err := catalog.NewVariantOption(planType.ID(), "3 GB - 7 days", "3-gb-7d")
	require.NoError(t, err)
	require.NoError(t, env.variants.CreateOption(ctx, option))

	product, err := catalog.NewProduct("Japan", "japan-jp", "telna", catalog.ESIMTypeLocal)
	require.NoError(t, err)
	product.EnableVariantPricing([]uint{planType.ID()})
	product.Publish()
	require.NoError(t, env.products.Create(ctx, product))

	variant, err := catalog.NewVariant(product.ID(), option.ID(), "Japan — 3 GB - 7 days", 12, catalog.PlanTypeLimited)
	require.NoError(t, err)
	require.NoError(t, env.variants.CreateVariant(ctx, variant))

	return product, variant
}

func TestCheckout_CreateOrder(t *testing.T) {
	env := setupCheckout(t)
	ctx := context.Background()
	product, variant := seedVariantProduct(t, env)

	variantID := variant.ID()
	dto, err := env.service.CreateOrder(ctx, CreateOrderCommand{
		CustomerEmail: "alice@example.com",
		Items: []ItemInput{
			{ProductID: product.ID(), VariantID: &variantID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dto.Number, "ord_"))
	assert.Equal(t, 24.0, dto.Amount)
	assert.Equal(t, "USD", dto.Currency)
	assert.Equal(t, string(order.StatusProcessing), dto.Status)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, 12.0, dto.Items[0].UnitPrice)
	require.Len(t, dto.Items[0].Activations, 2)
	assert.True(t, strings.HasPrefix(dto.Items[0].Activations[0].ICCID, "89"))

	assert.Equal(t, []string{dto.Number}, env.mailer.sent)

	stored, err := env.orders.GetByNumber(ctx, dto.Number)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.CreatedFromCheckout())
	require.Len(t, stored.Items(), 1)
	assert.Len(t, stored.Items()[0].Activations, 2)
}

func TestCheckout_PricesComeFromStore(t *testing.T) {
	env := setupCheckout(t)
	ctx := context.Background()

	product, err := catalog.NewProduct("Spain", "spain-es", "telna", catalog.ESIMTypeLocal)
	require.NoError(t, err)
	product.EnableBasePricing(15)
	product.Publish()
	require.NoError(t, env.products.Create(ctx, product))

	dto, err := env.service.CreateOrder(ctx, CreateOrderCommand{
		CustomerEmail: "bob@example.com",
		Items:         []ItemInput{{ProductID: product.ID(), Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 15.0, dto.Amount)
}

func TestCheckout_VariantRequiredWhenBasePriceDisabled(t *testing.T) {
	env := setupCheckout(t)
	product, _ := seedVariantProduct(t, env)

	_, err := env.service.CreateOrder(context.Background(), CreateOrderCommand{
		CustomerEmail: "alice@example.com",
		Items:         []ItemInput{{ProductID: product.ID(), Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestCheckout_MailFailureDoesNotFailOrder(t *testing.T) {
	env := setupCheckout(t)
	env.mailer.fail = true
	product, variant := seedVariantProduct(t, env)

	variantID := variant.ID()
	dto, err := env.service.CreateOrder(context.Background(), CreateOrderCommand{
		CustomerEmail: "alice@example.com",
		Items: []ItemInput{
			{ProductID: product.ID(), VariantID: &variantID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, dto.Number)
}

func TestCheckout_Validation(t *testing.T) {
	env := setupCheckout(t)
	ctx := context.Background()

	_, err := env.service.CreateOrder(ctx, CreateOrderCommand{Items: []ItemInput{{ProductID: 1, Quantity: 1}}})
	assert.Error(t, err)

	_, err = env.service.CreateOrder(ctx, CreateOrderCommand{CustomerEmail: "a@b.com"})
	assert.Error(t, err)

	_, err = env.service.CreateOrder(ctx, CreateOrderCommand{
		CustomerEmail: "a@b.com",
		Items:         []ItemInput{{ProductID: 12345, Quantity: 1}},
	})
	assert.Error(t, err)
}
