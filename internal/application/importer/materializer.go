package importer

import (
	"context"
	"fmt"
	"strings"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/destinations"
	"simvia/internal/shared/logger"
)

// variantMaterializer turns a destination's plan list into variant options
// and variants under the shared "plan" variant type.
type variantMaterializer struct {
	variants catalog.VariantRepository
	logger   logger.Interface
}

func newVariantMaterializer(variants catalog.VariantRepository, log logger.Interface) *variantMaterializer {
	return &variantMaterializer{
		variants: variants,
		logger:   log,
	}
}

// OptionLabel renders the customer-facing plan label, e.g. "3 GB - 7 days".
func OptionLabel(plan destinations.Plan) string {
	return fmt.Sprintf("%s - %d days", plan.Data, plan.Duration)
}

// OptionValue renders the dedup key for a plan option, e.g. "3-gb-7d".
func OptionValue(plan destinations.Plan) string {
	data := strings.Join(strings.Fields(strings.ToLower(plan.Data)), "-")
	return fmt.Sprintf("%s-%dd", data, plan.Duration)
}

// Materialize creates one variant per plan. Options are shared catalog-wide
// by (variant type, value), so an existing option is reused rather than
// duplicated.
func (m *variantMaterializer) Materialize(
	ctx context.Context,
	productID uint,
	destinationName string,
	planTypeID uint,
	plans []destinations.Plan,
) error {
	for _, plan := range plans {
		label := OptionLabel(plan)
		value := OptionValue(plan)

		option, err := m.ensureOption(ctx, planTypeID, label, value)
		if err != nil {
			return err
		}

		title := fmt.Sprintf("%s — %s", destinationName, label)
		variant, err := catalog.NewVariant(productID, option.ID(), title, plan.PublicPrice, ClassifyPlan(plan))
		if err != nil {
			return fmt.Errorf("invalid variant for plan %s: %w", value, err)
		}
		if err := m.variants.CreateVariant(ctx, variant); err != nil {
			return fmt.Errorf("failed to create variant %s: %w", value, err)
		}

		m.logger.Infow("created variant",
			"product_id", productID,
			"option", value,
			"price_usd", plan.PublicPrice,
			"plan_type", variant.PlanType())
	}
	return nil
}

func (m *variantMaterializer) ensureOption(ctx context.Context, planTypeID uint, label, value string) (*catalog.VariantOption, error) {
	existing, err := m.variants.GetOptionByValue(ctx, planTypeID, value)
	if err != nil {
		return nil, fmt.Errorf("failed to look up variant option %s: %w", value, err)
	}
	if existing != nil {
		return existing, nil
	}

	option, err := catalog.NewVariantOption(planTypeID, label, value)
	if err != nil {
		return nil, fmt.Errorf("invalid variant option %s: %w", value, err)
	}
	if err := m.variants.CreateOption(ctx, option); err != nil {
		return nil, fmt.Errorf("failed to create variant option %s: %w", value, err)
	}
	return option, nil
}
