package importer

import (
	"strings"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/destinations"
)

// ClassifyPlan decides whether a source plan is unlimited. The source marks
// unlimited plans inconsistently, so any one of these signals is enough:
// the is_unlimited flag, a missing data_amount, or the word "unlimited" in
// the plan name or data label.
func ClassifyPlan(plan destinations.Plan) catalog.PlanType {
	if plan.IsUnlimited == 1 ||
		plan.DataAmount == nil ||
		strings.Contains(strings.ToLower(plan.Name), "unlimited") ||
		strings.Contains(strings.ToLower(plan.Data), "unlimited") {
		return catalog.PlanTypeUnlimited
	}
	return catalog.PlanTypeLimited
}
