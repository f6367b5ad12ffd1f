package catalog

import (
	"fmt"
	"time"
)

// PlanVariantTypeName is the singleton variant type shared by all plan
// variants across the catalog.
const (
	PlanVariantTypeName  = "plan"
	PlanVariantTypeLabel = "Plan"
)

type PlanType string

const (
	PlanTypeUnlimited PlanType = "unlimited"
	PlanTypeLimited   PlanType = "limited"
)

// VariantType groups variant options under a named axis, e.g. "plan".
type VariantType struct {
	id    uint
	name  string
	label string
}

func NewVariantType(name, label string) (*VariantType, error) {
	if name == "" {
		return nil, fmt.Errorf("variant type name is required")
	}
	return &VariantType{name: name, label: label}, nil
}

func ReconstructVariantType(id uint, name, label string) (*VariantType, error) {
	if id == 0 {
		return nil, fmt.Errorf("variant type ID cannot be zero")
	}
	return &VariantType{id: id, name: name, label: label}, nil
}

func (t *VariantType) ID() uint      { return t.id }
func (t *VariantType) Name() string  { return t.name }
func (t *VariantType) Label() string { return t.label }

func (t *VariantType) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("variant type ID already set")
	}
	t.id = id
	return nil
}

// VariantOption is a distinct value on a variant type's axis. The normalized
// value is the dedup key: equal plan shapes anywhere in the catalog share one
// option record.
type VariantOption struct {
	id            uint
	variantTypeID uint
	label         string
	value         string
}

func NewVariantOption(variantTypeID uint, label, value string) (*VariantOption, error) {
	if variantTypeID == 0 {
		return nil, fmt.Errorf("variant option requires a variant type")
	}
	if value == "" {
		return nil, fmt.Errorf("variant option value is required")
	}
	return &VariantOption{variantTypeID: variantTypeID, label: label, value: value}, nil
}

func ReconstructVariantOption(id, variantTypeID uint, label, value string) (*VariantOption, error) {
	if id == 0 {
		return nil, fmt.Errorf("variant option ID cannot be zero")
	}
	return &VariantOption{id: id, variantTypeID: variantTypeID, label: label, value: value}, nil
}

func (o *VariantOption) ID() uint            { return o.id }
func (o *VariantOption) VariantTypeID() uint { return o.variantTypeID }
func (o *VariantOption) Label() string       { return o.label }
func (o *VariantOption) Value() string       { return o.value }

func (o *VariantOption) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("variant option ID already set")
	}
	o.id = id
	return nil
}

// Variant is a priced plan on one product, linked to exactly one option.
type Variant struct {
	id         uint
	productID  uint
	optionID   uint
	title      string
	priceInUSD float64
	inventory  int
	planType   PlanType
	status     ProductStatus
	createdAt  time.Time
}

func NewVariant(productID, optionID uint, title string, priceUSD float64, planType PlanType) (*Variant, error) {
	if productID == 0 {
		return nil, fmt.Errorf("variant requires a product")
	}
	if optionID == 0 {
		return nil, fmt.Errorf("variant requires an option")
	}
	if planType != PlanTypeUnlimited && planType != PlanTypeLimited {
		return nil, fmt.Errorf("invalid plan type: %s", planType)
	}

	return &Variant{
		productID:  productID,
		optionID:   optionID,
		title:      title,
		priceInUSD: priceUSD,
		inventory:  UnconstrainedInventory,
		planType:   planType,
		status:     ProductStatusPublished,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructVariant(id, productID, optionID uint, title string, priceUSD float64,
	inventory int, planType PlanType, status ProductStatus, createdAt time.Time) (*Variant, error) {

	if id == 0 {
		return nil, fmt.Errorf("variant ID cannot be zero")
	}
	return &Variant{
		id:         id,
		productID:  productID,
		optionID:   optionID,
		title:      title,
		priceInUSD: priceUSD,
		inventory:  inventory,
		planType:   planType,
		status:     status,
		createdAt:  createdAt,
	}, nil
}

func (v *Variant) ID() uint            { return v.id }
func (v *Variant) ProductID() uint     { return v.productID }
func (v *Variant) OptionID() uint      { return v.optionID }
func (v *Variant) Title() string       { return v.title }
func (v *Variant) PriceUSD() float64   { return v.priceInUSD }
func (v *Variant) Inventory() int      { return v.inventory }
func (v *Variant) PlanType() PlanType  { return v.planType }
func (v *Variant) Status() ProductStatus { return v.status }

func (v *Variant) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("variant ID already set")
	}
	v.id = id
	return nil
}
