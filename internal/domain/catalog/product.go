package catalog

import (
	"fmt"
	"time"
)

type ProductStatus string

const (
	ProductStatusPublished ProductStatus = "published"
	ProductStatusDraft     ProductStatus = "draft"
)

// Inventory sentinel for digital goods that are effectively infinitely
// issuable.
const UnconstrainedInventory = 999

// Product is a sellable eSIM destination. Identity is carried by the slug
// derived from the source name and code; re-imports of a known slug only
// refresh the source-owned fields (countries, provider, esimType, coverage,
// icon) and never touch pricing, inventory, or variants.
type Product struct {
	id                uint
	title             string
	slug              string
	provider          string
	esimType          ESIMType
	coverage          string
	iconURL           string
	enableVariants    bool
	variantTypeIDs    []uint
	priceInUSDEnabled bool
	priceInUSD        float64
	inventory         int
	countryIDs        []uint
	status            ProductStatus
	createdAt         time.Time
	updatedAt         time.Time
}

func NewProduct(title, slugValue, provider string, esimType ESIMType) (*Product, error) {
	if title == "" {
		return nil, fmt.Errorf("product title is required")
	}
	if slugValue == "" {
		return nil, fmt.Errorf("product slug is required")
	}
	if !esimType.IsValid() {
		return nil, fmt.Errorf("invalid esim type: %s", esimType)
	}

	now := time.Now()
	return &Product{
		title:     title,
		slug:      slugValue,
		provider:  provider,
		esimType:  esimType,
		inventory: UnconstrainedInventory,
		status:    ProductStatusDraft,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProduct(id uint, title, slugValue, provider string, esimType ESIMType,
	coverage, iconURL string, enableVariants bool, variantTypeIDs []uint,
	priceInUSDEnabled bool, priceInUSD float64, inventory int, countryIDs []uint,
	status ProductStatus, createdAt, updatedAt time.Time) (*Product, error) {

	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if status != ProductStatusPublished && status != ProductStatusDraft {
		return nil, fmt.Errorf("invalid product status: %s", status)
	}

	return &Product{
		id:                id,
		title:             title,
		slug:              slugValue,
		provider:          provider,
		esimType:          esimType,
		coverage:          coverage,
		iconURL:           iconURL,
		enableVariants:    enableVariants,
		variantTypeIDs:    variantTypeIDs,
		priceInUSDEnabled: priceInUSDEnabled,
		priceInUSD:        priceInUSD,
		inventory:         inventory,
		countryIDs:        countryIDs,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Product) ID() uint                { return p.id }
func (p *Product) Title() string           { return p.title }
func (p *Product) Slug() string            { return p.slug }
func (p *Product) Provider() string        { return p.provider }
func (p *Product) ESIMType() ESIMType      { return p.esimType }
func (p *Product) Coverage() string        { return p.coverage }
func (p *Product) IconURL() string         { return p.iconURL }
func (p *Product) VariantsEnabled() bool   { return p.enableVariants }
func (p *Product) VariantTypeIDs() []uint  { return p.variantTypeIDs }
func (p *Product) BasePriceEnabled() bool  { return p.priceInUSDEnabled }
func (p *Product) BasePriceUSD() float64   { return p.priceInUSD }
func (p *Product) Inventory() int          { return p.inventory }
func (p *Product) CountryIDs() []uint      { return p.countryIDs }
func (p *Product) Status() ProductStatus   { return p.status }
func (p *Product) IsPublished() bool       { return p.status == ProductStatusPublished }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID already set")
	}
	p.id = id
	return nil
}

func (p *Product) SetCoverage(coverage string) {
	p.coverage = coverage
	p.updatedAt = time.Now()
}

func (p *Product) SetIconURL(iconURL string) {
	p.iconURL = iconURL
	p.updatedAt = time.Now()
}

func (p *Product) SetCountryIDs(countryIDs []uint) {
	p.countryIDs = countryIDs
	p.updatedAt = time.Now()
}

// EnableVariantPricing switches the product onto variant-level pricing.
// Inventory moves to the variant level, so the product count drops to zero.
func (p *Product) EnableVariantPricing(variantTypeIDs []uint) {
	p.enableVariants = true
	p.variantTypeIDs = variantTypeIDs
	p.priceInUSDEnabled = false
	p.priceInUSD = 0
	p.inventory = 0
	p.updatedAt = time.Now()
}

// EnableBasePricing puts the price on the product itself when no plan
// variants exist.
func (p *Product) EnableBasePricing(priceUSD float64) {
	p.enableVariants = false
	p.variantTypeIDs = nil
	p.priceInUSDEnabled = true
	p.priceInUSD = priceUSD
	p.inventory = UnconstrainedInventory
	p.updatedAt = time.Now()
}

func (p *Product) Publish() {
	p.status = ProductStatusPublished
	p.updatedAt = time.Now()
}

// SourceUpdate carries the narrow field set a re-import is allowed to
// refresh on an existing product.
type SourceUpdate struct {
	CountryIDs []uint
	Provider   string
	ESIMType   ESIMType
	Coverage   string
	IconURL    string
}

// ApplySourceUpdate refreshes only the source-owned fields. Pricing,
// inventory, variant wiring, and publication status are untouched.
func (p *Product) ApplySourceUpdate(update SourceUpdate) {
	p.countryIDs = update.CountryIDs
	p.provider = update.Provider
	p.esimType = update.ESIMType
	p.coverage = update.Coverage
	p.iconURL = update.IconURL
	p.updatedAt = time.Now()
}
