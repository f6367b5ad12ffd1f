package storefront

import (
	"simvia/internal/domain/catalog"
)

type CountryDTO struct {
	ID      uint   `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	FlagURL string `json:"flagUrl"`
	Slug    string `json:"slug"`
}

type CountryDetailDTO struct {
	CountryDTO
	Products []ProductSummaryDTO `json:"products"`
}

type ProductSummaryDTO struct {
	ID                uint    `json:"id"`
	Title             string  `json:"title"`
	Slug              string  `json:"slug"`
	Provider          string  `json:"provider"`
	ESIMType          string  `json:"esimType"`
	IconURL           string  `json:"iconUrl"`
	EnableVariants    bool    `json:"enableVariants"`
	PriceInUSDEnabled bool    `json:"priceInUsdEnabled"`
	PriceInUSD        float64 `json:"priceInUsd"`
	Inventory         int     `json:"inventory"`
}

type ProductListDTO struct {
	Products []ProductSummaryDTO `json:"products"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

type OptionDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type VariantDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	PriceInUSD float64   `json:"priceInUsd"`
	Inventory  int       `json:"inventory"`
	PlanType   string    `json:"planType"`
	Option     OptionDTO `json:"option"`
}

type ProductDetailDTO struct {
	ProductSummaryDTO
	Coverage     string       `json:"coverage"`
	CoverageHTML string       `json:"coverageHtml"`
	Countries    []CountryDTO `json:"countries"`
	Variants     []VariantDTO `json:"variants"`
}

func toCountryDTO(c *catalog.Country) CountryDTO {
	return CountryDTO{
		ID:      c.ID(),
		Code:    c.Code(),
		Name:    c.Name(),
		FlagURL: c.FlagURL(),
		Slug:    c.Slug(),
	}
}

func toProductSummaryDTO(p *catalog.Product) ProductSummaryDTO {
	return ProductSummaryDTO{
		ID:                p.ID(),
		Title:             p.Title(),
		Slug:              p.Slug(),
		Provider:          p.Provider(),
		ESIMType:          p.ESIMType().String(),
		IconURL:           p.IconURL(),
		EnableVariants:    p.VariantsEnabled(),
		PriceInUSDEnabled: p.BasePriceEnabled(),
		PriceInUSD:        p.BasePriceUSD(),
		Inventory:         p.Inventory(),
	}
}
