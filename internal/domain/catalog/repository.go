package catalog

import "context"

type CountryRepository interface {
	Create(ctx context.Context, country *Country) error
	GetByCode(ctx context.Context, code string) (*Country, error)
	GetBySlug(ctx context.Context, slug string) (*Country, error)
	List(ctx context.Context) ([]*Country, error)
}

// ProductFilter narrows product listings. Zero values mean "no constraint".
type ProductFilter struct {
	ESIMType      *ESIMType
	CountryID     *uint
	PublishedOnly bool
	Page          int
	PageSize      int
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	// UpdateSourceFields persists only the narrow source-owned field set.
	UpdateSourceFields(ctx context.Context, product *Product) error
	List(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)
}

type VariantRepository interface {
	GetTypeByName(ctx context.Context, name string) (*VariantType, error)
	CreateType(ctx context.Context, variantType *VariantType) error

	GetOptionByValue(ctx context.Context, variantTypeID uint, value string) (*VariantOption, error)
	CreateOption(ctx context.Context, option *VariantOption) error
	GetOptionsByIDs(ctx context.Context, ids []uint) ([]*VariantOption, error)

	CreateVariant(ctx context.Context, variant *Variant) error
	ListByProduct(ctx context.Context, productID uint) ([]*Variant, error)
}
