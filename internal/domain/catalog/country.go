package catalog

import (
	"fmt"
	"time"

	"simvia/internal/shared/slug"
)

// Country is a destination country referenced by eSIM products. Its code is
// the identity key: the importer creates each country once per distinct code
// and never rewrites an existing record.
type Country struct {
	id        uint
	code      string
	name      string
	flagURL   string
	slug      string
	createdAt time.Time
	updatedAt time.Time
}

func NewCountry(name, code, flagURL string) (*Country, error) {
	if name == "" {
		return nil, fmt.Errorf("country name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("country code is required")
	}

	now := time.Now()
	return &Country{
		code:      code,
		name:      name,
		flagURL:   flagURL,
		slug:      slug.Make(name),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCountry(id uint, code, name, flagURL, slugValue string, createdAt, updatedAt time.Time) (*Country, error) {
	if id == 0 {
		return nil, fmt.Errorf("country ID cannot be zero")
	}
	return &Country{
		id:        id,
		code:      code,
		name:      name,
		flagURL:   flagURL,
		slug:      slugValue,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Country) ID() uint        { return c.id }
func (c *Country) Code() string    { return c.code }
func (c *Country) Name() string    { return c.name }
func (c *Country) FlagURL() string { return c.flagURL }
func (c *Country) Slug() string    { return c.slug }

func (c *Country) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("country ID already set")
	}
	c.id = id
	return nil
}
