package models

import "time"

// CountryModel is the persistence model for destination countries.
type CountryModel struct {
	ID        uint   `gorm:"primarykey"`
	Code      string `gorm:"uniqueIndex;not null;size:10"`
	Name      string `gorm:"not null;size:100"`
	FlagURL   string `gorm:"size:500"`
	Slug      string `gorm:"index;not null;size:120"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CountryModel) TableName() string {
	return "countries"
}
