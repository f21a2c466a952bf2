package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Brand struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description string `gorm:"not null;type:text" json:"description"`

	Products []Product `gorm:"foreignKey:BrandID" json:"-"`
}

type Tag struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null;size:100" json:"name"`

	Products []Product `gorm:"many2many:product_tags" json:"-"`
}

type Promotion struct {
	BaseModel
	Name               string          `gorm:"not null;size:100" json:"name"`
	Description        *string         `gorm:"type:text" json:"description,omitempty"`
	DiscountPercentage decimal.Decimal `gorm:"not null;type:decimal(5,2)" json:"discount_percentage"`
	MinProducts        int             `gorm:"not null;default:1" json:"min_products"`
	StartDate          time.Time       `gorm:"not null" json:"start_date"`
	EndDate            time.Time       `gorm:"not null" json:"end_date"`

	Products []Product `gorm:"many2many:product_promotions" json:"-"`
}

type Image struct {
	BaseModel
	URL       string  `gorm:"not null;size:512" json:"url"`
	AltText   *string `gorm:"size:255" json:"alt_text,omitempty"`
	ProductID string  `gorm:"index;not null;size:36" json:"product_id"`
}
