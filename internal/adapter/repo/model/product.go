package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name        string           `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Summary     string           `gorm:"not null;size:512" json:"summary"`
	Description string           `gorm:"not null;type:text" json:"description"`
	Price       decimal.Decimal  `gorm:"not null;type:decimal(10,2)" json:"price"`
	OldPrice    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"old_price,omitempty"`
	Stock       int              `gorm:"not null;default:0" json:"stock"`
	CategoryID  string           `gorm:"index;not null;size:36" json:"category_id"`
	BrandID     string           `gorm:"index;not null;size:36" json:"brand_id"`

	Category   *Category   `gorm:"foreignKey:CategoryID" json:"-"`
	Brand      *Brand      `gorm:"foreignKey:BrandID" json:"-"`
	Tags       []Tag       `gorm:"many2many:product_tags" json:"tags,omitempty"`
	Promotions []Promotion `gorm:"many2many:product_promotions" json:"promotions,omitempty"`
	Images     []Image     `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}
