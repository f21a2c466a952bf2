package model

import (
	"github.com/shopspring/decimal"

	domain "github.com/augustolallana/api-omega/internal/entity"
)

type Order struct {
	BaseModel
	UserID          string          `gorm:"index;not null;size:36" json:"user_id"`
	AddressID       string          `gorm:"not null;size:36" json:"address_id"`
	PaymentMethodID string          `gorm:"not null;size:36" json:"payment_method_id"`
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"total_amount"`
	Status          domain.Status   `gorm:"not null;size:20" json:"status"`

	Items         []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Address       *Address       `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
}

// OrderItem captures the unit price at order time; later product price
// changes never touch it.
type OrderItem struct {
	BaseModel
	OrderID   string          `gorm:"index;not null;size:36" json:"order_id"`
	ProductID string          `gorm:"index;not null;size:36" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"`
}

type PaymentMethod struct {
	BaseModel
	Type    domain.PaymentMethodType `gorm:"not null;size:20" json:"type"`
	Details *string                  `gorm:"type:text" json:"details,omitempty"`
}
