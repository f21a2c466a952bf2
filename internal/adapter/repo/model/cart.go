package model

// Cart is the per-user aggregate; one active cart per user.
type Cart struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null;size:36" json:"user_id"`

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// CartItem holds at most one row per (cart, product); the reconciliation
// engine merges quantities instead of inserting duplicates.
type CartItem struct {
	BaseModel
	CartID    string `gorm:"uniqueIndex:idx_cart_product;not null;size:36" json:"cart_id"`
	ProductID string `gorm:"uniqueIndex:idx_cart_product;not null;size:36" json:"product_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
