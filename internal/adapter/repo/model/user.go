package model

// User is a single record with an admin capability flag; there is no
// separate admin type.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"is_admin"`

	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}

type Address struct {
	BaseModel
	UserID     string  `gorm:"index;size:36" json:"user_id"`
	Province   string  `gorm:"not null;size:100" json:"province"`
	City       string  `gorm:"not null;size:100" json:"city"`
	Street     string  `gorm:"not null;size:255" json:"street"`
	Number     int     `gorm:"not null" json:"number"`
	Extra      *string `json:"extra,omitempty"`
	PostalCode string  `gorm:"not null;size:20" json:"postal_code"`
}
