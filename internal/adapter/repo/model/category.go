package model

// Category rows form a tree through ParentID. The parent chain is kept
// acyclic by the hierarchy usecase; the schema itself cannot express that.
type Category struct {
	BaseModel
	Name        string  `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description string  `gorm:"not null;type:text" json:"description"`
	ParentID    *string `gorm:"index;size:36" json:"parent_id,omitempty"`

	Parent   *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Products []Product  `gorm:"foreignKey:CategoryID" json:"-"`
}
