package model

// Customer is an optional link target for orders and price lists. Names are
// unique case-insensitively; the repository enforces that with a lowercase
// lookup before insert and the unique index backstops it.
type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Phone   string `gorm:"type:varchar(30)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
}
