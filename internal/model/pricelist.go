package model

// PriceList maps a (product type, sub-category) pair to a base price per
// square meter. CustomerID scopes the row to one customer when set.
type PriceList struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CustomerID    *uint   `gorm:"index" json:"customer_id"`
	ProductTypeID uint    `gorm:"not null;index" json:"product_type_id" validate:"required"`
	SubCategoryID *uint   `gorm:"index" json:"sub_category_id"`
	PricePerSqm   float64 `gorm:"not null" json:"price_per_sqm" validate:"gte=0"`
}
