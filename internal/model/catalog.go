package model

// ProductType is a top-level product category (e.g. "Zanzariera").
type ProductType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
}

// SubCategory refines a product type. Names are unique per product type,
// not globally.
type SubCategory struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ProductTypeID uint   `gorm:"not null;index;uniqueIndex:idx_sub_categories_type_name" json:"product_type_id" validate:"required"`
	Name          string `gorm:"type:varchar(100);not null;uniqueIndex:idx_sub_categories_type_name" json:"name" validate:"required"`
}

// ColorIncrement is a percentage surcharge applied on top of the base price
// when an order is placed in the given color.
type ColorIncrement struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Color            string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"color" validate:"required"`
	PercentIncrement float64 `gorm:"not null" json:"percent_increment"`
}
