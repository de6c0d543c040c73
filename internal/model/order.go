package model

import "time"

// DefaultOrderStatus is the status every order starts in.
const DefaultOrderStatus = "pending"

// Order is the central record. PriceTotal is computed once at creation from
// the price list and color increment in force at that moment and is never
// recomputed; later edits to either table leave historical orders untouched.
// ManualPrice, when set, overrides PriceTotal for display and billing without
// erasing the computed value.
type Order struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CustomerID    *uint      `gorm:"index" json:"customer_id"`
	CustomerName  string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	ProductTypeID uint       `gorm:"not null;index" json:"product_type_id"`
	SubCategoryID *uint      `gorm:"index" json:"sub_category_id"`
	Quantity      int        `gorm:"default:1" json:"quantity"`
	Dimensions    string     `gorm:"type:varchar(50);not null" json:"dimensions"`
	Color         string     `gorm:"type:varchar(100);not null" json:"color"`
	CustomNotes   string     `gorm:"type:text" json:"custom_notes"`
	PhoneNumber   string     `gorm:"type:varchar(30)" json:"phone_number"`
	Address       string     `gorm:"type:text" json:"address"`
	Barcode       string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"barcode"`
	PriceTotal    float64    `gorm:"not null" json:"price_total"`
	ManualPrice   *float64   `json:"manual_price"`
	Status        string     `gorm:"type:varchar(100);default:'pending'" json:"status"`

	AssignedWorkerID *uint     `gorm:"index" json:"assigned_worker_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// EffectivePrice is the amount actually billed: the manual override when one
// is set, the computed total otherwise.
func (o *Order) EffectivePrice() float64 {
	if o.ManualPrice != nil {
		return *o.ManualPrice
	}
	return o.PriceTotal
}

// OrderRow is the joined listing shape: category names resolved, effective
// price precomputed.
type OrderRow struct {
	ID               uint      `json:"id"`
	CustomerID       *uint     `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	PhoneNumber      string    `json:"phone_number"`
	Address          string    `json:"address"`
	ProductTypeName  string    `json:"product_type_name"`
	SubCategoryName  string    `json:"sub_category_name"`
	Quantity         int       `json:"quantity"`
	Dimensions       string    `json:"dimensions"`
	Color            string    `json:"color"`
	CustomNotes      string    `json:"custom_notes"`
	Barcode          string    `json:"barcode"`
	PriceTotal       float64   `json:"price_total"`
	ManualPrice      *float64  `json:"manual_price"`
	EffectivePrice   float64   `json:"effective_price"`
	Status           string    `json:"status"`
	AssignedWorkerID *uint     `json:"assigned_worker_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// OrderDetail is the barcode-scan lookup shape, with the assigned worker's
// name resolved for the label printout.
type OrderDetail struct {
	ID                 uint     `json:"id"`
	CustomerName       string   `json:"customer_name"`
	ProductTypeName    string   `json:"product_type_name"`
	SubCategoryName    string   `json:"sub_category_name"`
	Quantity           int      `json:"quantity"`
	Dimensions         string   `json:"dimensions"`
	Color              string   `json:"color"`
	CustomNotes        string   `json:"custom_notes"`
	Barcode            string   `json:"barcode"`
	PriceTotal         float64  `json:"price_total"`
	ManualPrice        *float64 `json:"manual_price"`
	EffectivePrice     float64  `json:"effective_price"`
	Status             string   `json:"status"`
	AssignedWorkerName *string  `json:"assigned_worker_name"`
}
