package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StatusList is an ordered status vocabulary, stored as a JSON array in a
// text column so it survives both postgres and sqlite unchanged.
type StatusList []string

func (l StatusList) Value() (driver.Value, error) {
	if l == nil {
		l = StatusList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StatusList) Scan(value interface{}) error {
	if value == nil {
		*l = StatusList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StatusList", value)
	}
}

// WorkStatus holds the advisory status vocabulary for a (product type,
// sub-category) pair. SubCategoryID nil means the list applies to the whole
// product type. The store never enforces the vocabulary: any status string is
// accepted on updates, the list only drives frontend pickers.
type WorkStatus struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ProductTypeID uint       `gorm:"not null;index;uniqueIndex:idx_work_statuses_scope" json:"product_type_id" validate:"required"`
	SubCategoryID *uint      `gorm:"uniqueIndex:idx_work_statuses_scope" json:"sub_category_id"`
	StatusList    StatusList `gorm:"type:text;not null" json:"status_list" validate:"required,min=1"`
}

// DefaultStatusList seeds each product type's vocabulary at bootstrap.
var DefaultStatusList = StatusList{"pending", "in_lavorazione", "pronto", "consegnato"}
