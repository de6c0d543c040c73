package repository

import (
	"go-fabshop-api/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(o *model.Order) error
	FindByID(id uint) (*model.Order, error)
	// FindAllRows returns the listing view, newest first, with category names
	// joined in and the effective (billed) price resolved.
	FindAllRows() ([]model.OrderRow, error)
	FindDetailByBarcode(barcode string) (*model.OrderDetail, error)
	// UpdateStatus sets the status and, when workerID is non-nil, reassigns
	// the order. A nil workerID keeps the current assignment (COALESCE), it
	// never clears it.
	UpdateStatus(id uint, status string, workerID *uint) (*model.Order, error)
	// UpdateManualPrice sets the override; nil clears it so the computed
	// price_total becomes effective again.
	UpdateManualPrice(id uint, manualPrice *float64) (*model.Order, error)
	Delete(id uint) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(o *model.Order) error {
	return r.db.Create(o).Error
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	var o model.Order
	if err := r.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindAllRows() ([]model.OrderRow, error) {
	var rows []model.OrderRow
	err := r.db.Table("orders o").
		Select(`o.id, o.customer_id, o.customer_name, o.phone_number, o.address,
			COALESCE(pt.name, '') AS product_type_name,
			COALESCE(sc.name, '') AS sub_category_name,
			o.quantity, o.dimensions, o.color, o.custom_notes, o.barcode,
			o.price_total, o.manual_price,
			COALESCE(o.manual_price, o.price_total) AS effective_price,
			o.status, o.assigned_worker_id, o.created_at`).
		Joins("LEFT JOIN product_types pt ON o.product_type_id = pt.id").
		Joins("LEFT JOIN sub_categories sc ON o.sub_category_id = sc.id").
		Order("o.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) FindDetailByBarcode(barcode string) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	res := r.db.Table("orders o").
		Select(`o.id, o.customer_name,
			COALESCE(pt.name, '') AS product_type_name,
			COALESCE(sc.name, '') AS sub_category_name,
			o.quantity, o.dimensions, o.color, o.custom_notes, o.barcode,
			o.price_total, o.manual_price,
			COALESCE(o.manual_price, o.price_total) AS effective_price,
			o.status, w.username AS assigned_worker_name`).
		Joins("LEFT JOIN product_types pt ON o.product_type_id = pt.id").
		Joins("LEFT JOIN sub_categories sc ON o.sub_category_id = sc.id").
		Joins("LEFT JOIN workers w ON o.assigned_worker_id = w.id").
		Where("o.barcode = ?", barcode).
		Limit(1).
		Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

func (r *orderRepo) UpdateStatus(id uint, status string, workerID *uint) (*model.Order, error) {
	res := r.db.Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             status,
			"assigned_worker_id": gorm.Expr("COALESCE(?, assigned_worker_id)", workerID),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *orderRepo) UpdateManualPrice(id uint, manualPrice *float64) (*model.Order, error) {
	res := r.db.Model(&model.Order{}).
		Where("id = ?", id).
		Update("manual_price", manualPrice)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *orderRepo) Delete(id uint) error {
	return r.db.Delete(&model.Order{}, id).Error
}
