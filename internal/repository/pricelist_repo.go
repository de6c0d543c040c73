package repository

import (
	"go-fabshop-api/internal/model"

	"gorm.io/gorm"
)

type PriceListRepository interface {
	FindAll(customerID *uint) ([]model.PriceList, error)
	// FindBasePrice resolves the price-per-sqm row for a (product type,
	// sub-category) pair. gorm.ErrRecordNotFound means "no price configured";
	// order creation treats that as zero, it is not a failure.
	FindBasePrice(productTypeID uint, subCategoryID *uint) (*model.PriceList, error)
	Create(pl *model.PriceList) error
	UpdatePrice(id uint, pricePerSqm float64) (*model.PriceList, error)
	Delete(id uint) error
}

type priceListRepo struct {
	db *gorm.DB
}

func NewPriceListRepo(db *gorm.DB) PriceListRepository {
	return &priceListRepo{db}
}

func (r *priceListRepo) FindAll(customerID *uint) ([]model.PriceList, error) {
	var lists []model.PriceList
	q := r.db.Order("customer_id, product_type_id, sub_category_id")
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}
	err := q.Find(&lists).Error
	return lists, err
}

func (r *priceListRepo) FindBasePrice(productTypeID uint, subCategoryID *uint) (*model.PriceList, error) {
	var pl model.PriceList
	q := r.db.Where("product_type_id = ?", productTypeID)
	if subCategoryID != nil {
		q = q.Where("sub_category_id = ?", *subCategoryID)
	} else {
		q = q.Where("sub_category_id IS NULL")
	}
	if err := q.First(&pl).Error; err != nil {
		return nil, err
	}
	return &pl, nil
}

func (r *priceListRepo) Create(pl *model.PriceList) error {
	return r.db.Create(pl).Error
}

func (r *priceListRepo) UpdatePrice(id uint, pricePerSqm float64) (*model.PriceList, error) {
	var pl model.PriceList
	if err := r.db.First(&pl, id).Error; err != nil {
		return nil, err
	}
	pl.PricePerSqm = pricePerSqm
	if err := r.db.Save(&pl).Error; err != nil {
		return nil, err
	}
	return &pl, nil
}

func (r *priceListRepo) Delete(id uint) error {
	return r.db.Delete(&model.PriceList{}, id).Error
}
