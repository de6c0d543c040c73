package repository

import (
	"errors"

	"go-fabshop-api/internal/model"

	"gorm.io/gorm"
)

type WorkStatusRepository interface {
	FindAll() ([]model.WorkStatus, error)
	Find(productTypeID *uint, subCategoryID *uint) ([]model.WorkStatus, error)
	// Save creates the vocabulary for its (product type, sub-category) scope,
	// or replaces the list when one already exists for that scope.
	Save(ws *model.WorkStatus) error
}

type workStatusRepo struct {
	db *gorm.DB
}

func NewWorkStatusRepo(db *gorm.DB) WorkStatusRepository {
	return &workStatusRepo{db}
}

func (r *workStatusRepo) FindAll() ([]model.WorkStatus, error) {
	var statuses []model.WorkStatus
	err := r.db.Order("product_type_id, sub_category_id").Find(&statuses).Error
	return statuses, err
}

func (r *workStatusRepo) Find(productTypeID *uint, subCategoryID *uint) ([]model.WorkStatus, error) {
	var statuses []model.WorkStatus
	q := r.db.Order("product_type_id, sub_category_id")
	if productTypeID != nil {
		q = q.Where("product_type_id = ?", *productTypeID)
	}
	if subCategoryID != nil {
		q = q.Where("sub_category_id = ?", *subCategoryID)
	}
	err := q.Find(&statuses).Error
	return statuses, err
}

func (r *workStatusRepo) Save(ws *model.WorkStatus) error {
	var existing model.WorkStatus
	q := r.db.Where("product_type_id = ?", ws.ProductTypeID)
	if ws.SubCategoryID != nil {
		q = q.Where("sub_category_id = ?", *ws.SubCategoryID)
	} else {
		q = q.Where("sub_category_id IS NULL")
	}
	err := q.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(ws).Error
	}
	if err != nil {
		return err
	}
	existing.StatusList = ws.StatusList
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*ws = existing
	return nil
}
