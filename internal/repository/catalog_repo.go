package repository

import (
	"go-fabshop-api/internal/model"

	"gorm.io/gorm"
)

type ProductTypeRepository interface {
	FindAll() ([]model.ProductType, error)
	FindByName(name string) (*model.ProductType, error)
	Create(pt *model.ProductType) error
}

type productTypeRepo struct {
	db *gorm.DB
}

func NewProductTypeRepo(db *gorm.DB) ProductTypeRepository {
	return &productTypeRepo{db}
}

func (r *productTypeRepo) FindAll() ([]model.ProductType, error) {
	var types []model.ProductType
	err := r.db.Order("name").Find(&types).Error
	return types, err
}

func (r *productTypeRepo) FindByName(name string) (*model.ProductType, error) {
	var pt model.ProductType
	if err := r.db.Where("name = ?", name).First(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeRepo) Create(pt *model.ProductType) error {
	return r.db.Create(pt).Error
}

type SubCategoryRepository interface {
	FindByProductType(productTypeID uint) ([]model.SubCategory, error)
	FindByTypeAndName(productTypeID uint, name string) (*model.SubCategory, error)
	Create(sc *model.SubCategory) error
}

type subCategoryRepo struct {
	db *gorm.DB
}

func NewSubCategoryRepo(db *gorm.DB) SubCategoryRepository {
	return &subCategoryRepo{db}
}

func (r *subCategoryRepo) FindByProductType(productTypeID uint) ([]model.SubCategory, error) {
	var subs []model.SubCategory
	err := r.db.Where("product_type_id = ?", productTypeID).Order("name").Find(&subs).Error
	return subs, err
}

func (r *subCategoryRepo) FindByTypeAndName(productTypeID uint, name string) (*model.SubCategory, error) {
	var sc model.SubCategory
	if err := r.db.Where("product_type_id = ? AND name = ?", productTypeID, name).First(&sc).Error; err != nil {
		return nil, err
	}
	return &sc, nil
}

func (r *subCategoryRepo) Create(sc *model.SubCategory) error {
	return r.db.Create(sc).Error
}
