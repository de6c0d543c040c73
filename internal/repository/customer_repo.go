package repository

import (
	"go-fabshop-api/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	FindAll() ([]model.Customer, error)
	FindByID(id uint) (*model.Customer, error)
	// FindByNameFold matches the name case-insensitively; customer names are
	// unique regardless of casing.
	FindByNameFold(name string) (*model.Customer, error)
	SearchByPrefix(prefix string, limit int) ([]model.Customer, error)
	Create(c *model.Customer) error
	Update(c *model.Customer) error
	Delete(id uint) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("name").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uint) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) FindByNameFold(name string) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) SearchByPrefix(prefix string, limit int) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", prefix+"%").
		Order("name").
		Limit(limit).
		Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Create(c *model.Customer) error {
	return r.db.Create(c).Error
}

func (r *customerRepo) Update(c *model.Customer) error {
	return r.db.Save(c).Error
}

func (r *customerRepo) Delete(id uint) error {
	return r.db.Delete(&model.Customer{}, id).Error
}
