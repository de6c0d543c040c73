package repository

import (
	"go-fabshop-api/internal/model"

	"gorm.io/gorm"
)

type ColorIncrementRepository interface {
	FindAll() ([]model.ColorIncrement, error)
	FindByColor(color string) (*model.ColorIncrement, error)
	Create(ci *model.ColorIncrement) error
}

type colorIncrementRepo struct {
	db *gorm.DB
}

func NewColorIncrementRepo(db *gorm.DB) ColorIncrementRepository {
	return &colorIncrementRepo{db}
}

func (r *colorIncrementRepo) FindAll() ([]model.ColorIncrement, error) {
	var colors []model.ColorIncrement
	err := r.db.Order("color").Find(&colors).Error
	return colors, err
}

func (r *colorIncrementRepo) FindByColor(color string) (*model.ColorIncrement, error) {
	var ci model.ColorIncrement
	if err := r.db.Where("color = ?", color).First(&ci).Error; err != nil {
		return nil, err
	}
	return &ci, nil
}

func (r *colorIncrementRepo) Create(ci *model.ColorIncrement) error {
	return r.db.Create(ci).Error
}
