package repository

import (
	"go-fabshop-api/internal/model"

	"gorm.io/gorm"
)

type WorkerRepository interface {
	FindAll() ([]model.Worker, error)
	FindByID(id uint) (*model.Worker, error)
	FindByUsername(username string) (*model.Worker, error)
	Create(w *model.Worker) error
	Delete(id uint) error
	UpdateTokenVersion(id uint, version string) error
}

type workerRepo struct {
	db *gorm.DB
}

func NewWorkerRepo(db *gorm.DB) WorkerRepository {
	return &workerRepo{db}
}

func (r *workerRepo) FindAll() ([]model.Worker, error) {
	var workers []model.Worker
	err := r.db.Order("username").Find(&workers).Error
	return workers, err
}

func (r *workerRepo) FindByID(id uint) (*model.Worker, error) {
	var w model.Worker
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workerRepo) FindByUsername(username string) (*model.Worker, error) {
	var w model.Worker
	if err := r.db.Where("username = ?", username).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workerRepo) Create(w *model.Worker) error {
	return r.db.Create(w).Error
}

func (r *workerRepo) Delete(id uint) error {
	return r.db.Delete(&model.Worker{}, id).Error
}

func (r *workerRepo) UpdateTokenVersion(id uint, version string) error {
	return r.db.Model(&model.Worker{}).Where("id = ?", id).Update("token_version", version).Error
}
