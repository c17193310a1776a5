package db

import (
	"github.com/terraincognita07/mesflow/internal/models"
	"gorm.io/gorm"
)

type WorkCenterRepository struct {
	database *gorm.DB
}

func NewWorkCenterRepository(database *gorm.DB) *WorkCenterRepository {
	return &WorkCenterRepository{database: database}
}

func (repo *WorkCenterRepository) List() ([]models.WorkCenter, error) {
	centers := make([]models.WorkCenter, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

func (repo *WorkCenterRepository) Create(center *models.WorkCenter) error {
	return repo.database.Create(center).Error
}

func (repo *WorkCenterRepository) Delete(centerID uint) (bool, error) {
	result := repo.database.Delete(&models.WorkCenter{}, centerID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
