package db

import (
	"github.com/terraincognita07/mesflow/internal/models"
	"gorm.io/gorm"
)

type WorkOrderRepository struct {
	database *gorm.DB
}

func NewWorkOrderRepository(database *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{database: database}
}

func (repo *WorkOrderRepository) List() ([]models.WorkOrder, error) {
	workOrders := make([]models.WorkOrder, 0)
	if err := repo.database.
		Preload("Order").
		Preload("Assignee").
		Order("id DESC").
		Find(&workOrders).Error; err != nil {
		return nil, err
	}
	return workOrders, nil
}

func (repo *WorkOrderRepository) FindByID(workOrderID uint) (models.WorkOrder, error) {
	var workOrder models.WorkOrder
	if err := repo.database.First(&workOrder, workOrderID).Error; err != nil {
		return models.WorkOrder{}, err
	}
	return workOrder, nil
}

func (repo *WorkOrderRepository) Create(workOrder *models.WorkOrder) error {
	return repo.database.Omit("Order", "Assignee").Create(workOrder).Error
}

func (repo *WorkOrderRepository) UpdateByID(workOrderID uint, updates map[string]any) error {
	return repo.database.Model(&models.WorkOrder{}).Where("id = ?", workOrderID).Updates(updates).Error
}

func (repo *WorkOrderRepository) Delete(workOrderID uint) (bool, error) {
	result := repo.database.Delete(&models.WorkOrder{}, workOrderID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
