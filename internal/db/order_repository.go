package db

import (
	"time"

	"github.com/terraincognita07/mesflow/internal/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	database *gorm.DB
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{database: database}
}

func (repo *OrderRepository) List() ([]models.ManufacturingOrder, error) {
	orders := make([]models.ManufacturingOrder, 0)
	if err := repo.database.Order("placed_date DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (repo *OrderRepository) FindByID(orderID uint) (models.ManufacturingOrder, error) {
	var order models.ManufacturingOrder
	if err := repo.database.First(&order, orderID).Error; err != nil {
		return models.ManufacturingOrder{}, err
	}
	return order, nil
}

func (repo *OrderRepository) Create(order *models.ManufacturingOrder) error {
	return repo.database.Create(order).Error
}

func (repo *OrderRepository) Save(order *models.ManufacturingOrder) error {
	return repo.database.Save(order).Error
}

// Delete removes the order together with its work orders.
func (repo *OrderRepository) Delete(orderID uint) (bool, error) {
	deleted := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.WorkOrder{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ManufacturingOrder{}, orderID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// ListPlacedDates returns the placed dates of orders placed in [from, to).
func (repo *OrderRepository) ListPlacedDates(from time.Time, to time.Time) ([]time.Time, error) {
	orders := make([]models.ManufacturingOrder, 0)
	if err := repo.database.
		Select("placed_date").
		Where("placed_date >= ? AND placed_date < ?", from, to).
		Order("placed_date ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(orders))
	for _, order := range orders {
		dates = append(dates, order.PlacedDate)
	}
	return dates, nil
}
