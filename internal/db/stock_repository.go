package db

import (
	"github.com/terraincognita07/mesflow/internal/models"
	"gorm.io/gorm"
)

type StockRepository struct {
	database *gorm.DB
}

func NewStockRepository(database *gorm.DB) *StockRepository {
	return &StockRepository{database: database}
}

func (repo *StockRepository) List() ([]models.StockItem, error) {
	items := make([]models.StockItem, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDs returns the existing items among ids; unknown ids are skipped.
func (repo *StockRepository) FindByIDs(ids []uint) ([]models.StockItem, error) {
	items := make([]models.StockItem, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	if err := repo.database.Where("id IN ?", ids).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *StockRepository) Create(item *models.StockItem) error {
	return repo.database.Create(item).Error
}

func (repo *StockRepository) Delete(itemID uint) (bool, error) {
	deleted := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM bom_stock WHERE stock_item_id = ?`, itemID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.StockItem{}, itemID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
