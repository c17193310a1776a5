package db

import (
	"github.com/terraincognita07/mesflow/internal/models"
	"gorm.io/gorm"
)

type BOMRepository struct {
	database *gorm.DB
}

func NewBOMRepository(database *gorm.DB) *BOMRepository {
	return &BOMRepository{database: database}
}

func (repo *BOMRepository) List() ([]models.BillOfMaterial, error) {
	boms := make([]models.BillOfMaterial, 0)
	if err := repo.database.Preload("Components").Order("id ASC").Find(&boms).Error; err != nil {
		return nil, err
	}
	return boms, nil
}

func (repo *BOMRepository) Create(bom *models.BillOfMaterial) error {
	return repo.database.Create(bom).Error
}

func (repo *BOMRepository) Delete(bomID uint) (bool, error) {
	deleted := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM bom_stock WHERE bill_of_material_id = ?`, bomID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ManufacturingOrder{}).Where("bom_id = ?", bomID).Update("bom_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.BillOfMaterial{}, bomID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
