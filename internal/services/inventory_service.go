package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/mesflow/internal/models"
)

type WorkCenterRepository interface {
	List() ([]models.WorkCenter, error)
	Create(center *models.WorkCenter) error
	Delete(centerID uint) (bool, error)
}

type StockRepository interface {
	List() ([]models.StockItem, error)
	FindByIDs(ids []uint) ([]models.StockItem, error)
	Create(item *models.StockItem) error
	Delete(itemID uint) (bool, error)
}

type WorkCenterInput struct {
	Name        string  `form:"name" json:"name" validate:"notblank,max=100"`
	CostPerHour float64 `form:"cost_per_hour" json:"cost_per_hour" validate:"gte=0"`
	Capacity    int     `form:"capacity" json:"capacity" validate:"gte=1"`
	Downtime    float64 `form:"downtime" json:"downtime" validate:"gte=0"`
}

type StockInput struct {
	Name     string `form:"name" json:"name" validate:"notblank,max=100"`
	Quantity int    `form:"quantity" json:"quantity" validate:"gte=0"`
	Type     string `form:"type" json:"type" validate:"max=50"`
}

type InventoryService struct {
	centers WorkCenterRepository
	stock   StockRepository
}

func NewInventoryService(centers WorkCenterRepository, stock StockRepository) *InventoryService {
	return &InventoryService{centers: centers, stock: stock}
}

func (service *InventoryService) ListWorkCenters() ([]models.WorkCenter, error) {
	return service.centers.List()
}

func (service *InventoryService) CreateWorkCenter(input WorkCenterInput) (models.WorkCenter, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return models.WorkCenter{}, err
	}

	center := models.WorkCenter{
		Name:        input.Name,
		CostPerHour: input.CostPerHour,
		Capacity:    input.Capacity,
		Downtime:    input.Downtime,
	}
	if err := service.centers.Create(&center); err != nil {
		return models.WorkCenter{}, fmt.Errorf("create work center: %w", err)
	}
	return center, nil
}

func (service *InventoryService) DeleteWorkCenter(centerID uint) error {
	return deleteOrNotFound(service.centers.Delete, centerID, "work center")
}

func (service *InventoryService) ListStock() ([]models.StockItem, error) {
	return service.stock.List()
}

func (service *InventoryService) CreateStockItem(input StockInput) (models.StockItem, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Type = strings.TrimSpace(input.Type)
	if err := validateStruct(input); err != nil {
		return models.StockItem{}, err
	}

	item := models.StockItem{Name: input.Name, Quantity: input.Quantity, Type: input.Type}
	if err := service.stock.Create(&item); err != nil {
		return models.StockItem{}, fmt.Errorf("create stock item: %w", err)
	}
	return item, nil
}

func (service *InventoryService) DeleteStockItem(itemID uint) error {
	return deleteOrNotFound(service.stock.Delete, itemID, "stock item")
}

func deleteOrNotFound(remove func(uint) (bool, error), id uint, kind string) error {
	deleted, err := remove(id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
