package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/terraincognita07/mesflow/internal/models"
)

type BOMRepository interface {
	List() ([]models.BillOfMaterial, error)
	Create(bom *models.BillOfMaterial) error
	Delete(bomID uint) (bool, error)
}

type BOMComponentLookup interface {
	FindByIDs(ids []uint) ([]models.StockItem, error)
}

type BOMInput struct {
	Name       string `form:"name" json:"name" validate:"notblank,max=100"`
	Components string `form:"components" json:"components"`
}

type BOMService struct {
	boms  BOMRepository
	stock BOMComponentLookup
}

func NewBOMService(boms BOMRepository, stock BOMComponentLookup) *BOMService {
	return &BOMService{boms: boms, stock: stock}
}

func (service *BOMService) List() ([]models.BillOfMaterial, error) {
	return service.boms.List()
}

// Create stores a bill of material whose components are the existing stock
// items named by the comma separated ids in input.Components.
func (service *BOMService) Create(input BOMInput) (models.BillOfMaterial, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return models.BillOfMaterial{}, err
	}

	ids, err := ParseComponentIDs(input.Components)
	if err != nil {
		return models.BillOfMaterial{}, err
	}
	components, err := service.stock.FindByIDs(ids)
	if err != nil {
		return models.BillOfMaterial{}, fmt.Errorf("load components: %w", err)
	}

	bom := models.BillOfMaterial{Name: input.Name, Components: components}
	if err := service.boms.Create(&bom); err != nil {
		return models.BillOfMaterial{}, fmt.Errorf("create bom: %w", err)
	}
	return bom, nil
}

func (service *BOMService) Delete(bomID uint) error {
	return deleteOrNotFound(service.boms.Delete, bomID, "bom")
}

// ParseComponentIDs parses "1, 2,3" into unique ids in input order. Blank
// segments are skipped; anything else that is not a positive integer fails.
func ParseComponentIDs(raw string) ([]uint, error) {
	ids := make([]uint, 0)
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		value, err := strconv.ParseUint(segment, 10, 64)
		if err != nil || value == 0 {
			return nil, fmt.Errorf("%w: %q is not a stock id", ErrInvalidComponentList, segment)
		}
		ids = append(ids, uint(value))
	}
	return lo.Uniq(ids), nil
}
