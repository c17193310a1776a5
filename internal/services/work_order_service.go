package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/mesflow/internal/models"
	"gorm.io/gorm"
)

type WorkOrderRepository interface {
	List() ([]models.WorkOrder, error)
	FindByID(workOrderID uint) (models.WorkOrder, error)
	Create(workOrder *models.WorkOrder) error
	UpdateByID(workOrderID uint, updates map[string]any) error
	Delete(workOrderID uint) (bool, error)
}

type WorkOrderOrderLookup interface {
	FindByID(orderID uint) (models.ManufacturingOrder, error)
}

type WorkOrderUserLookup interface {
	FindByID(userID uint) (models.User, error)
}

type WorkOrderInput struct {
	OrderID    uint   `form:"order_id" json:"order_id" validate:"required"`
	AssignedTo uint   `form:"assigned_to" json:"assigned_to" validate:"required"`
	Status     string `form:"status" json:"status" validate:"workorderstatus"`
	Comments   string `form:"comments" json:"comments" validate:"max=2000"`
}

type WorkOrderService struct {
	workOrders WorkOrderRepository
	orders     WorkOrderOrderLookup
	users      WorkOrderUserLookup
	now        func() time.Time
}

func NewWorkOrderService(workOrders WorkOrderRepository, orders WorkOrderOrderLookup, users WorkOrderUserLookup) *WorkOrderService {
	return &WorkOrderService{
		workOrders: workOrders,
		orders:     orders,
		users:      users,
		now:        time.Now,
	}
}

func (service *WorkOrderService) List() ([]models.WorkOrder, error) {
	return service.workOrders.List()
}

func (service *WorkOrderService) Create(input WorkOrderInput) (models.WorkOrder, error) {
	input.Status = strings.TrimSpace(input.Status)
	if input.Status == "" {
		input.Status = models.WorkOrderStatusPlanned
	}
	input.Comments = strings.TrimSpace(input.Comments)
	if err := validateStruct(input); err != nil {
		return models.WorkOrder{}, err
	}

	if _, err := service.orders.FindByID(input.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WorkOrder{}, &ValidationError{Field: "order_id", Message: "does not reference an existing order"}
		}
		return models.WorkOrder{}, fmt.Errorf("load order: %w", err)
	}
	if _, err := service.users.FindByID(input.AssignedTo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WorkOrder{}, &ValidationError{Field: "assigned_to", Message: "does not reference an existing user"}
		}
		return models.WorkOrder{}, fmt.Errorf("load assignee: %w", err)
	}

	workOrder := models.WorkOrder{
		OrderID:    input.OrderID,
		AssignedTo: input.AssignedTo,
		Status:     input.Status,
		Comments:   input.Comments,
	}
	stampStatusTimes(&workOrder, input.Status, service.now().UTC())
	if err := service.workOrders.Create(&workOrder); err != nil {
		return models.WorkOrder{}, fmt.Errorf("create work order: %w", err)
	}
	return workOrder, nil
}

// ChangeStatus moves a work order to status. Entering In Progress records the
// start time once; entering Done records the end time. Leaving Done for an
// open status clears the end time.
func (service *WorkOrderService) ChangeStatus(workOrderID uint, status string) (models.WorkOrder, error) {
	status = strings.TrimSpace(status)
	if err := validate.Var(status, "workorderstatus"); err != nil {
		return models.WorkOrder{}, &ValidationError{Field: "status", Message: "is not a known value"}
	}

	workOrder, err := service.workOrders.FindByID(workOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WorkOrder{}, ErrNotFound
		}
		return models.WorkOrder{}, fmt.Errorf("load work order: %w", err)
	}

	workOrder.Status = status
	stampStatusTimes(&workOrder, status, service.now().UTC())

	updates := map[string]any{
		"status":     workOrder.Status,
		"start_time": workOrder.StartTime,
		"end_time":   workOrder.EndTime,
	}
	if err := service.workOrders.UpdateByID(workOrderID, updates); err != nil {
		return models.WorkOrder{}, fmt.Errorf("update work order: %w", err)
	}
	return workOrder, nil
}

func (service *WorkOrderService) Delete(workOrderID uint) error {
	deleted, err := service.workOrders.Delete(workOrderID)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func stampStatusTimes(workOrder *models.WorkOrder, status string, now time.Time) {
	switch status {
	case models.WorkOrderStatusPlanned:
		workOrder.EndTime = nil
	case models.WorkOrderStatusInProgress:
		if workOrder.StartTime == nil {
			workOrder.StartTime = &now
		}
		workOrder.EndTime = nil
	case models.WorkOrderStatusDone:
		if workOrder.StartTime == nil {
			workOrder.StartTime = &now
		}
		if workOrder.EndTime == nil {
			workOrder.EndTime = &now
		}
	}
}
