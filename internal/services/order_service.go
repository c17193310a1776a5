package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/mesflow/internal/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	List() ([]models.ManufacturingOrder, error)
	FindByID(orderID uint) (models.ManufacturingOrder, error)
	Create(order *models.ManufacturingOrder) error
	Save(order *models.ManufacturingOrder) error
	Delete(orderID uint) (bool, error)
}

type OrderInput struct {
	CustomerName string `form:"customer_name" json:"customer_name" validate:"notblank,max=100"`
	ProductName  string `form:"product_name" json:"product_name" validate:"notblank,max=100"`
	Availability string `form:"availability" json:"availability" validate:"notblank,max=50"`
	Status       string `form:"status" json:"status" validate:"orderstatus"`
	Quantity     int    `form:"quantity" json:"quantity" validate:"gte=1"`
	PlacedDate   string `form:"placed_date" json:"placed_date" validate:"isodate"`
	DeliveryDate string `form:"delivery_date" json:"delivery_date" validate:"isodate"`
}

type OrderService struct {
	orders   OrderRepository
	location *time.Location
}

func NewOrderService(orders OrderRepository, location *time.Location) *OrderService {
	if location == nil {
		location = time.UTC
	}
	return &OrderService{orders: orders, location: location}
}

func (service *OrderService) List() ([]models.ManufacturingOrder, error) {
	return service.orders.List()
}

func (service *OrderService) Get(orderID uint) (models.ManufacturingOrder, error) {
	order, err := service.orders.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ManufacturingOrder{}, ErrNotFound
	}
	return order, err
}

func (service *OrderService) Create(input OrderInput) (models.ManufacturingOrder, error) {
	order := models.ManufacturingOrder{}
	if err := service.apply(&order, input); err != nil {
		return models.ManufacturingOrder{}, err
	}
	if err := service.orders.Create(&order); err != nil {
		return models.ManufacturingOrder{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (service *OrderService) Update(orderID uint, input OrderInput) (models.ManufacturingOrder, error) {
	order, err := service.Get(orderID)
	if err != nil {
		return models.ManufacturingOrder{}, err
	}
	if err := service.apply(&order, input); err != nil {
		return models.ManufacturingOrder{}, err
	}
	if err := service.orders.Save(&order); err != nil {
		return models.ManufacturingOrder{}, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

func (service *OrderService) Delete(orderID uint) error {
	deleted, err := service.orders.Delete(orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (service *OrderService) apply(order *models.ManufacturingOrder, input OrderInput) error {
	input = normalizeOrderInput(input)
	if err := validateStruct(input); err != nil {
		return err
	}

	placed, err := parseDate(input.PlacedDate, service.location)
	if err != nil {
		return &ValidationError{Field: "placed_date", Message: "must be a date in YYYY-MM-DD format"}
	}
	delivery, err := parseDate(input.DeliveryDate, service.location)
	if err != nil {
		return &ValidationError{Field: "delivery_date", Message: "must be a date in YYYY-MM-DD format"}
	}
	if delivery.Before(placed) {
		return &ValidationError{Field: "delivery_date", Message: "must not be before the placed date"}
	}

	order.CustomerName = input.CustomerName
	order.ProductName = input.ProductName
	order.Availability = input.Availability
	order.Status = input.Status
	order.Quantity = input.Quantity
	order.PlacedDate = placed
	order.DeliveryDate = delivery
	return nil
}

func normalizeOrderInput(input OrderInput) OrderInput {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.ProductName = strings.TrimSpace(input.ProductName)
	input.Availability = strings.TrimSpace(input.Availability)
	input.Status = strings.TrimSpace(input.Status)
	if input.Status == "" {
		input.Status = models.OrderStatusInProgress
	}
	input.PlacedDate = strings.TrimSpace(input.PlacedDate)
	input.DeliveryDate = strings.TrimSpace(input.DeliveryDate)
	return input
}
