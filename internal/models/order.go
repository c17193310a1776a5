package models

import "time"

const (
	OrderStatusPlanned    = "Planned"
	OrderStatusInProgress = "In Progress"
	OrderStatusDone       = "Done"
)

var OrderStatuses = []string{OrderStatusPlanned, OrderStatusInProgress, OrderStatusDone}

type ManufacturingOrder struct {
	ID           uint        `gorm:"primaryKey"`
	CustomerName string      `gorm:"not null"`
	ProductName  string      `gorm:"not null"`
	Availability string      `gorm:"not null"`
	Status       string      `gorm:"not null;default:In Progress"`
	Quantity     int         `gorm:"not null"`
	PlacedDate   time.Time   `gorm:"type:date;not null"`
	DeliveryDate time.Time   `gorm:"type:date;not null"`
	BOMID        *uint       `gorm:"column:bom_id"`
	WorkOrders   []WorkOrder `gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time
}

// IsDelayed reports whether a still-planned order has passed its delivery date.
func (order ManufacturingOrder) IsDelayed(today time.Time) bool {
	return order.Status == OrderStatusPlanned && order.DeliveryDate.Before(today)
}
