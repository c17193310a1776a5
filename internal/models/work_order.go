package models

import "time"

const (
	WorkOrderStatusPlanned    = "Planned"
	WorkOrderStatusInProgress = "In Progress"
	WorkOrderStatusDone       = "Done"
)

var WorkOrderStatuses = []string{WorkOrderStatusPlanned, WorkOrderStatusInProgress, WorkOrderStatusDone}

type WorkOrder struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    uint   `gorm:"not null;index"`
	AssignedTo uint   `gorm:"not null;index"`
	Status     string `gorm:"not null;default:Planned"`
	Comments   string
	StartTime  *time.Time
	EndTime    *time.Time
	Order      ManufacturingOrder `gorm:"foreignKey:OrderID"`
	Assignee   User               `gorm:"foreignKey:AssignedTo"`
}
