package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Orders      *OrderRepository
	WorkOrders  *WorkOrderRepository
	WorkCenters *WorkCenterRepository
	Stock       *StockRepository
	BOMs        *BOMRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Orders:      NewOrderRepository(database),
		WorkOrders:  NewWorkOrderRepository(database),
		WorkCenters: NewWorkCenterRepository(database),
		Stock:       NewStockRepository(database),
		BOMs:        NewBOMRepository(database),
	}
}
