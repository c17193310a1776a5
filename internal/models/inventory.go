package models

type WorkCenter struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	CostPerHour float64 `gorm:"not null"`
	Capacity    int     `gorm:"not null"`
	Downtime    float64 `gorm:"not null;default:0"`
}

type StockItem struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Quantity int    `gorm:"not null"`
	Type     string
}

func (StockItem) TableName() string {
	return "stock"
}

type BillOfMaterial struct {
	ID         uint        `gorm:"primaryKey"`
	Name       string      `gorm:"not null"`
	Components []StockItem `gorm:"many2many:bom_stock"`
}

func (BillOfMaterial) TableName() string {
	return "bill_of_material"
}
