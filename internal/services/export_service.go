package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/terraincognita07/mesflow/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	OrdersSheetName  = "Orders"
	OrdersExportName = "orders.xlsx"
	XLSXContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportDateLayout = "2006-01-02"
	defaultSheetName = "Sheet1"
	headerFillColor  = "#DCE6F1"
)

var OrdersExportHeaders = []string{"ID", "Customer", "Product", "Status", "Quantity", "Placed", "Delivery"}

type ExportOrderReader interface {
	List() ([]models.ManufacturingOrder, error)
}

type ExportService struct {
	orders ExportOrderReader
}

func NewExportService(orders ExportOrderReader) *ExportService {
	return &ExportService{orders: orders}
}

func (service *ExportService) OrdersWorkbook() ([]byte, error) {
	orders, err := service.orders.List()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return BuildOrdersWorkbook(orders)
}

func ExportRow(order models.ManufacturingOrder) []any {
	return []any{
		order.ID,
		order.CustomerName,
		order.ProductName,
		order.Status,
		order.Quantity,
		formatExportDate(order.PlacedDate),
		formatExportDate(order.DeliveryDate),
	}
}

// BuildOrdersWorkbook writes one header row and one row per order on the
// Orders sheet.
func BuildOrdersWorkbook(orders []models.ManufacturingOrder) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName(defaultSheetName, OrdersSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := workbook.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeRow(workbook, 1, lo.ToAnySlice(OrdersExportHeaders)); err != nil {
		return nil, err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(OrdersExportHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := workbook.SetCellStyle(OrdersSheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for index, order := range orders {
		if err := writeRow(workbook, index+2, ExportRow(order)); err != nil {
			return nil, err
		}
	}

	if err := workbook.SetColWidth(OrdersSheetName, "B", "C", 24); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := workbook.SetPanes(OrdersSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var output bytes.Buffer
	if _, err := workbook.WriteTo(&output); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return output.Bytes(), nil
}

func writeRow(workbook *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := workbook.SetSheetRow(OrdersSheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func formatExportDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(exportDateLayout)
}
