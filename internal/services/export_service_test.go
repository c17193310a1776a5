package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/mesflow/internal/models"
	"github.com/xuri/excelize/v2"
)

func TestBuildOrdersWorkbookWritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	orders := []models.ManufacturingOrder{
		{
			ID:           7,
			CustomerName: "Acme",
			ProductName:  "Gearbox",
			Status:       models.OrderStatusPlanned,
			Quantity:     3,
			PlacedDate:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
			DeliveryDate: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{ID: 8, CustomerName: "Globex", ProductName: "Shaft", Status: models.OrderStatusDone, Quantity: 1},
	}

	content, err := BuildOrdersWorkbook(orders)
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{OrdersSheetName}, workbook.GetSheetList())

	rows, err := workbook.GetRows(OrdersSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, OrdersExportHeaders, rows[0])
	assert.Equal(t, []string{"7", "Acme", "Gearbox", "Planned", "3", "2026-01-05", "2026-02-01"}, rows[1])
	assert.Equal(t, []string{"8", "Globex", "Shaft", "Done", "1"}, rows[2])
}

func TestExportServiceOrdersWorkbookReadsRepository(t *testing.T) {
	repos := newServicesTestRepositories(t)
	_, err := NewOrderService(repos.Orders, time.UTC).Create(validOrderInput())
	require.NoError(t, err)

	content, err := NewExportService(repos.Orders).OrdersWorkbook()
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer workbook.Close()

	customer, err := workbook.GetCellValue(OrdersSheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", customer)
}
