package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryServiceWorkCenters(t *testing.T) {
	repos := newServicesTestRepositories(t)
	service := NewInventoryService(repos.WorkCenters, repos.Stock)

	center, err := service.CreateWorkCenter(WorkCenterInput{Name: " Lathe 1 ", CostPerHour: 42.5, Capacity: 3})
	require.NoError(t, err)
	assert.Equal(t, "Lathe 1", center.Name)

	_, err = service.CreateWorkCenter(WorkCenterInput{Name: "Press", Capacity: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.CreateWorkCenter(WorkCenterInput{Name: "Press", Capacity: 1, CostPerHour: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	centers, err := service.ListWorkCenters()
	require.NoError(t, err)
	require.Len(t, centers, 1)

	require.NoError(t, service.DeleteWorkCenter(center.ID))
	assert.ErrorIs(t, service.DeleteWorkCenter(center.ID), ErrNotFound)
}

func TestInventoryServiceStock(t *testing.T) {
	repos := newServicesTestRepositories(t)
	service := NewInventoryService(repos.WorkCenters, repos.Stock)

	item, err := service.CreateStockItem(StockInput{Name: "Bolt M8", Quantity: 500, Type: " raw "})
	require.NoError(t, err)
	assert.Equal(t, "raw", item.Type)

	_, err = service.CreateStockItem(StockInput{Name: "", Quantity: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.CreateStockItem(StockInput{Name: "Nut", Quantity: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	items, err := service.ListStock()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 500, items[0].Quantity)

	require.NoError(t, service.DeleteStockItem(item.ID))
	assert.ErrorIs(t, service.DeleteStockItem(item.ID), ErrNotFound)
}
