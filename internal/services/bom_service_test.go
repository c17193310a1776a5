package services

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponentIDs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want []uint
	}{
		{raw: "", want: []uint{}},
		{raw: "1, 2,3", want: []uint{1, 2, 3}},
		{raw: " 4 ,, 4 , 2 ,", want: []uint{4, 2}},
	}
	for _, testCase := range cases {
		got, err := ParseComponentIDs(testCase.raw)
		require.NoError(t, err, testCase.raw)
		assert.Equal(t, testCase.want, got, testCase.raw)
	}

	for _, raw := range []string{"1,a", "0", "-3", "1.5"} {
		_, err := ParseComponentIDs(raw)
		assert.ErrorIs(t, err, ErrInvalidComponentList, raw)
	}
}

func TestBOMServiceCreateLinksExistingComponents(t *testing.T) {
	repos := newServicesTestRepositories(t)
	inventory := NewInventoryService(repos.WorkCenters, repos.Stock)
	bolt, err := inventory.CreateStockItem(StockInput{Name: "Bolt", Quantity: 10})
	require.NoError(t, err)
	plate, err := inventory.CreateStockItem(StockInput{Name: "Plate", Quantity: 2})
	require.NoError(t, err)

	service := NewBOMService(repos.BOMs, repos.Stock)
	bom, err := service.Create(BOMInput{Name: " Bracket ", Components: "999, " + uintString(bolt.ID) + "," + uintString(plate.ID)})
	require.NoError(t, err)
	assert.Equal(t, "Bracket", bom.Name)

	boms, err := service.List()
	require.NoError(t, err)
	require.Len(t, boms, 1)
	names := make([]string, 0, len(boms[0].Components))
	for _, component := range boms[0].Components {
		names = append(names, component.Name)
	}
	assert.ElementsMatch(t, []string{"Bolt", "Plate"}, names)

	_, err = service.Create(BOMInput{Name: "Broken", Components: "1,x"})
	assert.ErrorIs(t, err, ErrInvalidComponentList)
	_, err = service.Create(BOMInput{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, service.Delete(bom.ID))
	assert.ErrorIs(t, service.Delete(bom.ID), ErrNotFound)
}

func uintString(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
