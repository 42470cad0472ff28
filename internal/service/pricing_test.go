package service

import (
	"testing"

	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogService(price string) entity.Service {
	return entity.Service{
		ID:    uuid.New(),
		Price: decimal.RequireFromString(price),
	}
}

func TestPriceItems_Total(t *testing.T) {
	haircut := catalogService("100")
	shave := catalogService("40.50")

	items := []entity.AppointmentItem{
		{ServiceID: haircut.ID, Quantity: 2},
		{ServiceID: shave.ID, Quantity: 1},
	}

	priced, total, err := PriceItems([]entity.Service{haircut, shave}, items)

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("240.50")), "total = %s", total)
	require.Len(t, priced, 2)
	assert.True(t, priced[0].UnitPrice.Equal(haircut.Price))
	assert.True(t, priced[1].UnitPrice.Equal(shave.Price))
	assert.Equal(t, 0, priced[0].Position)
	assert.Equal(t, 1, priced[1].Position)
}

func TestPriceItems_QuantityDefaultsToOne(t *testing.T) {
	haircut := catalogService("100")

	_, total, err := PriceItems(
		[]entity.Service{haircut},
		[]entity.AppointmentItem{{ServiceID: haircut.ID}},
	)

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("100")), "total = %s", total)
}

func TestPriceItems_OrderIndependent(t *testing.T) {
	a := catalogService("25")
	b := catalogService("75.25")
	catalog := []entity.Service{a, b}

	_, forward, err := PriceItems(catalog, []entity.AppointmentItem{
		{ServiceID: a.ID, Quantity: 3},
		{ServiceID: b.ID, Quantity: 1},
	})
	require.NoError(t, err)

	_, backward, err := PriceItems(catalog, []entity.AppointmentItem{
		{ServiceID: b.ID, Quantity: 1},
		{ServiceID: a.ID, Quantity: 3},
	})
	require.NoError(t, err)

	assert.True(t, forward.Equal(backward), "forward=%s backward=%s", forward, backward)
}

func TestPriceItems_DuplicateServiceAllowed(t *testing.T) {
	haircut := catalogService("100")

	_, total, err := PriceItems(
		[]entity.Service{haircut},
		[]entity.AppointmentItem{
			{ServiceID: haircut.ID, Quantity: 1},
			{ServiceID: haircut.ID, Quantity: 2},
		},
	)

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("300")), "total = %s", total)
}

func TestPriceItems_UnknownService(t *testing.T) {
	haircut := catalogService("100")

	priced, total, err := PriceItems(
		[]entity.Service{haircut},
		[]entity.AppointmentItem{
			{ServiceID: haircut.ID, Quantity: 1},
			{ServiceID: uuid.New(), Quantity: 1},
		},
	)

	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Nil(t, priced)
	assert.True(t, total.IsZero())
}

func TestPriceItems_Empty(t *testing.T) {
	priced, total, err := PriceItems(nil, nil)

	require.NoError(t, err)
	assert.Empty(t, priced)
	assert.True(t, total.IsZero())
}
