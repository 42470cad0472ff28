package service

import (
	"errors"

	"go-barber-booking/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var ErrUnknownService = errors.New("line item references a service outside the resolved catalog")

// PriceItems applies quantity defaults, snapshots the current catalog
// price into each line item and computes the appointment total. It is a
// pure function of its inputs; callers are expected to have resolved the
// catalog beforehand. A service id with no catalog entry fails the whole
// computation, nothing is priced partially.
func PriceItems(catalog []entity.Service, items []entity.AppointmentItem) ([]entity.AppointmentItem, decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(catalog))
	for _, s := range catalog {
		prices[s.ID.String()] = s.Price
	}

	priced := make([]entity.AppointmentItem, len(items))
	total := decimal.Zero
	for i, item := range items {
		price, ok := prices[item.ServiceID.String()]
		if !ok {
			return nil, decimal.Zero, ErrUnknownService
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		item.UnitPrice = price
		item.Position = i
		priced[i] = item
		total = total.Add(item.Subtotal())
	}
	return priced, total, nil
}
