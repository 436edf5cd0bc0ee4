package models

import "github.com/shopspring/decimal"

// Subtotal is the loaded size price multiplied by the quantity.
func (s SizeForSale) Subtotal() decimal.Decimal {
	return s.Size.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// TotalPrice sums the line's size selections. A line without selections costs zero.
func (l OrderingFood) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, s := range l.SizesForSale {
		total = total.Add(s.Subtotal())
	}
	return total
}

// TotalPrice sums every line of the order. It is never stored; callers must
// load OrderingFood.SizesForSale.Size before asking.
func (o Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.OrderingFood {
		total = total.Add(line.TotalPrice())
	}
	return total
}
