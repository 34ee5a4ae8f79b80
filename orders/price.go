package orders

import "tableside/money"

// Price computes the exact price of one order item in minor units:
// (resolved price + total of all selected choices, recursively) times count.
// The computation is pure and stays in integer arithmetic throughout, so
// deeply nested orders cannot accumulate rounding drift against the server's
// own total.
func Price(item *OrderItem) money.Amount {
	var choicesTotal money.Amount
	for _, slot := range item.Choices {
		for _, choice := range slot {
			choicesTotal += Price(choice)
		}
	}
	return (item.Price + choicesTotal).Mul(item.Count)
}

// PriceAll computes the combined price of a sequence of order items.
func PriceAll(items ...*OrderItem) money.Amount {
	var total money.Amount
	for _, item := range items {
		total += Price(item)
	}
	return total
}
