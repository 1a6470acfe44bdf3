package domain

import "github.com/shopspring/decimal"

// Product is a read-only catalog entry. Carts never store products, only
// CartLines derived from them.
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// Line derives a cart line with the given quantity from the product.
func (p Product) Line(quantity int) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}
}
