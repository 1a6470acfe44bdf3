package domain

import "github.com/shopspring/decimal"

// Account represents a registered user: credentials, session flag, and cart.
// The JSON tags mirror the persisted slot layout exactly.
type Account struct {
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	IsLoggedIn   bool       `json:"isLoggedIn"`
	Cart         []CartLine `json:"cart"`
}

// CartLine is one product entry in an account's cart with an aggregated
// quantity. Product id is unique within a cart; quantity is always >= 1.
type CartLine struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CloneCart returns a deep copy of the account's cart so callers can mutate
// without aliasing the stored slice.
func (a Account) CloneCart() []CartLine {
	if len(a.Cart) == 0 {
		return nil
	}
	out := make([]CartLine, len(a.Cart))
	copy(out, a.Cart)
	return out
}
