// Package cart implements the per-user cart store. Every operation acts on
// the session manager's current account; with no session, mutations are
// inert no-ops and reads return empty/zero.
package cart

import (
	"context"
	"io"
	"log"

	"shopcart-replica/internal/domain"
	"shopcart-replica/internal/observable"
	"shopcart-replica/internal/repository/account"

	"github.com/shopspring/decimal"
)

// sessionSource resolves the current account and republishes its cart.
type sessionSource interface {
	CurrentUser() *domain.Account
	Session() *observable.Value[*domain.Account]
	UpdateCurrentCart(lines []domain.CartLine)
}

// Service mutates the current user's cart through merge, decrement, and
// clear operations, re-persisting the full account list on every change.
type Service struct {
	repo     account.Repository
	sessions sessionSource
	logger   *log.Logger
	items    *observable.Value[[]domain.CartLine]
}

// New creates a Service bound to the given session manager and credential
// store. The items observable tracks the session: it empties on logout and
// adopts the account's cart on login.
func New(repo account.Repository, sessions sessionSource, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
		items:    observable.New[[]domain.CartLine](nil),
	}
	sessions.Session().Subscribe(func(acc *domain.Account) {
		if acc == nil {
			s.items.Set(nil)
			return
		}
		s.items.Set(acc.CloneCart())
	})
	return s
}

// Items exposes the current user's cart, re-emitted on every mutation.
func (s *Service) Items() *observable.Value[[]domain.CartLine] {
	return s.items
}

// AddItem merges the product into the cart: an existing line's quantity is
// incremented by 1, otherwise a new line with quantity 1 is inserted.
func (s *Service) AddItem(ctx context.Context, p domain.Product) {
	s.mutate(ctx, func(lines []domain.CartLine) []domain.CartLine {
		for i := range lines {
			if lines[i].ProductID == p.ID {
				lines[i].Quantity++
				return lines
			}
		}
		return append(lines, p.Line(1))
	})
}

// RemoveItem decrements the matching line's quantity, removing the line
// entirely when it reaches zero. No-op if the id is absent.
func (s *Service) RemoveItem(ctx context.Context, productID int) {
	s.mutate(ctx, func(lines []domain.CartLine) []domain.CartLine {
		for i := range lines {
			if lines[i].ProductID != productID {
				continue
			}
			if lines[i].Quantity > 1 {
				lines[i].Quantity--
				return lines
			}
			return append(lines[:i], lines[i+1:]...)
		}
		return lines
	})
}

// Clear empties the current user's cart.
func (s *Service) Clear(ctx context.Context) {
	s.mutate(ctx, func([]domain.CartLine) []domain.CartLine {
		return []domain.CartLine{}
	})
}

// TotalItems returns the sum of all line quantities.
func (s *Service) TotalItems() int {
	total := 0
	for _, l := range s.items.Get() {
		total += l.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity across all lines.
func (s *Service) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.items.Get() {
		total = total.Add(l.LineTotal())
	}
	return total
}

// mutate applies fn to a copy of the current cart, persists the full
// account list, and only then republishes the observable state. A failed
// persist leaves in-memory state untouched.
func (s *Service) mutate(ctx context.Context, fn func([]domain.CartLine) []domain.CartLine) {
	cur := s.sessions.CurrentUser()
	if cur == nil {
		return
	}
	accounts, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Printf("cart: load failed: %v", err)
		return
	}
	idx := -1
	for i := range accounts {
		if accounts[i].Email == cur.Email {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Printf("cart: account %s missing from store", cur.Email)
		return
	}
	updated := fn(accounts[idx].CloneCart())
	if updated == nil {
		updated = []domain.CartLine{}
	}
	accounts[idx].Cart = updated
	if err := s.repo.SaveAll(ctx, accounts); err != nil {
		s.logger.Printf("cart: save failed: %v", err)
		return
	}
	s.sessions.UpdateCurrentCart(updated)
}
