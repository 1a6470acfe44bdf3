package account

import (
	"context"

	"shopcart-replica/internal/domain"
)

// SlotKey is the fixed key the full account list is persisted under.
const SlotKey = "registered_users"

// Repository persists and fetches the registered account list. The
// persisted slot is the single source of truth: SaveAll replaces the whole
// set, never a subset.
type Repository interface {
	LoadAll(ctx context.Context) ([]domain.Account, error)
	SaveAll(ctx context.Context, accounts []domain.Account) error
	Exists(ctx context.Context, email string) (bool, error)
}
