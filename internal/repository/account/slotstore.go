package account

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"shopcart-replica/internal/domain"
	"shopcart-replica/internal/slot"

	"github.com/shopspring/decimal"
)

func init() {
	// The persisted layout stores prices as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type slotStore struct {
	slot   slot.Slot
	logger *log.Logger
}

// NewSlotStore returns a Repository that serializes the full account list
// as JSON into a single durable slot.
func NewSlotStore(s slot.Slot, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &slotStore{slot: s, logger: logger}
}

func (r *slotStore) LoadAll(ctx context.Context) ([]domain.Account, error) {
	data, ok, err := r.slot.Load(ctx)
	if err != nil {
		r.logger.Printf("account repo: load error=%v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if !ok || len(data) == 0 {
		return []domain.Account{}, nil
	}
	var accounts []domain.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		r.logger.Printf("account repo: decode error=%v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}
	return accounts, nil
}

func (r *slotStore) SaveAll(ctx context.Context, accounts []domain.Account) error {
	if accounts == nil {
		accounts = []domain.Account{}
	}
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("%w: encode accounts: %v", domain.ErrPersistence, err)
	}
	if err := r.slot.Store(ctx, data); err != nil {
		r.logger.Printf("account repo: store error=%v", err)
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *slotStore) Exists(ctx context.Context, email string) (bool, error) {
	accounts, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}
