package account

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"shopcart-replica/internal/domain"

	"github.com/shopspring/decimal"
)

// memorySlot is an in-memory slot for tests.
type memorySlot struct {
	data     []byte
	written  bool
	loadErr  error
	storeErr error
}

func (m *memorySlot) Load(context.Context) ([]byte, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	return m.data, m.written, nil
}

func (m *memorySlot) Store(_ context.Context, data []byte) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.data = append([]byte(nil), data...)
	m.written = true
	return nil
}

func TestLoadAll_EmptySlot(t *testing.T) {
	repo := NewSlotStore(&memorySlot{}, nil)

	accounts, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("expected empty account list, got %d", len(accounts))
	}
}

func TestLoadAll_CorruptPayload(t *testing.T) {
	repo := NewSlotStore(&memorySlot{data: []byte("{not json"), written: true}, nil)

	_, err := repo.LoadAll(context.Background())
	if !errors.Is(err, domain.ErrCorruptStore) {
		t.Fatalf("expected ErrCorruptStore, got %v", err)
	}
}

func TestSaveAll_StoreFailure(t *testing.T) {
	repo := NewSlotStore(&memorySlot{storeErr: errors.New("quota exceeded")}, nil)

	err := repo.SaveAll(context.Background(), []domain.Account{{Email: "a@x.com"}})
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestSaveAll_LoadAll_RoundTrip(t *testing.T) {
	slot := &memorySlot{}
	repo := NewSlotStore(slot, nil)
	ctx := context.Background()

	in := []domain.Account{{
		Email:        "a@x.com",
		PasswordHash: "$2a$10$hash",
		IsLoggedIn:   true,
		Cart: []domain.CartLine{{
			ProductID: 1,
			Name:      "Green Hat",
			Price:     decimal.NewFromInt(92),
			Image:     "assets/images/green_hat.jpg",
			Quantity:  3,
		}},
	}}
	if err := repo.SaveAll(ctx, in); err != nil {
		t.Fatalf("save all: %v", err)
	}

	out, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(out) != 1 || out[0].Email != "a@x.com" || !out[0].IsLoggedIn {
		t.Fatalf("unexpected accounts %+v", out)
	}
	line := out[0].Cart[0]
	if line.ProductID != 1 || line.Quantity != 3 || !line.Price.Equal(decimal.NewFromInt(92)) {
		t.Fatalf("unexpected cart line %+v", line)
	}
}

func TestSaveAll_PricesAreBareNumbers(t *testing.T) {
	slot := &memorySlot{}
	repo := NewSlotStore(slot, nil)

	in := []domain.Account{{
		Email: "a@x.com",
		Cart:  []domain.CartLine{{ProductID: 1, Price: decimal.NewFromInt(92), Quantity: 1}},
	}}
	if err := repo.SaveAll(context.Background(), in); err != nil {
		t.Fatalf("save all: %v", err)
	}
	if !strings.Contains(string(slot.data), `"price":92`) {
		t.Fatalf("expected bare numeric price in payload, got %s", slot.data)
	}
}

func TestSaveAll_ReserializingUnmodifiedLoadIsIdempotent(t *testing.T) {
	slot := &memorySlot{}
	repo := NewSlotStore(slot, nil)
	ctx := context.Background()

	in := []domain.Account{
		{Email: "a@x.com", PasswordHash: "h1", Cart: []domain.CartLine{{ProductID: 2, Name: "T shirt monky", Price: decimal.NewFromInt(92), Quantity: 2}}},
		{Email: "b@x.com", PasswordHash: "h2", IsLoggedIn: true, Cart: []domain.CartLine{}},
	}
	if err := repo.SaveAll(ctx, in); err != nil {
		t.Fatalf("save all: %v", err)
	}
	first := append([]byte(nil), slot.data...)

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if err := repo.SaveAll(ctx, loaded); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	if !bytes.Equal(first, slot.data) {
		t.Fatalf("expected byte-equal payload after round trip\nfirst:  %s\nsecond: %s", first, slot.data)
	}
}

func TestExists_ExactCaseSensitiveMatch(t *testing.T) {
	slot := &memorySlot{}
	repo := NewSlotStore(slot, nil)
	ctx := context.Background()

	if err := repo.SaveAll(ctx, []domain.Account{{Email: "A@x.com"}}); err != nil {
		t.Fatalf("save all: %v", err)
	}

	ok, err := repo.Exists(ctx, "A@x.com")
	if err != nil || !ok {
		t.Fatalf("expected exact match, got ok=%v err=%v", ok, err)
	}
	ok, err = repo.Exists(ctx, "a@x.com")
	if err != nil || ok {
		t.Fatalf("expected case-sensitive mismatch, got ok=%v err=%v", ok, err)
	}
}
