// Package user implements the session manager: credential registration,
// login/logout, and the single observable current session.
package user

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"shopcart-replica/internal/domain"
	"shopcart-replica/internal/observable"
	"shopcart-replica/internal/repository/account"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the fixed bcrypt cost factor for password hashes.
const hashCost = 10

// ErrHashing indicates the password hash or verify operation failed
// internally. It never crosses the service boundary; callers observe a
// boolean failure.
var ErrHashing = errors.New("password hashing failed")

// Service resolves "the current user". At most one account is flagged
// logged-in at any time; login is the single authority for that invariant.
type Service struct {
	repo   account.Repository
	logger *log.Logger

	mu      sync.Mutex
	session *observable.Value[*domain.Account]

	passwordMin int
}

// New creates a Service over the given credential store.
func New(repo account.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:        repo,
		logger:      logger,
		session:     observable.New[*domain.Account](nil),
		passwordMin: 6,
	}
}

// Restore scans persisted accounts for one flagged logged-in and adopts it
// as the current session, recovering the session across restarts.
func (s *Service) Restore(ctx context.Context) error {
	accounts, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].IsLoggedIn {
			acc := accounts[i]
			s.session.Set(&acc)
			return nil
		}
	}
	return nil
}

// Register creates a new account with a salted hash of password and an
// empty cart. Returns false on duplicate email, weak password, or any
// storage/hashing fault.
func (s *Service) Register(ctx context.Context, email, password string) bool {
	if email == "" || !validPassword(password, s.passwordMin) {
		return false
	}
	exists, err := s.repo.Exists(ctx, email)
	if err != nil {
		s.logger.Printf("register: exists check failed: %v", err)
		return false
	}
	if exists {
		return false
	}

	// Hashing runs outside the service lock so it never stalls other
	// operations.
	hash, err := hashPassword(password)
	if err != nil {
		s.logger.Printf("register: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	accounts, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Printf("register: load failed: %v", err)
		return false
	}
	for _, a := range accounts {
		if a.Email == email {
			return false
		}
	}
	accounts = append(accounts, domain.Account{
		Email:        email,
		PasswordHash: hash,
		IsLoggedIn:   false,
		Cart:         []domain.CartLine{},
	})
	if err := s.repo.SaveAll(ctx, accounts); err != nil {
		s.logger.Printf("register: save failed: %v", err)
		return false
	}
	return true
}

// UserExists reports whether an account with the exact email is registered.
func (s *Service) UserExists(ctx context.Context, email string) bool {
	exists, err := s.repo.Exists(ctx, email)
	if err != nil {
		s.logger.Printf("user exists: %v", err)
		return false
	}
	return exists
}

// Login verifies credentials and, on success, makes the matched account the
// only logged-in one and publishes it as the current session. A false
// result does not reveal whether the email was unknown or the password
// wrong, and leaves the session unchanged.
func (s *Service) Login(ctx context.Context, email, password string) bool {
	accounts, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Printf("login: load failed: %v", err)
		return false
	}
	idx := -1
	for i := range accounts {
		if accounts[i].Email == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	if !verifyPassword(accounts[idx].PasswordHash, password) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range accounts {
		accounts[i].IsLoggedIn = false
	}
	accounts[idx].IsLoggedIn = true
	if err := s.repo.SaveAll(ctx, accounts); err != nil {
		s.logger.Printf("login: save failed: %v", err)
		return false
	}
	acc := accounts[idx]
	s.session.Set(&acc)
	return true
}

// Logout empties the logged-out account's cart, clears every logged-in
// flag, and publishes "no current session". Calling it with no active
// session is a no-op that still clears any stale flags in storage.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Printf("logout: load failed: %v", err)
		return
	}
	for i := range accounts {
		if accounts[i].IsLoggedIn {
			accounts[i].Cart = []domain.CartLine{}
		}
		accounts[i].IsLoggedIn = false
	}
	if err := s.repo.SaveAll(ctx, accounts); err != nil {
		s.logger.Printf("logout: save failed: %v", err)
		return
	}
	s.session.Set(nil)
}

// CurrentUser returns the live session value without re-reading storage.
func (s *Service) CurrentUser() *domain.Account {
	return s.session.Get()
}

// IsLoggedIn reports whether a session is active.
func (s *Service) IsLoggedIn() bool {
	return s.session.Get() != nil
}

// Session exposes the observable current session for reactive consumers.
func (s *Service) Session() *observable.Value[*domain.Account] {
	return s.session
}

// UpdateCurrentCart replaces the session account's cart and republishes
// the session. No-op without an active session.
func (s *Service) UpdateCurrentCart(lines []domain.CartLine) {
	cur := s.session.Get()
	if cur == nil {
		return
	}
	acc := *cur
	acc.Cart = lines
	s.session.Set(&acc)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", errors.Join(ErrHashing, err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validPassword applies the registration form policy: minimum length plus
// at least one uppercase letter.
func validPassword(p string, min int) bool {
	if len(p) < min {
		return false
	}
	for _, r := range p {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}
