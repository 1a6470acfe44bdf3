// Command seed registers demo accounts into the configured account slot so
// the UI has something to log in with.
package main

import (
	"context"
	"log"
	"os"

	"shopcart-replica/internal/config"
	accountrepo "shopcart-replica/internal/repository/account"
	"shopcart-replica/internal/slot"
	usersvc "shopcart-replica/internal/service/user"
)

var demoAccounts = []struct {
	email    string
	password string
}{
	{"demo@example.com", "Secret1"},
	{"shopper@example.com", "Secret2"},
}

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	var accountSlot slot.Slot
	switch cfg.StoreBackend {
	case "sqlite":
		s, err := slot.OpenSQLite(cfg.StorePath, accountrepo.SlotKey)
		if err != nil {
			logger.Fatalf("open sqlite slot: %v", err)
		}
		defer s.Close()
		accountSlot = s
	default:
		s, err := slot.NewFile(cfg.StorePath)
		if err != nil {
			logger.Fatalf("open file slot: %v", err)
		}
		accountSlot = s
	}

	repo := accountrepo.NewSlotStore(accountSlot, logger)
	users := usersvc.New(repo, logger)

	ctx := context.Background()
	for _, acc := range demoAccounts {
		if users.UserExists(ctx, acc.email) {
			logger.Printf("skip %s: already registered", acc.email)
			continue
		}
		if !users.Register(ctx, acc.email, acc.password) {
			logger.Fatalf("register %s failed", acc.email)
		}
		logger.Printf("registered %s", acc.email)
	}
}
