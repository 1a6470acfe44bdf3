package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopcart-replica/internal/catalog"
	"shopcart-replica/internal/config"
	"shopcart-replica/internal/httpserver"
	accountrepo "shopcart-replica/internal/repository/account"
	"shopcart-replica/internal/slot"
	cartsvc "shopcart-replica/internal/service/cart"
	usersvc "shopcart-replica/internal/service/user"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	accountSlot, closeSlot, err := openSlot(cfg)
	if err != nil {
		logger.Fatalf("open account slot: %v", err)
	}
	defer closeSlot()

	products, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	accountRepo := accountrepo.NewSlotStore(accountSlot, logger)
	userService := usersvc.New(accountRepo, logger)
	if err := userService.Restore(ctx); err != nil {
		logger.Printf("restore session: %v", err)
	}
	cartService := cartsvc.New(accountRepo, userService, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		UserSvc:  userService,
		CartSvc:  cartService,
		Products: products,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func openSlot(cfg config.Config) (slot.Slot, func(), error) {
	switch cfg.StoreBackend {
	case "sqlite":
		s, err := slot.OpenSQLite(cfg.StorePath, accountrepo.SlotKey)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		s, err := slot.NewFile(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}
