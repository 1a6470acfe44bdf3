package httpserver

import (
	"context"
	"errors"
	"log"

	"shopcart-replica/internal/domain"
	"shopcart-replica/internal/observable"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// UserService is the session manager surface the handlers consume.
type UserService interface {
	Register(ctx context.Context, email, password string) bool
	UserExists(ctx context.Context, email string) bool
	Login(ctx context.Context, email, password string) bool
	Logout(ctx context.Context)
	IsLoggedIn() bool
	CurrentUser() *domain.Account
}

// CartService is the cart store surface the handlers consume.
type CartService interface {
	Items() *observable.Value[[]domain.CartLine]
	AddItem(ctx context.Context, p domain.Product)
	RemoveItem(ctx context.Context, productID int)
	Clear(ctx context.Context)
	TotalItems() int
	TotalPrice() decimal.Decimal
}

// Deps bundles the services the router needs.
type Deps struct {
	UserSvc  UserService
	CartSvc  CartService
	Products []domain.Product
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if deps.UserSvc == nil || deps.CartSvc == nil {
		return nil, errors.New("httpserver: user and cart services are required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)

	router.POST("/register", registerHandler(deps.UserSvc))
	router.POST("/login", loginHandler(deps.UserSvc))
	router.POST("/logout", logoutHandler(deps.UserSvc))
	router.GET("/me", meHandler(deps.UserSvc))

	router.GET("/products", productsHandler(deps.Products))

	router.GET("/cart", cartHandler(deps.CartSvc))
	router.POST("/cart/items", addItemHandler(deps.CartSvc, deps.Products))
	router.DELETE("/cart/items/:id", removeItemHandler(deps.CartSvc))
	router.DELETE("/cart", clearCartHandler(deps.CartSvc))

	return router, nil
}
