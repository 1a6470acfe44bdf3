package httpserver

import (
	"net/http"
	"strconv"

	"shopcart-replica/internal/catalog"
	"shopcart-replica/internal/domain"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

type cartResponse struct {
	Items      []domain.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice string            `json:"totalPrice"`
}

func registerHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		if users.UserExists(c.Request.Context(), req.Email) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		if !users.Register(c.Request.Context(), req.Email, req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "registration failed"})
			return
		}
		c.JSON(http.StatusCreated, userResponse{Email: req.Email})
	}
}

func loginHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		// One body for unknown email and wrong password.
		if !users.Login(c.Request.Context(), req.Email, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		cur := users.CurrentUser()
		c.JSON(http.StatusOK, userResponse{Email: cur.Email, IsLoggedIn: true})
	}
}

func logoutHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users.Logout(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}

func meHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cur := users.CurrentUser()
		if cur == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusOK, userResponse{Email: cur.Email, IsLoggedIn: true})
	}
}

func productsHandler(products []domain.Product) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products)
	}
}

func cartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(carts))
	}
}

func addItemHandler(carts CartService, products []domain.Product) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID int `json:"id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
			return
		}
		product, ok := catalog.ByID(products, req.ID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		carts.AddItem(c.Request.Context(), product)
		c.JSON(http.StatusOK, toCartResponse(carts))
	}
}

func removeItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product id must be an integer"})
			return
		}
		carts.RemoveItem(c.Request.Context(), id)
		c.JSON(http.StatusOK, toCartResponse(carts))
	}
}

func clearCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Clear(c.Request.Context())
		c.JSON(http.StatusOK, toCartResponse(carts))
	}
}

func toCartResponse(carts CartService) cartResponse {
	items := carts.Items().Get()
	if items == nil {
		items = []domain.CartLine{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: carts.TotalItems(),
		TotalPrice: carts.TotalPrice().String(),
	}
}
