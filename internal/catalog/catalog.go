// Package catalog exposes the static read-only product list the cart
// references by id.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"shopcart-replica/internal/domain"

	"github.com/shopspring/decimal"
)

// Products returns the built-in product list.
func Products() []domain.Product {
	price := decimal.NewFromInt(92)
	return []domain.Product{
		{ID: 1, Name: "Green Hat", Price: price, Image: "assets/images/green_hat.jpg"},
		{ID: 2, Name: "T shirt monky", Price: price, Image: "assets/images/T_shirt_man.jpg"},
		{ID: 3, Name: "T shirt white", Price: price, Image: "assets/images/T_shirt_white.jpg"},
		{ID: 4, Name: "Shoes vans", Price: price, Image: "assets/images/shoes_vans.jpg"},
		{ID: 5, Name: "Classic jeans", Price: price, Image: "assets/images/classic_jeans.jpg"},
		{ID: 6, Name: "Men`s pants", Price: price, Image: "assets/images/mens_panel.jpg"},
		{ID: 7, Name: "First step shoes", Price: price, Image: "assets/images/first_step_shoes.jpg"},
	}
}

// Load reads a product list from a JSON file, falling back to the built-in
// list when path is empty.
func Load(path string) ([]domain.Product, error) {
	if path == "" {
		return Products(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return products, nil
}

// ByID locates a product in products by id.
func ByID(products []domain.Product, id int) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
