package domain

import "time"

// Site representa um tenant (restaurante/loja) que escopa pedidos e relatórios
type Site struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	DisplayName string    `json:"name"`
	CreatedAt   time.Time `json:"-"`
}
