package handler

import "github.com/sportshop/shop-system/internal/core/domain"

// --- Request types ---

type credentialsRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// --- View payloads ---

// indexView is the landing/login page.
type indexView struct {
	Flash string `json:"flash,omitempty"`
}

// articleView is the catalog page, optionally carrying the quantities
// already in the caller's cart so a form can be pre-filled.
type articleView struct {
	Name       string               `json:"name"`
	Articles   []domain.CatalogItem `json:"articles"`
	Quantities domain.Cart          `json:"quantities,omitempty"`
}

// confirmationView is the priced cart recap.
type confirmationView struct {
	Name     string            `json:"name"`
	Articles []domain.CartLine `json:"articles"`
	Total    float64           `json:"total"`
}

// bankView reports the simulated payment outcome.
type bankView struct {
	Name    string `json:"name"`
	Blocked bool   `json:"blocked"`
}
