package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest alta/edición de una referencia del catálogo. UnitPrice y
// Active son punteros para distinguir "no enviado" de cero/false: un precio 0
// es un valor legítimo en una edición.
type SaveProductRequest struct {
	Name         string           `json:"name"`
	CASNumber    string           `json:"casNumber"`
	Presentation string           `json:"presentation"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Active       *bool            `json:"active"`
}

// ProductResponse salida de una referencia del catálogo.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CASNumber    string          `json:"casNumber"`
	Presentation string          `json:"presentation"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
