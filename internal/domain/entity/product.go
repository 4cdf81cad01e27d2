package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product referencia del catálogo químico con precio de lista.
type Product struct {
	ID           string
	Name         string
	NameFolded   string // Name normalizado para búsqueda (textutil.Fold)
	CASNumber    string // identificador CAS de la sustancia, ej. "7664-93-9"
	Presentation string // ej. "Tambor 200 L", "Saco 25 kg"
	UnitPrice    decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
