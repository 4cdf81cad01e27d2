package entity

import "time"

// Distributor organización distribuidora con acceso al portal.
//
// El par Distributor↔User se mantiene por coincidencia de email, no por FK:
// al actualizar el email del distribuidor hay que propagarlo a la fila de
// users dentro de la misma transacción.
type Distributor struct {
	ID                string
	CompanyName       string
	CompanyNameFolded string // CompanyName normalizado para búsqueda (textutil.Fold)
	Email             string
	ContactName       string
	Phone             string
	City              string
	Status            string // ACTIVE, INACTIVE
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
