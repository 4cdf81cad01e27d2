package dto

import "time"

// CreateDistributorRequest alta de distribuidor. Crea también la cuenta de
// usuario emparejada (rol DISTRIBUTOR) en la misma transacción.
type CreateDistributorRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
}

// UpdateDistributorRequest actualización de distribuidor. Un cambio de email
// se propaga a la cuenta de usuario emparejada.
type UpdateDistributorRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Status      string `json:"status"`
}

// DistributorResponse salida de un distribuidor.
type DistributorResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	ContactName string    `json:"contactName"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
