package entity

import "time"

// Document ficha técnica / certificado PDF subido por un administrador.
type Document struct {
	ID          string
	Title       string
	Description string
	FileName    string // nombre original del archivo subido
	FilePath    string // ruta relativa dentro del storage local
	FileSize    int64
	ContentType string // siempre application/pdf
	UploadedBy  string // user id del admin
	CreatedAt   time.Time
}

// DocumentAssignment asignación de un documento a un distribuidor.
type DocumentAssignment struct {
	DocumentID    string
	DistributorID string
	AssignedAt    time.Time
}
