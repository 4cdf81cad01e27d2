package dto

import "time"

// CreateDocumentRequest metadatos del documento subido (el PDF llega como multipart).
type CreateDocumentRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// AssignDocumentRequest asignación masiva de un documento a distribuidores.
type AssignDocumentRequest struct {
	DistributorIDs []string `json:"distributorIds"`
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	ContentType string    `json:"contentType"`
	UploadedBy  string    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
