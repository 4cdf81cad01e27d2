package entity

import "time"

// Tipos de notificación.
const (
	NotificationDocument = "DOCUMENT"
	NotificationNews     = "NEWS"
	NotificationSystem   = "SYSTEM"
)

// Notification aviso dirigido a un distribuidor (nuevo documento, comunicado, etc.).
type Notification struct {
	ID            string
	DistributorID string
	Type          string // DOCUMENT, NEWS, SYSTEM
	Title         string
	Message       string
	Read          bool
	CreatedAt     time.Time
}
