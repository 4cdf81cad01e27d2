package dto

import "time"

// NotificationResponse salida de una notificación del distribuidor.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnreadCountResponse contador de notificaciones sin leer.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
