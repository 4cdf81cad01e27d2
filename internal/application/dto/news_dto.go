package dto

import "time"

// SaveNewsRequest alta/edición de un comunicado.
type SaveNewsRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewsResponse salida de un comunicado.
type NewsResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
