package entity

import "time"

// News comunicado publicado por los administradores del portal.
type News struct {
	ID          string
	Title       string
	Body        string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
