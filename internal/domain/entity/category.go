package entity

import "time"

// Category groups garage items. Name is unique (case-insensitive).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
