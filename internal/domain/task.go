package domain

import "time"

// Task is the domain entity for a task record.
// IDs are opaque strings assigned by the store; nothing above the repo
// layer interprets them.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
