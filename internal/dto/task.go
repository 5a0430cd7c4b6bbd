package dto

import "time"

// TaskRequest is the JSON body for POST /tasks and PUT /tasks/:id.
// All three fields are required; validation happens before any store call.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MessageResponse is the fixed-shape error body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}
