// Package ideas manages the idea records behind the authenticated part of
// VidJot: create, list, edit, delete. The idea pool is shared -- records
// carry no owner, so every logged-in user sees and edits the same list.
package ideas

import "time"

// Idea represents a single jotted-down idea.
type Idea struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Request DTOs (bound from HTTP requests) ---

// IdeaRequest holds the data submitted by the add and edit forms.
type IdeaRequest struct {
	Title   string `json:"title" form:"title"`
	Details string `json:"details" form:"details"`
}

// --- Service Input DTOs (passed from handler to service) ---

// CreateIdeaInput is the input for creating an idea.
type CreateIdeaInput struct {
	Title   string
	Details string
}

// UpdateIdeaInput is the input for replacing an idea's text. Edits are a
// full replace of title and details, never a partial patch.
type UpdateIdeaInput struct {
	Title   string
	Details string
}
