package api

import (
	"encoding/json"
	"fmt"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the public user shape; the password digest never leaves
// the store layer.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateTaskRequest defines the payload for task creation.
type CreateTaskRequest struct {
	Title       string   `json:"title"       validate:"required,min=1"`
	Description *string  `json:"description"`
	Status      string   `json:"status"      validate:"required,oneof=pending done"`
	Priority    *string  `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *string  `json:"due_date"`
	Tags        []string `json:"tags"        validate:"omitempty,dive,max=50"`
}

// UpdateTaskRequest defines the payload for partial task updates.
//
// Partial semantics require telling an omitted field apart from an explicit
// null, which the usual pointer decoding cannot do, so UnmarshalJSON records
// presence per field. Title, Status and Priority cannot be set to null, so a
// nil pointer simply means "leave unchanged".
type UpdateTaskRequest struct {
	Title    *string
	Status   *string
	Priority *string

	Description    *string
	DescriptionSet bool

	DueDate    *string
	DueDateSet bool

	Tags    []string
	TagsSet bool
}

// UnmarshalJSON implements json.Unmarshaler with per-field presence tracking.
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["title"]; ok {
		if err := json.Unmarshal(v, &r.Title); err != nil {
			return fmt.Errorf("invalid title: %w", err)
		}
	}

	if v, ok := raw["status"]; ok {
		if err := json.Unmarshal(v, &r.Status); err != nil {
			return fmt.Errorf("invalid status: %w", err)
		}
	}

	if v, ok := raw["priority"]; ok {
		if err := json.Unmarshal(v, &r.Priority); err != nil {
			return fmt.Errorf("invalid priority: %w", err)
		}
	}

	if v, ok := raw["description"]; ok {
		r.DescriptionSet = true
		if err := json.Unmarshal(v, &r.Description); err != nil {
			return fmt.Errorf("invalid description: %w", err)
		}
	}

	if v, ok := raw["due_date"]; ok {
		r.DueDateSet = true
		if err := json.Unmarshal(v, &r.DueDate); err != nil {
			return fmt.Errorf("invalid due_date: %w", err)
		}
	}

	if v, ok := raw["tags"]; ok {
		r.TagsSet = true
		if string(v) != "null" {
			tags := []string{}
			if err := json.Unmarshal(v, &tags); err != nil {
				return fmt.Errorf("invalid tags: %w", err)
			}
			r.Tags = tags
		}
	}

	return nil
}

// Validate checks the fields that are present. Returns a user-facing
// message when a field is invalid, or an empty string.
func (r *UpdateTaskRequest) Validate() string {
	if r.Title != nil && *r.Title == "" {
		return "Title cannot be empty"
	}

	if r.Status != nil && !domain.TaskStatus(*r.Status).IsValid() {
		return "Status must be one of: pending, done"
	}

	if r.Priority != nil && !domain.TaskPriority(*r.Priority).IsValid() {
		return "Priority must be one of: low, medium, high"
	}

	if r.TagsSet {
		if len(r.Tags) > domain.MaxTagsPerTask {
			return fmt.Sprintf("Maximum %d tags allowed per task", domain.MaxTagsPerTask)
		}
		for _, tag := range r.Tags {
			if len(tag) > domain.MaxTagLength {
				return fmt.Sprintf("Tags cannot exceed %d characters", domain.MaxTagLength)
			}
		}
	}

	return ""
}

// Pagination describes the position of one listing page within the full
// result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// TaskListResponse is the envelope for the task listing endpoint; it is
// returned even when the result set is empty.
type TaskListResponse struct {
	Data       []domain.Task `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// TagsResponse is the envelope for the tag listing endpoint.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
