package domain

import (
	"errors"
	"fmt"
	"time"
)

// MaxTagsPerTask is the upper bound on the number of tags a task may carry.
const MaxTagsPerTask = 10

// MaxTagLength is the upper bound on the length of a single tag value.
const MaxTagLength = 50

// Common task validation errors
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrTooManyTags     = fmt.Errorf("maximum %d tags allowed per task", MaxTagsPerTask)
	ErrTagTooLong      = fmt.Errorf("tag cannot exceed %d characters", MaxTagLength)
)

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusDone
}

// TaskPriority enumerates the priority levels of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid reports whether the priority is one of the known values.
func (p TaskPriority) IsValid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

// Task represents a single task owned by a user.
//
// DueDate is kept as an ISO-8601 string rather than a time.Time: the service
// stores and compares it lexicographically, which is correct for ISO-8601 and
// avoids lossy round-trips through the database.
//
// Tags is the denormalized copy of the task's tag set; a nil slice serializes
// as JSON null and means "no tags". The normalized task_tags rows are kept in
// lockstep by the store.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *string      `json:"due_date"`
	Tags        []string     `json:"tags"`
	UserID      int64        `json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}

	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}

	if t.Priority != "" && !t.Priority.IsValid() {
		return ErrInvalidPriority
	}

	return ValidateTags(t.Tags)
}

// ValidateTags checks a tag set against the per-task count and per-tag
// length limits.
func ValidateTags(tags []string) error {
	if len(tags) > MaxTagsPerTask {
		return ErrTooManyTags
	}

	for _, tag := range tags {
		if len(tag) > MaxTagLength {
			return ErrTagTooLong
		}
	}

	return nil
}
