package store

import (
	"context"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskSortBy enumerates the columns a task listing may be ordered by.
type TaskSortBy string

const (
	SortByTitle     TaskSortBy = "title"
	SortByDueDate   TaskSortBy = "due_date"
	SortByPriority  TaskSortBy = "priority"
	SortByCreatedAt TaskSortBy = "created_at"
)

// IsValid reports whether the sort key is one of the known values.
func (s TaskSortBy) IsValid() bool {
	switch s {
	case SortByTitle, SortByDueDate, SortByPriority, SortByCreatedAt:
		return true
	}
	return false
}

// TaskSortOrder enumerates sort directions.
type TaskSortOrder string

const (
	SortAsc  TaskSortOrder = "asc"
	SortDesc TaskSortOrder = "desc"
)

// IsValid reports whether the sort order is one of the known values.
func (s TaskSortOrder) IsValid() bool {
	return s == SortAsc || s == SortDesc
}

// TaskFilter carries the optional listing filters. Nil pointer fields and an
// empty Tags slice mean "no constraint".
type TaskFilter struct {
	Priority    *domain.TaskPriority
	DueDateFrom *string
	DueDateTo   *string
	Tags        []string // AND semantics: every listed tag must be present
	Search      *string  // case-insensitive substring over title and description
}

// TaskUpdate describes a partial update. For fields that cannot be null
// (Title, Status, Priority) a nil pointer means "leave unchanged". For
// nullable fields the *Set flag records whether the field was present in the
// input at all, so that an explicit null (or empty tag list) can be told apart
// from an omitted field.
type TaskUpdate struct {
	Title    *string
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority

	Description    *string
	DescriptionSet bool

	DueDate    *string
	DueDateSet bool

	Tags    []string
	TagsSet bool
}

// Empty reports whether the update would change no columns.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Status == nil && u.Priority == nil &&
		!u.DescriptionSet && !u.DueDateSet && !u.TagsSet
}

// TaskStore defines the interface for task data persistence.
//
// Every task-scoped operation takes both the task ID and the owning user ID;
// a mismatch on either is reported as ErrTaskNotFound. Soft-deleted rows are
// invisible to all methods.
type TaskStore interface {
	// Create inserts the task and its tag rows in one transaction, assigning
	// ID, CreatedAt and UpdatedAt. Priority defaults to medium when empty.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a live task owned by userID.
	// Returns ErrTaskNotFound otherwise.
	GetByID(ctx context.Context, id, userID int64) (*domain.Task, error)

	// Update applies a partial update; only fields present in upd are
	// touched, UpdatedAt is always refreshed. When upd.TagsSet the tag rows
	// are fully replaced (an empty set stores the tags column as null).
	// Returns ErrTaskNotFound if the task is missing, deleted, or foreign.
	Update(ctx context.Context, id, userID int64, upd TaskUpdate) error

	// Delete soft-deletes the task by stamping deleted_at.
	// Returns ErrTaskNotFound if no live row matched.
	Delete(ctx context.Context, id, userID int64) error

	// List returns one page of the user's live tasks after filtering and
	// sorting. page is 1-based; limit is the page size.
	List(ctx context.Context, userID int64, filter TaskFilter, sortBy TaskSortBy, order TaskSortOrder, page, limit int) ([]domain.Task, error)

	// Count returns the total number of live tasks matching the filter.
	Count(ctx context.Context, userID int64, filter TaskFilter) (int64, error)

	// ListTags returns the distinct tag values across the user's live tasks,
	// alphabetically ordered.
	ListTags(ctx context.Context, userID int64) ([]string, error)
}
