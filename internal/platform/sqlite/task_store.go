package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using an embedded
// SQLite database as the storage backend.
//
// The denormalized tags column and the task_tags join table are always
// written inside the same transaction, keeping the two representations
// consistent.
type TaskStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewTaskStore creates a new SQLite implementation of the TaskStore
// interface. If logger is nil, the default logger is used.
func NewTaskStore(db *sqlx.DB, logger *slog.Logger) *TaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// taskRow mirrors a tasks table row.
type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	DueDate     sql.NullString `db:"due_date"`
	Tags        sql.NullString `db:"tags"`
	UserID      int64          `db:"user_id"`
	CreatedAt   string         `db:"created_at"`
	UpdatedAt   string         `db:"updated_at"`
}

func (r taskRow) toDomain() (domain.Task, error) {
	task := domain.Task{
		ID:       r.ID,
		Title:    r.Title,
		Status:   domain.TaskStatus(r.Status),
		Priority: domain.TaskPriority(r.Priority),
		UserID:   r.UserID,
	}

	if r.Description.Valid {
		task.Description = &r.Description.String
	}
	if r.DueDate.Valid {
		task.DueDate = &r.DueDate.String
	}

	if r.Tags.Valid {
		if err := json.Unmarshal([]byte(r.Tags.String), &task.Tags); err != nil {
			return domain.Task{}, fmt.Errorf("failed to decode tags column for task %d: %w", r.ID, err)
		}
	}

	var err error
	if task.CreatedAt, err = parseTime(r.CreatedAt); err != nil {
		return domain.Task{}, fmt.Errorf("failed to parse created_at for task %d: %w", r.ID, err)
	}
	if task.UpdatedAt, err = parseTime(r.UpdatedAt); err != nil {
		return domain.Task{}, fmt.Errorf("failed to parse updated_at for task %d: %w", r.ID, err)
	}

	return task, nil
}

// dedupeTags returns tags with duplicates removed, preserving first-seen
// order. The join table's (task_id, tag) uniqueness makes duplicates illegal,
// and the tag AND-filter counts on the two representations agreeing.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// encodeTags renders the denormalized tags column value: a JSON array, or
// NULL for an empty set.
func encodeTags(tags []string) (interface{}, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(raw), nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	task.Tags = dedupeTags(task.Tags)

	tagsValue, err := encodeTags(task.Tags)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, priority, due_date, tags, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, task.Status, task.Priority,
		task.DueDate, tagsValue, task.UserID, formatTime(now), formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", MapError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new task id: %w", err)
	}
	task.ID = id

	if err := insertTagRows(ctx, tx, id, task.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task creation: %w", err)
	}

	s.logger.DebugContext(ctx, "task created",
		slog.Int64("task_id", id),
		slog.Int64("user_id", task.UserID))

	return nil
}

func insertTagRows(ctx context.Context, tx *sqlx.Tx, taskID int64, tags []string) error {
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_tags (task_id, tag) VALUES (?, ?)", taskID, tag); err != nil {
			return fmt.Errorf("failed to insert tag row: %w", MapError(err))
		}
	}
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id, userID int64) (*domain.Task, error) {
	query, args, err := sq.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": id, "user_id": userID}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build task query: %w", err)
	}

	var row taskRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", MapError(err))
	}

	task, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update implements store.TaskStore.Update
//
// Only columns whose field is present in upd are touched; updated_at is
// refreshed unconditionally. When upd.TagsSet, the tag rows and the tags
// column are replaced together in one transaction.
func (s *TaskStore) Update(ctx context.Context, id, userID int64, upd store.TaskUpdate) error {
	if err := validateUpdate(upd); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	b := sq.Update("tasks").Set("updated_at", formatTime(time.Now().UTC()))

	if upd.Title != nil {
		b = b.Set("title", *upd.Title)
	}
	if upd.Status != nil {
		b = b.Set("status", *upd.Status)
	}
	if upd.Priority != nil {
		b = b.Set("priority", *upd.Priority)
	}
	if upd.DescriptionSet {
		b = b.Set("description", upd.Description)
	}
	if upd.DueDateSet {
		b = b.Set("due_date", upd.DueDate)
	}

	tags := dedupeTags(upd.Tags)
	if upd.TagsSet {
		tagsValue, err := encodeTags(tags)
		if err != nil {
			return err
		}
		b = b.Set("tags", tagsValue)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", MapError(err))
	}

	if err := checkRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	if upd.TagsSet {
		// Full replacement, not a diff.
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
			return fmt.Errorf("failed to clear tag rows: %w", MapError(err))
		}
		if err := insertTagRows(ctx, tx, id, tags); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task update: %w", err)
	}

	return nil
}

func validateUpdate(upd store.TaskUpdate) error {
	if upd.Title != nil && *upd.Title == "" {
		return domain.ErrEmptyTitle
	}
	if upd.Status != nil && !upd.Status.IsValid() {
		return domain.ErrInvalidStatus
	}
	if upd.Priority != nil && !upd.Priority.IsValid() {
		return domain.ErrInvalidPriority
	}
	if upd.TagsSet {
		return domain.ValidateTags(upd.Tags)
	}
	return nil
}

// Delete implements store.TaskStore.Delete
//
// The row is kept; deleted_at marks it invisible to every other query.
func (s *TaskStore) Delete(ctx context.Context, id, userID int64) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET deleted_at = ? WHERE id = ? AND user_id = ? AND deleted_at IS NULL",
		formatTime(time.Now().UTC()), id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", MapError(err))
	}

	return checkRowsAffected(result, store.ErrTaskNotFound)
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context, userID int64, filter store.TaskFilter, sortBy store.TaskSortBy, order store.TaskSortOrder, page, limit int) ([]domain.Task, error) {
	if page < 1 {
		page = 1
	}

	query, args, err := taskListQuery(userID, filter, sortBy, order).
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", MapError(err))
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Count implements store.TaskStore.Count
func (s *TaskStore) Count(ctx context.Context, userID int64, filter store.TaskFilter) (int64, error) {
	query, args, err := taskCountQuery(userID, filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := s.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", MapError(err))
	}

	return total, nil
}

// ListTags implements store.TaskStore.ListTags
func (s *TaskStore) ListTags(ctx context.Context, userID int64) ([]string, error) {
	var tags []string
	err := s.db.SelectContext(ctx, &tags,
		`SELECT DISTINCT tt.tag
		 FROM task_tags tt
		 JOIN tasks t ON t.id = tt.task_id
		 WHERE t.user_id = ? AND t.deleted_at IS NULL
		 ORDER BY tt.tag`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", MapError(err))
	}

	return tags, nil
}
