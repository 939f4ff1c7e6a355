package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func TestTaskListQueryBaseConstraints(t *testing.T) {
	t.Parallel()

	query, args, err := taskListQuery(7, store.TaskFilter{}, store.SortByCreatedAt, store.SortDesc).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "user_id = ?")
	assert.Contains(t, query, "deleted_at IS NULL")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestTaskListQueryFilters(t *testing.T) {
	t.Parallel()

	filter := store.TaskFilter{
		Priority:    priorityPtr(domain.TaskPriorityHigh),
		DueDateFrom: strPtr("2026-01-01"),
		DueDateTo:   strPtr("2026-12-31"),
		Search:      strPtr("report"),
	}

	query, args, err := taskListQuery(1, filter, store.SortByCreatedAt, store.SortDesc).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "priority = ?")
	assert.Contains(t, query, "due_date >= ?")
	assert.Contains(t, query, "due_date <= ?")
	assert.Contains(t, query, "(title LIKE ? OR description LIKE ?)")

	// user_id, priority, from, to, two search terms
	require.Len(t, args, 6)
	assert.Equal(t, "%report%", args[4])
	assert.Equal(t, "%report%", args[5])
}

func TestTaskListQueryTagFilter(t *testing.T) {
	t.Parallel()

	filter := store.TaskFilter{Tags: []string{"work", "urgent"}}

	query, args, err := taskListQuery(1, filter, store.SortByCreatedAt, store.SortDesc).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "id IN (SELECT task_id FROM task_tags WHERE tag IN (?,?) GROUP BY task_id HAVING COUNT(DISTINCT tag) = ?)")

	// user_id, both tags, then the tag count
	require.Len(t, args, 4)
	assert.Equal(t, "work", args[1])
	assert.Equal(t, "urgent", args[2])
	assert.Equal(t, 2, args[3])
}

func TestOrderClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sortBy store.TaskSortBy
		order  store.TaskSortOrder
		want   string
	}{
		{
			name:   "priority ascending uses rank order",
			sortBy: store.SortByPriority,
			order:  store.SortAsc,
			want:   "CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END ASC",
		},
		{
			name:   "priority descending uses rank order",
			sortBy: store.SortByPriority,
			order:  store.SortDesc,
			want:   "CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END DESC",
		},
		{
			name:   "due date ascending keeps nulls last",
			sortBy: store.SortByDueDate,
			order:  store.SortAsc,
			want:   "due_date ASC NULLS LAST",
		},
		{
			name:   "due date descending keeps nulls last",
			sortBy: store.SortByDueDate,
			order:  store.SortDesc,
			want:   "due_date DESC NULLS LAST",
		},
		{
			name:   "title ascending",
			sortBy: store.SortByTitle,
			order:  store.SortAsc,
			want:   "title ASC",
		},
		{
			name:   "unknown sort key falls back to created_at descending",
			sortBy: store.TaskSortBy("bogus"),
			order:  store.SortDesc,
			want:   "created_at DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sortBy, tt.order))
		})
	}
}

func TestTaskCountQueryMatchesListFilter(t *testing.T) {
	t.Parallel()

	filter := store.TaskFilter{Priority: priorityPtr(domain.TaskPriorityLow)}

	query, args, err := taskCountQuery(3, filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT COUNT(*) FROM tasks")
	assert.Contains(t, query, "user_id = ?")
	assert.Contains(t, query, "deleted_at IS NULL")
	assert.Contains(t, query, "priority = ?")
	assert.NotContains(t, query, "ORDER BY")
	assert.Equal(t, []interface{}{int64(3), domain.TaskPriorityLow}, args)
}
