package sqlite

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/taskdeck/taskdeck-api/internal/store"
)

// taskColumns are the columns selected for every task read.
var taskColumns = []string{
	"id", "title", "description", "status", "priority",
	"due_date", "tags", "user_id", "created_at", "updated_at",
}

// taskListQuery builds the SELECT for one page of a user's task listing.
// The WHERE clause always pins the owner and excludes soft-deleted rows;
// everything else is driven by the filter.
func taskListQuery(userID int64, filter store.TaskFilter, sortBy store.TaskSortBy, order store.TaskSortOrder) sq.SelectBuilder {
	b := sq.Select(taskColumns...).From("tasks")
	b = applyTaskFilter(b, userID, filter)
	return b.OrderBy(orderClause(sortBy, order))
}

// taskCountQuery builds the COUNT(*) twin of taskListQuery.
func taskCountQuery(userID int64, filter store.TaskFilter) sq.SelectBuilder {
	return applyTaskFilter(sq.Select("COUNT(*)").From("tasks"), userID, filter)
}

func applyTaskFilter(b sq.SelectBuilder, userID int64, filter store.TaskFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"user_id": userID}).Where("deleted_at IS NULL")

	if filter.Priority != nil {
		b = b.Where(sq.Eq{"priority": *filter.Priority})
	}

	if filter.DueDateFrom != nil {
		b = b.Where(sq.GtOrEq{"due_date": *filter.DueDateFrom})
	}

	if filter.DueDateTo != nil {
		b = b.Where(sq.LtOrEq{"due_date": *filter.DueDateTo})
	}

	if filter.Search != nil {
		term := "%" + *filter.Search + "%"
		b = b.Where(sq.Or{
			sq.Like{"title": term},
			sq.Like{"description": term},
		})
	}

	if len(filter.Tags) > 0 {
		// AND semantics: the task must carry every requested tag. Counting
		// distinct matches is enough because (task_id, tag) pairs are unique.
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filter.Tags)), ",")
		args := make([]interface{}, 0, len(filter.Tags)+1)
		for _, tag := range filter.Tags {
			args = append(args, tag)
		}
		args = append(args, len(filter.Tags))

		b = b.Where(sq.Expr(fmt.Sprintf(
			"id IN (SELECT task_id FROM task_tags WHERE tag IN (%s) GROUP BY task_id HAVING COUNT(DISTINCT tag) = ?)",
			placeholders,
		), args...))
	}

	return b
}

// orderClause renders the ORDER BY expression for the given sort key.
// Priority sorts by rank (high before medium before low when ascending)
// rather than alphabetically, and due-date sorting always pushes tasks
// without a due date to the end.
func orderClause(sortBy store.TaskSortBy, order store.TaskSortOrder) string {
	if !sortBy.IsValid() {
		sortBy = store.SortByCreatedAt
	}

	direction := "DESC"
	if order == store.SortAsc {
		direction = "ASC"
	}

	switch sortBy {
	case store.SortByPriority:
		return "CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END " + direction
	case store.SortByDueDate:
		return "due_date " + direction + " NULLS LAST"
	default:
		return string(sortBy) + " " + direction
	}
}
