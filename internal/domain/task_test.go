package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	desc := "write the quarterly report"

	tests := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{
			name: "valid task",
			task: Task{Title: "Report", Description: &desc, Status: TaskStatusPending, Priority: TaskPriorityMedium},
		},
		{
			name: "valid task without priority",
			task: Task{Title: "Report", Status: TaskStatusDone},
		},
		{
			name:    "empty title",
			task:    Task{Status: TaskStatusPending},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "unknown status",
			task:    Task{Title: "Report", Status: "archived"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown priority",
			task:    Task{Title: "Report", Status: TaskStatusPending, Priority: "urgent"},
			wantErr: ErrInvalidPriority,
		},
		{
			name: "too many tags",
			task: Task{
				Title:  "Report",
				Status: TaskStatusPending,
				Tags:   []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
			},
			wantErr: ErrTooManyTags,
		},
		{
			name: "tag too long",
			task: Task{
				Title:  "Report",
				Status: TaskStatusPending,
				Tags:   []string{strings.Repeat("x", MaxTagLength+1)},
			},
			wantErr: ErrTagTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusAndPriorityValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, TaskStatusPending.IsValid())
	assert.True(t, TaskStatusDone.IsValid())
	assert.False(t, TaskStatus("cancelled").IsValid())

	assert.True(t, TaskPriorityLow.IsValid())
	assert.True(t, TaskPriorityMedium.IsValid())
	assert.True(t, TaskPriorityHigh.IsValid())
	assert.False(t, TaskPriority("critical").IsValid())
}
