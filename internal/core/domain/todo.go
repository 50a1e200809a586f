package domain

import (
	"errors"
	"time"
)

var ErrTitleRequired = errors.New("title is required")

type Todo struct {
	ID          int64
	Title       string `validate:"required,max=200"`
	Description *string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// MarkCompleted applies the completed flag and stamps CompletedAt the
// first time the todo enters the completed state. The stamp is never
// cleared or overwritten, even if the todo is reopened and completed
// again later.
func (t *Todo) MarkCompleted(completed bool, now time.Time) {
	if completed && t.CompletedAt == nil {
		t.CompletedAt = &now
	}
	t.Completed = completed
}

func (t *Todo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"title":        t.Title,
		"description":  t.Description,
		"completed":    t.Completed,
		"completed_at": t.CompletedAt,
	}
}
