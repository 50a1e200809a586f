package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarkCompletedStampsFirstCompletion(t *testing.T) {
	todo := Todo{Title: "Task"}
	now := time.Now().UTC()

	todo.MarkCompleted(true, now)

	assert.True(t, todo.Completed)
	assert.NotNil(t, todo.CompletedAt)
	assert.Equal(t, now, *todo.CompletedAt)
}

func TestMarkCompletedNeverOverwritesStamp(t *testing.T) {
	todo := Todo{Title: "Task"}
	first := time.Now().UTC()

	todo.MarkCompleted(true, first)
	todo.MarkCompleted(false, first.Add(time.Hour))

	assert.False(t, todo.Completed)
	assert.Equal(t, first, *todo.CompletedAt)

	todo.MarkCompleted(true, first.Add(2*time.Hour))

	assert.True(t, todo.Completed)
	assert.Equal(t, first, *todo.CompletedAt)
}

func TestMarkCompletedLeavesStampUnsetWhenNotCompleting(t *testing.T) {
	todo := Todo{Title: "Task"}

	todo.MarkCompleted(false, time.Now().UTC())

	assert.False(t, todo.Completed)
	assert.Nil(t, todo.CompletedAt)
}
