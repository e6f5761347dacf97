package client

import (
	"context"

	"taskboard/models"
)

// Column is one of the four fixed status columns on the board.
type Column struct {
	Status models.Status
	Tasks  []models.Task
}

func (col Column) Count() int {
	return len(col.Tasks)
}

// Board is the board view over one project's tasks. Card position is
// derived from the task list on every render: a task sits in the column
// matching its status, nothing else is persisted.
type Board struct {
	cache     *Cache
	projectID uint
}

func NewBoard(cache *Cache, projectID uint) *Board {
	return &Board{cache: cache, projectID: projectID}
}

// Columns returns the four columns in canonical order, each holding the
// project's tasks filtered by that status. Tasks without a status (or
// with a status outside the canonical four) appear in no column.
func (b *Board) Columns(ctx context.Context) ([]Column, error) {
	tasks, err := b.cache.GetTasks(ctx, b.projectID)
	if err != nil {
		return nil, err
	}
	return PartitionByStatus(tasks), nil
}

func PartitionByStatus(tasks []models.Task) []Column {
	columns := make([]Column, 0, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		col := Column{Status: status}
		for _, task := range tasks {
			if task.Status != nil && *task.Status == status {
				col.Tasks = append(col.Tasks, task)
			}
		}
		columns = append(columns, col)
	}
	return columns
}

// Move drops a card onto a column: the task id and the target column's
// status become a status-update mutation.
func (b *Board) Move(ctx context.Context, taskID uint, status models.Status) error {
	_, err := b.cache.UpdateTaskStatus(ctx, taskID, string(status))
	return err
}
