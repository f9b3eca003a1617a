package interfaces

import (
	"context"

	"stonecraft/internal/domain/entities"
)

// ITaskRepository abstracts DynamoDB persistence for Task.
//
// SetCompleted returns the updated task, or a zero-value Task (ID == 0)
// when the id does not exist.
type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	List(ctx context.Context) ([]entities.Task, error)
	GetByID(ctx context.Context, id int64) (entities.Task, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (entities.Task, error)
}
