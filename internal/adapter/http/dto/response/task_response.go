package response

import (
	"time"

	"stonecraft/internal/domain/entities"
)

type TaskResponse struct {
	ID         int64     `json:"id"`
	EstimateID int64     `json:"estimateId"`
	DueDate    time.Time `json:"dueDate"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		ID:         t.ID,
		EstimateID: t.EstimateID,
		DueDate:    t.DueDate,
		Completed:  t.Completed,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func FromTasks(ts []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTask(t))
	}
	return out
}
