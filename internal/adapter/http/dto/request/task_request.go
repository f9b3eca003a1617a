package request

import "time"

// TaskRequest is the POST /tasks payload.
type TaskRequest struct {
	EstimateID int64     `json:"estimateId" binding:"required"`
	DueDate    time.Time `json:"dueDate" binding:"required"`
	Completed  bool      `json:"completed"`
}

// TaskCompletionRequest is the PUT /tasks/{id}/update payload. Completed is
// a pointer so an explicit false can be told apart from a missing field;
// the workflow only ever moves tasks to completed.
type TaskCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
