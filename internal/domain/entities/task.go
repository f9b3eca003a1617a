package entities

import "time"

// Task is a follow-up reminder tied to a sent estimate.
//
// Storage model (DynamoDB):
//   - PK: id (number, allocated from the counters table)
//
// EstimateID is a soft reference: deleting the referenced estimate does not
// cascade here, and task creation does not check the estimate exists.
// Completed is a one-way flag in the exposed workflow (false -> true).
type Task struct {
	ID         int64     `json:"id"`
	EstimateID int64     `json:"estimateId"`
	DueDate    time.Time `json:"dueDate"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
