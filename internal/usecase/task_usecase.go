package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"stonecraft/internal/domain/entities"
	"stonecraft/internal/usecase/interfaces"
)

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrInvalidTaskID         = errors.New("invalid task id")
	ErrInvalidTaskEstimateID = errors.New("invalid task estimate id")
	ErrInvalidTaskDueDate    = errors.New("invalid task due date")
)

// ITaskUseCase is the task side of the lifecycle controller.
//
// Create covers both the manual POST /tasks path and the automatic
// follow-up created by the estimate save path. The estimate reference is
// deliberately soft: existence is not checked and estimate deletion does
// not cascade here.
type ITaskUseCase interface {
	List(ctx context.Context) ([]entities.Task, error)
	Create(ctx context.Context, estimateID int64, dueDate time.Time, completed bool) (entities.Task, error)
	MarkCompleted(ctx context.Context, id int64) (entities.Task, error)
}

type TaskUseCase struct {
	repo interfaces.ITaskRepository
	ids  interfaces.ISequenceAllocator
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(repo interfaces.ITaskRepository, ids interfaces.ISequenceAllocator) *TaskUseCase {
	return &TaskUseCase{repo: repo, ids: ids}
}

func (u *TaskUseCase) List(ctx context.Context) ([]entities.Task, error) {
	return u.repo.List(ctx)
}

func (u *TaskUseCase) Create(ctx context.Context, estimateID int64, dueDate time.Time, completed bool) (entities.Task, error) {
	if estimateID <= 0 {
		return entities.Task{}, ErrInvalidTaskEstimateID
	}
	if dueDate.IsZero() {
		return entities.Task{}, ErrInvalidTaskDueDate
	}

	id, err := u.ids.Next(ctx, interfaces.SequenceTasks)
	if err != nil {
		return entities.Task{}, err
	}

	now := time.Now().UTC()
	t := entities.Task{
		ID:         id,
		EstimateID: estimateID,
		DueDate:    dueDate.UTC(),
		Completed:  completed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	log.Printf("[task][usecase] created task_id=%d estimate_id=%d completed=%t", created.ID, created.EstimateID, created.Completed)
	return created, nil
}

// MarkCompleted flips the task to completed. The transition is one-way and
// idempotent: completing an already completed task succeeds without change.
func (u *TaskUseCase) MarkCompleted(ctx context.Context, id int64) (entities.Task, error) {
	if id <= 0 {
		return entities.Task{}, ErrInvalidTaskID
	}

	updated, err := u.repo.SetCompleted(ctx, id, true)
	if err != nil {
		return entities.Task{}, err
	}
	if updated.ID == 0 {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}
