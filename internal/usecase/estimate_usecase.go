package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"stonecraft/internal/domain/entities"
	"stonecraft/internal/domain/pricing"
	"stonecraft/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidEstimateInput = errors.New("invalid estimate parameters")
	ErrInvalidStatus        = errors.New("invalid estimate status")
)

// EstimateInput is the full parameter set submitted on create and update.
// Cost is intentionally absent: the stored cost is always the pricing
// engine's output for these parameters at the moment of save, so the
// snapshot invariant holds by construction.
type EstimateInput struct {
	Material       string
	Length         float64
	Width          float64
	Thickness      float64
	EdgeFinish     string
	MaterialCost   float64
	EdgeFinishCost float64
	LaborCost      float64
	TaxRate        float64
	Discount       float64
	Status         entities.EstimateStatus
}

func (in EstimateInput) pricing() pricing.Input {
	return pricing.Input{
		Length:         in.Length,
		Width:          in.Width,
		Thickness:      in.Thickness,
		MaterialCost:   in.MaterialCost,
		EdgeFinishCost: in.EdgeFinishCost,
		LaborCost:      in.LaborCost,
		TaxRate:        in.TaxRate,
		Discount:       in.Discount,
	}
}

// IEstimateUseCase is the estimate side of the lifecycle controller.
//
// Side-effect rule: a submitted status of Sent on the Create or Update save
// path creates one follow-up task (no dedup across re-saves of an already
// Sent estimate). Duplicate never creates a task, and the duplicate keeps
// the source status, including Sent.
type IEstimateUseCase interface {
	List(ctx context.Context) ([]entities.Estimate, error)
	Create(ctx context.Context, in EstimateInput) (entities.Estimate, error)
	Update(ctx context.Context, id int64, in EstimateInput) (entities.Estimate, error)
	Delete(ctx context.Context, id int64) error
	Duplicate(ctx context.Context, id int64) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo  interfaces.IEstimateRepository
	tasks ITaskUseCase
	ids   interfaces.ISequenceAllocator
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, tasks ITaskUseCase, ids interfaces.ISequenceAllocator) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, tasks: tasks, ids: ids}
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.List(ctx)
}

func (u *EstimateUseCase) Create(ctx context.Context, in EstimateInput) (entities.Estimate, error) {
	status, cost, err := u.resolve(in)
	if err != nil {
		return entities.Estimate{}, err
	}

	id, err := u.ids.Next(ctx, interfaces.SequenceEstimates)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	e := buildEstimate(id, in, cost, status, now, now)

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}

	u.maybeCreateFollowUp(ctx, created)
	return created, nil
}

func (u *EstimateUseCase) Update(ctx context.Context, id int64, in EstimateInput) (entities.Estimate, error) {
	if id <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	status, cost, err := u.resolve(in)
	if err != nil {
		return entities.Estimate{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if existing.ID == 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	e := buildEstimate(id, in, cost, status, existing.CreatedAt, time.Now().UTC())

	updated, err := u.repo.Replace(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	// The trigger looks at the submitted status only: re-saving an
	// already Sent estimate creates another task.
	u.maybeCreateFollowUp(ctx, updated)
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidEstimateID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	// No cascade: tasks keep their estimateId reference.
	return nil
}

func (u *EstimateUseCase) Duplicate(ctx context.Context, id int64) (entities.Estimate, error) {
	if id <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	source, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if source.ID == 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	newID, err := u.ids.Next(ctx, interfaces.SequenceEstimates)
	if err != nil {
		return entities.Estimate{}, err
	}

	copy := source
	copy.ID = newID
	now := time.Now().UTC()
	copy.CreatedAt = now
	copy.UpdatedAt = now

	// The copy keeps the source status and the stored cost snapshot, and
	// duplication never creates a follow-up task even when the source is
	// Sent. Flagged for product review; preserved as the original behaves.
	return u.repo.Create(ctx, copy)
}

// resolve applies the status default and prices the parameter set.
func (u *EstimateUseCase) resolve(in EstimateInput) (entities.EstimateStatus, float64, error) {
	status := in.Status
	if status == "" {
		status = entities.EstimateStatusPending
	}
	if !entities.ValidEstimateStatus(status) {
		return "", 0, ErrInvalidStatus
	}

	cost, err := pricing.Compute(in.pricing())
	if err != nil {
		return "", 0, ErrInvalidEstimateInput
	}
	return status, cost, nil
}

// maybeCreateFollowUp creates the automatic follow-up task for a Sent save.
// A failure here does not undo the already-confirmed estimate write; it is
// logged and the save still succeeds, matching the original workflow.
func (u *EstimateUseCase) maybeCreateFollowUp(ctx context.Context, e entities.Estimate) {
	if e.Status != entities.EstimateStatusSent {
		return
	}

	task, err := u.tasks.Create(ctx, e.ID, time.Now().UTC(), false)
	if err != nil {
		log.Printf("[estimate][usecase] follow-up task create failed estimate_id=%d err=%v", e.ID, err)
		return
	}
	log.Printf("[estimate][usecase] follow-up task created estimate_id=%d task_id=%d", e.ID, task.ID)
}

func buildEstimate(id int64, in EstimateInput, cost float64, status entities.EstimateStatus, createdAt, updatedAt time.Time) entities.Estimate {
	return entities.Estimate{
		ID:             id,
		Material:       in.Material,
		Length:         in.Length,
		Width:          in.Width,
		Thickness:      in.Thickness,
		EdgeFinish:     in.EdgeFinish,
		MaterialCost:   in.MaterialCost,
		EdgeFinishCost: in.EdgeFinishCost,
		LaborCost:      in.LaborCost,
		TaxRate:        in.TaxRate,
		Discount:       in.Discount,
		Cost:           cost,
		Status:         status,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
