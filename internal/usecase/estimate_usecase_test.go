package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	ucmocks "stonecraft/internal/adapter/http/handlers/mocks"
	"stonecraft/internal/domain/entities"
	"stonecraft/internal/usecase"
	"stonecraft/internal/usecase/interfaces"
	mock_interfaces "stonecraft/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// Parameter set from the scenario priced at 292: volume=100,
// subtotal=100*2+50+20=270, tax=27, minus discount 5.
func validInput() usecase.EstimateInput {
	return usecase.EstimateInput{
		Material:       "Granite",
		Length:         10,
		Width:          5,
		Thickness:      2,
		EdgeFinish:     "Polished",
		MaterialCost:   2,
		EdgeFinishCost: 20,
		LaborCost:      50,
		TaxRate:        10,
		Discount:       5,
	}
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := usecase.NewEstimateUseCase(nil, nil, nil)
		in := validInput()
		in.Status = "Archived"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, usecase.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("invalid pricing input", func(t *testing.T) {
		uc := usecase.NewEstimateUseCase(nil, nil, nil)
		in := validInput()
		in.Length = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, usecase.ErrInvalidEstimateInput) {
			t.Fatalf("expected ErrInvalidEstimateInput, got %v", err)
		}
	})

	t.Run("allocator error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ids := mock_interfaces.NewMockISequenceAllocator(ctrl)
		uc := usecase.NewEstimateUseCase(nil, nil, ids)

		ids.EXPECT().Next(gomock.Any(), interfaces.SequenceEstimates).Return(int64(0), errors.New("db"))

		_, err := uc.Create(context.Background(), validInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ids := mock_interfaces.NewMockISequenceAllocator(ctrl)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := usecase.NewEstimateUseCase(repo, nil, ids)

		ids.EXPECT().Next(gomock.Any(), interfaces.SequenceEstimates).Return(int64(1), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("pending default, priced cost, no task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ids := mock_interfaces.NewMockISequenceAllocator(ctrl)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		tasks := ucmocks.NewMockITaskUseCase(ctrl)
		uc := usecase.NewEstimateUseCase(repo, tasks, ids)

		ids.EXPECT().Next(gomock.Any(), interfaces.SequenceEstimates).Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID != 7 || e.Status != entities.EstimateStatusPending {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Cost != 292 {
					t.Fatalf("expected priced cost 292, got %v", e.Cost)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)
		// No tasks.Create expectation: a Pending save must not create one.

		res, err := uc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 7 {
			t.Fatalf("expected id 7, got %d", res.ID)
		}
	})

	t.Run("sent creates one follow-up task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ids := mock_interfaces.NewMockISequenceAllocator(ctrl)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		tasks := ucmocks.NewMockITaskUseCase(ctrl)
		uc := usecase.NewEstimateUseCase(repo, tasks, ids)

		ids.EXPECT().Next(gomock.Any(), interfaces.SequenceEstimates).Return(int64(9), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)

		before := time.Now().UTC()
		tasks.EXPECT().Create(gomock.Any(), int64(9), gomock.Any(), false).DoAndReturn(
			func(_ context.Context, estimateID int64, dueDate time.Time, completed bool) (entities.Task, error) {
				if dueDate.Before(before) || dueDate.After(time.Now().UTC().Add(time.Second)) {
					t.Fatalf("due date not the save timestamp: %v", dueDate)
				}
				return entities.Task{ID: 1, EstimateID: estimateID, DueDate: dueDate, Completed: completed}, nil
			},
		)

		in := validInput()
		in.Status = entities.EstimateStatusSent
		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusSent {
			t.Fatalf("expected Sent, got %s", res.Status)
		}
	})

	t.Run("task failure does not fail the save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ids := mock_interfaces.NewMockISequenceAllocator(ctrl)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		tasks := ucmocks.NewMockITaskUseCase(ctrl)
		uc := usecase.NewEstimateUseCase(repo, tasks, ids)

		ids.EXPECT().Next(gomock.Any(), interfaces.SequenceEstimates).Return(int64(2), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		tasks.EXPECT().Create(gomock.Any(), int64(2), gomock.Any(), false).Return(entities.Task{}, errors.New("db"))

		in := validInput()
		in.Status = entities.EstimateStatusSent
		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("expected saved estimate despite task failure, got %v", err)
		}
		if res.ID != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestEstimateUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := usecase.NewEstimateUseCase(nil, nil, nil)
		_, err := uc.Update(context.Background(), 0, validInput())
		if !errors.Is(err, usecase.ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := usecase.NewEstimateUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Estimate{}, nil)

		_, err := uc.Update(context.Background(), 5, validInput())
		if !errors.Is(err, usecase.ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("replace races with delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := usecase.NewEstimateUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Estimate{ID: 5}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, nil)

		_, err := uc.Update(context.Background(), 5, validInput())
		if !errors.Is(err, usecase.ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success keeps created at and reprices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		tasks := ucmocks.NewMockITaskUseCase(ctrl)
		uc := usecase.NewEstimateUseCase(repo, tasks, nil)

		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Estimate{ID: 5, CreatedAt: createdAt, Status: entities.EstimateStatusPending}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if !e.CreatedAt.Equal(createdAt) {
					t.Fatalf("expected original createdAt, got %v", e.CreatedAt)
				}
				if e.Cost != 292 {
					t.Fatalf("expected repriced cost 292, got %v", e.Cost)
				}
				return e, nil
			},
		)

		in := validInput()
		in.Status = entities.EstimateStatusApproved
		res, err := uc.Update(context.Background(), 5, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusApproved {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("re-saving sent creates another task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		tasks := ucmocks.NewMockITaskUseCase(ctrl)
		uc := usecase.NewEstimateUseCase(repo, tasks, nil)

		// Already Sent before the save; the trigger only looks at the
		// submitted status, so the task is created again.
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Estimate{ID: 5, Status: entities.EstimateStatusSent}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		tasks.EXPECT().Create(gomock.Any(), int64(5), gomock.Any(), false).Return(entities.Task{ID: 2, EstimateID: 5}, nil)

		in := validInput()
		in.Status = entities.EstimateStatusSent
		if _, err := uc.Update(context.Background(), 5, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := usecase.NewEstimateUseCase(nil, nil, nil)
		if err := uc.Delete(context.Background(), -1); !errors.Is(err, usecase.ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := usecase.NewEstimateUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(false, nil)

		if err := uc.Delete(context.Background(), 5); !errors.Is(err, usecase.ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := usecase.NewEstimateUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(false, errors.New("db"))

		if err := uc.Delete(context.Background(), 5); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := usecase.NewEstimateUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(true, nil)

		if err := uc.Delete(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Duplicate(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := usecase.NewEstimateUseCase(nil, nil, nil)
		_, err := uc.Duplicate(context.Background(), 0)
		if !errors.Is(err, usecase.ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := usecase.NewEstimateUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Estimate{}, nil)

		_, err := uc.Duplicate(context.Background(), 5)
		if !errors.Is(err, usecase.ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("sent source copies status without a task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ids := mock_interfaces.NewMockISequenceAllocator(ctrl)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		tasks := ucmocks.NewMockITaskUseCase(ctrl)
		uc := usecase.NewEstimateUseCase(repo, tasks, ids)

		source := entities.Estimate{
			ID:        5,
			Material:  "Marble",
			Length:    10,
			Width:     5,
			Thickness: 2,
			Cost:      292,
			Status:    entities.EstimateStatusSent,
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(source, nil)
		ids.EXPECT().Next(gomock.Any(), interfaces.SequenceEstimates).Return(int64(8), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID != 8 || e.Material != "Marble" || e.Cost != 292 {
					t.Fatalf("unexpected copy: %+v", e)
				}
				if e.Status != entities.EstimateStatusSent {
					t.Fatalf("expected inherited Sent status, got %s", e.Status)
				}
				if e.CreatedAt.Equal(source.CreatedAt) {
					t.Fatalf("expected fresh timestamps on the copy")
				}
				return e, nil
			},
		)
		// No tasks.Create expectation: duplication never triggers one.

		res, err := uc.Duplicate(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 8 {
			t.Fatalf("expected id 8, got %d", res.ID)
		}
	})
}
