package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/orders/internal/errors"
	processingDomain "github.com/allisson/orders/internal/processing/domain"
	processingMocks "github.com/allisson/orders/internal/processing/usecase/mocks"
)

type processingFixture struct {
	repo      *processingMocks.MockProcessingRecordRepository
	inventory *processingMocks.MockInventoryChecker
	validator *processingMocks.MockOrderValidator
	useCase   ProcessingUseCase
}

func newProcessingFixture(t *testing.T) *processingFixture {
	f := &processingFixture{
		repo:      processingMocks.NewMockProcessingRecordRepository(t),
		inventory: processingMocks.NewMockInventoryChecker(t),
		validator: processingMocks.NewMockOrderValidator(t),
	}
	f.useCase = NewProcessingUseCase(f.repo, f.inventory, f.validator, nil)
	return f
}

// TestProcessingUseCase_Run tests the Run method of processingUseCase.
func TestProcessingUseCase_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Completed", func(t *testing.T) {
		f := newProcessingFixture(t)

		var created *processingDomain.ProcessingRecord
		f.repo.On("Exists", ctx, "ORD-1").Return(false, nil).Once()
		f.inventory.On("Check", ctx, "ORD-1").Return(true, nil).Once()
		f.validator.On("Validate", ctx, "ORD-1").Return(true, nil).Once()
		f.repo.On("Create", ctx, mock.AnythingOfType("*domain.ProcessingRecord")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*processingDomain.ProcessingRecord)
			}).
			Return(nil).
			Once()

		before := time.Now().UTC()
		snapshot, err := f.useCase.Run(ctx, "ORD-1", "leave at door")

		require.NoError(t, err)
		assert.Equal(t, "ORD-1", snapshot.OrderID)
		assert.Equal(t, processingDomain.StatusCompleted, snapshot.Status)
		assert.True(t, *snapshot.InventoryAvailable)
		assert.Equal(t, processingDomain.InventoryAvailableNote, *snapshot.InventoryCheck)
		assert.True(t, *snapshot.ValidationPassed)
		assert.Equal(t, processingDomain.ValidationPassedNote, *snapshot.ValidationResult)
		assert.Equal(t, "leave at door", snapshot.ProcessingNotes)
		assert.Equal(t, processingDomain.MessageProcessed, snapshot.Message)
		require.NotNil(t, snapshot.ProcessedAt)
		assert.False(t, snapshot.ProcessedAt.Before(before))

		require.NotNil(t, created)
		assert.Equal(t, processingDomain.StatusCompleted, created.Status)
		assert.Equal(t, processingDomain.SystemActor, created.ProcessedBy)
		assert.Equal(t, created.ProcessedAt, snapshot.ProcessedAt)
	})

	t.Run("Success_InventoryNotAvailable", func(t *testing.T) {
		f := newProcessingFixture(t)

		f.repo.On("Exists", ctx, "ORD-2").Return(false, nil).Once()
		f.inventory.On("Check", ctx, "ORD-2").Return(false, nil).Once()
		f.repo.On("Create", ctx, mock.MatchedBy(func(r *processingDomain.ProcessingRecord) bool {
			return r.Status == processingDomain.StatusFailed && r.ValidationPassed == nil
		})).Return(nil).Once()

		snapshot, err := f.useCase.Run(ctx, "ORD-2", "")

		require.NoError(t, err)
		assert.Equal(t, processingDomain.StatusFailed, snapshot.Status)
		assert.False(t, *snapshot.InventoryAvailable)
		assert.Equal(t, processingDomain.InventoryUnavailableNote, *snapshot.InventoryCheck)
		assert.Nil(t, snapshot.ValidationPassed)
		assert.Nil(t, snapshot.ValidationResult)
		assert.NotNil(t, snapshot.ProcessedAt)
		assert.Equal(t, processingDomain.MessageInventoryNotAvailable, snapshot.Message)
		f.validator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
	})

	t.Run("Success_ValidationFailed", func(t *testing.T) {
		f := newProcessingFixture(t)

		f.repo.On("Exists", ctx, "ORD-3").Return(false, nil).Once()
		f.inventory.On("Check", ctx, "ORD-3").Return(true, nil).Once()
		f.validator.On("Validate", ctx, "ORD-3").Return(false, nil).Once()
		f.repo.On("Create", ctx, mock.AnythingOfType("*domain.ProcessingRecord")).Return(nil).Once()

		snapshot, err := f.useCase.Run(ctx, "ORD-3", "")

		require.NoError(t, err)
		assert.Equal(t, processingDomain.StatusFailed, snapshot.Status)
		assert.True(t, *snapshot.InventoryAvailable)
		assert.False(t, *snapshot.ValidationPassed)
		assert.Equal(t, processingDomain.ValidationFailedNote, *snapshot.ValidationResult)
		assert.Equal(t, processingDomain.MessageValidationFailed, snapshot.Message)
	})

	t.Run("Error_AlreadyProcessed", func(t *testing.T) {
		f := newProcessingFixture(t)

		f.repo.On("Exists", ctx, "ORD-4").Return(true, nil).Once()

		snapshot, err := f.useCase.Run(ctx, "ORD-4", "")

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, processingDomain.ErrOrderAlreadyProcessed)
		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
		f.inventory.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_ConcurrentDuplicateInsert", func(t *testing.T) {
		f := newProcessingFixture(t)

		f.repo.On("Exists", ctx, "ORD-5").Return(false, nil).Once()
		f.inventory.On("Check", ctx, "ORD-5").Return(true, nil).Once()
		f.validator.On("Validate", ctx, "ORD-5").Return(true, nil).Once()
		f.repo.On("Create", ctx, mock.AnythingOfType("*domain.ProcessingRecord")).
			Return(processingDomain.ErrOrderAlreadyProcessed).
			Once()

		snapshot, err := f.useCase.Run(ctx, "ORD-5", "")

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, processingDomain.ErrOrderAlreadyProcessed)
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		f := newProcessingFixture(t)
		storeErr := errors.New("connection reset")

		f.repo.On("Exists", ctx, "ORD-6").Return(false, nil).Once()
		f.inventory.On("Check", ctx, "ORD-6").Return(true, nil).Once()
		f.validator.On("Validate", ctx, "ORD-6").Return(true, nil).Once()
		f.repo.On("Create", ctx, mock.AnythingOfType("*domain.ProcessingRecord")).Return(storeErr).Once()

		snapshot, err := f.useCase.Run(ctx, "ORD-6", "")

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("Error_ExistsFailure", func(t *testing.T) {
		f := newProcessingFixture(t)
		storeErr := errors.New("timeout")

		f.repo.On("Exists", ctx, "ORD-7").Return(false, storeErr).Once()

		snapshot, err := f.useCase.Run(ctx, "ORD-7", "")

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("Error_InventoryHookFailure", func(t *testing.T) {
		f := newProcessingFixture(t)
		hookErr := errors.New("stock service unavailable")

		f.repo.On("Exists", ctx, "ORD-8").Return(false, nil).Once()
		f.inventory.On("Check", ctx, "ORD-8").Return(false, hookErr).Once()

		snapshot, err := f.useCase.Run(ctx, "ORD-8", "")

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, hookErr)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidOrderID", func(t *testing.T) {
		for _, orderID := range []string{"", "   ", strings.Repeat("x", 256)} {
			f := newProcessingFixture(t)

			snapshot, err := f.useCase.Run(ctx, orderID, "")

			assert.Nil(t, snapshot)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput), "order id %q", orderID)
		}
	})
}

// TestProcessingUseCase_GetStatus tests the GetStatus method of processingUseCase.
func TestProcessingUseCase_GetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newProcessingFixture(t)

		processedAt := time.Now().UTC()
		available := true
		check := processingDomain.InventoryAvailableNote
		record := &processingDomain.ProcessingRecord{
			OrderID:            "ORD-1",
			Status:             processingDomain.StatusCompleted,
			InventoryAvailable: &available,
			InventoryCheck:     &check,
			ProcessedAt:        &processedAt,
		}
		f.repo.On("GetByOrderID", ctx, "ORD-1").Return(record, nil).Once()

		snapshot, err := f.useCase.GetStatus(ctx, "ORD-1")

		require.NoError(t, err)
		assert.Equal(t, processingDomain.StatusCompleted, snapshot.Status)
		assert.Equal(t, &processedAt, snapshot.ProcessedAt)
		assert.Empty(t, snapshot.Message)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		f := newProcessingFixture(t)

		f.repo.On("GetByOrderID", ctx, "missing").
			Return(nil, processingDomain.ErrProcessingRecordNotFound).
			Once()

		snapshot, err := f.useCase.GetStatus(ctx, "missing")

		assert.Nil(t, snapshot)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestStaticHooks(t *testing.T) {
	ctx := context.Background()

	available, err := NewStaticInventoryChecker().Check(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, available)

	passed, err := NewStaticOrderValidator().Validate(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, passed)

	available, err = StaticInventoryChecker{}.Check(ctx, "ORD-1")
	require.NoError(t, err)
	assert.False(t, available)
}

// TestProcessingUseCase_StaticPipeline runs the pipeline end to end with the static hooks.
func TestProcessingUseCase_StaticPipeline(t *testing.T) {
	ctx := context.Background()
	repo := processingMocks.NewMockProcessingRecordRepository(t)
	useCase := NewProcessingUseCase(repo, NewStaticInventoryChecker(), NewStaticOrderValidator(), nil)

	repo.On("Exists", ctx, "ORD-9").Return(false, nil).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.ProcessingRecord")).Return(nil).Once()

	snapshot, err := useCase.Run(ctx, "ORD-9", "")

	require.NoError(t, err)
	assert.Equal(t, processingDomain.StatusCompleted, snapshot.Status)
}
