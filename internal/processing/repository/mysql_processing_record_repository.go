package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/orders/internal/database"
	apperrors "github.com/allisson/orders/internal/errors"
	processingDomain "github.com/allisson/orders/internal/processing/domain"
)

// MySQLProcessingRecordRepository implements ProcessingRecord persistence for MySQL.
// The surrogate id is stored as BINARY(16).
type MySQLProcessingRecordRepository struct {
	db *sql.DB
}

// Exists reports whether a processing record exists for the order.
func (m *MySQLProcessingRecordRepository) Exists(ctx context.Context, orderID string) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT EXISTS(SELECT 1 FROM order_processing WHERE order_id = ?)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, orderID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check processing record existence")
	}
	return exists, nil
}

// Create inserts a processing record. A duplicate order id returns ErrOrderAlreadyProcessed.
func (m *MySQLProcessingRecordRepository) Create(
	ctx context.Context,
	record *processingDomain.ProcessingRecord,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO order_processing (id, order_id, status, inventory_available, inventory_check, 
			  validation_passed, validation_result, processing_notes, processed_by, processed_at, created_at, updated_at) 
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal processing record id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		record.OrderID,
		record.Status,
		record.InventoryAvailable,
		record.InventoryCheck,
		record.ValidationPassed,
		record.ValidationResult,
		record.ProcessingNotes,
		record.ProcessedBy,
		record.ProcessedAt,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return processingDomain.ErrOrderAlreadyProcessed
		}
		return apperrors.Wrap(err, "failed to create processing record")
	}
	return nil
}

// GetByOrderID retrieves the processing record of an order.
func (m *MySQLProcessingRecordRepository) GetByOrderID(
	ctx context.Context,
	orderID string,
) (*processingDomain.ProcessingRecord, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, order_id, status, inventory_available, inventory_check, validation_passed, 
			  validation_result, processing_notes, processed_by, processed_at, created_at, updated_at 
			  FROM order_processing 
			  WHERE order_id = ?`

	var record processingDomain.ProcessingRecord
	var id []byte
	err := querier.QueryRowContext(ctx, query, orderID).Scan(
		&id,
		&record.OrderID,
		&record.Status,
		&record.InventoryAvailable,
		&record.InventoryCheck,
		&record.ValidationPassed,
		&record.ValidationResult,
		&record.ProcessingNotes,
		&record.ProcessedBy,
		&record.ProcessedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, processingDomain.ErrProcessingRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get processing record")
	}

	if err := record.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal processing record id")
	}

	return &record, nil
}

// NewMySQLProcessingRecordRepository creates a new MySQL processing record repository.
func NewMySQLProcessingRecordRepository(db *sql.DB) *MySQLProcessingRecordRepository {
	return &MySQLProcessingRecordRepository{db: db}
}
