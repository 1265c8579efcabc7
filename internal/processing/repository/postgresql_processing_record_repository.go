// Package repository implements processing record persistence for PostgreSQL and MySQL.
// The order_id column carries a unique constraint, which makes Create an atomic
// insert-if-absent for concurrent pipeline runs.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/orders/internal/database"
	apperrors "github.com/allisson/orders/internal/errors"
	processingDomain "github.com/allisson/orders/internal/processing/domain"
)

// PostgreSQLProcessingRecordRepository implements ProcessingRecord persistence for PostgreSQL.
type PostgreSQLProcessingRecordRepository struct {
	db *sql.DB
}

// Exists reports whether a processing record exists for the order.
func (p *PostgreSQLProcessingRecordRepository) Exists(ctx context.Context, orderID string) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT EXISTS(SELECT 1 FROM order_processing WHERE order_id = $1)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, orderID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check processing record existence")
	}
	return exists, nil
}

// Create inserts a processing record. A duplicate order id returns ErrOrderAlreadyProcessed.
func (p *PostgreSQLProcessingRecordRepository) Create(
	ctx context.Context,
	record *processingDomain.ProcessingRecord,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO order_processing (id, order_id, status, inventory_available, inventory_check, 
			  validation_passed, validation_result, processing_notes, processed_by, processed_at, created_at, updated_at) 
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
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
func (p *PostgreSQLProcessingRecordRepository) GetByOrderID(
	ctx context.Context,
	orderID string,
) (*processingDomain.ProcessingRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, order_id, status, inventory_available, inventory_check, validation_passed, 
			  validation_result, processing_notes, processed_by, processed_at, created_at, updated_at 
			  FROM order_processing 
			  WHERE order_id = $1`

	var record processingDomain.ProcessingRecord
	err := querier.QueryRowContext(ctx, query, orderID).Scan(
		&record.ID,
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

	return &record, nil
}

// NewPostgreSQLProcessingRecordRepository creates a new PostgreSQL processing record repository.
func NewPostgreSQLProcessingRecordRepository(db *sql.DB) *PostgreSQLProcessingRecordRepository {
	return &PostgreSQLProcessingRecordRepository{db: db}
}
