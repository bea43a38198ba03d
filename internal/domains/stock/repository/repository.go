package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"pitstop/infras/otel"
	"pitstop/infras/postgres"
	"pitstop/internal/domains/stock/model"
	"pitstop/shared/constant"
	gDto "pitstop/shared/dto"
	"pitstop/shared/logger"
	gRepo "pitstop/shared/repository"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrInsufficientStock is returned when a usage would take quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

type Stock interface {
	Insert(ctx context.Context, model model.Stock) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Stock, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Stock, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ApplyChange(ctx context.Context, change model.StockChange) error
	OverallTotals(ctx context.Context, lowStockThreshold int) (model.OverallTotals, error)
	CategoryTotals(ctx context.Context) ([]model.CategoryTotals, error)
	History(ctx context.Context, since time.Time, dateFormat string) ([]model.HistoryRow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Stock]
	changes gRepo.Repository[model.StockChange]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Stock {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Stock](model.EntityName, model.TableName, model.FieldID, db, otl),
		changes:    gRepo.NewRepository[model.StockChange](model.ChangeEntityName, model.ChangeTableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

// ApplyChange adjusts the quantity and appends the ledger row in a single
// transaction. The guarded update keeps quantity from ever going negative,
// concurrent usages included.
func (repo *repositoryImpl) ApplyChange(ctx context.Context, change model.StockChange) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stock.ApplyChange")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (stock): %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback stock change")
			}
		}
	}()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + :delta, %s = :modified_at, %s = :modified_by WHERE %s = :id AND %s + :delta >= 0",
		model.TableName,
		model.FieldQuantity, model.FieldQuantity,
		constant.FieldModifiedAt, constant.FieldModifiedBy,
		model.FieldID, model.FieldQuantity,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, map[string]any{
		"delta":       change.Delta(),
		"id":          change.StockID,
		"modified_at": change.ModifiedAt,
		"modified_by": change.ModifiedBy,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to adjust stock quantity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows (stock): %w", err)
	}

	if affected == 0 {
		return ErrInsufficientStock
	}

	if err = repo.changes.InsertTx(ctx, tx, change); err != nil {
		return fmt.Errorf("failed to record stock change: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit stock change: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) OverallTotals(ctx context.Context, lowStockThreshold int) (totals model.OverallTotals, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stock.OverallTotals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT
		COALESCE(SUM(%s * %s), 0) AS total_value,
		COALESCE(SUM(%s), 0) AS total_items,
		COUNT(*) FILTER (WHERE %s <= :threshold) AS low_stock_items
	FROM %s`,
		model.FieldPrice, model.FieldQuantity,
		model.FieldQuantity,
		model.FieldQuantity,
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return totals, fmt.Errorf("failed to prepare statement (stock totals): %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &totals, map[string]any{"threshold": lowStockThreshold}); err != nil {
		logger.ErrorWithStack(err)

		return totals, fmt.Errorf("failed to get stock totals: %w", err)
	}

	return totals, nil
}

func (repo *repositoryImpl) CategoryTotals(ctx context.Context) (totals []model.CategoryTotals, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stock.CategoryTotals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT
		%s AS category,
		COALESCE(SUM(%s), 0) AS total_items,
		COALESCE(SUM(%s * %s), 0) AS total_value
	FROM %s
	GROUP BY %s
	ORDER BY %s`,
		model.FieldCategory,
		model.FieldQuantity,
		model.FieldPrice, model.FieldQuantity,
		model.TableName,
		model.FieldCategory,
		model.FieldCategory,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &totals, query); err != nil {
		logger.ErrorWithStack(err)

		return totals, fmt.Errorf("failed to get category totals: %w", err)
	}

	return totals, nil
}

// History aggregates the ledger per bucket, operation and item. The date
// format decides the bucket: YYYY-MM-DD buckets by day, YYYY-MM by month.
func (repo *repositoryImpl) History(ctx context.Context, since time.Time, dateFormat string) (rows []model.HistoryRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stock.History")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT
		to_char(c.%s, :date_format) AS date,
		c.%s AS operation,
		COALESCE(SUM(c.%s), 0) AS total_change,
		c.%s AS stock_id,
		s.%s AS stock_type,
		s.%s AS stock_category,
		s.%s AS price
	FROM %s c
	JOIN %s s ON s.%s = c.%s
	WHERE c.%s >= :since
	GROUP BY date, c.%s, c.%s, s.%s, s.%s, s.%s
	ORDER BY date`,
		constant.FieldCreatedAt,
		model.FieldOperation,
		model.FieldChange,
		model.FieldStockID,
		model.FieldType,
		model.FieldCategory,
		model.FieldPrice,
		model.ChangeTableName,
		model.TableName, model.FieldID, model.FieldStockID,
		constant.FieldCreatedAt,
		model.FieldOperation, model.FieldStockID, model.FieldType, model.FieldCategory, model.FieldPrice,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return rows, fmt.Errorf("failed to prepare statement (stock history): %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rows, map[string]any{
		"date_format": dateFormat,
		"since":       since,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return rows, fmt.Errorf("failed to get stock history: %w", err)
	}

	return rows, nil
}
