package service

import (
	"context"
	"errors"
	"fmt"
	"pitstop/config"
	"pitstop/infras/otel"
	"pitstop/internal/domains/stock/model"
	"pitstop/internal/domains/stock/model/dto"
	"pitstop/internal/domains/stock/repository"
	"pitstop/shared"
	"pitstop/shared/cache"
	"pitstop/shared/constant"
	gDto "pitstop/shared/dto"
	"pitstop/shared/failure"
	"pitstop/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStock       = "stock:get"
	cacheGetAllStock    = "stock:gets"
	cacheCountStock     = "stock:count"
	cacheStockAnalytics = "stock:analytics"
	cacheStockHistory   = "stock:history"

	historyDayFormat   = "YYYY-MM-DD"
	historyMonthFormat = "YYYY-MM"
)

type Stock interface {
	Create(ctx context.Context, req dto.CreateStockRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStocksResponse, error)
	Get(ctx context.Context, id string) (dto.StockResponse, error)
	Update(ctx context.Context, req dto.UpdateStockRequest, id string) error
	Delete(ctx context.Context, id string) error
	RecordChange(ctx context.Context, req dto.RecordChangeRequest, id string) error
	Analytics(ctx context.Context) (dto.AnalyticsResponse, error)
	History(ctx context.Context, timeframe string) ([]dto.HistoryEntry, error)
}

type serviceImpl struct {
	repo  repository.Stock
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Stock, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stock {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStockRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(actor)); err != nil {
		log.Error().Err(err).Msg("failed to create stock")

		return fmt.Errorf("failed to create stock: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStocksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStock, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stocks")

		return res, fmt.Errorf("failed to count stocks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stocks")

		return res, fmt.Errorf("failed to get stocks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stocks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStock, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	stock, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock")

		return res, fmt.Errorf("failed to get stock: %w", err)
	}

	if stock.ID == constant.Empty {
		return res, failure.NotFound("stock") // nolint:wrapcheck
	}

	res.FromModel(stock)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stock to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStockRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateStockRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if stock exists")

		return fmt.Errorf("failed to check if stock exists: %w", err)
	}

	if !exist {
		return failure.NotFound("stock") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
		log.Error().Err(err).Msg("failed to update stock")

		return fmt.Errorf("failed to update stock: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if stock exists")

		return fmt.Errorf("failed to check if stock exists: %w", err)
	}

	if !exist {
		return failure.NotFound("stock") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete stock")

		return fmt.Errorf("failed to delete stock: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) RecordChange(ctx context.Context, req dto.RecordChangeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordChange")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if stock exists")

		return fmt.Errorf("failed to check if stock exists: %w", err)
	}

	if !exist {
		return failure.NotFound("stock") // nolint:wrapcheck
	}

	if err = s.repo.ApplyChange(ctx, req.ToModel(id, actor)); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return failure.Conflict("not enough stock for this usage") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to apply stock change")

		return fmt.Errorf("failed to apply stock change: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Analytics(ctx context.Context) (res dto.AnalyticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Analytics")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheStockAnalytics)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	threshold := s.cfg.Booking.LowStockThreshold

	overall, err := s.repo.OverallTotals(ctx, threshold)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock totals")

		return res, fmt.Errorf("failed to get stock totals: %w", err)
	}

	byCategory, err := s.repo.CategoryTotals(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get category totals")

		return res, fmt.Errorf("failed to get category totals: %w", err)
	}

	lowStock, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldQuantity,
				Operator: gDto.FilterOperatorLessEq,
				Value:    threshold,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get low stock items")

		return res, fmt.Errorf("failed to get low stock items: %w", err)
	}

	res.Overall = dto.AnalyticsOverall{
		TotalValue:    overall.TotalValue,
		TotalItems:    overall.TotalItems,
		LowStockItems: overall.LowStockItems,
	}

	res.ByCategory = make([]dto.CategoryBreakdown, len(byCategory))
	for i, row := range byCategory {
		res.ByCategory[i] = dto.CategoryBreakdown{
			Category:   row.Category,
			TotalItems: row.TotalItems,
			TotalValue: row.TotalValue,
		}
	}

	res.LowStockItemsList = make([]dto.StockResponse, len(lowStock))
	for i, mod := range lowStock {
		res.LowStockItemsList[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stock analytics to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, timeframe string) (res []dto.HistoryEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	var (
		since      time.Time
		dateFormat string
	)

	switch timeframe {
	case constant.TimeframeWeek:
		since = now.AddDate(0, 0, -7)
		dateFormat = historyDayFormat
	case constant.TimeframeMonth, constant.Empty:
		since = now.AddDate(0, -1, 0)
		dateFormat = historyDayFormat
	case constant.TimeframeYear:
		since = now.AddDate(-1, 0, 0)
		dateFormat = historyMonthFormat
	default:
		return res, failure.BadRequestFromString("timeframe must be week, month or year") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheStockHistory, timeframe)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	rows, err := s.repo.History(ctx, since, dateFormat)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock history")

		return res, fmt.Errorf("failed to get stock history: %w", err)
	}

	res = make([]dto.HistoryEntry, len(rows))
	for i, row := range rows {
		res[i] = dto.HistoryEntry{
			Date:          row.Date,
			Operation:     row.Operation,
			TotalChange:   row.TotalChange,
			StockID:       row.StockID,
			StockType:     row.StockType,
			StockCategory: row.StockCategory,
			Price:         row.Price,
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stock history to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStock, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete stock from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStock)
		shared.InvalidateCaches(c, s.cache, cacheCountStock)
		shared.InvalidateCaches(c, s.cache, cacheStockAnalytics)
		shared.InvalidateCaches(c, s.cache, cacheStockHistory)
	}()
}
