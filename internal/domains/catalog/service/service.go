package service

import (
	"context"
	"fmt"
	"pitstop/config"
	"pitstop/infras/otel"
	"pitstop/internal/domains/catalog/model"
	"pitstop/internal/domains/catalog/model/dto"
	"pitstop/internal/domains/catalog/repository"
	"pitstop/shared"
	"pitstop/shared/cache"
	"pitstop/shared/constant"
	gDto "pitstop/shared/dto"
	"pitstop/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCategory = "category:gets"
	cacheCountCategory  = "category:count"
	cacheGetAllService  = "catalogservice:gets"
	cacheCountService   = "catalogservice:count"
)

type Catalog interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) error
	GetCategories(ctx context.Context, req gDto.QueryParams) (dto.GetCategoriesResponse, error)
	UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) error
	DeleteCategory(ctx context.Context, id string) error
	CreateService(ctx context.Context, req dto.CreateServiceRequest) error
	GetServices(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServicesResponse, error)
	UpdateService(ctx context.Context, req dto.UpdateServiceRequest, id string) error
	DeleteService(ctx context.Context, id string) error
}

type catalogImpl struct {
	categories repository.Category
	services   repository.Service
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(categories repository.Category, services repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &catalogImpl{
		categories: categories,
		services:   services,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *catalogImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	nameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Name,
				Table:    model.CategoryTableName,
			},
		},
	}

	exists, err := s.categories.Exist(ctx, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if exists {
		return failure.Conflict("service category already exists") // nolint:wrapcheck
	}

	if err = s.categories.Insert(ctx, req.ToModel(actor)); err != nil {
		log.Error().Err(err).Msg("failed to create category")

		return fmt.Errorf("failed to create category: %w", err)
	}

	s.invalidateCategories(ctx)

	return nil
}

func (s *catalogImpl) GetCategories(ctx context.Context, req gDto.QueryParams) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategories")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCategory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.categories.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count categories")

		return res, fmt.Errorf("failed to count categories: %w", err)
	}

	models, err := s.categories.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save categories to cache")
		}
	}()

	return res, nil
}

func (s *catalogImpl) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCategoryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.CategoryTableName)

	exist, err := s.categories.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service category") // nolint:wrapcheck
	}

	if err = s.categories.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
		log.Error().Err(err).Msg("failed to update category")

		return fmt.Errorf("failed to update category: %w", err)
	}

	s.invalidateCategories(ctx)

	return nil
}

func (s *catalogImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.CategoryTableName)

	exist, err := s.categories.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service category") // nolint:wrapcheck
	}

	// Categories backing existing services cannot be removed.
	inUse, err := s.services.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCategoryID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.ServiceTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check category usage")

		return fmt.Errorf("failed to check category usage: %w", err)
	}

	if inUse {
		return failure.Conflict("category still has services") // nolint:wrapcheck
	}

	if err = s.categories.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete category")

		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.invalidateCategories(ctx)

	return nil
}

func (s *catalogImpl) CreateService(ctx context.Context, req dto.CreateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateService")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	categoryExists, err := s.categories.Exist(ctx, shared.FilterByID(req.CategoryID, model.FieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !categoryExists {
		return failure.BadRequestFromString("service category does not exist") // nolint:wrapcheck
	}

	if err = s.services.Insert(ctx, req.ToModel(actor)); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidateServices(ctx)

	return nil
}

func (s *catalogImpl) GetServices(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.services.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.services.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *catalogImpl) UpdateService(ctx context.Context, req dto.UpdateServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateService")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateServiceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.ServiceTableName)

	exist, err := s.services.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service") // nolint:wrapcheck
	}

	if req.CategoryID != "" {
		categoryExists, catErr := s.categories.Exist(ctx, shared.FilterByID(req.CategoryID, model.FieldID, model.CategoryTableName))
		if catErr != nil {
			log.Error().Err(catErr).Msg("failed to check if category exists")

			return fmt.Errorf("failed to check if category exists: %w", catErr)
		}

		if !categoryExists {
			return failure.BadRequestFromString("service category does not exist") // nolint:wrapcheck
		}
	}

	if err = s.services.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidateServices(ctx)

	return nil
}

func (s *catalogImpl) DeleteService(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteService")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.ServiceTableName)

	exist, err := s.services.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service") // nolint:wrapcheck
	}

	if err = s.services.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.invalidateServices(ctx)

	return nil
}

func (s *catalogImpl) invalidateCategories(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCategory)
		shared.InvalidateCaches(c, s.cache, cacheCountCategory)
	}()
}

func (s *catalogImpl) invalidateServices(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)
	}()
}
