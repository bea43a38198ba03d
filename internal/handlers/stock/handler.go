package stock

import (
	"net/http"
	"pitstop/infras/otel"
	"pitstop/internal/domains/stock/model"
	"pitstop/internal/domains/stock/model/dto"
	"pitstop/internal/domains/stock/service"
	"pitstop/shared/constant"
	gDto "pitstop/shared/dto"
	"pitstop/shared/validator"
	"pitstop/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stock
	otel    otel.Otel
}

func New(service service.Stock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stocks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStock)
		routerGroup.Get("/", handler.GetStocks)
		routerGroup.Get("/analytics", handler.GetAnalytics)
		routerGroup.Get("/history", handler.GetHistory)
		routerGroup.Get("/{id}", handler.GetStockByID)
		routerGroup.Patch("/{id}", handler.UpdateStock)
		routerGroup.Delete("/{id}", handler.DeleteStock)
		routerGroup.Post("/{id}/change", handler.RecordChange)
	})
}

// CreateStock creates an inventory item.
// @Summary Create a stock item
// @Description Create a new inventory item with its starting quantity.
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body dto.CreateStockRequest true "Create Stock Request"
// @Success 201 {object} response.Message "Stock created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stocks [post]
// @Security BearerAuth
func (handler *Handler) CreateStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStock")
	defer scope.End()

	req := dto.CreateStockRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create stock")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock created successfully")

	response.WithMessage(w, http.StatusCreated, "Stock created successfully")
}

// GetStocks retrieves inventory items.
// @Summary Get all stock items
// @Description Retrieve inventory items with pagination and an optional category filter.
// @Tags Stock
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by stock category"
// @Success 200 {object} response.Data[dto.GetStocksResponse] "List of stock items"
// @Failure 500 {object} response.Error
// @Router /v1/stocks [get]
// @Security BearerAuth
func (handler *Handler) GetStocks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStocks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category := r.URL.Query().Get(constant.RequestParamCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	stocks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stocks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stocks retrieved successfully")

	response.WithJSON(w, http.StatusOK, stocks)
}

// GetAnalytics returns inventory analytics.
// @Summary Get stock analytics
// @Description Retrieve overall totals, per-category breakdowns and the low stock list.
// @Tags Stock
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.AnalyticsResponse] "Inventory analytics"
// @Failure 500 {object} response.Error
// @Router /v1/stocks/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	analytics, err := handler.service.Analytics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock analytics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock analytics retrieved successfully")

	response.WithJSON(w, http.StatusOK, analytics)
}

// GetHistory returns the stock movement history.
// @Summary Get stock history
// @Description Retrieve aggregated stock movements for the given timeframe (week, month or year).
// @Tags Stock
// @Accept json
// @Produce json
// @Param timeframe query string false "Aggregation window: week, month or year"
// @Success 200 {object} response.Data[[]dto.HistoryEntry] "Stock movement history"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stocks/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	timeframe := r.URL.Query().Get(constant.RequestParamTimeframe)

	history, err := handler.service.History(ctx, timeframe)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock history retrieved successfully")

	response.WithJSON(w, http.StatusOK, history)
}

// GetStockByID retrieves a stock item by ID.
// @Summary Get a stock item by ID
// @Description Retrieve a stock item by its unique identifier.
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path string true "Stock ID"
// @Success 200 {object} response.Data[dto.StockResponse] "Stock details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stocks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStockByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStockByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	stock, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock retrieved successfully")

	response.WithJSON(w, http.StatusOK, stock)
}

// UpdateStock updates a stock item's descriptive fields.
// @Summary Update a stock item by ID
// @Description Update a stock item's type, category or price. Quantity only moves through change records.
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path string true "Stock ID"
// @Param request body dto.UpdateStockRequest true "Update Stock Request"
// @Success 200 {object} response.Message "Stock updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stocks/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStockRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update stock")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock updated successfully")

	response.WithMessage(w, http.StatusOK, "Stock updated successfully")
}

// DeleteStock removes a stock item.
// @Summary Delete a stock item by ID
// @Description Permanently delete a stock item.
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path string true "Stock ID"
// @Success 200 {object} response.Message "Stock deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stocks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete stock")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock deleted successfully")

	response.WithMessage(w, http.StatusOK, "Stock deleted successfully")
}

// RecordChange applies a restock or usage movement.
// @Summary Record a stock change
// @Description Apply a restock or usage movement to a stock item. Every movement is kept as a history row.
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path string true "Stock ID"
// @Param request body dto.RecordChangeRequest true "Record Change Request"
// @Success 200 {object} response.Message "Stock change recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stocks/{id}/change [post]
// @Security BearerAuth
func (handler *Handler) RecordChange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordChange")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RecordChangeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RecordChange(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record stock change")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stock change recorded successfully")

	response.WithMessage(w, http.StatusOK, "Stock change recorded successfully")
}
