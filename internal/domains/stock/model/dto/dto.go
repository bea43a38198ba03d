package dto

import (
	"pitstop/internal/domains/stock/model"
	"pitstop/shared"
	gDto "pitstop/shared/dto"
	gModel "pitstop/shared/model"
	"pitstop/shared/timezone"

	"github.com/google/uuid"
)

type CreateStockRequest struct {
	Type     string  `json:"type"     validate:"required,max=100"`
	Category string  `json:"category" validate:"required,oneof='Engine Oil' 'Tire Rotation' 'Spark Plug' Brake Battery 'Timing Belt' Clutch"`
	Price    float64 `json:"price"    validate:"required,gte=0"`
	Quantity int     `json:"quantity" validate:"omitempty,gte=0"`
}

func (c *CreateStockRequest) ToModel(actor string) model.Stock {
	return model.Stock{
		ID:       uuid.NewString(),
		Type:     c.Type,
		Category: c.Category,
		Price:    c.Price,
		Quantity: c.Quantity,
		Metadata: gModel.NewMetadata(timezone.Now(), actor),
	}
}

// UpdateStockRequest has no quantity field: quantity only moves through the
// ledger so every adjustment leaves a history row.
type UpdateStockRequest struct {
	Type     string  `db:"type"     json:"type"     validate:"omitempty,max=100"`
	Category string  `db:"category" json:"category" validate:"omitempty,oneof='Engine Oil' 'Tire Rotation' 'Spark Plug' Brake Battery 'Timing Belt' Clutch"`
	Price    float64 `db:"price"    json:"price"    validate:"omitempty,gte=0"`
}

type RecordChangeRequest struct {
	Change    int    `json:"change"    validate:"required,gt=0"`
	Operation string `json:"operation" validate:"required,oneof=restock usage"`
}

func (c *RecordChangeRequest) ToModel(stockID, actor string) model.StockChange {
	return model.StockChange{
		ID:        uuid.NewString(),
		StockID:   stockID,
		Operation: c.Operation,
		Change:    c.Change,
		Metadata:  gModel.NewMetadata(timezone.Now(), actor),
	}
}

type StockResponse struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	gDto.Metadata
}

func (r *StockResponse) FromModel(mod model.Stock) {
	r.ID = mod.ID
	r.Type = mod.Type
	r.Category = mod.Category
	r.Price = mod.Price
	r.Quantity = mod.Quantity
	r.Metadata.FromModel(mod.Metadata)
}

type GetStocksResponse struct {
	Stocks    []StockResponse `json:"stocks"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStocksResponse) FromModels(models []model.Stock, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stocks = make([]StockResponse, len(models))
	for i, mod := range models {
		r.Stocks[i].FromModel(mod)
	}
}

type CategoryBreakdown struct {
	Category   string  `json:"category"`
	TotalItems int     `json:"totalItems"`
	TotalValue float64 `json:"totalValue"`
}

type AnalyticsOverall struct {
	TotalValue    float64 `json:"totalValue"`
	TotalItems    int     `json:"totalItems"`
	LowStockItems int     `json:"lowStockItems"`
}

type AnalyticsResponse struct {
	Overall           AnalyticsOverall    `json:"overall"`
	ByCategory        []CategoryBreakdown `json:"byCategory"`
	LowStockItemsList []StockResponse     `json:"lowStockItemsList"`
}

type HistoryEntry struct {
	Date          string  `json:"date"`
	Operation     string  `json:"operation"`
	TotalChange   int     `json:"totalChange"`
	StockID       string  `json:"stockId"`
	StockType     string  `json:"stockType"`
	StockCategory string  `json:"stockCategory"`
	Price         float64 `json:"price"`
}
