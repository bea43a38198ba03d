package model

import (
	"pitstop/shared/model"
)

const (
	TableName  = "stocks"
	EntityName = "stock"

	ChangeTableName  = "stock_changes"
	ChangeEntityName = "stock_change"

	FieldID       = "id"
	FieldType     = "type"
	FieldCategory = "category"
	FieldPrice    = "price"
	FieldQuantity = "quantity"

	FieldStockID   = "stock_id"
	FieldOperation = "operation"
	FieldChange    = "change"
)

const (
	OperationRestock = "restock"
	OperationUsage   = "usage"
)

// Categories is the fixed set of part categories carried in inventory.
var Categories = []string{
	"Engine Oil",
	"Tire Rotation",
	"Spark Plug",
	"Brake",
	"Battery",
	"Timing Belt",
	"Clutch",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}

	return false
}

type Stock struct {
	ID       string  `db:"id"`
	Type     string  `db:"type"`
	Category string  `db:"category"`
	Price    float64 `db:"price"`
	Quantity int     `db:"quantity"`
	model.Metadata
}

// StockChange is one append-only ledger row. Change is always positive; the
// operation carries the sign.
type StockChange struct {
	ID        string `db:"id"`
	StockID   string `db:"stock_id"`
	Operation string `db:"operation"`
	Change    int    `db:"change"`
	model.Metadata
}

// Delta is the signed quantity adjustment the ledger row represents.
func (c *StockChange) Delta() int {
	if c.Operation == OperationUsage {
		return -c.Change
	}

	return c.Change
}
