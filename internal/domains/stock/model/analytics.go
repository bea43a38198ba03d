package model

// Aggregation rows scanned from the analytics and history queries.

type OverallTotals struct {
	TotalValue    float64 `db:"total_value"`
	TotalItems    int     `db:"total_items"`
	LowStockItems int     `db:"low_stock_items"`
}

type CategoryTotals struct {
	Category   string  `db:"category"`
	TotalItems int     `db:"total_items"`
	TotalValue float64 `db:"total_value"`
}

type HistoryRow struct {
	Date          string  `db:"date"`
	Operation     string  `db:"operation"`
	TotalChange   int     `db:"total_change"`
	StockID       string  `db:"stock_id"`
	StockType     string  `db:"stock_type"`
	StockCategory string  `db:"stock_category"`
	Price         float64 `db:"price"`
}
