package dto

import "github.com/shopspring/decimal"

// SalesSummaryQuery reuses the order date filters.
type SalesSummaryQuery struct {
	DateRange string `form:"dateRange"`
	FromDate  string `form:"fromDate"`
	ToDate    string `form:"toDate"`
}

// SalesSummaryResponse aggregates stored order totals over the requested
// window. Totals are summed as stored — order.total is never reconciled
// against line subtotals.
type SalesSummaryResponse struct {
	TotalOrders       int64           `json:"totalOrders"`
	TotalRevenue      int64           `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	PaidOrders        int64           `json:"paidOrders"`
	UnpaidOrders      int64           `json:"unpaidOrders"`
}
