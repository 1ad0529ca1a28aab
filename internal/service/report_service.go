package service

import (
	"context"
	"time"

	"warungpos/internal/dto"
	"warungpos/internal/query"
	"warungpos/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportService interface {
	SalesSummary(ctx context.Context, q dto.SalesSummaryQuery) (*dto.SalesSummaryResponse, error)
}

type reportService struct {
	orders repository.OrderRepository
	clock  func() time.Time
}

func NewReportService(orders repository.OrderRepository) ReportService {
	return &reportService{orders: orders, clock: time.Now}
}

func (s *reportService) SalesSummary(ctx context.Context, q dto.SalesSummaryQuery) (*dto.SalesSummaryResponse, error) {
	window := query.ResolveTimeRange(q.DateRange, q.FromDate, q.ToDate, s.clock())

	row, err := s.orders.SalesSummary(ctx, window)
	if err != nil {
		return nil, err
	}

	avg := decimal.Zero
	if row.TotalOrders > 0 {
		avg = decimal.NewFromInt(row.TotalRevenue).
			DivRound(decimal.NewFromInt(row.TotalOrders), 2)
	}

	return &dto.SalesSummaryResponse{
		TotalOrders:       row.TotalOrders,
		TotalRevenue:      row.TotalRevenue,
		AverageOrderValue: avg,
		PaidOrders:        row.PaidOrders,
		UnpaidOrders:      row.UnpaidOrders,
	}, nil
}
