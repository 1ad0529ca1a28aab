package repository

import (
	"context"
	"fmt"

	"warungpos/internal/dto"
	"warungpos/internal/model"
	"warungpos/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var orderSortColumns = map[string]string{
	"createdAt":     "orders.created_at",
	"total":         "orders.total",
	"paymentMethod": "orders.payment_method",
	"paymentStatus": "orders.payment_status",
}

// SalesSummaryRow holds the aggregates for the sales report over one window.
type SalesSummaryRow struct {
	TotalOrders  int64 `gorm:"column:total_orders"`
	TotalRevenue int64 `gorm:"column:total_revenue"`
	PaidOrders   int64 `gorm:"column:paid_orders"`
	UnpaidOrders int64 `gorm:"column:unpaid_orders"`
}

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error)
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	SalesSummary(ctx context.Context, window query.TimeRange) (*SalesSummaryRow, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Lines.Menu.Category").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) buildListQuery(ctx context.Context, filter dto.OrderFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Order{}).
		Joins("JOIN users ON users.id = orders.user_id")

	if filter.UserID != nil {
		q = q.Where("orders.user_id = ?", *filter.UserID)
	}
	// The username filter matches the display name, not the login name
	if filter.Username != "" {
		q = q.Where("users.name ILIKE ?", "%"+filter.Username+"%")
	}
	if filter.Total.Min != nil {
		q = q.Where("orders.total >= ?", *filter.Total.Min)
	}
	if filter.Total.Max != nil {
		q = q.Where("orders.total <= ?", *filter.Total.Max)
	}
	if filter.PaymentMethod != "" {
		q = q.Where("orders.payment_method = ?", filter.PaymentMethod)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("orders.payment_status = ?", filter.PaymentStatus)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(orders.payment_method ILIKE ? OR orders.notes ILIKE ?)", like, like)
	}
	if filter.Created.From != nil {
		q = q.Where("orders.created_at >= ?", *filter.Created.From)
	}
	if filter.Created.To != nil {
		q = q.Where("orders.created_at <= ?", *filter.Created.To)
	}
	return q
}

// List filters and sorts orders, preloading the user and the nested
// line → menu → category graph for the page. Ties in the sort column
// resolve by primary key so page boundaries stay stable.
func (r *orderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error) {
	var total int64
	if err := r.buildListQuery(ctx, filter).
		Distinct("orders.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col := orderSortColumns[filter.Sort.Field]
	if col == "" {
		col = "orders.created_at"
	}

	var orders []model.Order
	err := r.buildListQuery(ctx, filter).
		Preload("User").
		Preload("Lines.Menu.Category").
		Order(fmt.Sprintf("%s %s, orders.id ASC", col, filter.Sort.Direction)).
		Limit(filter.Page.Size).
		Offset(filter.Page.Offset()).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Omit("User", "Lines", "PaymentLog").Save(o).Error
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SalesSummary aggregates order counts and revenue over the given window.
// Nil bounds leave that side of the window open.
func (r *orderRepo) SalesSummary(ctx context.Context, window query.TimeRange) (*SalesSummaryRow, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(`COUNT(*) AS total_orders,
			COALESCE(SUM(total), 0) AS total_revenue,
			COUNT(*) FILTER (WHERE payment_status = 'paid') AS paid_orders,
			COUNT(*) FILTER (WHERE payment_status = 'unpaid') AS unpaid_orders`)
	if window.From != nil {
		q = q.Where("created_at >= ?", *window.From)
	}
	if window.To != nil {
		q = q.Where("created_at <= ?", *window.To)
	}

	var row SalesSummaryRow
	if err := q.Scan(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
