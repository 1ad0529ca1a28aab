package service

import (
	"context"
	"errors"
	"time"

	"warungpos/internal/apierror"
	"warungpos/internal/dto"
	"warungpos/internal/infra"
	"warungpos/internal/model"
	"warungpos/internal/query"
	"warungpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var orderSortFields = []string{"createdAt", "total", "paymentMethod", "paymentStatus"}

const defaultPaymentMethod = "CASH"

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	List(ctx context.Context, q dto.OrderListQuery) ([]dto.OrderResponse, query.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Receipt(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type orderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	clock  func() time.Time
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository) OrderService {
	return &orderService{orders: orders, users: users, clock: time.Now}
}

// BuildOrderFilter normalizes raw list parameters, resolving the date window
// from the dateRange keyword and/or explicit bounds.
func BuildOrderFilter(q dto.OrderListQuery, now time.Time) dto.OrderFilter {
	f := dto.OrderFilter{
		Username:      q.Username,
		Total:         query.ParseRange(q.MinTotal, q.MaxTotal),
		PaymentMethod: q.PaymentMethod,
		PaymentStatus: q.PaymentStatus,
		Search:        q.SearchQuery,
		Created:       query.ResolveTimeRange(q.DateRange, q.FromDate, q.ToDate, now),
		Page:          query.ParsePage(q.Page, q.PageSize),
	}
	if id, err := uuid.Parse(q.UserID); err == nil {
		f.UserID = &id
	}
	f.Sort = query.ParseSort(q.SortBy, q.SortOrder, orderSortFields,
		query.Sort{Field: "createdAt", Direction: "DESC"})
	return f
}

func mapOrder(o *model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		OrderID:       o.ID.String(),
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Notes:         o.Notes,
		Lines:         make([]dto.OrderLineResponse, len(o.Lines)),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.User != nil {
		resp.User = dto.UserRef{UserID: o.User.ID.String(), Name: o.User.Name}
	}
	for i := range o.Lines {
		resp.Lines[i] = mapOrderLine(&o.Lines[i])
	}
	return resp
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apierror.BadRequest("userId must be a valid id.")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User")
		}
		return nil, err
	}

	order := &model.Order{
		UserID:        userID,
		Total:         *req.Total,
		PaymentMethod: defaultPaymentMethod,
		PaymentStatus: "unpaid",
		Notes:         req.Notes,
	}
	if req.PaymentMethod != nil && *req.PaymentMethod != "" {
		order.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentStatus != nil && *req.PaymentStatus != "" {
		order.PaymentStatus = *req.PaymentStatus
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	order.User = user

	resp := mapOrder(order)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, q dto.OrderListQuery) ([]dto.OrderResponse, query.Pagination, error) {
	filter := BuildOrderFilter(q, s.clock())
	orders, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	resp := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		resp[i] = mapOrder(&orders[i])
	}
	return resp, query.Paginate(total, filter.Page), nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Order")
		}
		return nil, err
	}
	resp := mapOrder(order)
	return &resp, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Order")
		}
		return nil, err
	}

	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			return nil, apierror.BadRequest("userId must be a valid id.")
		}
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("User")
			}
			return nil, err
		}
		order.UserID = userID
		order.User = user
	}
	if req.Total != nil {
		order.Total = *req.Total
	}
	if req.PaymentMethod != nil {
		order.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	resp := mapOrder(order)
	return &resp, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Order")
		}
		return err
	}
	return nil
}

// Receipt renders the order as a printable PDF.
func (s *orderService) Receipt(ctx context.Context, id uuid.UUID) ([]byte, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Order")
		}
		return nil, err
	}
	return infra.GenerateReceiptPDF(order)
}
