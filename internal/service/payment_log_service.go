package service

import (
	"context"
	"errors"

	"warungpos/internal/apierror"
	"warungpos/internal/dto"
	"warungpos/internal/model"
	"warungpos/internal/query"
	"warungpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentLogService interface {
	Create(ctx context.Context, req dto.CreatePaymentLogRequest) (*dto.PaymentLogResponse, error)
	List(ctx context.Context, page, pageSize string) ([]dto.PaymentLogResponse, query.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PaymentLogResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePaymentLogRequest) (*dto.PaymentLogResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentLogService struct {
	logs   repository.PaymentLogRepository
	orders repository.OrderRepository
}

func NewPaymentLogService(logs repository.PaymentLogRepository, orders repository.OrderRepository) PaymentLogService {
	return &paymentLogService{logs: logs, orders: orders}
}

func mapPaymentLog(p *model.PaymentLog) dto.PaymentLogResponse {
	return dto.PaymentLogResponse{
		PaymentLogID:   p.ID.String(),
		OrderID:        p.OrderID.String(),
		AmountPaid:     p.AmountPaid,
		ChangeReturned: p.ChangeReturned,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (s *paymentLogService) Create(ctx context.Context, req dto.CreatePaymentLogRequest) (*dto.PaymentLogResponse, error) {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, apierror.BadRequest("orderId must be a valid id.")
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Order")
		}
		return nil, err
	}

	if *req.AmountPaid < order.Total {
		return nil, apierror.BadRequest("amountPaid must cover the order total.")
	}

	// One log per order; the unique index stays authoritative for races
	if _, err := s.logs.FindByOrderID(ctx, orderID); err == nil {
		return nil, apierror.New(409, "Payment log for this order already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.PaymentLog{
		OrderID:        orderID,
		AmountPaid:     *req.AmountPaid,
		ChangeReturned: *req.AmountPaid - order.Total,
	}
	if err := s.logs.Create(ctx, p); err != nil {
		// one payment log per order
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.New(409, "Payment log for this order already exists.")
		}
		return nil, err
	}

	resp := mapPaymentLog(p)
	return &resp, nil
}

func (s *paymentLogService) List(ctx context.Context, page, pageSize string) ([]dto.PaymentLogResponse, query.Pagination, error) {
	p := query.ParsePage(page, pageSize)
	logs, total, err := s.logs.List(ctx, p)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	resp := make([]dto.PaymentLogResponse, len(logs))
	for i := range logs {
		resp[i] = mapPaymentLog(&logs[i])
	}
	return resp, query.Paginate(total, p), nil
}

func (s *paymentLogService) Get(ctx context.Context, id uuid.UUID) (*dto.PaymentLogResponse, error) {
	p, err := s.logs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Payment log")
		}
		return nil, err
	}
	resp := mapPaymentLog(p)
	return &resp, nil
}

func (s *paymentLogService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePaymentLogRequest) (*dto.PaymentLogResponse, error) {
	p, err := s.logs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Payment log")
		}
		return nil, err
	}

	if req.AmountPaid != nil {
		order, err := s.orders.FindByID(ctx, p.OrderID)
		if err != nil {
			return nil, err
		}
		if *req.AmountPaid < order.Total {
			return nil, apierror.BadRequest("amountPaid must cover the order total.")
		}
		p.AmountPaid = *req.AmountPaid
		p.ChangeReturned = *req.AmountPaid - order.Total
	}

	if err := s.logs.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := mapPaymentLog(p)
	return &resp, nil
}

func (s *paymentLogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.logs.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Payment log")
		}
		return err
	}
	return nil
}
