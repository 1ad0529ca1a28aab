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

type OrderLineService interface {
	Create(ctx context.Context, req dto.CreateOrderLineRequest) (*dto.OrderLineResponse, error)
	List(ctx context.Context, page, pageSize string) ([]dto.OrderLineResponse, query.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderLineResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderLineRequest) (*dto.OrderLineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderLineService struct {
	lines  repository.OrderLineRepository
	orders repository.OrderRepository
	menus  repository.MenuRepository
}

func NewOrderLineService(
	lines repository.OrderLineRepository,
	orders repository.OrderRepository,
	menus repository.MenuRepository,
) OrderLineService {
	return &orderLineService{lines: lines, orders: orders, menus: menus}
}

func mapOrderLine(l *model.OrderLine) dto.OrderLineResponse {
	resp := dto.OrderLineResponse{
		OrderLineID: l.ID.String(),
		OrderID:     l.OrderID.String(),
		Quantity:    l.Quantity,
		Price:       l.Price,
		Subtotal:    l.Subtotal,
		Notes:       l.Notes,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if l.Menu != nil {
		resp.Menu = mapMenuRef(l.Menu)
	}
	return resp
}

func (s *orderLineService) Create(ctx context.Context, req dto.CreateOrderLineRequest) (*dto.OrderLineResponse, error) {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, apierror.BadRequest("orderId must be a valid id.")
	}
	menuID, err := uuid.Parse(req.MenuID)
	if err != nil {
		return nil, apierror.BadRequest("menuId must be a valid id.")
	}

	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Order")
		}
		return nil, err
	}
	menu, err := s.menus.FindByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Menu")
		}
		return nil, err
	}

	// Subtotal is always derived server-side from the stored factors
	line := &model.OrderLine{
		OrderID:  orderID,
		MenuID:   menuID,
		Quantity: *req.Quantity,
		Price:    *req.Price,
		Subtotal: *req.Price * int64(*req.Quantity),
		Notes:    req.Notes,
	}
	if err := s.lines.Create(ctx, line); err != nil {
		return nil, err
	}
	line.Menu = menu

	resp := mapOrderLine(line)
	return &resp, nil
}

func (s *orderLineService) List(ctx context.Context, page, pageSize string) ([]dto.OrderLineResponse, query.Pagination, error) {
	p := query.ParsePage(page, pageSize)
	lines, total, err := s.lines.List(ctx, p)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	resp := make([]dto.OrderLineResponse, len(lines))
	for i := range lines {
		resp[i] = mapOrderLine(&lines[i])
	}
	return resp, query.Paginate(total, p), nil
}

func (s *orderLineService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderLineResponse, error) {
	line, err := s.lines.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Order detail")
		}
		return nil, err
	}
	resp := mapOrderLine(line)
	return &resp, nil
}

func (s *orderLineService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderLineRequest) (*dto.OrderLineResponse, error) {
	line, err := s.lines.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Order detail")
		}
		return nil, err
	}

	if req.Quantity != nil {
		line.Quantity = *req.Quantity
	}
	if req.Price != nil {
		line.Price = *req.Price
	}
	if req.Notes != nil {
		line.Notes = req.Notes
	}
	// Either factor changing moves the subtotal with it
	line.Subtotal = line.Price * int64(line.Quantity)

	if err := s.lines.Update(ctx, line); err != nil {
		return nil, err
	}
	resp := mapOrderLine(line)
	return &resp, nil
}

func (s *orderLineService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.lines.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Order detail")
		}
		return err
	}
	return nil
}
