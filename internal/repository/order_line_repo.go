package repository

import (
	"context"

	"warungpos/internal/model"
	"warungpos/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderLineRepository interface {
	Create(ctx context.Context, l *model.OrderLine) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrderLine, error)
	List(ctx context.Context, page query.Page) ([]model.OrderLine, int64, error)
	Update(ctx context.Context, l *model.OrderLine) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderLineRepo struct{ db *gorm.DB }

func NewOrderLineRepository(db *gorm.DB) OrderLineRepository { return &orderLineRepo{db: db} }

func (r *orderLineRepo) Create(ctx context.Context, l *model.OrderLine) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *orderLineRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrderLine, error) {
	var l model.OrderLine
	err := r.db.WithContext(ctx).
		Preload("Menu.Category").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *orderLineRepo) List(ctx context.Context, page query.Page) ([]model.OrderLine, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.OrderLine{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var lines []model.OrderLine
	err := r.db.WithContext(ctx).
		Preload("Menu.Category").
		Order("created_at DESC, id ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&lines).Error
	if err != nil {
		return nil, 0, err
	}
	return lines, total, nil
}

func (r *orderLineRepo) Update(ctx context.Context, l *model.OrderLine) error {
	return r.db.WithContext(ctx).Omit("Order", "Menu").Save(l).Error
}

func (r *orderLineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.OrderLine{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
