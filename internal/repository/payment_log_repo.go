package repository

import (
	"context"

	"warungpos/internal/model"
	"warungpos/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentLogRepository interface {
	Create(ctx context.Context, p *model.PaymentLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentLog, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*model.PaymentLog, error)
	List(ctx context.Context, page query.Page) ([]model.PaymentLog, int64, error)
	Update(ctx context.Context, p *model.PaymentLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentLogRepo struct{ db *gorm.DB }

func NewPaymentLogRepository(db *gorm.DB) PaymentLogRepository { return &paymentLogRepo{db: db} }

func (r *paymentLogRepo) Create(ctx context.Context, p *model.PaymentLog) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentLogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentLog, error) {
	var p model.PaymentLog
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentLogRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*model.PaymentLog, error) {
	var p model.PaymentLog
	if err := r.db.WithContext(ctx).First(&p, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentLogRepo) List(ctx context.Context, page query.Page) ([]model.PaymentLog, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.PaymentLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.PaymentLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *paymentLogRepo) Update(ctx context.Context, p *model.PaymentLog) error {
	return r.db.WithContext(ctx).Omit("Order").Save(p).Error
}

func (r *paymentLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.PaymentLog{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
