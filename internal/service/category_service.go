package service

import (
	"context"
	"errors"

	"warungpos/internal/apierror"
	"warungpos/internal/dto"
	"warungpos/internal/model"
	"warungpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService defines business operations for menu categories.
// CreateBulk backs the array form of the create endpoint: all categories are
// inserted or none, and the first duplicate name aborts the batch.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	CreateBulk(ctx context.Context, reqs []dto.CreateCategoryRequest) ([]dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categories repository.CategoryRepository
	db         *gorm.DB
}

func NewCategoryService(categories repository.CategoryRepository, db *gorm.DB) CategoryService {
	return &categoryService{categories: categories, db: db}
}

func mapCategory(c *model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		CategoryID:   c.ID.String(),
		CategoryName: c.Name,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// checkNameFree is the duplicate pre-check ahead of a write. The unique index
// stays authoritative for races; a Conflict from the constraint maps the same
// way.
func (s *categoryService) checkNameFree(ctx context.Context, repo repository.CategoryRepository, name string, selfID uuid.UUID) error {
	existing, err := repo.FindByName(ctx, name)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return apierror.Conflict("Category")
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := s.checkNameFree(ctx, s.categories, req.CategoryName, uuid.Nil); err != nil {
		return nil, err
	}
	c := &model.Category{Name: req.CategoryName}
	if err := s.categories.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Category")
		}
		return nil, err
	}
	resp := mapCategory(c)
	return &resp, nil
}

func (s *categoryService) CreateBulk(ctx context.Context, reqs []dto.CreateCategoryRequest) ([]dto.CategoryResponse, error) {
	created := make([]dto.CategoryResponse, 0, len(reqs))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewCategoryRepository(tx)
		for _, req := range reqs {
			if err := s.checkNameFree(ctx, txRepo, req.CategoryName, uuid.Nil); err != nil {
				return err
			}
			c := &model.Category{Name: req.CategoryName}
			if err := txRepo.Create(ctx, c); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apierror.Conflict("Category")
				}
				return err
			}
			created = append(created, mapCategory(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoryResponse, len(list))
	for i := range list {
		resp[i] = mapCategory(&list[i])
	}
	return resp, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Category")
		}
		return nil, err
	}
	resp := mapCategory(c)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Category")
		}
		return nil, err
	}

	if req.CategoryName != nil {
		if err := s.checkNameFree(ctx, s.categories, *req.CategoryName, c.ID); err != nil {
			return nil, err
		}
		c.Name = *req.CategoryName
	}

	if err := s.categories.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Category")
		}
		return nil, err
	}
	resp := mapCategory(c)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Category")
		}
		return err
	}
	return nil
}
