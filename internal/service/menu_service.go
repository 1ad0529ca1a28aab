package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"warungpos/internal/apierror"
	"warungpos/internal/dto"
	"warungpos/internal/infra"
	"warungpos/internal/model"
	"warungpos/internal/query"
	"warungpos/internal/repository"
	"warungpos/internal/storage"
	"warungpos/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var menuSortFields = []string{"menuName", "price", "stock", "categoryId"}

const (
	priceCacheKeyPrefix = "price:menu:"
	priceCacheTTL       = 60 * time.Second

	maxImageSize = 10 << 20 // 10 MB
)

type MenuService interface {
	Create(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error)
	List(ctx context.Context, q dto.MenuListQuery) ([]dto.MenuResponse, query.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MenuResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMenuRequest) (*dto.MenuResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PriceCheck(ctx context.Context, id uuid.UUID) (*dto.MenuPriceResponse, error)
}

type menuService struct {
	menus      repository.MenuRepository
	categories repository.CategoryRepository
	store      storage.ImageStorage
	cb         *infra.CircuitBreaker
	dispatcher *worker.Dispatcher
	rdb        *redis.Client
}

func NewMenuService(
	menus repository.MenuRepository,
	categories repository.CategoryRepository,
	store storage.ImageStorage,
	cb *infra.CircuitBreaker,
	dispatcher *worker.Dispatcher,
	rdb *redis.Client,
) MenuService {
	return &menuService{
		menus:      menus,
		categories: categories,
		store:      store,
		cb:         cb,
		dispatcher: dispatcher,
		rdb:        rdb,
	}
}

// BuildMenuFilter normalizes raw list parameters. Malformed filter values
// are dropped, never rejected, so a junk categoryId just means "no category
// filter".
func BuildMenuFilter(q dto.MenuListQuery) dto.MenuFilter {
	f := dto.MenuFilter{
		CategoryName: q.CategoryName,
		MenuName:     q.MenuName,
		Price:        query.ParseRange(q.MinPrice, q.MaxPrice),
		Search:       q.SearchQuery,
		MostOrdered:  query.ParseBool(q.MostOrdered),
		Page:         query.ParsePage(q.Page, q.PageSize),
	}
	if id, err := uuid.Parse(q.CategoryID); err == nil {
		f.CategoryID = &id
	}
	def := query.Sort{Field: "menuName", Direction: "ASC"}
	if f.MostOrdered {
		// Ranking mode replaces the sort field with the aggregate
		def = query.Sort{Field: "", Direction: "DESC"}
		f.Sort = query.ParseSort("", q.SortOrder, nil, def)
		return f
	}
	f.Sort = query.ParseSort(q.SortBy, q.SortOrder, menuSortFields, def)
	return f
}

// checkNameFree is the duplicate pre-check ahead of a write; the unique index
// stays authoritative for races.
func (s *menuService) checkNameFree(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.menus.FindByName(ctx, name)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return apierror.Conflict("Menu")
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}

func mapMenuRow(row *repository.MenuRow, withCount bool) dto.MenuResponse {
	resp := mapMenu(&row.Menu)
	if withCount {
		count := row.OrderCount
		resp.OrderCount = &count
	}
	return resp
}

func mapMenu(m *model.Menu) dto.MenuResponse {
	resp := dto.MenuResponse{
		MenuID:          m.ID.String(),
		MenuName:        m.Name,
		MenuDescription: m.Description,
		CategoryID:      m.CategoryID.String(),
		Price:           m.Price,
		Stock:           m.Stock,
		MenuImageURL:    m.ImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Category != nil {
		resp.Category = dto.CategoryRef{
			CategoryID:   m.Category.ID.String(),
			CategoryName: m.Category.Name,
		}
	}
	return resp
}

func mapMenuRef(m *model.Menu) dto.MenuRef {
	ref := dto.MenuRef{
		MenuID:          m.ID.String(),
		MenuName:        m.Name,
		MenuDescription: m.Description,
		Price:           m.Price,
	}
	if m.Category != nil {
		ref.Category = dto.CategoryRef{
			CategoryID:   m.Category.ID.String(),
			CategoryName: m.Category.Name,
		}
	}
	return ref
}

func (s *menuService) Create(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apierror.BadRequest("categoryId must be a valid id.")
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Category")
		}
		return nil, err
	}
	// Duplicate check before the upload so a conflicting name costs no bytes
	if err := s.checkNameFree(ctx, req.MenuName, uuid.Nil); err != nil {
		return nil, err
	}

	var imageURL *string
	if req.MenuImage != nil {
		url, err := s.uploadImage(ctx, req.MenuImage)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	menu := &model.Menu{
		Name:        req.MenuName,
		Description: req.MenuDescription,
		CategoryID:  categoryID,
		Price:       *req.Price,
		Stock:       *req.Stock,
		ImageURL:    imageURL,
	}
	if err := s.menus.Create(ctx, menu); err != nil {
		// The row never landed; don't leave the uploaded image orphaned
		if imageURL != nil {
			s.dispatcher.EnqueueImageCleanup(ctx, *imageURL)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Menu")
		}
		return nil, err
	}
	menu.Category = category

	resp := mapMenu(menu)
	return &resp, nil
}

func (s *menuService) List(ctx context.Context, q dto.MenuListQuery) ([]dto.MenuResponse, query.Pagination, error) {
	filter := BuildMenuFilter(q)
	rows, total, err := s.menus.List(ctx, filter)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	resp := make([]dto.MenuResponse, len(rows))
	for i := range rows {
		resp[i] = mapMenuRow(&rows[i], filter.MostOrdered)
	}
	return resp, query.Paginate(total, filter.Page), nil
}

func (s *menuService) Get(ctx context.Context, id uuid.UUID) (*dto.MenuResponse, error) {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Menu")
		}
		return nil, err
	}
	resp := mapMenu(menu)
	return &resp, nil
}

func (s *menuService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMenuRequest) (*dto.MenuResponse, error) {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Menu")
		}
		return nil, err
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, apierror.BadRequest("categoryId must be a valid id.")
		}
		category, err := s.categories.FindByID(ctx, categoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("Category")
			}
			return nil, err
		}
		menu.CategoryID = categoryID
		menu.Category = category
	}
	if req.MenuName != nil {
		if err := s.checkNameFree(ctx, *req.MenuName, menu.ID); err != nil {
			return nil, err
		}
		menu.Name = *req.MenuName
	}
	if req.MenuDescription != nil {
		menu.Description = req.MenuDescription
	}
	if req.Price != nil {
		menu.Price = *req.Price
	}
	if req.Stock != nil {
		menu.Stock = *req.Stock
	}

	var oldImage *string
	if req.MenuImage != nil {
		url, err := s.uploadImage(ctx, req.MenuImage)
		if err != nil {
			return nil, err
		}
		oldImage = menu.ImageURL
		menu.ImageURL = &url
	}

	if err := s.menus.Update(ctx, menu); err != nil {
		// The row update failed; the freshly uploaded replacement is orphaned
		if req.MenuImage != nil && menu.ImageURL != nil {
			s.dispatcher.EnqueueImageCleanup(ctx, *menu.ImageURL)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Menu")
		}
		return nil, err
	}

	// The replaced image is deleted asynchronously; failure never affects
	// the row that was just written.
	if oldImage != nil {
		s.dispatcher.EnqueueImageCleanup(ctx, *oldImage)
	}
	s.invalidatePriceCache(ctx, id)

	resp := mapMenu(menu)
	return &resp, nil
}

func (s *menuService) Delete(ctx context.Context, id uuid.UUID) error {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Menu")
		}
		return err
	}

	if err := s.menus.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Menu")
		}
		return err
	}

	if menu.ImageURL != nil {
		s.dispatcher.EnqueueImageCleanup(ctx, *menu.ImageURL)
	}
	s.invalidatePriceCache(ctx, id)
	return nil
}

// PriceCheck serves the public price endpoint through a short-lived Redis
// cache so a kiosk polling the same menu does not hit Postgres every time.
func (s *menuService) PriceCheck(ctx context.Context, id uuid.UUID) (*dto.MenuPriceResponse, error) {
	key := priceCacheKeyPrefix + id.String()
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var resp dto.MenuPriceResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Menu")
		}
		return nil, err
	}

	resp := &dto.MenuPriceResponse{
		MenuName: menu.Name,
		Price:    menu.Price,
		Stock:    menu.Stock,
	}
	if menu.Category != nil {
		resp.CategoryName = menu.Category.Name
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := s.rdb.Set(ctx, key, data, priceCacheTTL).Err(); err != nil {
			log.Warn().Err(err).Str("menu_id", id.String()).Msg("price cache write failed")
		}
	}
	return resp, nil
}

func (s *menuService) invalidatePriceCache(ctx context.Context, id uuid.UUID) {
	if err := s.rdb.Del(ctx, priceCacheKeyPrefix+id.String()).Err(); err != nil {
		log.Warn().Err(err).Str("menu_id", id.String()).Msg("price cache invalidation failed")
	}
}

// uploadImage streams a multipart file into blob storage through the circuit
// breaker. The object name is always a fresh uuid so replacements never
// collide with the image they replace.
func (s *menuService) uploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxImageSize {
		return "", apierror.BadRequest("menuImage must be 10MB or smaller.")
	}
	f, err := fh.Open()
	if err != nil {
		return "", apierror.BadRequest("menuImage could not be read.")
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fh.Filename))

	var url string
	err = s.cb.Execute(func() error {
		var upErr error
		url, upErr = s.store.Upload(ctx, f, filename, contentType)
		return upErr
	})
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("image upload failed")
		return "", apierror.New(502, "Image storage is unavailable. Try again later.")
	}
	return url, nil
}
