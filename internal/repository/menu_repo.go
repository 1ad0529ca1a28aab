package repository

import (
	"context"
	"fmt"

	"warungpos/internal/dto"
	"warungpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// menuSortColumns maps the API-level sort allow-list onto real columns.
// Anything outside this map never reaches ORDER BY.
var menuSortColumns = map[string]string{
	"menuName":   "menus.name",
	"price":      "menus.price",
	"stock":      "menus.stock",
	"categoryId": "menus.category_id",
}

// MenuRow is a menu plus the order-count aggregate computed in
// most-ordered mode (zero otherwise).
type MenuRow struct {
	model.Menu `gorm:"embedded"`
	OrderCount int64 `gorm:"column:order_count"`
}

// MenuRepository defines data access for menus, including the filtered,
// aggregated list query.
type MenuRepository interface {
	Create(ctx context.Context, m *model.Menu) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)
	FindByName(ctx context.Context, name string) (*model.Menu, error)
	List(ctx context.Context, filter dto.MenuFilter) ([]MenuRow, int64, error)
	Update(ctx context.Context, m *model.Menu) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuRepo struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) MenuRepository { return &menuRepo{db: db} }

func (r *menuRepo) Create(ctx context.Context, m *model.Menu) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *menuRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	var m model.Menu
	err := r.db.WithContext(ctx).Preload("Category").First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) FindByName(ctx context.Context, name string) (*model.Menu, error) {
	var m model.Menu
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// buildListQuery applies the conjunction of all provided filter clauses to a
// fresh menus ⋈ categories query. Search is a disjunction across the menu's
// searchable fields, conjoined with the rest.
func (r *menuRepo) buildListQuery(ctx context.Context, filter dto.MenuFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Menu{}).
		Joins("JOIN categories ON categories.id = menus.category_id")

	if filter.CategoryID != nil {
		q = q.Where("menus.category_id = ?", *filter.CategoryID)
	}
	if filter.CategoryName != "" {
		q = q.Where("categories.name ILIKE ?", "%"+filter.CategoryName+"%")
	}
	if filter.MenuName != "" {
		q = q.Where("menus.name ILIKE ?", "%"+filter.MenuName+"%")
	}
	if filter.Price.Min != nil {
		q = q.Where("menus.price >= ?", *filter.Price.Min)
	}
	if filter.Price.Max != nil {
		q = q.Where("menus.price <= ?", *filter.Price.Max)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(menus.name ILIKE ? OR menus.description ILIKE ?)", like, like)
	}

	if filter.MostOrdered {
		q = q.Joins("JOIN order_lines ON order_lines.menu_id = menus.id").
			Group("menus.id, categories.id")
	}
	return q
}

// List executes the menu aggregation query.
//
// Plain mode sorts by the requested allow-listed column; most-ordered mode
// groups by menu and ranks by SUM(order_lines.quantity). In both modes the
// composite sort key is (isOutOfStock, rankField, id): menus with stock = 0
// always land after everything else, and ties resolve by primary key so
// pagination stays deterministic. The total count reflects distinct root
// menus, not joined row multiplicity.
func (r *menuRepo) List(ctx context.Context, filter dto.MenuFilter) ([]MenuRow, int64, error) {
	var total int64
	if err := r.buildListQuery(ctx, filter).
		Distinct("menus.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.buildListQuery(ctx, filter)

	rankCol := menuSortColumns[filter.Sort.Field]
	if rankCol == "" {
		rankCol = "menus.name"
	}
	if filter.MostOrdered {
		q = q.Select("menus.*, COALESCE(SUM(order_lines.quantity), 0) AS order_count")
		rankCol = "order_count"
	} else {
		q = q.Select("menus.*, 0 AS order_count")
	}

	q = q.Order(fmt.Sprintf(
		"CASE WHEN menus.stock = 0 THEN 1 ELSE 0 END ASC, %s %s, menus.id ASC",
		rankCol, filter.Sort.Direction,
	))

	var rows []MenuRow
	err := q.Limit(filter.Page.Size).Offset(filter.Page.Offset()).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachCategories(ctx, rows); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// attachCategories loads the category payload for a page of rows in one
// query. Raw-scanned rows bypass gorm preloading, so the join payload is
// assembled here.
func (r *menuRepo) attachCategories(ctx context.Context, rows []MenuRow) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].CategoryID)
	}
	var cats []model.Category
	if err := r.db.WithContext(ctx).Find(&cats, "id IN ?", ids).Error; err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*model.Category, len(cats))
	for i := range cats {
		byID[cats[i].ID] = &cats[i]
	}
	for i := range rows {
		rows[i].Category = byID[rows[i].CategoryID]
	}
	return nil
}

func (r *menuRepo) Update(ctx context.Context, m *model.Menu) error {
	return r.db.WithContext(ctx).Omit("Category").Save(m).Error
}

func (r *menuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Menu{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
