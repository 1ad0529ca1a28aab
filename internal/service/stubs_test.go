package service

import (
	"context"
	"strings"

	"warungpos/internal/dto"
	"warungpos/internal/model"
	"warungpos/internal/query"
	"warungpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	for _, existing := range r.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	for id, existing := range r.categories {
		if id != c.ID && strings.EqualFold(existing.Name, c.Name) {
			return gorm.ErrDuplicatedKey
		}
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

type stubMenuRepo struct {
	menus map[uuid.UUID]*model.Menu
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{menus: make(map[uuid.UUID]*model.Menu)}
}

func (r *stubMenuRepo) Create(_ context.Context, m *model.Menu) error {
	for _, existing := range r.menus {
		if strings.EqualFold(existing.Name, m.Name) {
			return gorm.ErrDuplicatedKey
		}
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.menus[m.ID] = m
	return nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMenuRepo) FindByName(_ context.Context, name string) (*model.Menu, error) {
	for _, m := range r.menus {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMenuRepo) List(_ context.Context, _ dto.MenuFilter) ([]repository.MenuRow, int64, error) {
	rows := make([]repository.MenuRow, 0, len(r.menus))
	for _, m := range r.menus {
		rows = append(rows, repository.MenuRow{Menu: *m})
	}
	return rows, int64(len(rows)), nil
}

func (r *stubMenuRepo) Update(_ context.Context, m *model.Menu) error {
	if _, ok := r.menus[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.menus[m.ID] = m
	return nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.menus[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.menus, id)
	return nil
}

var _ repository.MenuRepository = (*stubMenuRepo)(nil)

type stubOrderRepo struct {
	orders  map[uuid.UUID]*model.Order
	summary repository.SalesSummaryRow
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ dto.OrderFilter) ([]model.Order, int64, error) {
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) SalesSummary(_ context.Context, _ query.TimeRange) (*repository.SalesSummaryRow, error) {
	row := r.summary
	return &row, nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

type stubOrderLineRepo struct {
	lines map[uuid.UUID]*model.OrderLine
}

func newStubOrderLineRepo() *stubOrderLineRepo {
	return &stubOrderLineRepo{lines: make(map[uuid.UUID]*model.OrderLine)}
}

func (r *stubOrderLineRepo) Create(_ context.Context, l *model.OrderLine) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.lines[l.ID] = l
	return nil
}

func (r *stubOrderLineRepo) FindByID(_ context.Context, id uuid.UUID) (*model.OrderLine, error) {
	l, ok := r.lines[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (r *stubOrderLineRepo) List(_ context.Context, _ query.Page) ([]model.OrderLine, int64, error) {
	out := make([]model.OrderLine, 0, len(r.lines))
	for _, l := range r.lines {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderLineRepo) Update(_ context.Context, l *model.OrderLine) error {
	if _, ok := r.lines[l.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.lines[l.ID] = l
	return nil
}

func (r *stubOrderLineRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.lines[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.lines, id)
	return nil
}

var _ repository.OrderLineRepository = (*stubOrderLineRepo)(nil)

type stubPaymentLogRepo struct {
	logs map[uuid.UUID]*model.PaymentLog
}

func newStubPaymentLogRepo() *stubPaymentLogRepo {
	return &stubPaymentLogRepo{logs: make(map[uuid.UUID]*model.PaymentLog)}
}

func (r *stubPaymentLogRepo) Create(_ context.Context, p *model.PaymentLog) error {
	for _, existing := range r.logs {
		if existing.OrderID == p.OrderID {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.logs[p.ID] = p
	return nil
}

func (r *stubPaymentLogRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PaymentLog, error) {
	p, ok := r.logs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPaymentLogRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*model.PaymentLog, error) {
	for _, p := range r.logs {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPaymentLogRepo) List(_ context.Context, _ query.Page) ([]model.PaymentLog, int64, error) {
	out := make([]model.PaymentLog, 0, len(r.logs))
	for _, p := range r.logs {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPaymentLogRepo) Update(_ context.Context, p *model.PaymentLog) error {
	if _, ok := r.logs[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.logs[p.ID] = p
	return nil
}

func (r *stubPaymentLogRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.logs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.logs, id)
	return nil
}

var _ repository.PaymentLogRepository = (*stubPaymentLogRepo)(nil)
