package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/pkg/e"
)

// Общие фейки репозиториев для тестов usecase-слоя.

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type fakeCartRepo struct {
	items  map[int64]*domain.CartItem
	nextID int64
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[int64]*domain.CartItem)}
}

func (r *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	result := make([]domain.CartItem, 0)
	for id := int64(1); id <= r.nextID; id++ {
		item, ok := r.items[id]
		if ok && item.UserID == userID {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (r *fakeCartRepo) FindByUserAndProduct(_ context.Context, userID string, productID int64) (*domain.CartItem, error) {
	for id := int64(1); id <= r.nextID; id++ {
		item, ok := r.items[id]
		if ok && item.UserID == userID && item.ProductID != nil && *item.ProductID == productID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) Create(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	r.nextID++
	stored := *item
	stored.ID = r.nextID
	r.items[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeCartRepo) ReplaceEssays(_ context.Context, userID string, itemID int64, essayIDs []int64, essayNames []string) (*domain.CartItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return nil, e.ErrCartItemNotFound
	}
	item.EssayIDs = essayIDs
	item.EssayNames = essayNames
	copied := *item
	return &copied, nil
}

func (r *fakeCartRepo) UpdateQuantity(_ context.Context, userID string, itemID int64, quantity int) (*domain.CartItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return nil, e.ErrCartItemNotFound
	}
	item.Quantity = quantity
	copied := *item
	return &copied, nil
}

func (r *fakeCartRepo) Delete(_ context.Context, userID string, itemID int64) error {
	item, ok := r.items[itemID]
	if ok && item.UserID == userID {
		delete(r.items, itemID)
	}
	return nil
}

func (r *fakeCartRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users         map[string]*domain.User
	quotations    map[string]int
	interactions  map[string]int
	failIncrement bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:        make(map[string]*domain.User),
		quotations:   make(map[string]int),
		interactions: make(map[string]int),
	}
}

func (r *fakeUserRepo) Get(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) EnsureUser(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		copied := *user
		r.users[user.ID] = &copied
	}
	return nil
}

func (r *fakeUserRepo) IncrementQuotations(_ context.Context, id string) error {
	if r.failIncrement {
		return errors.New("counter unavailable")
	}
	r.quotations[id]++
	return nil
}

func (r *fakeUserRepo) IncrementInteractions(_ context.Context, id string) error {
	if r.failIncrement {
		return errors.New("counter unavailable")
	}
	r.interactions[id]++
	return nil
}

type fakeProductRepo struct {
	products []domain.Product
	err      error
	calls    int
}

func (r *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.products, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.products = append(r.products, *product)
	return product, nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeEssayRepo struct {
	essays       []domain.Essay
	idsByProduct map[int64][]int64
	relationErr  error
}

func (r *fakeEssayRepo) List(_ context.Context) ([]domain.Essay, error) {
	return r.essays, nil
}

func (r *fakeEssayRepo) Create(_ context.Context, essay *domain.Essay) (*domain.Essay, error) {
	r.essays = append(r.essays, *essay)
	return essay, nil
}

func (r *fakeEssayRepo) ListIDsByProduct(_ context.Context, productID int64) ([]int64, error) {
	if r.relationErr != nil {
		return nil, r.relationErr
	}
	return r.idsByProduct[productID], nil
}

type fakeCacheRepo struct {
	mu       sync.Mutex
	products []domain.Product
	essays   []domain.Essay
	getErr   error
	sets     int
}

func (r *fakeCacheRepo) GetProducts(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.products, nil
}

func (r *fakeCacheRepo) SetProducts(_ context.Context, products []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = products
	r.sets++
	return nil
}

func (r *fakeCacheRepo) GetEssays(_ context.Context) ([]domain.Essay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.essays, nil
}

func (r *fakeCacheRepo) SetEssays(_ context.Context, essays []domain.Essay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.essays = essays
	r.sets++
	return nil
}
