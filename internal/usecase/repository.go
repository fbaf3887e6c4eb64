package usecase

import (
	"context"

	"github.com/luminotest/go-backend/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
}

type EssayRepository interface {
	List(ctx context.Context) ([]domain.Essay, error)
	Create(ctx context.Context, essay *domain.Essay) (*domain.Essay, error)
	ListIDsByProduct(ctx context.Context, productID int64) ([]int64, error)
}

type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID string, productID int64) (*domain.CartItem, error)
	Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	ReplaceEssays(ctx context.Context, userID string, itemID int64, essayIDs []int64, essayNames []string) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID string, itemID int64, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, userID string, itemID int64) error
	DeleteByUser(ctx context.Context, userID string) error
}

type QuotationRepository interface {
	Create(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error)
	CreateItems(ctx context.Context, quotationID int64, items []QuotationItemInput) error
	ListByUser(ctx context.Context, userID string) ([]domain.Quotation, error)
	GetWithItems(ctx context.Context, id int64) (*QuotationWithItems, error)
}

type UserRepository interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	EnsureUser(ctx context.Context, user *domain.User) error
	IncrementQuotations(ctx context.Context, id string) error
	IncrementInteractions(ctx context.Context, id string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	GetEssays(ctx context.Context) ([]domain.Essay, error)
	SetEssays(ctx context.Context, essays []domain.Essay) error
}
