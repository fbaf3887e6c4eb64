package usecase

import (
	"context"

	"github.com/luminotest/go-backend/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, filter *ProductFilter) ([]domain.Product, error)
	ListEssays(ctx context.Context, filter *EssayFilter) ([]domain.Essay, error)
}

type CartUC interface {
	List(ctx context.Context, userID string) ([]domain.CartItem, error)
	Add(ctx context.Context, req *AddCartItemReq) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID string, itemID int64, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, userID string, itemID int64) error
	Clear(ctx context.Context, userID string) error
}

type QuotationUC interface {
	Create(ctx context.Context, req *CreateQuotationReq) (*domain.Quotation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Quotation, error)
	GetWithItems(ctx context.Context, id int64) (*QuotationWithItems, error)
}
