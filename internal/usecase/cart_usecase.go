package usecase

import (
	"context"

	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
)

// CartUseCase управляет корзиной пользователя — черновиком выбора
// испытаний до отправки котировки.
type CartUseCase struct {
	cartRepo         CartRepository
	userRepo         UserRepository
	logger           logger.Logger
	mergeOnProductID bool
}

func NewCartUC(cartRepo CartRepository, userRepo UserRepository, logger logger.Logger, mergeOnProductID bool) *CartUseCase {
	return &CartUseCase{
		cartRepo:         cartRepo,
		userRepo:         userRepo,
		logger:           logger,
		mergeOnProductID: mergeOnProductID,
	}
}

// List возвращает все строки корзины пользователя.
func (c *CartUseCase) List(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const op = "CartUseCase.List"

	items, err := c.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return items, nil
}

// Add добавляет строку корзины. essayIds обязателен и непуст; essayNames
// обязателен, но его длина НЕ сверяется с essayIds — имена принимаются как есть.
// При включённой стратегии объединения добавление с уже присутствующим
// productId сливается с существующей строкой.
func (c *CartUseCase) Add(ctx context.Context, req *AddCartItemReq) (*domain.CartItem, error) {
	const op = "CartUseCase.Add"

	if len(req.EssayIDs) == 0 {
		return nil, e.ErrEssayIDsRequired
	}
	if req.EssayNames == nil {
		return nil, e.ErrEssayNamesRequired
	}

	item, err := c.addOrMerge(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Счётчик активности не влияет на результат операции
	if err := c.userRepo.IncrementInteractions(ctx, req.UserID); err != nil {
		c.logger.Warnf("Failed to increment interactions for user %s: %v", req.UserID, e.Wrap(op, err))
	}

	return item, nil
}

func (c *CartUseCase) addOrMerge(ctx context.Context, req *AddCartItemReq) (*domain.CartItem, error) {
	if c.mergeOnProductID && req.ProductID != nil {
		existing, err := c.cartRepo.FindByUserAndProduct(ctx, req.UserID, *req.ProductID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			mergedIDs, mergedNames := mergeEssays(existing, req.EssayIDs, req.EssayNames)
			return c.cartRepo.ReplaceEssays(ctx, req.UserID, existing.ID, mergedIDs, mergedNames)
		}
	}

	return c.cartRepo.Create(ctx, domain.NewCartItem(req.UserID, req.ProductID, req.ProductName, req.EssayIDs, req.EssayNames))
}

// UpdateQuantity перезаписывает количество строки корзины.
// Слепая перезапись: последняя запись выигрывает, токена конкурентности нет.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, userID string, itemID int64, quantity int) (*domain.CartItem, error) {
	const op = "CartUseCase.UpdateQuantity"

	if quantity < 1 {
		return nil, e.ErrQuantityTooSmall
	}

	item, err := c.cartRepo.UpdateQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return item, nil
}

// Remove удаляет строку корзины. Идемпотентна: удаление отсутствующего
// (или чужого) id не является ошибкой.
func (c *CartUseCase) Remove(ctx context.Context, userID string, itemID int64) error {
	const op = "CartUseCase.Remove"

	if err := c.cartRepo.Delete(ctx, userID, itemID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Clear удаляет все строки корзины пользователя. Идемпотентна.
func (c *CartUseCase) Clear(ctx context.Context, userID string) error {
	const op = "CartUseCase.Clear"

	if err := c.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// mergeEssays объединяет испытания добавляемой строки с существующей:
// порядок сохраняется, дубликаты id не добавляются, имя берётся позиционно
// (пустая строка, если имя для индекса не передано).
func mergeEssays(existing *domain.CartItem, essayIDs []int64, essayNames []string) ([]int64, []string) {
	seen := make(map[int64]struct{}, len(existing.EssayIDs))
	mergedIDs := make([]int64, 0, len(existing.EssayIDs)+len(essayIDs))
	mergedNames := make([]string, 0, len(existing.EssayNames)+len(essayNames))

	mergedIDs = append(mergedIDs, existing.EssayIDs...)
	mergedNames = append(mergedNames, existing.EssayNames...)
	for _, id := range existing.EssayIDs {
		seen[id] = struct{}{}
	}

	for i, id := range essayIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		mergedIDs = append(mergedIDs, id)
		mergedNames = append(mergedNames, nameAt(essayNames, i))
	}

	return mergedIDs, mergedNames
}

func nameAt(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return ""
}
