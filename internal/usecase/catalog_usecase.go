package usecase

import (
	"context"
	"time"

	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
)

// CatalogUseCase отдаёт каталог продуктов и испытаний.
// Каталог неизменяем после наполнения, поэтому полные списки кэшируются целиком,
// а фильтры применяются в памяти.
type CatalogUseCase struct {
	productRepo ProductRepository
	essayRepo   EssayRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	essayRepo EssayRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		essayRepo:   essayRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// ListProducts возвращает продукты, опционально отфильтрованные по типу
// регламента и по título. Неизвестный тип регламента не фильтрует ничего.
func (c *CatalogUseCase) ListProducts(ctx context.Context, filter *ProductFilter) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.allProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if filter == nil {
		return products, nil
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.RegulationType != "" && !p.MatchesRegulation(filter.RegulationType) {
			continue
		}
		if filter.Titulo != "" && (p.Titulo == nil || *p.Titulo != filter.Titulo) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered, nil
}

// ListEssays возвращает испытания, опционально отфильтрованные по продукту.
// Если для продукта не заведено ни одной связи (или связь не удалось прочитать),
// возвращаются все испытания — намеренно разрешительное поведение.
func (c *CatalogUseCase) ListEssays(ctx context.Context, filter *EssayFilter) ([]domain.Essay, error) {
	const op = "CatalogUseCase.ListEssays"

	essays, err := c.allEssays(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if filter == nil || filter.ProductID == nil {
		return essays, nil
	}

	ids, err := c.essayRepo.ListIDsByProduct(ctx, *filter.ProductID)
	if err != nil {
		c.logger.Warnf("Failed to resolve essays for product %d, returning all: %v", *filter.ProductID, e.Wrap(op, err))
		return essays, nil
	}
	if len(ids) == 0 {
		return essays, nil
	}

	idSet := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	filtered := make([]domain.Essay, 0, len(ids))
	for _, essay := range essays {
		if _, ok := idSet[essay.ID]; ok {
			filtered = append(filtered, essay)
		}
	}

	return filtered, nil
}

// allProducts читает полный список продуктов через кэш.
// Ошибки кэша деградируют до чтения из БД.
func (c *CatalogUseCase) allProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.allProducts"

	cached, err := c.cacheRepo.GetProducts(ctx)
	if err != nil {
		c.logger.Warnf("Product cache read failed: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached, nil
	}

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Фоновое наполнение кэша
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProducts(bgCtx, products); err != nil {
			c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
		}
	}()

	return products, nil
}

// allEssays читает полный список испытаний через кэш.
func (c *CatalogUseCase) allEssays(ctx context.Context) ([]domain.Essay, error) {
	const op = "CatalogUseCase.allEssays"

	cached, err := c.cacheRepo.GetEssays(ctx)
	if err != nil {
		c.logger.Warnf("Essay cache read failed: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached, nil
	}

	essays, err := c.essayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetEssays(bgCtx, essays); err != nil {
			c.logger.Warnf("Failed to cache essays in background: %v", e.Wrap(op, err))
		}
	}()

	return essays, nil
}
