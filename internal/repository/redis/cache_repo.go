package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jimlawless/whereami"
	"github.com/luminotest/go-backend/internal/cfg"
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/repository/redis/converter"
	"github.com/luminotest/go-backend/pkg/clients"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	productsKey = "catalog:products"
	essaysKey   = "catalog:essays"
)

// CacheRepo кэширует полные списки каталога единым значением на ключ.
// Каталог мал и неизменяем после наполнения, поэтому пообъектное
// кэширование не окупается.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProducts возвращает закэшированный список продуктов.
// Промах кэша — (nil, nil).
func (r *CacheRepo) GetProducts(ctx context.Context) ([]domain.Product, error) {
	data, err := r.client.Client.Get(ctx, productsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		// Битое значение равносильно промаху
		r.logger.Warnf("Redis unmarshal failed for %s: %v", productsKey, e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	return r.conv.ToArrProductEntity(models), nil
}

// SetProducts кэширует список продуктов с TTL каталога.
func (r *CacheRepo) SetProducts(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(r.conv.ToArrProductModel(products))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, productsKey, data, r.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetEssays возвращает закэшированный список испытаний.
// Промах кэша — (nil, nil).
func (r *CacheRepo) GetEssays(ctx context.Context) ([]domain.Essay, error) {
	data, err := r.client.Client.Get(ctx, essaysKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.EssayRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Redis unmarshal failed for %s: %v", essaysKey, e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	return r.conv.ToArrEssayEntity(models), nil
}

// SetEssays кэширует список испытаний с TTL каталога.
func (r *CacheRepo) SetEssays(ctx context.Context, essays []domain.Essay) error {
	data, err := json.Marshal(r.conv.ToArrEssayModel(essays))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, essaysKey, data, r.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
