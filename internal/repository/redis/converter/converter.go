package converter

import (
	"github.com/luminotest/go-backend/internal/domain"
)

// CatalogConverter преобразует продукты и испытания между domain и Redis-моделями.
type CatalogConverter interface {
	ToArrProductModel(entities []domain.Product) []ProductRedisModel
	ToArrProductEntity(models []ProductRedisModel) []domain.Product
	ToArrEssayModel(entities []domain.Essay) []EssayRedisModel
	ToArrEssayEntity(models []EssayRedisModel) []domain.Essay
}

type CatalogConverterImpl struct{}

func NewCatalogConverter() *CatalogConverterImpl { return &CatalogConverterImpl{} }

func (c *CatalogConverterImpl) ToArrProductModel(entities []domain.Product) []ProductRedisModel {
	models := make([]ProductRedisModel, 0, len(entities))
	for _, entity := range entities {
		models = append(models, ProductRedisModel{
			ID:        entity.ID,
			Name:      entity.Name,
			Category:  entity.Category,
			Titulo:    entity.Titulo,
			IsRetilap: entity.IsRetilap,
			IsRetie:   entity.IsRetie,
			IsOtros:   entity.IsOtros,
		})
	}
	return models
}

func (c *CatalogConverterImpl) ToArrProductEntity(models []ProductRedisModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for _, model := range models {
		entities = append(entities, domain.Product{
			ID:        model.ID,
			Name:      model.Name,
			Category:  model.Category,
			Titulo:    model.Titulo,
			IsRetilap: model.IsRetilap,
			IsRetie:   model.IsRetie,
			IsOtros:   model.IsOtros,
		})
	}
	return entities
}

func (c *CatalogConverterImpl) ToArrEssayModel(entities []domain.Essay) []EssayRedisModel {
	models := make([]EssayRedisModel, 0, len(entities))
	for _, entity := range entities {
		models = append(models, EssayRedisModel{
			ID:               entity.ID,
			Name:             entity.Name,
			Category:         entity.Category,
			IsDefaultRetilap: entity.IsDefaultRetilap,
			IsDefaultRetie:   entity.IsDefaultRetie,
		})
	}
	return models
}

func (c *CatalogConverterImpl) ToArrEssayEntity(models []EssayRedisModel) []domain.Essay {
	entities := make([]domain.Essay, 0, len(models))
	for _, model := range models {
		entities = append(entities, domain.Essay{
			ID:               model.ID,
			Name:             model.Name,
			Category:         model.Category,
			IsDefaultRetilap: model.IsDefaultRetilap,
			IsDefaultRetie:   model.IsDefaultRetie,
		})
	}
	return entities
}
