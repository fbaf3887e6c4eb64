package converter

import (
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []domain.Product
}

// EssayConverter преобразует сущности Essay между domain и моделью PostgreSQL.
type EssayConverter interface {
	ToModel(entity *domain.Essay) *EssayModel
	ToEntity(model *EssayModel) *domain.Essay
	ToArrEntity(models []*EssayModel) []domain.Essay
}

// CartItemConverter преобразует сущности CartItem между domain и моделью PostgreSQL.
// Списки испытаний кодируются в JSON-текст и обратно.
type CartItemConverter interface {
	ToModel(entity *domain.CartItem) (*CartItemModel, error)
	ToEntity(model *CartItemModel) (*domain.CartItem, error)
	ToArrEntity(models []*CartItemModel) ([]domain.CartItem, error)
}

// QuotationConverter преобразует сущности Quotation между domain и моделью PostgreSQL.
type QuotationConverter interface {
	ToModel(entity *domain.Quotation) *QuotationModel
	ToEntity(model *QuotationModel) *domain.Quotation
	ToArrEntity(models []*QuotationModel) []domain.Quotation
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type ProductConverterImpl struct{}

func NewProductConverter() *ProductConverterImpl { return &ProductConverterImpl{} }

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Category:  entity.Category,
		Titulo:    entity.Titulo,
		IsRetilap: entity.IsRetilap,
		IsRetie:   entity.IsRetie,
		IsOtros:   entity.IsOtros,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:        model.ID,
		Name:      model.Name,
		Category:  model.Category,
		Titulo:    model.Titulo,
		IsRetilap: model.IsRetilap,
		IsRetie:   model.IsRetie,
		IsOtros:   model.IsOtros,
	}
}

func (c *ProductConverterImpl) ToArrEntity(models []*ProductModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for _, model := range models {
		entities = append(entities, *c.ToEntity(model))
	}
	return entities
}

type EssayConverterImpl struct{}

func NewEssayConverter() *EssayConverterImpl { return &EssayConverterImpl{} }

func (c *EssayConverterImpl) ToModel(entity *domain.Essay) *EssayModel {
	return &EssayModel{
		ID:               entity.ID,
		Name:             entity.Name,
		Category:         entity.Category,
		IsDefaultRetilap: entity.IsDefaultRetilap,
		IsDefaultRetie:   entity.IsDefaultRetie,
	}
}

func (c *EssayConverterImpl) ToEntity(model *EssayModel) *domain.Essay {
	return &domain.Essay{
		ID:               model.ID,
		Name:             model.Name,
		Category:         model.Category,
		IsDefaultRetilap: model.IsDefaultRetilap,
		IsDefaultRetie:   model.IsDefaultRetie,
	}
}

func (c *EssayConverterImpl) ToArrEntity(models []*EssayModel) []domain.Essay {
	entities := make([]domain.Essay, 0, len(models))
	for _, model := range models {
		entities = append(entities, *c.ToEntity(model))
	}
	return entities
}

type CartItemConverterImpl struct{}

func NewCartItemConverter() *CartItemConverterImpl { return &CartItemConverterImpl{} }

func (c *CartItemConverterImpl) ToModel(entity *domain.CartItem) (*CartItemModel, error) {
	essayIDs, err := EncodeIDs(entity.EssayIDs)
	if err != nil {
		return nil, err
	}

	essayNames, err := EncodeNames(entity.EssayNames)
	if err != nil {
		return nil, err
	}

	return &CartItemModel{
		ID:          entity.ID,
		UserID:      entity.UserID,
		ProductID:   entity.ProductID,
		ProductName: entity.ProductName,
		EssayIDs:    essayIDs,
		EssayNames:  essayNames,
		Quantity:    entity.Quantity,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}, nil
}

func (c *CartItemConverterImpl) ToEntity(model *CartItemModel) (*domain.CartItem, error) {
	essayIDs, err := DecodeIDs(model.EssayIDs)
	if err != nil {
		return nil, err
	}

	essayNames, err := DecodeNames(model.EssayNames)
	if err != nil {
		return nil, err
	}

	return &domain.CartItem{
		ID:          model.ID,
		UserID:      model.UserID,
		ProductID:   model.ProductID,
		ProductName: model.ProductName,
		EssayIDs:    essayIDs,
		EssayNames:  essayNames,
		Quantity:    model.Quantity,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}, nil
}

func (c *CartItemConverterImpl) ToArrEntity(models []*CartItemModel) ([]domain.CartItem, error) {
	entities := make([]domain.CartItem, 0, len(models))
	for _, model := range models {
		entity, err := c.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

type QuotationConverterImpl struct{}

func NewQuotationConverter() *QuotationConverterImpl { return &QuotationConverterImpl{} }

func (c *QuotationConverterImpl) ToModel(entity *domain.Quotation) *QuotationModel {
	model := &QuotationModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Type:      string(entity.Type),
		Status:    entity.Status,
		CreatedAt: entity.CreatedAt,
	}
	if entity.ReglamentoType != nil {
		s := string(*entity.ReglamentoType)
		model.ReglamentoType = &s
	}
	return model
}

func (c *QuotationConverterImpl) ToEntity(model *QuotationModel) *domain.Quotation {
	entity := &domain.Quotation{
		ID:        model.ID,
		UserID:    model.UserID,
		Type:      domain.QuotationType(model.Type),
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
	}
	if model.ReglamentoType != nil {
		t := domain.ReglamentoType(*model.ReglamentoType)
		entity.ReglamentoType = &t
	}
	return entity
}

func (c *QuotationConverterImpl) ToArrEntity(models []*QuotationModel) []domain.Quotation {
	entities := make([]domain.Quotation, 0, len(models))
	for _, model := range models {
		entities = append(entities, *c.ToEntity(model))
	}
	return entities
}

type UserConverterImpl struct{}

func NewUserConverter() *UserConverterImpl { return &UserConverterImpl{} }

func (c *UserConverterImpl) ToModel(entity *domain.User) *UserModel {
	return &UserModel{
		ID:                entity.ID,
		Email:             entity.Email,
		FirstName:         entity.FirstName,
		LastName:          entity.LastName,
		Organizacion:      entity.Organizacion,
		Direccion:         entity.Direccion,
		Telefono:          entity.Telefono,
		Ciudad:            entity.Ciudad,
		Moneda:            entity.Moneda,
		MoneySymbol:       entity.MoneySymbol,
		QuotationsCount:   entity.QuotationsCount,
		InteractionsCount: entity.InteractionsCount,
		CreatedAt:         entity.CreatedAt,
		UpdatedAt:         entity.UpdatedAt,
	}
}

func (c *UserConverterImpl) ToEntity(model *UserModel) *domain.User {
	return &domain.User{
		ID:                model.ID,
		Email:             model.Email,
		FirstName:         model.FirstName,
		LastName:          model.LastName,
		Organizacion:      model.Organizacion,
		Direccion:         model.Direccion,
		Telefono:          model.Telefono,
		Ciudad:            model.Ciudad,
		Moneda:            model.Moneda,
		MoneySymbol:       model.MoneySymbol,
		QuotationsCount:   model.QuotationsCount,
		InteractionsCount: model.InteractionsCount,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverter() *OutboxEventConverterImpl { return &OutboxEventConverterImpl{} }

func (c *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		QuotationID: entity.QuotationID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		QuotationID: model.QuotationID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		entities = append(entities, c.ToEntity(model))
	}
	return entities
}
