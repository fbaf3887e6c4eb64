package usecase

import (
	"github.com/luminotest/go-backend/internal/domain"
)

// CATALOG USECASE

// ProductFilter — необязательные фильтры списка продуктов.
type ProductFilter struct {
	RegulationType string
	Titulo         string
}

// EssayFilter — необязательный фильтр списка испытаний по продукту.
type EssayFilter struct {
	ProductID *int64
}

// CART USECASE

// AddCartItemReq — запрос на добавление строки корзины.
type AddCartItemReq struct {
	UserID      string
	ProductID   *int64
	ProductName *string
	EssayIDs    []int64
	EssayNames  []string
}

// QUOTATION USECASE

// QuotationItemInput — одна плоская пара (продукт?, испытание?) на входе котировки.
type QuotationItemInput struct {
	ProductID *int64
	EssayID   *int64
}

// CreateQuotationReq — запрос на создание котировки.
// Submitter несёт данные идентичности для идемпотентного создания записи пользователя.
type CreateQuotationReq struct {
	UserID         string
	Submitter      *Identity
	Type           string
	ReglamentoType string
	Items          []QuotationItemInput
}

// QuotationItemDetail — строка котировки с подгруженными данными продукта и испытания.
// Отсутствующие ссылки остаются nil, это не ошибка.
type QuotationItemDetail struct {
	ID          int64
	QuotationID int64
	ProductID   *int64
	EssayID     *int64
	Product     *domain.Product
	Essay       *domain.Essay
}

// QuotationWithItems — котировка вместе со строками.
type QuotationWithItems struct {
	Quotation domain.Quotation
	Items     []QuotationItemDetail
}

// AUTH

// Identity — результат проверки учётных данных.
type Identity struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
}

// NewDevIdentity возвращает фиксированную dev-идентичность.
// Используется только когда учётные данные провайдера не сконфигурированы.
func NewDevIdentity() *Identity {
	return &Identity{
		UserID:    "dev-user",
		Email:     "dev@example.com",
		FirstName: "Dev",
		LastName:  "User",
	}
}

// NOTIFICATION PAYLOAD
// Форма полезной нагрузки фиксирована: внешние потребители опираются
// и на агрегированный, и на сырой список одновременно.

type NotificationPayload struct {
	QuotationID    int64                 `json:"quotationId"`
	UserID         string                `json:"userId"`
	Type           string                `json:"type"`
	ReglamentoType *string               `json:"reglamentoType"`
	CreatedAt      string                `json:"createdAt"`
	User           NotificationUser      `json:"user"`
	Items          []NotificationItem    `json:"items"`
	RawItems       []NotificationRawItem `json:"rawItems"`
}

type NotificationUser struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Organizacion *string `json:"organizacion"`
	Direccion    *string `json:"direccion"`
	Telefono     *string `json:"telefono"`
	Ciudad       *string `json:"ciudad"`
	Moneda       *string `json:"moneda"`
	MoneySymbol  *string `json:"moneySymbol"`
}

// NotificationItem — агрегированная строка: quantity считается по числу
// повторений essayId среди плоских строк котировки.
type NotificationItem struct {
	EssayID     int64   `json:"essayId"`
	EssayName   *string `json:"essayName"`
	ProductID   *int64  `json:"productId"`
	ProductName *string `json:"productName"`
	Quantity    int     `json:"quantity"`
}

// NotificationRawItem зеркалит плоские строки котировки один к одному.
type NotificationRawItem struct {
	ProductID   *int64  `json:"productId"`
	ProductName *string `json:"productName"`
	EssayID     *int64  `json:"essayId"`
	EssayName   *string `json:"essayName"`
}

// MAPPERS

func NewAddCartItemReq(userID string, productID *int64, productName *string, essayIDs []int64, essayNames []string) *AddCartItemReq {
	return &AddCartItemReq{
		UserID:      userID,
		ProductID:   productID,
		ProductName: productName,
		EssayIDs:    essayIDs,
		EssayNames:  essayNames,
	}
}

func NewCreateQuotationReq(submitter *Identity, quotationType, reglamentoType string, items []QuotationItemInput) *CreateQuotationReq {
	return &CreateQuotationReq{
		UserID:         submitter.UserID,
		Submitter:      submitter,
		Type:           quotationType,
		ReglamentoType: reglamentoType,
		Items:          items,
	}
}
