package http

import (
	"time"

	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/usecase"
)

// Ответы API используют camelCase: форма зафиксирована внешними потребителями.

type ProductResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Titulo    *string `json:"titulo"`
	IsRetilap bool    `json:"isRetilap"`
	IsRetie   bool    `json:"isRetie"`
	IsOtros   bool    `json:"isOtros"`
}

type EssayResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	IsDefaultRetilap bool   `json:"isDefaultRetilap"`
	IsDefaultRetie   bool   `json:"isDefaultRetie"`
}

type CartItemResponse struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"userId"`
	ProductID   *int64     `json:"productId"`
	ProductName *string    `json:"productName"`
	EssayIDs    []int64    `json:"essayIds"`
	EssayNames  []string   `json:"essayNames"`
	Quantity    int        `json:"quantity"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

type AddCartItemRequest struct {
	ProductID   *int64   `json:"productId"`
	ProductName *string  `json:"productName"`
	EssayIDs    []int64  `json:"essayIds"`
	EssayNames  []string `json:"essayNames"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// QuotationItemRequest — плоская пара (продукт?, испытание?) в теле запроса
// на создание котировки. Клиент раскрывает корзину до отправки.
type QuotationItemRequest struct {
	ProductID *int64 `json:"productId"`
	EssayID   *int64 `json:"essayId"`
}

type CreateQuotationRequest struct {
	Type           string                 `json:"type"`
	ReglamentoType string                 `json:"reglamentoType"`
	Items          []QuotationItemRequest `json:"items"`
}

type QuotationResponse struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	Type           string    `json:"type"`
	ReglamentoType *string   `json:"reglamentoType"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type QuotationItemResponse struct {
	ID          int64            `json:"id"`
	QuotationID int64            `json:"quotationId"`
	ProductID   *int64           `json:"productId"`
	EssayID     *int64           `json:"essayId"`
	Product     *ProductResponse `json:"product,omitempty"`
	Essay       *EssayResponse   `json:"essay,omitempty"`
}

type QuotationWithItemsResponse struct {
	QuotationResponse
	Items []QuotationItemResponse `json:"items"`
}

func toProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Titulo:    p.Titulo,
		IsRetilap: p.IsRetilap,
		IsRetie:   p.IsRetie,
		IsOtros:   p.IsOtros,
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *toProductResponse(&products[i]))
	}
	return result
}

func toEssayResponse(es *domain.Essay) *EssayResponse {
	return &EssayResponse{
		ID:               es.ID,
		Name:             es.Name,
		Category:         es.Category,
		IsDefaultRetilap: es.IsDefaultRetilap,
		IsDefaultRetie:   es.IsDefaultRetie,
	}
}

func toArrEssayResponse(essays []domain.Essay) []EssayResponse {
	result := make([]EssayResponse, 0, len(essays))
	for i := range essays {
		result = append(result, *toEssayResponse(&essays[i]))
	}
	return result
}

func toCartItemResponse(item *domain.CartItem) *CartItemResponse {
	return &CartItemResponse{
		ID:          item.ID,
		UserID:      item.UserID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		EssayIDs:    item.EssayIDs,
		EssayNames:  item.EssayNames,
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toArrCartItemResponse(items []domain.CartItem) []CartItemResponse {
	result := make([]CartItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *toCartItemResponse(&items[i]))
	}
	return result
}

func toQuotationResponse(q *domain.Quotation) *QuotationResponse {
	resp := &QuotationResponse{
		ID:        q.ID,
		UserID:    q.UserID,
		Type:      string(q.Type),
		Status:    q.Status,
		CreatedAt: q.CreatedAt,
	}
	if q.ReglamentoType != nil {
		s := string(*q.ReglamentoType)
		resp.ReglamentoType = &s
	}
	return resp
}

func toArrQuotationResponse(quotations []domain.Quotation) []QuotationResponse {
	result := make([]QuotationResponse, 0, len(quotations))
	for i := range quotations {
		result = append(result, *toQuotationResponse(&quotations[i]))
	}
	return result
}

func toQuotationWithItemsResponse(full *usecase.QuotationWithItems) *QuotationWithItemsResponse {
	items := make([]QuotationItemResponse, 0, len(full.Items))
	for _, item := range full.Items {
		itemResp := QuotationItemResponse{
			ID:          item.ID,
			QuotationID: item.QuotationID,
			ProductID:   item.ProductID,
			EssayID:     item.EssayID,
		}
		if item.Product != nil {
			itemResp.Product = toProductResponse(item.Product)
		}
		if item.Essay != nil {
			itemResp.Essay = toEssayResponse(item.Essay)
		}
		items = append(items, itemResp)
	}

	return &QuotationWithItemsResponse{
		QuotationResponse: *toQuotationResponse(&full.Quotation),
		Items:             items,
	}
}

// toQuotationItemInputs переводит плоские пары запроса один к одному.
func toQuotationItemInputs(items []QuotationItemRequest) []usecase.QuotationItemInput {
	inputs := make([]usecase.QuotationItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, usecase.QuotationItemInput{
			ProductID: item.ProductID,
			EssayID:   item.EssayID,
		})
	}
	return inputs
}
