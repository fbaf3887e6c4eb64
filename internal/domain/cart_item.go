package domain

import "time"

// CartItem — строка корзины пользователя: набор испытаний,
// опционально привязанный к продукту.
// EssayNames позиционно соответствует EssayIDs; длины не сверяются на сервере,
// клиент отвечает за согласованность.
type CartItem struct {
	ID          int64
	UserID      string
	ProductID   *int64
	ProductName *string
	EssayIDs    []int64
	EssayNames  []string
	Quantity    int
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

func NewCartItem(userID string, productID *int64, productName *string, essayIDs []int64, essayNames []string) *CartItem {
	return &CartItem{
		UserID:      userID,
		ProductID:   productID,
		ProductName: productName,
		EssayIDs:    essayIDs,
		EssayNames:  essayNames,
		Quantity:    1,
	}
}
