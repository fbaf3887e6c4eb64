package http

import (
	"net/http"

	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// listCart
//
//	@Summary		Содержимое корзины
//	@Description	Возвращает все строки корзины текущего пользователя
//	@Tags			cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		CartItemResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/cart [get]
func (h *CartHandler) listCart(w http.ResponseWriter, r *http.Request) {
	identity, err := IdentityFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.cartUsecase.List(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrCartItemResponse(items))
}

// addCartItem
//
//	@Summary		Добавление строки корзины
//	@Description	Добавляет выбор испытаний в корзину текущего пользователя
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		AddCartItemRequest	true	"Строка корзины"
//	@Success		201		{object}	CartItemResponse
//	@Failure		400		{object}	ErrorResponse	"Пустой essayIds или отсутствующий essayNames"
//	@Failure		401		{object}	ErrorResponse
//	@Router			/cart [post]
func (h *CartHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	identity, err := IdentityFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var req AddCartItemRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.cartUsecase.Add(r.Context(), usecase.NewAddCartItemReq(
		identity.UserID, req.ProductID, req.ProductName, req.EssayIDs, req.EssayNames,
	))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCartItemResponse(item))
}

// updateQuantity
//
//	@Summary		Изменение количества
//	@Description	Перезаписывает количество строки корзины
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		integer					true	"ID строки корзины"
//	@Param			request	body		UpdateQuantityRequest	true	"Новое количество"
//	@Success		200		{object}	CartItemResponse
//	@Failure		400		{object}	ErrorResponse	"quantity меньше 1"
//	@Failure		404		{object}	ErrorResponse	"Строка не найдена или принадлежит другому пользователю"
//	@Router			/cart/{id}/quantity [patch]
func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	identity, err := IdentityFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	itemID, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateQuantityRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.cartUsecase.UpdateQuantity(r.Context(), identity.UserID, itemID, req.Quantity)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartItemResponse(item))
}

// removeCartItem
//
//	@Summary		Удаление строки корзины
//	@Description	Идемпотентно удаляет строку корзины текущего пользователя
//	@Tags			cart
//	@Security		BearerAuth
//	@Param			id	path	integer	true	"ID строки корзины"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Router			/cart/{id} [delete]
func (h *CartHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	identity, err := IdentityFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	itemID, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.Remove(r.Context(), identity.UserID, itemID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// clearCart
//
//	@Summary		Очистка корзины
//	@Description	Идемпотентно удаляет все строки корзины текущего пользователя
//	@Tags			cart
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Router			/cart [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	identity, err := IdentityFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.Clear(r.Context(), identity.UserID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
