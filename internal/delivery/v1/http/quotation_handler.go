package http

import (
	"net/http"

	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/logger"
)

type QuotationHandler struct {
	quotationUsecase usecase.QuotationUC
	logger           logger.Logger
}

func NewQuotationHandler(quotationUsecase usecase.QuotationUC, logger logger.Logger) *QuotationHandler {
	return &QuotationHandler{quotationUsecase: quotationUsecase, logger: logger}
}

// createQuotation
//
//	@Summary		Создание котировки
//	@Description	Сохраняет котировку из плоского списка пар (продукт?, испытание?)
//	@Tags			quotations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateQuotationRequest	true	"Тип котировки и плоские строки"
//	@Success		201		{object}	QuotationResponse
//	@Failure		400		{object}	ErrorResponse	"Неверный type или reglamentoType"
//	@Failure		401		{object}	ErrorResponse
//	@Router			/quotations [post]
func (h *QuotationHandler) createQuotation(w http.ResponseWriter, r *http.Request) {
	identity, err := IdentityFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CreateQuotationRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	quotation, err := h.quotationUsecase.Create(r.Context(), usecase.NewCreateQuotationReq(
		identity, req.Type, req.ReglamentoType, toQuotationItemInputs(req.Items),
	))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toQuotationResponse(quotation))
}

// listQuotations
//
//	@Summary		Котировки текущего пользователя
//	@Description	Возвращает котировки пользователя, новые первыми
//	@Tags			quotations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		QuotationResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/quotations [get]
func (h *QuotationHandler) listQuotations(w http.ResponseWriter, r *http.Request) {
	identity, err := IdentityFromCtx(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	quotations, err := h.quotationUsecase.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrQuotationResponse(quotations))
}

// getQuotation
//
//	@Summary		Котировка со строками
//	@Description	Возвращает котировку с подгруженными продуктами и испытаниями
//	@Tags			quotations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		integer	true	"ID котировки"
//	@Success		200	{object}	QuotationWithItemsResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/quotations/{id} [get]
func (h *QuotationHandler) getQuotation(w http.ResponseWriter, r *http.Request) {
	if _, err := IdentityFromCtx(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	full, err := h.quotationUsecase.GetWithItems(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toQuotationWithItemsResponse(full))
}
