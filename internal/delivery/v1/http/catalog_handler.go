package http

import (
	"net/http"
	"strconv"

	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список продуктов каталога
//	@Description	Возвращает продукты, опционально отфильтрованные по типу регламента и título
//	@Tags			catalog
//	@Produce		json
//	@Param			regulationType	query		string	false	"RETILAP, RETIE или OTROS"
//	@Param			titulo			query		string	false	"Фильтр по título"
//	@Success		200				{array}		ProductResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := &usecase.ProductFilter{
		RegulationType: r.URL.Query().Get("regulationType"),
		Titulo:         r.URL.Query().Get("titulo"),
	}

	products, err := h.catalogUsecase.ListProducts(r.Context(), filter)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// listEssays
//
//	@Summary		Список испытаний каталога
//	@Description	Возвращает испытания, опционально отфильтрованные по продукту
//	@Tags			catalog
//	@Produce		json
//	@Param			productId	query		integer	false	"ID продукта"
//	@Success		200			{array}		EssayResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/essays [get]
func (h *CatalogHandler) listEssays(w http.ResponseWriter, r *http.Request) {
	filter := &usecase.EssayFilter{}
	if raw := r.URL.Query().Get("productId"); raw != "" {
		productID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		filter.ProductID = &productID
	}

	essays, err := h.catalogUsecase.ListEssays(r.Context(), filter)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrEssayResponse(essays))
}

// health
//
//	@Summary	Проверка живости сервиса
//	@Tags		service
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
