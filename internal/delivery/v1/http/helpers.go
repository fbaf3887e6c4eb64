package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/luminotest/go-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func NewErrorResponse(code int, message, field string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Field:   field,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidQuotationType):
		return http.StatusBadRequest, e.ErrInvalidQuotationType.Error()
	case errors.Is(err, e.ErrReglamentoTypeRequired):
		return http.StatusBadRequest, e.ErrReglamentoTypeRequired.Error()
	case errors.Is(err, e.ErrInvalidReglamentoType):
		return http.StatusBadRequest, e.ErrInvalidReglamentoType.Error()
	case errors.Is(err, e.ErrEssayIDsRequired):
		return http.StatusBadRequest, e.ErrEssayIDsRequired.Error()
	case errors.Is(err, e.ErrEssayNamesRequired):
		return http.StatusBadRequest, e.ErrEssayNamesRequired.Error()
	case errors.Is(err, e.ErrQuantityTooSmall):
		return http.StatusBadRequest, e.ErrQuantityTooSmall.Error()
	case errors.Is(err, e.ErrNoToken):
		return http.StatusUnauthorized, e.ErrNoToken.Error()
	case errors.Is(err, e.ErrInvalidToken):
		return http.StatusUnauthorized, e.ErrInvalidToken.Error()
	case errors.Is(err, e.ErrQuotationNotFound):
		return http.StatusNotFound, e.ErrQuotationNotFound.Error()
	case errors.Is(err, e.ErrCartItemNotFound):
		return http.StatusNotFound, e.ErrCartItemNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// fieldFor возвращает имя поля запроса, к которому относится ошибка валидации.
func fieldFor(err error) string {
	switch {
	case errors.Is(err, e.ErrInvalidQuotationType):
		return "type"
	case errors.Is(err, e.ErrReglamentoTypeRequired), errors.Is(err, e.ErrInvalidReglamentoType):
		return "reglamentoType"
	case errors.Is(err, e.ErrEssayIDsRequired):
		return "essayIds"
	case errors.Is(err, e.ErrEssayNamesRequired):
		return "essayNames"
	case errors.Is(err, e.ErrQuantityTooSmall):
		return "quantity"
	default:
		return ""
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg, fieldFor(err)))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseID читает числовой URL-параметр chi.
func parseID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, e.ErrStatusBadRequest
	}

	return id, nil
}

// decodeBody разбирает JSON-тело запроса.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.ErrStatusBadRequest
	}

	return nil
}
