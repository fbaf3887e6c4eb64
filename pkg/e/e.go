package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest       = fmt.Errorf("bad request")
	ErrInvalidQuotationType   = fmt.Errorf("type must be one of REGLAMENTO, PRODUCTO, ENSAYO")
	ErrReglamentoTypeRequired = fmt.Errorf("reglamentoType is required for REGLAMENTO quotations")
	ErrInvalidReglamentoType  = fmt.Errorf("reglamentoType must be one of RETILAP, RETIE, OTROS")
	ErrEssayIDsRequired       = fmt.Errorf("essayIds is required and must be a non-empty array")
	ErrEssayNamesRequired     = fmt.Errorf("essayNames is required and must be an array")
	ErrQuantityTooSmall       = fmt.Errorf("quantity must be at least 1")
	ErrIncorrectEnvVariable   = fmt.Errorf("incorrect env variable")

	// 401 Unauthorized
	ErrNoToken      = fmt.Errorf("no token provided")
	ErrInvalidToken = fmt.Errorf("invalid or expired token")

	// 404 Not Found
	ErrQuotationNotFound = fmt.Errorf("quotation not found")
	ErrCartItemNotFound  = fmt.Errorf("cart item not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
