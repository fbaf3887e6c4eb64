package domain

import "time"

// QuotationType — сценарий, по которому собиралась котировка.
type QuotationType string

const (
	QuotationTypeReglamento QuotationType = "REGLAMENTO"
	QuotationTypeProducto   QuotationType = "PRODUCTO"
	QuotationTypeEnsayo     QuotationType = "ENSAYO"
)

func (t QuotationType) Valid() bool {
	switch t {
	case QuotationTypeReglamento, QuotationTypeProducto, QuotationTypeEnsayo:
		return true
	default:
		return false
	}
}

// ReglamentoType — регламент, обязателен только для котировок типа REGLAMENTO.
type ReglamentoType string

const (
	ReglamentoRetilap ReglamentoType = "RETILAP"
	ReglamentoRetie   ReglamentoType = "RETIE"
	ReglamentoOtros   ReglamentoType = "OTROS"
)

func (t ReglamentoType) Valid() bool {
	switch t {
	case ReglamentoRetilap, ReglamentoRetie, ReglamentoOtros:
		return true
	default:
		return false
	}
}

// QuotationStatusPending — статус только что созданной котировки.
// Дальнейшие переходы статуса выполняет внешняя система.
const QuotationStatusPending = "PENDING"

// Quotation — сохранённый запрос на котировку лабораторных услуг.
// После создания ядро её не мутирует.
type Quotation struct {
	ID             int64
	UserID         string
	Type           QuotationType
	ReglamentoType *ReglamentoType
	Status         string
	CreatedAt      time.Time
}

func NewQuotation(userID string, quotationType QuotationType, reglamentoType *ReglamentoType) *Quotation {
	return &Quotation{
		UserID:         userID,
		Type:           quotationType,
		ReglamentoType: reglamentoType,
		Status:         QuotationStatusPending,
	}
}

// QuotationItem — одна пара (продукт?, испытание?) котировки.
// Количество выражается повторением строк: поле quantity отсутствует.
type QuotationItem struct {
	ID          int64
	QuotationID int64
	ProductID   *int64
	EssayID     *int64
}
