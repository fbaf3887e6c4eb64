package usecase

import (
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "PENDING"
	Processing OutboxStatus = "PROCESSING"
	Processed  OutboxStatus = "PROCESSED"
)

type OutboxEventType string

const EventQuotationCreated OutboxEventType = "quotation.created"

// OutboxEvent — запись исходящего уведомления, создаваемая в одной
// транзакции с котировкой и доставляемая фоновым воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	QuotationID int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

func NewOutboxEvent(quotationID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     uuid.NewString(),
		EventType:   EventQuotationCreated,
		QuotationID: quotationID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now().UTC(),
	}
}
