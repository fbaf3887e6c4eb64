package usecase

import "context"

// CredentialVerifier проверяет bearer-учётные данные запроса.
// Ядро не зависит от конкретного провайдера идентичности.
type CredentialVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
	Enabled() bool
}

// NotificationSender — один канал доставки уведомлений о котировках.
// Ошибки каналов изолированы друг от друга и никогда не доходят до клиента.
type NotificationSender interface {
	Name() string
	Send(ctx context.Context, event *OutboxEvent) error
}
