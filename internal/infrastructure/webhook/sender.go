package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/luminotest/go-backend/internal/cfg"
	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/jitter"
	"github.com/luminotest/go-backend/pkg/logger"
)

// Sender доставляет уведомления о котировках внешнему webhook-приёмнику.
// Повторяет доставку с экспоненциальным отступлением при временных ошибках.
type Sender struct {
	client *http.Client
	cfg    *cfg.WebhookCfg
	logger logger.Logger
}

func NewSender(cfg *cfg.WebhookCfg, logger logger.Logger) *Sender {
	return &Sender{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Sender) Name() string {
	return "webhook"
}

// Send отправляет полезную нагрузку события POST-запросом.
// Ответ 2xx — успех, тело ответа игнорируется.
func (s *Sender) Send(ctx context.Context, event *usecase.OutboxEvent) error {
	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(s.cfg.RetryBase, s.cfg.RetryMax, attempt-1, jitter.DefaultJitter)
			s.logger.Debugf("Webhook retry %d for event %s in %s", attempt, event.EventID, backoff)

			select {
			case <-ctx.Done():
				return e.Wrap(whereami.WhereAmI(), ctx.Err())
			case <-time.After(backoff):
			}
		}

		lastErr = s.post(ctx, event.Payload)
		if lastErr == nil {
			return nil
		}
		if !isRetryableError(lastErr) {
			return e.Wrap(whereami.WhereAmI(), lastErr)
		}

		s.logger.Warnf("Webhook delivery attempt %d failed for event %s: %v", attempt+1, event.EventID, lastErr)
	}

	return e.Wrap(whereami.WhereAmI(), lastErr)
}

func (s *Sender) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	return fmt.Errorf("rejected: status %d", resp.StatusCode)
}

// isRetryableError отличает временные сетевые ошибки и 5xx от постоянных отказов.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"connection reset",
		"broken pipe",
		"no such host",
		"server error",
		"context deadline exceeded",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
