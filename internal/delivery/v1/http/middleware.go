package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
)

type ctxKey int

const identityKey ctxKey = 0

// AuthMiddleware проверяет bearer-токен и кладёт идентичность в контекст.
// При выключенном провайдере все запросы получают dev-идентичность.
type AuthMiddleware struct {
	verifier usecase.CredentialVerifier
	logger   logger.Logger
}

func NewAuthMiddleware(verifier usecase.CredentialVerifier, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

func (m *AuthMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.verifier.Enabled() {
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), usecase.NewDevIdentity())))
			return
		}

		token := bearerToken(r)
		if token == "" {
			WriteError(w, e.ErrNoToken)
			return
		}

		identity, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			m.logger.Warnf("Token verification failed: %v", err)
			WriteError(w, e.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func withIdentity(ctx context.Context, identity *usecase.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromCtx возвращает идентичность запроса, положенную middleware.
func IdentityFromCtx(ctx context.Context) (*usecase.Identity, error) {
	identity, ok := ctx.Value(identityKey).(*usecase.Identity)
	if !ok || identity == nil {
		return nil, e.ErrNoToken
	}

	return identity, nil
}
