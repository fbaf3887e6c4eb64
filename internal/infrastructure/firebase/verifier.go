package firebase

import (
	"context"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/jimlawless/whereami"
	"github.com/luminotest/go-backend/internal/cfg"
	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
	"google.golang.org/api/option"
)

// Verifier проверяет bearer-токены через Firebase Auth.
// Без учётных данных остаётся выключенным: запросы получают dev-идентичность.
type Verifier struct {
	client *auth.Client
	logger logger.Logger
}

func NewVerifier(ctx context.Context, cfg *cfg.FirebaseCfg, logger logger.Logger) (*Verifier, error) {
	if cfg.CredentialsFile == "" {
		return &Verifier{logger: logger}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Verifier{
		client: client,
		logger: logger,
	}, nil
}

func (v *Verifier) Enabled() bool {
	return v.client != nil
}

// Verify проверяет подпись токена и собирает идентичность.
// Имя пользователя дочитывается из профиля; его отсутствие не фатально.
func (v *Verifier) Verify(ctx context.Context, token string) (*usecase.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, e.ErrInvalidToken
	}

	identity := &usecase.Identity{UserID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}

	user, err := v.client.GetUser(ctx, decoded.UID)
	if err != nil {
		v.logger.Warnf("Failed to load user profile %s: %v", decoded.UID, err)
		return identity, nil
	}

	if user.Email != "" {
		identity.Email = user.Email
	}
	identity.FirstName, identity.LastName = splitDisplayName(user.DisplayName)

	return identity, nil
}

// splitDisplayName делит display name на имя и фамилию по первому пробелу.
func splitDisplayName(displayName string) (string, string) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return "", ""
	}

	parts := strings.SplitN(displayName, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}

	return parts[0], strings.TrimSpace(parts[1])
}
