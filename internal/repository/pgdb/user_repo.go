package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/repository/pgdb/converter"
	"github.com/luminotest/go-backend/pkg/e"
)

const userColumns = `id, email, first_name, last_name, organizacion, direccion, telefono, ciudad, moneda, money_symbol, quotations_count, interactions_count, created_at, updated_at`

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
// Идентификатор пользователя приходит от провайдера учётных данных,
// поэтому запись создаётся идемпотентно по внешнему id.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

// Get возвращает пользователя или (nil, nil), если записи нет.
func (u *UserRepo) Get(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;
	`

	var model converter.UserModel
	if err := dbFromCtx(ctx, u.pool).QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Email, &model.FirstName, &model.LastName,
		&model.Organizacion, &model.Direccion, &model.Telefono, &model.Ciudad,
		&model.Moneda, &model.MoneySymbol,
		&model.QuotationsCount, &model.InteractionsCount,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

// EnsureUser идемпотентно создаёт запись пользователя.
// Существующая запись не трогается: профиль мог быть дополнен вручную.
func (u *UserRepo) EnsureUser(ctx context.Context, user *domain.User) error {
	model := u.conv.ToModel(user)
	query := `
		INSERT INTO users (id, email, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING;
	`

	if _, err := u.pool.Exec(ctx, query,
		model.ID, model.Email, model.FirstName, model.LastName,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// IncrementQuotations увеличивает счётчик отправленных котировок.
func (u *UserRepo) IncrementQuotations(ctx context.Context, id string) error {
	query := `
		UPDATE users
		SET quotations_count = quotations_count + 1, updated_at = NOW()
		WHERE id = $1;
	`

	if _, err := u.pool.Exec(ctx, query, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// IncrementInteractions увеличивает счётчик действий с корзиной.
func (u *UserRepo) IncrementInteractions(ctx context.Context, id string) error {
	query := `
		UPDATE users
		SET interactions_count = interactions_count + 1, updated_at = NOW()
		WHERE id = $1;
	`

	if _, err := u.pool.Exec(ctx, query, id); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
