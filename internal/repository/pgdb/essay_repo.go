package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/repository/pgdb/converter"
	"github.com/luminotest/go-backend/pkg/e"
)

// EssayRepo реализует репозиторий испытаний поверх PostgreSQL.
type EssayRepo struct {
	pool *pgxpool.Pool
	conv converter.EssayConverter
}

func NewEssayRepo(pool *pgxpool.Pool, conv converter.EssayConverter) *EssayRepo {
	return &EssayRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает все испытания каталога в порядке вставки.
func (r *EssayRepo) List(ctx context.Context) ([]domain.Essay, error) {
	query := `
		SELECT id, name, category, is_default_retilap, is_default_retie
		FROM essays
		ORDER BY id;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.EssayModel, 0)
	for rows.Next() {
		var model converter.EssayModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Category,
			&model.IsDefaultRetilap, &model.IsDefaultRetie,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

// Create идемпотентно создаёт испытание по уникальному имени.
func (r *EssayRepo) Create(ctx context.Context, essay *domain.Essay) (*domain.Essay, error) {
	model := r.conv.ToModel(essay)
	query := `
		INSERT INTO essays (name, category, is_default_retilap, is_default_retie)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET category = EXCLUDED.category
		RETURNING id, name, category, is_default_retilap, is_default_retie;
	`

	if err := r.pool.QueryRow(ctx, query,
		model.Name, model.Category, model.IsDefaultRetilap, model.IsDefaultRetie,
	).Scan(
		&model.ID, &model.Name, &model.Category,
		&model.IsDefaultRetilap, &model.IsDefaultRetie,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

// ListIDsByProduct возвращает идентификаторы испытаний, привязанных к продукту.
// Пустой результат — не ошибка: связей может не быть.
func (r *EssayRepo) ListIDsByProduct(ctx context.Context, productID int64) ([]int64, error) {
	query := `
		SELECT essay_id
		FROM product_essays
		WHERE product_id = $1
		ORDER BY essay_id;
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return ids, nil
}
