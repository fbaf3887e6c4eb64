package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/repository/pgdb/converter"
	"github.com/luminotest/go-backend/pkg/e"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает все продукты каталога в порядке вставки.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, titulo, is_retilap, is_retie, is_otros
		FROM products
		ORDER BY id;
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Category, &model.Titulo,
			&model.IsRetilap, &model.IsRetie, &model.IsOtros,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// Create идемпотентно создаёт продукт по уникальному имени.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (name, category, titulo, is_retilap, is_retie, is_otros)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET category = EXCLUDED.category
		RETURNING id, name, category, titulo, is_retilap, is_retie, is_otros;
	`

	if err := p.pool.QueryRow(ctx, query,
		model.Name, model.Category, model.Titulo,
		model.IsRetilap, model.IsRetie, model.IsOtros,
	).Scan(
		&model.ID, &model.Name, &model.Category, &model.Titulo,
		&model.IsRetilap, &model.IsRetie, &model.IsOtros,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Count возвращает число продуктов; используется для пропуска повторного наполнения.
func (p *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
