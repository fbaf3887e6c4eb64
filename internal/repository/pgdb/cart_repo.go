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

const cartItemColumns = `id, user_id, product_id, product_name, essay_ids, essay_names, quantity, created_at, updated_at`

// CartRepo реализует репозиторий корзины поверх PostgreSQL.
// Все операции, адресующие строку по id, дополнительно ограничены user_id:
// чужие строки неотличимы от отсутствующих.
type CartRepo struct {
	pool *pgxpool.Pool
	conv converter.CartItemConverter
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartItemConverter) *CartRepo {
	return &CartRepo{
		pool: pool,
		conv: conv,
	}
}

// ListByUser возвращает строки корзины пользователя, старые первыми.
func (c *CartRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items
		WHERE user_id = $1
		ORDER BY id;
	`

	rows, err := c.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.CartItemModel, 0)
	for rows.Next() {
		model, err := scanCartItem(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := c.conv.ToArrEntity(models)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return items, nil
}

// FindByUserAndProduct возвращает строку корзины с данным продуктом
// или (nil, nil), если её нет.
func (c *CartRepo) FindByUserAndProduct(ctx context.Context, userID string, productID int64) (*domain.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items
		WHERE user_id = $1 AND product_id = $2
		ORDER BY id
		LIMIT 1;
	`

	model, err := scanCartItem(c.pool.QueryRow(ctx, query, userID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.entity(model)
}

// Create добавляет строку корзины.
func (c *CartRepo) Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	model, err := c.conv.ToModel(item)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO cart_items (user_id, product_id, product_name, essay_ids, essay_names, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + cartItemColumns + `;
	`

	created, err := scanCartItem(c.pool.QueryRow(ctx, query,
		model.UserID, model.ProductID, model.ProductName,
		model.EssayIDs, model.EssayNames, model.Quantity,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.entity(created)
}

// ReplaceEssays перезаписывает списки испытаний строки корзины.
func (c *CartRepo) ReplaceEssays(ctx context.Context, userID string, itemID int64, essayIDs []int64, essayNames []string) (*domain.CartItem, error) {
	encodedIDs, err := converter.EncodeIDs(essayIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	encodedNames, err := converter.EncodeNames(essayNames)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE cart_items
		SET essay_ids = $1, essay_names = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING ` + cartItemColumns + `;
	`

	model, err := scanCartItem(c.pool.QueryRow(ctx, query, encodedIDs, encodedNames, itemID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCartItemNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.entity(model)
}

// UpdateQuantity перезаписывает количество строки корзины.
func (c *CartRepo) UpdateQuantity(ctx context.Context, userID string, itemID int64, quantity int) (*domain.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING ` + cartItemColumns + `;
	`

	model, err := scanCartItem(c.pool.QueryRow(ctx, query, quantity, itemID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCartItemNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.entity(model)
}

// Delete удаляет строку корзины пользователя. Ноль затронутых строк — не ошибка.
func (c *CartRepo) Delete(ctx context.Context, userID string, itemID int64) error {
	query := `DELETE FROM cart_items WHERE id = $1 AND user_id = $2;`

	if _, err := c.pool.Exec(ctx, query, itemID, userID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteByUser очищает корзину пользователя.
func (c *CartRepo) DeleteByUser(ctx context.Context, userID string) error {
	query := `DELETE FROM cart_items WHERE user_id = $1;`

	if _, err := c.pool.Exec(ctx, query, userID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) entity(model *converter.CartItemModel) (*domain.CartItem, error) {
	item, err := c.conv.ToEntity(model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return item, nil
}

func scanCartItem(row pgx.Row) (*converter.CartItemModel, error) {
	var model converter.CartItemModel
	if err := row.Scan(
		&model.ID, &model.UserID, &model.ProductID, &model.ProductName,
		&model.EssayIDs, &model.EssayNames, &model.Quantity,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &model, nil
}
