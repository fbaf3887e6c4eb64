package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/repository/pgdb/converter"
	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/tr"
)

// QuotationRepo реализует репозиторий котировок поверх PostgreSQL.
// Запись котировки и её строк выполняется только внутри открытой транзакции;
// чтения работают и внутри, и вне её.
type QuotationRepo struct {
	pool *pgxpool.Pool
	conv converter.QuotationConverter
}

func NewQuotationRepo(pool *pgxpool.Pool, conv converter.QuotationConverter) *QuotationRepo {
	return &QuotationRepo{
		pool: pool,
		conv: conv,
	}
}

func (q *QuotationRepo) Create(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := q.conv.ToModel(quotation)
	query := `
		INSERT INTO quotations (user_id, type, reglamento_type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, type, reglamento_type, status, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.UserID, model.Type, model.ReglamentoType, model.Status,
	).Scan(
		&model.ID, &model.UserID, &model.Type,
		&model.ReglamentoType, &model.Status, &model.CreatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return q.conv.ToEntity(model), nil
}

// CreateItems вставляет плоские строки котировки одним запросом через unnest.
// Порядок вставки совпадает с порядком входного списка.
func (q *QuotationRepo) CreateItems(ctx context.Context, quotationID int64, items []usecase.QuotationItemInput) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	productIDs := make([]*int64, 0, len(items))
	essayIDs := make([]*int64, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
		essayIDs = append(essayIDs, item.EssayID)
	}

	query := `
		INSERT INTO quotation_items (quotation_id, product_id, essay_id)
		SELECT $1, t.product_id, t.essay_id
		FROM unnest($2::bigint[], $3::bigint[]) AS t(product_id, essay_id);
	`

	if _, err := tx.Exec(ctx, query, quotationID, productIDs, essayIDs); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ListByUser возвращает котировки пользователя, новые первыми.
func (q *QuotationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Quotation, error) {
	query := `
		SELECT id, user_id, type, reglamento_type, status, created_at
		FROM quotations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;
	`

	rows, err := q.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.QuotationModel, 0)
	for rows.Next() {
		var model converter.QuotationModel
		if err := rows.Scan(
			&model.ID, &model.UserID, &model.Type,
			&model.ReglamentoType, &model.Status, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return q.conv.ToArrEntity(models), nil
}

// GetWithItems возвращает котировку со строками и подгруженными продуктами
// и испытаниями. Отсутствующая котировка — e.ErrQuotationNotFound.
func (q *QuotationRepo) GetWithItems(ctx context.Context, id int64) (*usecase.QuotationWithItems, error) {
	db := dbFromCtx(ctx, q.pool)

	var model converter.QuotationModel
	query := `
		SELECT id, user_id, type, reglamento_type, status, created_at
		FROM quotations
		WHERE id = $1;
	`
	if err := db.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.UserID, &model.Type,
		&model.ReglamentoType, &model.Status, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrQuotationNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsQuery := `
		SELECT
			qi.id, qi.quotation_id, qi.product_id, qi.essay_id,
			pr.id, pr.name, pr.category, pr.titulo, pr.is_retilap, pr.is_retie, pr.is_otros,
			es.id, es.name, es.category, es.is_default_retilap, es.is_default_retie
		FROM quotation_items qi
		LEFT JOIN products pr ON pr.id = qi.product_id
		LEFT JOIN essays es ON es.id = qi.essay_id
		WHERE qi.quotation_id = $1
		ORDER BY qi.id;
	`

	rows, err := db.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	items := make([]usecase.QuotationItemDetail, 0)
	for rows.Next() {
		var item usecase.QuotationItemDetail
		var (
			prID      *int64
			prName    *string
			prCat     *string
			prTitulo  *string
			prRetilap *bool
			prRetie   *bool
			prOtros   *bool
			esID      *int64
			esName    *string
			esCat     *string
			esRetilap *bool
			esRetie   *bool
		)

		if err := rows.Scan(
			&item.ID, &item.QuotationID, &item.ProductID, &item.EssayID,
			&prID, &prName, &prCat, &prTitulo, &prRetilap, &prRetie, &prOtros,
			&esID, &esName, &esCat, &esRetilap, &esRetie,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if prID != nil {
			item.Product = &domain.Product{
				ID:        *prID,
				Name:      *prName,
				Category:  *prCat,
				Titulo:    prTitulo,
				IsRetilap: *prRetilap,
				IsRetie:   *prRetie,
				IsOtros:   *prOtros,
			}
		}
		if esID != nil {
			item.Essay = &domain.Essay{
				ID:               *esID,
				Name:             *esName,
				Category:         *esCat,
				IsDefaultRetilap: *esRetilap,
				IsDefaultRetie:   *esRetie,
			}
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &usecase.QuotationWithItems{
		Quotation: *q.conv.ToEntity(&model),
		Items:     items,
	}, nil
}
