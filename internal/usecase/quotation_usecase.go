package usecase

import (
	"context"
	"encoding/json"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
)

// QuotationUseCase реализует консолидацию корзины в котировку:
// валидацию, атомарное сохранение котировки со строками и публикацию
// исходящего уведомления через outbox.
type QuotationUseCase struct {
	quotationRepo QuotationRepository
	userRepo      UserRepository
	outboxRepo    OutboxRepository
	dbPool        transaction.Transactional
	logger        logger.Logger
}

func NewQuotationUC(
	quotationRepo QuotationRepository,
	userRepo UserRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *QuotationUseCase {
	return &QuotationUseCase{
		quotationRepo: quotationRepo,
		userRepo:      userRepo,
		outboxRepo:    outboxRepo,
		dbPool:        dbPool,
		logger:        logger,
	}
}

// Create создаёт котировку из плоского списка строк.
// Котировка, её строки и outbox-событие пишутся в одной транзакции;
// инкремент счётчика котировок выполняется после коммита и не фатален.
func (q *QuotationUseCase) Create(ctx context.Context, req *CreateQuotationReq) (*domain.Quotation, error) {
	const op = "QuotationUseCase.Create"

	quotationType, reglamentoType, err := validateQuotationRequest(req)
	if err != nil {
		return nil, err
	}

	// Идемпотентная страховка от отсутствующей записи пользователя
	if err := q.ensureSubmitter(ctx, req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, q.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	quotation, err := q.quotationRepo.Create(ctx, domain.NewQuotation(req.UserID, quotationType, reglamentoType))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(req.Items) > 0 {
		if err = q.quotationRepo.CreateItems(ctx, quotation.ID, req.Items); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	// Полезная нагрузка уведомления собирается из перечитанной котировки
	// с подгруженными названиями продуктов и испытаний
	full, err := q.quotationRepo.GetWithItems(ctx, quotation.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := q.userRepo.Get(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(buildNotificationPayload(full, user))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = q.outboxRepo.Create(ctx, NewOutboxEvent(quotation.ID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := q.userRepo.IncrementQuotations(ctx, req.UserID); err != nil {
		q.logger.Warnf("Failed to increment quotations for user %s: %v", req.UserID, e.Wrap(op, err))
	}

	return quotation, nil
}

// ListByUser возвращает котировки пользователя, новые первыми.
func (q *QuotationUseCase) ListByUser(ctx context.Context, userID string) ([]domain.Quotation, error) {
	const op = "QuotationUseCase.ListByUser"

	quotations, err := q.quotationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return quotations, nil
}

// GetWithItems возвращает котировку со строками и подгруженными деталями.
func (q *QuotationUseCase) GetWithItems(ctx context.Context, id int64) (*QuotationWithItems, error) {
	const op = "QuotationUseCase.GetWithItems"

	full, err := q.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return full, nil
}

func (q *QuotationUseCase) ensureSubmitter(ctx context.Context, req *CreateQuotationReq) error {
	user := domain.NewUser(req.UserID, nil, nil, nil)
	if req.Submitter != nil {
		user.Email = optString(req.Submitter.Email)
		user.FirstName = optString(req.Submitter.FirstName)
		user.LastName = optString(req.Submitter.LastName)
	}

	return q.userRepo.EnsureUser(ctx, user)
}

// validateQuotationRequest проверяет форму запроса: тип котировки обязателен,
// reglamentoType обязателен и ограничен только для типа REGLAMENTO.
// Пустой список строк допустим на уровне схемы.
func validateQuotationRequest(req *CreateQuotationReq) (domain.QuotationType, *domain.ReglamentoType, error) {
	quotationType := domain.QuotationType(req.Type)
	if !quotationType.Valid() {
		return "", nil, e.ErrInvalidQuotationType
	}

	if quotationType != domain.QuotationTypeReglamento {
		return quotationType, nil, nil
	}

	if req.ReglamentoType == "" {
		return "", nil, e.ErrReglamentoTypeRequired
	}

	reglamentoType := domain.ReglamentoType(req.ReglamentoType)
	if !reglamentoType.Valid() {
		return "", nil, e.ErrInvalidReglamentoType
	}

	return quotationType, &reglamentoType, nil
}

// FlattenCart раскрывает строки корзины в плоские пары (продукт?, испытание):
// по одной паре на каждый essayId каждой строки. Количество строки корзины
// при раскрытии НЕ умножается — итоговое quantity уведомления считается
// по повторениям essayId после раскрытия.
func FlattenCart(items []domain.CartItem) []QuotationItemInput {
	flat := make([]QuotationItemInput, 0)
	for _, item := range items {
		for _, essayID := range item.EssayIDs {
			id := essayID
			flat = append(flat, QuotationItemInput{ProductID: item.ProductID, EssayID: &id})
		}
	}

	return flat
}

// buildNotificationPayload собирает полезную нагрузку уведомления:
// агрегированный список (quantity по числу повторений essayId) и сырой
// список, зеркалящий строки котировки один к одному.
func buildNotificationPayload(full *QuotationWithItems, user *domain.User) *NotificationPayload {
	payload := &NotificationPayload{
		QuotationID:    full.Quotation.ID,
		UserID:         full.Quotation.UserID,
		Type:           string(full.Quotation.Type),
		ReglamentoType: reglamentoString(full.Quotation.ReglamentoType),
		CreatedAt:      full.Quotation.CreatedAt.UTC().Format(time.RFC3339),
		Items:          aggregateItems(full.Items),
		RawItems:       rawItems(full.Items),
	}

	if user != nil {
		payload.User = NotificationUser{
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			Email:        user.Email,
			Organizacion: user.Organizacion,
			Direccion:    user.Direccion,
			Telefono:     user.Telefono,
			Ciudad:       user.Ciudad,
			Moneda:       user.Moneda,
			MoneySymbol:  user.MoneySymbol,
		}
	}

	return payload
}

// aggregateItems группирует строки по essayId, суммируя повторения в quantity.
// Строки без essayId в агрегат не попадают. Для имени и продукта выигрывает
// последнее непустое значение; порядок групп — порядок первого вхождения.
func aggregateItems(items []QuotationItemDetail) []NotificationItem {
	order := make([]int64, 0, len(items))
	groups := make(map[int64]*NotificationItem, len(items))

	for _, item := range items {
		if item.EssayID == nil {
			continue
		}

		group, ok := groups[*item.EssayID]
		if !ok {
			group = &NotificationItem{EssayID: *item.EssayID}
			groups[*item.EssayID] = group
			order = append(order, *item.EssayID)
		}

		group.Quantity++
		if item.Essay != nil {
			group.EssayName = &item.Essay.Name
		}
		if item.ProductID != nil {
			group.ProductID = item.ProductID
		}
		if item.Product != nil {
			group.ProductName = &item.Product.Name
		}
	}

	result := make([]NotificationItem, 0, len(order))
	for _, essayID := range order {
		result = append(result, *groups[essayID])
	}

	return result
}

func rawItems(items []QuotationItemDetail) []NotificationRawItem {
	raw := make([]NotificationRawItem, 0, len(items))
	for _, item := range items {
		rawItem := NotificationRawItem{
			ProductID: item.ProductID,
			EssayID:   item.EssayID,
		}
		if item.Product != nil {
			rawItem.ProductName = &item.Product.Name
		}
		if item.Essay != nil {
			rawItem.EssayName = &item.Essay.Name
		}
		raw = append(raw, rawItem)
	}

	return raw
}

func reglamentoString(t *domain.ReglamentoType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
