package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/pkg/e"
)

func TestFlattenCartProducesOnePairPerEssay(t *testing.T) {
	items := []domain.CartItem{
		{UserID: "u1", ProductID: int64Ptr(7), EssayIDs: []int64{1, 2, 3}, EssayNames: []string{"a", "b", "c"}, Quantity: 5},
		{UserID: "u1", EssayIDs: []int64{4}, EssayNames: []string{"d"}, Quantity: 2},
	}

	flat := FlattenCart(items)

	if len(flat) != 4 {
		t.Fatalf("flattening must ignore quantity and emit one pair per essay: got %d, want 4", len(flat))
	}
	for i := 0; i < 3; i++ {
		if flat[i].ProductID == nil || *flat[i].ProductID != 7 {
			t.Fatalf("pair %d must carry the line's productId", i)
		}
	}
	if flat[3].ProductID != nil {
		t.Fatalf("pair without product must keep nil productId")
	}
	if *flat[3].EssayID != 4 {
		t.Fatalf("essay id of last pair: got %d, want 4", *flat[3].EssayID)
	}
}

func TestFlattenCartEmpty(t *testing.T) {
	if flat := FlattenCart(nil); len(flat) != 0 {
		t.Fatalf("empty cart must flatten to an empty list, got %d", len(flat))
	}
}

func TestAggregateItemsCountsRepetitions(t *testing.T) {
	essayA := &domain.Essay{ID: 1, Name: "Fotometría"}
	essayB := &domain.Essay{ID: 2, Name: "Endurancia"}
	product := &domain.Product{ID: 7, Name: "Luminarias LED"}

	items := []QuotationItemDetail{
		{EssayID: int64Ptr(1), Essay: essayA, ProductID: int64Ptr(7), Product: product},
		{EssayID: int64Ptr(2), Essay: essayB},
		{EssayID: int64Ptr(1), Essay: essayA},
		{EssayID: int64Ptr(1), Essay: essayA},
	}

	aggregated := aggregateItems(items)

	if len(aggregated) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(aggregated))
	}
	if aggregated[0].EssayID != 1 || aggregated[0].Quantity != 3 {
		t.Fatalf("first group: got essay %d quantity %d, want essay 1 quantity 3", aggregated[0].EssayID, aggregated[0].Quantity)
	}
	if aggregated[1].EssayID != 2 || aggregated[1].Quantity != 1 {
		t.Fatalf("second group: got essay %d quantity %d, want essay 2 quantity 1", aggregated[1].EssayID, aggregated[1].Quantity)
	}

	total := 0
	for _, group := range aggregated {
		total += group.Quantity
	}
	if total != len(items) {
		t.Fatalf("aggregated quantities must sum to the flat item count: %d != %d", total, len(items))
	}
}

func TestAggregateItemsSkipsMissingEssay(t *testing.T) {
	items := []QuotationItemDetail{
		{ProductID: int64Ptr(7)},
		{EssayID: int64Ptr(1)},
	}

	aggregated := aggregateItems(items)
	if len(aggregated) != 1 {
		t.Fatalf("items without essayId must not be aggregated: got %d groups", len(aggregated))
	}
}

func TestAggregateItemsLastDetailsWin(t *testing.T) {
	items := []QuotationItemDetail{
		{EssayID: int64Ptr(1), Essay: &domain.Essay{ID: 1, Name: "old name"}},
		{EssayID: int64Ptr(1), Essay: &domain.Essay{ID: 1, Name: "new name"}, ProductID: int64Ptr(9), Product: &domain.Product{ID: 9, Name: "Clavijas"}},
	}

	aggregated := aggregateItems(items)
	if got := *aggregated[0].EssayName; got != "new name" {
		t.Fatalf("essay name: got %q, want %q", got, "new name")
	}
	if aggregated[0].ProductID == nil || *aggregated[0].ProductID != 9 {
		t.Fatalf("product id must be taken from the last item that had one")
	}
}

func TestValidateQuotationRequest(t *testing.T) {
	tests := []struct {
		name           string
		quotationType  string
		reglamentoType string
		wantErr        error
	}{
		{"unknown type", "BOGUS", "", e.ErrInvalidQuotationType},
		{"empty type", "", "", e.ErrInvalidQuotationType},
		{"reglamento without subtype", "REGLAMENTO", "", e.ErrReglamentoTypeRequired},
		{"reglamento with bad subtype", "REGLAMENTO", "NOPE", e.ErrInvalidReglamentoType},
		{"reglamento ok", "REGLAMENTO", "RETILAP", nil},
		{"producto ignores subtype", "PRODUCTO", "", nil},
		{"ensayo ok", "ENSAYO", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotationType, reglamentoType, err := validateQuotationRequest(&CreateQuotationReq{
				Type:           tt.quotationType,
				ReglamentoType: tt.reglamentoType,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(quotationType) != tt.quotationType {
				t.Fatalf("type: got %s, want %s", quotationType, tt.quotationType)
			}
			if tt.quotationType != "REGLAMENTO" && reglamentoType != nil {
				t.Fatalf("reglamentoType must be nil for %s", tt.quotationType)
			}
		})
	}
}

func TestBuildNotificationPayload(t *testing.T) {
	reglamento := domain.ReglamentoRetilap
	createdAt := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	full := &QuotationWithItems{
		Quotation: domain.Quotation{
			ID:             42,
			UserID:         "u1",
			Type:           domain.QuotationTypeReglamento,
			ReglamentoType: &reglamento,
			Status:         domain.QuotationStatusPending,
			CreatedAt:      createdAt,
		},
		Items: []QuotationItemDetail{
			{EssayID: int64Ptr(1), Essay: &domain.Essay{ID: 1, Name: "Fotometría"}},
			{EssayID: int64Ptr(1), Essay: &domain.Essay{ID: 1, Name: "Fotometría"}},
			{ProductID: int64Ptr(7), Product: &domain.Product{ID: 7, Name: "Luminarias"}},
		},
	}
	user := &domain.User{
		ID:          "u1",
		Email:       strPtr("user@example.com"),
		FirstName:   strPtr("Ada"),
		MoneySymbol: strPtr("$"),
	}

	payload := buildNotificationPayload(full, user)

	if payload.QuotationID != 42 || payload.UserID != "u1" {
		t.Fatalf("quotation identity lost: %+v", payload)
	}
	if payload.ReglamentoType == nil || *payload.ReglamentoType != "RETILAP" {
		t.Fatalf("reglamentoType: got %v", payload.ReglamentoType)
	}
	if payload.CreatedAt != "2025-03-14T15:09:26Z" {
		t.Fatalf("createdAt must be RFC3339 UTC, got %s", payload.CreatedAt)
	}

	// rawItems зеркалят строки один к одному, агрегат схлопывает повторы
	if len(payload.RawItems) != 3 {
		t.Fatalf("rawItems: got %d, want 3", len(payload.RawItems))
	}
	if len(payload.Items) != 1 {
		t.Fatalf("aggregated items: got %d, want 1", len(payload.Items))
	}
	if payload.Items[0].Quantity != 2 {
		t.Fatalf("aggregated quantity: got %d, want 2", payload.Items[0].Quantity)
	}

	if payload.User.Email == nil || *payload.User.Email != "user@example.com" {
		t.Fatalf("user email lost: %+v", payload.User)
	}
	if payload.User.MoneySymbol == nil || *payload.User.MoneySymbol != "$" {
		t.Fatalf("moneySymbol lost: %+v", payload.User)
	}
}

func TestBuildNotificationPayloadWithoutUser(t *testing.T) {
	full := &QuotationWithItems{
		Quotation: domain.Quotation{ID: 1, UserID: "ghost", Type: domain.QuotationTypeEnsayo},
	}

	payload := buildNotificationPayload(full, nil)
	if payload.User.Email != nil {
		t.Fatalf("absent user must map to empty fields")
	}
	if payload.ReglamentoType != nil {
		t.Fatalf("nil reglamentoType must stay nil")
	}
}
