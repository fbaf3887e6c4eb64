package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// disabledVerifier моделирует несконфигурированного провайдера идентичности:
// все запросы проходят с dev-идентичностью.
type disabledVerifier struct{}

func (disabledVerifier) Enabled() bool { return false }

func (disabledVerifier) Verify(context.Context, string) (*usecase.Identity, error) {
	return nil, e.ErrInvalidToken
}

type fakeCatalogUC struct {
	products []domain.Product
	essays   []domain.Essay
}

func (f *fakeCatalogUC) ListProducts(context.Context, *usecase.ProductFilter) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeCatalogUC) ListEssays(context.Context, *usecase.EssayFilter) ([]domain.Essay, error) {
	return f.essays, nil
}

type fakeQuotationUC struct {
	quotation *domain.Quotation
	full      *usecase.QuotationWithItems
	err       error
	lastReq   *usecase.CreateQuotationReq
}

func (f *fakeQuotationUC) Create(_ context.Context, req *usecase.CreateQuotationReq) (*domain.Quotation, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.quotation, nil
}

func (f *fakeQuotationUC) ListByUser(context.Context, string) ([]domain.Quotation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.quotation == nil {
		return []domain.Quotation{}, nil
	}
	return []domain.Quotation{*f.quotation}, nil
}

func (f *fakeQuotationUC) GetWithItems(context.Context, int64) (*usecase.QuotationWithItems, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.full, nil
}

type fakeCartRepo struct {
	items  map[int64]*domain.CartItem
	nextID int64
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[int64]*domain.CartItem)}
}

func (r *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	result := make([]domain.CartItem, 0)
	for id := int64(1); id <= r.nextID; id++ {
		item, ok := r.items[id]
		if ok && item.UserID == userID {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (r *fakeCartRepo) FindByUserAndProduct(_ context.Context, userID string, productID int64) (*domain.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID != nil && *item.ProductID == productID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) Create(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	r.nextID++
	stored := *item
	stored.ID = r.nextID
	r.items[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeCartRepo) ReplaceEssays(_ context.Context, userID string, itemID int64, essayIDs []int64, essayNames []string) (*domain.CartItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return nil, e.ErrCartItemNotFound
	}
	item.EssayIDs = essayIDs
	item.EssayNames = essayNames
	copied := *item
	return &copied, nil
}

func (r *fakeCartRepo) UpdateQuantity(_ context.Context, userID string, itemID int64, quantity int) (*domain.CartItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return nil, e.ErrCartItemNotFound
	}
	item.Quantity = quantity
	copied := *item
	return &copied, nil
}

func (r *fakeCartRepo) Delete(_ context.Context, userID string, itemID int64) error {
	item, ok := r.items[itemID]
	if ok && item.UserID == userID {
		delete(r.items, itemID)
	}
	return nil
}

func (r *fakeCartRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) Get(context.Context, string) (*domain.User, error) { return nil, nil }

func (fakeUserRepo) EnsureUser(context.Context, *domain.User) error { return nil }

func (fakeUserRepo) IncrementQuotations(context.Context, string) error { return nil }

func (fakeUserRepo) IncrementInteractions(context.Context, string) error { return nil }

func setupTestRouter(t *testing.T, quotationUC usecase.QuotationUC) *chi.Mux {
	t.Helper()

	catalogUC := &fakeCatalogUC{
		products: []domain.Product{{ID: 1, Name: "Luminarias LED", Category: "Accesorios", IsRetilap: true}},
		essays:   []domain.Essay{{ID: 10, Name: "Fotometría", Category: "Adhesion"}},
	}
	cartUC := usecase.NewCartUC(newFakeCartRepo(), fakeUserRepo{}, nopLogger{}, false)

	mux := chi.NewRouter()
	router := NewRouter(mux, nopLogger{})
	router.Init(catalogUC, cartUC, quotationUC, disabledVerifier{})
	return mux
}

func doJSON(t *testing.T, mux *chi.Mux, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListProductsEndpoint(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{})

	rec := doJSON(t, mux, http.MethodGet, "/api/products", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var products []ProductResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Luminarias LED" {
		t.Fatalf("unexpected products: %v", products)
	}
}

func TestListEssaysRejectsBadProductID(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{})

	rec := doJSON(t, mux, http.MethodGet, "/api/essays?productId=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{})

	rec := doJSON(t, mux, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
}

func TestAddCartItemRejectsEmptyEssayIDs(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{})

	rec := doJSON(t, mux, http.MethodPost, "/api/cart", AddCartItemRequest{
		EssayIDs:   []int64{},
		EssayNames: []string{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Field != "essayIds" {
		t.Fatalf("field: got %q, want %q", errResp.Field, "essayIds")
	}
}

func TestAddCartItemCreatedForDevIdentity(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{})

	rec := doJSON(t, mux, http.MethodPost, "/api/cart", AddCartItemRequest{
		EssayIDs:   []int64{10},
		EssayNames: []string{"Fotometría"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var item CartItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.UserID != "dev-user" {
		t.Fatalf("disabled verifier must yield the dev identity, got %q", item.UserID)
	}
	if item.Quantity != 1 {
		t.Fatalf("quantity must default to 1, got %d", item.Quantity)
	}
}

func TestUpdateQuantityNotFound(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{})

	rec := doJSON(t, mux, http.MethodPatch, "/api/cart/999/quantity", UpdateQuantityRequest{Quantity: 2})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

func TestRemoveCartItemNoContent(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{})

	rec := doJSON(t, mux, http.MethodDelete, "/api/cart/1", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 must carry no body, got %q", rec.Body.String())
	}
}

func TestCreateQuotationMapsValidationField(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{err: e.ErrReglamentoTypeRequired})

	rec := doJSON(t, mux, http.MethodPost, "/api/quotations", CreateQuotationRequest{Type: "REGLAMENTO"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Field != "reglamentoType" {
		t.Fatalf("field: got %q, want %q", errResp.Field, "reglamentoType")
	}
}

func TestCreateQuotationPassesFlatItemsThrough(t *testing.T) {
	uc := &fakeQuotationUC{quotation: &domain.Quotation{
		ID:        42,
		UserID:    "dev-user",
		Type:      domain.QuotationTypeProducto,
		Status:    domain.QuotationStatusPending,
		CreatedAt: time.Now().UTC(),
	}}
	mux := setupTestRouter(t, uc)

	productID := int64(5)
	essayA := int64(1)
	essayB := int64(2)
	rec := doJSON(t, mux, http.MethodPost, "/api/quotations", CreateQuotationRequest{
		Type: "PRODUCTO",
		Items: []QuotationItemRequest{
			{ProductID: &productID, EssayID: &essayA},
			{ProductID: &productID, EssayID: &essayB},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	if uc.lastReq == nil {
		t.Fatalf("usecase was not called")
	}
	if len(uc.lastReq.Items) != 2 {
		t.Fatalf("flat items must reach the usecase one-for-one: got %d, want 2", len(uc.lastReq.Items))
	}
	for i, want := range []int64{essayA, essayB} {
		item := uc.lastReq.Items[i]
		if item.EssayID == nil || *item.EssayID != want {
			t.Fatalf("item %d essayId: got %v, want %d", i, item.EssayID, want)
		}
		if item.ProductID == nil || *item.ProductID != productID {
			t.Fatalf("item %d must carry productId %d", i, productID)
		}
	}
	if uc.lastReq.UserID != "dev-user" {
		t.Fatalf("request must carry the caller's identity, got %q", uc.lastReq.UserID)
	}

	var resp QuotationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 42 {
		t.Fatalf("quotation id: got %d, want 42", resp.ID)
	}
}

func TestGetQuotationNotFound(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{err: e.ErrQuotationNotFound})

	rec := doJSON(t, mux, http.MethodGet, "/api/quotations/42", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

func TestGetQuotationRejectsBadID(t *testing.T) {
	mux := setupTestRouter(t, &fakeQuotationUC{})

	rec := doJSON(t, mux, http.MethodGet, "/api/quotations/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}
