package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/luminotest/go-backend/pkg/e"
)

func setupCartUC(t *testing.T, merge bool) (*CartUseCase, *fakeCartRepo, *fakeUserRepo) {
	t.Helper()
	cartRepo := newFakeCartRepo()
	userRepo := newFakeUserRepo()
	return NewCartUC(cartRepo, userRepo, nopLogger{}, merge), cartRepo, userRepo
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func TestAddRejectsEmptyEssayIDs(t *testing.T) {
	uc, _, _ := setupCartUC(t, false)

	_, err := uc.Add(context.Background(), &AddCartItemReq{
		UserID:     "u1",
		EssayIDs:   []int64{},
		EssayNames: []string{},
	})
	if !errors.Is(err, e.ErrEssayIDsRequired) {
		t.Fatalf("expected ErrEssayIDsRequired, got %v", err)
	}
}

func TestAddRejectsMissingEssayNames(t *testing.T) {
	uc, _, _ := setupCartUC(t, false)

	_, err := uc.Add(context.Background(), &AddCartItemReq{
		UserID:   "u1",
		EssayIDs: []int64{1},
	})
	if !errors.Is(err, e.ErrEssayNamesRequired) {
		t.Fatalf("expected ErrEssayNamesRequired, got %v", err)
	}
}

func TestAddAcceptsLengthMismatch(t *testing.T) {
	uc, _, _ := setupCartUC(t, false)

	item, err := uc.Add(context.Background(), &AddCartItemReq{
		UserID:     "u1",
		EssayIDs:   []int64{1, 2, 3},
		EssayNames: []string{"only one"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(item.EssayIDs) != 3 || len(item.EssayNames) != 1 {
		t.Fatalf("lists must be stored as given: ids=%d names=%d", len(item.EssayIDs), len(item.EssayNames))
	}
	if item.Quantity != 1 {
		t.Fatalf("quantity must default to 1, got %d", item.Quantity)
	}
}

func TestAddAppendsByDefault(t *testing.T) {
	uc, cartRepo, _ := setupCartUC(t, false)

	req := &AddCartItemReq{
		UserID:     "u1",
		ProductID:  int64Ptr(7),
		EssayIDs:   []int64{1},
		EssayNames: []string{"a"},
	}
	if _, err := uc.Add(context.Background(), req); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := uc.Add(context.Background(), req); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items, _ := cartRepo.ListByUser(context.Background(), "u1")
	if len(items) != 2 {
		t.Fatalf("expected two independent rows, got %d", len(items))
	}
}

func TestAddMergesOnProductID(t *testing.T) {
	uc, cartRepo, _ := setupCartUC(t, true)

	first := &AddCartItemReq{
		UserID:     "u1",
		ProductID:  int64Ptr(7),
		EssayIDs:   []int64{1, 2},
		EssayNames: []string{"a", "b"},
	}
	if _, err := uc.Add(context.Background(), first); err != nil {
		t.Fatalf("first add: %v", err)
	}

	second := &AddCartItemReq{
		UserID:     "u1",
		ProductID:  int64Ptr(7),
		EssayIDs:   []int64{2, 3},
		EssayNames: []string{"b", "c"},
	}
	merged, err := uc.Add(context.Background(), second)
	if err != nil {
		t.Fatalf("merging add: %v", err)
	}

	items, _ := cartRepo.ListByUser(context.Background(), "u1")
	if len(items) != 1 {
		t.Fatalf("expected a single merged row, got %d", len(items))
	}

	wantIDs := []int64{1, 2, 3}
	if len(merged.EssayIDs) != len(wantIDs) {
		t.Fatalf("merged ids: got %v, want %v", merged.EssayIDs, wantIDs)
	}
	for i, id := range wantIDs {
		if merged.EssayIDs[i] != id {
			t.Fatalf("merged ids: got %v, want %v", merged.EssayIDs, wantIDs)
		}
	}
	if merged.EssayNames[2] != "c" {
		t.Fatalf("name of appended essay: got %q, want %q", merged.EssayNames[2], "c")
	}
}

func TestAddCounterFailureIsNotFatal(t *testing.T) {
	uc, _, userRepo := setupCartUC(t, false)
	userRepo.failIncrement = true

	if _, err := uc.Add(context.Background(), &AddCartItemReq{
		UserID:     "u1",
		EssayIDs:   []int64{1},
		EssayNames: []string{"a"},
	}); err != nil {
		t.Fatalf("counter failure must not fail the add: %v", err)
	}
}

func TestAddIncrementsInteractions(t *testing.T) {
	uc, _, userRepo := setupCartUC(t, false)

	if _, err := uc.Add(context.Background(), &AddCartItemReq{
		UserID:     "u1",
		EssayIDs:   []int64{1},
		EssayNames: []string{"a"},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if userRepo.interactions["u1"] != 1 {
		t.Fatalf("interactions counter: got %d, want 1", userRepo.interactions["u1"])
	}
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	uc, cartRepo, _ := setupCartUC(t, false)
	created, _ := uc.Add(context.Background(), &AddCartItemReq{
		UserID:     "u1",
		EssayIDs:   []int64{1},
		EssayNames: []string{"a"},
	})

	if _, err := uc.UpdateQuantity(context.Background(), "u1", created.ID, 0); !errors.Is(err, e.ErrQuantityTooSmall) {
		t.Fatalf("expected ErrQuantityTooSmall, got %v", err)
	}

	if cartRepo.items[created.ID].Quantity != 1 {
		t.Fatalf("rejected update must not change state, quantity=%d", cartRepo.items[created.ID].Quantity)
	}
}

func TestUpdateQuantityScopedToOwner(t *testing.T) {
	uc, _, _ := setupCartUC(t, false)
	created, _ := uc.Add(context.Background(), &AddCartItemReq{
		UserID:     "u1",
		EssayIDs:   []int64{1},
		EssayNames: []string{"a"},
	})

	if _, err := uc.UpdateQuantity(context.Background(), "intruder", created.ID, 5); !errors.Is(err, e.ErrCartItemNotFound) {
		t.Fatalf("foreign row must look absent, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	uc, _, _ := setupCartUC(t, false)

	if err := uc.Remove(context.Background(), "u1", 12345); err != nil {
		t.Fatalf("removing an absent row must succeed: %v", err)
	}
}

func TestRemoveScopedToOwner(t *testing.T) {
	uc, cartRepo, _ := setupCartUC(t, false)
	created, _ := uc.Add(context.Background(), &AddCartItemReq{
		UserID:     "u1",
		EssayIDs:   []int64{1},
		EssayNames: []string{"a"},
	})

	if err := uc.Remove(context.Background(), "intruder", created.ID); err != nil {
		t.Fatalf("foreign delete must be silent: %v", err)
	}
	if _, ok := cartRepo.items[created.ID]; !ok {
		t.Fatalf("foreign delete must not remove the row")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	uc, cartRepo, _ := setupCartUC(t, false)
	uc.Add(context.Background(), &AddCartItemReq{UserID: "u1", EssayIDs: []int64{1}, EssayNames: []string{"a"}})
	uc.Add(context.Background(), &AddCartItemReq{UserID: "u2", EssayIDs: []int64{2}, EssayNames: []string{"b"}})

	if err := uc.Clear(context.Background(), "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := uc.Clear(context.Background(), "u1"); err != nil {
		t.Fatalf("second clear must succeed: %v", err)
	}

	u1, _ := cartRepo.ListByUser(context.Background(), "u1")
	u2, _ := cartRepo.ListByUser(context.Background(), "u2")
	if len(u1) != 0 || len(u2) != 1 {
		t.Fatalf("clear must touch only the caller's rows: u1=%d u2=%d", len(u1), len(u2))
	}
}
