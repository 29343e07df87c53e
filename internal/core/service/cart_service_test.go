package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trendythreads/storefront/internal/core/domain"
	"github.com/trendythreads/storefront/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubCartRepo struct {
	mu        sync.Mutex
	byUser    map[string]*domain.Cart
	saveCalls int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{byUser: make(map[string]*domain.Cart)}
}

func (r *stubCartRepo) FindByUser(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	clone := *cart
	clone.Items = append([]domain.CartItem(nil), cart.Items...)
	return &clone, nil
}

func (r *stubCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	clone := *cart
	clone.Items = append([]domain.CartItem(nil), cart.Items...)
	if clone.ID == "" {
		clone.ID = "cart_" + cart.UserID
	}
	r.byUser[cart.UserID] = &clone
	return nil
}

type stubProductRepo struct {
	products map[string]domain.Product
}

func newStubProductRepo(ids ...string) *stubProductRepo {
	products := make(map[string]domain.Product)
	for _, id := range ids {
		products[id] = domain.Product{ID: id, Name: "product " + id, Price: 10}
	}
	return &stubProductRepo{products: products}
}

func (r *stubProductRepo) List(_ context.Context, limit int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) (map[string]domain.Product, error) {
	resolved := make(map[string]domain.Product)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			resolved[id] = p
		}
	}
	return resolved, nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) InsertMany(_ context.Context, products []domain.Product) error {
	for i, p := range products {
		p.ID = "seeded_" + string(rune('a'+i))
		r.products[p.ID] = p
	}
	return nil
}

func newCartService(carts *stubCartRepo, products *stubProductRepo) *CartService {
	return NewCartService(carts, products, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Add
// ---------------------------------------------------------------------------

func TestCartService_Add_NewLine(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	outcome, err := svc.Add(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if outcome != ports.OutcomeAdded {
		t.Fatalf("expected OutcomeAdded, got %s", outcome)
	}

	cart := carts.byUser["u1"]
	if cart == nil {
		t.Fatalf("cart was not persisted")
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != "p1" || cart.Items[0].Quantity != 1 {
		t.Fatalf("unexpected cart items: %+v", cart.Items)
	}
}

func TestCartService_Add_RepeatedCallsAccumulateQuantity(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	const calls = 5
	for i := 0; i < calls; i++ {
		outcome, err := svc.Add(context.Background(), "u1", "p1")
		if err != nil {
			t.Fatalf("Add call %d returned error: %v", i, err)
		}
		if i > 0 && outcome != ports.OutcomeIncremented {
			t.Fatalf("call %d: expected OutcomeIncremented, got %s", i, outcome)
		}
	}

	cart := carts.byUser["u1"]
	if len(cart.Items) != 1 {
		t.Fatalf("expected a single line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != calls {
		t.Fatalf("expected quantity %d, got %d", calls, cart.Items[0].Quantity)
	}
}

func TestCartService_Add_UnknownProductStillStored(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	// Add does not validate the product reference; the orphan is filtered
	// out at read time instead.
	if _, err := svc.Add(context.Background(), "u1", "ghost"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if len(carts.byUser["u1"].Items) != 1 {
		t.Fatalf("dangling reference should be persisted")
	}

	view, err := svc.View(context.Background(), "u1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("orphaned line should not render, got %+v", view.Lines)
	}
}

// ---------------------------------------------------------------------------
// Increase / Decrease / Remove
// ---------------------------------------------------------------------------

func TestCartService_Increase(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	_, _ = svc.Add(context.Background(), "u1", "p1")

	outcome, err := svc.Increase(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Increase returned error: %v", err)
	}
	if outcome != ports.OutcomeIncremented {
		t.Fatalf("expected OutcomeIncremented, got %s", outcome)
	}
	if got := carts.byUser["u1"].Items[0].Quantity; got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
}

func TestCartService_Increase_MissingLineIsNoop(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	outcome, err := svc.Increase(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Increase returned error: %v", err)
	}
	if outcome != ports.OutcomeNoop {
		t.Fatalf("expected OutcomeNoop, got %s", outcome)
	}
}

func TestCartService_Decrease_AboveOneDecrements(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	_, _ = svc.Add(context.Background(), "u1", "p1")
	_, _ = svc.Add(context.Background(), "u1", "p1")

	outcome, err := svc.Decrease(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Decrease returned error: %v", err)
	}
	if outcome != ports.OutcomeDecremented {
		t.Fatalf("expected OutcomeDecremented, got %s", outcome)
	}
	if got := carts.byUser["u1"].Items[0].Quantity; got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
}

func TestCartService_Decrease_AtOneRemovesLine(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	_, _ = svc.Add(context.Background(), "u1", "p1")

	outcome, err := svc.Decrease(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Decrease returned error: %v", err)
	}
	if outcome != ports.OutcomeRemoved {
		t.Fatalf("expected OutcomeRemoved, got %s", outcome)
	}
	if got := len(carts.byUser["u1"].Items); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestCartService_Decrease_MissingLineIsNoop(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	outcome, err := svc.Decrease(context.Background(), "u1", "ghost")
	if err != nil {
		t.Fatalf("Decrease returned error: %v", err)
	}
	if outcome != ports.OutcomeNoop {
		t.Fatalf("expected OutcomeNoop, got %s", outcome)
	}
}

func TestCartService_Remove_DropsAllMatchingLines(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1", "p2"))

	// Seed a cart with accidental duplicate lines to prove Remove filters
	// rather than splicing a single index.
	carts.byUser["u1"] = &domain.Cart{
		ID:     "cart_u1",
		UserID: "u1",
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
			{ProductID: "p1", Quantity: 3},
		},
	}

	outcome, err := svc.Remove(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if outcome != ports.OutcomeRemoved {
		t.Fatalf("expected OutcomeRemoved, got %s", outcome)
	}

	cart := carts.byUser["u1"]
	if len(cart.Items) != 1 || cart.Items[0].ProductID != "p2" {
		t.Fatalf("unexpected items after remove: %+v", cart.Items)
	}
}

func TestCartService_Remove_MissingLineIsNoop(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	outcome, err := svc.Remove(context.Background(), "u1", "ghost")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if outcome != ports.OutcomeNoop {
		t.Fatalf("expected OutcomeNoop, got %s", outcome)
	}
}

// ---------------------------------------------------------------------------
// View / ItemCount
// ---------------------------------------------------------------------------

func TestCartService_View_NoCartIsEmptyShell(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	view, err := svc.View(context.Background(), "u1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(view.Lines) != 0 || view.Total != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
	// Viewing must not persist anything.
	if carts.saveCalls != 0 {
		t.Fatalf("View persisted a cart: %d save calls", carts.saveCalls)
	}
}

func TestCartService_View_AnonymousUser(t *testing.T) {
	svc := newCartService(newStubCartRepo(), newStubProductRepo("p1"))

	view, err := svc.View(context.Background(), "")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty view for anonymous user")
	}
}

func TestCartService_View_Totals(t *testing.T) {
	carts := newStubCartRepo()
	products := newStubProductRepo("p1", "p2")
	products.products["p1"] = domain.Product{ID: "p1", Name: "camera", Price: 499.99}
	products.products["p2"] = domain.Product{ID: "p2", Name: "bag", Price: 79.99}
	svc := newCartService(carts, products)

	_, _ = svc.Add(context.Background(), "u1", "p1")
	_, _ = svc.Add(context.Background(), "u1", "p2")
	_, _ = svc.Add(context.Background(), "u1", "p2")

	view, err := svc.View(context.Background(), "u1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(view.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Lines))
	}
	want := 499.99 + 2*79.99
	if diff := view.Total - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected total %.2f, got %.2f", want, view.Total)
	}
}

func TestCartService_ItemCount(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1", "p2"))

	// No session.
	if n, err := svc.ItemCount(context.Background(), ""); err != nil || n != 0 {
		t.Fatalf("anonymous count: got %d, %v", n, err)
	}

	// Session but no cart yet.
	if n, err := svc.ItemCount(context.Background(), "u1"); err != nil || n != 0 {
		t.Fatalf("empty cart count: got %d, %v", n, err)
	}

	_, _ = svc.Add(context.Background(), "u1", "p1")
	_, _ = svc.Add(context.Background(), "u1", "p2")
	_, _ = svc.Add(context.Background(), "u1", "p2")
	_, _ = svc.Add(context.Background(), "u1", "ghost") // orphan, excluded

	n, err := svc.ItemCount(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ItemCount returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected count 3 (orphan excluded), got %d", n)
	}
}

// ---------------------------------------------------------------------------
// End-to-end cart lifecycle
// ---------------------------------------------------------------------------

func TestCartService_Lifecycle(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("P1"))
	ctx := context.Background()

	if _, err := svc.Add(ctx, "alice", "P1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if items := carts.byUser["alice"].Items; len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("after first add: %+v", items)
	}

	if _, err := svc.Add(ctx, "alice", "P1"); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if items := carts.byUser["alice"].Items; items[0].Quantity != 2 {
		t.Fatalf("after second add: %+v", items)
	}

	if _, err := svc.Decrease(ctx, "alice", "P1"); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if items := carts.byUser["alice"].Items; items[0].Quantity != 1 {
		t.Fatalf("after decrease: %+v", items)
	}

	if _, err := svc.Decrease(ctx, "alice", "P1"); err != nil {
		t.Fatalf("final decrease: %v", err)
	}
	if items := carts.byUser["alice"].Items; len(items) != 0 {
		t.Fatalf("cart should be empty, got %+v", items)
	}
}

func TestCartService_ConcurrentAddsAreSerialized(t *testing.T) {
	carts := newStubCartRepo()
	svc := newCartService(carts, newStubProductRepo("p1"))

	const goroutines = 20
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = svc.Add(context.Background(), "u1", "p1")
		}()
	}
	wg.Wait()

	if got := carts.byUser["u1"].Items[0].Quantity; got != goroutines {
		t.Fatalf("lost update: expected quantity %d, got %d", goroutines, got)
	}
}
