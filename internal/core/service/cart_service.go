package service

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/trendythreads/storefront/internal/core/domain"
	"github.com/trendythreads/storefront/internal/core/ports"
)

// lockStripes is the number of mutexes the per-user lock table is sharded
// across. Same-user mutations always land on the same stripe.
const lockStripes = 64

// CartService maintains one cart per user.
//
// Every read-modify-write mutation is serialized per user through a
// striped mutex table, closing the lost-update window a plain
// find-then-save sequence would leave open under concurrent requests
// (e.g. a double-clicked "+" button).
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	locks    [lockStripes]sync.Mutex
	log      zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: log}
}

// lockFor maps a user ID deterministically to a stripe.
func (s *CartService) lockFor(userID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return &s.locks[h.Sum32()%lockStripes]
}

// getOrCreate loads the user's cart, returning an empty unsaved shell
// when none exists yet. The shell is not persisted until first mutation.
func (s *CartService) getOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return &domain.Cart{UserID: userID}, nil
		}
		return nil, err
	}
	return cart, nil
}

// Add puts one unit of productID in the cart: an existing line gets its
// quantity bumped, otherwise a new line with quantity 1 is appended.
// The product reference is not validated; a dangling ID is filtered out
// at read time.
func (s *CartService) Add(ctx context.Context, userID, productID string) (ports.MutationOutcome, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return ports.OutcomeNoop, err
	}

	outcome := ports.OutcomeAdded
	if i := cart.IndexOf(productID); i >= 0 {
		cart.Items[i].Quantity++
		outcome = ports.OutcomeIncremented
	} else {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: 1})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return ports.OutcomeNoop, err
	}

	s.log.Debug().Str("user_id", userID).Str("product_id", productID).Str("outcome", string(outcome)).Msg("cart add")
	return outcome, nil
}

// Increase bumps the quantity of an existing line by one. A missing line
// is a no-op, reported as such rather than an error.
func (s *CartService) Increase(ctx context.Context, userID, productID string) (ports.MutationOutcome, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return ports.OutcomeNoop, err
	}

	outcome := ports.OutcomeNoop
	if i := cart.IndexOf(productID); i >= 0 {
		cart.Items[i].Quantity++
		outcome = ports.OutcomeIncremented
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return ports.OutcomeNoop, err
	}
	return outcome, nil
}

// Decrease lowers the quantity of a line by one; a line at quantity 1 is
// removed entirely. Quantities never persist at zero. A missing line is
// a no-op.
func (s *CartService) Decrease(ctx context.Context, userID, productID string) (ports.MutationOutcome, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return ports.OutcomeNoop, err
	}

	outcome := ports.OutcomeNoop
	if i := cart.IndexOf(productID); i >= 0 {
		if cart.Items[i].Quantity > 1 {
			cart.Items[i].Quantity--
			outcome = ports.OutcomeDecremented
		} else {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			outcome = ports.OutcomeRemoved
		}
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return ports.OutcomeNoop, err
	}
	return outcome, nil
}

// Remove drops every line matching productID. Filtering rather than a
// single splice keeps the result correct even if duplicate lines ever
// crept in.
func (s *CartService) Remove(ctx context.Context, userID, productID string) (ports.MutationOutcome, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return ports.OutcomeNoop, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	outcome := ports.OutcomeNoop
	if len(kept) != len(cart.Items) {
		outcome = ports.OutcomeRemoved
	}
	cart.Items = kept

	if err := s.carts.Save(ctx, cart); err != nil {
		return ports.OutcomeNoop, err
	}
	return outcome, nil
}

// View returns the cart with product data populated. Lines whose product
// no longer resolves are dropped from the view only — the persisted
// document is rewritten on the next mutation, not here.
func (s *CartService) View(ctx context.Context, userID string) (*ports.CartView, error) {
	if userID == "" {
		return &ports.CartView{}, nil
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := s.resolveLines(ctx, cart)
	if err != nil {
		return nil, err
	}

	view := &ports.CartView{Lines: lines}
	for _, line := range lines {
		view.Total += line.Subtotal()
	}
	return view, nil
}

// ItemCount sums quantities over non-orphaned lines; an empty userID
// (anonymous visitor) counts as zero. No caching — callers get a fresh
// count on every request.
func (s *CartService) ItemCount(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, nil
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	lines, err := s.resolveLines(ctx, cart)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count, nil
}

// resolveLines joins cart items with their products, silently dropping
// orphaned references.
func (s *CartService) resolveLines(ctx context.Context, cart *domain.Cart) ([]ports.CartLine, error) {
	if len(cart.Items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	resolved, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]ports.CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, ok := resolved[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, ports.CartLine{Product: product, Quantity: item.Quantity})
	}
	return lines, nil
}
