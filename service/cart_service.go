package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"ptr-shop/models"
	"ptr-shop/repository"
	"ptr-shop/utils"
)

// CartServiceInterface defines the contract for cart operations.
type CartServiceInterface interface {
	Items() []models.CartItem
	Add(ctx context.Context, candidate models.CartItem)
	Remove(ctx context.Context, id int64)
	Clear(ctx context.Context)
	GetTotal() int
}

// CartService holds the ordered cart line items. Every mutation is written
// through the repository; persistence failures are logged, never surfaced.
type CartService struct {
	mu       sync.Mutex
	items    []models.CartItem
	nextID   int64
	repo     repository.CartRepositoryInterface
	notifier NotifierInterface
}

// NewCartService creates a CartService and loads the saved cart. Corrupt or
// missing storage yields an empty cart.
func NewCartService(ctx context.Context, repo repository.CartRepositoryInterface, notifier NotifierInterface) *CartService {
	s := &CartService{
		nextID:   1,
		repo:     repo,
		notifier: notifier,
	}

	items, err := repo.Load(ctx)
	if err != nil {
		log.Printf("⚠️  Could not load saved cart, starting empty: %v", err)
		items = nil
	}
	s.items = items
	for _, item := range items {
		if item.ID >= s.nextID {
			s.nextID = item.ID + 1
		}
	}

	return s
}

// Ensure CartService implements CartServiceInterface
var _ CartServiceInterface = (*CartService)(nil)

// Items returns a copy of the cart in insertion order.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Add merges the candidate into an existing item with the same
// (designId, size, type) key, or appends it with a fresh id. Quantity is
// clamped to the allowed range first.
func (s *CartService) Add(ctx context.Context, candidate models.CartItem) {
	s.mu.Lock()
	candidate.Qty = utils.ClampQty(candidate.Qty)

	merged := false
	for i := range s.items {
		if s.items[i].SameVariant(candidate) {
			s.items[i].Qty += candidate.Qty
			merged = true
			break
		}
	}
	if !merged {
		candidate.ID = s.nextID
		s.nextID++
		s.items = append(s.items, candidate)
	}

	s.persist(ctx)
	s.mu.Unlock()

	s.notifier.Notify(SeveritySuccess, fmt.Sprintf("Added %s to cart", candidate.DesignName))
}

// Remove deletes the item with the given id. Unknown ids are a silent no-op.
func (s *CartService) Remove(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart. A no-op when already empty.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	s.items = nil
	s.persist(ctx)
	s.mu.Unlock()

	s.notifier.Notify(SeverityWarning, "Cart cleared")
}

// GetTotal returns the sum of all items' quantities.
func (s *CartService) GetTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Qty
	}
	return total
}

// persist writes the current collection through the repository.
// Callers hold the mutex.
func (s *CartService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.items); err != nil {
		log.Printf("⚠️  Failed to persist cart: %v", err)
	}
}
