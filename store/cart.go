// Package store holds the mutable per-client state of the storefront:
// carts, wishlists and sessions. Each store is an explicit object that
// loads its state from the injected storage on first touch and persists
// the full collection synchronously after every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"storefront/models"
	"storefront/storage"
)

// CartStore manages one cart per client id. A cart holds at most one
// entry per product id.
type CartStore struct {
	mu      sync.Mutex
	storage storage.Store
	carts   map[string][]models.CartItem
}

func NewCartStore(st storage.Store) *CartStore {
	return &CartStore{
		storage: st,
		carts:   map[string][]models.CartItem{},
	}
}

// Add inserts the product with the given quantity (minimum 1). Adding a
// product that is already in the cart leaves the existing entry untouched,
// quantity included.
func (s *CartStore) Add(clientID string, product models.Product, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(clientID)
	for _, item := range items {
		if item.ID == product.ID {
			return nil
		}
	}

	if quantity < 1 {
		quantity = 1
	}
	items = append(items, models.CartItem{Product: product, Quantity: quantity})
	return s.persist(clientID, items)
}

// Remove deletes the entry for the product id; absent ids are a no-op.
func (s *CartStore) Remove(clientID string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(clientID)
	for i, item := range items {
		if item.ID == productID {
			items = append(items[:i], items[i+1:]...)
			return s.persist(clientID, items)
		}
	}
	return nil
}

// SetQuantity updates the quantity for the product id, clamped to a
// minimum of 1; absent ids are a no-op.
func (s *CartStore) SetQuantity(clientID string, productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}

	items := s.load(clientID)
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			return s.persist(clientID, items)
		}
	}
	return nil
}

func (s *CartStore) Clear(clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[clientID] = []models.CartItem{}
	if err := s.storage.Delete(cartKey(clientID)); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}

// Items returns a copy of the cart's entries.
func (s *CartStore) Items(clientID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(clientID)
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// Count is the number of distinct entries, used for the cart badge.
func (s *CartStore) Count(clientID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.load(clientID))
}

// Subtotal is the sum of price times quantity over all entries.
func (s *CartStore) Subtotal(clientID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal float64
	for _, item := range s.load(clientID) {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// load returns the in-memory cart, hydrating it from storage the first
// time a client id is seen. Callers must hold the mutex.
func (s *CartStore) load(clientID string) []models.CartItem {
	if items, ok := s.carts[clientID]; ok {
		return items
	}

	items := []models.CartItem{}
	data, ok, err := s.storage.Load(cartKey(clientID))
	if err == nil && ok {
		if err := json.Unmarshal(data, &items); err != nil {
			log.Printf("Discarding corrupt cart state for client %s: %v", clientID, err)
			items = []models.CartItem{}
		}
	}
	s.carts[clientID] = items
	return items
}

func (s *CartStore) persist(clientID string, items []models.CartItem) error {
	s.carts[clientID] = items
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.storage.Save(cartKey(clientID), data); err != nil {
		return fmt.Errorf("persisting cart: %w", err)
	}
	return nil
}

func cartKey(clientID string) string {
	return "cart:" + clientID
}
