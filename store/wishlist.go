package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"storefront/models"
	"storefront/storage"
)

// WishlistStore manages one wishlist per client id with set semantics:
// at most one entry per product id, idempotent add and remove.
type WishlistStore struct {
	mu        sync.Mutex
	storage   storage.Store
	wishlists map[string][]models.Product
}

func NewWishlistStore(st storage.Store) *WishlistStore {
	return &WishlistStore{
		storage:   st,
		wishlists: map[string][]models.Product{},
	}
}

func (s *WishlistStore) Add(clientID string, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(clientID)
	for _, item := range items {
		if item.ID == product.ID {
			return nil
		}
	}
	return s.persist(clientID, append(items, product))
}

func (s *WishlistStore) Remove(clientID string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(clientID)
	for i, item := range items {
		if item.ID == productID {
			return s.persist(clientID, append(items[:i], items[i+1:]...))
		}
	}
	return nil
}

func (s *WishlistStore) Contains(clientID string, productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.load(clientID) {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) Items(clientID string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(clientID)
	out := make([]models.Product, len(items))
	copy(out, items)
	return out
}

func (s *WishlistStore) Clear(clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlists[clientID] = []models.Product{}
	if err := s.storage.Delete(wishlistKey(clientID)); err != nil {
		return fmt.Errorf("clearing wishlist: %w", err)
	}
	return nil
}

func (s *WishlistStore) load(clientID string) []models.Product {
	if items, ok := s.wishlists[clientID]; ok {
		return items
	}

	items := []models.Product{}
	data, ok, err := s.storage.Load(wishlistKey(clientID))
	if err == nil && ok {
		if err := json.Unmarshal(data, &items); err != nil {
			log.Printf("Discarding corrupt wishlist state for client %s: %v", clientID, err)
			items = []models.Product{}
		}
	}
	s.wishlists[clientID] = items
	return items
}

func (s *WishlistStore) persist(clientID string, items []models.Product) error {
	s.wishlists[clientID] = items
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding wishlist: %w", err)
	}
	if err := s.storage.Save(wishlistKey(clientID), data); err != nil {
		return fmt.Errorf("persisting wishlist: %w", err)
	}
	return nil
}

func wishlistKey(clientID string) string {
	return "wishlist:" + clientID
}
