package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"storefront/models"
	"storefront/storage"
)

// SessionStore persists the signed-in user and token per client id,
// mirroring the "user" and "token" keys the web client keeps in
// localStorage.
type SessionStore struct {
	mu      sync.Mutex
	storage storage.Store
}

func NewSessionStore(st storage.Store) *SessionStore {
	return &SessionStore{storage: st}
}

func (s *SessionStore) Save(clientID string, user models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if err := s.storage.Save(userKey(clientID), data); err != nil {
		return fmt.Errorf("persisting user: %w", err)
	}
	if err := s.storage.Save(tokenKey(clientID), []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	return nil
}

func (s *SessionStore) User(clientID string) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.storage.Load(userKey(clientID))
	if err != nil || !ok {
		return models.User{}, false, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, false, fmt.Errorf("decoding user: %w", err)
	}
	return user, true, nil
}

func (s *SessionStore) Clear(clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(userKey(clientID)); err != nil {
		return fmt.Errorf("clearing user: %w", err)
	}
	if err := s.storage.Delete(tokenKey(clientID)); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	return nil
}

func userKey(clientID string) string {
	return "user:" + clientID
}

func tokenKey(clientID string) string {
	return "token:" + clientID
}
