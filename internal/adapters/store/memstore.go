package store

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-memory ProfileSource and SavedProductSource used by
// tests and the demo binary. The hosting app replaces it with a real
// document-store implementation.
type MemStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	products map[string][]SavedProduct
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		profiles: make(map[string]Profile),
		products: make(map[string][]SavedProduct),
	}
}

// PutProfile stores or replaces a user profile.
func (m *MemStore) PutProfile(p Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = p
}

// PutSavedProducts replaces a user's saved product list.
func (m *MemStore) PutSavedProducts(userID string, products []SavedProduct) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[userID] = products
}

// Profile returns the stored profile for userID.
func (m *MemStore) Profile(_ context.Context, userID string) (Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[userID]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
	}
	return p, nil
}

// SavedProducts returns the user's saved products in save order.
// Unknown users get an empty list, not an error.
func (m *MemStore) SavedProducts(_ context.Context, userID string) ([]SavedProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.products[userID], nil
}
