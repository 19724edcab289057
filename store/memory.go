package store

import (
	"context"
	"sync"

	"github.com/fomosandwich/sandwich-cart/models"
)

// MemoryStore menyimpan order di map dalam proses. Dipakai untuk test dan
// mode dev tanpa backend eksternal.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]*models.Order)}
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*models.Order, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, false, nil
	}
	cp := *order
	cp.Items = append([]models.OrderLineItem(nil), order.Items...)
	return &cp, true, nil
}

func (s *MemoryStore) Create(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[order.OrderID]; exists {
		return ErrDuplicateID
	}
	cp := *order
	cp.Items = append([]models.OrderLineItem(nil), order.Items...)
	s.orders[order.OrderID] = &cp
	return nil
}

func (s *MemoryStore) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil
	}
	applyOrderFields(order, fields)
	return nil
}

// Len melaporkan jumlah order tersimpan, dipakai test untuk memastikan
// jalur gagal tidak menulis apa pun.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
