package store

import (
	"context"
	"errors"
	"sync"

	"github.com/fomosandwich/sandwich-cart/models"
)

// ErrDuplicateID dikembalikan Create kalau kode order sudah terpakai.
// Order lifecycle memperlakukan ini sebagai "coba generate kode lagi",
// bukan error fatal.
var ErrDuplicateID = errors.New("order id already exists")

// OrderStore adalah kontrak minimal ke document store yang menyimpan order,
// di-key dengan kode order. Semua implementasi harus create-if-absent pada
// Create supaya race pembuatan kode terdeteksi di level store.
type OrderStore interface {
	GetByID(ctx context.Context, id string) (*models.Order, bool, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

var (
	handle OrderStore
	once   sync.Once
	mu     sync.RWMutex
)

// Init menyimpan store yang dipakai seluruh proses. Hanya efektif sekali;
// pemanggilan berikutnya diabaikan.
func Init(s OrderStore) {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		handle = s
	})
}

// Get mengembalikan store yang aktif (nil kalau belum Init).
func Get() OrderStore {
	mu.RLock()
	defer mu.RUnlock()
	return handle
}

// IsConfigured melaporkan apakah store sudah di-Init.
func IsConfigured() bool {
	mu.RLock()
	defer mu.RUnlock()
	return handle != nil
}

// applyOrderFields menerapkan partial update ke record order. Hanya field
// yang memang boleh berubah setelah create yang dikenali.
func applyOrderFields(order *models.Order, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "status":
			switch v := value.(type) {
			case models.OrderStatus:
				order.Status = v
			case string:
				order.Status = models.OrderStatus(v)
			}
		case "cancelledAt":
			if v, ok := value.(string); ok {
				order.CancelledAt = v
			}
		}
	}
}
