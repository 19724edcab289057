package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/fomosandwich/sandwich-cart/models"
	"github.com/fomosandwich/sandwich-cart/store"
)

const maxIDAttempts = 10

// OrderService mengorkestrasi lifecycle order: create, fetch, cancel.
// Rand dan Now bisa di-inject dari test untuk memaksa tabrakan kode order
// dan timestamp deterministik.
type OrderService struct {
	Store store.OrderStore
	Rand  *rand.Rand
	Now   func() time.Time

	// rand.Rand tidak aman dipakai concurrent, sementara satu service
	// dipakai semua request; akses ke Rand diserialisasi lewat mutex ini.
	randMu sync.Mutex
}

func NewOrderService(st store.OrderStore) *OrderService {
	return &OrderService{
		Store: st,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:   time.Now,
	}
}

// buildOrderID menghasilkan kandidat kode order: 2 huruf kapital + 3 digit,
// contoh "AB042". Ruang kode 26*26*1000 = 676.000 kombinasi.
func buildOrderID(rng *rand.Rand) string {
	letters := []byte{
		byte('A' + rng.Intn(26)),
		byte('A' + rng.Intn(26)),
	}
	return fmt.Sprintf("%s%03d", letters, rng.Intn(1000))
}

func (s *OrderService) nextOrderID() string {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return buildOrderID(s.Rand)
}

// BuildQrPayload menyusun isi QR statis untuk pembayaran QRIS. Urutan field
// dan delimiter tidak boleh berubah; kode yang sudah terbit harus tetap
// bisa di-render ulang byte-per-byte.
func BuildQrPayload(orderID, name string, totalPrice int64) string {
	return fmt.Sprintf("000201FOMOSANDWICH|ORDER:%s|NAME:%s|TOTAL:%d", orderID, name, totalPrice)
}

// Create memvalidasi ulang dua invariant yang menyangkut uang dan identitas
// (item tidak kosong, semua slug ada di katalog), lalu snapshot harga/nama
// katalog ke line item, reservasi kode order, dan tulis record sekali.
// Tidak ada penulisan apa pun di jalur gagal.
func (s *OrderService) Create(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]models.OrderLineItem, 0, len(input.Items))
	var totalPrice int64
	for _, req := range input.Items {
		menuItem, ok := models.LookupMenuItem(req.ItemID)
		if !ok {
			return nil, ErrUnknownItem
		}
		lineTotal := menuItem.Price * int64(req.Quantity)
		items = append(items, models.OrderLineItem{
			ItemID:    req.ItemID,
			ItemName:  menuItem.Name,
			Quantity:  req.Quantity,
			UnitPrice: menuItem.Price,
			LineTotal: lineTotal,
		})
		totalPrice += lineTotal
	}

	// Reservasi kode: cek-lalu-tulis tidak atomik antar caller, jadi tulisan
	// final mengandalkan create-if-absent milik store. Kalah race dihitung
	// sebagai satu percobaan generate lagi.
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		orderID := s.nextOrderID()

		_, exists, err := s.Store.GetByID(ctx, orderID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if exists {
			continue
		}

		order := &models.Order{
			OrderID:        orderID,
			Name:           input.Name,
			Phone:          input.Phone,
			Items:          items,
			DeliveryMethod: input.DeliveryMethod,
			DeliveryDate:   input.DeliveryDate,
			DeliveryTime:   input.DeliveryTime,
			PaymentMethod:  input.PaymentMethod,
			Notes:          input.Notes,
			TotalPrice:     totalPrice,
			Status:         models.StatusPending,
			CreatedAt:      s.Now().UTC().Format(time.RFC3339),
		}
		if input.PaymentMethod == models.PaymentMethodQRIS {
			order.QrPayload = BuildQrPayload(orderID, input.Name, totalPrice)
		}

		err = s.Store.Create(ctx, order)
		if errors.Is(err, store.ErrDuplicateID) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return order, nil
	}

	return nil, ErrIDExhausted
}

// GetByID membaca satu order. Tidak ketemu bukan error; caller yang memberi
// arti "not found" di boundary. Kode order diasumsikan sudah disanitasi.
func (s *OrderService) GetByID(ctx context.Context, orderID string) (*models.Order, bool, error) {
	order, ok, err := s.Store.GetByID(ctx, orderID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return order, ok, nil
}

// Cancel membatalkan order selama masih Pending. Read-modify-write tanpa
// compare-and-swap; dua cancel yang balapan sama-sama bisa lolos guard dan
// last-write-wins di store.
func (s *OrderService) Cancel(ctx context.Context, orderID string) (*models.Order, error) {
	order, ok, err := s.Store.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.StatusPending {
		return nil, ErrNotCancellable
	}

	cancelledAt := s.Now().UTC().Format(time.RFC3339)
	err = s.Store.UpdateFields(ctx, orderID, map[string]interface{}{
		"status":      string(models.StatusCancelled),
		"cancelledAt": cancelledAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	order.Status = models.StatusCancelled
	order.CancelledAt = cancelledAt
	return order, nil
}
