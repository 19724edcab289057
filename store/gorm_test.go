package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fomosandwich/sandwich-cart/models"
)

func setupGormStore(t *testing.T) *GormStore {
	// DSN unik per test supaya database memory tidak bocor antar test
	dsn := "file:" + strings.ToLower(t.Name()) + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	st, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return st
}

func sampleOrder(id string) *models.Order {
	return &models.Order{
		OrderID: id,
		Name:    "Sari",
		Phone:   "+62 812-3456-7890",
		Items: []models.OrderLineItem{
			{ItemID: "chicken-sandwich", ItemName: "Chicken Sandwich", Quantity: 2, UnitPrice: 32000, LineTotal: 64000},
		},
		DeliveryMethod: models.DeliveryMethodPickup,
		DeliveryDate:   "2025-03-07",
		PaymentMethod:  models.PaymentMethodCOD,
		TotalPrice:     64000,
		Status:         models.StatusPending,
		CreatedAt:      "2025-03-06T09:30:00Z",
	}
}

func TestGormStoreCreateAndGet(t *testing.T) {
	st := setupGormStore(t)
	ctx := context.Background()

	order := sampleOrder("AB042")
	assert.NoError(t, st.Create(ctx, order))

	got, ok, err := st.GetByID(ctx, "AB042")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, order, got)

	_, ok, err = st.GetByID(ctx, "ZZ999")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGormStoreCreateDuplicate(t *testing.T) {
	st := setupGormStore(t)
	ctx := context.Background()

	assert.NoError(t, st.Create(ctx, sampleOrder("AB042")))
	err := st.Create(ctx, sampleOrder("AB042"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestGormStoreUpdateFields(t *testing.T) {
	st := setupGormStore(t)
	ctx := context.Background()

	assert.NoError(t, st.Create(ctx, sampleOrder("AB042")))
	err := st.UpdateFields(ctx, "AB042", map[string]interface{}{
		"status":      string(models.StatusCancelled),
		"cancelledAt": "2025-03-06T10:00:00Z",
	})
	assert.NoError(t, err)

	got, ok, err := st.GetByID(ctx, "AB042")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.StatusCancelled, got.Status)
	assert.Equal(t, "2025-03-06T10:00:00Z", got.CancelledAt)
	// Field lain tidak tersentuh
	assert.Equal(t, int64(64000), got.TotalPrice)
	assert.Equal(t, "2025-03-06T09:30:00Z", got.CreatedAt)
}
