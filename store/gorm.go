package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fomosandwich/sandwich-cart/models"
)

// OrderRecord adalah baris penyimpanan untuk GormStore: satu dokumen order
// (JSON) di-key dengan kode order. Status ikut disimpan sebagai kolom
// supaya bisa di-query operator tanpa membongkar dokumen.
type OrderRecord struct {
	OrderID   string `gorm:"primaryKey;size:5"`
	Status    string `gorm:"type:varchar(20);not null;index"`
	Document  string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GormStore membungkus database relasional (MySQL atau SQLite) sebagai
// document store sederhana. Dipakai untuk deployment lokal tanpa MongoDB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&OrderRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) GetByID(ctx context.Context, id string) (*models.Order, bool, error) {
	var rec OrderRecord
	err := s.db.WithContext(ctx).First(&rec, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var order models.Order
	if err := json.Unmarshal([]byte(rec.Document), &order); err != nil {
		return nil, false, err
	}
	return &order, true, nil
}

func (s *GormStore) Create(ctx context.Context, order *models.Order) error {
	doc, err := json.Marshal(order)
	if err != nil {
		return err
	}
	rec := OrderRecord{
		OrderID:  order.OrderID,
		Status:   string(order.Status),
		Document: string(doc),
	}
	err = s.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

func (s *GormStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	// Partial update dilakukan di atas dokumen JSON: baca, terapkan field,
	// tulis balik. Status kolom ikut disinkronkan.
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec OrderRecord
		err := tx.First(&rec, "order_id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var order models.Order
		if err := json.Unmarshal([]byte(rec.Document), &order); err != nil {
			return err
		}
		applyOrderFields(&order, fields)

		doc, err := json.Marshal(&order)
		if err != nil {
			return err
		}
		return tx.Model(&OrderRecord{}).Where("order_id = ?", id).Updates(map[string]interface{}{
			"status":   string(order.Status),
			"document": string(doc),
		}).Error
	})
}
