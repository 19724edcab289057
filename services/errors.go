package services

import "errors"

// Taksonomi error order lifecycle. Pesan ditampilkan apa adanya ke user,
// jadi dijaga tetap readable.
var (
	// ErrEmptyOrder: create dipanggil tanpa item sama sekali.
	ErrEmptyOrder = errors.New("please select at least one sandwich to order")
	// ErrUnknownItem: itemId tidak ada di katalog (misal client pegang
	// state lama dari menu yang sudah ditarik).
	ErrUnknownItem = errors.New("menu item not found")
	// ErrIDExhausted: generator tidak menemukan kode order bebas setelah
	// batas percobaan.
	ErrIDExhausted = errors.New("unable to generate a unique order number, please try again")
	// ErrOrderNotFound: cancel menunjuk kode yang tidak tersimpan.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNotCancellable: cancel di luar status Pending.
	ErrNotCancellable = errors.New("order can only be cancelled while status is Pending")
	// ErrStoreUnavailable membungkus kegagalan backend store.
	ErrStoreUnavailable = errors.New("order store is unavailable, please try again later")
)
