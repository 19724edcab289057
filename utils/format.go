package utils

import (
	"regexp"
	"strings"
	"time"
)

var nonOrderIDChars = regexp.MustCompile(`[^A-Z0-9]`)

// SanitizeOrderID menormalkan input kode order dari user: uppercase lalu
// buang semua karakter di luar [A-Z0-9]. Hasil kosong artinya user tidak
// memberi kode sama sekali.
func SanitizeOrderID(value string) string {
	return nonOrderIDChars.ReplaceAllString(strings.ToUpper(value), "")
}

// FormatDateDisplay memformat tanggal YYYY-MM-DD (atau timestamp ISO) ke
// bentuk tampilan, contoh: "06 March 2025". Input yang tidak bisa diparse
// dikembalikan apa adanya.
func FormatDateDisplay(value string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02 January 2006")
		}
	}
	return value
}

// FormatTimeDisplay memformat jam HH:mm, fallback ke em dash kalau kosong.
func FormatTimeDisplay(value string) string {
	if value == "" {
		return "—"
	}
	if t, err := time.Parse("15:04", value); err == nil {
		return t.Format("15:04")
	}
	return value
}
