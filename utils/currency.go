package utils

import "fmt"

// FormatCurrencyIDR memformat harga (satuan Rupiah penuh, tanpa desimal)
// ke format tampilan Rupiah.
// Contoh: 32000 -> "Rp 32.000"
func FormatCurrencyIDR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	// Format bagian integer dengan pemisah ribuan
	formatted := ""
	for amount >= 1000 {
		formatted = fmt.Sprintf(".%03d%s", amount%1000, formatted)
		amount /= 1000
	}
	formatted = fmt.Sprintf("%d%s", amount, formatted)

	if negative {
		return fmt.Sprintf("-Rp %s", formatted)
	}
	return fmt.Sprintf("Rp %s", formatted)
}
