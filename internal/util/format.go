// Package util provides presentation helpers for amounts and dates.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Locale selects the presentation language for formatted output.
type Locale string

const (
	LocaleIndonesian Locale = "id"
	LocaleEnglish    Locale = "en"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatRupiah renders an amount in minor units as Indonesian Rupiah,
// e.g. 1500000 -> "Rp 1.500.000". Rupiah has no fractional display unit.
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var grouped strings.Builder
	grouped.Grow(len(digits) + len(digits)/3)

	lead := len(digits) % 3
	if lead > 0 {
		grouped.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(digits[i : i+3])
	}

	return fmt.Sprintf("%sRp %s", sign, grouped.String())
}

// FormatDate renders a calendar date for the given locale,
// e.g. "17 Agustus 2026" or "17 August 2026".
func FormatDate(t time.Time, locale Locale) string {
	if locale == LocaleIndonesian {
		return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
	}

	return t.Format("2 January 2006")
}
