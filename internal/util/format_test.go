package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero", amount: 0, want: "Rp 0"},
		{name: "under one thousand", amount: 999, want: "Rp 999"},
		{name: "exact thousand", amount: 1000, want: "Rp 1.000"},
		{name: "line total", amount: 450000, want: "Rp 450.000"},
		{name: "invoice total", amount: 499500, want: "Rp 499.500"},
		{name: "millions", amount: 1500000, want: "Rp 1.500.000"},
		{name: "negative", amount: -250000, want: "-Rp 250.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatRupiah(tt.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.August, 17, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "17 Agustus 2026", FormatDate(date, LocaleIndonesian))
	assert.Equal(t, "17 August 2026", FormatDate(date, LocaleEnglish))
}
