package utils

import (
	"fmt"
	"strings"
	"time"
)

// Format waktu yang diterima dari client, dicoba berurutan
var bookingTimeLayouts = []string{
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04",
}

const clockLayout = "15:04"

// ParseBookingTime menerima "YYYY-MM-DD HH:MM", RFC 3339, atau "HH:MM".
// "HH:MM" saja berarti hari ini (tanggal dari now).
func ParseBookingTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	loc := now.Location()

	for _, layout := range bookingTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	if clock, err := time.ParseInLocation(clockLayout, value, loc); err == nil {
		y, m, d := now.Date()
		return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc), nil
	}

	return time.Time{}, fmt.Errorf("invalid time %q, expected YYYY-MM-DD HH:MM or HH:MM", value)
}

// DefaultBookingTimes -> jam bulat berikutnya (now+1h dibulatkan ke bawah) dan satu jam setelahnya
func DefaultBookingTimes(now time.Time) (time.Time, time.Time) {
	s := now.Add(time.Hour)
	start := time.Date(s.Year(), s.Month(), s.Day(), s.Hour(), 0, 0, 0, s.Location())
	return start, start.Add(time.Hour)
}

// ValidatePhone -> minimal 10 karakter angka atau '+'
func ValidatePhone(phone string) bool {
	count := 0
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			count++
		}
	}
	return count >= 10
}
