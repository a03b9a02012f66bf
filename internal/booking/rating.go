// Package booking computes display ratings and reservation cost totals for the booking view.
package booking

import (
	"math"
	"strings"
	"unicode/utf16"
)

// Rating maps a hotel name to a stable pseudo-rating between 3.8 and 4.5.
// The hash runs over UTF-16 code units with 32-bit wraparound so the same
// name yields the same rating as the web client.
func Rating(name string) float64 {
	if name == "" {
		return 4.0
	}
	var h int32
	for _, u := range utf16.Encode([]rune(name)) {
		h = h*31 + int32(u)
	}
	seed := abs64(int64(h)) % 1000
	return math.Round((3.8+float64(seed)/1000*0.7)*10) / 10
}

// CleanHotelName drops marketing suffixes that follow a double quote.
func CleanHotelName(name string) string {
	if i := strings.IndexByte(name, '"'); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
