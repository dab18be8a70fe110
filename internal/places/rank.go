package places

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// ParseRating extracts the numeric rating from strings such as
// "4.7 · 230 reviews". NaN and infinities are not ratings.
func ParseRating(s string) (float64, bool) {
	head, _, _ := strings.Cut(s, "·")
	r, err := strconv.ParseFloat(strings.TrimSpace(head), 64)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func ratingKey(v Venue) float64 {
	r, _ := ParseRating(v.Rating)
	return r
}

// FilterAndRank drops venues rated below minRating when minRating > 0, then
// sorts the rest by rating, highest first. Unrated venues rank as 0.0 and are
// dropped by any positive minimum. Ties keep discovery order. The input is not
// modified.
func FilterAndRank(venues []Venue, minRating float64) []Venue {
	ranked := make([]Venue, 0, len(venues))
	for _, v := range venues {
		if minRating > 0 {
			r, ok := ParseRating(v.Rating)
			if !ok || r < minRating {
				continue
			}
		}
		ranked = append(ranked, v)
	}

	slices.SortStableFunc(ranked, func(a, b Venue) int {
		ra, rb := ratingKey(a), ratingKey(b)
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// Limit returns at most n venues; n <= 0 returns them all.
func Limit(venues []Venue, n int) []Venue {
	if n <= 0 || len(venues) <= n {
		return venues
	}
	return venues[:n]
}
