package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripplanner/internal/planner"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2 hr", 120},
		{"2hr", 120},
		{"1.5 hours", 90},
		{"1 h", 60},
		{"45 min", 45},
		{"90 minutes", 90},
		{"30min", 30},
		// содержит "h", но без ведущего числа - значение по умолчанию
		{"half day", 60},
		{"full day", 60},
		{"", 60},
		{"  3 hr  ", 180},
	}
	for _, tt := range tests {
		got := planner.ParseDuration(tt.in)
		assert.Equal(t, tt.want, got.Minutes, "ParseDuration(%q)", tt.in)
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in       string
		amount   float64
		currency string
	}{
		{"$50", 50, "USD"},
		{"$12.50", 12.5, "USD"},
		// разделитель тысяч отбрасывается вместе с прочими нецифровыми символами
		{"LKR 3,000", 3000, "LKR"},
		{"€20", 20, "EUR"},
		{"free", 0, "USD"},
		{"", 0, "USD"},
	}
	for _, tt := range tests {
		got := planner.ParseMoney(tt.in)
		assert.Equal(t, tt.amount, got.Amount, "ParseMoney(%q).Amount", tt.in)
		assert.Equal(t, tt.currency, got.Currency, "ParseMoney(%q).Currency", tt.in)
	}
}

func TestCategoryFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Visit the National Museum", "culture"},
		{"Lunch at a local restaurant", "food"},
		{"Hike to the waterfall", "nature"},
		{"Souvenir shopping at the bazaar", "shopping"},
		{"Evening jazz bar", "nightlife"},
		{"Walk around the old town", "sightseeing"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, planner.CategoryFromTitle(tt.title), "CategoryFromTitle(%q)", tt.title)
	}
}
