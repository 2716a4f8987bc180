package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{name: "grouped thousands", cents: 125000, expected: "$1,250.00"},
		{name: "zero", cents: 0, expected: "$0.00"},
		{name: "sub-dollar", cents: 66, expected: "$0.66"},
		{name: "large amount", cents: 123456789, expected: "$1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.cents))
		})
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, time.October, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Oct 5, 2024", Date(d))
}

func TestDateToLocal(t *testing.T) {
	got, err := DateToLocal("2023-06-09")
	require.NoError(t, err)
	assert.Equal(t, "Jun 9, 2023", got)

	got, err = DateToLocal("2023-06-09T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "Jun 9, 2023", got)
}

func TestDateToLocalRejectsMalformedInput(t *testing.T) {
	tests := []string{"", "not-a-date", "06/09/2023", "2023-13-40"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := DateToLocal(input)
			assert.Error(t, err)
		})
	}
}

func TestYAxis(t *testing.T) {
	labels, top := YAxis([]int64{1200, 4500, 2300})

	assert.Equal(t, int64(5000), top)
	assert.Equal(t, []string{"$5K", "$4K", "$3K", "$2K", "$1K", "$0K"}, labels)
}

func TestYAxisExactThousand(t *testing.T) {
	labels, top := YAxis([]int64{3000, 1000})

	assert.Equal(t, int64(3000), top)
	assert.Equal(t, []string{"$3K", "$2K", "$1K", "$0K"}, labels)
}

func TestYAxisEmptySeries(t *testing.T) {
	labels, top := YAxis(nil)

	assert.Equal(t, int64(0), top)
	assert.Equal(t, []string{"$0K"}, labels)
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		expected    []any
	}{
		{
			name:        "all pages shown",
			currentPage: 1,
			totalPages:  5,
			expected:    []any{1, 2, 3, 4, 5},
		},
		{
			name:        "near the start",
			currentPage: 2,
			totalPages:  10,
			expected:    []any{1, 2, 3, "...", 9, 10},
		},
		{
			name:        "near the end",
			currentPage: 9,
			totalPages:  10,
			expected:    []any{1, 2, "...", 8, 9, 10},
		},
		{
			name:        "middle window",
			currentPage: 5,
			totalPages:  10,
			expected:    []any{1, "...", 4, 5, 6, "...", 10},
		},
		{
			name:        "boundary at seven pages",
			currentPage: 4,
			totalPages:  7,
			expected:    []any{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:        "single page",
			currentPage: 1,
			totalPages:  1,
			expected:    []any{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pagination(tt.currentPage, tt.totalPages))
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		rows     int64
		pageSize int
		expected int
	}{
		{name: "no rows", rows: 0, pageSize: 6, expected: 0},
		{name: "partial page", rows: 5, pageSize: 6, expected: 1},
		{name: "exact pages", rows: 12, pageSize: 6, expected: 2},
		{name: "one over", rows: 13, pageSize: 6, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.rows, tt.pageSize))
		})
	}
}
