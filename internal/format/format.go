// Package format provides pure presentation helpers: currency and date
// formatting, chart axis labels, and pagination display sequences.
// Nothing in this package touches the database.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Ellipsis is the marker emitted for omitted page ranges.
const Ellipsis = "..."

// DateLayout is the expected layout for stored date strings.
const DateLayout = "2006-01-02"

// printer applies en-US digit grouping to numeric verbs.
var printer = message.NewPrinter(language.AmericanEnglish)

// Currency converts an amount in cents to a grouped dollar string,
// e.g. 125000 -> "$1,250.00".
func Currency(cents int64) string {
	return printer.Sprintf("$%.2f", float64(cents)/100)
}

// Date renders a short locale date, e.g. "Oct 5, 2024".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DateToLocal parses a stored date string and renders it via Date.
// Malformed input is rejected rather than leniently reinterpreted.
func DateToLocal(value string) (string, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		// Timestamps with a time component are accepted as well.
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return "", fmt.Errorf("invalid date %q: %w", value, err)
		}
	}
	return Date(t), nil
}

// YAxis computes chart axis labels for a series of revenue values: the
// maximum rounded up to the nearest thousand, then "$NK" labels descending
// in thousand steps down to "$0K" inclusive.
func YAxis(values []int64) (labels []string, topLabel int64) {
	var highest int64
	for _, v := range values {
		if v > highest {
			highest = v
		}
	}

	topLabel = ((highest + 999) / 1000) * 1000

	for v := topLabel; v >= 0; v -= 1000 {
		labels = append(labels, fmt.Sprintf("$%dK", v/1000))
	}
	return labels, topLabel
}

// Pagination produces the page-number display sequence for the given
// 1-based current page: full runs for short listings, otherwise the edges
// with Ellipsis markers around the current window.
func Pagination(currentPage, totalPages int) []any {
	// Short listings show every page.
	if totalPages <= 7 {
		pages := make([]any, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	// Near the start: first three pages plus the last two.
	if currentPage <= 3 {
		return []any{1, 2, 3, Ellipsis, totalPages - 1, totalPages}
	}

	// Near the end: first two pages plus the last three.
	if currentPage >= totalPages-2 {
		return []any{1, 2, Ellipsis, totalPages - 2, totalPages - 1, totalPages}
	}

	// Somewhere in the middle: current page and its neighbors.
	return []any{1, Ellipsis, currentPage - 1, currentPage, currentPage + 1, Ellipsis, totalPages}
}

// TotalPages derives the page count for a row count via ceiling division.
func TotalPages(rows int64, pageSize int) int {
	if rows <= 0 {
		return 0
	}
	return int((rows + int64(pageSize) - 1) / int64(pageSize))
}
