// Package listing implements the in-memory search and pagination applied to
// every full list fetched from the backend.
package listing

import (
	"slices"
	"strconv"
	"strings"
)

// PageSizes are the sizes offered by the page-size selector.
var PageSizes = []int{5, 10, 20}

const DefaultPageSize = 5

// Filter keeps the items where any of the searchable fields contains term,
// ignoring case. An empty term keeps everything.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || fields == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Page is one slice of a filtered list plus the numbers the pagination
// controls need.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Paginate slices items into page number (1-based) of the given size. Out of
// range pages are clamped; invalid sizes fall back to DefaultPageSize.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	if number > pages {
		number = pages
	}
	if number < 1 {
		number = 1
	}
	start := (number - 1) * size
	end := min(start+size, total)
	var slice []T
	if start < total {
		slice = items[start:end]
	}
	return Page[T]{Items: slice, Number: number, Size: size, TotalItems: total, TotalPages: pages}
}

// HasPrev reports whether the first/previous controls are enabled.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether the next/last controls are enabled.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

func (p Page[T]) Prev() int { return max(p.Number-1, 1) }
func (p Page[T]) Next() int { return min(p.Number+1, p.Last()) }
func (p Page[T]) Last() int { return max(p.TotalPages, 1) }

// From and To are the 1-based positions shown as "x–y of n".
func (p Page[T]) From() int {
	if p.TotalItems == 0 {
		return 0
	}
	return (p.Number-1)*p.Size + 1
}

func (p Page[T]) To() int {
	if len(p.Items) == 0 {
		return 0
	}
	return p.From() + len(p.Items) - 1
}

// ParsePage reads a page number query value, defaulting to 1.
func ParsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseSize accepts only the offered page sizes.
func ParseSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !slices.Contains(PageSizes, n) {
		return DefaultPageSize
	}
	return n
}
