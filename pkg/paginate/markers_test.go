package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkers(t *testing.T) {
	tests := []struct {
		name        string
		totalPages  int
		currentPage int
		want        []int
	}{
		{
			name:       "no pages",
			totalPages: 0, currentPage: 1,
			want: nil,
		},
		{
			name:       "single page",
			totalPages: 1, currentPage: 1,
			want: []int{1},
		},
		{
			name:       "three pages show everything",
			totalPages: 3, currentPage: 2,
			want: []int{1, 2, 3},
		},
		{
			name:       "seven pages still fit without ellipsis",
			totalPages: 7, currentPage: 4,
			want: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:       "eight pages anchored to the start",
			totalPages: 8, currentPage: 1,
			want: []int{1, 2, 3, 4, 5, Ellipsis, 8},
		},
		{
			name:       "eight pages with current in the middle leaves no one-page gap",
			totalPages: 8, currentPage: 4,
			want: []int{1, 2, 3, 4, 5, 6, Ellipsis, 8},
		},
		{
			name:       "eight pages anchored to the end",
			totalPages: 8, currentPage: 7,
			want: []int{1, Ellipsis, 4, 5, 6, 7, 8},
		},
		{
			name:       "ten pages centered on five",
			totalPages: 10, currentPage: 5,
			want: []int{1, Ellipsis, 3, 4, 5, 6, 7, Ellipsis, 10},
		},
		{
			name:       "ten pages at the first page",
			totalPages: 10, currentPage: 1,
			want: []int{1, 2, 3, 4, 5, Ellipsis, 10},
		},
		{
			name:       "ten pages at page three stays start-anchored",
			totalPages: 10, currentPage: 3,
			want: []int{1, 2, 3, 4, 5, Ellipsis, 10},
		},
		{
			name:       "ten pages at page four shifts to centered",
			totalPages: 10, currentPage: 4,
			want: []int{1, 2, 3, 4, 5, 6, Ellipsis, 10},
		},
		{
			name:       "ten pages at page eight becomes end-anchored",
			totalPages: 10, currentPage: 8,
			want: []int{1, Ellipsis, 6, 7, 8, 9, 10},
		},
		{
			name:       "ten pages at the last page",
			totalPages: 10, currentPage: 10,
			want: []int{1, Ellipsis, 6, 7, 8, 9, 10},
		},
		{
			name:       "out-of-range current page clamps low",
			totalPages: 10, currentPage: 0,
			want: []int{1, 2, 3, 4, 5, Ellipsis, 10},
		},
		{
			name:       "out-of-range current page clamps high",
			totalPages: 10, currentPage: 42,
			want: []int{1, Ellipsis, 6, 7, 8, 9, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Markers(tt.totalPages, tt.currentPage))
		})
	}
}

// Every marker list starts at 1, ends at the last page, and an ellipsis
// always hides at least one real page.
func TestMarkers_WindowInvariants(t *testing.T) {
	for totalPages := 1; totalPages <= 25; totalPages++ {
		for current := 1; current <= totalPages; current++ {
			markers := Markers(totalPages, current)

			assert.Equal(t, 1, markers[0])
			assert.Equal(t, totalPages, markers[len(markers)-1])
			assert.Contains(t, markers, current)

			for i := 1; i < len(markers)-1; i++ {
				if markers[i] != Ellipsis {
					continue
				}
				gap := markers[i+1] - markers[i-1]
				assert.Greater(t, gap, 1,
					"ellipsis at totalPages=%d current=%d hides no pages", totalPages, current)
			}
		}
	}
}
