package paginate

// Ellipsis is the marker standing in for a run of skipped pages.
const Ellipsis = -1

const (
	windowSize = 5
	pageSpread = 2
)

// Markers produces the compact page-number list for the pagination bar:
// all pages while totalPages fits in a window of seven, otherwise a
// five-wide block anchored to the start, the end, or centered on
// currentPage, with page 1 and the last page always present. An
// ellipsis appears only where it hides at least one page; adjacent
// pages are never separated by one.
func Markers(totalPages, currentPage int) []int {
	if totalPages < 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	var start, end int
	if totalPages <= windowSize+2 {
		start, end = 1, totalPages
	} else if currentPage <= pageSpread+1 {
		start, end = 1, windowSize
	} else if currentPage >= totalPages-pageSpread {
		start, end = totalPages-windowSize+1, totalPages
	} else {
		start, end = currentPage-pageSpread, currentPage+pageSpread
	}

	markers := make([]int, 0, windowSize+4)
	if start > 1 {
		markers = append(markers, 1)
		if start > 2 {
			markers = append(markers, Ellipsis)
		}
	}
	for p := start; p <= end; p++ {
		markers = append(markers, p)
	}
	if end < totalPages {
		if end < totalPages-1 {
			markers = append(markers, Ellipsis)
		}
		markers = append(markers, totalPages)
	}
	return markers
}
