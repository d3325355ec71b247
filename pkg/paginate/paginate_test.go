package paginate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdir/pkg/domain"
)

func sequence(n int) []domain.Employee {
	seq := make([]domain.Employee, n)
	for i := range seq {
		seq[i] = domain.Employee{ID: fmt.Sprintf("id-%d", i+1)}
	}
	return seq
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		pageSize     int
		pageNumber   int
		wantLen      int
		wantFirstID  string
		wantTotal    int
		wantClamped  int
	}{
		{
			name:  "fifteen items over two pages, first page full",
			total: 15, pageSize: 10, pageNumber: 1,
			wantLen: 10, wantFirstID: "id-1", wantTotal: 2, wantClamped: 1,
		},
		{
			name:  "fifteen items over two pages, last page short",
			total: 15, pageSize: 10, pageNumber: 2,
			wantLen: 5, wantFirstID: "id-11", wantTotal: 2, wantClamped: 2,
		},
		{
			name:  "exact multiple has no short page",
			total: 20, pageSize: 10, pageNumber: 2,
			wantLen: 10, wantFirstID: "id-11", wantTotal: 2, wantClamped: 2,
		},
		{
			name:  "page zero clamps to first",
			total: 15, pageSize: 10, pageNumber: 0,
			wantLen: 10, wantFirstID: "id-1", wantTotal: 2, wantClamped: 1,
		},
		{
			name:  "negative page clamps to first",
			total: 15, pageSize: 10, pageNumber: -3,
			wantLen: 10, wantFirstID: "id-1", wantTotal: 2, wantClamped: 1,
		},
		{
			name:  "page beyond the end clamps to last",
			total: 15, pageSize: 10, pageNumber: 7,
			wantLen: 5, wantFirstID: "id-11", wantTotal: 2, wantClamped: 2,
		},
		{
			name:  "page size below one is treated as one",
			total: 3, pageSize: 0, pageNumber: 2,
			wantLen: 1, wantFirstID: "id-2", wantTotal: 3, wantClamped: 2,
		},
		{
			name:  "single short page",
			total: 4, pageSize: 10, pageNumber: 1,
			wantLen: 4, wantFirstID: "id-1", wantTotal: 1, wantClamped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(sequence(tt.total), tt.pageSize, tt.pageNumber)

			assert.Equal(t, tt.wantTotal, page.TotalPages)
			assert.Equal(t, tt.wantClamped, page.ClampedPage)
			require.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantFirstID, page.Items[0].ID)
		})
	}
}

func TestPaginate_EmptySequence(t *testing.T) {
	page := Paginate(nil, 10, 3)

	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.ClampedPage)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestPaginate_PagesCoverSequenceExactly(t *testing.T) {
	seq := sequence(23)
	pageSize := 7

	var rebuilt []domain.Employee
	total := Paginate(seq, pageSize, 1).TotalPages
	for p := 1; p <= total; p++ {
		rebuilt = append(rebuilt, Paginate(seq, pageSize, p).Items...)
	}

	assert.Equal(t, seq, rebuilt, "concatenated pages reproduce the sequence with no gaps or overlaps")
}

func TestPaginate_PreservesSequenceOrderWithinPage(t *testing.T) {
	page := Paginate(sequence(30), 10, 2)

	require.Len(t, page.Items, 10)
	for i, item := range page.Items {
		assert.Equal(t, fmt.Sprintf("id-%d", 11+i), item.ID)
	}
}
