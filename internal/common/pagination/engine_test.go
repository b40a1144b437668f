package pagination_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"noticeboard/internal/common/pagination"
)

func pages(from, to int) []pagination.NavToken {
	out := make([]pagination.NavToken, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, pagination.PageToken(n))
	}
	return out
}

func TestCompute_Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria pagination.Criteria
		total    int64
		want     pagination.PageResult
	}{
		{
			name:     "first page of 95 records",
			criteria: pagination.Criteria{PageNumber: 1, PageSize: 10},
			total:    95,
			want: pagination.PageResult{
				TotalRecords: 95,
				TotalPages:   10,
				CurrentPage:  1,
				RangeStart:   1,
				RangeEnd:     10,
				StartNavi:    1,
				EndNavi:      10,
				NavTokens:    pages(1, 10),
			},
		},
		{
			name:     "middle window of 250 records",
			criteria: pagination.Criteria{PageNumber: 15, PageSize: 10},
			total:    250,
			want: pagination.PageResult{
				TotalRecords: 250,
				TotalPages:   25,
				CurrentPage:  15,
				RangeStart:   141,
				RangeEnd:     150,
				StartNavi:    11,
				EndNavi:      20,
				NavTokens: append(append([]pagination.NavToken{pagination.PrevToken()}, pages(11, 20)...),
					pagination.NextToken()),
			},
		},
		{
			name:     "no records",
			criteria: pagination.Criteria{PageNumber: 5, PageSize: 10},
			total:    0,
			want: pagination.PageResult{
				TotalRecords: 0,
				TotalPages:   0,
				CurrentPage:  0,
				NavTokens:    []pagination.NavToken{},
			},
		},
		{
			name:     "negative page with no records clamps to first",
			criteria: pagination.Criteria{PageNumber: -3, PageSize: 10},
			total:    0,
			want: pagination.PageResult{
				TotalRecords: 0,
				TotalPages:   0,
				CurrentPage:  1,
				NavTokens:    []pagination.NavToken{},
			},
		},
		{
			name:     "negative page clamps to first",
			criteria: pagination.Criteria{PageNumber: -3, PageSize: 10},
			total:    5,
			want: pagination.PageResult{
				TotalRecords: 5,
				TotalPages:   1,
				CurrentPage:  1,
				RangeStart:   1,
				RangeEnd:     10,
				StartNavi:    1,
				EndNavi:      1,
				NavTokens:    pages(1, 1),
			},
		},
		{
			name:     "page past the end clamps to last",
			criteria: pagination.Criteria{PageNumber: 99, PageSize: 10},
			total:    250,
			want: pagination.PageResult{
				TotalRecords: 250,
				TotalPages:   25,
				CurrentPage:  25,
				RangeStart:   241,
				RangeEnd:     250,
				StartNavi:    21,
				EndNavi:      25,
				NavTokens:    append([]pagination.NavToken{pagination.PrevToken()}, pages(21, 25)...),
			},
		},
		{
			name:     "last window exactly full has no next marker",
			criteria: pagination.Criteria{PageNumber: 20, PageSize: 10},
			total:    200,
			want: pagination.PageResult{
				TotalRecords: 200,
				TotalPages:   20,
				CurrentPage:  20,
				RangeStart:   191,
				RangeEnd:     200,
				StartNavi:    11,
				EndNavi:      20,
				NavTokens:    append([]pagination.NavToken{pagination.PrevToken()}, pages(11, 20)...),
			},
		},
		{
			name:     "first window followed by more pages",
			criteria: pagination.Criteria{PageNumber: 10, PageSize: 10},
			total:    101,
			want: pagination.PageResult{
				TotalRecords: 101,
				TotalPages:   11,
				CurrentPage:  10,
				RangeStart:   91,
				RangeEnd:     100,
				StartNavi:    1,
				EndNavi:      10,
				NavTokens:    append(pages(1, 10), pagination.NextToken()),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pagination.Compute(tt.criteria, tt.total, pagination.DefaultNavWindowSize)
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompute_RenderedTokens(t *testing.T) {
	t.Parallel()

	got, err := pagination.Compute(pagination.Criteria{PageNumber: 15, PageSize: 10}, 250, 10)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	want := []string{"<", "11", "12", "13", "14", "15", "16", "17", "18", "19", "20", ">"}
	if diff := cmp.Diff(want, pagination.RenderTokens(got.NavTokens)); diff != "" {
		t.Errorf("RenderTokens() mismatch (-want +got):\n%s", diff)
	}
	if !got.HasPrev() || !got.HasNext() {
		t.Errorf("HasPrev() = %v, HasNext() = %v, want both true", got.HasPrev(), got.HasNext())
	}
}

func TestCompute_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		criteria  pagination.Criteria
		total     int64
		navWindow int
	}{
		{name: "zero page size", criteria: pagination.Criteria{PageNumber: 1, PageSize: 0}, total: 10, navWindow: 10},
		{name: "negative page size", criteria: pagination.Criteria{PageNumber: 1, PageSize: -5}, total: 10, navWindow: 10},
		{name: "negative total", criteria: pagination.Criteria{PageNumber: 1, PageSize: 10}, total: -1, navWindow: 10},
		{name: "zero nav window", criteria: pagination.Criteria{PageNumber: 1, PageSize: 10}, total: 10, navWindow: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := pagination.Compute(tt.criteria, tt.total, tt.navWindow)
			if !errors.Is(err, pagination.ErrInvalidArgument) {
				t.Errorf("Compute() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

// TestCompute_Properties sweeps a grid of inputs and checks the invariants that
// must hold for every computed page.
func TestCompute_Properties(t *testing.T) {
	t.Parallel()

	totals := []int64{0, 1, 5, 9, 10, 11, 95, 100, 101, 250, 999, 1000, 12345}
	sizes := []int{1, 3, 10, 25, 100}
	windows := []int{1, 5, 10}
	requested := []int{-100, -1, 0, 1, 2, 9, 10, 11, 15, 50, 1000, 1 << 30}

	for _, total := range totals {
		for _, size := range sizes {
			for _, window := range windows {
				for _, page := range requested {
					c := pagination.Criteria{PageNumber: page, PageSize: size}
					got, err := pagination.Compute(c, total, window)
					if err != nil {
						t.Fatalf("Compute(%+v, %d, %d) unexpected error: %v", c, total, window, err)
					}
					checkInvariants(t, c, total, window, got)

					again, _ := pagination.Compute(c, total, window)
					if diff := cmp.Diff(got, again); diff != "" {
						t.Fatalf("Compute(%+v, %d, %d) not deterministic:\n%s", c, total, window, diff)
					}
				}
			}
		}
	}
}

func checkInvariants(t *testing.T, c pagination.Criteria, total int64, window int, r pagination.PageResult) {
	t.Helper()

	size := int64(c.PageSize)
	tp := int64(r.TotalPages)
	if tp*size < total || (tp-1)*size >= total && total > 0 {
		t.Fatalf("%+v total=%d: totalPages %d is not ceil(total/size)", c, total, r.TotalPages)
	}
	if total == 0 {
		wantPage := 0
		if c.PageNumber < 1 {
			wantPage = 1
		}
		if r.TotalPages != 0 || r.CurrentPage != wantPage || len(r.NavTokens) != 0 {
			t.Fatalf("%+v total=0: want empty result, got %+v", c, r)
		}
		return
	}

	if r.CurrentPage < 1 || r.CurrentPage > r.TotalPages {
		t.Fatalf("%+v total=%d: currentPage %d outside [1, %d]", c, total, r.CurrentPage, r.TotalPages)
	}
	if c.PageNumber >= 1 && c.PageNumber <= r.TotalPages && r.CurrentPage != c.PageNumber {
		t.Fatalf("%+v total=%d: in-range page changed to %d", c, total, r.CurrentPage)
	}
	if r.RangeEnd-r.RangeStart+1 != size {
		t.Fatalf("%+v total=%d: range %d..%d is not %d wide", c, total, r.RangeStart, r.RangeEnd, size)
	}
	if r.RangeStart > total {
		t.Fatalf("%+v total=%d: rangeStart %d beyond total", c, total, r.RangeStart)
	}
	if (r.StartNavi-1)%window != 0 {
		t.Fatalf("%+v total=%d window=%d: startNavi %d not window-aligned", c, total, window, r.StartNavi)
	}
	if r.StartNavi > r.CurrentPage || r.CurrentPage > r.EndNavi || r.EndNavi > r.TotalPages {
		t.Fatalf("%+v total=%d: want startNavi <= current <= endNavi <= totalPages, got %d %d %d %d",
			c, total, r.StartNavi, r.CurrentPage, r.EndNavi, r.TotalPages)
	}

	tokens := r.NavTokens
	if r.HasPrev() != (r.StartNavi != 1) {
		t.Fatalf("%+v total=%d: prev marker presence wrong: %v", c, total, tokens)
	}
	if r.HasNext() != (r.EndNavi != r.TotalPages) {
		t.Fatalf("%+v total=%d: next marker presence wrong: %v", c, total, tokens)
	}
	next := r.StartNavi
	for _, tok := range tokens {
		if tok.Kind != pagination.TokenPage {
			continue
		}
		if tok.Page != next {
			t.Fatalf("%+v total=%d: page tokens not contiguous ascending: %v", c, total, tokens)
		}
		next++
	}
	if next != r.EndNavi+1 {
		t.Fatalf("%+v total=%d: page tokens stop at %d, want %d", c, total, next-1, r.EndNavi)
	}
}
