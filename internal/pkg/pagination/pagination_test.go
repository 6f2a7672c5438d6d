package pagination

import "testing"

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of many", 1, 20, 45, 3, true, false},
		{"middle page", 2, 20, 45, 3, true, true},
		{"last page", 3, 20, 45, 3, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty", 1, 20, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &Params{Page: tt.page, Limit: tt.limit, Offset: (tt.page - 1) * tt.limit}
			meta := GetMeta(params, tt.total)

			if meta.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.totalPages)
			}
			if meta.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", meta.HasNext, tt.hasNext)
			}
			if meta.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", meta.HasPrev, tt.hasPrev)
			}
			if meta.Total != tt.total {
				t.Errorf("Total = %d, want %d", meta.Total, tt.total)
			}
		})
	}
}

func TestNewResponse(t *testing.T) {
	params := &Params{Page: 1, Limit: 20}
	resp := NewResponse([]string{"a", "b"}, params, 2)

	if resp.Meta == nil {
		t.Fatal("meta is nil")
	}
	if resp.Meta.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Meta.Total)
	}
}
