package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		next       bool
		prev       bool
	}{
		{"first of many", 1, 10, 35, 4, true, false},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, false, true},
		{"single page", 1, 10, 7, 1, false, false},
		{"empty result", 1, 10, 0, 0, false, false},
		{"exact fit", 2, 10, 20, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := dto.NewPagination(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.next, p.Next)
			assert.Equal(t, tt.prev, p.Prev)
		})
	}
}

func TestNewListResponseNeverNil(t *testing.T) {
	resp := dto.NewListResponse[string](nil, 1, 10, 0)

	raw, err := json.Marshal(resp)
	assert.NoError(t, err)
	// empty pages must serialize as [] so frontends can iterate blindly
	assert.Contains(t, string(raw), `"data":[]`)
}

func TestListResponseEnvelopeShape(t *testing.T) {
	resp := dto.NewListResponse([]int{1, 2, 3}, 2, 3, 10)

	raw, err := json.Marshal(resp)
	assert.NoError(t, err)

	var decoded struct {
		Data       []int `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int   `json:"totalPages"`
			Next       bool  `json:"next"`
			Prev       bool  `json:"prev"`
		} `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []int{1, 2, 3}, decoded.Data)
	assert.Equal(t, int64(10), decoded.Pagination.Total)
	assert.Equal(t, 4, decoded.Pagination.TotalPages)
	assert.True(t, decoded.Pagination.Next)
	assert.True(t, decoded.Pagination.Prev)
}
