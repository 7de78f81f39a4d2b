package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageParams
		want PageParams
	}{
		{"defaults applied", PageParams{}, PageParams{Page: 1, PageSize: 20}},
		{"negative values", PageParams{Page: -3, PageSize: -1}, PageParams{Page: 1, PageSize: 20}},
		{"page size capped", PageParams{Page: 2, PageSize: 500}, PageParams{Page: 2, PageSize: 100}},
		{"valid passthrough", PageParams{Page: 4, PageSize: 50}, PageParams{Page: 4, PageSize: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	p := PageParams{Page: 3, PageSize: 20}
	assert.Equal(t, uint64(20), p.Limit())
	assert.Equal(t, uint64(40), p.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		params     PageParams
		totalItems uint64
		wantPages  int
	}{
		{"partial last page", PageParams{Page: 1, PageSize: 20}, 25, 2},
		{"exact fit", PageParams{Page: 1, PageSize: 20}, 40, 2},
		{"empty result", PageParams{Page: 1, PageSize: 20}, 0, 0},
		{"single item", PageParams{Page: 1, PageSize: 20}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.params, tt.totalItems)
			assert.Equal(t, tt.params.Page, p.Page)
			assert.Equal(t, tt.params.PageSize, p.PageSize)
			assert.Equal(t, tt.totalItems, p.TotalItems)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}
