package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(3, 50)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, Limit: 20}.CalculateOffset())
	assert.Equal(t, 40, PaginationParams{Page: 3, Limit: 20}.CalculateOffset())
	assert.Equal(t, 0, PaginationParams{Page: 0, Limit: 20}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(45, 2, 20)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(45), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestCalculateMeta_NoLimit(t *testing.T) {
	meta := CalculateMeta(15, 4, 0)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 15, meta.Limit)
	assert.Equal(t, int64(15), meta.TotalCount)
	assert.Equal(t, 1, meta.TotalPages)
}
