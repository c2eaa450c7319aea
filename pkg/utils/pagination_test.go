package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"loanflow.backend/pkg/utils"
)

func TestGetPaginationParams(t *testing.T) {
	p := utils.GetPaginationParams(2, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.Limit)

	p = utils.GetPaginationParams(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, utils.PaginationParams{Page: 1, Limit: 10}.CalculateOffset())
	assert.Equal(t, 20, utils.PaginationParams{Page: 3, Limit: 10}.CalculateOffset())
	assert.Equal(t, 0, utils.PaginationParams{Page: 0, Limit: 10}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := utils.CalculateMeta(45, 2, 10)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 10, meta.PageSize)
	assert.Equal(t, int64(45), meta.TotalCount)
	assert.Equal(t, 5, meta.TotalPages)

	// Zero limit means everything on one page
	meta = utils.CalculateMeta(45, 3, 0)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 45, meta.PageSize)
	assert.Equal(t, 1, meta.TotalPages)

	meta = utils.CalculateMeta(0, 1, 10)
	assert.Equal(t, 0, meta.TotalPages)
}
