package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampPage(t *testing.T) {
	require.Equal(t, 1, ClampPage(0))
	require.Equal(t, 1, ClampPage(-5))
	require.Equal(t, 1, ClampPage(1))
	require.Equal(t, 3, ClampPage(3))
}

func TestClampLimit(t *testing.T) {
	require.Equal(t, 10, ClampLimit(0))
	require.Equal(t, 10, ClampLimit(-1))
	require.Equal(t, 10, ClampLimit(101))
	require.Equal(t, 1, ClampLimit(1))
	require.Equal(t, 100, ClampLimit(100))
	require.Equal(t, 25, ClampLimit(25))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	result := Paginate(items, 2, 10)
	require.Equal(t, 2, result.Page)
	require.Equal(t, 10, result.Limit)
	require.Equal(t, 25, result.Total)
	require.Equal(t, 3, result.TotalPages)
	require.Equal(t, items[10:20], result.Data)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := Paginate(items, 2, 3)
	require.Equal(t, []int{4, 5}, result.Data)
	require.Equal(t, 5, result.Total)
	require.Equal(t, 2, result.TotalPages)
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	items := []int{1, 2, 3}

	result := Paginate(items, 9, 10)
	require.Equal(t, 9, result.Page)
	require.Equal(t, 3, result.Total)
	require.Empty(t, result.Data)
}

func TestPaginate_Empty(t *testing.T) {
	result := Paginate([]int{}, 1, 10)
	require.Equal(t, 0, result.Total)
	require.Equal(t, 0, result.TotalPages)
	require.Empty(t, result.Data)
}
