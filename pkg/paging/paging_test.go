package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetArgsDefaults(t *testing.T) {
	args := GetArgs("", "", "")

	assert.Equal(t, int64(0), args.Skip)
	assert.Equal(t, int64(10), args.Limit)
	assert.Equal(t, "created_at", args.Sort)
}

func TestGetArgsNormalizes(t *testing.T) {
	args := GetArgs("3", "20", "email")
	assert.Equal(t, int64(40), args.Skip)
	assert.Equal(t, int64(20), args.Limit)
	assert.Equal(t, "email", args.Sort)

	args = GetArgs("-1", "9999", "")
	assert.Equal(t, int64(0), args.Skip)
	assert.Equal(t, int64(100), args.Limit)
}

func TestGetResult(t *testing.T) {
	args := GetArgs("2", "10", "")
	result := GetResult(args, 35)

	assert.Equal(t, int64(35), result.Total)
	assert.Equal(t, int64(2), result.Page)
	assert.Equal(t, int64(10), result.PerPage)
	assert.Equal(t, int64(4), result.TotalPages)
	assert.True(t, result.HasNextPage)

	last := GetResult(GetArgs("4", "10", ""), 35)
	assert.False(t, last.HasNextPage)
}
