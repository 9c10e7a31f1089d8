package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	id    string
	group string
}

func TestKeyBy(t *testing.T) {
	items := []item{{"a", "x"}, {"b", "y"}, {"a", "z"}}
	byId := KeyBy(items, func(i item) string { return i.id })
	assert.Len(t, byId, 2)
	assert.Equal(t, "z", byId["a"].group)
	assert.Equal(t, "y", byId["b"].group)
}

func TestGroupByKeepsOrder(t *testing.T) {
	items := []item{{"1", "x"}, {"2", "y"}, {"3", "x"}}
	groups := GroupBy(items, func(i item) string { return i.group })
	assert.Equal(t, []item{{"1", "x"}, {"3", "x"}}, groups["x"])
	assert.Equal(t, []item{{"2", "y"}}, groups["y"])
	assert.Nil(t, groups["z"])
}

func TestFilterMapContains(t *testing.T) {
	numbers := []int{1, 2, 3, 4}
	even := Filter(numbers, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{4, 8}, Map(even, func(n int) int { return n * 2 }))
	assert.True(t, Contains(numbers, 3))
	assert.False(t, Contains(numbers, 5))
	assert.True(t, Any(numbers, func(n int) bool { return n > 3 }))
	assert.False(t, Any([]int{}, func(n int) bool { return true }))
}
