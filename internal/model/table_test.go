package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[K comparable, V any](t *Table[K, V]) ([]K, []V) {
	var keys []K
	var values []V
	for k, v := range t.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	return keys, values
}

func TestTable_InsertionOrder(t *testing.T) {
	tbl := NewTable[string, int]()
	tbl.Set("c", 1)
	tbl.Set("a", 2)
	tbl.Set("b", 3)

	keys, values := collect(tbl)
	assert.Equal(t, []string{"c", "a", "b"}, keys)
	assert.Equal(t, []int{1, 2, 3}, values)
	assert.Equal(t, 3, tbl.Len())
}

func TestTable_OverwriteKeepsPosition(t *testing.T) {
	tbl := NewTable[string, int]()
	tbl.Set("x", 1)
	tbl.Set("y", 2)
	tbl.Set("x", 10)

	keys, values := collect(tbl)
	assert.Equal(t, []string{"x", "y"}, keys)
	assert.Equal(t, []int{10, 2}, values)
}

func TestTable_Delete(t *testing.T) {
	tbl := NewTable[string, int]()
	tbl.Set("x", 1)
	tbl.Set("y", 2)
	tbl.Set("z", 3)

	assert.True(t, tbl.Delete("y"))
	assert.False(t, tbl.Delete("y"))
	assert.False(t, tbl.Has("y"))

	keys, _ := collect(tbl)
	assert.Equal(t, []string{"x", "z"}, keys)
}

func TestTable_DeleteFunc(t *testing.T) {
	tbl := NewTable[GradeKey, float64]()
	tbl.Set(GradeKey{"CS01", "MATH"}, 70)
	tbl.Set(GradeKey{"CS02", "MATH"}, 30)
	tbl.Set(GradeKey{"CS01", "PHY"}, 55)

	n := tbl.DeleteFunc(func(k GradeKey, _ float64) bool { return k.Roll == "CS01" })
	require.Equal(t, 2, n)

	keys, _ := collect(tbl)
	assert.Equal(t, []GradeKey{{"CS02", "MATH"}}, keys)
}

func TestTable_AllIsRestartable(t *testing.T) {
	tbl := NewTable[string, string]()
	tbl.Set("A", "Alice")
	seq := tbl.All()

	first := 0
	for range seq {
		first++
	}
	tbl.Set("B", "Bob")
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestTable_AllStopsEarly(t *testing.T) {
	tbl := NewTable[int, int]()
	for i := range 5 {
		tbl.Set(i, i*i)
	}
	seen := 0
	for k := range tbl.All() {
		seen++
		if k == 1 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
