package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AddHasLen(t *testing.T) {
	s := NewSet[uint32]()
	assert.True(t, s.Empty())

	s.Add(1)
	s.Add(2)
	s.Add(1)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(3))
}

func TestSet_UnionDifferenceIntersects(t *testing.T) {
	a := NewSet[uint32](1, 2, 3)
	b := NewSet[uint32](3, 4, 5)

	assert.Equal(t, NewSet[uint32](1, 2, 3, 4, 5), a.Union(b))
	assert.Equal(t, NewSet[uint32](1, 2), a.Difference(b))
	assert.True(t, a.Intersects(b))

	c := NewSet[uint32](6, 7)
	assert.False(t, a.Intersects(c))
}

func TestSet_Elements_SortedAscending(t *testing.T) {
	s := NewSet[uint32](5, 1, 3, 2, 4)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, s.Elements())
}

func TestSet_One_PanicsWhenNotSingleton(t *testing.T) {
	assert.Panics(t, func() { NewSet[uint32]().One() })
	assert.Panics(t, func() { NewSet[uint32](1, 2).One() })
	assert.Equal(t, uint32(7), NewSet[uint32](7).One())
}

func TestSet_Equal(t *testing.T) {
	assert.True(t, NewSet[uint32](1, 2).Equal(NewSet[uint32](2, 1)))
	assert.False(t, NewSet[uint32](1, 2).Equal(NewSet[uint32](1, 2, 3)))
}

func TestSet_Copy_IsIndependent(t *testing.T) {
	a := NewSet[uint32](1, 2)
	b := a.Copy()
	b.Add(3)

	assert.False(t, a.Has(3))
	assert.True(t, b.Has(3))
}

func TestSet_Any(t *testing.T) {
	s := NewSet[uint32](1, 2, 3)
	assert.True(t, s.Any(func(v uint32) bool { return v == 2 }))
	assert.False(t, s.Any(func(v uint32) bool { return v == 9 }))
}
