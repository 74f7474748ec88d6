package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// collidingKey always hashes to the same bucket.
type collidingKey string

func (k collidingKey) Hash() uint64 {
	return 2
}

func (k collidingKey) Equals(other Hashable) bool {
	o, ok := other.(collidingKey)
	return ok && k == o
}

func TestHashMapBasic(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		hm := NewHashMap[StateID](WithCapacity(8))
		hm.Set(NewLabel("a"), 1)

		val, exists := hm.Get(NewLabel("a"))
		assert.True(t, exists)
		assert.Equal(t, StateID(1), val)

		_, exists = hm.Get(NewLabel("b"))
		assert.False(t, exists)
	})

	t.Run("LabelKeysIgnoreTokenOrder", func(t *testing.T) {
		hm := NewHashMap[StateID](WithCapacity(8))
		hm.Set(NewLabel("b", "a"), 7)

		val, exists := hm.Get(NewLabel("a", "b"))
		assert.True(t, exists)
		assert.Equal(t, StateID(7), val)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		hm.Set(NewLabel("a"), "value1")
		hm.Set(NewLabel("a"), "value2")

		val, exists := hm.Get(NewLabel("a"))
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Size())
	})

	t.Run("DeleteKey", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		hm.Set(NewLabel("a"), "value1")

		hm.Delete(NewLabel("a"))
		assert.Equal(t, 0, hm.Size())
		assert.False(t, hm.Has(NewLabel("a")))

		hm.Delete(NewLabel("b"))
		assert.Equal(t, 0, hm.Size())
	})
}

func TestHashCollision(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(16))

	hm.Set(collidingKey("x"), "value1")
	hm.Set(collidingKey("y"), "value2")
	hm.Set(NewLabel("z"), "value3")
	assert.Equal(t, 3, hm.Size())

	t.Run("GetCollisionKeys", func(t *testing.T) {
		val, exists := hm.Get(collidingKey("x"))
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		val, exists = hm.Get(collidingKey("y"))
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
	})

	t.Run("DeleteCollisionKey", func(t *testing.T) {
		hm.Delete(collidingKey("x"))
		assert.Equal(t, 2, hm.Size())
		_, exists := hm.Get(collidingKey("x"))
		assert.False(t, exists)
		_, exists = hm.Get(collidingKey("y"))
		assert.True(t, exists)
	})
}

func TestAutoResize(t *testing.T) {
	initialCap := 16
	hm := NewHashMap[int](WithCapacity(initialCap))

	// 16 * 0.75 = 12 entries trigger a resize.
	for i := 0; i < 13; i++ {
		hm.Set(SequentialLabel(i), i)
	}

	assert.Greater(t, len(hm.buckets), initialCap)

	for i := 0; i < 13; i++ {
		val, exists := hm.Get(SequentialLabel(i))
		assert.True(t, exists)
		assert.Equal(t, i, val)
	}
}

func TestIterator(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(4))
	for i := 0; i < 5; i++ {
		hm.Set(SequentialLabel(i), i)
	}

	seen := make(map[string]int)
	for k, v := range hm.Iterator() {
		seen[k.(Label).String()] = v
	}
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2, "d": 3, "e": 4}, seen)
}

func TestEdgeCases(t *testing.T) {
	t.Run("ZeroCapacity", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(0))
		assert.Equal(t, 1, len(hm.buckets))
	})

	t.Run("EmptyLabelIsAKey", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		hm.Set(Label{}, "trap")
		val, exists := hm.Get(NewLabel())
		assert.True(t, exists)
		assert.Equal(t, "trap", val)
	})

	t.Run("DifferentKeyTypesDoNotCollide", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		hm.Set(NewLabel("x"), "label")
		hm.Set(collidingKey("x"), "other")
		assert.Equal(t, 2, hm.Size())
	})
}
