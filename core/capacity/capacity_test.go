package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-seq/pool"
)

func TestFixedBlock(t *testing.T) {
	f := NewFixed[int](4)
	assert.Equal(t, 4, f.Cap())
	assert.Len(t, f.Slots(), 4)
	assert.Panics(t, func() { NewFixed[int](0) })
}

func TestDynamicBlockStartsNull(t *testing.T) {
	d := NewDynamic[int](pool.NewSlabCache[int]())
	assert.True(t, d.IsNull())
	assert.Equal(t, 0, d.Cap())
	assert.Nil(t, d.Slots())
}

func TestDynamicBlockGrabAdoptRecycle(t *testing.T) {
	cache := pool.NewSlabCache[int]()
	d := NewDynamic[int](cache)
	slots, err := d.Grab(8)
	require.NoError(t, err)
	old := d.Adopt(slots)
	assert.Nil(t, old)
	assert.Equal(t, 8, d.Cap())

	_, err = d.Grab(-1)
	assert.Error(t, err, "negative slot counts must be refused")

	d.Release()
	assert.True(t, d.IsNull())
}

func TestDynamicBlockMoveLeavesSourceNull(t *testing.T) {
	cache := pool.NewSlabCache[int]()
	src := NewDynamic[int](cache)
	slots, err := src.Grab(4)
	require.NoError(t, err)
	src.Adopt(slots)

	dst := NewDynamic[int](cache)
	dst.Move(src)
	assert.True(t, src.IsNull())
	assert.Equal(t, 4, dst.Cap())
}

func TestDynamicBlockSwap(t *testing.T) {
	cache := pool.NewSlabCache[int]()
	a := NewDynamic[int](cache)
	sa, _ := a.Grab(2)
	a.Adopt(sa)
	b := NewDynamic[int](cache)
	sb, _ := b.Grab(6)
	b.Adopt(sb)

	a.Swap(b)
	assert.Equal(t, 6, a.Cap())
	assert.Equal(t, 2, b.Cap())
}
