package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkExtent asserts the live extent holds want and that every slot
// outside it is scrubbed back to zero. This is the storage layer's
// ground invariant: live slots hold elements, dead slots hold nothing.
func checkExtent(t *testing.T, e Engine[int], want []int) {
	t.Helper()
	require.Equal(t, len(want), e.Size(), "size")
	if len(want) > 0 {
		assert.Equal(t, want, append([]int(nil), e.Data()...), "extent")
	}
	assert.Equal(t, e.Cap(), e.FrontGap()+e.Size()+e.BackGap(), "gap arithmetic")
	slots := e.Slots()
	for k := 0; k < e.FrontGap(); k++ {
		assert.Zero(t, slots[k], "front gap slot %d not scrubbed", k)
	}
	for k := len(slots) - e.BackGap(); k < len(slots); k++ {
		assert.Zero(t, slots[k], "back gap slot %d not scrubbed", k)
	}
}

func engines(cap int) map[string]Engine[int] {
	return map[string]Engine[int]{
		"front":  NewFront[int](make([]int, cap)),
		"back":   NewBack[int](make([]int, cap)),
		"middle": NewMiddle[int](make([]int, cap)),
	}
}

func TestEngineAddBackSequence(t *testing.T) {
	for name, e := range engines(6) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 6; i++ {
				require.NoError(t, e.AddBack(i * 10))
			}
			checkExtent(t, e, []int{10, 20, 30, 40, 50, 60})
			assert.Error(t, e.AddBack(70), "full engine must refuse")
		})
	}
}

func TestEngineAddFrontSequence(t *testing.T) {
	for name, e := range engines(6) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 6; i++ {
				require.NoError(t, e.AddFront(i * 10))
			}
			checkExtent(t, e, []int{60, 50, 40, 30, 20, 10})
			assert.Error(t, e.AddFront(70), "full engine must refuse")
		})
	}
}

func TestEngineAddAt(t *testing.T) {
	for name, e := range engines(8) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, e.Fill([]int{1, 2, 4, 5}))
			require.NoError(t, e.AddAt(2, 3))
			checkExtent(t, e, []int{1, 2, 3, 4, 5})
			require.NoError(t, e.AddAt(0, 99))
			checkExtent(t, e, []int{99, 1, 2, 3, 4, 5})
			require.NoError(t, e.AddAt(6, 100))
			checkExtent(t, e, []int{99, 1, 2, 3, 4, 5, 100})
		})
	}
}

func TestEngineEraseRange(t *testing.T) {
	for name, e := range engines(8) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, e.Fill([]int{1, 2, 3, 4, 5, 6}))
			e.Erase(1, 3)
			checkExtent(t, e, []int{1, 4, 5, 6})
			e.Erase(2, 4)
			checkExtent(t, e, []int{1, 4})
			e.Erase(0, 2)
			checkExtent(t, e, []int{})
		})
	}
}

func TestEnginePops(t *testing.T) {
	for name, e := range engines(5) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, e.Fill([]int{1, 2, 3}))
			e.PopFront()
			checkExtent(t, e, []int{2, 3})
			e.PopBack()
			checkExtent(t, e, []int{2})
			e.PopBack()
			checkExtent(t, e, []int{})
		})
	}
}

func TestEngineClear(t *testing.T) {
	for name, e := range engines(6) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, e.Fill([]int{7, 8, 9}))
			e.Clear()
			checkExtent(t, e, []int{})
			// Everything must be scrubbed, not just the extent view.
			for k, v := range e.Slots() {
				assert.Zero(t, v, "slot %d", k)
			}
		})
	}
}

func TestEngineRelocate(t *testing.T) {
	for name, e := range engines(4) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, e.Fill([]int{1, 2, 3}))
			old := e.Slots()
			e.Relocate(make([]int, 9))
			checkExtent(t, e, []int{1, 2, 3})
			assert.Equal(t, 9, e.Cap())
			for k, v := range old {
				assert.Zero(t, v, "old slot %d not scrubbed", k)
			}
		})
	}
}

func TestEngineCloneFromMirrorsMetadata(t *testing.T) {
	src := NewMiddle[int](make([]int, 10))
	require.NoError(t, src.Fill([]int{4, 5, 6, 7}))
	require.NoError(t, src.AddBack(8)) // skew the gaps: 3 front, 2 back
	dst := NewMiddle[int](make([]int, 10))
	dst.CloneFrom(src.Data(), src.FrontGap())
	checkExtent(t, dst, []int{4, 5, 6, 7, 8})
	assert.Equal(t, src.FrontGap(), dst.FrontGap())
	assert.Equal(t, src.BackGap(), dst.BackGap())
}

func TestEngineFillPlacement(t *testing.T) {
	front := NewFront[int](make([]int, 10))
	require.NoError(t, front.Fill([]int{1, 2, 3}))
	assert.Equal(t, 0, front.FrontGap())
	assert.Equal(t, 7, front.BackGap())

	back := NewBack[int](make([]int, 10))
	require.NoError(t, back.Fill([]int{1, 2, 3}))
	assert.Equal(t, 7, back.FrontGap())
	assert.Equal(t, 0, back.BackGap())

	middle := NewMiddle[int](make([]int, 10))
	require.NoError(t, middle.Fill([]int{4, 5, 6, 7, 8}))
	assert.Equal(t, 2, middle.FrontGap())
	assert.Equal(t, 3, middle.BackGap())
}

func TestEngineAddN(t *testing.T) {
	for name, e := range engines(7) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, e.Fill([]int{1, 2}))
			require.NoError(t, e.AddN(3, 9))
			checkExtent(t, e, []int{1, 2, 9, 9, 9})
			assert.Error(t, e.AddN(3, 9), "past capacity must refuse")
			checkExtent(t, e, []int{1, 2, 9, 9, 9})
		})
	}
}
