package bidi

import (
	"context"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolBorrowReturn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	ctx := context.Background()
	cp := NewContextPool(Testing(true))
	defer cp.Close(ctx)
	bc, err := cp.Borrow(ctx)
	require.NoError(t, err)
	assert.True(t, bc.hasMode(optionTesting))
	bc.SetReorderNonSpacingMarks(true)
	bc.ResolveString("abc DEF", HintLeftToRight)
	assert.Equal(t, levels(0, 0, 0, 0, 1, 1, 1), bc.Levels())
	cp.Return(ctx, bc)
	bc, err = cp.Borrow(ctx)
	require.NoError(t, err)
	assert.False(t, bc.hasMode(optionReorderNSM), "options should be reset on return")
	assert.True(t, bc.hasMode(optionTesting))
	cp.Return(ctx, bc)
	cp.Return(ctx, nil)
}

func TestPoolConcurrent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	inputs := []string{
		"car means CAR.",
		"CAR MEANS car.",
		"AB(CD[&ef]!)gh",
		"smith (fabrikam ARABIC) HEBREW",
	}
	expected := make([][]Level, len(inputs))
	single := NewContext(Testing(true))
	for i, input := range inputs {
		single.ResolveString(input, HintRightToLeft)
		expected[i] = single.Levels()
	}
	ctx := context.Background()
	cp := NewContextPool(Testing(true))
	defer cp.Close(ctx)
	var wg sync.WaitGroup
	results := make([][][]Level, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for _, input := range inputs {
				bc, err := cp.Borrow(ctx)
				if err != nil {
					t.Errorf("goroutine %d: %v", g, err)
					return
				}
				bc.ResolveString(input, HintRightToLeft)
				results[g] = append(results[g], bc.Levels())
				cp.Return(ctx, bc)
			}
		}(g)
	}
	wg.Wait()
	for g := range results {
		assert.Equal(t, expected, results[g], "goroutine %d", g)
	}
}

func TestGlobalPool(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax.bidi")
	defer teardown()
	//
	bc := BorrowContext()
	require.NotNil(t, bc)
	bc.ResolveString("\u05D0\u05D1 12", HintAutoLeftToRight)
	assert.Equal(t, Level(1), bc.BaseLevel())
	ReturnContext(bc)
}
