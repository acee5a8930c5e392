package graphgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raindrop/graphgen"
)

func TestPath_BuildsChainOfEdges(t *testing.T) {
	g, err := graphgen.Path(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Len(t, g.Edges(), 4)
}

func TestPath_TooFewVertices(t *testing.T) {
	_, err := graphgen.Path(1)
	assert.ErrorIs(t, err, graphgen.ErrTooFewVertices)
}

func TestCycle_ClosesTheRing(t *testing.T) {
	g, err := graphgen.Cycle(4)
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 4)
	_, err = g.Edge("3", "0")
	assert.NoError(t, err)
}

func TestComplete_EveryOrderedPairHasAnEdge(t *testing.T) {
	g, err := graphgen.Complete(4)
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 4*3)
}

func TestRandomSparse_DeterministicAtP1(t *testing.T) {
	g, err := graphgen.RandomSparse(5, 1.0)
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 5*4)
}

func TestRandomSparse_AllNodesPresentAtP0(t *testing.T) {
	g, err := graphgen.RandomSparse(5, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Empty(t, g.Edges())
}

func TestRandomSparse_RequiresRandSourceForFractionalP(t *testing.T) {
	_, err := graphgen.RandomSparse(5, 0.5)
	assert.ErrorIs(t, err, graphgen.ErrNeedRandSource)
}

func TestRandomSparse_DeterministicGivenSeed(t *testing.T) {
	g1, err := graphgen.RandomSparse(8, 0.4, graphgen.WithSeed(42))
	require.NoError(t, err)
	g2, err := graphgen.RandomSparse(8, 0.4, graphgen.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := graphgen.RandomSparse(5, 1.5)
	assert.ErrorIs(t, err, graphgen.ErrInvalidProbability)
}

func TestWithDelayRange_BoundsDefaultDelayFn(t *testing.T) {
	g, err := graphgen.RandomSparse(6, 0.6, graphgen.WithSeed(7), graphgen.WithDelayRange(2, 5))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.WorstCase, int64(2))
		assert.LessOrEqual(t, e.WorstCase, int64(5))
		assert.LessOrEqual(t, e.Expected, e.WorstCase)
	}
}
