package ledger

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HimTar/golang-transactions/internal/model"
)

func TestSum(t *testing.T) {
	s := NewStore()
	s.Put(10, model.Transaction{Amount: 5000, Type: "cars"})
	s.Put(11, model.Transaction{Amount: 10000, Type: "shopping", ParentID: model.ParentOf(10)})

	got, err := Sum(s, 10)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, got)

	got, err = Sum(s, 11)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, got)
}

func TestSum_RootEqualsAmount(t *testing.T) {
	s := NewStore()
	for i, amount := range []float64{0, -12.5, 1e18, 3.25} {
		s.Put(int64(i), model.Transaction{Amount: amount, Type: "root"})
		got, err := Sum(s, int64(i))
		require.NoError(t, err)
		assert.Equal(t, amount, got)
	}
}

func TestSum_ChainEqualsArithmeticSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewStore()

	var expected float64
	var parent *int64
	for id := int64(1); id <= 50; id++ {
		amount := float64(rng.Intn(20001) - 10000)
		s.Put(id, model.Transaction{Amount: amount, Type: "chain", ParentID: parent})
		expected += amount
		parent = model.ParentOf(id)

		got, err := Sum(s, id)
		require.NoError(t, err)
		assert.Equal(t, expected, got, "chain ending at %d", id)
	}
}

func TestSum_MatchesRecursiveAssociation(t *testing.T) {
	// 0.1 + (0.2 + (0.3 + 0)) differs from ((0.1 + 0.2) + 0.3) in float64.
	a, b, c := 0.1, 0.2, 0.3
	s := NewStore()
	s.Put(1, model.Transaction{Amount: c})
	s.Put(2, model.Transaction{Amount: b, ParentID: model.ParentOf(1)})
	s.Put(3, model.Transaction{Amount: a, ParentID: model.ParentOf(2)})

	got, err := Sum(s, 3)
	require.NoError(t, err)
	assert.Equal(t, a+(b+(c+0)), got)
}

func TestSum_Missing(t *testing.T) {
	s := NewStore()
	_, err := Sum(s, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSum_DanglingAncestor(t *testing.T) {
	s := NewStore()
	// Written straight to the store, bypassing parent validation.
	s.Put(2, model.Transaction{Amount: 1, ParentID: model.ParentOf(404)})

	_, err := Sum(s, 2)
	require.ErrorIs(t, err, ErrNotFound)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(404), nf.ID)
}

func TestSum_Cycle(t *testing.T) {
	s := NewStore()
	s.Put(1, model.Transaction{Amount: 1, ParentID: model.ParentOf(3)})
	s.Put(2, model.Transaction{Amount: 1, ParentID: model.ParentOf(1)})
	s.Put(3, model.Transaction{Amount: 1, ParentID: model.ParentOf(2)})

	_, err := Sum(s, 3)
	require.ErrorIs(t, err, ErrCyclicChain)
	var ce *CyclicChainError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, int64(3), ce.ID)
	assert.Equal(t, int64(3), ce.At)

	s.Put(4, model.Transaction{Amount: 1, ParentID: model.ParentOf(4)})
	_, err = Sum(s, 4)
	assert.ErrorIs(t, err, ErrCyclicChain)
}
