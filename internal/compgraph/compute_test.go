package compgraph

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counted wraps an op with a call counter so tests can assert how many times
// the function actually ran.
func counted(op Op[float64]) (Op[float64], *int) {
	calls := new(int)
	return func(args []float64) (float64, error) {
		*calls++
		return op(args)
	}, calls
}

func TestComputeMemoizes(t *testing.T) {
	g := New[float64]()
	x := g.AddInputNode()
	require.NoError(t, g.RegisterInput("x", x))
	require.NoError(t, g.SetInput("x", 3))

	op, calls := counted(func(args []float64) (float64, error) {
		return args[0] * args[0], nil
	})
	n, err := g.AddNode([]NodeID{x}, op)
	require.NoError(t, err)

	v, err := g.Compute(n)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	assert.Equal(t, 1, *calls)

	// Nothing changed upstream, so the second query must not re-run the op.
	v, err = g.Compute(n)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	assert.Equal(t, 1, *calls)

	require.NoError(t, g.SetInput("x", 4))
	v, err = g.Compute(n)
	require.NoError(t, err)
	assert.Equal(t, 16.0, v)
	assert.Equal(t, 2, *calls)
}

func TestComputeArgumentOrder(t *testing.T) {
	g := New[float64]()
	x := g.AddInputNode()
	y := g.AddInputNode()
	require.NoError(t, g.SetInputByID(x, 10))
	require.NoError(t, g.SetInputByID(y, 3))

	// Subtraction is order-sensitive, so it catches argument reordering.
	n, err := g.AddNode([]NodeID{x, y}, func(args []float64) (float64, error) {
		return args[0] - args[1], nil
	})
	require.NoError(t, err)

	v, err := g.Compute(n)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestComputeDiamondEvaluatesSharedAncestorOnce(t *testing.T) {
	// x -> shared -> left, right -> top: shared is reachable via two paths
	// but must run exactly once per query.
	g := New[float64]()
	x := g.AddInputNode()
	require.NoError(t, g.RegisterInput("x", x))
	require.NoError(t, g.SetInput("x", 2))

	sharedOp, sharedCalls := counted(func(args []float64) (float64, error) {
		return args[0] + 1, nil
	})
	shared, err := g.AddNode([]NodeID{x}, sharedOp)
	require.NoError(t, err)

	left, err := g.AddNode([]NodeID{shared}, func(args []float64) (float64, error) {
		return args[0] * 2, nil
	})
	require.NoError(t, err)
	right, err := g.AddNode([]NodeID{shared}, func(args []float64) (float64, error) {
		return args[0] * 3, nil
	})
	require.NoError(t, err)

	top, err := g.AddNode([]NodeID{left, right}, sum)
	require.NoError(t, err)

	v, err := g.Compute(top)
	require.NoError(t, err)
	assert.Equal(t, 15.0, v) // (3*2) + (3*3)
	assert.Equal(t, 1, *sharedCalls)

	require.NoError(t, g.SetInput("x", 4))
	v, err = g.Compute(top)
	require.NoError(t, err)
	assert.Equal(t, 25.0, v) // (5*2) + (5*3)
	assert.Equal(t, 2, *sharedCalls)
}

func TestComputeUnsetInput(t *testing.T) {
	g := New[float64]()
	x := g.AddInputNode()
	require.NoError(t, g.RegisterInput("x", x))
	y := g.AddInputNode()
	require.NoError(t, g.SetInputByID(y, 5))

	n, err := g.AddNode([]NodeID{x, y}, sum)
	require.NoError(t, err)

	_, err = g.Compute(n)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsetInput)

	var unset *UnsetInputError
	require.True(t, errors.As(err, &unset))
	assert.Equal(t, x, unset.ID)
	assert.Equal(t, "x", unset.Name)

	// The failed query must leave the graph usable: supply the missing
	// value and retry.
	require.NoError(t, g.SetInput("x", 1))
	v, err := g.Compute(n)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestComputeOpErrorLeavesGraphUsable(t *testing.T) {
	g := New[float64]()
	x := g.AddInputNode()
	require.NoError(t, g.RegisterInput("x", x))
	require.NoError(t, g.SetInput("x", -1))

	root, err := g.AddNode([]NodeID{x}, func(args []float64) (float64, error) {
		if args[0] < 0 {
			return 0, errors.New("negative argument")
		}
		return math.Sqrt(args[0]), nil
	})
	require.NoError(t, err)

	_, err = g.Compute(root)
	require.Error(t, err)
	assert.ErrorContains(t, err, "negative argument")

	_, cached := g.Cached(root)
	assert.False(t, cached, "a failed op must not populate the cache")

	require.NoError(t, g.SetInput("x", 9))
	v, err := g.Compute(root)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestComputeUnknownID(t *testing.T) {
	g := New[float64]()
	_, err := g.Compute(NodeID(3))
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func round5(x float64) float64 {
	return math.Round(x*1e5) / 1e5
}

func TestComputeWaveFormula(t *testing.T) {
	// f(x1, x2, x3) = x1 + x2 * sin(x2 + x3^3)
	g := New[float64]()
	for _, name := range []string{"x1", "x2", "x3"} {
		id := g.AddInputNode()
		require.NoError(t, g.RegisterInput(name, id))
	}
	x1, _ := g.InputID("x1")
	x2, _ := g.InputID("x2")
	x3, _ := g.InputID("x3")

	cube, err := g.AddNode([]NodeID{x3}, func(args []float64) (float64, error) {
		return math.Pow(args[0], 3), nil
	})
	require.NoError(t, err)
	phase, err := g.AddNode([]NodeID{x2, cube}, sum)
	require.NoError(t, err)
	wave, err := g.AddNode([]NodeID{phase}, func(args []float64) (float64, error) {
		return math.Sin(args[0]), nil
	})
	require.NoError(t, err)
	scaled, err := g.AddNode([]NodeID{x2, wave}, func(args []float64) (float64, error) {
		return args[0] * args[1], nil
	})
	require.NoError(t, err)
	f, err := g.AddNode([]NodeID{x1, scaled}, sum)
	require.NoError(t, err)

	require.NoError(t, g.SetInput("x1", 1))
	require.NoError(t, g.SetInput("x2", 2))
	require.NoError(t, g.SetInput("x3", 3))

	v, err := g.Compute(f)
	require.NoError(t, err)
	assert.Equal(t, -0.32727, round5(v))

	require.NoError(t, g.SetInput("x1", 2))
	require.NoError(t, g.SetInput("x2", 3))
	require.NoError(t, g.SetInput("x3", 4))

	v, err = g.Compute(f)
	require.NoError(t, err)
	assert.Equal(t, -0.56656, round5(v))
}

func TestComputeDeepChain(t *testing.T) {
	// A chain deep enough to overflow a recursive evaluator; the explicit
	// work stack must handle it, for both evaluation and invalidation.
	const depth = 200_000

	g := New[float64]()
	x := g.AddInputNode()
	require.NoError(t, g.RegisterInput("x", x))
	require.NoError(t, g.SetInput("x", 0))

	prev := x
	for i := 0; i < depth; i++ {
		next, err := g.AddNode([]NodeID{prev}, func(args []float64) (float64, error) {
			return args[0] + 1, nil
		})
		require.NoError(t, err)
		prev = next
	}

	v, err := g.Compute(prev)
	require.NoError(t, err)
	assert.Equal(t, float64(depth), v)

	require.NoError(t, g.SetInput("x", 1))
	_, cached := g.Cached(prev)
	require.False(t, cached)

	v, err = g.Compute(prev)
	require.NoError(t, err)
	assert.Equal(t, float64(depth+1), v)
}
