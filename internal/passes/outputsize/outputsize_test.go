package outputsize

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/ir"
	"github.com/vk/tensorsched/internal/pass"
)

func testContext() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

func TestRunPropagatesDims(t *testing.T) {
	ctx, _ := testContext()

	g := ir.New()
	x := g.NewValue("x")
	x.Dims = []int64{2, 3}
	x.DType = "float32"
	a := g.AddNode("relu", x)
	ya := a.NewOutput("ya")
	b := g.AddNode("sigmoid", ya)
	yb := b.NewOutput("yb")
	g.AddNode(ir.KindReturn, yb)

	res, err := NewPass().Run(ctx, ir.NewModule("m", g))
	require.NoError(t, err)
	assert.Equal(t, pass.Changed, res)

	// Shapes flow through the chain in graph order.
	assert.Equal(t, []int64{2, 3}, ya.Dims)
	assert.Equal(t, "float32", ya.DType)
	assert.Equal(t, []int64{2, 3}, yb.Dims)
	assert.Equal(t, "float32", yb.DType)
}

func TestRunKeepsDeclaredMetadata(t *testing.T) {
	ctx, _ := testContext()

	g := ir.New()
	x := g.NewValue("x")
	x.Dims = []int64{8}
	x.DType = "float32"
	n := g.AddNode("cast", x)
	y := n.NewOutput("y")
	y.DType = "int8"

	res, err := NewPass().Run(ctx, ir.NewModule("m", g))
	require.NoError(t, err)
	assert.Equal(t, pass.Changed, res)

	// Inferred dims never override a declared element type.
	assert.Equal(t, []int64{8}, y.Dims)
	assert.Equal(t, "int8", y.DType)
}

func TestRunAlreadySized(t *testing.T) {
	ctx, _ := testContext()

	g := ir.New()
	x := g.NewValue("x")
	x.Dims = []int64{4}
	n := g.AddNode("relu", x)
	y := n.NewOutput("y")
	y.Dims = []int64{4}

	res, err := NewPass().Run(ctx, ir.NewModule("m", g))
	require.NoError(t, err)
	assert.Equal(t, pass.NoChange, res)
}

func TestRunWarnsWhenUninferable(t *testing.T) {
	ctx, buf := testContext()

	g := ir.New()
	x := g.NewValue("x")
	n := g.AddNode("relu", x)
	y := n.NewOutput("y")

	res, err := NewPass().Run(ctx, ir.NewModule("m", g))
	require.NoError(t, err)
	assert.Equal(t, pass.NoChange, res)
	assert.Empty(t, y.Dims)
	assert.Contains(t, buf.String(), "Cannot infer output size")
}
