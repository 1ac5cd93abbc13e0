package builder

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tensorsched/internal/config"
	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/ir"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func TestBuildModule(t *testing.T) {
	def := &config.ModelDef{
		Name: "tiny",
		Inputs: []*config.TensorDef{
			{Name: "x", Dims: []int64{1, 8}, DType: "float32"},
		},
		Nodes: []*config.NodeDef{
			{Kind: "relu", Name: "act0", Inputs: []string{"x"},
				Outputs: []*config.TensorDef{{Name: "h", Dims: []int64{1, 8}}}},
			{Kind: "sigmoid", Name: "act1", Inputs: []string{"h"},
				Outputs: []*config.TensorDef{{Name: "y", Dims: []int64{1, 8}}}},
		},
		Outputs: []string{"y"},
	}

	m, err := BuildModule(testContext(), def)
	require.NoError(t, err)
	assert.Equal(t, "tiny", m.Name)
	g := m.Graph

	require.Len(t, g.Inputs(), 1)
	x := g.Inputs()[0]
	assert.Equal(t, "x", x.Name())
	assert.Equal(t, []int64{1, 8}, x.Dims)

	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, ir.Kind("relu"), nodes[0].Kind())
	assert.Equal(t, "act0", nodes[0].Name())
	assert.Equal(t, []*ir.Value{x}, nodes[0].Inputs())

	h := nodes[0].Outputs()[0]
	assert.Equal(t, nodes[0], h.Producer())
	assert.Equal(t, []*ir.Value{h}, nodes[1].Inputs())

	// The element type defaults when the definition leaves it out.
	assert.Equal(t, "float32", h.DType)

	require.Len(t, g.Outputs(), 1)
	y := g.Outputs()[0]
	assert.Equal(t, "y", y.Name())
	ret := nodes[2]
	assert.Equal(t, ir.KindReturn, ret.Kind())
	assert.Equal(t, []*ir.Value{y}, ret.Inputs())
}

func TestBuildModuleForwardReference(t *testing.T) {
	// act1 consumes "h" before act0 produces it; the placeholder created at
	// consume time must be claimed by the later producer.
	def := &config.ModelDef{
		Name: "fwd",
		Nodes: []*config.NodeDef{
			{Kind: "sigmoid", Name: "act1", Inputs: []string{"h"},
				Outputs: []*config.TensorDef{{Name: "y"}}},
			{Kind: "relu", Name: "act0",
				Outputs: []*config.TensorDef{{Name: "h"}}},
		},
	}

	m, err := BuildModule(testContext(), def)
	require.NoError(t, err)
	g := m.Graph

	h := g.ValueByName("h")
	require.NotNil(t, h)
	nodes := g.Nodes()
	assert.Equal(t, nodes[1], h.Producer())
	assert.Equal(t, []*ir.Value{h}, nodes[0].Inputs())
}

func TestBuildModuleDuplicateProducer(t *testing.T) {
	def := &config.ModelDef{
		Name: "dup",
		Nodes: []*config.NodeDef{
			{Kind: "relu", Name: "a", Outputs: []*config.TensorDef{{Name: "y"}}},
			{Kind: "sigmoid", Name: "b", Inputs: []string{"y"},
				Outputs: []*config.TensorDef{{Name: "y"}}},
		},
	}

	// The second "y" collides by name, so a fresh suffixed value is created
	// rather than rebinding the first producer's output.
	m, err := BuildModule(testContext(), def)
	require.NoError(t, err)
	g := m.Graph
	nodes := g.Nodes()
	assert.NotEqual(t, nodes[0].Outputs()[0], nodes[1].Outputs()[0])
	assert.Equal(t, "y_1", nodes[1].Outputs()[0].Name())
}

func TestBuildModuleUnknownOutput(t *testing.T) {
	def := &config.ModelDef{
		Name:    "bad",
		Outputs: []string{"ghost"},
	}

	_, err := BuildModule(testContext(), def)
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown output value "ghost"`)
}

func TestBuildBackend(t *testing.T) {
	def := &config.TargetDef{
		Name: "dla",
		Resources: []*config.ResourceDef{
			{Name: "mac", Units: 4},
			{Name: "alu", Units: 16},
		},
		Ops: []*config.OpCostDef{
			{Kind: "dla.conv", Resource: "mac", Cycles: 8},
		},
		Default: &config.OpCostDef{Resource: "alu", Cycles: 1},
	}

	b, err := BuildBackend(def)
	require.NoError(t, err)
	assert.Equal(t, "dla", b.Name)
	assert.NotEmpty(t, b.Lowers)

	g := ir.New()
	conv := g.AddNode("dla.conv")
	res, err := b.Model.ResourceFor(conv)
	require.NoError(t, err)
	assert.Equal(t, "mac", res.Name)

	other := g.AddNode("dla.relu")
	res, err = b.Model.ResourceFor(other)
	require.NoError(t, err)
	assert.Equal(t, "alu", res.Name)
}

func TestBuildBackendBadDefinition(t *testing.T) {
	def := &config.TargetDef{
		Name: "dla",
		Ops:  []*config.OpCostDef{{Kind: "dla.conv", Resource: "mac", Cycles: 8}},
	}

	_, err := BuildBackend(def)
	require.Error(t, err)
	assert.ErrorContains(t, err, `target "dla"`)
	assert.ErrorContains(t, err, "undefined execution resource")
}
