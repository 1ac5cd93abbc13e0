package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tensorsched/internal/costmodel"
	"github.com/vk/tensorsched/internal/ir"
	"github.com/vk/tensorsched/internal/pass"
	"github.com/vk/tensorsched/internal/passes/outputsize"
)

func TestPassRequiresOutputSize(t *testing.T) {
	p := NewPass(&stubModel{fallback: &singleUnit})
	assert.Equal(t, "node-scheduler", p.Name())
	assert.Contains(t, p.Requires(), outputsize.PassName)

	// A pipeline without the analysis refuses to run the scheduler.
	ctx, _ := testContext()
	pipeline := pass.NewPipeline()
	pipeline.Add(p)
	err := pipeline.Run(ctx, ir.NewModule("m", ir.New()))
	require.Error(t, err)
	assert.ErrorContains(t, err, outputsize.PassName)
}

func TestPassReportsBoundaryInsertion(t *testing.T) {
	ctx, _ := testContext()

	g := ir.New()
	x := g.NewValue("x")
	g.MarkInput(x)
	n := g.AddNode("relu", x)
	y := n.NewOutput("y")
	g.MarkOutput(y)
	g.AddNode(ir.KindReturn, y)
	m := ir.NewModule("m", g)

	wide := &costmodel.Resource{Name: "alu", Units: 8}
	p := NewPass(&stubModel{fallback: wide})

	// First run inserts boundary nodes: the graph changed.
	res, err := p.Run(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, pass.Changed, res)
	require.NotNil(t, p.Schedule())
	first := p.Schedule()

	// Second run finds the graph normalized: pure accounting, no change.
	res, err = p.Run(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, pass.NoChange, res)
	assert.Equal(t, first.Makespan, p.Schedule().Makespan)
}

func TestPassFailurePropagates(t *testing.T) {
	ctx, _ := testContext()

	g := ir.New()
	g.AddNode("relu")
	m := ir.NewModule("m", g)

	p := NewPass(nil)
	res, err := p.Run(ctx, m)
	assert.Equal(t, pass.Failure, res)
	require.Error(t, err)
	assert.Nil(t, p.Schedule())
}
