package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tensorsched/internal/testutil"
)

const dlaTarget = `
target "dla" {
  resource "mac" {
    units = 1
  }
  resource "alu" {
    units = 16
  }
  op "dla.matmul" {
    resource = "mac"
    cycles   = 4
  }
  default {
    resource = "alu"
    cycles   = 1
  }
}
`

const mlpModel = `
model "mlp" {
  input "x" {
    dims  = [1, 8]
    dtype = "float32"
  }
  node "matmul" "fc0" {
    inputs = ["x"]
    output "h0" {}
  }
  node "relu" "act0" {
    inputs = ["h0"]
    output "h1" {}
  }
  node "matmul" "fc1" {
    inputs = ["h1"]
    output "y" {}
  }
  outputs = ["y"]
}
`

func TestEndToEndSchedule(t *testing.T) {
	result := testutil.RunSchedulerTest(t, map[string]string{
		"dla.hcl": dlaTarget,
		"mlp.hcl": mlpModel,
	}, "dla")
	require.NoError(t, result.Err)

	out := result.LogOutput
	// The fully serialized chain plus boundary load/store: load(1) +
	// fc0(4) + act0(1) + fc1(4) + store(1).
	assert.Contains(t, out, "schedule for mlp (makespan 11 cycles)")
	assert.Contains(t, out, "round")
	assert.Contains(t, out, "fc0(dla.matmul)")
	assert.Contains(t, out, "act0(dla.relu)")
	assert.Contains(t, out, "load")
	assert.Contains(t, out, "store")

	// The backend came from the loaded target file.
	backend, err := result.App.Targets().Lookup("dla")
	require.NoError(t, err)
	assert.Equal(t, "dla", backend.Name)
}

func TestEndToEndUnknownTarget(t *testing.T) {
	result := testutil.RunSchedulerTest(t, map[string]string{
		"dla.hcl": dlaTarget,
		"mlp.hcl": mlpModel,
	}, "npu")
	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, `unknown target "npu"`)
}

func TestEndToEndBrokenConfigPanics(t *testing.T) {
	result := testutil.RunSchedulerTest(t, map[string]string{
		"broken.hcl": `target "dla" {`,
	}, "dla")
	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, "application startup panicked")
	assert.ErrorContains(t, result.Err, "failed to parse HCL file")
}

func TestEndToEndNoModels(t *testing.T) {
	result := testutil.RunSchedulerTest(t, map[string]string{
		"dla.hcl": dlaTarget,
	}, "dla")
	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "No models found in configuration")
	assert.NotContains(t, result.LogOutput, "schedule for")
}

func TestEndToEndZeroCapacityStalls(t *testing.T) {
	result := testutil.RunSchedulerTest(t, map[string]string{
		"dead.hcl": `
target "dead" {
  resource "none" {
    units = 0
  }
  default {
    resource = "none"
    cycles   = 1
  }
}
`,
		"mlp.hcl": mlpModel,
	}, "dead")
	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, "scheduling stalled")
}
