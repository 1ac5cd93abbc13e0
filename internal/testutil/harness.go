// Package testutil provides shared helpers for package tests: a thread-safe
// log buffer and an end-to-end harness that runs the app over HCL fixture
// files.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/tensorsched/internal/app"
	"github.com/vk/tensorsched/internal/hcl"
)

// HarnessResult holds the outcomes of an end-to-end test run. The app's
// rendered output and its logs share one buffer.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// RunSchedulerTest writes the given HCL files into a temporary directory,
// builds an App over them, and runs the full pipeline against the named
// target. Startup panics are recovered into the result error.
func RunSchedulerTest(t *testing.T, files map[string]string, targetName string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.Config{
		ModelPath: tmpDir,
		Target:    targetName,
		LogLevel:  "debug",
		LogFormat: "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background(), appConfig)
	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
