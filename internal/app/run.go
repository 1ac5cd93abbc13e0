package app

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/vk/tensorsched/internal/builder"
	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/lower"
	"github.com/vk/tensorsched/internal/pass"
	"github.com/vk/tensorsched/internal/passes/outputsize"
	"github.com/vk/tensorsched/internal/scheduler"
)

// Run schedules every loaded model on the configured target and renders the
// resulting schedules to the output writer.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	backend, err := a.targets.Lookup(appConfig.Target)
	if err != nil {
		return err
	}

	if len(a.config.Models) == 0 {
		a.logger.Warn("No models found in configuration, nothing to schedule.")
		return nil
	}

	for _, def := range a.config.Models {
		a.logger.Info("Scheduling model.", "model", def.Name, "target", backend.Name)

		mod, err := builder.BuildModule(ctx, def)
		if err != nil {
			return fmt.Errorf("failed to build IR for model %q: %w", def.Name, err)
		}
		a.logger.Debug("IR built.", "model", def.Name, "node_count", mod.Graph.Len())

		schedPass := scheduler.NewPass(backend.Model)
		pipeline := pass.NewPipeline()
		pipeline.Add(
			outputsize.NewPass(),
			lower.NewPass(lower.NewSelection(backend.Lowers...)),
			schedPass,
		)

		if err := pipeline.Run(ctx, mod); err != nil {
			return fmt.Errorf("scheduling model %q: %w", def.Name, err)
		}

		a.renderSchedule(mod.Name, schedPass.Schedule())
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// renderSchedule prints the admission rounds of one model's schedule.
func (a *App) renderSchedule(model string, sched *scheduler.Schedule) {
	fmt.Fprintf(a.outW, "schedule for %s (makespan %d cycles)\n", model, sched.Makespan)

	w := tabwriter.NewWriter(a.outW, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "round\tcycle\tnodes")
	for i, round := range sched.Rounds {
		fmt.Fprintf(w, "%d\t%d\t", i+1, round.Start)
		for j, n := range round.Nodes {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			if n.Name() != "" {
				fmt.Fprintf(w, "%s(%s)", n.Name(), n.Kind())
			} else {
				fmt.Fprintf(w, "%s", n.Kind())
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
