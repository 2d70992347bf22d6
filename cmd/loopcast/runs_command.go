package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"loopcast/internal/runlog"
	"loopcast/internal/runs"
)

func newRunsCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List generated runs and their dispatch history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			infos, err := runs.List(cfg.Paths.OutputDir)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Fprintln(out, "No runs yet. Create one with `loopcast generate`.")
				return nil
			}

			history := make(map[string]runlog.RunRecord)
			store, err := runlog.Open(cfg)
			if err == nil {
				records, listErr := store.ListRuns(context.Background())
				_ = store.Close()
				if listErr == nil {
					for _, record := range records {
						history[record.RunID] = record
					}
				}
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				record, tracked := history[info.ID]
				row := []string{info.ID, yesNo(info.HasPackage), "", "0", ""}
				if tracked {
					row[2] = record.PackageID
					row[3] = fmt.Sprintf("%d", record.Dispatches)
					if record.LastMode != "" {
						row[4] = record.LastMode + " " + record.LastOutcome
					}
				}
				rows = append(rows, row)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"RUN", "PACKAGE FILE", "PACKAGE ID", "DISPATCHES", "LAST DISPATCH"},
				rows,
				3,
			))
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
