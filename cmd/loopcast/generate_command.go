package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"loopcast/internal/editorial"
	"loopcast/internal/metadata"
	"loopcast/internal/outbox"
	"loopcast/internal/pipeline"
	"loopcast/internal/post"
	"loopcast/internal/runlog"
	"loopcast/internal/runs"
)

func newGenerateCommand(cmdCtx *commandContext) *cobra.Command {
	var windowFlag string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Validate metadata and build a new post package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			doc, err := metadata.Load(cfg.MetadataPath())
			if err != nil {
				return err
			}
			if violations := metadata.Validate(doc, false); len(violations) > 0 {
				for _, violation := range violations {
					printStatus(out, "metadata", statusError, violation)
				}
				return pipeline.ValidationList(pipeline.ErrMetadata, "generate", violations)
			}
			printStatus(out, "metadata", statusOK, "semantic validation passed")

			runID := runs.NewID(time.Now())
			run, err := runs.Create(cfg.Paths.InputDir, cfg.Paths.OutputDir, runID)
			if err != nil {
				return err
			}
			printStatus(out, "media", statusOK, fmt.Sprintf("staged into %s", run.Dir))

			pkg, err := post.Assemble(doc, post.AssembleInput{
				RunDir:            run.Dir,
				RunID:             run.ID,
				Video:             run.Video,
				Thumbnail:         run.Thumbnail,
				Window:            windowFlag,
				FallbackSubreddit: cfg.Reddit.DefaultSubreddit,
			})
			if err != nil {
				return err
			}
			packagePath, err := post.Write(run.Dir, pkg)
			if err != nil {
				return err
			}

			bundle := editorial.DeriveBundle(doc, pkg.Hashtags)
			artifacts, err := outbox.WriteBundle(run.Dir, bundle)
			if err != nil {
				return err
			}
			printStatus(out, "outbox", statusOK, fmt.Sprintf("%d artifact(s) written", len(artifacts)))

			if ok, violations := post.ValidateFile(packagePath); !ok {
				for _, violation := range violations {
					printStatus(out, "package", statusError, violation)
				}
				return pipeline.ValidationList(pipeline.ErrSchema, "generate", violations)
			}
			printStatus(out, "package", statusOK, packagePath)

			store, err := runlog.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.RecordRun(context.Background(), run.ID, pkg.ID, pkg.Title); err != nil {
				return err
			}

			logger.Info("run generated",
				"component", "generate",
				"run_id", run.ID,
				"package_id", pkg.ID,
				"window", windowFlag,
			)
			fmt.Fprintf(out, "\nRun %s ready. Review the outbox, then dispatch with:\n  loopcast dispatch %s\n", run.ID, run.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&windowFlag, "window", "full", "Scheduling window this package targets")
	return cmd
}
