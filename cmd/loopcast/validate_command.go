package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loopcast/internal/metadata"
	"loopcast/internal/pipeline"
	"loopcast/internal/post"
	"loopcast/internal/runs"
)

func newValidateCommand(cmdCtx *commandContext) *cobra.Command {
	var requireReady bool

	cmd := &cobra.Command{
		Use:   "validate [run-id]",
		Short: "Validate the metadata document, or a run's post package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				doc, err := metadata.Load(cfg.MetadataPath())
				if err != nil {
					return err
				}
				violations := metadata.Validate(doc, requireReady)
				if len(violations) > 0 {
					for _, violation := range violations {
						printStatus(out, "metadata", statusError, violation)
					}
					return pipeline.ValidationList(pipeline.ErrMetadata, "validate", violations)
				}
				printStatus(out, "metadata", statusOK, cfg.MetadataPath())
				return nil
			}

			runDir, err := runs.Resolve(cfg.Paths.OutputDir, args[0])
			if err != nil {
				return err
			}
			ok, violations := post.ValidateFile(post.Path(runDir))
			if !ok {
				for _, violation := range violations {
					printStatus(out, "package", statusError, violation)
				}
				return pipeline.ValidationList(pipeline.ErrSchema, "validate", violations)
			}
			printStatus(out, "package", statusOK, fmt.Sprintf("%s passes schema validation", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&requireReady, "require-ready", false, "Also require release.package_ready = true")
	return cmd
}
