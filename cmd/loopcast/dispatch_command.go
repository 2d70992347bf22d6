package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"loopcast/internal/adapters/instagram"
	"loopcast/internal/adapters/reddit"
	"loopcast/internal/adapters/youtube"
	"loopcast/internal/dispatch"
	"loopcast/internal/metadata"
	"loopcast/internal/runlog"
	"loopcast/internal/runs"
	"loopcast/internal/scheduling"
)

func newDispatchCommand(cmdCtx *commandContext) *cobra.Command {
	var realFlag bool
	var platformFlag string
	var windowFlag string

	cmd := &cobra.Command{
		Use:   "dispatch <run-id>",
		Short: "Dispatch a run's post package to the platform adapters",
		Long: `Dispatch a run's post package to the platform adapters.

Without --real this is a dry run: adapters render previews and nothing
leaves the machine. With --real the scheduling guardrail must allow the
current instant for the chosen window, and the package's release metadata
must target the current ISO week.`,
		Args: cobra.ExactArgs(1),
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

			runDir, err := runs.Resolve(cfg.Paths.OutputDir, args[0])
			if err != nil {
				return err
			}

			guard, err := scheduling.New(cfg.Scheduling)
			if err != nil {
				return err
			}
			if !guard.KnowsWindow(windowFlag) {
				printStatus(out, "guardrail", statusWarn, fmt.Sprintf("window %q is not configured; a real run will be denied", windowFlag))
			}
			dispatcher, err := dispatch.New(logger, guard,
				youtube.New(cfg.YouTube, logger, nil),
				reddit.New(logger),
				instagram.New(logger),
			)
			if err != nil {
				return err
			}

			var doc *metadata.Document
			if realFlag {
				doc, err = metadata.Load(cfg.MetadataPath())
				if err != nil {
					return err
				}
			}

			opts := dispatch.Options{
				RunDir:   runDir,
				Window:   windowFlag,
				Real:     realFlag,
				Platform: platformFlag,
			}
			result, runErr := dispatcher.Run(context.Background(), doc, opts)

			if store, storeErr := runlog.Open(cfg); storeErr == nil {
				if err := store.RecordDispatch(context.Background(), args[0], opts, result); err != nil {
					logger.Warn("record dispatch failed", "component", "dispatch", "error", err)
				}
				_ = store.Close()
			}

			if result != nil {
				if result.Denied != nil {
					printStatus(out, "guardrail", statusWarn, fmt.Sprintf("denied (%s): %s", result.Denied.Reason, result.Denied.Detail))
					fmt.Fprintln(out, "No adapter was invoked. Try again inside the posting window.")
					return nil
				}
				for _, platform := range result.Platforms {
					kind := statusOK
					message := platform.Status
					switch platform.Status {
					case dispatch.StatusFailed:
						kind = statusError
						message = fmt.Sprintf("failed: %v", platform.Err)
					case dispatch.StatusSkippedDisabled, dispatch.StatusSkippedFiltered:
						kind = statusInfo
					}
					printStatus(out, platform.Platform, kind, message)
				}
				if result.OutboxPath != "" {
					printStatus(out, "reddit outbox", statusOK, result.OutboxPath)
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&realFlag, "real", false, "Perform a real dispatch instead of a dry run")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Only dispatch to this platform (youtube, reddit, instagram)")
	cmd.Flags().StringVar(&windowFlag, "window", "full", "Scheduling window to evaluate for a real run")
	return cmd
}
