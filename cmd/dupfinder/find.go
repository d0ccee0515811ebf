package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ning0612/dupfinder/internal/config"
	"github.com/Ning0612/dupfinder/internal/core/parser"
	"github.com/Ning0612/dupfinder/internal/logger"
	"github.com/Ning0612/dupfinder/internal/report"
	"github.com/Ning0612/dupfinder/internal/service"
	"github.com/Ning0612/dupfinder/internal/source"
)

func newFindCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "find [FILE]",
		Short: "Report groups of files sharing the same content",
		Long: `Reads entries of the form

  <directory> <name1>(<content1>) <name2>(<content2>) ...

one per line from FILE, or from standard input when FILE is "-" or omitted,
and prints every group of two or more paths whose content is identical.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if cmd.Flags().Changed("strict") {
				cfg.Parse.StrictClose = strict
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			shutdown, err := initLogger(cmd, cfg)
			if err != nil {
				return err
			}
			defer shutdown()

			return runFind(cmd, cfg, args)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.OutputText, "output format: text, json, table")
	cmd.Flags().BoolVar(&strict, "strict", false, "require file tokens to end with ')'")

	return cmd
}

func runFind(cmd *cobra.Command, cfg *config.Config, args []string) error {
	var (
		lines source.Lines
		err   error
	)
	if len(args) == 0 || args[0] == "-" {
		lines, err = source.FromReader("<stdin>", cmd.InOrStdin())
	} else {
		lines, err = source.FromPath(args[0])
	}
	if err != nil {
		return err
	}

	finder := service.NewFinder(lines, service.Options{
		Parser: parser.Options{StrictClose: cfg.Parse.StrictClose},
	})
	groups, err := finder.Result()
	if err != nil {
		return err
	}

	logger.Get().Debug("rendering result", "format", cfg.Output.Format, "groups", len(groups))
	if err := report.Render(cmd.OutOrStdout(), cfg.Output.Format, groups); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	return nil
}
