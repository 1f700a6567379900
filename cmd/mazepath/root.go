package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/telemetry"
	"github.com/katalvlaran/mazepath/maze"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "mazepath",
		Short:        "Uninformed and informed search over grid mazes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "text or json (overrides log.format)")

	root.AddCommand(newSolveCmd(a), newCompareCmd(a), newGenerateCmd(a), newServeCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger,
// which writes to stderr so that command output stays parseable.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	return nil
}

// loadMaze parses the maze file at path, returning the maze and the goal
// stored in the file.
func (a *app) loadMaze(path string) (*maze.Maze, maze.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var opts []maze.Option
	if a.cfg.Search.AllowDuplicates {
		opts = append(opts, maze.WithOverwrite())
	}
	m, goal, err := maze.Parse(f, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("maze loaded", "file", path, "size", m.Size(), "nodes", m.Len(), "goal", int(goal))

	return m, goal, nil
}
