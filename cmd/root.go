// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package cmd implements the dirfavs CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudygreybeard/dirfavs/pkg/config"
	"github.com/cloudygreybeard/dirfavs/pkg/ops"
	"github.com/cloudygreybeard/dirfavs/pkg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	// Import adapters to trigger init() registration
	_ "github.com/cloudygreybeard/dirfavs/pkg/input/json"
	_ "github.com/cloudygreybeard/dirfavs/pkg/input/legacy"
	_ "github.com/cloudygreybeard/dirfavs/pkg/input/plist"
	_ "github.com/cloudygreybeard/dirfavs/pkg/input/yaml"
	_ "github.com/cloudygreybeard/dirfavs/pkg/output/json"
	_ "github.com/cloudygreybeard/dirfavs/pkg/output/markdown"
	_ "github.com/cloudygreybeard/dirfavs/pkg/output/plist"
	_ "github.com/cloudygreybeard/dirfavs/pkg/output/yaml"
)

// RootOptions holds global flags and the state shared by subcommands.
type RootOptions struct {
	ConfigFile string
	StorePath  string
	Backend    string
	Verbose    bool

	// Set during PersistentPreRunE.
	Config config.Config
	Logger *zap.Logger

	// Prompter overrides the confirmation source for clear.
	Prompter ops.Prompter
}

// NewRootCommand creates the root command for the dirfavs CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirfavs",
		Short: "Bookmark directories and jump back to them",
		Long: `dirfavs keeps named bookmarks for directories you use often,
tracks how often and how recently you visit them, and prints a
bookmark's path so a shell function can cd into it.

Bookmarks are stored in ~/.bookmarks unless --store, $DIRFAVS_STORE
or the config file say otherwise. Run "dirfavs shell" to print the
shell function that performs the directory change.

Examples:
  dirfavs add src ~/src work     # Bookmark a directory
  dirfavs set here               # Bookmark the current directory
  dirfavs to src                 # Print the path and record the visit
  dirfavs list -c work           # Bookmarks in a category
  dirfavs rename src code -c dev # Rename and recategorise
  dirfavs frequent -n 5          # Most visited
  dirfavs export -o marks.md     # Markdown export
  eval "$(dirfavs shell bash)"   # Install the fav shell function
  dirfavs serve                  # Run as MCP server`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: $DIRFAVS_CONFIG or ~/.dirfavs/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.StorePath, "store", "", "bookmark store (default: $DIRFAVS_STORE, config store.path, or ~/.bookmarks)")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", "", "store backend: file or sqlite (default: config store.backend)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output to stderr")

	cmd.Version = Version
	cmd.SetVersionTemplate(fmt.Sprintf("dirfavs %s (commit: %s, built: %s)\n", Version, Commit, Date))

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewToCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRenameCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewRecentCommand(opts))
	cmd.AddCommand(NewFrequentCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewFormatsCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup builds the logger and loads configuration.
func (o *RootOptions) setup() error {
	if o.Logger == nil {
		logger, err := newLogger(o.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		o.Logger = logger
	}

	path := config.ResolvePath(o.ConfigFile)
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if o.Backend != "" {
		cfg.Store.Backend = o.Backend
	}
	o.Config = cfg

	o.Logger.Debug("configuration loaded",
		zap.String("config", path),
		zap.String("backend", cfg.Store.Backend))
	return nil
}

// newLogger writes human-readable logs to stderr. stdout is reserved for
// command output, which the shell function captures.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.Sampling = nil
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// openService opens the configured store. The returned close function
// releases the backend.
func (o *RootOptions) openService(ctx context.Context, extra ...ops.Option) (*ops.Service, func(), error) {
	path := o.Config.StorePath(o.StorePath)

	backend, err := store.NewBackend(o.Config.Store.Backend, path, o.Logger)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(ctx, backend, store.WithLogger(o.Logger))
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("opening bookmark store: %w", err)
	}

	svcOpts := []ops.Option{
		ops.WithLogger(o.Logger),
		ops.WithDefaultCategory(o.Config.Defaults.Category),
	}
	svcOpts = append(svcOpts, extra...)

	closeFn := func() {
		if err := st.Close(); err != nil {
			o.Logger.Warn("closing store", zap.Error(err))
		}
	}
	return ops.New(st, svcOpts...), closeFn, nil
}
