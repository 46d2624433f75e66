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


package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/input"
	"github.com/cloudygreybeard/dirfavs/pkg/ops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge bookmarks from an exported file",
		Long: `Merge bookmarks from a file written by "dirfavs export", or from
a bookmark file kept by the older shell tool (--format legacy).
Use - to read stdin.

Existing names are kept unless --overwrite is given. Bookmarks whose
directory does not exist here are skipped unless --keep-missing is
given. Visit counts and times are preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			keepMissing, _ := cmd.Flags().GetBool("keep-missing")

			inAdapter, err := resolveInput(format, args[0])
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening import file: %w", err)
				}
				defer f.Close()
				r = f
			}

			ctx := input.WithLogger(cmd.Context(), rootOpts.Logger)
			marks, err := inAdapter.Read(ctx, r)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := svc.Import(cmd.Context(), marks, ops.ImportOptions{
				Overwrite:   overwrite,
				KeepMissing: keepMissing,
			})
			if err != nil {
				return err
			}

			rootOpts.Logger.Debug("import finished",
				zap.String("format", inAdapter.Name()),
				zap.Strings("skipped", result.Skipped))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d, replaced %d, skipped %d\n",
				len(result.Added), len(result.Replaced), len(result.Skipped))
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "", "input format (default: from file extension)")
	cmd.Flags().Bool("overwrite", false, "replace bookmarks that already exist")
	cmd.Flags().Bool("keep-missing", false, "import bookmarks whose directory does not exist")

	return cmd
}

func resolveInput(format, path string) (input.Adapter, error) {
	if format == "" {
		if a, ok := adapter.InputForPath(path); ok {
			return a, nil
		}
		return nil, fmt.Errorf("cannot detect the format of %s, use --format (available: %v)", path, adapter.ListInputs())
	}
	a, ok := adapter.GetInput(format)
	if !ok {
		return nil, fmt.Errorf("unknown input format: %s (available: %v)", format, adapter.ListInputs())
	}
	return a, nil
}
