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

	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <path> [category]",
		Short: "Bookmark a directory",
		Long: `Bookmark an existing directory under a unique name.

The path is stored in absolute form. The category defaults to
defaults.category from the config file ("general").`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 3 {
				category = args[2]
			}

			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			b, err := svc.Add(cmd.Context(), args[0], args[1], category)
			if err != nil {
				return err
			}
			printAdded(cmd, b)
			return nil
		},
	}
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> [category]",
		Short: "Bookmark the current directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 2 {
				category = args[1]
			}

			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			b, err := svc.SetCurrent(cmd.Context(), args[0], category)
			if err != nil {
				return err
			}
			printAdded(cmd, b)
			return nil
		},
	}
}

func printAdded(cmd *cobra.Command, b bookmark.Bookmark) {
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s -> %s [%s]\n", b.Name, b.Path, b.Category)
}
