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

	"github.com/cloudygreybeard/dirfavs/pkg/ops"
	"github.com/spf13/cobra"
)

// NewRenameCommand creates the rename command.
func NewRenameCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <old> [new] [-c category]",
		Short: "Rename or recategorise a bookmark",
		Long: `Move a bookmark to a new name, change its category, or both.

The rename is applied first; the category is then set on the new name.
Usage data is kept.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var oldName string
			var renameOpts ops.RenameOptions
			if len(args) > 0 {
				oldName = args[0]
			}
			if len(args) > 1 {
				renameOpts.NewName = args[1]
			}
			renameOpts.NewCategory, _ = cmd.Flags().GetString("category")

			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			b, err := svc.Rename(cmd.Context(), oldName, renameOpts)
			if err != nil {
				return err
			}

			if b.Name != oldName {
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s -> %s\n", oldName, b.Name)
			}
			if renameOpts.NewCategory != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Category of %s set to %s\n", b.Name, b.Category)
			}
			return nil
		},
	}

	cmd.Flags().StringP("category", "c", "", "new category")

	return cmd
}
