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

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [word]",
		Short: "List bookmarks",
		Long: `List bookmarks by name.

With a word, only names containing it are shown. -c selects a category
and -g matches names against a glob pattern. Only one filter applies:
-c wins over a word, which wins over -g.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter bookmark.Filter
			filter.Category, _ = cmd.Flags().GetString("category")
			filter.Glob, _ = cmd.Flags().GetString("glob")
			if len(args) == 1 {
				filter.Contains = args[0]
			}

			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			pairs, err := svc.List(filter)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			found := 0
			for name, path := range pairs {
				fmt.Fprintf(w, "%-20s %s\n", name, path)
				found++
			}
			if found == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No bookmarks found.")
			}
			return nil
		},
	}

	cmd.Flags().StringP("category", "c", "", "only bookmarks in this category")
	cmd.Flags().StringP("glob", "g", "", "only names matching this glob pattern")

	return cmd
}
