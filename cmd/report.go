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
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Columns available to the report commands.
const (
	colName     = "name"
	colPath     = "path"
	colCategory = "category"
	colLast     = "last accessed"
	colCount    = "count"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show every bookmark with its usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			marks := svc.Stats()
			if len(marks) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No bookmarks saved.")
				return nil
			}
			renderBookmarks(cmd.OutOrStdout(), marks, rootOpts.Config.Display.TimeFormat,
				colName, colPath, colCategory, colLast, colCount)
			return nil
		},
	}
}

// NewRecentCommand creates the recent command.
func NewRecentCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recently visited bookmarks",
		Long: `Show visited bookmarks, newest first. Bookmarks that were never
visited are left out. The default limit is defaults.recent_limit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := limitFlag(cmd, rootOpts.Config.Defaults.RecentLimit)

			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			marks := svc.Recent(n)
			if len(marks) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No bookmarks visited yet.")
				return nil
			}
			renderBookmarks(cmd.OutOrStdout(), marks, rootOpts.Config.Display.TimeFormat,
				colName, colPath, colLast)
			return nil
		},
	}
	addLimitFlag(cmd)
	return cmd
}

// NewFrequentCommand creates the frequent command.
func NewFrequentCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frequent",
		Short: "Show the most visited bookmarks",
		Long: `Show bookmarks by visit count, highest first, ties by name.
The default limit is defaults.frequent_limit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := limitFlag(cmd, rootOpts.Config.Defaults.FrequentLimit)

			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			marks := svc.Frequent(n)
			if len(marks) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No bookmarks saved.")
				return nil
			}
			renderBookmarks(cmd.OutOrStdout(), marks, rootOpts.Config.Display.TimeFormat,
				colName, colPath, colCount)
			return nil
		},
	}
	addLimitFlag(cmd)
	return cmd
}

func addLimitFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("number", "n", 10, "how many bookmarks to show (negative for all)")
}

// limitFlag returns -n when given, otherwise the configured default.
func limitFlag(cmd *cobra.Command, configured int) int {
	if cmd.Flags().Changed("number") {
		n, _ := cmd.Flags().GetInt("number")
		return n
	}
	return configured
}

func renderBookmarks(w io.Writer, marks []bookmark.Bookmark, timeFormat string, columns ...string) {
	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1)
	countStyle := cellStyle.Align(lipgloss.Right)

	caser := cases.Title(language.English)
	headers := make([]string, len(columns))
	countCol := -1
	for i, c := range columns {
		headers[i] = caser.String(c)
		if c == colCount {
			countCol = i
		}
	}

	rows := make([][]string, 0, len(marks))
	for _, b := range marks {
		row := make([]string, len(columns))
		for i, c := range columns {
			switch c {
			case colName:
				row[i] = b.Name
			case colPath:
				row[i] = b.Path
			case colCategory:
				row[i] = b.Category
			case colLast:
				row[i] = b.LastAccessedString(timeFormat)
			case colCount:
				row[i] = strconv.Itoa(b.AccessCount)
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == countCol:
				return countStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
}
