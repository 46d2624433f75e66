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
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/cloudygreybeard/dirfavs/pkg/mcp"
	"github.com/cloudygreybeard/dirfavs/pkg/ops"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP server",
		Long: `Runs dirfavs as an MCP (Model Context Protocol) server.

The server communicates via JSON-RPC over stdin/stdout, exposing:

Resources:
  - dirfavs://bookmarks           All bookmarks in JSON format
  - dirfavs://markdown            All bookmarks in Markdown format
  - dirfavs://category/<name>     Bookmarks in one category

Tools:
  - search_bookmarks     Filter by name substring, category or glob
  - resolve_bookmark     Return a bookmark's path and record the visit
  - recent_bookmarks     Most recently visited
  - frequent_bookmarks   Most visited

Add to your MCP client configuration:

  {
    "mcpServers": {
      "dirfavs": {
        "command": "/path/to/dirfavs",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			open := func(ctx context.Context) (*ops.Service, func(), error) {
				return rootOpts.openService(ctx)
			}
			server := mcp.NewServer(open, Version, rootOpts.Logger)

			err := server.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
